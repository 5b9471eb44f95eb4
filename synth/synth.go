// Package synth renders sound effects from tone descriptions. Nothing is
// loaded from disk: every effect is an oscillator sweep under an envelope.
package synth

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/automoto/deal-closer/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// decayFloor is the relative gain a decaying tone reaches at its end.
const decayFloor = 0.01

// tone generates one waveform whose frequency and gain move exponentially
// from their start to their end values over the tone's duration.
type tone struct {
	wave      config.Waveform
	startFreq float64
	endFreq   float64
	gain      float64
	hold      bool
	phase     float64
	position  int
	duration  int
	rate      beep.SampleRate
}

// NewTone returns a streamer for t, including its leading delay.
func NewTone(t config.Tone, rate beep.SampleRate) beep.Streamer {
	osc := &tone{
		wave:      t.Wave,
		startFreq: t.StartFreq,
		endFreq:   t.EndFreq,
		gain:      t.Gain,
		hold:      t.Hold,
		duration:  rate.N(seconds(t.Duration)),
		rate:      rate,
	}
	if osc.endFreq <= 0 {
		osc.endFreq = osc.startFreq
	}
	if t.Delay <= 0 {
		return osc
	}
	return beep.Seq(beep.Silence(rate.N(seconds(t.Delay))), osc)
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		progress := float64(o.position) / float64(o.duration)

		val := o.sample() * o.envelope(progress)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency(progress) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

func (o *tone) frequency(progress float64) float64 {
	if o.startFreq <= 0 || o.startFreq == o.endFreq {
		return o.startFreq
	}
	return o.startFreq * math.Pow(o.endFreq/o.startFreq, progress)
}

func (o *tone) envelope(progress float64) float64 {
	if o.hold {
		return o.gain
	}
	return o.gain * math.Pow(decayFloor, progress)
}

func (o *tone) sample() float64 {
	switch o.wave {
	case config.WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case config.WaveTriangle:
		return 1 - 4*math.Abs(o.phase-0.5)
	case config.WaveSawtooth:
		return 2 * (o.phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

// Length returns the time until the last tone in tones has finished.
func Length(tones []config.Tone) float64 {
	var end float64
	for _, t := range tones {
		end = math.Max(end, t.Delay+t.Duration)
	}
	return end
}

// Render mixes tones at the given volume into 16-bit little-endian stereo PCM,
// the format ebiten's audio players consume. The result covers length seconds,
// or Length(tones) when length is zero.
func Render(tones []config.Tone, sampleRate int, volume, length float64) []byte {
	rate := beep.SampleRate(sampleRate)
	if length <= 0 {
		length = Length(tones)
	}
	total := rate.N(seconds(length))
	if total <= 0 {
		return nil
	}

	streamers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		streamers = append(streamers, NewTone(t, rate))
	}
	mixed := &effects.Volume{
		Streamer: beep.Mix(streamers...),
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-6)),
		Silent:   volume <= 0,
	}
	stream := beep.Take(total, mixed)

	out := make([]byte, total*4)
	buf := make([][2]float64, 512)
	written := 0
	for written < total {
		n, ok := stream.Stream(buf)
		for i := 0; i < n && written < total; i++ {
			putSample(out[written*4:], buf[i][0])
			putSample(out[written*4+2:], buf[i][1])
			written++
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func putSample(dst []byte, v float64) {
	v = math.Max(-1, math.Min(1, v))
	binary.LittleEndian.PutUint16(dst, uint16(int16(v*math.MaxInt16)))
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
