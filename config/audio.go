package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Weapons
	SoundEmailShoot
	SoundCallShoot
	// Combat
	SoundEnemyHit
	SoundEnemyDestroy
	SoundPlayerHit
	// Movement and pickups
	SoundJump
	SoundCollectItem
	// Match
	SoundGameOver
	SoundVictory
)

var soundNames = map[SoundID]string{
	SoundEmailShoot:   "emailShoot",
	SoundCallShoot:    "callShoot",
	SoundEnemyHit:     "enemyHit",
	SoundEnemyDestroy: "enemyDestroy",
	SoundPlayerHit:    "playerHit",
	SoundJump:         "jump",
	SoundCollectItem:  "collectItem",
	SoundGameOver:     "gameOver",
	SoundVictory:      "victory",
}

func (s SoundID) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "none"
}

// Waveform selects the oscillator shape of a tone.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveTriangle
	WaveSawtooth
)

// Tone is one synthesized note: a frequency sweep under a decaying envelope.
type Tone struct {
	Wave      Waveform
	StartFreq float64
	EndFreq   float64 // equal to StartFreq for a flat note
	Duration  float64 // seconds
	Gain      float64
	Delay     float64 // seconds after the sound starts
	Hold      bool    // constant gain instead of a decay
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	MusicVol   float64 `yaml:"music_volume"`
	SFXVol     float64 `yaml:"sfx_volume"`
	Muted      bool    `yaml:"muted"`
}

// SoundConfig describes every effect as a list of tones.
type SoundConfig struct {
	Effects map[SoundID][]Tone
	// Ambient loop layers, played together for LoopLength seconds
	Music      []Tone
	LoopLength float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		MusicVol:   0.3,
		SFXVol:     0.5,
	}

	Sound = SoundConfig{
		Effects: map[SoundID][]Tone{
			SoundEmailShoot: {
				{Wave: WaveTriangle, StartFreq: 800, EndFreq: 1200, Duration: 0.1, Gain: 0.3},
			},
			SoundCallShoot: {
				{Wave: WaveSine, StartFreq: 440, EndFreq: 440, Duration: 0.3, Gain: 0.2},
				{Wave: WaveSquare, StartFreq: 880, EndFreq: 880, Duration: 0.3, Gain: 0.1},
			},
			SoundEnemyHit: {
				{Wave: WaveSawtooth, StartFreq: 200, EndFreq: 200, Duration: 0.2, Gain: 0.3},
			},
			SoundPlayerHit: {
				{Wave: WaveTriangle, StartFreq: 150, EndFreq: 50, Duration: 0.5, Gain: 0.4},
			},
			SoundEnemyDestroy: {
				{Wave: WaveSquare, StartFreq: 400, EndFreq: 50, Duration: 0.4, Gain: 0.3},
			},
			SoundCollectItem: {
				{Wave: WaveSine, StartFreq: 523, EndFreq: 523, Duration: 0.1, Gain: 0.3},
				{Wave: WaveSine, StartFreq: 659, EndFreq: 659, Duration: 0.1, Gain: 0.3, Delay: 0.1},
				{Wave: WaveSine, StartFreq: 784, EndFreq: 784, Duration: 0.1, Gain: 0.3, Delay: 0.2},
			},
			SoundJump: {
				{Wave: WaveSine, StartFreq: 220, EndFreq: 440, Duration: 0.2, Gain: 0.2},
			},
			SoundGameOver: {
				{Wave: WaveTriangle, StartFreq: 440, EndFreq: 110, Duration: 1, Gain: 0.4},
			},
			SoundVictory: {
				{Wave: WaveTriangle, StartFreq: 523, EndFreq: 523, Duration: 0.3, Gain: 0.3},
				{Wave: WaveTriangle, StartFreq: 659, EndFreq: 659, Duration: 0.3, Gain: 0.3, Delay: 0.3},
				{Wave: WaveTriangle, StartFreq: 784, EndFreq: 784, Duration: 0.3, Gain: 0.3, Delay: 0.6},
				{Wave: WaveTriangle, StartFreq: 1047, EndFreq: 1047, Duration: 0.3, Gain: 0.3, Delay: 0.9},
			},
		},
		Music: []Tone{
			{Wave: WaveSine, StartFreq: 55, EndFreq: 55, Duration: 30, Gain: 0.1, Hold: true},
			{Wave: WaveTriangle, StartFreq: 110, EndFreq: 110, Duration: 30, Gain: 0.1, Hold: true},
		},
		LoopLength: 32,
	}
}
