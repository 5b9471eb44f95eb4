package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1 matching the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ApplyFriction scales speed by a per-tick multiplier.
// The factor is applied once per tick and is not scaled by delta time.
func ApplyFriction(speed, factor float64) float64 {
	return speed * factor
}

// Approach moves current toward target by a fixed fraction of the gap.
func Approach(current, target, fraction float64) float64 {
	return current + (target-current)*fraction
}

// Decay reduces a countdown timer by dt without going below zero.
func Decay(timer, dt float64) float64 {
	if timer <= dt {
		return 0
	}
	return timer - dt
}
