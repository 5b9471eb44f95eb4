package components

import "github.com/yohamta/donburi"

// HealthData keeps 0 <= Current <= Max.
type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts amount, flooring at zero, and returns the health lost.
func (h *HealthData) Damage(amount int) int {
	if amount <= 0 || h.Current <= 0 {
		return 0
	}
	lost := amount
	if lost > h.Current {
		lost = h.Current
	}
	h.Current -= lost
	return lost
}

// Heal adds amount, capped at Max, and returns the health gained.
func (h *HealthData) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := h.Current
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current - before
}

// Fraction returns Current/Max in [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

func (h *HealthData) IsDepleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
