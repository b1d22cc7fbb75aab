package player

// Health tracks hit points.
type Health struct {
	Current float64
	Max     float64
}

// NewHealth returns full health with the given maximum.
func NewHealth(max float64) Health {
	return Health{Current: max, Max: max}
}

// Damage subtracts amount, stopping at zero. Non-positive amounts are ignored.
func (h *Health) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	h.Current = max(h.Current-amount, 0)
}

// Fraction returns Current/Max clamped to [0, 1], or 0 without a maximum.
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return min(max(h.Current/h.Max, 0), 1)
}
