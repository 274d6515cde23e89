package component

import "github.com/milk9111/overworld/common"

// Health tracks hit points between Min and Max.
type Health struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Health float64 `yaml:"health"`
}

// NewHealth returns a health component at 1 of 100.
func NewHealth() *Health {
	return &Health{Min: 0, Max: 100, Health: 1}
}

// Full reports whether health is at its maximum.
func (h *Health) Full() bool {
	return h != nil && h.Health >= h.Max
}

// Gain adds amount, clamped to the component's range.
func (h *Health) Gain(amount float64) {
	if h == nil {
		return
	}
	h.Health = common.Clamp(h.Health+amount, h.Min, h.Max)
}

// Damage subtracts amount, clamped to the component's range.
func (h *Health) Damage(amount float64) {
	if h == nil {
		return
	}
	h.Health = common.Clamp(h.Health-amount, h.Min, h.Max)
}

// Depleted reports whether health has reached the minimum.
func (h *Health) Depleted() bool {
	return h != nil && h.Health <= h.Min
}
