package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// TakeDamage lowers health, never below zero.
func (h *HealthData) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *HealthData) IsAlive() bool {
	return h.Current > 0
}

// Fraction is remaining health in [0,1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
