package combat

// MultiplierTable maps a combo index to a damage multiplier. Indices past the
// end reuse the last entry; an empty table multiplies by 1.
type MultiplierTable []float64

func (t MultiplierTable) At(index int) float64 {
	if len(t) == 0 {
		return 1
	}
	if index < 0 {
		index = 0
	}
	if index >= len(t) {
		index = len(t) - 1
	}
	return t[index]
}
