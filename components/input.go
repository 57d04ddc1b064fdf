package components

import (
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Latch moves the current frame into the previous one and records the new
// pressed state.
func (d *InputData) Latch(pressed [cfg.ActionCount]bool) {
	d.Previous = d.Current
	d.Current = pressed
}

func (d *InputData) Pressed(a cfg.ActionID) bool {
	return valid(a) && d.Current[a]
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return valid(a) && d.Current[a] && !d.Previous[a]
}

func (d *InputData) JustReleased(a cfg.ActionID) bool {
	return valid(a) && !d.Current[a] && d.Previous[a]
}

func valid(a cfg.ActionID) bool {
	return a >= 0 && a < cfg.ActionCount
}

var Input = donburi.NewComponentType[InputData]()
