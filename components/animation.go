package components

import (
	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/phaseclock"
	"github.com/yohamta/donburi"
)

// Animator plays attack clips on a phase clock for a combo machine.
type Animator struct {
	Clock   phaseclock.Clock
	Attacks []phaseclock.Clip
	Weapon  *combat.HitResolver
	Variant int
}

// PlayAttack starts the clip for variant. Variants past the last clip reuse
// the last one. The weapon is closed until the new clip opens it again.
func (a *Animator) PlayAttack(variant int) {
	if a.Weapon != nil {
		a.Weapon.Deactivate()
	}
	if a.Clock == nil || len(a.Attacks) == 0 {
		return
	}
	if variant < 0 {
		variant = 0
	}
	if variant >= len(a.Attacks) {
		variant = len(a.Attacks) - 1
	}
	a.Variant = variant
	a.Clock.Play(a.Attacks[variant])
}

type AnimationData struct {
	*Animator
}

var Animation = donburi.NewComponentType[AnimationData]()
