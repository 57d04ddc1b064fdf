package systems

import (
	"github.com/automoto/doomerang-melee/components"
	"github.com/automoto/doomerang-melee/phaseclock"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every phase clock and opens or closes the
// weapon on the clip's strike cues.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		// Dying entities are frozen so no cue can reopen a weapon.
		if Dying(e) {
			return
		}
		anim := components.Animation.Get(e)
		if anim.Animator == nil || anim.Clock == nil {
			return
		}
		// A large step can cross both cues; they arrive in clip order.
		for _, ev := range anim.Clock.Advance(dt) {
			routeCue(anim.Animator, ev)
		}
	})
}

func routeCue(a *components.Animator, ev phaseclock.Event) {
	if a.Weapon == nil {
		return
	}
	switch ev {
	case phaseclock.StrikeStart:
		a.Weapon.Activate()
	case phaseclock.StrikeEnd:
		a.Weapon.Deactivate()
	}
}
