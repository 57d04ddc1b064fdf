package factory

import (
	"fmt"

	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/phaseclock"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// attachMelee gives e a weapon, a combo machine and the animator that
// connects them. Hits and strikes are published as world events.
func attachMelee(w donburi.World, e *donburi.Entry, body *resolv.Object, tuning cfg.ComboTuning, weapon cfg.WeaponTuning, filter combat.CategoryMask, clock phaseclock.Clock, clips []phaseclock.Clip) {
	id := e.Entity()

	// Weapon: damages whatever the filter allows, never its owner.
	resolver := combat.NewHitResolver(tuning.BaseDamage, filter)
	resolver.SetOwner(id)
	// Report the health left after the hit so subscribers can log it.
	resolver.OnHit = func(h combat.Hit) {
		remaining := 0.0
		if w.Valid(h.Target) {
			if target := w.Entry(h.Target); target.HasComponent(components.Health) {
				remaining = components.Health.Get(target).Current
			}
		}
		components.HitEvents.Publish(w, components.HitEvent{Hit: h, Remaining: remaining})
	}

	// The combo machine reads attack progress from the same clock the
	// animator plays clips on.
	animator := &components.Animator{Clock: clock, Attacks: clips, Weapon: resolver}
	combo := combat.NewCombo(tuning.Combo(), worldClock(w), clock, resolver, animator)
	combo.OnStrike = func(s combat.Strike) {
		components.StrikeEvents.Publish(w, components.StrikeEvent{Attacker: id, Strike: s})
	}

	// Weapon collider; UpdateWeapons moves it in front of the body.
	hitbox := resolv.NewObject(body.X+body.W+weapon.Reach, body.Y+(body.H-weapon.Height)/2, weapon.Width, weapon.Height, tags.ResolvWeapon)
	hitbox.SetShape(resolv.NewRectangle(0, 0, weapon.Width, weapon.Height))
	hitbox.Data = e
	addToSpace(w, hitbox)

	components.Melee.SetValue(e, components.MeleeData{
		Combo:  combo,
		Weapon: resolver,
		Hitbox: hitbox,
		Reach:  weapon.Reach,
	})
	components.Animation.SetValue(e, components.AnimationData{Animator: animator})
}

func worldClock(w donburi.World) *combat.SimClock {
	if clock := SimClock(w); clock != nil {
		return clock
	}
	return components.Clock.Get(CreateClock(w, 0)).SimClock
}

// PlayerClips builds the player's attack clips, one per combo variant.
func PlayerClips() []phaseclock.Clip {
	clips := make([]phaseclock.Clip, 0, len(cfg.Player.Attacks))
	for i, a := range cfg.Player.Attacks {
		name := fmt.Sprintf("attack%d", i+1)
		clips = append(clips, phaseclock.AttackClip(name, a.Duration, a.StrikeStart, a.StrikeEnd, a.Frames))
	}
	return clips
}
