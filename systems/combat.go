package systems

import (
	"github.com/automoto/doomerang-melee/components"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombos ticks every living combo machine.
func UpdateCombos(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Melee.Each(ecs.World, func(e *donburi.Entry) {
		if Dying(e) {
			return
		}
		components.Melee.Get(e).Combo.Update(dt)
	})
}

// UpdateCombat starts the death sequence for everything whose health ran
// out this tick.
func UpdateCombat(ecs *ecs.ECS) {
	// Collect first; Kill adds a component and moves the entry.
	var fallen []*donburi.Entry
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		if !Dying(e) && !components.Health.Get(e).IsAlive() {
			fallen = append(fallen, e)
		}
	})
	for _, e := range fallen {
		Kill(ecs.World, e)
	}
}

// Kill cancels the entity's attack and AI before marking it dying, so a
// queued strike or a late clip cue cannot land afterwards. It is a no-op for
// entities already dying.
func Kill(w donburi.World, e *donburi.Entry) {
	if !e.Valid() || Dying(e) {
		return
	}

	// Attack first: StopAttack also closes the weapon.
	if e.HasComponent(components.Melee) {
		components.Melee.Get(e).Combo.StopAttack()
	}
	// Then the AI, which stays off until something re-enables it.
	if e.HasComponent(components.Enemy) {
		components.Enemy.Get(e).Pursuit.ResetAI()
	}
	if e.HasComponent(components.Physics) {
		components.Physics.Get(e).Stop()
	}

	ev := components.DeathEvent{Entity: e.Entity()}
	if e.HasComponent(components.Combatant) {
		c := components.Combatant.Get(e)
		ev.Name = c.Name
		ev.Category = c.Category
	}

	donburi.Add(e, components.Death, &components.DeathData{Timer: deathDuration(e)})
	components.DeathEvents.Publish(w, ev)

	log.Info().
		Uint64("entity", uint64(ev.Entity)).
		Str("name", ev.Name).
		Stringer("category", ev.Category).
		Msg("combatant died")
}

func deathDuration(e *donburi.Entry) float64 {
	if e.HasComponent(components.Enemy) {
		return cfg.Enemy.Type(components.Enemy.Get(e).TypeName).DeathDuration
	}
	return cfg.Player.DeathDuration
}
