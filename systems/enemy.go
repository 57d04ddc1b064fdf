package systems

import (
	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies ticks every enemy's pursuit machine and maps its phase to
// movement and attacks.
func UpdateEnemies(ecs *ecs.ECS) {
	registry := NewRegistry(ecs.World)
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if Dying(e) {
			return
		}
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		melee := components.Melee.Get(e)
		self := components.Object.Get(e).Center()

		pursuit := enemy.Pursuit
		pursuit.Update(self)

		switch pursuit.CurrentPhase() {
		case combat.PhaseIdle:
			physics.Stop()
		case combat.PhaseChasing:
			// Steer at where the target is now, not the last sample.
			target, ok := livePosition(registry, pursuit)
			if !ok {
				physics.Stop()
				return
			}
			physics.MoveToward(target)
		case combat.PhaseAttacking:
			// Hold position, face the target and swing whenever the
			// combo machine is ready.
			physics.Stop()
			if target, ok := livePosition(registry, pursuit); ok {
				physics.FaceToward(combat.Direction(self, target))
			}
			if melee.Combo.CanAttack() {
				requestAttack(ecs.World, e, melee.Combo)
			}
		}
	})
}

// livePosition is where the pursued target is this tick. Phase decisions
// use the throttled samples inside the pursuit machine; steering does not
// need to wait for them.
func livePosition(registry combat.Registry, pursuit *combat.Pursuit) (dmath.Vec2, bool) {
	id, ok := pursuit.Target()
	if !ok {
		return dmath.Vec2{}, false
	}
	return registry.PositionOf(id)
}
