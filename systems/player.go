package systems

import (
	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies the player's intent: movement goes to physics and an
// attack press goes to the combo machine.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if Dying(e) {
			return
		}
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		melee := components.Melee.Get(e)

		physics.Drive(player.Move)
		if !player.Attack {
			return
		}
		// Consume the press so a second system pass cannot reuse it.
		player.Attack = false
		requestAttack(ecs.World, e, melee.Combo)
	})
}

func requestAttack(w donburi.World, e *donburi.Entry, combo *combat.Combo) combat.AttackResult {
	result := combo.RequestAttack()
	if result == combat.AttackDropped {
		log.Debug().
			Uint64("attacker", uint64(e.Entity())).
			Int("comboIndex", combo.ComboIndex()).
			Bool("attacking", combo.IsAttacking()).
			Msg("attack request dropped")
	}
	components.AttackRequestEvents.Publish(w, components.AttackRequestEvent{
		Attacker: e.Entity(),
		Result:   result,
	})
	return result
}
