package systems

import (
	"github.com/automoto/doomerang-melee/components"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateInput turns the latched action state into the player's intent for
// this tick. Attacks are edge triggered; holding the button does not repeat.
func UpdateInput(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		player := components.Player.Get(e)

		var move dmath.Vec2
		if input.Pressed(cfg.ActionMoveLeft) {
			move.X--
		}
		if input.Pressed(cfg.ActionMoveRight) {
			move.X++
		}
		if input.Pressed(cfg.ActionMoveUp) {
			move.Y--
		}
		if input.Pressed(cfg.ActionMoveDown) {
			move.Y++
		}
		player.Move = move
		player.Attack = input.JustPressed(cfg.ActionAttack)
	})
}
