package factory

import (
	"github.com/automoto/doomerang-melee/archetypes"
	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/phaseclock"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// playerIdle is the neutral clip the player's timeline returns to.
var playerIdle = phaseclock.IdleClip(1, 1)

func CreatePlayer(w donburi.World, name string, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	// Create collision object
	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Combatant.SetValue(player, components.CombatantData{
		Name:     name,
		Category: combat.CategoryPlayer,
		Role:     combat.RolePlayer,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Speed:  cfg.Player.MoveSpeed,
		Facing: dmath.Vec2{X: cfg.DirectionRight},
	})

	// Weapon, combo and hitbox
	attachMelee(w, player, obj,
		cfg.Player.Combo,
		cfg.Player.Weapon,
		combat.MaskOf(combat.CategoryEnemy, combat.CategoryProp),
		phaseclock.NewTimeline(playerIdle),
		PlayerClips(),
	)

	return player
}
