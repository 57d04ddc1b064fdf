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

// enemyIdle loops four sprite frames.
var enemyIdle = phaseclock.IdleClip(0.5, 4)

// CreateEnemy spawns an enemy of the named type. Unknown types fall back to
// the default type. registry is how its pursuit machine finds the player.
func CreateEnemy(w donburi.World, name string, x, y float64, enemyTypeName string, registry combat.Registry) *donburi.Entry {
	enemyType := cfg.Enemy.Type(enemyTypeName)

	enemy := archetypes.Enemy.Spawn(w)

	// Create collision object
	obj := resolv.NewObject(x, y, enemyType.CollisionWidth, enemyType.CollisionHeight)
	obj.SetShape(resolv.NewRectangle(0, 0, enemyType.CollisionWidth, enemyType.CollisionHeight))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Combatant.SetValue(enemy, components.CombatantData{
		Name:     name,
		Category: combat.CategoryEnemy,
		Role:     combat.RoleEnemy,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Speed:  enemyType.ChaseSpeed,
		Facing: dmath.Vec2{X: cfg.DirectionLeft}, // Start facing left
	})

	attachMelee(w, enemy, obj,
		enemyType.Combo,
		enemyType.Weapon,
		combat.MaskOf(combat.CategoryPlayer),
		phaseclock.NewFrames(cfg.Sim.FrameRate, enemyIdle),
		[]phaseclock.Clip{phaseclock.AttackClip("attack", enemyType.Attack.Duration, enemyType.Attack.StrikeStart, enemyType.Attack.StrikeEnd, enemyType.Attack.Frames)},
	)

	id := enemy.Entity()
	pursuit := combat.NewPursuit(enemyType.Pursuit.Pursuit(), worldClock(w), registry)
	pursuit.OnPhaseChange = func(from, to combat.Phase) {
		components.PhaseChangedEvents.Publish(w, components.PhaseChangedEvent{Agent: id, From: from, To: to})
	}
	pursuit.Enable()

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:  enemyType.Name,
		Pursuit:   pursuit,
		TintColor: enemyType.TintColor,
	})

	return enemy
}
