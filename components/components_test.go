package components

import (
	"testing"

	"github.com/automoto/doomerang-melee/combat"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/phaseclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestHealth(t *testing.T) {
	h := HealthData{Current: 10, Max: 20}

	h.TakeDamage(-5)
	assert.Equal(t, 10.0, h.Current)
	assert.Equal(t, 0.5, h.Fraction())

	h.TakeDamage(15)
	assert.Equal(t, 0.0, h.Current)
	assert.False(t, h.IsAlive())
	assert.Equal(t, 0.0, (&HealthData{}).Fraction())
}

func TestInputEdges(t *testing.T) {
	var in InputData
	var pressed [cfg.ActionCount]bool
	pressed[cfg.ActionAttack] = true

	in.Latch(pressed)
	assert.True(t, in.JustPressed(cfg.ActionAttack))
	assert.True(t, in.Pressed(cfg.ActionAttack))

	in.Latch(pressed)
	assert.False(t, in.JustPressed(cfg.ActionAttack))

	in.Latch([cfg.ActionCount]bool{})
	assert.True(t, in.JustReleased(cfg.ActionAttack))
	assert.False(t, in.Pressed(cfg.ActionCount), "out of range")
}

func TestPhysicsMover(t *testing.T) {
	p := PhysicsData{Speed: 10, Facing: dmath.Vec2{X: 1}}
	var _ combat.Mover = &p

	p.Drive(dmath.Vec2{X: 0, Y: -2})
	assert.Equal(t, dmath.Vec2{X: 0, Y: -10}, p.Velocity)
	assert.Equal(t, dmath.Vec2{X: 0, Y: -1}, p.Facing)

	p.Drive(dmath.Vec2{})
	assert.Equal(t, dmath.Vec2{}, p.Velocity)
	assert.Equal(t, dmath.Vec2{X: 0, Y: -1}, p.Facing, "no input keeps facing")

	p.MoveToward(dmath.Vec2{X: 5, Y: 5})
	assert.True(t, p.Steering)
	p.Stop()
	assert.False(t, p.Steering)

	p.FaceToward(dmath.Vec2{X: -3})
	assert.Equal(t, dmath.Vec2{X: -1}, p.Facing)
}

func TestAnimatorPlayAttack(t *testing.T) {
	weapon := combat.NewHitResolver(5, combat.MaskOf(combat.CategoryEnemy))
	clock := phaseclock.NewTimeline(phaseclock.IdleClip(1, 1))
	a := &Animator{
		Clock: clock,
		Attacks: []phaseclock.Clip{
			phaseclock.AttackClip("jab", 0.3, 0.2, 0.5, 3),
			phaseclock.AttackClip("kick", 0.5, 0.3, 0.6, 5),
		},
		Weapon: weapon,
	}

	weapon.Activate()
	a.PlayAttack(1)
	assert.False(t, weapon.IsActive(), "a new clip closes the weapon")
	assert.Equal(t, "kick", clock.Clip().Name)

	a.PlayAttack(7)
	assert.Equal(t, 1, a.Variant, "clamped to the last clip")

	a.PlayAttack(-1)
	assert.Equal(t, "jab", clock.Clip().Name)

	(&Animator{}).PlayAttack(0)
}

func TestFighter(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(Combatant, Health))
	Combatant.SetValue(e, CombatantData{Name: "x", Category: combat.CategoryEnemy, Role: combat.RoleEnemy})
	Health.SetValue(e, HealthData{Current: 5, Max: 5})

	f := Fighter{Entry: e}
	var _ combat.Target = f
	assert.Equal(t, e.Entity(), f.CombatantID())
	assert.Equal(t, combat.CategoryEnemy, f.Category())
	require.True(t, f.IsAlive())

	f.TakeDamage(2)
	assert.Equal(t, 3.0, Health.Get(e).Current)

	donburi.Add(e, Death, &DeathData{Timer: 1})
	assert.False(t, f.IsAlive(), "dying counts as dead")

	bare := Fighter{Entry: w.Entry(w.Create(Death))}
	assert.Equal(t, combat.CategoryNone, bare.Category())
	bare.TakeDamage(1)
}
