package systems

import (
	"testing"

	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60

func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	factory.CreateClock(w, 0)
	factory.CreateSpace(w, 640, 368, 16, 16)
	return w
}

// pipeline schedules the tick systems over w in scene order.
func pipeline(w donburi.World) *ecs.ECS {
	e := ecs.NewECS(w)
	e.AddSystem(UpdateInput)
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdateEnemies)
	e.AddSystem(UpdateAnimations)
	e.AddSystem(UpdateCombos)
	e.AddSystem(UpdatePhysics)
	e.AddSystem(UpdateWeapons)
	e.AddSystem(UpdateCombat)
	e.AddSystem(UpdateDeaths)
	e.AddSystem(ProcessEvents)
	return e
}

func tick(w donburi.World) {
	StepClock(w, dt)
	pipeline(w).Update()
}

func run(w donburi.World, seconds float64) {
	for i := 0; i < int(seconds/dt+0.5); i++ {
		tick(w)
	}
}

func press(e *donburi.Entry, actions ...cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	components.Input.Get(e).Latch(pressed)
}

// passiveEnemy spawns an enemy whose AI is switched off.
func passiveEnemy(w donburi.World, x, y float64) *donburi.Entry {
	e := factory.CreateEnemy(w, "dummy", x, y, "Grunt", NewRegistry(w))
	components.Enemy.Get(e).Pursuit.ResetAI()
	return e
}

func TestStepClock(t *testing.T) {
	w := newTestWorld(t)

	StepClock(w, 0.25)
	StepClock(w, -1)

	clock := components.Clock.Get(mustFirst(t, w))
	assert.Equal(t, 0.25, clock.Now())
	assert.Equal(t, 0.0, clock.DT)
	assert.Equal(t, 2, clock.Tick)
}

func mustFirst(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := components.Clock.First(w)
	require.True(t, ok)
	return e
}

func TestRegistry(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, "hero", 100, 100)
	r := NewRegistry(w)

	id, ok := r.FindByRole(combat.RolePlayer)
	require.True(t, ok)
	assert.Equal(t, player.Entity(), id)

	pos, ok := r.PositionOf(id)
	require.True(t, ok)
	assert.Equal(t, dmath.Vec2{X: 108, Y: 120}, pos)

	_, ok = r.FindByRole(combat.RoleEnemy)
	assert.False(t, ok)

	Kill(w, player)
	_, ok = r.FindByRole(combat.RolePlayer)
	assert.False(t, ok, "dying entities are not found")
	_, ok = r.PositionOf(id)
	assert.False(t, ok)
}

func TestPlayerSwingHitsOncePerActivation(t *testing.T) {
	w := newTestWorld(t)
	tally := NewTally()
	tally.Subscribe(w)

	player := factory.CreatePlayer(w, "hero", 100, 100)
	enemy := passiveEnemy(w, 123, 100)

	press(player, cfg.ActionAttack)
	tick(w)
	press(player)
	run(w, 0.5)

	assert.Equal(t, 50.0, components.Health.Get(enemy).Current)
	assert.Equal(t, 1, tally.Strikes)
	assert.Equal(t, 1, tally.Hits)
	assert.Equal(t, 1, tally.AttackRequests["started"])
	assert.False(t, components.Melee.Get(player).Weapon.IsActive(), "closed after the clip")
	assert.False(t, components.Melee.Get(player).Combo.IsAttacking())
}

func TestHeldAttackDoesNotRepeat(t *testing.T) {
	w := newTestWorld(t)
	tally := NewTally()
	tally.Subscribe(w)
	player := factory.CreatePlayer(w, "hero", 100, 100)

	for i := 0; i < 90; i++ {
		press(player, cfg.ActionAttack)
		tick(w)
	}

	assert.Equal(t, 1, tally.Strikes)
	assert.Equal(t, 1, tally.AttackRequests["started"])
}

func TestPlayerComboChain(t *testing.T) {
	w := newTestWorld(t)
	tally := NewTally()
	tally.Subscribe(w)

	player := factory.CreatePlayer(w, "hero", 100, 100)
	enemy := passiveEnemy(w, 123, 100)

	// Press, release and press again early in each clip; each press is
	// banked and resolved in the combo window.
	for i := 0; i < 3; i++ {
		press(player, cfg.ActionAttack)
		tick(w)
		press(player)
		run(w, 0.1)
	}
	run(w, 1)

	assert.Equal(t, 3, tally.Strikes)
	assert.Equal(t, 2, tally.ChainedStrikes)
	assert.Equal(t, 3, tally.Hits)
	assert.InDelta(t, 60-10-15-20, components.Health.Get(enemy).Current, 1e-9)
}

func TestWeaponIgnoresOwnSide(t *testing.T) {
	w := newTestWorld(t)
	tally := NewTally()
	tally.Subscribe(w)

	// Two enemies side by side; the left one swings at the right one.
	left := passiveEnemy(w, 100, 100)
	right := passiveEnemy(w, 123, 100)
	components.Physics.Get(left).FaceToward(dmath.Vec2{X: 1})

	requestAttack(w, left, components.Melee.Get(left).Combo)
	run(w, 1)

	assert.Equal(t, 1, tally.Strikes)
	assert.Equal(t, 0, tally.Hits)
	assert.Equal(t, 60.0, components.Health.Get(right).Current)
}

func TestKillStopsEverything(t *testing.T) {
	w := newTestWorld(t)
	tally := NewTally()
	tally.Subscribe(w)

	enemy := factory.CreateEnemy(w, "grunt", 100, 100, "Grunt", NewRegistry(w))
	melee := components.Melee.Get(enemy)
	melee.Combo.RequestAttack()
	melee.Weapon.Activate()

	Kill(w, enemy)
	Kill(w, enemy)
	ProcessEvents(ecs.NewECS(w))

	assert.True(t, enemy.HasComponent(components.Death))
	assert.False(t, melee.Combo.IsAttacking())
	assert.False(t, melee.Weapon.IsActive())
	assert.False(t, components.Enemy.Get(enemy).Pursuit.Enabled())
	assert.Equal(t, 1, tally.Deaths, "death is announced once")
	assert.Equal(t, []string{"grunt"}, tally.DeathsByName)
}

func TestDeathsRemoveAfterTimer(t *testing.T) {
	w := newTestWorld(t)
	enemy := passiveEnemy(w, 200, 100)
	id := enemy.Entity()

	components.Health.Get(enemy).TakeDamage(1000)
	tick(w)
	require.True(t, w.Valid(id))
	assert.True(t, enemy.HasComponent(components.Death))

	run(w, cfg.Enemy.Type("Grunt").DeathDuration+0.1)
	assert.False(t, w.Valid(id))
	_, found := NewRegistry(w).FindByRole(combat.RoleEnemy)
	assert.False(t, found)
}

func TestEnemyChasesAndAttacks(t *testing.T) {
	w := newTestWorld(t)
	tally := NewTally()
	tally.Subscribe(w)

	player := factory.CreatePlayer(w, "hero", 100, 100)
	enemy := factory.CreateEnemy(w, "grunt", 220, 100, "Grunt", NewRegistry(w))
	pursuit := components.Enemy.Get(enemy).Pursuit

	tick(w)
	assert.Equal(t, combat.PhaseChasing, pursuit.CurrentPhase())
	startX := components.Object.Get(enemy).X

	run(w, 0.5)
	assert.Less(t, components.Object.Get(enemy).X, startX, "moves toward the player")

	run(w, 3)
	assert.Equal(t, combat.PhaseAttacking, pursuit.CurrentPhase())
	assert.Greater(t, tally.Strikes, 0)
	assert.Less(t, components.Health.Get(player).Current, cfg.Player.Health)
	assert.Less(t, components.Physics.Get(enemy).Facing.X, 0.0, "faces the player")
}

func TestWallsBlockMovement(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateWall(w, 140, 0, 16, 368)
	player := factory.CreatePlayer(w, "hero", 100, 100)

	for i := 0; i < 60; i++ {
		press(player, cfg.ActionMoveRight)
		tick(w)
	}

	obj := components.Object.Get(player)
	assert.InDelta(t, 140-obj.W, obj.X, 1e-9)
	assert.Equal(t, 100.0, obj.Y)
}

func TestPhysicsSteeringArrives(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, "hero", 100, 100)
	physics := components.Physics.Get(player)

	physics.MoveToward(dmath.Vec2{X: 158, Y: 120})
	for i := 0; i < 60; i++ {
		StepClock(w, dt)
		UpdatePhysics(ecs.NewECS(w))
	}

	center := components.Object.Get(player).Center()
	assert.InDelta(t, 158, center.X, arriveDistance)
	assert.InDelta(t, 120, center.Y, 1e-9)
	assert.Equal(t, dmath.Vec2{X: 1}, physics.Facing)
}

func TestMoveAxis(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		dx, dy float64
		wantX  float64
		wantY  float64
	}{
		{name: "stops flush moving right", x: 120, y: 100, dx: 10, wantX: 124, wantY: 100},
		{name: "stops flush moving left", x: 160, y: 100, dx: -10, wantX: 156, wantY: 100},
		{name: "stops flush moving down", x: 140, y: 40, dy: 30, wantX: 140, wantY: 50},
		{name: "flush wall holds against a push", x: 124, y: 100, dx: 5, wantX: 124, wantY: 100},
		{name: "free to slide along a wall", x: 124, y: 100, dy: 6, wantX: 124, wantY: 106},
		{name: "wall below the path does not block", x: 120, y: 20, dx: 10, wantX: 130, wantY: 20},
		{name: "leaves a wall it starts inside", x: 142, y: 100, dx: -3, wantX: 139, wantY: 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			factory.CreateWall(w, 140, 90, 16, 80)
			player := factory.CreatePlayer(w, "hero", tc.x, tc.y)
			obj := components.Object.Get(player).Object

			moveAxis(obj, tc.dx, tc.dy)

			assert.InDelta(t, tc.wantX, obj.X, 1e-9)
			assert.InDelta(t, tc.wantY, obj.Y, 1e-9)
		})
	}
}
