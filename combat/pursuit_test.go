package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const playerID = 1

type transition struct{ from, to Phase }

type pursuitRig struct {
	clock    *SimClock
	registry *fakeRegistry
	pursuit  *Pursuit
	seen     []transition
}

func newPursuitRig() *pursuitRig {
	rig := &pursuitRig{
		clock:    NewSimClock(0),
		registry: newFakeRegistry(),
	}
	rig.pursuit = NewPursuit(DefaultPursuitConfig(), rig.clock, rig.registry)
	rig.pursuit.OnPhaseChange = func(from, to Phase) {
		rig.seen = append(rig.seen, transition{from, to})
	}
	rig.pursuit.Enable()
	return rig
}

var origin = dmath.Vec2{}

func TestPursuit_DistanceScenario(t *testing.T) {
	rig := newPursuitRig()
	p := rig.pursuit

	rig.registry.place(RolePlayer, playerID, 20, 0)
	p.Update(origin)
	assert.Equal(t, PhaseIdle, p.CurrentPhase())

	rig.registry.place(RolePlayer, playerID, 8, 0)
	p.Update(origin)
	assert.Equal(t, PhaseChasing, p.CurrentPhase())

	rig.registry.place(RolePlayer, playerID, 1.5, 0)
	p.Update(origin)
	assert.Equal(t, PhaseAttacking, p.CurrentPhase())
	assert.InDelta(t, 1.5, p.DistanceToTarget(), 1e-9)
}

func TestPursuit_IdleNeverJumpsToAttacking(t *testing.T) {
	rig := newPursuitRig()
	p := rig.pursuit

	rig.registry.place(RolePlayer, playerID, 1, 0)
	p.Update(origin)
	assert.Equal(t, PhaseChasing, p.CurrentPhase())

	for i := 0; i < 30; i++ {
		rig.clock.Advance(0.05)
		p.Update(origin)
	}
	assert.Equal(t, PhaseAttacking, p.CurrentPhase())

	for _, tr := range rig.seen {
		assert.False(t, tr.from == PhaseIdle && tr.to == PhaseAttacking, "illegal transition %v -> %v", tr.from, tr.to)
	}
}

func TestPursuit_ChaseIsThrottled(t *testing.T) {
	rig := newPursuitRig()
	p := rig.pursuit

	rig.registry.place(RolePlayer, playerID, 5, 0)
	p.Update(origin)
	require.Equal(t, PhaseChasing, p.CurrentPhase())

	for i := 0; i < 63; i++ {
		p.Update(origin)
		rig.clock.Advance(0.016)
	}

	evals := p.Stats().ChaseEvaluations
	assert.GreaterOrEqual(t, evals, 5)
	assert.LessOrEqual(t, evals, 6)
}

func TestPursuit_ThrottleDelaysAttackEntry(t *testing.T) {
	rig := newPursuitRig()
	p := rig.pursuit

	rig.registry.place(RolePlayer, playerID, 5, 0)
	p.Update(origin)
	p.Update(origin)
	require.Equal(t, PhaseChasing, p.CurrentPhase())
	require.Equal(t, 1, p.Stats().ChaseEvaluations)

	rig.registry.place(RolePlayer, playerID, 1, 0)
	rig.clock.Advance(0.1)
	p.Update(origin)
	assert.Equal(t, PhaseChasing, p.CurrentPhase())

	rig.clock.Advance(0.1)
	p.Update(origin)
	assert.Equal(t, PhaseAttacking, p.CurrentPhase())
}

func TestPursuit_AttackingFallsBackToChasing(t *testing.T) {
	rig := newPursuitRig()
	p := rig.pursuit

	rig.registry.place(RolePlayer, playerID, 1, 0)
	p.Update(origin)
	p.Update(origin)
	require.Equal(t, PhaseAttacking, p.CurrentPhase())

	rig.registry.place(RolePlayer, playerID, 3, 0)
	p.Update(origin)
	assert.Equal(t, PhaseChasing, p.CurrentPhase())
}

func TestPursuit_LosesDistantTarget(t *testing.T) {
	rig := newPursuitRig()
	p := rig.pursuit

	rig.registry.place(RolePlayer, playerID, 9, 0)
	p.Update(origin)
	require.Equal(t, PhaseChasing, p.CurrentPhase())

	rig.registry.place(RolePlayer, playerID, 16, 0)
	p.Update(origin)
	assert.Equal(t, PhaseIdle, p.CurrentPhase())
	_, ok := p.Target()
	assert.False(t, ok)

	p.Update(origin)
	assert.Equal(t, PhaseIdle, p.CurrentPhase())
	assert.Equal(t, 2, p.Stats().Acquisitions)
}

func TestPursuit_TargetRemoved(t *testing.T) {
	rig := newPursuitRig()
	p := rig.pursuit

	rig.registry.place(RolePlayer, playerID, 1, 0)
	p.Update(origin)
	p.Update(origin)
	require.Equal(t, PhaseAttacking, p.CurrentPhase())

	rig.registry.remove(playerID)
	p.Update(origin)
	assert.Equal(t, PhaseIdle, p.CurrentPhase())
	_, ok := p.Target()
	assert.False(t, ok)

	p.Update(origin)
	assert.Equal(t, PhaseIdle, p.CurrentPhase())
}

func TestPursuit_ResetAIDisables(t *testing.T) {
	rig := newPursuitRig()
	p := rig.pursuit

	rig.registry.place(RolePlayer, playerID, 1, 0)
	p.Update(origin)
	p.Update(origin)
	require.Equal(t, PhaseAttacking, p.CurrentPhase())

	p.ResetAI()
	assert.Equal(t, PhaseIdle, p.CurrentPhase())
	assert.False(t, p.Enabled())

	p.Update(origin)
	assert.Equal(t, PhaseIdle, p.CurrentPhase())

	p.Enable()
	p.Update(origin)
	assert.Equal(t, PhaseChasing, p.CurrentPhase())
}

func TestPursuit_DisabledUntilEnabled(t *testing.T) {
	registry := newFakeRegistry()
	registry.place(RolePlayer, playerID, 1, 0)
	p := NewPursuit(DefaultPursuitConfig(), NewSimClock(0), registry)

	p.Update(origin)
	assert.Equal(t, PhaseIdle, p.CurrentPhase())
	assert.Equal(t, 0, p.Stats().Acquisitions)
}

func TestPursuit_NoTargetStaysIdle(t *testing.T) {
	rig := newPursuitRig()
	p := rig.pursuit

	p.Update(origin)
	assert.Equal(t, PhaseIdle, p.CurrentPhase())
	assert.True(t, p.DistanceToTarget() > 1e9)
}

func TestPursuitConfig_Sanitize(t *testing.T) {
	cfg := PursuitConfig{DetectionRadius: 10, AttackRadius: -1, LoseTargetDistance: 4, ChaseUpdateInterval: -1}
	notes := cfg.Sanitize()

	assert.Len(t, notes, 4)
	assert.Equal(t, RolePlayer, cfg.TargetRole)
	assert.Zero(t, cfg.AttackRadius)
	assert.Equal(t, 10.0, cfg.LoseTargetDistance)
	assert.Zero(t, cfg.ChaseUpdateInterval)
}
