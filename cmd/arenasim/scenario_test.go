package main

import (
	"os"
	"testing"

	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/scenes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(`
duration: 2
attacks:
  - at: 1.5
  - at: 0.5
moves:
  - {at: 0, for: 1, dir: up-left}
`))
	require.NoError(t, err)

	assert.Equal(t, 60, s.TickRate, "tick rate defaults to the sim rate")
	assert.Equal(t, 120, s.Ticks())
	assert.Equal(t, 0.5, s.Attacks[0].At, "attacks are sorted")
	assert.Len(t, s.Moves, 1)
}

func TestParseScenario_Errors(t *testing.T) {
	_, err := ParseScenario([]byte(`attacks: []`))
	assert.ErrorIs(t, err, ErrNoDuration)

	_, err = ParseScenario([]byte("duration: 1\nmoves:\n  - {at: 0, for: 1, dir: sideways}\n"))
	assert.ErrorContains(t, err, "unknown direction")

	_, err = ParseScenario([]byte("duration: [oops"))
	assert.Error(t, err)
}

func TestInputAt(t *testing.T) {
	s := &Scenario{
		TickRate: 60,
		Duration: 3,
		Attacks:  []Press{{At: 0.5}},
		Moves:    []Move{{At: 1, For: 0.5, Dir: "up-left"}},
	}

	assert.True(t, s.InputAt(0.495)[cfg.ActionAttack], "press lands in the tick containing it")
	assert.False(t, s.InputAt(0.52)[cfg.ActionAttack], "press lasts one tick")

	held := s.InputAt(1.2)
	assert.True(t, held[cfg.ActionMoveUp])
	assert.True(t, held[cfg.ActionMoveLeft])
	assert.False(t, held[cfg.ActionMoveRight])

	assert.False(t, s.InputAt(1.6)[cfg.ActionMoveUp], "move ends after its duration")
	assert.False(t, s.InputAt(0.9)[cfg.ActionMoveUp], "move starts at its time")
}

func TestRun_ApproachWakesEnemies(t *testing.T) {
	t.Cleanup(cfg.Reset)

	s, err := ParseScenario([]byte(`
duration: 3
moves:
  - {at: 0, for: 1, dir: right}
attacks:
  - at: 2
`))
	require.NoError(t, err)

	arena, err := scenes.NewArena(scenes.Options{})
	require.NoError(t, err)

	sum := Run(s, arena)

	assert.Equal(t, 180, sum.Ticks)
	assert.InDelta(t, 3.0, sum.Seconds, 1e-6)
	assert.Equal(t, "ongoing", sum.Outcome)
	assert.Len(t, sum.Phases, 4)
	assert.NotEqual(t, "idle", sum.Phases["grunt-b"], "walking past wakes the nearest grunt")
	assert.LessOrEqual(t, sum.PlayerHealth, cfg.Player.Health)
	assert.NotEmpty(t, sum.AttackRequests)
}

func TestParseScenario_Testdata(t *testing.T) {
	data, err := os.ReadFile("testdata/approach.yaml")
	require.NoError(t, err)

	s, err := ParseScenario(data)
	require.NoError(t, err)
	assert.True(t, s.StopOnOutcome)
	assert.Len(t, s.Attacks, 3)
	assert.Equal(t, 360, s.Ticks())
}
