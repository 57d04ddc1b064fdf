package systems

import (
	"testing"

	"github.com/automoto/doomerang-melee/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestMetrics_SubscribeWithNoopProvider(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	w := newTestWorld(t)
	m.Subscribe(w)

	components.DeathEvents.Publish(w, components.DeathEvent{Name: "dummy"})
	assert.NotPanics(t, func() { ProcessEvents(ecs.NewECS(w)) })
}
