package systems

import (
	"context"
	"fmt"

	"github.com/automoto/doomerang-melee/components"
	"github.com/yohamta/donburi"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/automoto/doomerang-melee/systems"

// Metrics counts combat events through the global OTel meter provider,
// which is a no-op unless the binary installs one.
type Metrics struct {
	strikes  metric.Int64Counter
	hits     metric.Int64Counter
	deaths   metric.Int64Counter
	requests metric.Int64Counter
	phases   metric.Int64Counter
}

func NewMetrics() (*Metrics, error) {
	m := otel.Meter(instrumentationName)
	var (
		ms  Metrics
		err error
	)

	if ms.strikes, err = m.Int64Counter("combat.strikes",
		metric.WithDescription("Attacks that began executing")); err != nil {
		return nil, fmt.Errorf("creating strikes counter: %w", err)
	}
	if ms.hits, err = m.Int64Counter("combat.hits",
		metric.WithDescription("Damage applications")); err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}
	if ms.deaths, err = m.Int64Counter("combat.deaths",
		metric.WithDescription("Combatants whose health ran out")); err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}
	if ms.requests, err = m.Int64Counter("combat.attack_requests",
		metric.WithDescription("Attack intents by outcome")); err != nil {
		return nil, fmt.Errorf("creating attack requests counter: %w", err)
	}
	if ms.phases, err = m.Int64Counter("ai.phase_changes",
		metric.WithDescription("Pursuit phase transitions")); err != nil {
		return nil, fmt.Errorf("creating phase changes counter: %w", err)
	}
	return &ms, nil
}

// Subscribe records the world's combat events.
func (m *Metrics) Subscribe(w donburi.World) {
	ctx := context.Background()
	components.StrikeEvents.Subscribe(w, func(_ donburi.World, ev components.StrikeEvent) {
		m.strikes.Add(ctx, 1, metric.WithAttributes(attribute.Bool("chained", ev.Chained)))
	})
	components.HitEvents.Subscribe(w, func(_ donburi.World, ev components.HitEvent) {
		m.hits.Add(ctx, 1, metric.WithAttributes(attribute.Int("comboIndex", ev.ComboIndex)))
	})
	components.DeathEvents.Subscribe(w, func(_ donburi.World, ev components.DeathEvent) {
		m.deaths.Add(ctx, 1, metric.WithAttributes(attribute.String("category", ev.Category.String())))
	})
	components.AttackRequestEvents.Subscribe(w, func(_ donburi.World, ev components.AttackRequestEvent) {
		m.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("result", ev.Result.String())))
	})
	components.PhaseChangedEvents.Subscribe(w, func(_ donburi.World, ev components.PhaseChangedEvent) {
		m.phases.Add(ctx, 1, metric.WithAttributes(attribute.String("to", ev.To.String())))
	})
}
