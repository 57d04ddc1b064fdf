package systems

import (
	"github.com/automoto/doomerang-melee/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ProcessEvents delivers everything published during the tick. It runs
// last so subscribers see the tick's final state.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

// SubscribeLogging logs combat events at debug level.
func SubscribeLogging(w donburi.World) {
	components.StrikeEvents.Subscribe(w, func(_ donburi.World, ev components.StrikeEvent) {
		log.Debug().
			Uint64("attacker", uint64(ev.Attacker)).
			Int("comboIndex", ev.ComboIndex).
			Float64("damage", ev.Damage).
			Bool("chained", ev.Chained).
			Float64("at", ev.At).
			Msg("strike")
	})
	components.HitEvents.Subscribe(w, func(_ donburi.World, ev components.HitEvent) {
		log.Debug().
			Uint64("attacker", uint64(ev.Owner)).
			Uint64("target", uint64(ev.Target)).
			Float64("damage", ev.Damage).
			Float64("remaining", ev.Remaining).
			Msg("hit")
	})
	components.PhaseChangedEvents.Subscribe(w, func(_ donburi.World, ev components.PhaseChangedEvent) {
		log.Debug().
			Uint64("agent", uint64(ev.Agent)).
			Stringer("from", ev.From).
			Stringer("to", ev.To).
			Msg("pursuit phase")
	})
}

// Tally keeps running totals of combat events.
type Tally struct {
	Strikes        int
	ChainedStrikes int
	Hits           int
	DamageDealt    float64
	Deaths         int
	PhaseChanges   int
	AttackRequests map[string]int
	DeathsByName   []string
	HitsByAttacker map[uint64]int
}

func NewTally() *Tally {
	return &Tally{
		AttackRequests: make(map[string]int),
		HitsByAttacker: make(map[uint64]int),
	}
}

func (t *Tally) Subscribe(w donburi.World) {
	components.StrikeEvents.Subscribe(w, func(_ donburi.World, ev components.StrikeEvent) {
		t.Strikes++
		if ev.Chained {
			t.ChainedStrikes++
		}
	})
	components.HitEvents.Subscribe(w, func(_ donburi.World, ev components.HitEvent) {
		t.Hits++
		t.DamageDealt += ev.Damage
		t.HitsByAttacker[uint64(ev.Owner)]++
	})
	components.DeathEvents.Subscribe(w, func(_ donburi.World, ev components.DeathEvent) {
		t.Deaths++
		t.DeathsByName = append(t.DeathsByName, ev.Name)
	})
	components.AttackRequestEvents.Subscribe(w, func(_ donburi.World, ev components.AttackRequestEvent) {
		t.AttackRequests[ev.Result.String()]++
	})
	components.PhaseChangedEvents.Subscribe(w, func(_ donburi.World, _ components.PhaseChangedEvent) {
		t.PhaseChanges++
	})
}
