package components

import (
	"github.com/automoto/doomerang-melee/combat"
	"github.com/yohamta/donburi/features/events"
)

// HitEvent is published for every damage application.
type HitEvent struct {
	combat.Hit
	Remaining float64 // target health after the hit
}

// StrikeEvent is published when an attack begins executing.
type StrikeEvent struct {
	Attacker combat.CombatantID
	combat.Strike
}

// AttackRequestEvent records what a combo machine did with an intent.
type AttackRequestEvent struct {
	Attacker combat.CombatantID
	Result   combat.AttackResult
}

// PhaseChangedEvent is published on every pursuit phase transition.
type PhaseChangedEvent struct {
	Agent combat.CombatantID
	From  combat.Phase
	To    combat.Phase
}

// DeathEvent is published once when an entity's health runs out.
type DeathEvent struct {
	Entity   combat.CombatantID
	Name     string
	Category combat.Category
}

var (
	HitEvents           = events.NewEventType[HitEvent]()
	StrikeEvents        = events.NewEventType[StrikeEvent]()
	AttackRequestEvents = events.NewEventType[AttackRequestEvent]()
	PhaseChangedEvents  = events.NewEventType[PhaseChangedEvent]()
	DeathEvents         = events.NewEventType[DeathEvent]()
)
