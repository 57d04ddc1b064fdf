// Package combat holds the melee core: the hit resolver, the combo attack
// state machine and the perception/pursuit state machine. Nothing in here
// knows about rendering, input devices or physics; collaborators are reached
// through the narrow interfaces below.
package combat

import (
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CombatantID is a handle to an entity that can fight. The world owns the
// entity; the state machines only remember the handle.
type CombatantID = donburi.Entity

// Category is the coarse kind of an entity as seen by weapon filters.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryEnemy
	CategoryProp
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryProp:
		return "prop"
	default:
		return "none"
	}
}

// CategoryMask is a set of categories.
type CategoryMask uint32

// MaskOf builds a mask containing the given categories.
func MaskOf(cs ...Category) CategoryMask {
	var m CategoryMask
	for _, c := range cs {
		m |= 1 << c
	}
	return m
}

// Has reports whether c is a member of the mask.
func (m CategoryMask) Has(c Category) bool {
	return m&(1<<c) != 0
}

// Role is what the target lookup service is asked for.
type Role string

const (
	RolePlayer Role = "player"
	RoleEnemy  Role = "enemy"
)

// Oracle reports what the attacker's animation is doing right now.
// AttackProgress is cyclic in [0,1).
type Oracle interface {
	AttackTagActive() bool
	AttackProgress() float64
}

// Damageable is the health side of a combatant.
type Damageable interface {
	TakeDamage(amount float64)
	IsAlive() bool
}

// Target is anything the overlap subsystem can hand to a HitResolver.
type Target interface {
	Damageable
	CombatantID() CombatantID
	Category() Category
}

// Animator starts the attack clip for a combo variant.
type Animator interface {
	PlayAttack(variant int)
}

// Mover is the locomotion collaborator used by the coordinator.
type Mover interface {
	MoveToward(position dmath.Vec2)
	Stop()
	FaceToward(direction dmath.Vec2)
}

// Registry resolves roles to entities and entities to positions. PositionOf
// returns false once the entity is gone or dying.
type Registry interface {
	FindByRole(role Role) (CombatantID, bool)
	PositionOf(id CombatantID) (dmath.Vec2, bool)
}

// Clock is a monotonic time source in seconds.
type Clock interface {
	Now() float64
}

// Distance is the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Direction is the unit vector from a to b, or zero when they coincide.
func Direction(a, b dmath.Vec2) dmath.Vec2 {
	d := Distance(a, b)
	if d == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: (b.X - a.X) / d, Y: (b.Y - a.Y) / d}
}
