package systems

import (
	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Registry answers role and position queries against a world. Dying
// entities are reported as missing.
type Registry struct {
	World donburi.World
}

func NewRegistry(w donburi.World) *Registry {
	return &Registry{World: w}
}

// FindByRole returns the first living combatant with the role, in query
// order.
func (r *Registry) FindByRole(role combat.Role) (combat.CombatantID, bool) {
	var (
		found combat.CombatantID
		ok    bool
	)
	for e := range components.Combatant.Iter(r.World) {
		if components.Combatant.Get(e).Role != role {
			continue
		}
		if !(components.Fighter{Entry: e}).IsAlive() {
			continue
		}
		found, ok = e.Entity(), true
		break
	}
	return found, ok
}

func (r *Registry) PositionOf(id combat.CombatantID) (dmath.Vec2, bool) {
	if !r.World.Valid(id) {
		return dmath.Vec2{}, false
	}
	e := r.World.Entry(id)
	if !e.HasComponent(components.Object) || !(components.Fighter{Entry: e}).IsAlive() {
		return dmath.Vec2{}, false
	}
	return components.Object.Get(e).Center(), true
}
