package components

import (
	"github.com/automoto/doomerang-melee/combat"
	"github.com/yohamta/donburi"
)

// CombatantData says what side an entity fights on.
type CombatantData struct {
	Name     string
	Category combat.Category
	Role     combat.Role
}

var Combatant = donburi.NewComponentType[CombatantData]()

// Fighter adapts an entry to combat.Target so weapons can strike it.
type Fighter struct {
	Entry *donburi.Entry
}

func (f Fighter) CombatantID() combat.CombatantID {
	return f.Entry.Entity()
}

func (f Fighter) Category() combat.Category {
	if !f.Entry.HasComponent(Combatant) {
		return combat.CategoryNone
	}
	return Combatant.Get(f.Entry).Category
}

func (f Fighter) TakeDamage(amount float64) {
	if f.Entry.HasComponent(Health) {
		Health.Get(f.Entry).TakeDamage(amount)
	}
}

// IsAlive is false for dying entities even before their health is read.
func (f Fighter) IsAlive() bool {
	if !f.Entry.Valid() || f.Entry.HasComponent(Death) || !f.Entry.HasComponent(Health) {
		return false
	}
	return Health.Get(f.Entry).IsAlive()
}
