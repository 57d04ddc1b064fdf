package combat

import (
	dmath "github.com/yohamta/donburi/features/math"
)

type fakeOracle struct {
	active   bool
	progress float64
}

func (o *fakeOracle) AttackTagActive() bool { return o.active }
func (o *fakeOracle) AttackProgress() float64 { return o.progress }

type fakeTarget struct {
	id       CombatantID
	category Category
	health   float64
	taken    []float64
}

func newFakeTarget(id uint64, category Category, health float64) *fakeTarget {
	return &fakeTarget{id: CombatantID(id), category: category, health: health}
}

func (t *fakeTarget) TakeDamage(amount float64) {
	t.taken = append(t.taken, amount)
	t.health -= amount
}

func (t *fakeTarget) IsAlive() bool { return t.health > 0 }
func (t *fakeTarget) CombatantID() CombatantID { return t.id }
func (t *fakeTarget) Category() Category { return t.category }

type fakeAnimator struct {
	played []int
}

func (a *fakeAnimator) PlayAttack(variant int) {
	a.played = append(a.played, variant)
}

type fakeRegistry struct {
	roles     map[Role]CombatantID
	positions map[CombatantID]dmath.Vec2
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		roles:     make(map[Role]CombatantID),
		positions: make(map[CombatantID]dmath.Vec2),
	}
}

func (r *fakeRegistry) place(role Role, id uint64, x, y float64) {
	r.roles[role] = CombatantID(id)
	r.positions[CombatantID(id)] = dmath.Vec2{X: x, Y: y}
}

func (r *fakeRegistry) remove(id uint64) {
	delete(r.positions, CombatantID(id))
	for role, rid := range r.roles {
		if rid == CombatantID(id) {
			delete(r.roles, role)
		}
	}
}

func (r *fakeRegistry) FindByRole(role Role) (CombatantID, bool) {
	id, ok := r.roles[role]
	return id, ok
}

func (r *fakeRegistry) PositionOf(id CombatantID) (dmath.Vec2, bool) {
	pos, ok := r.positions[id]
	return pos, ok
}
