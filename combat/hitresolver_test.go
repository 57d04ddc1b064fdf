package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitResolver_StrikesEachTargetOnce(t *testing.T) {
	r := NewHitResolver(10, MaskOf(CategoryEnemy))
	a := newFakeTarget(1, CategoryEnemy, 100)
	b := newFakeTarget(2, CategoryEnemy, 100)

	r.Activate()
	assert.True(t, r.OnOverlap(a))
	assert.False(t, r.OnOverlap(a))
	assert.True(t, r.OnOverlap(b))
	assert.False(t, r.OnOverlap(b))

	assert.Equal(t, []float64{10}, a.taken)
	assert.Equal(t, []float64{10}, b.taken)
	assert.Equal(t, 2, r.StruckCount())
}

func TestHitResolver_InactiveIgnoresOverlaps(t *testing.T) {
	r := NewHitResolver(10, MaskOf(CategoryEnemy))
	a := newFakeTarget(1, CategoryEnemy, 100)

	assert.False(t, r.OnOverlap(a))
	assert.Empty(t, a.taken)

	r.Activate()
	r.Deactivate()
	assert.False(t, r.OnOverlap(a))
	assert.Empty(t, a.taken)
	assert.False(t, r.OnOverlap(nil))
}

func TestHitResolver_ReactivationStartsFreshStrike(t *testing.T) {
	r := NewHitResolver(5, MaskOf(CategoryEnemy))
	a := newFakeTarget(1, CategoryEnemy, 100)

	r.Activate()
	require.True(t, r.OnOverlap(a))
	r.Deactivate()
	assert.False(t, r.HasStruck(a.id))

	r.Activate()
	assert.True(t, r.OnOverlap(a))
	assert.Equal(t, []float64{5, 5}, a.taken)
}

func TestHitResolver_ActivateIsIdempotent(t *testing.T) {
	r := NewHitResolver(5, MaskOf(CategoryEnemy))
	a := newFakeTarget(1, CategoryEnemy, 100)

	r.Activate()
	require.True(t, r.OnOverlap(a))
	r.Activate()
	assert.True(t, r.HasStruck(a.id))
	assert.False(t, r.OnOverlap(a))

	r.Deactivate()
	r.Deactivate()
	assert.False(t, r.IsActive())
}

func TestHitResolver_Filter(t *testing.T) {
	tests := []struct {
		name     string
		filter   CategoryMask
		category Category
		want     bool
	}{
		{name: "enemy allowed", filter: MaskOf(CategoryEnemy), category: CategoryEnemy, want: true},
		{name: "player excluded", filter: MaskOf(CategoryEnemy), category: CategoryPlayer, want: false},
		{name: "prop allowed", filter: MaskOf(CategoryEnemy, CategoryProp), category: CategoryProp, want: true},
		{name: "empty filter", filter: 0, category: CategoryEnemy, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewHitResolver(1, tt.filter)
			r.Activate()
			target := newFakeTarget(7, tt.category, 10)
			assert.Equal(t, tt.want, r.OnOverlap(target))
		})
	}
}

func TestHitResolver_SkipsDeadAndOwner(t *testing.T) {
	r := NewHitResolver(10, MaskOf(CategoryEnemy, CategoryPlayer))
	r.SetOwner(CombatantID(3))
	r.Activate()

	dead := newFakeTarget(1, CategoryEnemy, 0)
	assert.False(t, r.OnOverlap(dead))
	assert.Empty(t, dead.taken)

	self := newFakeTarget(3, CategoryPlayer, 100)
	assert.False(t, r.OnOverlap(self))
	assert.Empty(t, self.taken)
}

func TestHitResolver_SetDamageAppliesToLaterOverlaps(t *testing.T) {
	r := NewHitResolver(10, MaskOf(CategoryEnemy))
	a := newFakeTarget(1, CategoryEnemy, 100)
	b := newFakeTarget(2, CategoryEnemy, 100)

	r.Activate()
	r.OnOverlap(a)
	r.SetDamage(25)
	r.OnOverlap(b)

	assert.Equal(t, []float64{10}, a.taken)
	assert.Equal(t, []float64{25}, b.taken)

	r.SetDamage(-4)
	assert.Equal(t, 0.0, r.Damage())
}

func TestHitResolver_OnHitReportsStrike(t *testing.T) {
	r := NewHitResolver(15, MaskOf(CategoryEnemy))
	r.SetOwner(CombatantID(9))
	r.SetComboIndex(1)

	var hits []Hit
	r.OnHit = func(h Hit) { hits = append(hits, h) }

	r.Activate()
	r.OnOverlap(newFakeTarget(4, CategoryEnemy, 100))

	require.Len(t, hits, 1)
	assert.Equal(t, Hit{Owner: CombatantID(9), Target: CombatantID(4), Damage: 15, ComboIndex: 1}, hits[0])
}

func TestMultiplierTable_At(t *testing.T) {
	table := MultiplierTable{1, 1.5, 2}
	assert.Equal(t, 1.0, table.At(0))
	assert.Equal(t, 1.5, table.At(1))
	assert.Equal(t, 2.0, table.At(2))
	assert.Equal(t, 2.0, table.At(5))
	assert.Equal(t, 1.0, table.At(-1))
	assert.Equal(t, 1.0, MultiplierTable(nil).At(3))
}
