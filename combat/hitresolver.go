package combat

// Hit describes one damage application made by a HitResolver.
type Hit struct {
	Owner      CombatantID
	Target     CombatantID
	Damage     float64
	ComboIndex int
}

// HitResolver turns weapon overlaps into damage. While active, each target
// is struck at most once; activating again starts a fresh strike.
type HitResolver struct {
	owner      CombatantID
	hasOwner   bool
	damage     float64
	filter     CategoryMask
	comboIndex int

	active bool
	struck map[CombatantID]struct{}

	// OnHit is called after damage has been applied.
	OnHit func(Hit)
}

// NewHitResolver returns an inactive resolver.
func NewHitResolver(damage float64, filter CategoryMask) *HitResolver {
	r := &HitResolver{struck: make(map[CombatantID]struct{})}
	r.Initialize(damage, filter)
	return r
}

// Initialize sets damage and the target filter. It may be called between
// strikes.
func (r *HitResolver) Initialize(damage float64, filter CategoryMask) {
	r.SetDamage(damage)
	r.filter = filter
}

// SetOwner excludes the wielder from its own weapon.
func (r *HitResolver) SetOwner(id CombatantID) {
	r.owner = id
	r.hasOwner = true
}

// SetDamage changes damage for overlaps that have not resolved yet.
func (r *HitResolver) SetDamage(value float64) {
	if value < 0 {
		value = 0
	}
	r.damage = value
}

// SetComboIndex records which combo step the current strike belongs to.
func (r *HitResolver) SetComboIndex(index int) {
	r.comboIndex = index
}

func (r *HitResolver) Damage() float64 { return r.damage }

func (r *HitResolver) ComboIndex() int { return r.comboIndex }

func (r *HitResolver) Filter() CategoryMask { return r.filter }

func (r *HitResolver) IsActive() bool { return r.active }

// Activate opens a strike window. Calling it while already active keeps the
// current struck set.
func (r *HitResolver) Activate() {
	if r.active {
		return
	}
	r.active = true
	r.clearStruck()
}

// Deactivate closes the strike window.
func (r *HitResolver) Deactivate() {
	if !r.active {
		return
	}
	r.active = false
	r.clearStruck()
}

// HasStruck reports whether id was hit during the current activation.
func (r *HitResolver) HasStruck(id CombatantID) bool {
	_, ok := r.struck[id]
	return ok
}

// StruckCount is the number of distinct targets hit in this activation.
func (r *HitResolver) StruckCount() int {
	return len(r.struck)
}

// OnOverlap is called by the overlap subsystem for every intersection. It
// returns true when damage was applied. The aliveness check, the damage and
// the bookkeeping happen in one step with no callback in between.
func (r *HitResolver) OnOverlap(target Target) bool {
	if !r.active || target == nil {
		return false
	}
	id := target.CombatantID()
	if r.hasOwner && id == r.owner {
		return false
	}
	if !r.filter.Has(target.Category()) {
		return false
	}
	if _, seen := r.struck[id]; seen {
		return false
	}
	if !target.IsAlive() {
		return false
	}

	target.TakeDamage(r.damage)
	if r.struck == nil {
		r.struck = make(map[CombatantID]struct{})
	}
	r.struck[id] = struct{}{}

	if r.OnHit != nil {
		r.OnHit(Hit{
			Owner:      r.owner,
			Target:     id,
			Damage:     r.damage,
			ComboIndex: r.comboIndex,
		})
	}
	return true
}

func (r *HitResolver) clearStruck() {
	for id := range r.struck {
		delete(r.struck, id)
	}
}
