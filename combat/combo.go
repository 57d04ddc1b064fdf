package combat

import (
	"fmt"
	"math"
)

// ComboConfig tunes one attacker's combo chain. Times are seconds, window
// bounds are fractions of the attack clip.
type ComboConfig struct {
	BaseDamage     float64
	AttackCooldown float64
	ComboResetTime float64
	MaxComboCount  int
	WindowStart    float64
	WindowEnd      float64
	Multipliers    MultiplierTable

	// ChainDelay is the minimum gap between a strike and the strike chained
	// from it. It keeps consecutive combo hits strictly ordered in time.
	ChainDelay float64
}

// DefaultComboConfig is a three hit chain.
func DefaultComboConfig() ComboConfig {
	return ComboConfig{
		BaseDamage:     10,
		AttackCooldown: 0.4,
		ComboResetTime: 1.0,
		MaxComboCount:  3,
		WindowStart:    0.5,
		WindowEnd:      0.9,
		Multipliers:    MultiplierTable{1, 1.5, 2},
		ChainDelay:     0.05,
	}
}

// Sanitize repairs values the state machine cannot work with and returns a
// note for each repair.
func (c *ComboConfig) Sanitize() []string {
	var notes []string
	if c.MaxComboCount < 1 {
		notes = append(notes, fmt.Sprintf("maxComboCount %d raised to 1", c.MaxComboCount))
		c.MaxComboCount = 1
	}
	if c.BaseDamage < 0 {
		notes = append(notes, fmt.Sprintf("baseDamage %.2f raised to 0", c.BaseDamage))
		c.BaseDamage = 0
	}
	if c.AttackCooldown < 0 {
		notes = append(notes, "negative attackCooldown set to 0")
		c.AttackCooldown = 0
	}
	if c.ComboResetTime < 0 {
		notes = append(notes, "negative comboResetTime set to 0")
		c.ComboResetTime = 0
	}
	if c.ChainDelay < 0 {
		notes = append(notes, "negative chainDelay set to 0")
		c.ChainDelay = 0
	}
	if len(c.Multipliers) == 0 {
		notes = append(notes, "empty multiplier table replaced with [1]")
		c.Multipliers = MultiplierTable{1}
	}
	if c.WindowEnd <= 0 || c.WindowEnd > 1 {
		notes = append(notes, fmt.Sprintf("windowEnd %.2f clamped to 1", c.WindowEnd))
		c.WindowEnd = 1
	}
	if c.WindowStart <= 0 || c.WindowStart >= c.WindowEnd {
		start := c.WindowEnd / 2
		notes = append(notes, fmt.Sprintf("windowStart %.2f moved to %.2f", c.WindowStart, start))
		c.WindowStart = start
	}
	return notes
}

// AttackResult says what became of an attack request.
type AttackResult int

const (
	AttackDropped AttackResult = iota
	AttackStarted
	AttackQueued
)

func (r AttackResult) String() string {
	switch r {
	case AttackStarted:
		return "started"
	case AttackQueued:
		return "queued"
	default:
		return "dropped"
	}
}

// Strike is reported each time an attack begins executing.
type Strike struct {
	ComboIndex int
	Damage     float64
	At         float64
	Chained    bool
}

// Combo is the per-attacker combo attack state machine. It is Ready when
// not attacking and Executing otherwise; a queued follow-up is a flag, not a
// state.
type Combo struct {
	cfg      ComboConfig
	clock    Clock
	oracle   Oracle
	resolver *HitResolver
	animator Animator

	comboIndex     int
	isAttacking    bool
	queuedNext     bool
	lastAttackTime float64
	resetCountdown float64

	// OnStrike is called after an attack begins.
	OnStrike func(Strike)
}

// NewCombo builds a combo machine. resolver and animator may be nil.
func NewCombo(cfg ComboConfig, clock Clock, oracle Oracle, resolver *HitResolver, animator Animator) *Combo {
	cfg.Sanitize()
	return &Combo{
		cfg:            cfg,
		clock:          clock,
		oracle:         oracle,
		resolver:       resolver,
		animator:       animator,
		lastAttackTime: math.Inf(-1),
	}
}

// Configure swaps the tuning in place, keeping the combo index in range.
func (c *Combo) Configure(cfg ComboConfig) []string {
	notes := cfg.Sanitize()
	c.cfg = cfg
	if c.comboIndex >= cfg.MaxComboCount {
		c.comboIndex = 0
	}
	return notes
}

func (c *Combo) Config() ComboConfig { return c.cfg }

func (c *Combo) ComboIndex() int { return c.comboIndex }

func (c *Combo) IsAttacking() bool { return c.isAttacking }

func (c *Combo) QueuedNext() bool { return c.queuedNext }

func (c *Combo) LastAttackTime() float64 { return c.lastAttackTime }

func (c *Combo) ResetCountdown() float64 { return c.resetCountdown }

// CanAttack is true when a request would start a fresh attack now.
func (c *Combo) CanAttack() bool {
	return !c.isAttacking && c.cooldownElapsed()
}

// ComboProgress is how far along the chain the attacker is, in [0,1].
func (c *Combo) ComboProgress() float64 {
	if c.cfg.MaxComboCount <= 1 {
		return 0
	}
	return float64(c.comboIndex) / float64(c.cfg.MaxComboCount-1)
}

// DamageFor is the damage a strike at index would deal.
func (c *Combo) DamageFor(index int) float64 {
	return c.cfg.BaseDamage * c.cfg.Multipliers.At(index)
}

// RequestAttack handles one attack intent.
func (c *Combo) RequestAttack() AttackResult {
	if !c.isAttacking {
		if !c.cooldownElapsed() {
			return AttackDropped
		}
		c.begin(false)
		return AttackStarted
	}
	if c.canContinue() {
		c.queuedNext = true
		return AttackQueued
	}
	return AttackDropped
}

// Update advances the machine by one tick of dt seconds. A queued follow-up
// is looked at before the clip tag so a request made this tick survives the
// end of the clip check.
func (c *Combo) Update(dt float64) {
	if c.isAttacking {
		if c.queuedNext {
			c.resolveQueued()
		} else if !c.tagActive() {
			c.isAttacking = false
		}
	}

	if c.isAttacking || c.queuedNext || c.comboIndex == 0 {
		return
	}
	c.resetCountdown -= dt
	if c.resetCountdown <= 0 {
		c.resetCountdown = 0
		c.comboIndex = 0
	}
}

// StopAttack cancels everything immediately and closes the weapon window.
func (c *Combo) StopAttack() {
	c.isAttacking = false
	c.queuedNext = false
	c.comboIndex = 0
	c.resetCountdown = 0
	if c.resolver != nil {
		c.resolver.Deactivate()
	}
}

func (c *Combo) resolveQueued() {
	if !c.tagActive() {
		// The clip ended before the window was reached.
		c.queuedNext = false
		c.isAttacking = false
		return
	}
	p := c.oracle.AttackProgress()
	switch {
	case p > c.cfg.WindowEnd:
		c.queuedNext = false
	case p >= c.cfg.WindowStart:
		if c.now()-c.lastAttackTime < c.cfg.ChainDelay {
			return
		}
		c.comboIndex++
		if c.comboIndex >= c.cfg.MaxComboCount {
			c.comboIndex = 0
		}
		c.queuedNext = false
		c.isAttacking = false
		c.begin(true)
	}
}

func (c *Combo) begin(chained bool) {
	now := c.now()
	c.isAttacking = true
	c.lastAttackTime = now
	c.resetCountdown = c.cfg.ComboResetTime

	damage := c.DamageFor(c.comboIndex)
	if c.resolver != nil {
		c.resolver.SetComboIndex(c.comboIndex)
		c.resolver.SetDamage(damage)
	}
	if c.animator != nil {
		c.animator.PlayAttack(c.comboIndex)
	}
	if c.OnStrike != nil {
		c.OnStrike(Strike{ComboIndex: c.comboIndex, Damage: damage, At: now, Chained: chained})
	}
}

func (c *Combo) canContinue() bool {
	if c.comboIndex >= c.cfg.MaxComboCount-1 {
		return false
	}
	if c.oracle == nil {
		return false
	}
	return c.oracle.AttackProgress() < c.cfg.WindowEnd
}

func (c *Combo) cooldownElapsed() bool {
	return c.now() >= c.lastAttackTime+c.cfg.AttackCooldown
}

func (c *Combo) tagActive() bool {
	return c.oracle != nil && c.oracle.AttackTagActive()
}

func (c *Combo) now() float64 {
	if c.clock == nil {
		return 0
	}
	return c.clock.Now()
}
