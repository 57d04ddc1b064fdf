package combat

import (
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Phase is the pursuit state of an AI agent.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseChasing
	PhaseAttacking
)

func (p Phase) String() string {
	switch p {
	case PhaseChasing:
		return "chasing"
	case PhaseAttacking:
		return "attacking"
	default:
		return "idle"
	}
}

// PursuitConfig tunes perception. Radii are world units, the interval is
// seconds.
type PursuitConfig struct {
	TargetRole          Role
	DetectionRadius     float64
	AttackRadius        float64
	LoseTargetDistance  float64
	ChaseUpdateInterval float64
}

// DefaultPursuitConfig hunts the player.
func DefaultPursuitConfig() PursuitConfig {
	return PursuitConfig{
		TargetRole:          RolePlayer,
		DetectionRadius:     10,
		AttackRadius:        2,
		LoseTargetDistance:  15,
		ChaseUpdateInterval: 0.2,
	}
}

// Sanitize repairs the radii so the state machine stays well formed.
func (c *PursuitConfig) Sanitize() []string {
	var notes []string
	if c.TargetRole == "" {
		notes = append(notes, "empty targetRole set to player")
		c.TargetRole = RolePlayer
	}
	if c.DetectionRadius < 0 {
		notes = append(notes, "negative detectionRadius set to 0")
		c.DetectionRadius = 0
	}
	if c.AttackRadius < 0 {
		notes = append(notes, "negative attackRadius set to 0")
		c.AttackRadius = 0
	}
	if c.LoseTargetDistance < c.DetectionRadius {
		notes = append(notes, fmt.Sprintf("loseTargetDistance %.2f raised to detectionRadius %.2f", c.LoseTargetDistance, c.DetectionRadius))
		c.LoseTargetDistance = c.DetectionRadius
	}
	if c.ChaseUpdateInterval < 0 {
		notes = append(notes, "negative chaseUpdateInterval set to 0")
		c.ChaseUpdateInterval = 0
	}
	return notes
}

// PursuitStats counts work done, mostly for tests and debug overlays.
type PursuitStats struct {
	ChaseEvaluations int
	Acquisitions     int
}

// Pursuit is the Idle -> Chasing -> Attacking state machine of one agent.
// Chasing is re-evaluated at most once per ChaseUpdateInterval; Idle and
// Attacking are evaluated every tick.
type Pursuit struct {
	cfg      PursuitConfig
	clock    Clock
	registry Registry

	enabled      bool
	phase        Phase
	target       CombatantID
	hasTarget    bool
	nextEvalTime float64

	self       dmath.Vec2
	targetPos  dmath.Vec2
	haveSample bool

	stats PursuitStats

	// OnPhaseChange is called on every transition.
	OnPhaseChange func(from, to Phase)
}

// NewPursuit returns a disabled, idle agent.
func NewPursuit(cfg PursuitConfig, clock Clock, registry Registry) *Pursuit {
	cfg.Sanitize()
	return &Pursuit{
		cfg:          cfg,
		clock:        clock,
		registry:     registry,
		nextEvalTime: math.Inf(-1),
	}
}

func (p *Pursuit) Configure(cfg PursuitConfig) []string {
	notes := cfg.Sanitize()
	p.cfg = cfg
	return notes
}

func (p *Pursuit) Config() PursuitConfig { return p.cfg }

func (p *Pursuit) CurrentPhase() Phase { return p.phase }

func (p *Pursuit) Enabled() bool { return p.enabled }

func (p *Pursuit) Stats() PursuitStats { return p.stats }

// Target returns the current target handle, if any.
func (p *Pursuit) Target() (CombatantID, bool) {
	return p.target, p.hasTarget
}

// TargetPosition is the last sampled position of the target.
func (p *Pursuit) TargetPosition() (dmath.Vec2, bool) {
	return p.targetPos, p.hasTarget && p.haveSample
}

// DistanceToTarget is the distance at the last sample, or +Inf without a
// target.
func (p *Pursuit) DistanceToTarget() float64 {
	if !p.hasTarget || !p.haveSample {
		return math.Inf(1)
	}
	return Distance(p.self, p.targetPos)
}

// Enable lets Update run. Agents start disabled.
func (p *Pursuit) Enable() {
	p.enabled = true
}

// ResetAI forces Idle with no target and stops evaluation until Enable is
// called again.
func (p *Pursuit) ResetAI() {
	p.setPhase(PhaseIdle)
	p.dropTarget()
	p.enabled = false
}

// Update evaluates the machine for an agent standing at self.
func (p *Pursuit) Update(self dmath.Vec2) {
	if !p.enabled {
		return
	}
	p.self = self

	switch p.phase {
	case PhaseIdle:
		p.updateIdle()
	case PhaseChasing:
		p.updateChasing()
	case PhaseAttacking:
		p.updateAttacking()
	}
}

func (p *Pursuit) updateIdle() {
	if !p.hasTarget {
		p.acquire()
	}
	d, ok := p.sample()
	if !ok {
		return
	}
	if d <= p.cfg.DetectionRadius {
		p.setPhase(PhaseChasing)
	}
}

func (p *Pursuit) updateChasing() {
	now := p.now()
	if now < p.nextEvalTime {
		return
	}
	p.nextEvalTime = now + p.cfg.ChaseUpdateInterval
	p.stats.ChaseEvaluations++

	d, ok := p.sample()
	switch {
	case !ok:
		p.setPhase(PhaseIdle)
	case d <= p.cfg.AttackRadius:
		p.setPhase(PhaseAttacking)
	case d > p.cfg.LoseTargetDistance:
		p.dropTarget()
		p.setPhase(PhaseIdle)
	}
}

func (p *Pursuit) updateAttacking() {
	d, ok := p.sample()
	switch {
	case !ok:
		p.setPhase(PhaseIdle)
	case d > p.cfg.AttackRadius:
		p.setPhase(PhaseChasing)
	}
}

func (p *Pursuit) acquire() {
	if p.registry == nil {
		return
	}
	id, ok := p.registry.FindByRole(p.cfg.TargetRole)
	if !ok {
		return
	}
	p.target = id
	p.hasTarget = true
	p.haveSample = false
	p.stats.Acquisitions++
}

// sample refreshes the target position. A target the registry no longer
// knows is dropped.
func (p *Pursuit) sample() (float64, bool) {
	if !p.hasTarget || p.registry == nil {
		return 0, false
	}
	pos, ok := p.registry.PositionOf(p.target)
	if !ok {
		p.dropTarget()
		return 0, false
	}
	p.targetPos = pos
	p.haveSample = true
	return Distance(p.self, pos), true
}

func (p *Pursuit) dropTarget() {
	var none CombatantID
	p.hasTarget = false
	p.haveSample = false
	p.target = none
}

func (p *Pursuit) setPhase(to Phase) {
	from := p.phase
	if from == to {
		return
	}
	p.phase = to
	if p.OnPhaseChange != nil {
		p.OnPhaseChange(from, to)
	}
}

func (p *Pursuit) now() float64 {
	if p.clock == nil {
		return 0
	}
	return p.clock.Now()
}
