package main

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/automoto/doomerang-melee/components"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/scenes"
	"gopkg.in/yaml.v3"
)

// Scenario scripts the player for a headless run. Times are seconds from
// the start.
type Scenario struct {
	TickRate      int     `yaml:"tickRate"`
	Duration      float64 `yaml:"duration"`
	Level         string  `yaml:"level"`
	StopOnOutcome bool    `yaml:"stopOnOutcome"`
	Attacks       []Press `yaml:"attacks"`
	Moves         []Move  `yaml:"moves"`
}

// Press taps attack for one tick.
type Press struct {
	At float64 `yaml:"at"`
}

// Move holds a direction such as "left" or "up-right" for a while.
type Move struct {
	At  float64 `yaml:"at"`
	For float64 `yaml:"for"`
	Dir string  `yaml:"dir"`
}

var directions = map[string]cfg.ActionID{
	"left":  cfg.ActionMoveLeft,
	"right": cfg.ActionMoveRight,
	"up":    cfg.ActionMoveUp,
	"down":  cfg.ActionMoveDown,
}

var ErrNoDuration = errors.New("scenario needs a positive duration")

// ParseScenario decodes and checks a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	s := &Scenario{TickRate: cfg.Sim.TickRate}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if s.Duration <= 0 {
		return nil, ErrNoDuration
	}
	if s.TickRate <= 0 {
		s.TickRate = 60
	}
	for i, m := range s.Moves {
		for _, part := range strings.Split(m.Dir, "-") {
			if _, ok := directions[part]; !ok {
				return nil, fmt.Errorf("parse scenario: move %d: unknown direction %q", i, m.Dir)
			}
		}
	}
	sort.SliceStable(s.Attacks, func(i, j int) bool { return s.Attacks[i].At < s.Attacks[j].At })
	return s, nil
}

func (s *Scenario) DT() float64 {
	return 1 / float64(s.TickRate)
}

// Ticks is how many ticks cover the duration.
func (s *Scenario) Ticks() int {
	return int(math.Ceil(s.Duration*float64(s.TickRate) - 1e-9))
}

// InputAt is what the player holds during the tick starting at t.
func (s *Scenario) InputAt(t float64) [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	dt := s.DT()
	for _, a := range s.Attacks {
		if a.At >= t && a.At < t+dt {
			pressed[cfg.ActionAttack] = true
		}
	}
	for _, m := range s.Moves {
		if t < m.At || t >= m.At+m.For {
			continue
		}
		for _, part := range strings.Split(m.Dir, "-") {
			pressed[directions[part]] = true
		}
	}
	return pressed
}

// Summary is what a run reports.
type Summary struct {
	Ticks          int               `yaml:"ticks"`
	Seconds        float64           `yaml:"seconds"`
	Outcome        string            `yaml:"outcome"`
	Strikes        int               `yaml:"strikes"`
	ChainedStrikes int               `yaml:"chainedStrikes"`
	Hits           int               `yaml:"hits"`
	DamageDealt    float64           `yaml:"damageDealt"`
	Deaths         []string          `yaml:"deaths"`
	AttackRequests map[string]int    `yaml:"attackRequests"`
	PlayerHealth   float64           `yaml:"playerHealth"`
	Phases         map[string]string `yaml:"phases"`
}

// Run plays the scenario on arena.
func Run(s *Scenario, arena *scenes.Arena) Summary {
	ticks := s.Ticks()
	dt := s.DT()
	ran := 0
	for i := 0; i < ticks; i++ {
		arena.SetInput(s.InputAt(float64(i) * dt))
		arena.Update(dt)
		ran++
		if s.StopOnOutcome && arena.Outcome() != scenes.Ongoing {
			break
		}
	}

	t := arena.Tally()
	sum := Summary{
		Ticks:          ran,
		Seconds:        arena.Now(),
		Outcome:        arena.Outcome().String(),
		Strikes:        t.Strikes,
		ChainedStrikes: t.ChainedStrikes,
		Hits:           t.Hits,
		DamageDealt:    t.DamageDealt,
		Deaths:         append([]string(nil), t.DeathsByName...),
		AttackRequests: t.AttackRequests,
		Phases:         make(map[string]string),
	}
	if player, err := arena.Player(); err == nil {
		sum.PlayerHealth = components.Health.Get(player).Current
	}
	for name, phase := range arena.Phases() {
		sum.Phases[name] = phase.String()
	}
	return sum
}
