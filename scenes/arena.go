// Package scenes wires the world together and runs its systems in order
// once per tick. Nothing here draws; the viewer renders a scene's world.
package scenes

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/doomerang-melee/assets"
	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/level"
	"github.com/automoto/doomerang-melee/systems"
	"github.com/automoto/doomerang-melee/systems/factory"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options selects what an Arena is built from. Zero values use the
// embedded assets and the configured level.
type Options struct {
	FS      fs.FS
	Level   string
	Metrics bool // record combat counters on the global OTel meter
}

// Outcome is how a fight stands.
type Outcome int

const (
	Ongoing Outcome = iota
	Won             // every enemy is gone
	Lost            // the player is gone
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "ongoing"
	}
}

// Arena is the melee scene: one player against the level's enemies.
type Arena struct {
	ecs    *ecs.ECS
	world  donburi.World
	level  *level.Arena
	tally  *systems.Tally
	player *donburi.Entry
	reload chan struct{}
}

// NewArena builds a fresh world from the level and current tuning.
func NewArena(opts Options) (*Arena, error) {
	for _, note := range cfg.Sanitize() {
		log.Warn().Str("note", note).Msg("tuning sanitized")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = assets.FS()
	}
	path := opts.Level
	if path == "" {
		path = cfg.Arena.Level
	}
	arena, err := level.LoadArena(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("new arena: %w", err)
	}

	world := donburi.NewWorld()
	a := &Arena{
		ecs:    ecs.NewECS(world),
		world:  world,
		level:  arena,
		tally:  systems.NewTally(),
		reload: make(chan struct{}, 1),
	}
	a.configure(opts)

	log.Info().
		Str("level", arena.Name).
		Int("enemies", len(arena.Enemies)).
		Msg("arena ready")
	return a, nil
}

func (a *Arena) configure(opts Options) {
	w := a.world
	lvl := a.level

	factory.CreateClock(w, 0)
	factory.CreateSpace(w, lvl.Width, lvl.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateBounds(w, float64(lvl.Width), float64(lvl.Height))
	for _, r := range lvl.Walls {
		factory.CreateWall(w, r.X, r.Y, r.W, r.H)
	}

	a.player = factory.CreatePlayer(w, lvl.Player.Name, lvl.Player.X, lvl.Player.Y)
	registry := systems.NewRegistry(w)
	for _, s := range lvl.Enemies {
		factory.CreateEnemy(w, s.Name, s.X, s.Y, s.EnemyType, registry)
	}

	a.tally.Subscribe(w)
	systems.SubscribeLogging(w)
	if opts.Metrics {
		if m, err := systems.NewMetrics(); err != nil {
			log.Warn().Err(err).Msg("combat metrics disabled")
		} else {
			m.Subscribe(w)
		}
	}

	// Intents first, then the machines, then the physical consequences.
	a.ecs.AddSystem(systems.UpdateInput)
	a.ecs.AddSystem(systems.UpdatePlayer)
	a.ecs.AddSystem(systems.UpdateEnemies)

	// Clips open the weapon, combos read the clip, bodies move, and only
	// then are weapon overlaps resolved against the new positions.
	a.ecs.AddSystem(systems.UpdateAnimations)
	a.ecs.AddSystem(systems.UpdateCombos)
	a.ecs.AddSystem(systems.UpdatePhysics)
	a.ecs.AddSystem(systems.UpdateWeapons)

	// Deaths are detected after all damage for the tick has landed.
	a.ecs.AddSystem(systems.UpdateCombat)
	a.ecs.AddSystem(systems.UpdateDeaths)
	a.ecs.AddSystem(systems.ProcessEvents)
}

// Update runs one tick of dt seconds. A pending tuning reload is applied
// before the systems run.
func (a *Arena) Update(dt float64) {
	select {
	case <-a.reload:
		a.reloadTuning()
	default:
	}

	systems.StepClock(a.world, dt)
	a.ecs.Update()
}

// ReloadSignal returns a function that asks the arena to re-read its tuning
// file on the next tick. It is safe to call from any goroutine and never
// blocks.
func (a *Arena) ReloadSignal() func() {
	return func() {
		select {
		case a.reload <- struct{}{}:
		default:
		}
	}
}

func (a *Arena) reloadTuning() {
	if err := cfg.Reload(); err != nil {
		log.Warn().Err(err).Msg("tuning reload failed, keeping current values")
		return
	}
	a.ApplyTuning()
}

// ApplyTuning pushes the current tuning to every living combatant. Combo
// and pursuit state survives; only parameters change.
func (a *Arena) ApplyTuning() {
	var notes []string
	notes = append(notes, cfg.Sanitize()...)

	tags.Player.Each(a.world, func(e *donburi.Entry) {
		melee := components.Melee.Get(e)
		notes = append(notes, melee.Combo.Configure(cfg.Player.Combo.Combo())...)
		components.Animation.Get(e).Attacks = factory.PlayerClips()
		components.Physics.Get(e).Speed = cfg.Player.MoveSpeed
	})
	tags.Enemy.Each(a.world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		t := cfg.Enemy.Type(enemy.TypeName)
		notes = append(notes, components.Melee.Get(e).Combo.Configure(t.Combo.Combo())...)
		if !systems.Dying(e) {
			notes = append(notes, enemy.Pursuit.Configure(t.Pursuit.Pursuit())...)
		}
		components.Physics.Get(e).Speed = t.ChaseSpeed
		enemy.TintColor = t.TintColor
	})

	for _, note := range notes {
		log.Warn().Str("note", note).Msg("tuning sanitized")
	}
	log.Info().Msg("tuning applied")
}

// SetInput latches the player's pressed actions for the next tick.
func (a *Arena) SetInput(pressed [cfg.ActionCount]bool) {
	if a.player == nil || !a.player.Valid() {
		return
	}
	components.Input.Get(a.player).Latch(pressed)
}

// ErrNoPlayer is returned by Player once the player has been removed.
var ErrNoPlayer = errors.New("player is gone")

// Player returns the player entry while it is in the world.
func (a *Arena) Player() (*donburi.Entry, error) {
	if a.player == nil || !a.player.Valid() {
		return nil, ErrNoPlayer
	}
	return a.player, nil
}

// Enemies returns every enemy still in the world, dying ones included.
func (a *Arena) Enemies() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(a.world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// Phases reports each enemy's pursuit phase by name.
func (a *Arena) Phases() map[string]combat.Phase {
	out := make(map[string]combat.Phase)
	for _, e := range a.Enemies() {
		name := components.Combatant.Get(e).Name
		out[name] = components.Enemy.Get(e).Pursuit.CurrentPhase()
	}
	return out
}

func (a *Arena) Outcome() Outcome {
	if _, err := a.Player(); err != nil {
		return Lost
	}
	if len(a.Enemies()) == 0 {
		return Won
	}
	return Ongoing
}

func (a *Arena) World() donburi.World { return a.world }

// ECS is the scheduler the arena ticks. Renderers attach to its layers.
func (a *Arena) ECS() *ecs.ECS { return a.ecs }

func (a *Arena) Level() *level.Arena { return a.level }

func (a *Arena) Tally() *systems.Tally { return a.tally }

// Now is the simulated time in seconds.
func (a *Arena) Now() float64 {
	if clock := factory.SimClock(a.world); clock != nil {
		return clock.Now()
	}
	return 0
}
