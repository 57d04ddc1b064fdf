// Package viewer shows an arena in an ebiten window: keyboard and gamepad
// drive the player, overlays show colliders, weapon windows and AI radii.
package viewer

import (
	"image/color"

	"github.com/automoto/doomerang-melee/components"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/scenes"
	"github.com/automoto/doomerang-melee/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

const appName = "doomerang-melee"

type Game struct {
	opts     scenes.Options
	arena    *scenes.Arena
	settings *systems.SettingsStore
	saved    systems.SavedSettings
	input    components.InputData
	paused   bool
	reload   chan struct{}
}

// NewGame builds the arena and loads the saved viewer settings.
func NewGame(opts scenes.Options) (*Game, error) {
	arena, err := scenes.NewArena(opts)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:   opts,
		reload: make(chan struct{}, 1),
		saved: systems.SavedSettings{
			TimeScaleIndex: cfg.ViewerSettings.DefaultScale,
			WindowScale:    1,
		},
	}

	store, err := systems.OpenSettings(appName)
	if err != nil {
		log.Warn().Err(err).Msg("settings will not be saved")
	}
	g.settings = store
	if saved, err := store.Load(); err == nil && saved != nil {
		g.saved = *saved
	}
	g.attach(arena)
	return g, nil
}

// ReloadSignal is handed to the tuning watcher. It may be called from any
// goroutine and survives restarts of the arena.
func (g *Game) ReloadSignal() func() {
	return func() {
		select {
		case g.reload <- struct{}{}:
		default:
		}
	}
}

// WindowScale is the saved window size multiplier.
func (g *Game) WindowScale() int {
	for _, s := range cfg.ViewerSettings.WindowScales {
		if s == g.saved.WindowScale {
			return s
		}
	}
	return 1
}

func (g *Game) Update() error {
	pressed := poll()
	g.input.Latch(pressed)
	select {
	case <-g.reload:
		g.arena.ReloadSignal()()
	default:
	}

	changed := false
	if g.input.JustPressed(cfg.ActionToggleDebug) {
		g.saved.ShowDebug = !g.saved.ShowDebug
		changed = true
	}
	if g.input.JustPressed(cfg.ActionToggleRadii) {
		g.saved.ShowRadii = !g.saved.ShowRadii
		changed = true
	}
	if g.input.JustPressed(cfg.ActionTimeScale) {
		g.saved.TimeScaleIndex = (g.saved.TimeScaleIndex + 1) % max(1, len(cfg.ViewerSettings.TimeScaleSteps))
		changed = true
	}
	if changed {
		if err := g.settings.Save(&g.saved); err != nil {
			log.Warn().Err(err).Msg("could not save settings")
		}
	}
	if g.input.JustPressed(cfg.ActionPause) {
		g.paused = !g.paused
	}
	if g.input.JustPressed(cfg.ActionRestart) {
		g.restart()
		return nil
	}
	if g.paused {
		return nil
	}

	g.arena.SetInput(pressed)
	scale := cfg.Sim.TimeScale * cfg.ViewerSettings.TimeScaleAt(g.saved.TimeScaleIndex)
	g.arena.Update(cfg.Sim.DT() * scale)

	if outcome := g.arena.Outcome(); outcome != scenes.Ongoing {
		log.Info().Stringer("outcome", outcome).Msg("fight over, restarting")
		g.restart()
	}
	return nil
}

func (g *Game) restart() {
	arena, err := scenes.NewArena(g.opts)
	if err != nil {
		log.Error().Err(err).Msg("restart failed")
		return
	}
	g.attach(arena)
	g.paused = false
}

// attach makes arena the current scene and registers the draw passes on
// its scheduler.
func (g *Game) attach(arena *scenes.Arena) {
	g.arena = arena
	e := arena.ECS()
	e.AddRenderer(cfg.LayerArena, g.drawWalls)
	e.AddRenderer(cfg.LayerArena, g.drawCombatants)
	e.AddRenderer(cfg.LayerOverlay, g.drawColliders)
	e.AddRenderer(cfg.LayerOverlay, g.drawStatus)
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	g.arena.ECS().Draw(screen)
	if g.paused {
		drawPaused(screen)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	lvl := g.arena.Level()
	return lvl.Width, lvl.Height
}
