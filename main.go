package main

import (
	"flag"
	"os"

	"github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/logging"
	"github.com/automoto/doomerang-melee/scenes"
	"github.com/automoto/doomerang-melee/viewer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "tuning file (yaml, json or toml); watched for changes")
	levelPath := flag.String("level", "", "arena map inside the embedded assets")
	logLevel := flag.String("log-level", "info", "trace, debug, info, warn or error")
	flag.Parse()

	logging.Setup(logging.Options{Level: *logLevel, Pretty: true, Writer: os.Stderr})

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Warn().Err(err).Msg("using default tuning")
		}
	}

	game, err := viewer.NewGame(scenes.Options{Level: *levelPath})
	if err != nil {
		log.Fatal().Err(err).Msg("could not start")
	}
	if config.LoadedFile() != "" {
		watcher, err := config.Watch(game.ReloadSignal())
		if err != nil {
			log.Warn().Err(err).Msg("tuning changes will not be picked up")
		} else {
			defer watcher.Close()
		}
	}

	scale := game.WindowScale()
	ebiten.SetWindowTitle("doomerang melee")
	ebiten.SetWindowSize(config.C.Width*scale, config.C.Height*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
