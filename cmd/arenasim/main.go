// Command arenasim runs an arena headless from a YAML scenario and prints a
// summary of the fight.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/logging"
	"github.com/automoto/doomerang-melee/scenes"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

func main() {
	scenarioPath := flag.String("scenario", "", "scenario file (yaml)")
	configPath := flag.String("config", "", "tuning file (yaml, json or toml)")
	levelPath := flag.String("level", "", "arena map inside the embedded assets; overrides the scenario")
	logLevel := flag.String("log-level", "info", "trace, debug, info, warn or error")
	metrics := flag.Bool("metrics", false, "record combat counters on the global OTel meter")
	flag.Parse()

	logging.Setup(logging.Options{Level: *logLevel, Pretty: true, Writer: os.Stderr})

	if err := run(*scenarioPath, *configPath, *levelPath, *metrics); err != nil {
		log.Error().Err(err).Msg("arenasim failed")
		os.Exit(1)
	}
}

func run(scenarioPath, configPath, levelPath string, metrics bool) error {
	if scenarioPath == "" {
		return fmt.Errorf("-scenario is required")
	}
	if configPath != "" {
		if err := config.Load(configPath); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(scenarioPath)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return err
	}
	if levelPath != "" {
		s.Level = levelPath
	}

	arena, err := scenes.NewArena(scenes.Options{Level: s.Level, Metrics: metrics})
	if err != nil {
		return err
	}
	summary := Run(s, arena)

	out, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
