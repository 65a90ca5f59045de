package main

import (
	"flag"
	"os"

	"war/config"
	"war/console"
	"war/experiments"
	"war/game"
	"war/gamemaster"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	seed := flag.Uint64("seed", cfg.Seed, "Random seed (0 picks one)")
	games := flag.Int("simulate", cfg.SimGames, "Play this many automated games and print a CSV report")
	diceRounds := flag.Int("dice", 0, "Roll this many battle rounds and report the dice distribution")
	locale := flag.String("locale", cfg.Locale, "Menu language (pt-BR or en)")
	flag.Parse()
	if err := config.CheckLocale(*locale); err != nil {
		config.Exitf("config: %v", err)
	}

	if err := config.SetupLogging(cfg, os.Stderr); err != nil {
		config.Exitf("config: %v", err)
	}

	if *seed == 0 {
		*seed, err = game.NewSeed()
		if err != nil {
			config.Exitf("seed: %v", err)
		}
	}
	log.Debug().Uint64("seed", *seed).Msg("using seed")

	switch {
	case *diceRounds > 0:
		experiments.RunDiceExperiment(*diceRounds, *seed)
	case *games > 0:
		cfgSim := experiments.Config{Games: *games, MaxTurns: cfg.MaxTurns, Seed: *seed}
		if _, err := experiments.Run(cfgSim, os.Stdout); err != nil {
			config.Exitf("simulation: %v", err)
		}
	default:
		runConsole(*seed, *locale)
	}
}

func runConsole(seed uint64, locale string) {
	session, err := gamemaster.NewSession(seed)
	if err != nil {
		config.Exitf("fatal: %v", err)
	}

	if err := console.New(session, os.Stdin, os.Stdout, console.Locale(locale)).Run(); err != nil {
		config.Exitf("console: %v", err)
	}
}
