package experiments

import (
	"fmt"
	"io"

	"war/engine"
	"war/experiments/metrics"
	"war/game"
	"war/gamemaster"
	"war/player"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Games    int
	MaxTurns int
	Seed     uint64 // Game i is seeded with Seed+i
}

type Summary struct {
	Games          int
	Completed      int
	Stalled        int
	CompletionRate float64
	MeanTurns      float64 // Over completed games
}

// Run plays cfg.Games automated games and writes one CSV record per game to out.
func Run(cfg Config, out io.Writer) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("number of games must be positive, got %d", cfg.Games)
	}

	log.Info().Msgf("starting simulation of %d games...", cfg.Games)

	gameRecords := make([]metrics.GameRecord, 0, cfg.Games)
	summary := Summary{Games: cfg.Games}
	completedTurns := 0
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		gameMetric, err := runGame(seed, cfg.MaxTurns)
		if err != nil {
			return Summary{}, fmt.Errorf("game %d: %w", i+1, err)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Seed:       seed,
			GameMetric: gameMetric,
		})

		if gameMetric.Completed {
			summary.Completed++
			completedTurns += gameMetric.Turns
		}
		if gameMetric.Stalled {
			summary.Stalled++
		}
		log.Debug().Msgf("completed game %d of %d (mission complete: %t)", i+1, cfg.Games, gameMetric.Completed)
	}

	summary.CompletionRate = float64(summary.Completed) / float64(summary.Games)
	if summary.Completed > 0 {
		summary.MeanTurns = float64(completedTurns) / float64(summary.Completed)
	}
	log.Info().Msgf("completed simulation: %d of %d missions complete, %d stalled", summary.Completed, summary.Games, summary.Stalled)

	if err := metrics.NewWriter(out).WriteGameRecords(gameRecords); err != nil {
		return Summary{}, err
	}
	log.Info().Msg("stored game records")

	return summary, nil
}

// runGame plays a single automated game.
func runGame(seed uint64, maxTurns int) (metrics.GameMetric, error) {
	session, err := gamemaster.NewSession(seed)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	// Separate stream so the policy does not shift the dice
	p := player.NewPlayer(game.NewRoller(^seed))
	e := engine.LocalEngine(session, p, maxTurns, metrics.NewCollector())

	return e.Run(), nil
}
