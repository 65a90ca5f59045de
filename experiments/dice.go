package experiments

import (
	"war/game"

	"github.com/rs/zerolog/log"
)

// DiceReport tallies faces over many single-round battles.
type DiceReport struct {
	Rounds          int
	AttackerFaces   []int // Indexed by face value, index 0 unused
	DefenderFaces   []int
	AttackerWinRate float64
}

// RunDiceExperiment plays rounds battles between two deep garrisons and tallies the dice.
func RunDiceExperiment(rounds int, seed uint64) DiceReport {
	rules := game.NewStandardRules()
	roller := game.NewRoller(seed)
	report := DiceReport{
		Rounds:        rounds,
		AttackerFaces: make([]int, rules.DieSides()+1),
		DefenderFaces: make([]int, rules.DieSides()+1),
	}

	store, err := game.NewStore([]game.Territory{
		{Name: "attacker", Faction: game.Player, Troops: rounds + 1},
		{Name: "defender", Faction: game.Enemy, Troops: rounds + 1},
	})
	if err != nil {
		panic(err)
	}

	attackerWins := 0
	for i := 0; i < rounds; i++ {
		outcome, err := game.ResolveAttack(store, rules, roller, 0, 1)
		if err != nil {
			panic(err)
		}
		report.AttackerFaces[outcome.AttackerRoll]++
		report.DefenderFaces[outcome.DefenderRoll]++
		if outcome.Loser == game.DefenderSide {
			attackerWins++
		}
	}
	if rounds > 0 {
		report.AttackerWinRate = float64(attackerWins) / float64(rounds)
	}

	log.Info().Msgf("dice experiment: %d rounds, attacker won %.1f%%", rounds, report.AttackerWinRate*100)
	return report
}
