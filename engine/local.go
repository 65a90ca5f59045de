package engine

import (
	"time"

	"war/experiments/metrics"
	"war/gamemaster"
	"war/meta"
	"war/player"

	"github.com/rs/zerolog/log"
)

var _ Runner = (*Engine)(nil)

type Engine struct {
	Session  *gamemaster.Session
	Player   player.Policy
	MaxTurns int
	metrics  metrics.Collector
}

// LocalEngine drives session with the given policy. A nil collector disables metrics.
func LocalEngine(session *gamemaster.Session, policy player.Policy, maxTurns int, collector metrics.Collector) *Engine {
	if session == nil || policy == nil {
		panic("engine needs a session and a player")
	}
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Engine{
		Session:  session,
		Player:   policy,
		MaxTurns: maxTurns,
		metrics:  collector,
	}
}

// Run executes the turn loop. Each turn checks the mission first, then plays one attack.
func (e *Engine) Run() metrics.GameMetric {
	gameMetric := metrics.GameMetric{
		Session:   e.Session.ID,
		Mission:   e.Session.Mission.String(),
		StartTime: time.Now(),
	}
	e.metrics.Start()

	log.Info().Str("session", e.Session.ID).Msgf("starting game with mission %s", e.Session.Mission)

	turnCount := 0
	for turnCount < e.MaxTurns {
		if e.Session.CheckMission() {
			gameMetric.Completed = true
			break
		}

		attack, ok := e.Player.TakeTurn(e.Session)
		if !ok {
			gameMetric.Stalled = true
			break
		}

		outcome, err := e.Session.Attack(attack.From, attack.To)
		if err != nil {
			// Policies only return legal attacks
			panic(err)
		}
		e.metrics.AddBattle(outcome)
		turnCount++
	}
	// The cap may be hit on the winning turn
	if !gameMetric.Completed && !gameMetric.Stalled && e.Session.CheckMission() {
		gameMetric.Completed = true
	}

	gameMetric.Turns = turnCount
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.BattleMetric = e.metrics.Complete()

	if gameMetric.Completed {
		log.Info().Str("session", e.Session.ID).Msgf("mission complete after %d turns", turnCount)
	} else {
		log.Info().Str("session", e.Session.ID).Msgf("stopped after %d turns (mission not complete)", turnCount)
	}
	return gameMetric
}
