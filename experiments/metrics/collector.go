package metrics

import (
	"sync/atomic"
	"time"

	"war/game"
)

type BattleMetric struct {
	Duration     time.Duration
	Battles      int
	AttackerWins int // Rounds won by the attacker
	Conquests    int
}

type GameMetric struct {
	Session   string
	Mission   string
	Completed bool
	Stalled   bool // No legal attack was left
	Turns     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	BattleMetric
}

type Collector interface {
	Start()
	AddBattle(outcome game.BattleOutcome)
	Complete() BattleMetric
}

type collector struct {
	startTime    time.Time
	battles      atomic.Int32
	attackerWins atomic.Int32
	conquests    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.battles.Store(0)
	m.attackerWins.Store(0)
	m.conquests.Store(0)
}

func (m *collector) AddBattle(outcome game.BattleOutcome) {
	m.battles.Add(1)
	if outcome.Loser == game.DefenderSide {
		m.attackerWins.Add(1)
	}
	if outcome.Conquered {
		m.conquests.Add(1)
	}
}

func (m *collector) Complete() BattleMetric {
	return BattleMetric{
		Duration:     time.Since(m.startTime),
		Battles:      int(m.battles.Load()),
		AttackerWins: int(m.attackerWins.Load()),
		Conquests:    int(m.conquests.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                       {}
func (m *dummyCollector) AddBattle(game.BattleOutcome) {}
func (m *dummyCollector) Complete() BattleMetric       { return BattleMetric{} }
