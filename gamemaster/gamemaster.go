package gamemaster

import (
	"errors"
	"fmt"

	"war/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrGameOver = errors.New("game is over - no attacks allowed")

type Option func(s *Session)

// Attack names an attacking and a defending territory.
type Attack struct {
	From int
	To   int
}

// Session owns everything one game needs: the territories, the hidden mission,
// the rules and the random source. It is not safe for concurrent use.
type Session struct {
	ID      string
	Store   *game.Store
	Mission game.Mission

	rules      game.Rules
	roller     game.Roller
	missionSet bool
	history    []game.BattleOutcome
	gameOver   bool
}

// WithStore plays on a copy of store instead of the stock map.
func WithStore(store *game.Store) Option {
	return func(s *Session) {
		if store != nil {
			s.Store = store.Copy()
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.rules = rules
		}
	}
}

func WithRoller(roller game.Roller) Option {
	return func(s *Session) {
		if roller != nil {
			s.roller = roller
		}
	}
}

// WithMission skips the random mission draw.
func WithMission(m game.Mission) Option {
	return func(s *Session) {
		s.Mission = m
		s.missionSet = true
	}
}

// NewSession builds the stock game seeded with seed and draws the player's mission.
func NewSession(seed uint64, options ...Option) (*Session, error) {
	s := &Session{ // Default values
		ID:     uuid.New().String(),
		rules:  game.NewStandardRules(),
		roller: game.NewRoller(seed),
	}
	for _, option := range options {
		option(s)
	}

	if s.Store == nil {
		store, err := game.NewStockStore()
		if err != nil {
			return nil, fmt.Errorf("failed to create map: %w", err)
		}
		s.Store = store
	}

	if !s.missionSet {
		s.Mission = game.AssignMission(s.roller)
	}
	if err := s.Mission.Validate(); err != nil {
		return nil, err
	}

	log.Debug().Str("session", s.ID).Int("territories", s.Store.Len()).Msgf("session started with mission %s", s.Mission)
	return s, nil
}

// ValidateAttack checks an attack without playing it.
func (s *Session) ValidateAttack(from, to int) error {
	if s.gameOver {
		return ErrGameOver
	}
	return game.ValidateAttack(s.Store, from, to)
}

// ResolveAttack plays one round without validation. Callers are expected to
// have called ValidateAttack first.
func (s *Session) ResolveAttack(from, to int) (game.BattleOutcome, error) {
	if s.gameOver {
		return game.BattleOutcome{}, ErrGameOver
	}
	outcome, err := game.ResolveAttack(s.Store, s.rules, s.roller, from, to)
	if err != nil {
		return game.BattleOutcome{}, err
	}
	s.history = append(s.history, outcome)

	log.Debug().
		Str("session", s.ID).
		Int("attacker", from).
		Int("defender", to).
		Int("attackerRoll", outcome.AttackerRoll).
		Int("defenderRoll", outcome.DefenderRoll).
		Stringer("loser", outcome.Loser).
		Msg("battle resolved")
	if outcome.Conquered {
		log.Info().Str("session", s.ID).Msgf("territory %d conquered from territory %d", to, from)
	}
	return outcome, nil
}

// Attack validates and then plays one round.
func (s *Session) Attack(from, to int) (game.BattleOutcome, error) {
	if err := s.ValidateAttack(from, to); err != nil {
		return game.BattleOutcome{}, err
	}
	return s.ResolveAttack(from, to)
}

// CheckMission reports whether the mission is complete. A true result ends the game.
func (s *Session) CheckMission() bool {
	if !s.Mission.Satisfied(s.Store) {
		return false
	}
	if !s.gameOver {
		log.Info().Str("session", s.ID).Int("battles", len(s.history)).Msgf("mission %s complete", s.Mission)
	}
	s.gameOver = true
	return true
}

// IsOver reports whether a completed mission has been confirmed.
func (s *Session) IsOver() bool {
	return s.gameOver
}

func (s *Session) Snapshot() []game.TerritoryView {
	return s.Store.Snapshot()
}

// History returns the battles played so far, oldest first.
func (s *Session) History() []game.BattleOutcome {
	historyCopy := make([]game.BattleOutcome, len(s.history))
	copy(historyCopy, s.history)
	return historyCopy
}

// LegalAttacks returns every attack that would pass validation.
func (s *Session) LegalAttacks() []Attack {
	var attacks []Attack
	if s.gameOver {
		return attacks
	}
	for from := 0; from < s.Store.Len(); from++ {
		for to := 0; to < s.Store.Len(); to++ {
			if game.ValidateAttack(s.Store, from, to) == nil {
				attacks = append(attacks, Attack{From: from, To: to})
			}
		}
	}
	return attacks
}
