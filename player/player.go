package player

import (
	"war/game"
	"war/gamemaster"
)

// Policy picks the player's next attack. ok is false when no attack is possible.
type Policy interface {
	TakeTurn(s *gamemaster.Session) (attack gamemaster.Attack, ok bool)
}

// Player attacks at random among the legal attacks.
type Player struct {
	rng game.Roller
}

// NewPlayer creates a Player drawing from rng.
func NewPlayer(rng game.Roller) *Player {
	return &Player{rng: rng}
}

// TakeTurn decides on an attack.
func (p *Player) TakeTurn(s *gamemaster.Session) (gamemaster.Attack, bool) {
	possibleAttacks := s.LegalAttacks()
	if len(possibleAttacks) == 0 {
		return gamemaster.Attack{}, false
	}
	return possibleAttacks[p.rng.Intn(len(possibleAttacks))], true
}
