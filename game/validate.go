package game

import (
	"fmt"

	"war/meta"
)

// ValidateAttack reports whether attackerID may attack defenderID. It never mutates the store.
func ValidateAttack(s *Store, attackerID, defenderID int) error {
	attacker, err := s.Territory(attackerID)
	if err != nil {
		return err
	}
	defender, err := s.Territory(defenderID)
	if err != nil {
		return err
	}
	if attacker.Faction != Player {
		return fmt.Errorf("%w: %s is held by %s", ErrNotOwnedByPlayer, attacker.Name, attacker.Faction)
	}
	// Covers attackerID == defenderID too
	if attacker.Faction == defender.Faction {
		return fmt.Errorf("%w: %s", ErrSelfAttack, defender.Name)
	}
	if attacker.Troops < meta.MIN_ATTACK_TROOPS {
		return fmt.Errorf("%w: %s has %d", ErrInsufficientTroops, attacker.Name, attacker.Troops)
	}
	return nil
}
