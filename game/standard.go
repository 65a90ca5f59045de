package game

import "war/meta"

type StandardRules struct {
	Sides int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Sides: meta.DIE_SIDES,
	}
}

func (sr *StandardRules) DieSides() int {
	return sr.Sides
}

// DetermineAttackOutcome: the attacker must roll strictly higher, ties go to the defender.
func (sr *StandardRules) DetermineAttackOutcome(attackerRoll, defenderRoll int) (attackerLosses, defenderLosses int) {
	if attackerRoll > defenderRoll {
		return 0, 1
	}
	return 1, 0
}
