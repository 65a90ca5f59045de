package game

type Rules interface {
	DieSides() int
	// DetermineAttackOutcome compares one attacker die against one defender die.
	DetermineAttackOutcome(attackerRoll, defenderRoll int) (attackerLosses, defenderLosses int)
}
