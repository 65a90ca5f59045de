package game

// Side identifies one participant of a battle.
type Side int

const (
	AttackerSide Side = iota
	DefenderSide
)

func (s Side) String() string {
	if s == AttackerSide {
		return "attacker"
	}
	return "defender"
}

// BattleOutcome records a single attack round.
type BattleOutcome struct {
	AttackerID     int
	DefenderID     int
	AttackerRoll   int
	DefenderRoll   int
	Loser          Side // Side that lost a troop in the roll
	Conquered      bool
	AttackerTroops int // Troops left after the round
	DefenderTroops int
}

// ResolveAttack plays one attack round between two territories of s.
//
// The caller is expected to run ValidateAttack first. ResolveAttack only rejects
// out-of-range ids and a territory attacking itself, and then mutates nothing.
//
// On conquest the defender flips to the attacker's faction with one occupying troop,
// and the attacker loses one more troop for the unit that moved in. That extra loss
// is applied even when it leaves the attacker at zero or below.
func ResolveAttack(s *Store, rules Rules, roller Roller, attackerID, defenderID int) (BattleOutcome, error) {
	attacker, defender, err := s.pair(attackerID, defenderID)
	if err != nil {
		return BattleOutcome{}, err
	}

	outcome := BattleOutcome{
		AttackerID:   attackerID,
		DefenderID:   defenderID,
		AttackerRoll: rollDie(roller, rules.DieSides()),
		DefenderRoll: rollDie(roller, rules.DieSides()),
	}

	attackerLosses, defenderLosses := rules.DetermineAttackOutcome(outcome.AttackerRoll, outcome.DefenderRoll)
	attacker.Troops -= attackerLosses
	defender.Troops -= defenderLosses
	if defenderLosses > 0 {
		outcome.Loser = DefenderSide
	} else {
		outcome.Loser = AttackerSide
	}

	if defender.Troops <= 0 {
		// Capture the territory
		defender.Faction = attacker.Faction
		defender.Troops = 1
		attacker.Troops--
		outcome.Conquered = true
	}

	outcome.AttackerTroops = attacker.Troops
	outcome.DefenderTroops = defender.Troops
	return outcome, nil
}
