package game

import (
	"fmt"

	"war/meta"
)

type MissionKind int

const (
	ConquerTerritoriesMission MissionKind = iota
	EliminateFactionMission
)

// Mission is the player's hidden objective. Each kind carries its own parameter.
type Mission struct {
	Kind      MissionKind
	Threshold int     // ConquerTerritoriesMission: territories the player must hold
	Target    Faction // EliminateFactionMission: faction that must hold nothing
}

// ConquerTerritoryThreshold is satisfied when the player holds at least n territories.
func ConquerTerritoryThreshold(n int) Mission {
	return Mission{Kind: ConquerTerritoriesMission, Threshold: n}
}

// EliminateFaction is satisfied when f holds no territory.
func EliminateFaction(f Faction) Mission {
	return Mission{Kind: EliminateFactionMission, Target: f}
}

// StockMissions are the objectives a session can draw.
var StockMissions = []Mission{
	ConquerTerritoryThreshold(meta.CONQUEST_THRESHOLD),
	EliminateFaction(Enemy),
}

// AssignMission draws one of the stock missions uniformly.
func AssignMission(r Roller) Mission {
	return StockMissions[r.Intn(len(StockMissions))]
}

// Satisfied evaluates m against the current store. It has no side effects.
func (m Mission) Satisfied(s *Store) bool {
	switch m.Kind {
	case ConquerTerritoriesMission:
		return s.CountFaction(Player) >= m.Threshold
	case EliminateFactionMission:
		return s.CountFaction(m.Target) == 0
	default:
		return false
	}
}

func (m Mission) Validate() error {
	switch m.Kind {
	case ConquerTerritoriesMission:
		if m.Threshold <= 0 {
			return fmt.Errorf("%w: threshold %d", ErrUnknownMission, m.Threshold)
		}
		return nil
	case EliminateFactionMission:
		if m.Target != Player && m.Target != Enemy {
			return fmt.Errorf("%w: target %s", ErrUnknownMission, m.Target)
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownMission, int(m.Kind))
	}
}

func (m Mission) String() string {
	switch m.Kind {
	case ConquerTerritoriesMission:
		return fmt.Sprintf("conquer %d territories", m.Threshold)
	case EliminateFactionMission:
		return fmt.Sprintf("eliminate %s", m.Target)
	default:
		return "unknown mission"
	}
}
