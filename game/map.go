package game

import (
	"fmt"

	"war/utils"
)

// Store is the fixed, index-addressable collection of territories for one session.
// Only faction and troop fields change after construction.
type Store struct {
	territories []Territory
}

// NewStore copies the given territories into a new Store.
func NewStore(territories []Territory) (*Store, error) {
	if len(territories) == 0 {
		return nil, ErrEmptyMap
	}
	names := make([]string, 0, len(territories))
	for _, t := range territories {
		if utils.FindIndex(names, t.Name) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTerritory, t.Name)
		}
		names = append(names, t.Name)
	}

	s := &Store{territories: make([]Territory, len(territories))}
	copy(s.territories, territories)
	return s, nil
}

// NewStockStore creates the store for the stock game.
func NewStockStore() (*Store, error) {
	return NewStore(stockTerritories)
}

// Len returns the number of territories.
func (s *Store) Len() int {
	return len(s.territories)
}

// Territory returns a copy of the territory at id.
func (s *Store) Territory(id int) (Territory, error) {
	if !s.valid(id) {
		return Territory{}, fmt.Errorf("%w: %d", ErrInvalidTerritory, id)
	}
	return s.territories[id], nil
}

// Index returns the id of the named territory, or -1.
func (s *Store) Index(name string) int {
	for i, t := range s.territories {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// CountFaction returns how many territories f controls.
func (s *Store) CountFaction(f Faction) int {
	return utils.CountFunc(s.territories, func(t Territory) bool {
		return t.Faction == f
	})
}

// Snapshot returns the territories in id order for display.
func (s *Store) Snapshot() []TerritoryView {
	views := make([]TerritoryView, len(s.territories))
	for i, t := range s.territories {
		views[i] = TerritoryView{
			ID:      i,
			Name:    t.Name,
			Faction: t.Faction,
			Troops:  t.Troops,
		}
	}
	return views
}

// Copy returns an independent store with the same contents.
func (s *Store) Copy() *Store {
	territoriesCopy := make([]Territory, len(s.territories))
	copy(territoriesCopy, s.territories)
	return &Store{territories: territoriesCopy}
}

func (s *Store) valid(id int) bool {
	return id >= 0 && id < len(s.territories)
}

// pair hands out mutable access to two distinct territories.
func (s *Store) pair(attackerID, defenderID int) (*Territory, *Territory, error) {
	if !s.valid(attackerID) {
		return nil, nil, fmt.Errorf("%w: attacker %d", ErrInvalidTerritory, attackerID)
	}
	if !s.valid(defenderID) {
		return nil, nil, fmt.Errorf("%w: defender %d", ErrInvalidTerritory, defenderID)
	}
	if attackerID == defenderID {
		return nil, nil, fmt.Errorf("%w: territory %d", ErrSelfAttack, attackerID)
	}
	return &s.territories[attackerID], &s.territories[defenderID], nil
}

// Stock map: territories 0 and 1 start with the player, the rest with the enemy.
var stockTerritories = []Territory{
	{Name: "Brasil", Faction: Player, Troops: 5},
	{Name: "Franca", Faction: Player, Troops: 3},
	{Name: "Australia", Faction: Enemy, Troops: 2},
	{Name: "Egito", Faction: Enemy, Troops: 4},
	{Name: "Russia", Faction: Enemy, Troops: 3},
}
