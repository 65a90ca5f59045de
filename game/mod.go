package game

import "fmt"

// Faction is the side controlling a territory. The stock game has exactly two.
type Faction int

const (
	Player Faction = iota
	Enemy
)

func (f Faction) String() string {
	switch f {
	case Player:
		return "Player"
	case Enemy:
		return "Enemy"
	default:
		return fmt.Sprintf("Faction(%d)", int(f))
	}
}

// Territory is a value record held by a Store.
type Territory struct {
	Name    string  // Display name
	Faction Faction // Controlling faction
	Troops  int     // Garrison size
}

// TerritoryView is a read-only copy of a territory for display.
type TerritoryView struct {
	ID      int
	Name    string
	Faction Faction
	Troops  int
}
