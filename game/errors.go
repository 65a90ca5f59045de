package game

import "errors"

// Attack and setup errors. All attack errors are recoverable.
var (
	ErrInvalidTerritory   = errors.New("invalid territory")
	ErrNotOwnedByPlayer   = errors.New("cannot attack: origin territory is not held by the player")
	ErrSelfAttack         = errors.New("cannot attack: target territory is held by the same faction")
	ErrInsufficientTroops = errors.New("cannot attack: not enough troops to attack")
	ErrEmptyMap           = errors.New("map has no territories")
	ErrDuplicateTerritory = errors.New("duplicate territory name")
	ErrUnknownMission     = errors.New("unknown mission")
)
