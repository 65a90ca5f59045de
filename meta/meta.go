// meta/meta.go
package meta

// NUM_TERRITORIES is the size of the stock map.
const NUM_TERRITORIES = 5

// DIE_SIDES is the number of faces on each battle die.
const DIE_SIDES = 6

// MIN_ATTACK_TROOPS is the garrison an attacking territory must hold: one stays, one attacks.
const MIN_ATTACK_TROOPS = 2

// CONQUEST_THRESHOLD is the territory count for the conquest mission.
const CONQUEST_THRESHOLD = 4

// MAX_TURNS caps automated games.
const MAX_TURNS = 300
