package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Roller is the session's source of randomness.
type Roller interface {
	Intn(n int) int
}

// NewRoller returns a deterministic pseudo-random source for the given seed.
func NewRoller(seed uint64) Roller {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func rollDie(r Roller, sides int) int {
	return r.Intn(sides) + 1
}
