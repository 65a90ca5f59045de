package player

import (
	"testing"

	"war/game"
	"war/gamemaster"

	"github.com/stretchr/testify/require"
)

func TestTakeTurn(t *testing.T) {
	t.Run("picks a legal attack", func(t *testing.T) {
		s, err := gamemaster.NewSession(3)
		require.NoError(t, err)
		p := NewPlayer(game.NewRoller(3))

		legal := s.LegalAttacks()
		for i := 0; i < 50; i++ {
			attack, ok := p.TakeTurn(s)
			require.True(t, ok)
			require.Contains(t, legal, attack)
			require.NoError(t, s.ValidateAttack(attack.From, attack.To))
		}
	})

	t.Run("reports when no attack is possible", func(t *testing.T) {
		store, err := game.NewStore([]game.Territory{
			{Name: "A", Faction: game.Player, Troops: 1},
			{Name: "B", Faction: game.Enemy, Troops: 4},
		})
		require.NoError(t, err)
		s, err := gamemaster.NewSession(3, gamemaster.WithStore(store))
		require.NoError(t, err)

		_, ok := NewPlayer(game.NewRoller(3)).TakeTurn(s)
		require.False(t, ok)
	})
}
