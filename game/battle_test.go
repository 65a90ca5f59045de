package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveAttack(t *testing.T) {
	rules := NewStandardRules()

	t.Run("attacker wins the roll", func(t *testing.T) {
		s := stockStore(t)

		got, err := ResolveAttack(s, rules, rolls(5, 3), 0, 3)
		require.NoError(t, err)

		require.Equal(t, BattleOutcome{
			AttackerID: 0, DefenderID: 3,
			AttackerRoll: 5, DefenderRoll: 3,
			Loser:          DefenderSide,
			AttackerTroops: 5, DefenderTroops: 3,
		}, got)
		egito, _ := s.Territory(3)
		require.Equal(t, 3, egito.Troops)
		require.Equal(t, Enemy, egito.Faction)
	})

	t.Run("tie goes to the defender", func(t *testing.T) {
		s := stockStore(t)

		got, err := ResolveAttack(s, rules, rolls(4, 4), 0, 3)
		require.NoError(t, err)

		require.Equal(t, AttackerSide, got.Loser)
		require.Equal(t, 4, got.AttackerTroops)
		require.Equal(t, 4, got.DefenderTroops)
		require.False(t, got.Conquered)
	})

	t.Run("defender wins the roll", func(t *testing.T) {
		s := stockStore(t)

		got, err := ResolveAttack(s, rules, rolls(1, 6), 1, 2)
		require.NoError(t, err)

		require.Equal(t, AttackerSide, got.Loser)
		franca, _ := s.Territory(1)
		require.Equal(t, 2, franca.Troops)
	})

	t.Run("conquest transfers ownership", func(t *testing.T) {
		s := newTestStore(t,
			Territory{Name: "A", Faction: Player, Troops: 4},
			Territory{Name: "B", Faction: Enemy, Troops: 1},
		)

		got, err := ResolveAttack(s, rules, rolls(6, 2), 0, 1)
		require.NoError(t, err)

		require.True(t, got.Conquered)
		require.Equal(t, DefenderSide, got.Loser)
		a, _ := s.Territory(0)
		b, _ := s.Territory(1)
		require.Equal(t, Territory{Name: "B", Faction: Player, Troops: 1}, b, "Defender should flip with one occupying troop")
		require.Equal(t, 3, a.Troops, "Attacker should only lose the unit that moved in")
		require.Equal(t, 3, got.AttackerTroops)
		require.Equal(t, 1, got.DefenderTroops)
	})

	t.Run("conquest extra loss is not clamped", func(t *testing.T) {
		// Unvalidated pair: a one-troop attacker still pays for the occupying unit
		s := newTestStore(t,
			Territory{Name: "A", Faction: Player, Troops: 1},
			Territory{Name: "B", Faction: Enemy, Troops: 1},
		)

		got, err := ResolveAttack(s, rules, rolls(3, 1), 0, 1)
		require.NoError(t, err)
		require.True(t, got.Conquered)
		require.Equal(t, 0, got.AttackerTroops)

		s = newTestStore(t,
			Territory{Name: "A", Faction: Player, Troops: 0},
			Territory{Name: "B", Faction: Enemy, Troops: 1},
		)
		got, err = ResolveAttack(s, rules, rolls(3, 1), 0, 1)
		require.NoError(t, err)
		require.Equal(t, -1, got.AttackerTroops)
	})

	t.Run("enemy attacker conquers for the enemy", func(t *testing.T) {
		s := newTestStore(t,
			Territory{Name: "A", Faction: Enemy, Troops: 3},
			Territory{Name: "B", Faction: Player, Troops: 1},
		)

		_, err := ResolveAttack(s, rules, rolls(2, 1), 0, 1)
		require.NoError(t, err)
		b, _ := s.Territory(1)
		require.Equal(t, Enemy, b.Faction)
	})

	t.Run("invalid ids mutate nothing", func(t *testing.T) {
		s := stockStore(t)
		before := s.Snapshot()
		roller := rolls()

		_, err := ResolveAttack(s, rules, roller, 0, 5)
		require.ErrorIs(t, err, ErrInvalidTerritory)
		_, err = ResolveAttack(s, rules, roller, -1, 2)
		require.ErrorIs(t, err, ErrInvalidTerritory)
		_, err = ResolveAttack(s, rules, roller, 2, 2)
		require.ErrorIs(t, err, ErrSelfAttack)

		require.Equal(t, before, s.Snapshot())
	})
}

func TestResolveAttackChangesExactlyOneCount(t *testing.T) {
	rules := NewStandardRules()
	roller := NewRoller(42)

	for i := 0; i < 500; i++ {
		s := newTestStore(t,
			Territory{Name: "A", Faction: Player, Troops: 2 + i%4},
			Territory{Name: "B", Faction: Enemy, Troops: 1 + i%3},
			Territory{Name: "C", Faction: Enemy, Troops: 2},
		)
		require.NoError(t, ValidateAttack(s, 0, 1))
		before := s.Snapshot()

		got, err := ResolveAttack(s, rules, roller, 0, 1)
		require.NoError(t, err)
		after := s.Snapshot()

		require.Equal(t, before[2], after[2], "Bystanders should not change")
		require.Equal(t, before[0].Name, after[0].Name)
		require.Equal(t, before[1].Name, after[1].Name)
		switch {
		case got.Conquered:
			require.Equal(t, Player, after[1].Faction)
			require.Equal(t, 1, after[1].Troops)
			require.Equal(t, before[0].Troops-1, after[0].Troops)
			require.Greater(t, got.AttackerRoll, got.DefenderRoll)
		case got.Loser == DefenderSide:
			require.Equal(t, before[0].Troops, after[0].Troops)
			require.Equal(t, before[1].Troops-1, after[1].Troops)
			require.Greater(t, got.AttackerRoll, got.DefenderRoll)
		default:
			require.Equal(t, before[0].Troops-1, after[0].Troops)
			require.Equal(t, before[1].Troops, after[1].Troops)
			require.LessOrEqual(t, got.AttackerRoll, got.DefenderRoll)
		}
		require.GreaterOrEqual(t, after[0].Troops, 1, "A validated attacker keeps a garrison")
	}
}

func TestDiceAreUniform(t *testing.T) {
	const draws = 10000
	rules := NewStandardRules()
	roller := NewRoller(7)
	var attackerCounts, defenderCounts [7]int

	for i := 0; i < draws; i++ {
		// Deep garrisons so no conquest interferes
		s := newTestStore(t,
			Territory{Name: "A", Faction: Player, Troops: 100},
			Territory{Name: "B", Faction: Enemy, Troops: 100},
		)
		got, err := ResolveAttack(s, rules, roller, 0, 1)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got.AttackerRoll, 1)
		require.LessOrEqual(t, got.AttackerRoll, 6)
		require.GreaterOrEqual(t, got.DefenderRoll, 1)
		require.LessOrEqual(t, got.DefenderRoll, 6)
		attackerCounts[got.AttackerRoll]++
		defenderCounts[got.DefenderRoll]++
	}

	// Expected 1666 per face; 5 standard deviations is about 186
	for face := 1; face <= 6; face++ {
		require.InDelta(t, draws/6.0, attackerCounts[face], 250, "attacker face %d", face)
		require.InDelta(t, draws/6.0, defenderCounts[face], 250, "defender face %d", face)
	}
}

func TestNewRollerIsDeterministic(t *testing.T) {
	a, b := NewRoller(12345), NewRoller(12345)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(6), b.Intn(6))
	}
}

func TestNewSeed(t *testing.T) {
	s1, err := NewSeed()
	require.NoError(t, err)
	s2, err := NewSeed()
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)
}

func TestStandardRules(t *testing.T) {
	rules := NewStandardRules()
	require.Equal(t, 6, rules.DieSides())

	for a := 1; a <= 6; a++ {
		for d := 1; d <= 6; d++ {
			attackerLosses, defenderLosses := rules.DetermineAttackOutcome(a, d)
			require.Equal(t, 1, attackerLosses+defenderLosses, "Exactly one troop is lost per round")
			if a > d {
				require.Equal(t, 1, defenderLosses)
			} else {
				require.Equal(t, 1, attackerLosses)
			}
		}
	}
}
