package setup

import (
	"testing"

	"woodland/game"

	"github.com/stretchr/testify/require"
)

func TestSelectFactions(t *testing.T) {
	t.Run("two humans and a bot meet the target", func(t *testing.T) {
		catalog := mockCatalog()
		for seed := uint64(1); seed <= 200; seed++ {
			got, err := SelectFactions(catalog, NewRandom(seed), 2, 1, nil)

			require.NoError(t, err, "Seed %d should find a combination", seed)
			require.Len(t, got, 3, "Should select one faction per seat")
			require.ElementsMatch(t, unique(got), got, "Factions should be distinct")
			require.GreaterOrEqual(t, totalReach(catalog, got), 6, "Total reach should meet the target")
			require.True(t, catalog.IsBotFaction(got[0]), "The bot pick should be bot eligible")
		}
	})

	t.Run("picks come from the scripted draws", func(t *testing.T) {
		catalog := mockCatalog()

		got, err := SelectFactions(catalog, &mockRandom{picks: []int{3, 1}}, 2, 0, nil)

		require.NoError(t, err)
		require.Equal(t, []game.FactionID{"C", "D"}, got, "Should pick C, then D among B and D")
	})

	t.Run("factions below the floor are dropped", func(t *testing.T) {
		catalog := mockCatalog()

		// A leaves 4 reach to find with one seat, only D has it
		got, err := SelectFactions(catalog, &mockRandom{picks: []int{0, 0}}, 2, 0, nil)

		require.NoError(t, err)
		require.Equal(t, []game.FactionID{"A", "D"}, got, "Only D can complete the target after A")
	})

	t.Run("pre-chosen factions are kept and count toward reach", func(t *testing.T) {
		catalog := mockCatalog()
		for seed := uint64(1); seed <= 100; seed++ {
			got, err := SelectFactions(catalog, NewRandom(seed), 1, 0, []game.FactionID{"E"})

			require.NoError(t, err)
			require.Equal(t, game.FactionID("E"), got[0], "Pre-chosen faction should come first")
			require.Len(t, got, 2)
			require.GreaterOrEqual(t, totalReach(catalog, got), 5, "Total reach should meet the target")
		}
	})

	t.Run("required co-factions are present", func(t *testing.T) {
		catalog := mockCatalog()
		for seed := uint64(1); seed <= 300; seed++ {
			got, err := SelectFactions(catalog, NewRandom(seed), 3, 0, nil)

			require.NoError(t, err)
			for _, id := range got {
				for _, required := range catalog.Faction(id).OnlyPresentWith {
					require.Contains(t, got, required, "%s needs %s in play", id, required)
				}
			}
		}
	})

	t.Run("standard catalog with humans always succeeds", func(t *testing.T) {
		catalog := game.NewStandardCatalog()
		for seats := 2; seats <= 6; seats++ {
			target, _ := catalog.MinReach(seats)
			for seed := uint64(1); seed <= 100; seed++ {
				got, err := SelectFactions(catalog, NewRandom(seed), seats, 0, nil)

				require.NoError(t, err, "%d seats, seed %d", seats, seed)
				require.Len(t, got, seats)
				require.ElementsMatch(t, unique(got), got, "Factions should be distinct")
				require.GreaterOrEqual(t, totalReach(catalog, got), target, "Total reach should meet the target")
			}
		}
	})

	t.Run("insufficient players", func(t *testing.T) {
		catalog := mockCatalog()

		_, err := SelectFactions(catalog, NewRandom(1), 1, 0, nil)
		require.ErrorIs(t, err, game.ErrInsufficientPlayers)

		_, err = SelectFactions(catalog, NewRandom(1), 0, 0, []game.FactionID{"A"})
		require.ErrorIs(t, err, game.ErrInsufficientPlayers)

		_, err = SelectFactions(catalog, NewRandom(1), 0, 0, nil)
		require.ErrorIs(t, err, game.ErrInsufficientPlayers)
	})

	t.Run("more seats than factions", func(t *testing.T) {
		catalog := mockCatalog()

		_, err := SelectFactions(catalog, NewRandom(1), 7, 0, nil)

		require.ErrorIs(t, err, game.ErrNotEnoughFactions)
	})

	t.Run("target out of reach", func(t *testing.T) {
		catalog := game.NewCatalog()
		catalog.AddFaction(&game.Faction{ID: "small", Reach: 1})
		catalog.AddFaction(&game.Faction{ID: "tiny", Reach: 1})
		catalog.SetMinReach(2, 10)

		_, err := SelectFactions(catalog, NewRandom(1), 2, 0, nil)

		require.ErrorIs(t, err, game.ErrNoFeasibleCombination)
	})

	t.Run("no faction left for a bot", func(t *testing.T) {
		catalog := game.NewCatalog()
		catalog.AddFaction(&game.Faction{ID: "one", Reach: 1})
		catalog.AddFaction(&game.Faction{ID: "two", Reach: 1})

		_, err := SelectFactions(catalog, NewRandom(1), 1, 1, nil)

		require.ErrorIs(t, err, game.ErrNoFeasibleCombination)
	})

	t.Run("seat count without a target", func(t *testing.T) {
		catalog := mockCatalog()

		got, err := SelectFactions(catalog, NewRandom(1), 5, 0, nil)

		require.NoError(t, err, "A missing target leaves the selection unconstrained")
		require.Len(t, got, 5)
	})

	t.Run("bad pre-chosen factions", func(t *testing.T) {
		catalog := mockCatalog()

		_, err := SelectFactions(catalog, NewRandom(1), 1, 0, []game.FactionID{"nope"})
		require.ErrorIs(t, err, game.ErrUnknownFaction)

		_, err = SelectFactions(catalog, NewRandom(1), 1, 0, []game.FactionID{"C", "C"})
		require.ErrorIs(t, err, game.ErrDuplicateFaction)
	})
}

func unique(ids []game.FactionID) []game.FactionID {
	seen := map[game.FactionID]bool{}
	var out []game.FactionID
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
