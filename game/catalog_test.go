package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardCatalog(t *testing.T) {
	c := NewStandardCatalog()

	require.NoError(t, c.Validate(), "Standard catalog should be consistent")
	require.Len(t, c.Factions, 11)
	require.Len(t, c.Maps, 4)
	require.Len(t, c.ClearingTypes, 3)

	reach, ok := c.MinReach(4)
	require.True(t, ok)
	require.Equal(t, 21, reach)

	_, ok = c.MinReach(9)
	require.False(t, ok, "No target beyond six players")
}

func TestCatalogLookups(t *testing.T) {
	c := NewStandardCatalog()

	t.Run("bots", func(t *testing.T) {
		require.True(t, c.IsBotFaction(Marquise))
		require.False(t, c.IsBotFaction(Hundreds), "No bot plays the Lord of the Hundreds")
		require.Equal(t, "Vagabot", c.BotFor(Vagabond).Name)
		require.Nil(t, c.BotFor(Keepers))
	})

	t.Run("reach", func(t *testing.T) {
		require.Equal(t, 10, c.Reach(Marquise))
		require.Equal(t, 0, c.Reach("nope"), "Unknown factions have no reach")
	})

	t.Run("factions by reach", func(t *testing.T) {
		ids := c.FactionsByReach()

		require.Len(t, ids, len(c.Factions))
		for i := 1; i < len(ids); i++ {
			require.LessOrEqual(t, c.Reach(ids[i-1]), c.Reach(ids[i]), "Should be ascending by reach")
		}
		require.Equal(t, []FactionID{Lizards, Vagabond2}, ids[:2], "Ties are ordered by id")
		require.Equal(t, Marquise, ids[len(ids)-1])
	})
}

func TestCatalogValidate(t *testing.T) {
	base := func() *Catalog {
		c := NewCatalog()
		c.AddFaction(&Faction{ID: "a", Reach: 1})
		c.AddFaction(&Faction{ID: "b", Reach: 2})
		c.AddMap(&Map{Name: "m", NumClearings: 3})
		c.AddClearingType(&ClearingType{ID: "fox"})
		return c
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})

	t.Run("unknown required faction", func(t *testing.T) {
		c := base()
		c.AddFaction(&Faction{ID: "c", OnlyPresentWith: []FactionID{"z"}})
		require.ErrorIs(t, c.Validate(), ErrInvalidCatalog)
	})

	t.Run("bot plays unknown faction", func(t *testing.T) {
		c := base()
		c.AddBot(&BotPlayer{Name: "bot", Faction: "z"})
		require.ErrorIs(t, c.Validate(), ErrInvalidCatalog)
	})

	t.Run("negative reach", func(t *testing.T) {
		c := base()
		c.AddFaction(&Faction{ID: "c", Reach: -1})
		require.ErrorIs(t, c.Validate(), ErrInvalidCatalog)
	})

	t.Run("no maps", func(t *testing.T) {
		c := base()
		c.Maps = nil
		require.ErrorIs(t, c.Validate(), ErrInvalidCatalog)
	})

	t.Run("bad reach target", func(t *testing.T) {
		c := base()
		c.SetMinReach(1, 3)
		require.ErrorIs(t, c.Validate(), ErrInvalidCatalog)
	})
}

func TestFindFaction(t *testing.T) {
	c := NewStandardCatalog()

	cases := map[string]FactionID{
		"marquise":           Marquise,
		"Marquise de Cat":    Marquise,
		"  EYRIE  ":          Eyrie,
		"vagabond":           Vagabond,
		"Second Vagabond":    Vagabond2,
		"lord":               Hundreds,
		"keep":               Keepers,
		"vagabnd":            Vagabond,
		"riverfolk company":  Riverfolk,
		"underground dutchy": Duchy,
	}
	for query, want := range cases {
		got, err := c.FindFaction(query)
		require.NoError(t, err, "query %q", query)
		require.Equal(t, want, got, "query %q", query)
	}

	for _, query := range []string{"", "xyz", "vag"} {
		_, err := c.FindFaction(query)
		require.ErrorIs(t, err, ErrUnknownFaction, "query %q", query)
	}
}
