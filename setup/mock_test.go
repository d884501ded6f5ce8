package setup

import (
	"woodland/game"
)

// mockRandom replays picks for Intn (modulo n, 0 once exhausted) and leaves
// shuffled slices in place unless reverse is set.
type mockRandom struct {
	picks   []int
	pos     int
	reverse bool
}

func (m *mockRandom) Intn(n int) int {
	if m.pos >= len(m.picks) {
		return 0
	}
	v := m.picks[m.pos] % n
	m.pos++
	return v
}

func (m *mockRandom) Shuffle(n int, swap func(i, j int)) {
	if !m.reverse {
		return
	}
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

// Catalog: A(1, bot) E(1) B(2) C(3) D(4, bot) X(2, needs B), 3 seats need 6.
func mockCatalog() *game.Catalog {
	c := game.NewCatalog()
	c.AddFaction(&game.Faction{ID: "A", Name: "Alpha", Reach: 1, IconFileName: "a.png"})
	c.AddFaction(&game.Faction{ID: "B", Name: "Bravo", Reach: 2, IconFileName: "b.png"})
	c.AddFaction(&game.Faction{ID: "C", Name: "Charlie", Reach: 3, IconFileName: "c.png"})
	c.AddFaction(&game.Faction{ID: "D", Name: "Delta", Reach: 4, IconFileName: "d.png"})
	c.AddFaction(&game.Faction{ID: "E", Name: "Echo", Reach: 1, IconFileName: "e.png"})
	c.AddFaction(&game.Faction{ID: "X", Name: "X-ray", Reach: 2, IconFileName: "x.png", OnlyPresentWith: []game.FactionID{"B"}})
	c.AddBot(&game.BotPlayer{Name: "Alphabot", Faction: "A", IconFileName: "bot-a.png"})
	c.AddBot(&game.BotPlayer{Name: "Deltabot", Faction: "D", IconFileName: "bot-d.png"})
	c.AddMap(&game.Map{Name: "Square", Alt: "A square.", ImageFileName: "square.png", NumClearings: 7})
	c.AddClearingType(&game.ClearingType{ID: "fox", Name: "Fox", IconFileName: "fox.png"})
	c.AddClearingType(&game.ClearingType{ID: "rabbit", Name: "Rabbit", IconFileName: "rabbit.png"})
	c.AddClearingType(&game.ClearingType{ID: "mouse", Name: "Mouse", IconFileName: "mouse.png"})
	c.SetMinReach(2, 5)
	c.SetMinReach(3, 6)
	c.SetMinReach(4, 8)
	return c
}

func totalReach(catalog *game.Catalog, ids []game.FactionID) int {
	total := 0
	for _, id := range ids {
		total += catalog.Reach(id)
	}
	return total
}
