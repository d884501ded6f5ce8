package setup

import (
	"fmt"
	"strings"

	"woodland/game"
)

// MapSetup is a map with one clearing type per physical clearing position.
type MapSetup struct {
	game.Map
	Clearings []game.ClearingType `json:"clearings"`
}

// RandomizeMap picks a map uniformly and deals its clearings.
// An empty map catalog is a configuration error and panics.
func RandomizeMap(catalog *game.Catalog, rng Random) MapSetup {
	if len(catalog.Maps) == 0 {
		panic("catalog has no maps")
	}
	m := catalog.Maps[rng.Intn(len(catalog.Maps))]
	return MapSetup{
		Map:       *m,
		Clearings: RandomizeClearings(catalog, m, rng),
	}
}

// RandomizeClearings fills a bag with every clearing type, enough times to
// cover the map, shuffles it and keeps the first NumClearings entries.
func RandomizeClearings(catalog *game.Catalog, m *game.Map, rng Random) []game.ClearingType {
	types := catalog.ClearingTypes
	if len(types) == 0 {
		panic("catalog has no clearing types")
	}
	if m.NumClearings <= 0 {
		return []game.ClearingType{}
	}

	copies := (m.NumClearings + len(types) - 1) / len(types)
	bag := make([]game.ClearingType, 0, copies*len(types))
	for i := 0; i < copies; i++ {
		for _, ct := range types {
			bag = append(bag, *ct)
		}
	}
	rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag[:m.NumClearings:m.NumClearings]
}

// AltText describes the map image overlaid with its clearing positions.
func (ms MapSetup) AltText() string {
	var b strings.Builder
	b.WriteString(ms.Alt)
	b.WriteString("\nOverlaid with randomly ordered clearings.")
	for i, clearing := range ms.Clearings {
		fmt.Fprintf(&b, "\nPosition %d: %s clearing.", i, clearing.Name)
	}
	return b.String()
}
