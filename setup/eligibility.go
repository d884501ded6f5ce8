package setup

import (
	"woodland/game"

	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"
)

// CanAssign reports whether faction may take a seat given the factions already
// selected. Bot seats only accept factions some bot can play, and a faction
// with OnlyPresentWith needs every listed faction selected first.
func CanAssign(catalog *game.Catalog, id game.FactionID, selected *mapset.Set[game.FactionID], forBot bool) bool {
	if forBot && !catalog.IsBotFaction(id) {
		return false
	}
	faction := catalog.Faction(id)
	if faction == nil {
		return false
	}
	for _, required := range faction.OnlyPresentWith {
		if required == "" || catalog.Faction(required) == nil {
			// Treated as absent, the faction stays unpickable until the data is fixed
			log.Warn().Msgf("invalid faction %q in onlyPresentWith for %s", required, faction.Name)
			return false
		}
		if !selected.Has(required) {
			return false
		}
	}
	return true
}
