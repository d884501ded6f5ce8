package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Catalog holds the read-only reference data a game setup is drawn from.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	Factions      map[FactionID]*Faction
	Bots          []*BotPlayer
	Maps          []*Map
	ClearingTypes []*ClearingType
	MinReachBy    map[int]int // Total seat count -> minimum total reach
}

// NewCatalog creates and returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Factions:   make(map[FactionID]*Faction),
		MinReachBy: make(map[int]int),
	}
}

func (c *Catalog) AddFaction(faction *Faction) {
	c.Factions[faction.ID] = faction
}

func (c *Catalog) AddBot(bot *BotPlayer) {
	c.Bots = append(c.Bots, bot)
}

func (c *Catalog) AddMap(m *Map) {
	c.Maps = append(c.Maps, m)
}

func (c *Catalog) AddClearingType(clearing *ClearingType) {
	c.ClearingTypes = append(c.ClearingTypes, clearing)
}

// SetMinReach sets the reach target for a total seat count.
func (c *Catalog) SetMinReach(seats, reach int) {
	c.MinReachBy[seats] = reach
}

// Faction returns the faction for id, or nil if the catalog has none.
func (c *Catalog) Faction(id FactionID) *Faction {
	return c.Factions[id]
}

// Reach returns the reach of a faction, 0 for unknown ids.
func (c *Catalog) Reach(id FactionID) int {
	if f := c.Faction(id); f != nil {
		return f.Reach
	}
	return 0
}

// MinReach returns the reach target for a total seat count. Seat counts
// without a target are unconstrained.
func (c *Catalog) MinReach(seats int) (int, bool) {
	reach, ok := c.MinReachBy[seats]
	return reach, ok
}

// IsBotFaction reports whether some bot in the catalog plays the faction.
func (c *Catalog) IsBotFaction(id FactionID) bool {
	return c.BotFor(id) != nil
}

// BotFor returns the first bot that plays the faction, or nil.
func (c *Catalog) BotFor(id FactionID) *BotPlayer {
	for _, bot := range c.Bots {
		if bot.Faction == id {
			return bot
		}
	}
	return nil
}

// FactionsByReach lists every faction id sorted by ascending reach.
// Equal reach is ordered by id so the listing is stable between calls.
func (c *Catalog) FactionsByReach() []FactionID {
	ids := make([]FactionID, 0, len(c.Factions))
	for id := range c.Factions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ri, rj := c.Factions[ids[i]].Reach, c.Factions[ids[j]].Reach
		if ri == rj {
			return ids[i] < ids[j]
		}
		return ri < rj
	})
	return ids
}

// Validate checks the cross references between the catalog tables.
func (c *Catalog) Validate() error {
	if len(c.Factions) < 2 {
		return fmt.Errorf("%w: need at least two factions, got %d", ErrInvalidCatalog, len(c.Factions))
	}
	if len(c.Maps) == 0 {
		return fmt.Errorf("%w: no maps", ErrInvalidCatalog)
	}
	if len(c.ClearingTypes) == 0 {
		return fmt.Errorf("%w: no clearing types", ErrInvalidCatalog)
	}
	for id, f := range c.Factions {
		if f.ID != id {
			return fmt.Errorf("%w: faction %q stored under id %q", ErrInvalidCatalog, f.ID, id)
		}
		if f.Reach < 0 {
			return fmt.Errorf("%w: faction %q has negative reach %d", ErrInvalidCatalog, id, f.Reach)
		}
		for _, required := range f.OnlyPresentWith {
			if c.Faction(required) == nil {
				return fmt.Errorf("%w: faction %q requires unknown faction %q", ErrInvalidCatalog, id, required)
			}
		}
	}
	for _, bot := range c.Bots {
		if c.Faction(bot.Faction) == nil {
			return fmt.Errorf("%w: bot %q plays unknown faction %q", ErrInvalidCatalog, bot.Name, bot.Faction)
		}
	}
	for _, m := range c.Maps {
		if m.NumClearings <= 0 {
			return fmt.Errorf("%w: map %q has no clearings", ErrInvalidCatalog, m.Name)
		}
	}
	for seats, reach := range c.MinReachBy {
		if seats < 2 || reach < 0 {
			return fmt.Errorf("%w: bad reach target %d for %d seats", ErrInvalidCatalog, reach, seats)
		}
	}
	return nil
}

// FindFaction resolves user input to a faction id. It tries an exact id or
// name match, then a unique prefix, then the closest name by edit distance.
func (c *Catalog) FindFaction(query string) (FactionID, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownFaction)
	}

	ids := c.FactionsByReach()
	for _, id := range ids {
		if q == strings.ToLower(string(id)) || q == strings.ToLower(c.Factions[id].Name) {
			return id, nil
		}
	}

	var prefixed []FactionID
	for _, id := range ids {
		if strings.HasPrefix(strings.ToLower(string(id)), q) || strings.HasPrefix(strings.ToLower(c.Factions[id].Name), q) {
			prefixed = append(prefixed, id)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], nil
	}

	best, bestDist, tied := FactionID(""), -1, false
	for _, id := range ids {
		for _, alias := range []string{strings.ToLower(string(id)), strings.ToLower(c.Factions[id].Name)} {
			dist := levenshtein.ComputeDistance(q, alias)
			if dist > levenshteinLimit(len(alias)) {
				continue
			}
			switch {
			case bestDist < 0 || dist < bestDist:
				best, bestDist, tied = id, dist, false
			case dist == bestDist && id != best:
				tied = true
			}
		}
	}
	if bestDist < 0 || tied {
		return "", fmt.Errorf("%w: %q", ErrUnknownFaction, query)
	}
	return best, nil
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
