package setup

import (
	"fmt"

	"woodland/game"
	"woodland/utils"

	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"
)

type selection struct {
	catalog   *game.Catalog
	rng       Random
	seats     int
	target    int
	reach     int
	available []game.FactionID // Ascending by reach
	selected  mapset.Set[game.FactionID]
	order     []game.FactionID
}

// SelectFactions picks one distinct faction per seat: the pre-chosen factions,
// then one per bot, then one per human. The returned slice is in that order and
// its total reach meets the catalog's target for the seat count.
//
// Each random pick is restricted to factions that can still reach the target if
// the remaining seats took the largest factions left. Factions below that floor
// are dropped for good. This is a greedy pruning step, not a search: a faction
// dropped here is never reconsidered, and a catalog can be built where some
// legal combination exists but the draws still end in ErrNoFeasibleCombination.
func SelectFactions(catalog *game.Catalog, rng Random, numHumans, numBots int, preChosen []game.FactionID) ([]game.FactionID, error) {
	seats := numHumans + numBots + len(preChosen)
	if seats <= 1 {
		return nil, fmt.Errorf("%w: %d seats", game.ErrInsufficientPlayers, seats)
	}
	available := catalog.FactionsByReach()
	if seats > len(available) {
		return nil, fmt.Errorf("%w: %d seats, %d factions", game.ErrNotEnoughFactions, seats, len(available))
	}

	target, ok := catalog.MinReach(seats)
	if !ok {
		log.Warn().Msgf("no reach target for %d seats, selecting without one", seats)
	}

	s := &selection{
		catalog:   catalog,
		rng:       rng,
		seats:     seats,
		target:    target,
		available: available,
		selected:  mapset.New[game.FactionID](),
	}

	for _, id := range preChosen {
		if catalog.Faction(id) == nil {
			return nil, fmt.Errorf("%w: %q", game.ErrUnknownFaction, id)
		}
		if s.selected.Has(id) {
			return nil, fmt.Errorf("%w: %q", game.ErrDuplicateFaction, id)
		}
		s.take(id)
	}
	for i := 0; i < numBots; i++ {
		if err := s.pick(true); err != nil {
			return nil, err
		}
	}
	for i := 0; i < numHumans; i++ {
		if err := s.pick(false); err != nil {
			return nil, err
		}
	}

	log.Debug().Msgf("selected %v with reach %d of %d", s.order, s.reach, s.target)
	return s.order, nil
}

func (s *selection) take(id game.FactionID) {
	s.available, _ = utils.Remove(s.available, id)
	s.selected.Put(id)
	s.order = append(s.order, id)
	s.reach += s.catalog.Reach(id)
}

func (s *selection) pick(forBot bool) error {
	remaining := s.seats - len(s.order)
	if len(s.available) < remaining {
		return fmt.Errorf("%w: %d factions left for %d seats", game.ErrNoFeasibleCombination, len(s.available), remaining)
	}

	floor := s.floor(remaining - 1)
	dropped := 0
	for len(s.available) > 0 && s.catalog.Reach(s.available[0]) < floor {
		s.available = s.available[1:]
		dropped++
	}
	if dropped > 0 {
		log.Debug().Msgf("dropped %d factions below reach %d", dropped, floor)
	}
	if len(s.available) < remaining {
		return fmt.Errorf("%w: reach %d of %d with %d seats left", game.ErrNoFeasibleCombination, s.reach, s.target, remaining)
	}

	var pickable []game.FactionID
	for _, id := range s.available {
		if CanAssign(s.catalog, id, &s.selected, forBot) {
			pickable = append(pickable, id)
		}
	}
	if len(pickable) == 0 {
		return fmt.Errorf("%w: no eligible faction (bot seat: %t)", game.ErrNoFeasibleCombination, forBot)
	}

	s.take(pickable[s.rng.Intn(len(pickable))])
	return nil
}

// floor is the smallest reach the next pick may have so that, with the after
// largest available factions filling the later seats, the target is still met.
func (s *selection) floor(after int) int {
	largest := s.available[len(s.available)-after:]
	return s.target - s.reach - utils.Sum(largest, s.catalog.Reach)
}
