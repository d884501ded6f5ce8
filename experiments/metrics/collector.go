package metrics

import (
	"errors"
	"sort"
	"sync"
	"time"

	"woodland/game"
	"woodland/setup"
)

type RunMetric struct {
	Seats     int
	Reach     int
	Target    int
	Map       string
	Factions  []game.FactionID // In seat order
	Bots      []game.FactionID // Factions played by bot seats
	Failure   string           // Empty when the run produced a setup
	Duration  time.Duration
	StartTime time.Time
}

type FactionMetric struct {
	Faction  game.FactionID
	Picks    int
	BotPicks int
	Share    float64 // Picks over successful runs
}

type Summary struct {
	Runs      int
	Failures  map[string]int
	Factions  []FactionMetric // Descending by picks
	Maps      map[string]int
	MeanReach float64
	Duration  time.Duration
}

// Collector aggregates sampling runs. It is safe for concurrent use.
type Collector interface {
	Start()
	AddSetup(gs *setup.GameSetup, start time.Time)
	AddFailure(err error, start time.Time)
	Runs() []RunMetric
	Complete() Summary
}

type collector struct {
	sync.Mutex
	catalog   *game.Catalog
	startTime time.Time
	runs      []RunMetric
}

func NewCollector(catalog *game.Catalog) Collector {
	return &collector{catalog: catalog}
}

func (c *collector) Start() {
	c.Lock()
	defer c.Unlock()

	c.startTime = time.Now()
	c.runs = nil
}

func (c *collector) AddSetup(gs *setup.GameSetup, start time.Time) {
	run := RunMetric{
		Seats:     gs.TableSize,
		Map:       gs.Map.Name,
		Duration:  time.Since(start),
		StartTime: start,
	}
	run.Target, _ = c.catalog.MinReach(gs.TableSize)
	for _, seat := range gs.Seats {
		run.Factions = append(run.Factions, seat.Faction)
		run.Reach += c.catalog.Reach(seat.Faction)
		if seat.Bot {
			run.Bots = append(run.Bots, seat.Faction)
		}
	}

	c.Lock()
	defer c.Unlock()
	c.runs = append(c.runs, run)
}

func (c *collector) AddFailure(err error, start time.Time) {
	run := RunMetric{
		Failure:   failureKind(err),
		Duration:  time.Since(start),
		StartTime: start,
	}

	c.Lock()
	defer c.Unlock()
	c.runs = append(c.runs, run)
}

func (c *collector) Runs() []RunMetric {
	c.Lock()
	defer c.Unlock()

	runs := make([]RunMetric, len(c.runs))
	copy(runs, c.runs)
	return runs
}

func (c *collector) Complete() Summary {
	c.Lock()
	defer c.Unlock()

	summary := Summary{
		Runs:     len(c.runs),
		Failures: map[string]int{},
		Maps:     map[string]int{},
		Duration: time.Since(c.startTime),
	}
	picks := map[game.FactionID]*FactionMetric{}
	for id := range c.catalog.Factions {
		picks[id] = &FactionMetric{Faction: id}
	}

	succeeded, reach := 0, 0
	for _, run := range c.runs {
		if run.Failure != "" {
			summary.Failures[run.Failure]++
			continue
		}
		succeeded++
		reach += run.Reach
		summary.Maps[run.Map]++
		for _, id := range run.Factions {
			if fm, ok := picks[id]; ok {
				fm.Picks++
			}
		}
		for _, id := range run.Bots {
			if fm, ok := picks[id]; ok {
				fm.BotPicks++
			}
		}
	}
	if succeeded > 0 {
		summary.MeanReach = float64(reach) / float64(succeeded)
	}

	for _, fm := range picks {
		if succeeded > 0 {
			fm.Share = float64(fm.Picks) / float64(succeeded)
		}
		summary.Factions = append(summary.Factions, *fm)
	}
	sort.Slice(summary.Factions, func(i, j int) bool {
		a, b := summary.Factions[i], summary.Factions[j]
		if a.Picks == b.Picks {
			return a.Faction < b.Faction
		}
		return a.Picks > b.Picks
	})
	return summary
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, game.ErrInsufficientPlayers):
		return "insufficient_players"
	case errors.Is(err, game.ErrNotEnoughFactions):
		return "not_enough_factions"
	case errors.Is(err, game.ErrNoFeasibleCombination):
		return "no_feasible_combination"
	case errors.Is(err, game.ErrIneligibleFactionForBot):
		return "ineligible_faction_for_bot"
	default:
		return "other"
	}
}
