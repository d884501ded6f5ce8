package setup

import (
	"errors"
	"fmt"

	"woodland/game"

	"github.com/rs/zerolog/log"
)

// GameSetup is a generated game: who sits where with which faction, and the
// map to play on. It holds plain data only and marshals to JSON as is.
type GameSetup struct {
	TableSize int      `json:"tableSize"`
	Seats     []Seat   `json:"seats"`
	Map       MapSetup `json:"map"`
}

type Option func(g *Generator)

type Generator struct {
	catalog *game.Catalog
	rng     Random
}

func WithRandom(rng Random) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = NewRandom(seed)
	}
}

// NewGenerator returns a Generator over catalog, seeded from the clock unless
// an option says otherwise.
func NewGenerator(catalog *game.Catalog, options ...Option) *Generator {
	if catalog == nil {
		panic("Must specify a catalog")
	}
	g := &Generator{
		catalog: catalog,
		rng:     newTimeSeededRandom(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *Generator) Catalog() *game.Catalog {
	return g.catalog
}

// Generate assigns factions to the roster, shuffles the seats and deals a map.
// players is copied first and never modified. Nothing is returned on failure.
func (g *Generator) Generate(players []game.Player) (*GameSetup, error) {
	roster := make([]game.Player, len(players))
	copy(roster, players)

	seats, err := AssignFactions(g.catalog, g.rng, roster)
	if err != nil {
		return nil, err
	}
	g.rng.Shuffle(len(seats), func(i, j int) {
		seats[i], seats[j] = seats[j], seats[i]
	})

	return &GameSetup{
		TableSize: len(seats),
		Seats:     seats,
		Map:       RandomizeMap(g.catalog, g.rng),
	}, nil
}

// GenerateWithRetry calls Generate up to attempts times, drawing again only
// when the draws ran into ErrNoFeasibleCombination.
func (g *Generator) GenerateWithRetry(players []game.Player, attempts int) (*GameSetup, error) {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		var gs *GameSetup
		gs, err = g.Generate(players)
		if err == nil {
			return gs, nil
		}
		if !errors.Is(err, game.ErrNoFeasibleCombination) {
			return nil, err
		}
		log.Info().Msgf("attempt %d of %d failed: %v", i, attempts, err)
	}
	return nil, fmt.Errorf("after %d attempts: %w", attempts, err)
}
