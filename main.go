package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"woodland/config"
	"woodland/experiments"
	"woodland/game"
	"woodland/roster"
	"woodland/setup"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	players := flag.String("players", "", "Comma separated human player names")
	bots := flag.Int("bots", 0, "Number of bot players")
	picks := flag.String("pick", "", "Comma separated pre-chosen factions, e.g. Ann=marquise")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 seeds from the clock")
	flag.IntVar(&cfg.Retries, "retries", cfg.Retries, "Attempts when the draws miss the target reach")
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "Generate this many setups and write statistics")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Goroutines used for sampling")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for sampling output")
	flag.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "Log level")
	flag.BoolVar(&cfg.JSON, "json", cfg.JSON, "Print the setup as JSON")
	flag.Parse()

	setupLogger(cfg)

	catalog := game.NewStandardCatalog()
	if err := catalog.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad catalog")
	}

	r, err := buildRoster(catalog, *players, *bots, *picks)
	if err != nil {
		log.Fatal().Err(err).Msg("bad roster")
	}

	if cfg.Samples > 0 {
		runSampling(catalog, r.Snapshot(), cfg)
		return
	}
	runOnce(catalog, r.Snapshot(), cfg)
}

func setupLogger(cfg config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := cfg.Level()
	if err != nil {
		log.Warn().Err(err).Msg("using info level")
	}
	zerolog.SetGlobalLevel(level)
}

func buildRoster(catalog *game.Catalog, players string, bots int, picks string) (*roster.Roster, error) {
	r := roster.New(catalog)
	for _, name := range splitList(players) {
		if err := r.Add(name); err != nil {
			return nil, err
		}
	}
	for i := 0; i < bots; i++ {
		if err := r.AddBot(); err != nil {
			return nil, err
		}
	}
	for _, pick := range splitList(picks) {
		player, faction, ok := strings.Cut(pick, "=")
		if !ok {
			return nil, fmt.Errorf("pick %q: want player=faction", pick)
		}
		if err := r.ChooseByName(strings.TrimSpace(player), faction); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runOnce(catalog *game.Catalog, players []game.Player, cfg config.Config) {
	options := []setup.Option{}
	if cfg.Seed != 0 {
		options = append(options, setup.WithSeed(cfg.Seed))
	}
	generator := setup.NewGenerator(catalog, options...)

	gs, err := generator.GenerateWithRetry(players, cfg.Retries)
	if err != nil {
		log.Fatal().Err(err).Msg("could not generate a game")
	}

	if cfg.JSON {
		out, err := json.MarshalIndent(gs, "", " ")
		if err != nil {
			log.Fatal().Err(err).Msg("could not encode the game")
		}
		fmt.Println(string(out))
		return
	}

	fmt.Println("THE CONTENDERS")
	for _, seat := range gs.Seats {
		fmt.Printf("  %s (%s)\n", seat.Describe(catalog), seat.Icon(catalog))
	}
	fmt.Println("THE MAP")
	fmt.Printf("  The game will be played on the %s map.\n", gs.Map.Name)
	for i, clearing := range gs.Map.Clearings {
		fmt.Printf("  Position %d: %s\n", i, clearing.Name)
	}
}

func runSampling(catalog *game.Catalog, players []game.Player, cfg config.Config) {
	collector := experiments.RunSampling(catalog, players, experiments.SamplingConfig{
		Samples: cfg.Samples,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
		Retries: cfg.Retries,
	})
	summary, dir, err := experiments.WriteSampling(cfg.OutputDir, collector)
	if err != nil {
		log.Fatal().Err(err).Msg("could not store sampling results")
	}

	fmt.Printf("%d runs, mean reach %.2f, failures %v, written to %s\n", summary.Runs, summary.MeanReach, summary.Failures, dir)
	for _, fm := range summary.Factions {
		fmt.Printf("  %-10s %5d picks %5d by bots %6.2f%%\n", fm.Faction, fm.Picks, fm.BotPicks, fm.Share*100)
	}
}
