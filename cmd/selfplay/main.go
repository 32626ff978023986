// Command selfplay pits two AI strengths against each other and prints the
// tally. Configuration comes from OTHELLO_* environment variables; flags
// override them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"othello/internal/ai"
	"othello/internal/archive"
	"othello/internal/config"
	"othello/internal/match"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite archive path (empty disables recording)")
	flag.IntVar(&cfg.PoolSize, "pool", cfg.PoolSize, "games played concurrently")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "number of games")
	flag.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "board size")
	flag.UintVar(&cfg.StrengthA, "a", cfg.StrengthA, "strength of entrant A")
	flag.UintVar(&cfg.StrengthB, "b", cfg.StrengthB, "strength of entrant B")
	flag.IntVar(&cfg.OpeningPlies, "opening", cfg.OpeningPlies, "random opening plies per game")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "opening seed")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log every search")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Self-play failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	settings := match.RunnerSettings{PoolSize: cfg.PoolSize, Logger: logger}
	aiSettings := ai.Settings{}
	if cfg.Verbose {
		aiSettings.Logger = logger
	}
	settings.Searcher = ai.NewSearcher(aiSettings)

	if cfg.DBPath != "" {
		store, err := archive.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		settings.Recorder = store
		logger.Printf("Recording games to %s", cfg.DBPath)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	series := match.Series{
		Games:        cfg.Games,
		Size:         cfg.BoardSize,
		A:            match.Entrant{Name: match.RandomName(rng), Strength: cfg.StrengthA},
		B:            match.Entrant{Name: match.RandomName(rng), Strength: cfg.StrengthB},
		OpeningPlies: cfg.OpeningPlies,
		Seed:         cfg.Seed,
	}

	report, err := match.NewRunner(settings).Run(ctx, series)
	if err != nil {
		return err
	}
	fmt.Printf("%s (strength %d) vs %s (strength %d) on %dx%d\n",
		series.A.Name, series.A.Strength, series.B.Name, series.B.Strength, series.Size, series.Size)
	fmt.Println(report)
	return nil
}
