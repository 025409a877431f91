// Package simulator runs batches of complete games and aggregates their
// outcomes. Games are independent: each derives its own seed from the master
// seed, so a batch produces identical statistics regardless of worker count.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/aviarylabs/aviary/internal/agents"
	"github.com/aviarylabs/aviary/internal/content"
	"github.com/aviarylabs/aviary/internal/game"
	"github.com/aviarylabs/aviary/internal/randutil"
	"github.com/aviarylabs/aviary/internal/statistics"
)

// Config holds configuration for running simulations.
type Config struct {
	Games    int
	Players  int
	Seed     int64
	Workers  int // 0 means GOMAXPROCS
	Names    []string
	Registry content.Registry
	Logger   *log.Logger
}

// Simulator runs game simulations.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration.
func New(config Config) (*Simulator, error) {
	if config.Games <= 0 {
		return nil, fmt.Errorf("simulator: games must be positive, got %d", config.Games)
	}
	if config.Players < 2 {
		return nil, fmt.Errorf("simulator: at least 2 players required, got %d", config.Players)
	}
	if config.Registry == nil {
		config.Registry = content.StarterSet()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}, nil
}

// Run executes the batch and returns aggregated statistics.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := range s.config.Games {
		g.Go(func() error {
			record, err := s.playGame(ctx, randutil.Derive(s.config.Seed, i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			mu.Lock()
			stats.Add(record)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return stats, nil
}

// playGame runs one complete game under its own derived seed.
func (s *Simulator) playGame(ctx context.Context, seed int64) (statistics.GameRecord, error) {
	players := make([]game.PlayerAgent, s.config.Players)
	for seat := range players {
		// Each agent gets its own stream so agent randomness never
		// perturbs the engine's.
		players[seat] = agents.NewRandom(randutil.New(randutil.Derive(seed, 1000+seat)))
	}

	engine, err := game.NewEngine(game.Config{
		Registry: s.config.Registry,
		Agents:   players,
		Names:    s.config.Names,
		Seed:     seed,
		Logger:   s.config.Logger,
	})
	if err != nil {
		return statistics.GameRecord{}, err
	}

	result, err := engine.Run(ctx)
	if err != nil {
		return statistics.GameRecord{}, err
	}

	record := statistics.GameRecord{
		Seed:   seed,
		Winner: int(result.Winner),
		Turns:  result.Turns,
	}
	for _, sc := range result.Scores {
		record.Scores = append(record.Scores, sc.Total)
		if sc.Forfeited {
			record.Forfeits++
		}
	}
	return record, nil
}
