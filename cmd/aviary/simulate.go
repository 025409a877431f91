package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/aviarylabs/aviary/internal/simulator"
	"github.com/aviarylabs/aviary/internal/statistics"
)

// SimulateCmd runs a batch of games and prints aggregate statistics.
type SimulateCmd struct {
	Games   int    `default:"1000" help:"Number of games to simulate"`
	Players int    `default:"2" help:"Players per game (2-5)"`
	Seed    int64  `default:"1" help:"Master RNG seed; each game derives its own"`
	Workers int    `default:"0" help:"Concurrent games (0 for GOMAXPROCS)"`
	Config  string `type:"existingfile" optional:"" help:"HCL config file; flags override it"`
	Verbose bool   `help:"Verbose logging"`
}

// fileConfig is the HCL shape of a simulation config file.
type fileConfig struct {
	Games   int      `hcl:"games,optional"`
	Players int      `hcl:"players,optional"`
	Seed    int64    `hcl:"seed,optional"`
	Workers int      `hcl:"workers,optional"`
	Names   []string `hcl:"names,optional"`
}

func (c *SimulateCmd) Run() error {
	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cfg := simulator.Config{
		Games:   c.Games,
		Players: c.Players,
		Seed:    c.Seed,
		Workers: c.Workers,
		Logger:  logger,
	}
	if c.Config != "" {
		var fc fileConfig
		if err := hclsimple.DecodeFile(c.Config, nil, &fc); err != nil {
			return fmt.Errorf("loading %s: %w", c.Config, err)
		}
		if fc.Games > 0 {
			cfg.Games = fc.Games
		}
		if fc.Players > 0 {
			cfg.Players = fc.Players
		}
		if fc.Seed != 0 {
			cfg.Seed = fc.Seed
		}
		if fc.Workers > 0 {
			cfg.Workers = fc.Workers
		}
		cfg.Names = fc.Names
	}

	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(renderReport(stats, cfg, time.Since(start)))
	return nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(22)
	seatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	reportStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

func renderReport(stats *statistics.Statistics, cfg simulator.Config, elapsed time.Duration) string {
	lo, hi := stats.ConfidenceInterval95()

	body := titleStyle.Render("simulation report") + "\n\n"
	body += labelStyle.Render("games") + fmt.Sprintf("%d (seed %d)\n", stats.Games, cfg.Seed)
	body += labelStyle.Render("mean winning score") + fmt.Sprintf("%.2f ± %.2f (95%% CI %.2f..%.2f)\n",
		stats.Mean(), 1.96*stats.StdError(), lo, hi)
	body += labelStyle.Render("mean turns / game") + fmt.Sprintf("%.1f\n", stats.MeanTurns())
	body += labelStyle.Render("forfeits") + fmt.Sprintf("%d\n", stats.Forfeits)
	body += labelStyle.Render("elapsed") + elapsed.Round(time.Millisecond).String() + "\n\n"

	for seat, st := range stats.Seats {
		body += seatStyle.Render(fmt.Sprintf("seat %d", seat+1)) +
			fmt.Sprintf("  win rate %.1f%%  mean score %.2f\n", 100*st.WinRate(), st.Mean())
	}
	return reportStyle.Render(body)
}
