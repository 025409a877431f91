package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/aviarylabs/aviary/internal/agents"
	"github.com/aviarylabs/aviary/internal/content"
	"github.com/aviarylabs/aviary/internal/game"
	"github.com/aviarylabs/aviary/internal/randutil"
)

// PlayCmd plays one game to completion with random agents, logging every
// event. Handy for eyeballing a seed before filing it in a regression test.
type PlayCmd struct {
	Players int   `default:"2" help:"Players in the game (2-5)"`
	Seed    int64 `default:"1" help:"RNG seed"`
	Verbose bool  `help:"Log turn-by-turn detail"`
}

// eventLogger prints semantic events through the structured logger.
type eventLogger struct {
	logger *log.Logger
}

func (l *eventLogger) OnEvent(ev game.Event) {
	switch e := ev.(type) {
	case game.BirdPlayedEvent:
		l.logger.Info("bird played", "player", e.Player, "card", e.Card, "habitat", e.Habitat)
	case game.FoodGainedEvent:
		l.logger.Info("food gained", "player", e.Player, "food", e.Food, "count", e.Count)
	case game.EggsLaidEvent:
		l.logger.Info("eggs laid", "player", e.Player, "count", e.Count)
	case game.CardsDrawnEvent:
		l.logger.Info("cards drawn", "player", e.Player, "count", e.Count)
	case game.PowerActivatedEvent:
		l.logger.Info("power activated", "bird", e.Bird, "trigger", e.Trigger)
	case game.RoundStartedEvent:
		l.logger.Info("round started", "round", e.Round, "actions", e.Actions)
	case game.PlayerForfeitedEvent:
		l.logger.Warn("player forfeited", "player", e.Player)
	}
}

func (c *PlayCmd) Run() error {
	level := log.InfoLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	players := make([]game.PlayerAgent, c.Players)
	for seat := range players {
		players[seat] = agents.NewRandom(randutil.New(randutil.Derive(c.Seed, 1000+seat)))
	}

	engine, err := game.NewEngine(game.Config{
		Registry: content.StarterSet(),
		Agents:   players,
		Seed:     c.Seed,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	engine.Bus().Subscribe(&eventLogger{logger: logger})

	result, err := engine.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("final scores"))
	for _, sc := range result.Scores {
		marker := " "
		if sc.Player == result.Winner {
			marker = "*"
		}
		fmt.Printf("%s %-12s %3d  (birds %d, eggs %d, cached %d, tucked %d, bonus %d)\n",
			marker, sc.Name, sc.Total, sc.Birds, sc.Eggs, sc.Cached, sc.Tucked, sc.Bonus)
	}
	return nil
}
