// Package agents provides ready-made PlayerAgent implementations.
package agents

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/aviarylabs/aviary/internal/content"
	"github.com/aviarylabs/aviary/internal/game"
)

// Random is a baseline agent that answers every prompt with a uniformly
// random valid choice. It accepts roughly half of the powers offered to it.
// Useful for simulation baselines and for exercising the full rules surface.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random agent. The rng should come from the caller's
// deterministic source when reproducibility matters.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// ChooseStartingHand keeps a random number of the dealt cards and fills the
// remaining budget with random food.
func (a *Random) ChooseStartingHand(ctx context.Context, prompt *game.StartingHandPrompt) (*game.StartingHandChoice, error) {
	maxCards := min(len(prompt.Cards), prompt.Budget)
	k := a.rng.IntN(maxCards + 1)

	choice := &game.StartingHandChoice{Prompt: prompt.ID}
	for _, i := range a.sample(len(prompt.Cards), k) {
		choice.KeepCards = append(choice.KeepCards, prompt.Cards[i])
	}
	for range prompt.Budget - k {
		choice.KeepFood = append(choice.KeepFood, a.randomFood())
	}
	return choice, nil
}

// ChooseAction picks a uniformly random available action; when that is
// playing a bird it also picks the bird and habitat at random.
func (a *Random) ChooseAction(ctx context.Context, prompt *game.TurnActionPrompt) (*game.TurnActionChoice, error) {
	choice := &game.TurnActionChoice{
		Prompt: prompt.ID,
		Action: prompt.Actions[a.rng.IntN(len(prompt.Actions))],
	}
	if choice.Action == game.ActionPlayBird {
		pb := prompt.Playable[a.rng.IntN(len(prompt.Playable))]
		choice.Bird = pb.Card
		choice.Habitat = pb.Habitats[a.rng.IntN(len(pb.Habitats))]
	}
	return choice, nil
}

// ChooseOption answers every other decision point.
func (a *Random) ChooseOption(ctx context.Context, prompt game.Prompt) (game.Choice, error) {
	switch p := prompt.(type) {
	case *game.PowerOfferPrompt:
		return &game.PowerOfferChoice{Prompt: p.ID, Accept: a.rng.IntN(2) == 0}, nil
	case *game.FoodSelectPrompt:
		return a.chooseFood(p), nil
	case *game.EggPlacementPrompt:
		return a.chooseEggs(p), nil
	case *game.CardDrawPrompt:
		return a.chooseDraw(p), nil
	case *game.PayCostPrompt:
		return a.choosePayment(p), nil
	case *game.CardSelectPrompt:
		return a.chooseCards(p), nil
	case *game.BirdTargetPrompt:
		return a.chooseTargets(p), nil
	}
	return nil, fmt.Errorf("agents: unhandled prompt kind %s", prompt.Kind())
}

func (a *Random) chooseFood(p *game.FoodSelectPrompt) *game.FoodSelectChoice {
	choice := &game.FoodSelectChoice{Prompt: p.ID}
	for _, i := range a.sample(len(p.Dice), p.Count) {
		face := p.Dice[i]
		yields := face.Yields()
		choice.Take = append(choice.Take, game.DieTake{
			Face: face,
			As:   yields[a.rng.IntN(len(yields))],
		})
	}
	return choice
}

func (a *Random) chooseEggs(p *game.EggPlacementPrompt) *game.EggPlacementChoice {
	choice := &game.EggPlacementChoice{
		Prompt:     p.ID,
		Placements: make(map[content.CardID]int),
	}
	remaining := p.Count
	order := a.rng.Perm(len(p.Eligible))
	for _, i := range order {
		if remaining == 0 {
			break
		}
		slot := p.Eligible[i]
		n := min(remaining, slot.Limit)
		if n > 1 {
			n = 1 + a.rng.IntN(n)
		}
		if n > 0 {
			choice.Placements[slot.Card] = n
			remaining -= n
		}
	}
	// Top up in a second pass when the random spread fell short.
	for _, i := range order {
		if remaining == 0 {
			break
		}
		slot := p.Eligible[i]
		space := slot.Limit - choice.Placements[slot.Card]
		n := min(remaining, space)
		if n > 0 {
			choice.Placements[slot.Card] += n
			remaining -= n
		}
	}
	return choice
}

func (a *Random) chooseDraw(p *game.CardDrawPrompt) *game.CardDrawChoice {
	choice := &game.CardDrawChoice{Prompt: p.ID}
	maxTray := min(len(p.Tray), p.Count)
	minTray := max(0, p.Count-p.DeckSize)
	tray := minTray
	if maxTray > minTray {
		tray = minTray + a.rng.IntN(maxTray-minTray+1)
	}
	for _, i := range a.sample(len(p.Tray), tray) {
		choice.FromTray = append(choice.FromTray, p.Tray[i])
	}
	choice.FromDeck = p.Count - tray
	return choice
}

func (a *Random) choosePayment(p *game.PayCostPrompt) *game.PayCostChoice {
	view := p.View.Players[int(p.Player)]
	choice := &game.PayCostChoice{
		Prompt: p.ID,
		Food:   make(map[content.FoodType]int),
		Eggs:   make(map[content.CardID]int),
	}

	avail := make(map[content.FoodType]int, len(view.Food))
	for f, n := range view.Food {
		avail[f] = n
	}
	for f, n := range p.Cost.Typed {
		choice.Food[f] = n
		avail[f] -= n
	}
	foods := content.FoodTypes()
	remaining := p.Cost.Wild
	for _, i := range a.rng.Perm(len(foods)) {
		if remaining == 0 {
			break
		}
		f := foods[i]
		n := min(remaining, avail[f])
		if n > 0 {
			choice.Food[f] += n
			remaining -= n
		}
	}

	eggs := p.EggCost
	for _, i := range a.rng.Perm(len(p.EggSources)) {
		if eggs == 0 {
			break
		}
		src := p.EggSources[i]
		n := min(eggs, src.Limit)
		if n > 0 {
			choice.Eggs[src.Card] = n
			eggs -= n
		}
	}
	return choice
}

func (a *Random) chooseCards(p *game.CardSelectPrompt) *game.CardSelectChoice {
	upper := min(p.Count, len(p.From))
	n := p.Min
	if upper > p.Min {
		n = p.Min + a.rng.IntN(upper-p.Min+1)
	}
	choice := &game.CardSelectChoice{Prompt: p.ID}
	for _, i := range a.sample(len(p.From), n) {
		choice.Cards = append(choice.Cards, p.From[i])
	}
	return choice
}

func (a *Random) chooseTargets(p *game.BirdTargetPrompt) *game.BirdTargetChoice {
	choice := &game.BirdTargetChoice{Prompt: p.ID}
	for _, i := range a.sample(len(p.Eligible), p.Count) {
		choice.Birds = append(choice.Birds, p.Eligible[i])
	}
	return choice
}

func (a *Random) randomFood() content.FoodType {
	foods := content.FoodTypes()
	return foods[a.rng.IntN(len(foods))]
}

// sample returns k distinct indices drawn uniformly from [0, n).
func (a *Random) sample(n, k int) []int {
	return a.rng.Perm(n)[:k]
}
