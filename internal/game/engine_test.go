package game

import (
	"context"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviarylabs/aviary/internal/content"
)

// greedyAgent is a deterministic test agent: it always answers with the
// first valid option, keeps keepCards cards in the draft, and accepts every
// offered power.
type greedyAgent struct {
	keepCards     int
	action        ActionType // preferred action when playing a bird is impossible
	declinePowers bool
}

func newGreedyAgent() *greedyAgent {
	return &greedyAgent{keepCards: 2, action: ActionGainFood}
}

func (g *greedyAgent) ChooseStartingHand(ctx context.Context, p *StartingHandPrompt) (*StartingHandChoice, error) {
	k := min(g.keepCards, len(p.Cards), p.Budget)
	choice := &StartingHandChoice{Prompt: p.ID, KeepCards: p.Cards[:k]}
	for range p.Budget - k {
		choice.KeepFood = append(choice.KeepFood, content.Seed)
	}
	return choice, nil
}

func (g *greedyAgent) ChooseAction(ctx context.Context, p *TurnActionPrompt) (*TurnActionChoice, error) {
	for _, a := range p.Actions {
		if a == ActionPlayBird {
			pb := p.Playable[0]
			return &TurnActionChoice{Prompt: p.ID, Action: a, Bird: pb.Card, Habitat: pb.Habitats[0]}, nil
		}
	}
	return &TurnActionChoice{Prompt: p.ID, Action: g.action}, nil
}

func (g *greedyAgent) ChooseOption(ctx context.Context, prompt Prompt) (Choice, error) {
	switch p := prompt.(type) {
	case *PowerOfferPrompt:
		return &PowerOfferChoice{Prompt: p.ID, Accept: !g.declinePowers}, nil

	case *FoodSelectPrompt:
		choice := &FoodSelectChoice{Prompt: p.ID}
		for _, face := range p.Dice[:p.Count] {
			choice.Take = append(choice.Take, DieTake{Face: face, As: face.Yields()[0]})
		}
		return choice, nil

	case *EggPlacementPrompt:
		choice := &EggPlacementChoice{Prompt: p.ID, Placements: make(map[content.CardID]int)}
		remaining := p.Count
		for _, slot := range p.Eligible {
			n := min(remaining, slot.Limit)
			if n > 0 {
				choice.Placements[slot.Card] = n
				remaining -= n
			}
		}
		return choice, nil

	case *CardDrawPrompt:
		tray := min(p.Count, len(p.Tray))
		return &CardDrawChoice{Prompt: p.ID, FromTray: p.Tray[:tray], FromDeck: p.Count - tray}, nil

	case *PayCostPrompt:
		return g.pay(p), nil

	case *CardSelectPrompt:
		return &CardSelectChoice{Prompt: p.ID, Cards: p.From[:p.Min]}, nil

	case *BirdTargetPrompt:
		return &BirdTargetChoice{Prompt: p.ID, Birds: p.Eligible[:p.Count]}, nil
	}
	return nil, nil
}

func (g *greedyAgent) pay(p *PayCostPrompt) *PayCostChoice {
	view := p.View.Players[int(p.Player)]
	choice := &PayCostChoice{
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
	wild := p.Cost.Wild
	for _, f := range content.FoodTypes() {
		if wild == 0 {
			break
		}
		n := min(wild, avail[f])
		if n > 0 {
			choice.Food[f] += n
			wild -= n
		}
	}
	eggs := p.EggCost
	for _, src := range p.EggSources {
		if eggs == 0 {
			break
		}
		n := min(eggs, src.Limit)
		if n > 0 {
			choice.Eggs[src.Card] = n
			eggs -= n
		}
	}
	return choice
}

func newTestEngine(t *testing.T, seed int64, agents ...PlayerAgent) *Engine {
	t.Helper()
	if len(agents) == 0 {
		agents = []PlayerAgent{newGreedyAgent(), newGreedyAgent()}
	}
	e, err := NewEngine(Config{
		Registry: content.StarterSet(),
		Agents:   agents,
		Seed:     seed,
	})
	require.NoError(t, err)
	return e
}

func TestEngineRunsToCompletion(t *testing.T) {
	e := newTestEngine(t, 42)
	result, err := e.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 4, result.Rounds)
	assert.Len(t, result.Scores, 2)
}

func TestEngineDeterminism(t *testing.T) {
	run := func() ([]Effect, *GameResult) {
		e := newTestEngine(t, 1234)
		result, err := e.Run(context.Background())
		require.NoError(t, err)
		return e.EffectLog(), result
	}

	log1, res1 := run()
	log2, res2 := run()

	require.Equal(t, len(log1), len(log2))
	assert.Equal(t, log1, log2)
	assert.Equal(t, res1, res2)
}

func TestEngineEventDeterminism(t *testing.T) {
	// With an injected mock clock the event streams of two identical-seed
	// runs match exactly, timestamps included.
	run := func() []Event {
		e, err := NewEngine(Config{
			Registry: content.StarterSet(),
			Agents:   []PlayerAgent{newGreedyAgent(), newGreedyAgent()},
			Seed:     1234,
			Clock:    quartz.NewMock(t),
		})
		require.NoError(t, err)

		var events []Event
		e.Bus().Subscribe(subscriberFunc(func(ev Event) {
			events = append(events, ev)
		}))
		_, err = e.Run(context.Background())
		require.NoError(t, err)
		return events
	}

	ev1 := run()
	ev2 := run()
	require.Equal(t, len(ev1), len(ev2))
	assert.Equal(t, ev1, ev2)
}

func TestEngineTurnAccounting(t *testing.T) {
	e := newTestEngine(t, 7)

	var rounds []RoundStartedEvent
	turns := 0
	e.Bus().Subscribe(subscriberFunc(func(ev Event) {
		switch v := ev.(type) {
		case RoundStartedEvent:
			rounds = append(rounds, v)
		case TurnEndedEvent:
			turns++
		}
	}))

	result, err := e.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, rounds, 4)
	allot := []int{8, 7, 6, 5}
	total := 0
	for i, r := range rounds {
		assert.Equal(t, i+1, r.Round)
		assert.Equal(t, allot[i], r.Actions)
		total += allot[i]
	}
	// Two players, no forfeits: every allotted action becomes a turn.
	assert.Equal(t, 2*total, turns)
	assert.Equal(t, 2*total, result.Turns)
}

// subscriberFunc adapts a func to EventSubscriber.
type subscriberFunc func(Event)

func (f subscriberFunc) OnEvent(ev Event) { f(ev) }

// brokenAgent answers every prompt with an out-of-budget starting hand and
// an unavailable action, exhausting the retry budget.
type brokenAgent struct{}

func (brokenAgent) ChooseStartingHand(ctx context.Context, p *StartingHandPrompt) (*StartingHandChoice, error) {
	return &StartingHandChoice{Prompt: p.ID}, nil // keeps nothing; budget is 5
}

func (brokenAgent) ChooseAction(ctx context.Context, p *TurnActionPrompt) (*TurnActionChoice, error) {
	return &TurnActionChoice{Prompt: p.ID, Action: ActionType(99)}, nil
}

func (brokenAgent) ChooseOption(ctx context.Context, prompt Prompt) (Choice, error) {
	return &PowerOfferChoice{Prompt: prompt.Meta().ID}, nil
}

func TestEngineForfeitsAfterRetryBudget(t *testing.T) {
	e := newTestEngine(t, 9, newGreedyAgent(), brokenAgent{})
	result, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Scores[1].Forfeited)
	assert.False(t, result.Scores[0].Forfeited)
	assert.Equal(t, PlayerID(0), result.Winner)
	assert.True(t, e.State().Player(1).Forfeited)
}

// staleAgent echoes the wrong prompt id, which is a protocol violation and
// must abort the game rather than forfeit the player.
type staleAgent struct{ greedyAgent }

func (s *staleAgent) ChooseAction(ctx context.Context, p *TurnActionPrompt) (*TurnActionChoice, error) {
	return &TurnActionChoice{Prompt: p.ID + 100, Action: ActionGainFood}, nil
}

func TestEngineProtocolViolationIsFatal(t *testing.T) {
	bad := &staleAgent{greedyAgent: *newGreedyAgent()}
	e := newTestEngine(t, 11, bad, newGreedyAgent())

	_, err := e.Run(context.Background())
	require.Error(t, err)
	var perr *ProtocolError
	assert.ErrorAs(t, err, &perr)
}

func TestEngineRequiresAgentsAndRegistry(t *testing.T) {
	_, err := NewEngine(Config{Agents: []PlayerAgent{newGreedyAgent(), newGreedyAgent()}})
	assert.Error(t, err)

	_, err = NewEngine(Config{Registry: content.StarterSet(), Agents: []PlayerAgent{newGreedyAgent()}})
	assert.Error(t, err)
}

func TestEngineTrayStaysFilled(t *testing.T) {
	e := newTestEngine(t, 21)
	_, err := e.Run(context.Background())
	require.NoError(t, err)

	// The tray refills to size at the end of every turn while the deck can
	// still feed it.
	if e.State().Deck.Total() > 0 {
		assert.Len(t, e.State().Tray, DefaultTraySize)
	}
}
