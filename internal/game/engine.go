package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/aviarylabs/aviary/internal/content"
	"github.com/aviarylabs/aviary/internal/pool"
	"github.com/aviarylabs/aviary/internal/randutil"
)

// Defaults for Config fields left zero.
const (
	DefaultRetryBudget = 3
	DefaultHandSize    = 5
	DefaultDraftBudget = 5
	DefaultTraySize    = 3
	DefaultBonusDealt  = 2
	DefaultRounds      = 4

	maxPowerDepth = 4
)

// defaultRoundActions is the decreasing per-round action allotment.
var defaultRoundActions = []int{8, 7, 6, 5}

// errForfeited aborts the current decision point after a player exhausts the
// retry budget. It is handled inside the engine and never escapes Run.
var errForfeited = errors.New("game: player forfeited")

// Config configures an Engine. Registry and Agents are required; everything
// else has defaults.
type Config struct {
	Registry content.Registry
	Agents   []PlayerAgent
	Names    []string // optional, defaults to "player N"
	Seed     int64

	Logger    *log.Logger
	Clock     quartz.Clock
	Observers []Observer
	Powers    *PowerRegistry

	// Deck and BonusDeck override the pools built from the registry; tests
	// use them to pin exact contents.
	Deck      pool.Source[content.CardID]
	BonusDeck pool.Source[content.CardID]

	RoundActions []int // default 8,7,6,5
	RetryBudget  int   // invalid choices per decision point before forfeit
}

// Engine owns a GameState exclusively and advances it turn by turn.
type Engine struct {
	st     *GameState
	reg    content.Registry
	agents []PlayerAgent
	powers *PowerRegistry

	bus       EventBus
	observers []Observer
	logger    *log.Logger
	clock     quartz.Clock
	rng       *rand.Rand
	seed      int64

	promptSeq PromptID
	effects   []Effect
	pinkUsed  map[BirdKey]bool
	reactions []reactionSeed
	collect   bool

	rounds      []int
	retryBudget int
	turnsTaken  int
}

// NewEngine builds an engine and its initial GameState: shuffled deck and
// bonus deck, rolled feeder, empty boards.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Registry == nil {
		return nil, errors.New("game: registry is required")
	}
	if len(cfg.Agents) < 2 {
		return nil, errors.New("game: at least 2 agents required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	powers := cfg.Powers
	if powers == nil {
		powers = NewPowerRegistry()
	}
	rounds := cfg.RoundActions
	if rounds == nil {
		rounds = defaultRoundActions
	}
	retry := cfg.RetryBudget
	if retry <= 0 {
		retry = DefaultRetryBudget
	}

	rng := randutil.New(cfg.Seed)

	deck := cfg.Deck
	if deck == nil {
		deck = pool.NewDeck(rng, cfg.Registry.BirdIDs())
	}
	bonus := cfg.BonusDeck
	if bonus == nil {
		bonus = pool.NewDeck(rng, cfg.Registry.BonusIDs())
	}
	feeder := pool.NewFeeder(func() content.DieFace {
		return content.DieFace(rng.IntN(int(content.NumDieFaces)))
	})

	st := &GameState{
		Deck:   deck,
		Bonus:  bonus,
		Feeder: feeder,
	}
	for i := range cfg.Agents {
		name := fmt.Sprintf("player %d", i+1)
		if i < len(cfg.Names) && cfg.Names[i] != "" {
			name = cfg.Names[i]
		}
		st.Players = append(st.Players, newPlayerState(PlayerID(i), name))
	}

	return &Engine{
		st:          st,
		reg:         cfg.Registry,
		agents:      cfg.Agents,
		powers:      powers,
		bus:         NewEventBus(),
		observers:   cfg.Observers,
		logger:      logger,
		clock:       clock,
		rng:         rng,
		seed:        cfg.Seed,
		pinkUsed:    make(map[BirdKey]bool),
		rounds:      rounds,
		retryBudget: retry,
	}, nil
}

// Bus returns the event bus for subscribing to semantic game events.
func (e *Engine) Bus() EventBus { return e.bus }

// State exposes the game state for read-only inspection. Mutating it
// outside the engine breaks the determinism contract.
func (e *Engine) State() *GameState { return e.st }

// EffectLog returns every effect applied so far, in order.
func (e *Engine) EffectLog() []Effect { return e.effects }

// Run plays the game to completion: starting-hand draft, four rounds of
// turns, then scoring. It is strictly single-threaded; the only suspension
// points are agent calls.
func (e *Engine) Run(ctx context.Context) (*GameResult, error) {
	names := make([]string, len(e.st.Players))
	for i, p := range e.st.Players {
		names[i] = p.Name
	}
	e.event(GameStartedEvent{eventStamp: e.stamp(), Players: names, Seed: e.seed})

	if err := e.draftStartingHands(ctx); err != nil {
		return nil, err
	}
	if err := e.refillTray(); err != nil {
		return nil, err
	}

	for round := 1; round <= len(e.rounds); round++ {
		e.st.Round = round
		allot := e.rounds[round-1]
		for _, p := range e.st.Players {
			if !p.Forfeited {
				p.ActionsLeft = allot
			}
		}
		e.event(RoundStartedEvent{eventStamp: e.stamp(), Round: round, Actions: allot})

		if err := e.playRound(ctx, round); err != nil {
			return nil, err
		}
		e.event(RoundEndedEvent{eventStamp: e.stamp(), Round: round})
	}

	result := e.score()
	e.event(GameEndedEvent{eventStamp: e.stamp(), Result: result})
	e.logger.Info("game complete",
		"winner", result.Scores[result.Winner].Name,
		"rounds", result.Rounds,
		"turns", result.Turns)
	return result, nil
}

// playRound hands out turns in seat order, starting one seat later each
// round, until every non-forfeited player's actions are spent.
func (e *Engine) playRound(ctx context.Context, round int) error {
	n := len(e.st.Players)
	cur := (round - 1) % n
	for {
		seat := -1
		for i := range n {
			cand := (cur + i) % n
			p := e.st.Players[cand]
			if !p.Forfeited && p.ActionsLeft > 0 {
				seat = cand
				break
			}
		}
		if seat < 0 {
			return nil
		}
		e.st.Active = PlayerID(seat)
		if err := e.takeTurn(ctx); err != nil {
			return err
		}
		cur = (seat + 1) % n
	}
}

func (e *Engine) takeTurn(ctx context.Context) error {
	p := e.st.Player(e.st.Active)
	e.st.Turn++
	e.turnsTaken++

	// A pink power may fire once between the holder's turns: clear the
	// holder's usage markers when their own turn starts.
	for _, b := range p.Board.All() {
		delete(e.pinkUsed, b.Key)
	}

	e.event(TurnStartedEvent{eventStamp: e.stamp(), Player: p.ID, Round: e.st.Round, Turn: e.st.Turn})
	e.logger.Debug("turn started", "player", p.Name, "round", e.st.Round, "turn", e.st.Turn, "actions_left", p.ActionsLeft)

	e.collect = true
	e.reactions = nil
	action, err := e.resolveTurn(ctx, p)
	e.collect = false
	if err != nil {
		if errors.Is(err, errForfeited) {
			// Fatal for this player only; the game continues.
			return nil
		}
		return err
	}

	if err := e.offerPinkReactions(ctx); err != nil {
		if !errors.Is(err, errForfeited) {
			return err
		}
	}
	if err := e.refillTray(); err != nil {
		return err
	}
	if err := e.emit(ActionSpentEffect{Player: p.ID}); err != nil {
		return err
	}
	e.event(TurnEndedEvent{eventStamp: e.stamp(), Player: p.ID, Action: action, Round: e.st.Round, Turn: e.st.Turn})
	return nil
}

// draftStartingHands deals each player five cards plus two bonus cards and
// asks what to keep: k cards means 5-k food tokens of free choice, and one
// of the two bonus cards.
func (e *Engine) draftStartingHands(ctx context.Context) error {
	for _, p := range e.st.Players {
		dealt, err := e.st.Deck.Draw(DefaultHandSize)
		if err != nil {
			return fmt.Errorf("dealing starting hand: %w", err)
		}

		prompt := &StartingHandPrompt{
			PromptMeta: e.meta(p.ID, Origin{}),
			Cards:      dealt,
			Budget:     DefaultDraftBudget,
		}
		choice, err := e.askStartingHand(ctx, p, prompt)
		if err != nil {
			if errors.Is(err, errForfeited) {
				e.st.Deck.Discard(dealt...)
				continue
			}
			return err
		}

		kept := make(map[content.CardID]int)
		for _, c := range choice.KeepCards {
			kept[c]++
		}
		for _, c := range dealt {
			if kept[c] > 0 {
				kept[c]--
				continue
			}
			e.st.Deck.Discard(c)
		}
		if len(choice.KeepCards) > 0 {
			if err := e.emit(CardsDrawnEffect{Player: p.ID, Cards: choice.KeepCards}); err != nil {
				return err
			}
		}
		for _, f := range choice.KeepFood {
			if err := e.emit(FoodGainedEffect{Player: p.ID, Food: f, Count: 1}); err != nil {
				return err
			}
		}

		if err := e.draftBonusCard(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) draftBonusCard(ctx context.Context, p *PlayerState) error {
	if e.st.Bonus.Total() < DefaultBonusDealt {
		return nil // no bonus cards configured
	}
	dealt, err := e.st.Bonus.Draw(DefaultBonusDealt)
	if err != nil {
		return fmt.Errorf("dealing bonus cards: %w", err)
	}
	prompt := &CardSelectPrompt{
		PromptMeta: e.meta(p.ID, Origin{}),
		Min:        1,
		Count:      1,
		From:       dealt,
		Purpose:    SelectKeep,
	}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		if errors.Is(err, errForfeited) {
			e.st.Bonus.Discard(dealt...)
			return nil
		}
		return err
	}
	pick := choice.(*CardSelectChoice).Cards[0]
	for _, c := range dealt {
		if c != pick {
			e.st.Bonus.Discard(c)
		}
	}
	return e.emit(BonusGainedEffect{Player: p.ID, Card: pick})
}

// refillTray tops the face-up tray back up to size from the deck.
func (e *Engine) refillTray() error {
	missing := DefaultTraySize - len(e.st.Tray)
	if missing <= 0 {
		return nil
	}
	if avail := e.st.Deck.Total(); avail < missing {
		missing = avail
	}
	if missing == 0 {
		return nil
	}
	cards, err := e.st.Deck.Draw(missing)
	if err != nil {
		return fmt.Errorf("refilling tray: %w", err)
	}
	return e.emit(TrayRefilledEffect{Cards: cards})
}

// --- prompt plumbing ---

func (e *Engine) meta(player PlayerID, origin Origin) PromptMeta {
	e.promptSeq++
	return PromptMeta{
		ID:     e.promptSeq,
		Player: player,
		Origin: origin,
		View:   buildView(e.st),
	}
}

// checkAnswer enforces the protocol contract: the answer exists, matches the
// prompt's kind, and echoes its id.
func checkAnswer(p Prompt, c Choice) error {
	if c == nil {
		return &ProtocolError{Want: p.Kind(), Msg: fmt.Sprintf("nil answer to %s prompt", p.Kind())}
	}
	if c.Kind() != p.Kind() {
		return &ProtocolError{Want: p.Kind(), Got: c.Kind()}
	}
	if c.PromptID() != p.Meta().ID {
		return &ProtocolError{Want: p.Kind(), Got: c.Kind(),
			Msg: fmt.Sprintf("answer echoes prompt %d, outstanding is %d", c.PromptID(), p.Meta().ID)}
	}
	return nil
}

// forfeit marks a player forfeited after exhausting the retry budget.
func (e *Engine) forfeit(p *PlayerState) error {
	e.logger.Warn("player forfeited after repeated invalid choices", "player", p.Name)
	if err := e.emit(PlayerForfeitedEffect{Player: p.ID}); err != nil {
		return err
	}
	return errForfeited
}

// askStartingHand runs the retry loop for the dedicated starting-hand entry
// point on the agent.
func (e *Engine) askStartingHand(ctx context.Context, p *PlayerState, prompt *StartingHandPrompt) (*StartingHandChoice, error) {
	agent := e.agents[p.ID]
	for range e.retryBudget {
		choice, err := agent.ChooseStartingHand(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("agent %s: %w", p.Name, err)
		}
		if err := checkAnswer(prompt, choice); err != nil {
			return nil, err
		}
		if verr := validateChoice(prompt, choice, e.st); verr != nil {
			e.logger.Warn("choice rejected", "player", p.Name, "prompt", prompt.Kind(), "code", verr.Code, "reason", verr.Msg)
			continue
		}
		return choice, nil
	}
	return nil, e.forfeit(p)
}

// askAction runs the retry loop for the base-action entry point.
func (e *Engine) askAction(ctx context.Context, p *PlayerState, prompt *TurnActionPrompt) (*TurnActionChoice, error) {
	agent := e.agents[p.ID]
	for range e.retryBudget {
		choice, err := agent.ChooseAction(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("agent %s: %w", p.Name, err)
		}
		if err := checkAnswer(prompt, choice); err != nil {
			return nil, err
		}
		if verr := validateChoice(prompt, choice, e.st); verr != nil {
			e.logger.Warn("choice rejected", "player", p.Name, "prompt", prompt.Kind(), "code", verr.Code, "reason", verr.Msg)
			continue
		}
		return choice, nil
	}
	return nil, e.forfeit(p)
}

// askOption runs the retry loop for every generic decision point.
func (e *Engine) askOption(ctx context.Context, p *PlayerState, prompt Prompt) (Choice, error) {
	agent := e.agents[p.ID]
	for range e.retryBudget {
		choice, err := agent.ChooseOption(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("agent %s: %w", p.Name, err)
		}
		if err := checkAnswer(prompt, choice); err != nil {
			return nil, err
		}
		if verr := validateChoice(prompt, choice, e.st); verr != nil {
			e.logger.Warn("choice rejected", "player", p.Name, "prompt", prompt.Kind(), "code", verr.Code, "reason", verr.Msg)
			continue
		}
		return choice, nil
	}
	return nil, e.forfeit(p)
}

// --- effect and event plumbing ---

func (e *Engine) stamp() eventStamp { return eventStamp{at: e.clock.Now()} }

// emit applies an effect through the single mutation path, notifying
// observers first and deriving the matching semantic event after.
func (e *Engine) emit(ef Effect) error {
	for _, o := range e.observers {
		o.OnEffect(ef)
	}
	if err := e.st.apply(ef, e.reg); err != nil {
		return err
	}
	e.effects = append(e.effects, ef)
	if e.collect {
		e.seedReaction(ef)
	}

	switch v := ef.(type) {
	case FoodGainedEffect:
		e.event(FoodGainedEvent{eventStamp: e.stamp(), Player: v.Player, Food: v.Food, Count: v.Count})
	case EggsLaidEffect:
		e.event(EggsLaidEvent{eventStamp: e.stamp(), Player: v.Bird.Player, Count: v.Count})
	case CardsDrawnEffect:
		e.event(CardsDrawnEvent{eventStamp: e.stamp(), Player: v.Player, Count: len(v.Cards)})
	case BirdPlayedEffect:
		e.event(BirdPlayedEvent{eventStamp: e.stamp(), Player: v.Player, Card: v.Card, Habitat: v.Habitat})
	case PlayerForfeitedEffect:
		e.event(PlayerForfeitedEvent{eventStamp: e.stamp(), Player: v.Player})
	}
	return nil
}

func (e *Engine) event(ev Event) {
	for _, o := range e.observers {
		o.OnEvent(ev)
	}
	e.bus.Publish(ev)
}
