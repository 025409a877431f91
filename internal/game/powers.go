package game

import (
	"context"
	"errors"

	"github.com/aviarylabs/aviary/internal/content"
)

// powerEnv carries everything a handler needs to resolve one activation:
// the engine (for prompts and effects), the power's holder and bird, the
// spec, the prompting context, the repeat depth, and for pink activations
// the triggering moment.
type powerEnv struct {
	e      *Engine
	owner  *PlayerState
	bird   *BirdInstance
	spec   content.PowerSpec
	origin Origin
	depth  int
	seed   *reactionSeed
}

// count returns the spec's count with 1 as the default.
func (env powerEnv) count() int {
	if env.spec.Count > 0 {
		return env.spec.Count
	}
	return 1
}

// powerHandler resolves one power kind. can reports whether the power could
// change any resource under current state: a false return self-skips the
// power without prompting anyone.
type powerHandler struct {
	can func(powerEnv) bool
	run func(context.Context, powerEnv) error
}

// PowerRegistry maps each power kind to its handler. The set is closed; an
// unregistered kind self-skips, which keeps content additions safe.
type PowerRegistry struct {
	handlers map[content.PowerKind]*powerHandler
}

func (r *PowerRegistry) lookup(k content.PowerKind) *powerHandler {
	return r.handlers[k]
}

func (r *PowerRegistry) register(k content.PowerKind, h *powerHandler) {
	r.handlers[k] = h
}

func always(powerEnv) bool { return true }

// NewPowerRegistry builds the full handler set.
func NewPowerRegistry() *PowerRegistry {
	r := &PowerRegistry{handlers: make(map[content.PowerKind]*powerHandler)}

	// Food gain and caching.

	r.register(content.PowerGainFood, &powerHandler{
		can: always,
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.gainSupply(env.owner.ID, env.spec.Food, env.count())
		},
	})

	r.register(content.PowerGainFoodChoice, &powerHandler{
		can: always,
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.gainChoiceFromSupply(ctx, env.owner, env.count(), env.origin)
		},
	})

	r.register(content.PowerGainFoodFromFeeder, &powerHandler{
		can: func(env powerEnv) bool { return feederYields(env.e, env.spec.Food) },
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.gainFromFeeder(ctx, env.owner, nil, env.count(), env.origin,
				func(f content.DieFace) bool { return f.CanYield(env.spec.Food) })
		},
	})

	r.register(content.PowerGainAllOfFaceInFeeder, &powerHandler{
		can: func(env powerEnv) bool { return feederYields(env.e, env.spec.Food) },
		run: func(ctx context.Context, env powerEnv) error {
			// Every matching die is taken without a selection prompt.
			for _, face := range env.e.st.Feeder.Faces() {
				if !face.CanYield(env.spec.Food) {
					continue
				}
				if err := env.e.st.Feeder.Take(face); err != nil {
					return err
				}
				if err := env.e.emit(DieTakenEffect{Player: env.owner.ID, Face: face}); err != nil {
					return err
				}
				if err := env.e.emit(FoodGainedEffect{Player: env.owner.ID, Food: env.spec.Food, Count: 1, FromFeeder: true}); err != nil {
					return err
				}
			}
			return nil
		},
	})

	r.register(content.PowerGainFoodPerBirdIn, &powerHandler{
		can: func(env powerEnv) bool { return env.owner.Board.Count(env.spec.Habitat) > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			n := env.owner.Board.Count(env.spec.Habitat)
			if env.spec.Count > 0 && n > env.spec.Count {
				n = env.spec.Count
			}
			return env.e.gainSupply(env.owner.ID, env.spec.Food, n)
		},
	})

	r.register(content.PowerCacheFood, &powerHandler{
		can: always,
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.emit(FoodCachedEffect{Bird: env.bird.Key, Food: env.spec.Food, Count: env.count()})
		},
	})

	r.register(content.PowerCacheFoodFromFeeder, &powerHandler{
		can: func(env powerEnv) bool { return feederYields(env.e, env.spec.Food) },
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.gainFromFeeder(ctx, env.owner, env.bird, env.count(), env.origin,
				func(f content.DieFace) bool { return f.CanYield(env.spec.Food) })
		},
	})

	r.register(content.PowerAllPlayersGainFood, &powerHandler{
		can: always,
		run: func(ctx context.Context, env powerEnv) error {
			for _, p := range env.e.st.Players {
				if p.Forfeited {
					continue
				}
				if err := env.e.gainSupply(p.ID, env.spec.Food, 1); err != nil {
					return err
				}
			}
			return nil
		},
	})

	r.register(content.PowerOpponentsGainFood, &powerHandler{
		can: always,
		run: func(ctx context.Context, env powerEnv) error {
			for _, p := range env.e.st.Players {
				if p.Forfeited || p.ID == env.owner.ID {
					continue
				}
				if err := env.e.gainSupply(p.ID, env.spec.Food, 1); err != nil {
					return err
				}
			}
			return nil
		},
	})

	// Egg laying and discarding.

	r.register(content.PowerLayEggsSelf, &powerHandler{
		can: func(env powerEnv) bool { return env.bird.EggSpace() > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			n := min(env.count(), env.bird.EggSpace())
			return env.e.emit(EggsLaidEffect{Bird: env.bird.Key, Count: n})
		},
	})

	r.register(content.PowerLayEggsAnyBirds, &powerHandler{
		can: func(env powerEnv) bool { return env.owner.Board.EggSpaceTotal() > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.layEggsDistribute(ctx, env.owner, env.count(), env.origin)
		},
	})

	r.register(content.PowerLayEggOnNestType, &powerHandler{
		can: func(env powerEnv) bool { return len(nestBirdsWithSpace(env.owner, env.spec.Nest)) > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			eligible := nestBirdsWithSpace(env.owner, env.spec.Nest)
			n := min(env.count(), len(eligible))
			targets := eligible
			if n < len(eligible) {
				prompt := &BirdTargetPrompt{
					PromptMeta: env.e.meta(env.owner.ID, env.origin),
					Count:      n,
					Eligible:   eligible,
					Purpose:    TargetLayEgg,
				}
				choice, err := env.e.askOption(ctx, env.owner, prompt)
				if err != nil {
					return err
				}
				targets = choice.(*BirdTargetChoice).Birds
			}
			for _, card := range targets {
				if err := env.e.emit(EggsLaidEffect{Bird: BirdKey{Player: env.owner.ID, Card: card}, Count: 1}); err != nil {
					return err
				}
			}
			return nil
		},
	})

	r.register(content.PowerLayEggEachInHabitat, &powerHandler{
		can: func(env powerEnv) bool {
			for _, b := range env.owner.Board.Birds(env.spec.Habitat) {
				if b.EggSpace() > 0 {
					return true
				}
			}
			return false
		},
		run: func(ctx context.Context, env powerEnv) error {
			for _, b := range env.owner.Board.Birds(env.spec.Habitat) {
				if b.EggSpace() <= 0 {
					continue
				}
				if err := env.e.emit(EggsLaidEffect{Bird: b.Key, Count: 1}); err != nil {
					return err
				}
			}
			return nil
		},
	})

	r.register(content.PowerAllPlayersLayEgg, &powerHandler{
		can: func(env powerEnv) bool {
			for _, p := range env.e.st.Players {
				if !p.Forfeited && p.Board.EggSpaceTotal() > 0 {
					return true
				}
			}
			return false
		},
		run: func(ctx context.Context, env powerEnv) error {
			for _, p := range env.e.st.Players {
				if p.Forfeited || p.Board.EggSpaceTotal() == 0 {
					continue
				}
				err := env.e.layEggsDistribute(ctx, p, 1, env.origin)
				if errors.Is(err, errForfeited) {
					continue // the forfeit binds that player, not the power
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	})

	r.register(content.PowerDiscardEggToDraw, &powerHandler{
		can: func(env powerEnv) bool { return env.owner.EggTotal() > 0 && cardsAvailable(env.e) },
		run: func(ctx context.Context, env powerEnv) error {
			if err := env.e.discardEggPrompted(ctx, env.owner, env.origin); err != nil {
				return err
			}
			return env.e.drawToHand(ctx, env.owner, env.count(), env.origin)
		},
	})

	r.register(content.PowerDiscardEggToGain, &powerHandler{
		can: func(env powerEnv) bool { return env.owner.EggTotal() > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			if err := env.e.discardEggPrompted(ctx, env.owner, env.origin); err != nil {
				return err
			}
			return env.e.gainSupply(env.owner.ID, env.spec.Food, env.count())
		},
	})

	// Card drawing, tucking, discarding.

	r.register(content.PowerDrawCards, &powerHandler{
		can: func(env powerEnv) bool { return cardsAvailable(env.e) },
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.drawToHand(ctx, env.owner, env.count(), env.origin)
		},
	})

	r.register(content.PowerDrawFromTray, &powerHandler{
		can: func(env powerEnv) bool { return len(env.e.st.Tray) > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			n := min(env.count(), len(env.e.st.Tray))
			prompt := &CardDrawPrompt{
				PromptMeta: env.e.meta(env.owner.ID, env.origin),
				Count:      n,
				Tray:       append([]content.CardID(nil), env.e.st.Tray...),
				DeckSize:   0, // tray only
			}
			choice, err := env.e.askOption(ctx, env.owner, prompt)
			if err != nil {
				return err
			}
			picks := choice.(*CardDrawChoice).FromTray
			return env.e.emit(CardsDrawnEffect{Player: env.owner.ID, Cards: picks, FromTray: true})
		},
	})

	r.register(content.PowerAllPlayersDraw, &powerHandler{
		can: func(env powerEnv) bool { return cardsAvailable(env.e) },
		run: func(ctx context.Context, env powerEnv) error {
			for _, p := range env.e.st.Players {
				if p.Forfeited {
					continue
				}
				err := env.e.drawToHand(ctx, p, 1, env.origin)
				if errors.Is(err, errForfeited) {
					continue
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	})

	r.register(content.PowerTuckFromHand, &powerHandler{
		can: func(env powerEnv) bool { return len(env.owner.Hand) > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			prompt := &CardSelectPrompt{
				PromptMeta: env.e.meta(env.owner.ID, env.origin),
				Min:        1,
				Count:      min(env.count(), len(env.owner.Hand)),
				From:       append([]content.CardID(nil), env.owner.Hand...),
				Purpose:    SelectTuck,
			}
			choice, err := env.e.askOption(ctx, env.owner, prompt)
			if err != nil {
				return err
			}
			for _, card := range choice.(*CardSelectChoice).Cards {
				if err := env.e.emit(CardTuckedEffect{Bird: env.bird.Key, Card: card, FromHand: true}); err != nil {
					return err
				}
			}
			return nil
		},
	})

	r.register(content.PowerTuckFromDeck, &powerHandler{
		can: func(env powerEnv) bool { return env.e.st.Deck.Total() > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.tuckFromDeck(env.bird, env.count())
		},
	})

	r.register(content.PowerTuckThenDraw, &powerHandler{
		can: func(env powerEnv) bool { return len(env.owner.Hand) > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			if err := tuckOneFromHand(ctx, env); err != nil {
				return err
			}
			return env.e.drawToHand(ctx, env.owner, 1, env.origin)
		},
	})

	r.register(content.PowerTuckThenLayEgg, &powerHandler{
		can: func(env powerEnv) bool { return len(env.owner.Hand) > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			if err := tuckOneFromHand(ctx, env); err != nil {
				return err
			}
			if env.bird.EggSpace() <= 0 {
				return nil
			}
			return env.e.emit(EggsLaidEffect{Bird: env.bird.Key, Count: 1})
		},
	})

	r.register(content.PowerDiscardCardToGain, &powerHandler{
		can: func(env powerEnv) bool { return len(env.owner.Hand) > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			prompt := &CardSelectPrompt{
				PromptMeta: env.e.meta(env.owner.ID, env.origin),
				Min:        1,
				Count:      1,
				From:       append([]content.CardID(nil), env.owner.Hand...),
				Purpose:    SelectDiscard,
			}
			choice, err := env.e.askOption(ctx, env.owner, prompt)
			if err != nil {
				return err
			}
			card := choice.(*CardSelectChoice).Cards[0]
			if err := env.e.emit(CardDiscardedEffect{Player: env.owner.ID, Card: card}); err != nil {
				return err
			}
			return env.e.gainSupply(env.owner.ID, env.spec.Food, env.count())
		},
	})

	r.register(content.PowerDiscardFoodToTuck, &powerHandler{
		can: func(env powerEnv) bool {
			return env.owner.Food[env.spec.Food] > 0 && env.e.st.Deck.Total() > 0
		},
		run: func(ctx context.Context, env powerEnv) error {
			if err := env.e.emit(FoodSpentEffect{Player: env.owner.ID, Food: env.spec.Food, Count: 1}); err != nil {
				return err
			}
			return env.e.tuckFromDeck(env.bird, env.count())
		},
	})

	r.register(content.PowerDrawIfNestBirds, &powerHandler{
		can: func(env powerEnv) bool {
			return nestBirdCount(env.owner, env.spec.Nest) >= env.spec.Threshold && cardsAvailable(env.e)
		},
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.drawToHand(ctx, env.owner, env.count(), env.origin)
		},
	})

	// Dice-roll hunting and fishing.

	r.register(content.PowerRollDiceCache, &powerHandler{
		can: always,
		run: func(ctx context.Context, env powerEnv) error {
			for _, face := range env.e.rollDice(env.count()) {
				if !face.CanYield(env.spec.Food) {
					continue
				}
				if err := env.e.emit(FoodCachedEffect{Bird: env.bird.Key, Food: env.spec.Food, Count: 1}); err != nil {
					return err
				}
			}
			return nil
		},
	})

	r.register(content.PowerRollDiceGain, &powerHandler{
		can: always,
		run: func(ctx context.Context, env powerEnv) error {
			for _, face := range env.e.rollDice(env.count()) {
				if !face.CanYield(env.spec.Food) {
					continue
				}
				if err := env.e.gainSupply(env.owner.ID, env.spec.Food, 1); err != nil {
					return err
				}
			}
			return nil
		},
	})

	// Predation by wingspan comparison.

	r.register(content.PowerPredatorTuck, &powerHandler{
		can: func(env powerEnv) bool { return env.e.st.Deck.Total() > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			card, kept, err := revealPrey(env)
			if err != nil {
				return err
			}
			if !kept {
				env.e.st.Deck.Discard(card)
				return nil
			}
			return env.e.emit(CardTuckedEffect{Bird: env.bird.Key, Card: card})
		},
	})

	r.register(content.PowerPredatorKeep, &powerHandler{
		can: func(env powerEnv) bool { return env.e.st.Deck.Total() > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			card, kept, err := revealPrey(env)
			if err != nil {
				return err
			}
			if !kept {
				env.e.st.Deck.Discard(card)
				return nil
			}
			return env.e.emit(CardsDrawnEffect{Player: env.owner.ID, Cards: []content.CardID{card}})
		},
	})

	// Meta.

	r.register(content.PowerRepeatBrown, &powerHandler{
		can: func(env powerEnv) bool {
			return env.depth+1 < maxPowerDepth && len(repeatableBrown(env)) > 0
		},
		run: func(ctx context.Context, env powerEnv) error {
			eligible := repeatableBrown(env)
			prompt := &BirdTargetPrompt{
				PromptMeta: env.e.meta(env.owner.ID, env.origin),
				Count:      1,
				Eligible:   eligible,
				Purpose:    TargetRepeatPower,
			}
			choice, err := env.e.askOption(ctx, env.owner, prompt)
			if err != nil {
				return err
			}
			target := env.owner.Board.Find(choice.(*BirdTargetChoice).Birds[0])
			return env.e.runPower(ctx, env.owner, target, env.origin, env.depth+1, nil)
		},
	})

	// Pink reactions. can consults the triggering seed; the reaction offer
	// layer guarantees seed is non-nil and class-matched.

	r.register(content.PowerPinkGainFoodOnGain, &powerHandler{
		can: func(env powerEnv) bool { return env.seed != nil && env.seed.food == env.spec.Food },
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.gainSupply(env.owner.ID, env.spec.Food, 1)
		},
	})

	r.register(content.PowerPinkCacheOnGain, &powerHandler{
		can: func(env powerEnv) bool { return env.seed != nil && env.seed.food == env.spec.Food },
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.emit(FoodCachedEffect{Bird: env.bird.Key, Food: env.spec.Food, Count: 1})
		},
	})

	r.register(content.PowerPinkLayEggOnLay, &powerHandler{
		can: func(env powerEnv) bool { return env.seed != nil && env.bird.EggSpace() > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.emit(EggsLaidEffect{Bird: env.bird.Key, Count: 1})
		},
	})

	r.register(content.PowerPinkTuckOnPlay, &powerHandler{
		can: func(env powerEnv) bool {
			return env.seed != nil && env.seed.habitat == env.spec.Habitat && env.e.st.Deck.Total() > 0
		},
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.tuckFromDeck(env.bird, 1)
		},
	})

	r.register(content.PowerPinkGainOnPlay, &powerHandler{
		can: func(env powerEnv) bool {
			if env.seed == nil {
				return false
			}
			card, err := env.e.reg.Bird(env.seed.card)
			if err != nil {
				return false
			}
			return card.Cost.Typed[env.spec.Food] > 0
		},
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.gainSupply(env.owner.ID, env.spec.Food, 1)
		},
	})

	r.register(content.PowerPinkTuckOnDraw, &powerHandler{
		can: func(env powerEnv) bool { return env.seed != nil && env.e.st.Deck.Total() > 0 },
		run: func(ctx context.Context, env powerEnv) error {
			return env.e.tuckFromDeck(env.bird, 1)
		},
	})

	return r
}

// --- handler helpers ---

func feederYields(e *Engine, food content.FoodType) bool {
	for _, f := range e.st.Feeder.Faces() {
		if f.CanYield(food) {
			return true
		}
	}
	return false
}

func cardsAvailable(e *Engine) bool {
	return e.st.Deck.Total() > 0 || len(e.st.Tray) > 0
}

func nestBirdsWithSpace(p *PlayerState, nest content.NestType) []content.CardID {
	var out []content.CardID
	for _, b := range p.Board.All() {
		if b.Card.Nest.Matches(nest) && b.EggSpace() > 0 {
			out = append(out, b.Key.Card)
		}
	}
	return out
}

func nestBirdCount(p *PlayerState, nest content.NestType) int {
	n := 0
	for _, b := range p.Board.All() {
		if b.Card.Nest.Matches(nest) {
			n++
		}
	}
	return n
}

func tuckOneFromHand(ctx context.Context, env powerEnv) error {
	prompt := &CardSelectPrompt{
		PromptMeta: env.e.meta(env.owner.ID, env.origin),
		Min:        1,
		Count:      1,
		From:       append([]content.CardID(nil), env.owner.Hand...),
		Purpose:    SelectTuck,
	}
	choice, err := env.e.askOption(ctx, env.owner, prompt)
	if err != nil {
		return err
	}
	card := choice.(*CardSelectChoice).Cards[0]
	return env.e.emit(CardTuckedEffect{Bird: env.bird.Key, Card: card, FromHand: true})
}

// revealPrey draws the top deck card and compares its wingspan to the
// predator's threshold. A printed "*" wingspan (stored as 0) never falls
// below the threshold. The caller disposes of the card per its kind.
func revealPrey(env powerEnv) (content.CardID, bool, error) {
	cards, err := env.e.st.Deck.Draw(1)
	if err != nil {
		return "", false, err
	}
	card := cards[0]
	prey, err := env.e.reg.Bird(card)
	if err != nil {
		return "", false, err
	}
	kept := prey.Wingspan > 0 && prey.Wingspan < env.spec.Threshold
	if err := env.e.emit(CardRevealedEffect{Player: env.owner.ID, Card: card, Kept: kept}); err != nil {
		return "", false, err
	}
	return card, kept, nil
}

// repeatableBrown lists the other brown-powered birds in the habitat the
// current action activated.
func repeatableBrown(env powerEnv) []content.CardID {
	h, ok := habitatFor(env.origin.Action)
	if !ok {
		return nil
	}
	var out []content.CardID
	for _, b := range env.owner.Board.Birds(h) {
		if b.Key == env.bird.Key {
			continue
		}
		spec := b.Card.Power
		if spec == nil || spec.Trigger != content.TriggerBrown || spec.Kind == content.PowerRepeatBrown {
			continue
		}
		out = append(out, b.Key.Card)
	}
	return out
}
