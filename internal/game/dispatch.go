package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/aviarylabs/aviary/internal/content"
)

// resolveTurn asks the active player for a base action and resolves it to
// completion, including column bonuses and brown power activations.
func (e *Engine) resolveTurn(ctx context.Context, p *PlayerState) (ActionType, error) {
	playable := e.playableBirds(p)
	actions := []ActionType{ActionGainFood, ActionLayEggs, ActionDrawCards}
	if len(playable) > 0 {
		actions = append([]ActionType{ActionPlayBird}, actions...)
	}

	prompt := &TurnActionPrompt{
		PromptMeta: e.meta(p.ID, Origin{}),
		Actions:    actions,
		Playable:   playable,
	}
	choice, err := e.askAction(ctx, p, prompt)
	if err != nil {
		return 0, err
	}

	origin := Origin{Action: choice.Action}
	switch choice.Action {
	case ActionPlayBird:
		err = e.doPlayBird(ctx, p, choice.Bird, choice.Habitat, origin)
	case ActionGainFood:
		err = e.doGainFood(ctx, p, origin)
	case ActionLayEggs:
		err = e.doLayEggs(ctx, p, origin)
	case ActionDrawCards:
		err = e.doDrawCards(ctx, p, origin)
	default:
		err = fmt.Errorf("game: unhandled action %s", choice.Action)
	}
	return choice.Action, err
}

// playableBirds enumerates hand cards the player can currently pay for,
// with the habitats each may legally enter.
func (e *Engine) playableBirds(p *PlayerState) []PlayableBird {
	var out []PlayableBird
	for _, id := range p.Hand {
		card, err := e.reg.Bird(id)
		if err != nil {
			continue
		}
		if !p.CanAfford(card.Cost) {
			continue
		}
		var habs []content.Habitat
		for _, h := range content.Habitats() {
			if !card.LivesIn(h) {
				continue
			}
			col := p.Board.LeftmostEmpty(h)
			if col < 0 {
				continue
			}
			if p.EggTotal() < eggCostByColumn[col] {
				continue
			}
			habs = append(habs, h)
		}
		if len(habs) > 0 {
			out = append(out, PlayableBird{Card: id, Habitats: habs})
		}
	}
	return out
}

// --- base actions ---

func (e *Engine) doPlayBird(ctx context.Context, p *PlayerState, id content.CardID, h content.Habitat, origin Origin) error {
	card, err := e.reg.Bird(id)
	if err != nil {
		return err
	}
	col := p.Board.LeftmostEmpty(h)
	if col < 0 {
		return fmt.Errorf("game: habitat %s is full", h)
	}
	eggCost := eggCostByColumn[col]

	if card.Cost.Total() > 0 || eggCost > 0 {
		prompt := &PayCostPrompt{
			PromptMeta: e.meta(p.ID, origin),
			Cost:       card.Cost,
			EggCost:    eggCost,
			EggSources: e.eggSources(p),
		}
		choice, err := e.askOption(ctx, p, prompt)
		if err != nil {
			return err
		}
		pay := choice.(*PayCostChoice)
		for _, f := range content.FoodTypes() {
			if n := pay.Food[f]; n > 0 {
				if err := e.emit(FoodSpentEffect{Player: p.ID, Food: f, Count: n}); err != nil {
					return err
				}
			}
		}
		for _, src := range prompt.EggSources {
			if n := pay.Eggs[src.Card]; n > 0 {
				if err := e.emit(EggsDiscardedEffect{Bird: BirdKey{Player: p.ID, Card: src.Card}, Count: n}); err != nil {
					return err
				}
			}
		}
	}

	if err := e.emit(BirdPlayedEffect{Player: p.ID, Card: id, Habitat: h, Column: col}); err != nil {
		return err
	}

	// White powers resolve once, immediately, without an accept/decline offer.
	if card.Power != nil && card.Power.Trigger == content.TriggerWhite {
		bird := p.Board.Find(id)
		return e.runPower(ctx, p, bird, origin, 0, nil)
	}
	return nil
}

func (e *Engine) doGainFood(ctx context.Context, p *PlayerState, origin Origin) error {
	col := rewardColumn(p.Board.LeftmostEmpty(content.Forest))
	count := foodReward[col]

	// Odd columns trade a hand card for an extra die.
	if bonusColumn(col) && len(p.Hand) > 0 {
		paid, err := e.offerCardDiscard(ctx, p, origin)
		if err != nil {
			return err
		}
		if paid {
			count++
		}
	}

	if err := e.gainFromFeeder(ctx, p, nil, count, origin, nil); err != nil {
		return err
	}
	return e.activateBrown(ctx, p, content.Forest, origin)
}

func (e *Engine) doLayEggs(ctx context.Context, p *PlayerState, origin Origin) error {
	col := rewardColumn(p.Board.LeftmostEmpty(content.Grassland))
	count := eggReward[col]

	// Odd columns trade one food token of any type for an extra egg.
	if bonusColumn(col) && p.FoodTotal() > 0 {
		paid, err := e.offerFoodPayment(ctx, p, 1, origin)
		if err != nil {
			return err
		}
		if paid {
			count++
		}
	}

	if err := e.layEggsDistribute(ctx, p, count, origin); err != nil {
		return err
	}
	return e.activateBrown(ctx, p, content.Grassland, origin)
}

func (e *Engine) doDrawCards(ctx context.Context, p *PlayerState, origin Origin) error {
	col := rewardColumn(p.Board.LeftmostEmpty(content.Wetland))
	count := cardReward[col]

	// Odd columns trade an egg for an extra card.
	if bonusColumn(col) && p.EggTotal() > 0 {
		paid, err := e.offerEggDiscard(ctx, p, origin)
		if err != nil {
			return err
		}
		if paid {
			count++
		}
	}

	if err := e.drawToHand(ctx, p, count, origin); err != nil {
		return err
	}
	return e.activateBrown(ctx, p, content.Wetland, origin)
}

// --- column bonus offers ---

// offerBonus presents an optional reward/cost trade tied to the base action.
// The Bird key is zero: the offer originates from the action, not a power.
func (e *Engine) offerBonus(ctx context.Context, p *PlayerState, origin Origin) (bool, error) {
	prompt := &PowerOfferPrompt{PromptMeta: e.meta(p.ID, origin)}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		return false, err
	}
	return choice.(*PowerOfferChoice).Accept, nil
}

func (e *Engine) offerCardDiscard(ctx context.Context, p *PlayerState, origin Origin) (bool, error) {
	accept, err := e.offerBonus(ctx, p, origin)
	if err != nil || !accept {
		return false, err
	}
	prompt := &CardSelectPrompt{
		PromptMeta: e.meta(p.ID, origin),
		Min:        1,
		Count:      1,
		From:       append([]content.CardID(nil), p.Hand...),
		Purpose:    SelectDiscard,
	}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		return false, err
	}
	card := choice.(*CardSelectChoice).Cards[0]
	return true, e.emit(CardDiscardedEffect{Player: p.ID, Card: card})
}

func (e *Engine) offerFoodPayment(ctx context.Context, p *PlayerState, wild int, origin Origin) (bool, error) {
	accept, err := e.offerBonus(ctx, p, origin)
	if err != nil || !accept {
		return false, err
	}
	return true, e.payWildFood(ctx, p, wild, origin)
}

func (e *Engine) offerEggDiscard(ctx context.Context, p *PlayerState, origin Origin) (bool, error) {
	accept, err := e.offerBonus(ctx, p, origin)
	if err != nil || !accept {
		return false, err
	}
	return true, e.discardEggPrompted(ctx, p, origin)
}

// --- shared resolution helpers ---

// eggSources lists the player's birds that currently carry eggs.
func (e *Engine) eggSources(p *PlayerState) []EggSlot {
	var out []EggSlot
	for _, b := range p.Board.All() {
		if b.Eggs > 0 {
			out = append(out, EggSlot{Card: b.Key.Card, Limit: b.Eggs})
		}
	}
	return out
}

// gainFromFeeder lets the player take count dice from the feeder, refilling
// when it empties mid-selection. A non-nil filter restricts the takeable
// faces. When cacheOn is non-nil the food is cached there instead of going
// to the supply.
func (e *Engine) gainFromFeeder(ctx context.Context, p *PlayerState, cacheOn *BirdInstance, count int, origin Origin, filter func(content.DieFace) bool) error {
	remaining := count
	for remaining > 0 {
		if e.st.Feeder.ResetIfEmpty() {
			if err := e.emit(FeederRefilledEffect{Faces: e.st.Feeder.Faces()}); err != nil {
				return err
			}
		}
		faces := e.st.Feeder.Faces()
		if filter != nil {
			kept := faces[:0]
			for _, f := range faces {
				if filter(f) {
					kept = append(kept, f)
				}
			}
			faces = kept
			if len(faces) == 0 {
				return nil // nothing takeable; the power grants what it can
			}
		}
		n := min(remaining, len(faces))
		prompt := &FoodSelectPrompt{
			PromptMeta:    e.meta(p.ID, origin),
			Dice:          faces,
			Count:         n,
			RerollAllowed: filter == nil && e.st.Feeder.AllSame(),
		}
		choice, err := e.askOption(ctx, p, prompt)
		if err != nil {
			return err
		}
		sel := choice.(*FoodSelectChoice)
		if sel.Reroll {
			e.st.Feeder.Refill()
			if err := e.emit(FeederRefilledEffect{Faces: e.st.Feeder.Faces()}); err != nil {
				return err
			}
			continue
		}
		for _, take := range sel.Take {
			if err := e.st.Feeder.Take(take.Face); err != nil {
				return err
			}
			if err := e.emit(DieTakenEffect{Player: p.ID, Face: take.Face}); err != nil {
				return err
			}
			if cacheOn != nil {
				if err := e.emit(FoodCachedEffect{Bird: cacheOn.Key, Food: take.As, Count: 1}); err != nil {
					return err
				}
			} else {
				if err := e.emit(FoodGainedEffect{Player: p.ID, Food: take.As, Count: 1, FromFeeder: true}); err != nil {
					return err
				}
			}
			remaining--
		}
	}
	return nil
}

// gainSupply grants food directly from the general supply.
func (e *Engine) gainSupply(p PlayerID, f content.FoodType, n int) error {
	if n <= 0 {
		return nil
	}
	return e.emit(FoodGainedEffect{Player: p, Food: f, Count: n})
}

// gainChoiceFromSupply lets the player pick count food tokens of any type
// from the general supply. The selection reuses the food prompt with one
// synthetic plain die per food type, so agents see a single selection shape.
func (e *Engine) gainChoiceFromSupply(ctx context.Context, p *PlayerState, count int, origin Origin) error {
	var dice []content.DieFace
	for _, f := range content.FoodTypes() {
		for range count {
			dice = append(dice, content.DieFace(f))
		}
	}
	prompt := &FoodSelectPrompt{
		PromptMeta: e.meta(p.ID, origin),
		Dice:       dice,
		Count:      count,
	}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		return err
	}
	for _, take := range choice.(*FoodSelectChoice).Take {
		if err := e.gainSupply(p.ID, take.As, 1); err != nil {
			return err
		}
	}
	return nil
}

// layEggsDistribute asks the player to spread count eggs over their birds,
// capped by total remaining capacity.
func (e *Engine) layEggsDistribute(ctx context.Context, p *PlayerState, count int, origin Origin) error {
	var eligible []EggSlot
	space := 0
	for _, b := range p.Board.All() {
		if s := b.EggSpace(); s > 0 {
			eligible = append(eligible, EggSlot{Card: b.Key.Card, Limit: s})
			space += s
		}
	}
	count = min(count, space)
	if count <= 0 {
		return nil
	}
	prompt := &EggPlacementPrompt{
		PromptMeta: e.meta(p.ID, origin),
		Count:      count,
		Eligible:   eligible,
	}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		return err
	}
	placements := choice.(*EggPlacementChoice).Placements
	// Eligible order keeps the effect log deterministic across runs.
	for _, slot := range eligible {
		if n := placements[slot.Card]; n > 0 {
			if err := e.emit(EggsLaidEffect{Bird: BirdKey{Player: p.ID, Card: slot.Card}, Count: n}); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawToHand asks the player to split count draws between tray and deck,
// capped by the cards actually available.
func (e *Engine) drawToHand(ctx context.Context, p *PlayerState, count int, origin Origin) error {
	count = min(count, e.st.Deck.Total()+len(e.st.Tray))
	if count <= 0 {
		return nil
	}
	prompt := &CardDrawPrompt{
		PromptMeta: e.meta(p.ID, origin),
		Count:      count,
		Tray:       append([]content.CardID(nil), e.st.Tray...),
		DeckSize:   e.st.Deck.Total(),
	}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		return err
	}
	draw := choice.(*CardDrawChoice)
	if len(draw.FromTray) > 0 {
		if err := e.emit(CardsDrawnEffect{Player: p.ID, Cards: draw.FromTray, FromTray: true}); err != nil {
			return err
		}
	}
	if draw.FromDeck > 0 {
		cards, err := e.st.Deck.Draw(draw.FromDeck)
		if err != nil {
			return err
		}
		if err := e.emit(CardsDrawnEffect{Player: p.ID, Cards: cards}); err != nil {
			return err
		}
	}
	return nil
}

// tuckFromDeck tucks the top n deck cards under the bird.
func (e *Engine) tuckFromDeck(bird *BirdInstance, n int) error {
	if avail := e.st.Deck.Total(); n > avail {
		n = avail
	}
	if n <= 0 {
		return nil
	}
	cards, err := e.st.Deck.Draw(n)
	if err != nil {
		return err
	}
	for _, c := range cards {
		if err := e.emit(CardTuckedEffect{Bird: bird.Key, Card: c}); err != nil {
			return err
		}
	}
	return nil
}

// discardEggPrompted has the player pick one of their egg-carrying birds and
// discards an egg from it.
func (e *Engine) discardEggPrompted(ctx context.Context, p *PlayerState, origin Origin) error {
	var eligible []content.CardID
	for _, b := range p.Board.All() {
		if b.Eggs > 0 {
			eligible = append(eligible, b.Key.Card)
		}
	}
	if len(eligible) == 0 {
		return fmt.Errorf("game: player %d has no eggs to discard", p.ID)
	}
	prompt := &BirdTargetPrompt{
		PromptMeta: e.meta(p.ID, origin),
		Count:      1,
		Eligible:   eligible,
		Purpose:    TargetDiscardEgg,
	}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		return err
	}
	target := choice.(*BirdTargetChoice).Birds[0]
	return e.emit(EggsDiscardedEffect{Bird: BirdKey{Player: p.ID, Card: target}, Count: 1})
}

// payWildFood charges n food tokens of the player's choosing.
func (e *Engine) payWildFood(ctx context.Context, p *PlayerState, n int, origin Origin) error {
	prompt := &PayCostPrompt{
		PromptMeta: e.meta(p.ID, origin),
		Cost:       content.FoodCost{Wild: n},
	}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		return err
	}
	for _, f := range content.FoodTypes() {
		if c := choice.(*PayCostChoice).Food[f]; c > 0 {
			if err := e.emit(FoodSpentEffect{Player: p.ID, Food: f, Count: c}); err != nil {
				return err
			}
		}
	}
	return nil
}

// rollDice rolls n dice outside the feeder using the game's random source.
func (e *Engine) rollDice(n int) []content.DieFace {
	out := make([]content.DieFace, n)
	for i := range out {
		out[i] = content.DieFace(e.rng.IntN(int(content.NumDieFaces)))
	}
	return out
}

// --- power activation ---

// activateBrown walks the activated habitat right to left, offering each
// brown power in turn. Powers already on the board when the action resolves
// are the only ones that fire.
func (e *Engine) activateBrown(ctx context.Context, p *PlayerState, h content.Habitat, origin Origin) error {
	birds := p.Board.Birds(h)
	for i := len(birds) - 1; i >= 0; i-- {
		b := birds[i]
		if b.Card.Power == nil || b.Card.Power.Trigger != content.TriggerBrown {
			continue
		}
		if err := e.offerPower(ctx, p, b, origin, 0); err != nil {
			return err
		}
	}
	return nil
}

// offerPower self-skips unusable powers, otherwise asks accept/decline and
// runs the handler on acceptance.
func (e *Engine) offerPower(ctx context.Context, p *PlayerState, b *BirdInstance, origin Origin, depth int) error {
	spec := *b.Card.Power
	origin.Power = b.Key.Card
	origin.Trigger = spec.Trigger

	handler := e.powers.lookup(spec.Kind)
	env := powerEnv{e: e, owner: p, bird: b, spec: spec, origin: origin, depth: depth}
	if handler == nil || !handler.can(env) {
		return e.emit(PowerSkippedEffect{Bird: b.Key, Reason: SkipResourceUnavailable})
	}

	prompt := &PowerOfferPrompt{
		PromptMeta: e.meta(p.ID, origin),
		Bird:       b.Key,
		Power:      spec,
	}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		return err
	}
	if !choice.(*PowerOfferChoice).Accept {
		e.event(PowerDeclinedEvent{eventStamp: e.stamp(), Bird: b.Key, Kind: spec.Kind})
		return nil
	}
	if err := handler.run(ctx, env); err != nil {
		return err
	}
	e.event(PowerActivatedEvent{eventStamp: e.stamp(), Bird: b.Key, Kind: spec.Kind, Trigger: spec.Trigger})
	return nil
}

// runPower resolves a power without an offer (white triggers). An unusable
// power records a skip instead of prompting.
func (e *Engine) runPower(ctx context.Context, p *PlayerState, b *BirdInstance, origin Origin, depth int, seed *reactionSeed) error {
	spec := *b.Card.Power
	origin.Power = b.Key.Card
	origin.Trigger = spec.Trigger

	handler := e.powers.lookup(spec.Kind)
	env := powerEnv{e: e, owner: p, bird: b, spec: spec, origin: origin, depth: depth, seed: seed}
	if handler == nil || !handler.can(env) {
		return e.emit(PowerSkippedEffect{Bird: b.Key, Reason: SkipResourceUnavailable})
	}
	if err := handler.run(ctx, env); err != nil {
		return err
	}
	e.event(PowerActivatedEvent{eventStamp: e.stamp(), Bird: b.Key, Kind: spec.Kind, Trigger: spec.Trigger})
	return nil
}

// --- pink reactions ---

// reactionSeed is one triggering moment collected during the active player's
// action: the semantic class plus whatever the reacting handler needs.
type reactionSeed struct {
	class   content.ReactionClass
	actor   PlayerID
	food    content.FoodType
	habitat content.Habitat
	card    content.CardID
}

// seedReaction records reaction triggers while the active player's action
// resolves. Reactions collected here are offered once the action completes;
// effects produced by the reactions themselves never seed further reactions.
func (e *Engine) seedReaction(ef Effect) {
	switch v := ef.(type) {
	case FoodGainedEffect:
		e.reactions = append(e.reactions, reactionSeed{class: content.ReactFoodGained, actor: v.Player, food: v.Food})
	case EggsLaidEffect:
		e.reactions = append(e.reactions, reactionSeed{class: content.ReactEggsLaid, actor: v.Bird.Player})
	case BirdPlayedEffect:
		e.reactions = append(e.reactions, reactionSeed{class: content.ReactBirdPlayed, actor: v.Player, habitat: v.Habitat, card: v.Card})
	case CardsDrawnEffect:
		e.reactions = append(e.reactions, reactionSeed{class: content.ReactCardsDrawn, actor: v.Player})
	}
}

// offerPinkReactions walks the collected seeds and offers each to eligible
// pink powers, clockwise from the seat after the active player. A pink power
// fires at most once between its holder's turns, and never reacts to its own
// holder's doing.
func (e *Engine) offerPinkReactions(ctx context.Context) error {
	seeds := e.reactions
	e.reactions = nil
	n := len(e.st.Players)

	for _, seed := range seeds {
		for i := 1; i < n; i++ {
			holder := e.st.Players[(int(e.st.Active)+i)%n]
			if holder.Forfeited || holder.ID == seed.actor {
				continue
			}
			for _, b := range holder.Board.All() {
				spec := b.Card.Power
				if spec == nil || !spec.ReactsTo(seed.class) || e.pinkUsed[b.Key] {
					continue
				}
				s := seed
				if err := e.offerPink(ctx, holder, b, &s); err != nil {
					if errors.Is(err, errForfeited) {
						break // holder is out; move to the next seat
					}
					return err
				}
			}
		}
	}
	return nil
}

func (e *Engine) offerPink(ctx context.Context, p *PlayerState, b *BirdInstance, seed *reactionSeed) error {
	spec := *b.Card.Power
	origin := Origin{Power: b.Key.Card, Trigger: content.TriggerPink}

	handler := e.powers.lookup(spec.Kind)
	env := powerEnv{e: e, owner: p, bird: b, spec: spec, origin: origin, seed: seed}
	if handler == nil || !handler.can(env) {
		return nil // a reaction that cannot fire is silently passed over
	}

	prompt := &PowerOfferPrompt{
		PromptMeta: e.meta(p.ID, origin),
		Bird:       b.Key,
		Power:      spec,
	}
	choice, err := e.askOption(ctx, p, prompt)
	if err != nil {
		return err
	}
	if !choice.(*PowerOfferChoice).Accept {
		e.event(PowerDeclinedEvent{eventStamp: e.stamp(), Bird: b.Key, Kind: spec.Kind})
		return nil
	}
	e.pinkUsed[b.Key] = true
	if err := handler.run(ctx, env); err != nil {
		return err
	}
	e.event(PowerActivatedEvent{eventStamp: e.stamp(), Bird: b.Key, Kind: spec.Kind, Trigger: spec.Trigger})
	return nil
}
