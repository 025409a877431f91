package game

import "github.com/aviarylabs/aviary/internal/content"

// validateChoice checks a kind-matched choice against its originating prompt
// and current state. A nil return means the choice may be applied. The
// engine verifies kind and id before calling this, so each case may assert
// the concrete types.
func validateChoice(p Prompt, c Choice, st *GameState) *ValidationError {
	switch p.Kind() {
	case PromptStartingHand:
		return validateStartingHand(p.(*StartingHandPrompt), c.(*StartingHandChoice))
	case PromptTurnAction:
		return validateTurnAction(p.(*TurnActionPrompt), c.(*TurnActionChoice))
	case PromptPowerOffer:
		return nil // accept and decline are both always valid
	case PromptFoodSelect:
		return validateFoodSelect(p.(*FoodSelectPrompt), c.(*FoodSelectChoice))
	case PromptEggPlacement:
		return validateEggPlacement(p.(*EggPlacementPrompt), c.(*EggPlacementChoice))
	case PromptCardDraw:
		return validateCardDraw(p.(*CardDrawPrompt), c.(*CardDrawChoice))
	case PromptPayCost:
		return validatePayCost(p.(*PayCostPrompt), c.(*PayCostChoice), st)
	case PromptCardSelect:
		return validateCardSelect(p.(*CardSelectPrompt), c.(*CardSelectChoice))
	case PromptBirdTarget:
		return validateBirdTarget(p.(*BirdTargetPrompt), c.(*BirdTargetChoice))
	}
	return invalid(CodeNotEligible, "unknown prompt kind %d", p.Kind())
}

// multisetWithin reports whether every element of picks appears in from,
// respecting multiplicity.
func multisetWithin[T comparable](picks, from []T) bool {
	avail := make(map[T]int, len(from))
	for _, v := range from {
		avail[v]++
	}
	for _, v := range picks {
		if avail[v] == 0 {
			return false
		}
		avail[v]--
	}
	return true
}

func validateStartingHand(p *StartingHandPrompt, c *StartingHandChoice) *ValidationError {
	if len(c.KeepCards)+len(c.KeepFood) != p.Budget {
		return invalid(CodeQuantityMismatch, "keep %d cards + %d food, budget is %d",
			len(c.KeepCards), len(c.KeepFood), p.Budget)
	}
	if !multisetWithin(c.KeepCards, p.Cards) {
		return invalid(CodeNotEligible, "kept card not among dealt cards")
	}
	for _, f := range c.KeepFood {
		if !f.Valid() {
			return invalid(CodeNotEligible, "unknown food type %s", f)
		}
	}
	return nil
}

func validateTurnAction(p *TurnActionPrompt, c *TurnActionChoice) *ValidationError {
	allowed := false
	for _, a := range p.Actions {
		if a == c.Action {
			allowed = true
			break
		}
	}
	if !allowed {
		return invalid(CodeNotEligible, "action %s not available", c.Action)
	}
	if c.Action != ActionPlayBird {
		return nil
	}
	for _, pb := range p.Playable {
		if pb.Card != c.Bird {
			continue
		}
		for _, h := range pb.Habitats {
			if h == c.Habitat {
				return nil
			}
		}
		return invalid(CodeNotEligible, "%s cannot be played into %s", c.Bird, c.Habitat)
	}
	return invalid(CodeNotEligible, "%s is not playable", c.Bird)
}

func validateFoodSelect(p *FoodSelectPrompt, c *FoodSelectChoice) *ValidationError {
	if c.Reroll {
		if !p.RerollAllowed {
			return invalid(CodeRerollIllegal, "feeder does not show a single face")
		}
		if len(c.Take) != 0 {
			return invalid(CodeRerollIllegal, "reroll must not take dice")
		}
		return nil
	}
	if len(c.Take) != p.Count {
		return invalid(CodeQuantityMismatch, "took %d dice, prompt asks %d", len(c.Take), p.Count)
	}
	faces := make([]content.DieFace, len(c.Take))
	for i, t := range c.Take {
		faces[i] = t.Face
		if !t.Face.CanYield(t.As) {
			return invalid(CodeNotEligible, "face %s cannot yield %s", t.Face, t.As)
		}
	}
	if !multisetWithin(faces, p.Dice) {
		return invalid(CodeNotEligible, "taken die not in feeder")
	}
	return nil
}

func validateEggPlacement(p *EggPlacementPrompt, c *EggPlacementChoice) *ValidationError {
	limits := make(map[content.CardID]int, len(p.Eligible))
	for _, s := range p.Eligible {
		limits[s.Card] = s.Limit
	}
	total := 0
	for card, n := range c.Placements {
		if n <= 0 {
			return invalid(CodeQuantityMismatch, "placement on %s must be positive", card)
		}
		limit, ok := limits[card]
		if !ok {
			return invalid(CodeNotEligible, "%s is not eligible for eggs", card)
		}
		if n > limit {
			return invalid(CodeCapacityExceeded, "%s holds %d more eggs at most, got %d", card, limit, n)
		}
		total += n
	}
	if total != p.Count {
		return invalid(CodeQuantityMismatch, "placed %d eggs, prompt asks %d", total, p.Count)
	}
	return nil
}

func validateCardDraw(p *CardDrawPrompt, c *CardDrawChoice) *ValidationError {
	if c.FromDeck < 0 {
		return invalid(CodeQuantityMismatch, "deck draw count is negative")
	}
	if len(c.FromTray)+c.FromDeck != p.Count {
		return invalid(CodeQuantityMismatch, "%d tray + %d deck, prompt asks %d",
			len(c.FromTray), c.FromDeck, p.Count)
	}
	if c.FromDeck > p.DeckSize {
		return invalid(CodeInsufficientResources, "deck holds %d cards, asked %d", p.DeckSize, c.FromDeck)
	}
	if !multisetWithin(c.FromTray, p.Tray) {
		return invalid(CodeNotEligible, "tray pick not in tray")
	}
	return nil
}

func validatePayCost(p *PayCostPrompt, c *PayCostChoice, st *GameState) *ValidationError {
	player := st.Player(p.Player)
	paid := 0
	for f, n := range c.Food {
		if n < 0 {
			return invalid(CodeCostMismatch, "negative payment of %s", f)
		}
		if n > player.Food[f] {
			return invalid(CodeInsufficientResources, "paying %d %s, supply holds %d", n, f, player.Food[f])
		}
		paid += n
	}
	for f, need := range p.Cost.Typed {
		if c.Food[f] < need {
			return invalid(CodeCostMismatch, "cost requires %d %s, paid %d", need, f, c.Food[f])
		}
	}
	if paid != p.Cost.Total() {
		return invalid(CodeCostMismatch, "paid %d food, cost is exactly %d", paid, p.Cost.Total())
	}

	limits := make(map[content.CardID]int, len(p.EggSources))
	for _, s := range p.EggSources {
		limits[s.Card] = s.Limit
	}
	eggs := 0
	for card, n := range c.Eggs {
		if n <= 0 {
			return invalid(CodeCostMismatch, "egg payment from %s must be positive", card)
		}
		limit, ok := limits[card]
		if !ok {
			return invalid(CodeNotEligible, "%s is not an eligible egg source", card)
		}
		if n > limit {
			return invalid(CodeInsufficientResources, "%s holds %d eggs, paying %d", card, limit, n)
		}
		eggs += n
	}
	if eggs != p.EggCost {
		return invalid(CodeCostMismatch, "paid %d eggs, cost is exactly %d", eggs, p.EggCost)
	}
	return nil
}

func validateCardSelect(p *CardSelectPrompt, c *CardSelectChoice) *ValidationError {
	if len(c.Cards) < p.Min || len(c.Cards) > p.Count {
		return invalid(CodeQuantityMismatch, "selected %d cards, want %d..%d", len(c.Cards), p.Min, p.Count)
	}
	if !multisetWithin(c.Cards, p.From) {
		return invalid(CodeNotEligible, "selected card not in eligible set")
	}
	return nil
}

func validateBirdTarget(p *BirdTargetPrompt, c *BirdTargetChoice) *ValidationError {
	if len(c.Birds) != p.Count {
		return invalid(CodeQuantityMismatch, "targeted %d birds, prompt asks %d", len(c.Birds), p.Count)
	}
	seen := make(map[content.CardID]bool, len(c.Birds))
	for _, b := range c.Birds {
		if seen[b] {
			return invalid(CodeNotEligible, "%s targeted twice", b)
		}
		seen[b] = true
	}
	if !multisetWithin(c.Birds, p.Eligible) {
		return invalid(CodeNotEligible, "targeted bird not eligible")
	}
	return nil
}
