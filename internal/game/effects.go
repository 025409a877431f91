package game

import "github.com/aviarylabs/aviary/internal/content"

// EffectType discriminates the closed set of state-mutation records.
type EffectType string

const (
	EffectTypeFoodGained      EffectType = "food_gained"
	EffectTypeFoodSpent       EffectType = "food_spent"
	EffectTypeFoodCached      EffectType = "food_cached"
	EffectTypeEggsLaid        EffectType = "eggs_laid"
	EffectTypeEggsDiscarded   EffectType = "eggs_discarded"
	EffectTypeDieTaken        EffectType = "die_taken"
	EffectTypeFeederRefilled  EffectType = "feeder_refilled"
	EffectTypeCardsDrawn      EffectType = "cards_drawn"
	EffectTypeCardDiscarded   EffectType = "card_discarded"
	EffectTypeCardTucked      EffectType = "card_tucked"
	EffectTypeTrayRefilled    EffectType = "tray_refilled"
	EffectTypeCardRevealed    EffectType = "card_revealed"
	EffectTypeBirdPlayed      EffectType = "bird_played"
	EffectTypeBonusGained     EffectType = "bonus_gained"
	EffectTypeActionSpent     EffectType = "action_spent"
	EffectTypePowerSkipped    EffectType = "power_skipped"
	EffectTypePlayerForfeited EffectType = "player_forfeited"
)

// Effect is an atomic state-mutation record. Effects are the only sanctioned
// path to mutate GameState; the engine applies each one through a single
// switch in state.go and appends it to the effect log.
type Effect interface {
	EffectType() EffectType
}

// FoodGainedEffect adds food tokens to a player's supply. FromFeeder marks
// tokens converted from a taken die rather than the general supply.
type FoodGainedEffect struct {
	Player     PlayerID
	Food       content.FoodType
	Count      int
	FromFeeder bool
}

func (FoodGainedEffect) EffectType() EffectType { return EffectTypeFoodGained }

// FoodSpentEffect removes food tokens from a player's supply.
type FoodSpentEffect struct {
	Player PlayerID
	Food   content.FoodType
	Count  int
}

func (FoodSpentEffect) EffectType() EffectType { return EffectTypeFoodSpent }

// FoodCachedEffect stores food tokens directly on a bird instance.
type FoodCachedEffect struct {
	Bird  BirdKey
	Food  content.FoodType
	Count int
}

func (FoodCachedEffect) EffectType() EffectType { return EffectTypeFoodCached }

// EggsLaidEffect places eggs on a bird, bounded by its egg capacity.
type EggsLaidEffect struct {
	Bird  BirdKey
	Count int
}

func (EggsLaidEffect) EffectType() EffectType { return EffectTypeEggsLaid }

// EggsDiscardedEffect removes eggs from a bird.
type EggsDiscardedEffect struct {
	Bird  BirdKey
	Count int
}

func (EggsDiscardedEffect) EffectType() EffectType { return EffectTypeEggsDiscarded }

// DieTakenEffect records a die leaving the feeder. The feeder has already
// surrendered the die when this is applied; the record keeps the effect log
// complete for replay comparison.
type DieTakenEffect struct {
	Player PlayerID
	Face   content.DieFace
}

func (DieTakenEffect) EffectType() EffectType { return EffectTypeDieTaken }

// FeederRefilledEffect records a full re-roll of the feeder.
type FeederRefilledEffect struct {
	Faces []content.DieFace
}

func (FeederRefilledEffect) EffectType() EffectType { return EffectTypeFeederRefilled }

// CardsDrawnEffect appends drawn cards to a player's hand. FromTray marks
// face-up tray picks; otherwise the cards came off the top of the deck.
type CardsDrawnEffect struct {
	Player   PlayerID
	Cards    []content.CardID
	FromTray bool
}

func (CardsDrawnEffect) EffectType() EffectType { return EffectTypeCardsDrawn }

// CardDiscardedEffect moves a card from a player's hand to the deck discard.
type CardDiscardedEffect struct {
	Player PlayerID
	Card   content.CardID
}

func (CardDiscardedEffect) EffectType() EffectType { return EffectTypeCardDiscarded }

// CardTuckedEffect tucks a card face-down under a bird as a scoring token.
// FromHand marks hand tucks; otherwise the card came off the deck.
type CardTuckedEffect struct {
	Bird     BirdKey
	Card     content.CardID
	FromHand bool
}

func (CardTuckedEffect) EffectType() EffectType { return EffectTypeCardTucked }

// CardRevealedEffect records a predator power revealing the top deck card.
// The reveal itself is a deck transition; Kept marks whether a tuck or draw
// effect follows, otherwise the card went to the deck discard.
type CardRevealedEffect struct {
	Player PlayerID
	Card   content.CardID
	Kept   bool
}

func (CardRevealedEffect) EffectType() EffectType { return EffectTypeCardRevealed }

// TrayRefilledEffect adds cards to the face-up tray.
type TrayRefilledEffect struct {
	Cards []content.CardID
}

func (TrayRefilledEffect) EffectType() EffectType { return EffectTypeTrayRefilled }

// BirdPlayedEffect moves a card from hand onto the board.
type BirdPlayedEffect struct {
	Player  PlayerID
	Card    content.CardID
	Habitat content.Habitat
	Column  int
}

func (BirdPlayedEffect) EffectType() EffectType { return EffectTypeBirdPlayed }

// BonusGainedEffect adds a bonus card to a player's set.
type BonusGainedEffect struct {
	Player PlayerID
	Card   content.CardID
}

func (BonusGainedEffect) EffectType() EffectType { return EffectTypeBonusGained }

// ActionSpentEffect decrements a player's remaining-actions counter.
type ActionSpentEffect struct {
	Player PlayerID
}

func (ActionSpentEffect) EffectType() EffectType { return EffectTypeActionSpent }

// SkipReason explains why a power self-skipped without prompting.
type SkipReason string

const (
	// SkipResourceUnavailable marks a power that could not change any
	// resource under current state.
	SkipResourceUnavailable SkipReason = "resource_unavailable"
)

// PowerSkippedEffect records a power that self-skipped. It mutates nothing
// but is a recorded effect, distinguishable from a declined power.
type PowerSkippedEffect struct {
	Bird   BirdKey
	Reason SkipReason
}

func (PowerSkippedEffect) EffectType() EffectType { return EffectTypePowerSkipped }

// PlayerForfeitedEffect marks a player forfeited after exhausting the retry
// budget. The player is skipped for the remainder of the game.
type PlayerForfeitedEffect struct {
	Player PlayerID
}

func (PlayerForfeitedEffect) EffectType() EffectType { return EffectTypePlayerForfeited }
