package game

import "github.com/aviarylabs/aviary/internal/content"

// PromptID is unique per prompt within one game, assigned sequentially so
// replays produce identical ids.
type PromptID uint64

// PromptKind discriminates the closed set of decision-request shapes. Each
// kind has exactly one matching Choice shape.
type PromptKind uint8

const (
	PromptStartingHand PromptKind = iota + 1
	PromptTurnAction
	PromptPowerOffer
	PromptFoodSelect
	PromptEggPlacement
	PromptCardDraw
	PromptPayCost
	PromptCardSelect
	PromptBirdTarget
)

func (k PromptKind) String() string {
	switch k {
	case PromptStartingHand:
		return "starting_hand"
	case PromptTurnAction:
		return "turn_action"
	case PromptPowerOffer:
		return "power_offer"
	case PromptFoodSelect:
		return "food_select"
	case PromptEggPlacement:
		return "egg_placement"
	case PromptCardDraw:
		return "card_draw"
	case PromptPayCost:
		return "pay_cost"
	case PromptCardSelect:
		return "card_select"
	case PromptBirdTarget:
		return "bird_target"
	}
	return "unknown"
}

// Origin describes what triggered a prompt: the base action under
// resolution and, for power sub-choices, the bird whose power is asking.
type Origin struct {
	Action  ActionType
	Power   content.CardID // zero when the base action itself is asking
	Trigger content.PowerTrigger
}

// PromptMeta is carried by every prompt: unique id, the player being asked,
// a read-only view of visible state, and the triggering context.
type PromptMeta struct {
	ID     PromptID
	Player PlayerID
	Origin Origin
	View   StateView
}

// Prompt is one decision request. A prompt is consumed exactly once: the
// engine issues it, awaits the matching Choice, validates, and discards it.
type Prompt interface {
	Kind() PromptKind
	Meta() PromptMeta
}

// StartingHandPrompt asks a player to keep cards and food summing to Budget:
// keeping k of Cards means keeping Budget-k food tokens of free choice.
type StartingHandPrompt struct {
	PromptMeta
	Cards  []content.CardID
	Budget int
}

func (p *StartingHandPrompt) Kind() PromptKind { return PromptStartingHand }
func (p *StartingHandPrompt) Meta() PromptMeta { return p.PromptMeta }

// PlayableBird enumerates a playable hand card and its legal habitats,
// given current food, eggs, and board space.
type PlayableBird struct {
	Card     content.CardID
	Habitats []content.Habitat
}

// TurnActionPrompt asks the active player for one base action.
type TurnActionPrompt struct {
	PromptMeta
	Actions  []ActionType
	Playable []PlayableBird // non-empty iff ActionPlayBird is in Actions
}

func (p *TurnActionPrompt) Kind() PromptKind { return PromptTurnAction }
func (p *TurnActionPrompt) Meta() PromptMeta { return p.PromptMeta }

// PowerOfferPrompt asks accept/decline for an optional power, or for a base
// action's bonus reward/cost pair (Bird is zero for action bonuses).
type PowerOfferPrompt struct {
	PromptMeta
	Bird  BirdKey
	Power content.PowerSpec
}

func (p *PowerOfferPrompt) Kind() PromptKind { return PromptPowerOffer }
func (p *PowerOfferPrompt) Meta() PromptMeta { return p.PromptMeta }

// FoodSelectPrompt asks the player to take exactly Count dice from the
// feeder. Reroll is legal only when every remaining die shows one face.
type FoodSelectPrompt struct {
	PromptMeta
	Dice          []content.DieFace
	Count         int
	RerollAllowed bool
}

func (p *FoodSelectPrompt) Kind() PromptKind { return PromptFoodSelect }
func (p *FoodSelectPrompt) Meta() PromptMeta { return p.PromptMeta }

// EggSlot is a bird eligible to receive (or give up) eggs.
type EggSlot struct {
	Card  content.CardID
	Limit int // remaining capacity, or current egg count for discards
}

// EggPlacementPrompt asks the player to distribute exactly Count eggs over
// the eligible birds.
type EggPlacementPrompt struct {
	PromptMeta
	Count    int
	Eligible []EggSlot
}

func (p *EggPlacementPrompt) Kind() PromptKind { return PromptEggPlacement }
func (p *EggPlacementPrompt) Meta() PromptMeta { return p.PromptMeta }

// CardDrawPrompt asks the player to split Count draws between the face-up
// tray and the deck.
type CardDrawPrompt struct {
	PromptMeta
	Count    int
	Tray     []content.CardID
	DeckSize int
}

func (p *CardDrawPrompt) Kind() PromptKind { return PromptCardDraw }
func (p *CardDrawPrompt) Meta() PromptMeta { return p.PromptMeta }

// PayCostPrompt asks the player to pay an exact cost: the typed food
// components plus Wild tokens of free choice, plus EggCost eggs taken from
// the eligible sources.
type PayCostPrompt struct {
	PromptMeta
	Cost       content.FoodCost
	EggCost    int
	EggSources []EggSlot
}

func (p *PayCostPrompt) Kind() PromptKind { return PromptPayCost }
func (p *PayCostPrompt) Meta() PromptMeta { return p.PromptMeta }

// SelectPurpose says what happens to cards picked in a CardSelectPrompt.
type SelectPurpose uint8

const (
	SelectDiscard SelectPurpose = iota
	SelectTuck
	SelectKeep
)

func (s SelectPurpose) String() string {
	switch s {
	case SelectDiscard:
		return "discard"
	case SelectTuck:
		return "tuck"
	case SelectKeep:
		return "keep"
	}
	return "unknown"
}

// CardSelectPrompt asks the player to pick between Min and Count cards from
// the eligible set, for the stated purpose.
type CardSelectPrompt struct {
	PromptMeta
	Min     int
	Count   int
	From    []content.CardID
	Purpose SelectPurpose
}

func (p *CardSelectPrompt) Kind() PromptKind { return PromptCardSelect }
func (p *CardSelectPrompt) Meta() PromptMeta { return p.PromptMeta }

// TargetPurpose says what happens to birds picked in a BirdTargetPrompt.
type TargetPurpose uint8

const (
	TargetLayEgg TargetPurpose = iota
	TargetDiscardEgg
	TargetRepeatPower
)

func (t TargetPurpose) String() string {
	switch t {
	case TargetLayEgg:
		return "lay_egg"
	case TargetDiscardEgg:
		return "discard_egg"
	case TargetRepeatPower:
		return "repeat_power"
	}
	return "unknown"
}

// BirdTargetPrompt asks the player to pick exactly Count of their own birds
// from the eligible set.
type BirdTargetPrompt struct {
	PromptMeta
	Count    int
	Eligible []content.CardID
	Purpose  TargetPurpose
}

func (p *BirdTargetPrompt) Kind() PromptKind { return PromptBirdTarget }
func (p *BirdTargetPrompt) Meta() PromptMeta { return p.PromptMeta }
