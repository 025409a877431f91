package game

import "github.com/aviarylabs/aviary/internal/content"

// Choice is an agent's answer to a prompt. It must carry the originating
// prompt's id and match its kind; anything else is a protocol violation.
type Choice interface {
	Kind() PromptKind
	PromptID() PromptID
}

// StartingHandChoice answers a StartingHandPrompt.
type StartingHandChoice struct {
	Prompt    PromptID
	KeepCards []content.CardID
	KeepFood  []content.FoodType
}

func (c *StartingHandChoice) Kind() PromptKind   { return PromptStartingHand }
func (c *StartingHandChoice) PromptID() PromptID { return c.Prompt }

// TurnActionChoice answers a TurnActionPrompt. Bird and Habitat are set only
// for ActionPlayBird.
type TurnActionChoice struct {
	Prompt  PromptID
	Action  ActionType
	Bird    content.CardID
	Habitat content.Habitat
}

func (c *TurnActionChoice) Kind() PromptKind   { return PromptTurnAction }
func (c *TurnActionChoice) PromptID() PromptID { return c.Prompt }

// PowerOfferChoice answers a PowerOfferPrompt. Declining is always valid and
// terminates the power without side effects.
type PowerOfferChoice struct {
	Prompt PromptID
	Accept bool
}

func (c *PowerOfferChoice) Kind() PromptKind   { return PromptPowerOffer }
func (c *PowerOfferChoice) PromptID() PromptID { return c.Prompt }

// DieTake is one die taken from the feeder and the food it yields. As must
// be a food type the face can yield (the dual face yields either of its two).
type DieTake struct {
	Face content.DieFace
	As   content.FoodType
}

// FoodSelectChoice answers a FoodSelectPrompt. When Reroll is set, Take must
// be empty: the feeder re-rolls and a fresh prompt follows.
type FoodSelectChoice struct {
	Prompt PromptID
	Reroll bool
	Take   []DieTake
}

func (c *FoodSelectChoice) Kind() PromptKind   { return PromptFoodSelect }
func (c *FoodSelectChoice) PromptID() PromptID { return c.Prompt }

// EggPlacementChoice answers an EggPlacementPrompt: eggs per own bird.
type EggPlacementChoice struct {
	Prompt     PromptID
	Placements map[content.CardID]int
}

func (c *EggPlacementChoice) Kind() PromptKind   { return PromptEggPlacement }
func (c *EggPlacementChoice) PromptID() PromptID { return c.Prompt }

// CardDrawChoice answers a CardDrawPrompt: named tray picks plus a count of
// blind deck draws. len(FromTray) + FromDeck must equal the prompt's Count.
type CardDrawChoice struct {
	Prompt   PromptID
	FromTray []content.CardID
	FromDeck int
}

func (c *CardDrawChoice) Kind() PromptKind   { return PromptCardDraw }
func (c *CardDrawChoice) PromptID() PromptID { return c.Prompt }

// PayCostChoice answers a PayCostPrompt: food paid by type (must equal the
// typed components plus exactly Wild extra) and eggs discarded per bird.
type PayCostChoice struct {
	Prompt PromptID
	Food   map[content.FoodType]int
	Eggs   map[content.CardID]int
}

func (c *PayCostChoice) Kind() PromptKind   { return PromptPayCost }
func (c *PayCostChoice) PromptID() PromptID { return c.Prompt }

// CardSelectChoice answers a CardSelectPrompt.
type CardSelectChoice struct {
	Prompt PromptID
	Cards  []content.CardID
}

func (c *CardSelectChoice) Kind() PromptKind   { return PromptCardSelect }
func (c *CardSelectChoice) PromptID() PromptID { return c.Prompt }

// BirdTargetChoice answers a BirdTargetPrompt.
type BirdTargetChoice struct {
	Prompt PromptID
	Birds  []content.CardID
}

func (c *BirdTargetChoice) Kind() PromptKind   { return PromptBirdTarget }
func (c *BirdTargetChoice) PromptID() PromptID { return c.Prompt }
