package content

import "fmt"

// PowerTrigger categorises when a bird power fires.
type PowerTrigger uint8

const (
	// TriggerBrown fires when the bird's habitat is activated by a base
	// action, right-to-left across the habitat.
	TriggerBrown PowerTrigger = iota
	// TriggerWhite fires once, immediately when the bird is played.
	TriggerWhite
	// TriggerPink fires once between the holder's turns, in reaction to a
	// qualifying event raised by another player's action.
	TriggerPink
)

func (t PowerTrigger) String() string {
	switch t {
	case TriggerBrown:
		return "brown"
	case TriggerWhite:
		return "white"
	case TriggerPink:
		return "pink"
	}
	return fmt.Sprintf("trigger(%d)", uint8(t))
}

// PowerKind selects the handler that resolves a power. The set is closed;
// dispatch switches exhaustively over it.
type PowerKind uint8

const (
	PowerNone PowerKind = iota

	// Food gain and caching.
	PowerGainFood              // gain Count food of Food from the supply
	PowerGainFoodChoice        // gain Count food of the player's choice from the supply
	PowerGainFoodFromFeeder    // take up to Count dice yielding Food from the feeder
	PowerGainAllOfFaceInFeeder // take every die showing Food's face
	PowerGainFoodPerBirdIn     // gain 1 Food per bird in Habitat on own board, max Count
	PowerCacheFood             // cache Count Food from the supply on this bird
	PowerCacheFoodFromFeeder   // take a die yielding Food and cache it here
	PowerAllPlayersGainFood    // every player gains 1 Food from the supply
	PowerOpponentsGainFood     // every other player gains 1 Food from the supply

	// Egg laying and discarding.
	PowerLayEggsSelf         // lay Count eggs on this bird
	PowerLayEggsAnyBirds     // lay Count eggs on any of the player's birds
	PowerLayEggOnNestType    // lay 1 egg on each of up to Count own birds with Nest
	PowerLayEggEachInHabitat // lay 1 egg on each own bird in Habitat
	PowerAllPlayersLayEgg    // every player lays 1 egg on a bird of their choice
	PowerDiscardEggToDraw    // discard 1 egg from an own bird to draw Count cards
	PowerDiscardEggToGain    // discard 1 egg from an own bird to gain Count Food

	// Card drawing, tucking, discarding.
	PowerDrawCards          // draw Count cards (deck or tray)
	PowerDrawFromTray       // draw Count cards from the face-up tray only
	PowerAllPlayersDraw     // every player draws 1 card
	PowerTuckFromHand       // tuck up to Count cards from hand under this bird
	PowerTuckFromDeck       // tuck the top Count deck cards under this bird
	PowerTuckThenDraw       // tuck 1 from hand, then draw 1
	PowerTuckThenLayEgg     // tuck 1 from hand, then lay 1 egg on this bird
	PowerDiscardCardToGain  // discard a card from hand to gain Count Food
	PowerDiscardFoodToTuck  // pay 1 Food to tuck the top Count deck cards here
	PowerDrawIfNestBirds    // if the board holds >= Threshold birds with Nest, draw Count

	// Dice-roll hunting and fishing.
	PowerRollDiceCache // roll Count dice outside the feeder; cache 1 Food per matching face
	PowerRollDiceGain  // roll Count dice outside the feeder; gain 1 Food per matching face

	// Predation by wingspan comparison.
	PowerPredatorTuck // reveal the top deck card; tuck it here if wingspan < Threshold, else discard
	PowerPredatorKeep // reveal the top deck card; take it into hand if wingspan < Threshold, else discard

	// Meta.
	PowerRepeatBrown // repeat another brown power in the activated habitat

	// Pink ("once between turns") reactions.
	PowerPinkGainFoodOnGain // when another player gains Food, gain 1 Food from the supply
	PowerPinkCacheOnGain    // when another player gains Food, cache 1 Food here
	PowerPinkLayEggOnLay    // when another player lays eggs, lay 1 egg on this bird
	PowerPinkTuckOnPlay     // when another player plays a bird into Habitat, tuck from deck
	PowerPinkGainOnPlay     // when another player plays a bird costing Food, gain 1 Food
	PowerPinkTuckOnDraw     // when another player draws cards, tuck the top deck card here

	numPowerKinds
)

// PowerSpec is the immutable definition of a bird power. Field meaning
// depends on Kind; unused fields are zero.
type PowerSpec struct {
	Kind      PowerKind
	Trigger   PowerTrigger
	Food      FoodType
	Count     int
	Nest      NestType
	Habitat   Habitat
	Threshold int // wingspan cm or bird-count threshold, per Kind
}

// IsPink reports whether the spec reacts to other players' events.
func (s *PowerSpec) IsPink() bool { return s != nil && s.Trigger == TriggerPink }

// ReactsTo reports whether a pink power kind reacts to the given event
// class. Event classes are the engine's semantic event names; content keeps
// the mapping here so the closed power set and its triggers stay together.
func (s *PowerSpec) ReactsTo(class ReactionClass) bool {
	if !s.IsPink() {
		return false
	}
	switch s.Kind {
	case PowerPinkGainFoodOnGain, PowerPinkCacheOnGain:
		return class == ReactFoodGained
	case PowerPinkLayEggOnLay:
		return class == ReactEggsLaid
	case PowerPinkTuckOnPlay, PowerPinkGainOnPlay:
		return class == ReactBirdPlayed
	case PowerPinkTuckOnDraw:
		return class == ReactCardsDrawn
	}
	return false
}

// ReactionClass names the semantic event classes pink powers can react to.
type ReactionClass uint8

const (
	ReactFoodGained ReactionClass = iota
	ReactEggsLaid
	ReactBirdPlayed
	ReactCardsDrawn
)
