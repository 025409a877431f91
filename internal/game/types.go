package game

import (
	"fmt"

	"github.com/aviarylabs/aviary/internal/content"
)

// PlayerID is a seat index, 0-based, fixed for the whole game.
type PlayerID int

// BirdKey identifies a bird instance: a card id on a particular player's
// board. Unique per board because a player never holds two copies in play.
type BirdKey struct {
	Player PlayerID
	Card   content.CardID
}

func (k BirdKey) String() string {
	return fmt.Sprintf("p%d/%s", k.Player, k.Card)
}

// ActionType is one of the four base turn actions.
type ActionType uint8

const (
	ActionPlayBird ActionType = iota
	ActionGainFood
	ActionLayEggs
	ActionDrawCards
)

func (a ActionType) String() string {
	switch a {
	case ActionPlayBird:
		return "play_bird"
	case ActionGainFood:
		return "gain_food"
	case ActionLayEggs:
		return "lay_eggs"
	case ActionDrawCards:
		return "draw_cards"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// habitatFor maps a resource action to the habitat it activates.
func habitatFor(a ActionType) (content.Habitat, bool) {
	switch a {
	case ActionGainFood:
		return content.Forest, true
	case ActionLayEggs:
		return content.Grassland, true
	case ActionDrawCards:
		return content.Wetland, true
	}
	return 0, false
}

// Column reward tables, indexed by the column of the leftmost empty slot in
// the activated habitat (a full habitat uses the last column's reward).
// Odd columns additionally offer a bonus reward behind a cost.
var (
	foodReward = [SlotsPerHabitat]int{1, 1, 2, 2, 3}
	eggReward  = [SlotsPerHabitat]int{2, 2, 3, 3, 4}
	cardReward = [SlotsPerHabitat]int{1, 1, 2, 2, 3}

	// eggCostByColumn is the egg cost of playing a bird into the column.
	eggCostByColumn = [SlotsPerHabitat]int{0, 0, 1, 1, 2}
)

func bonusColumn(col int) bool { return col%2 == 1 }

// rewardColumn clamps the leftmost-empty column for reward lookup; a full
// habitat (leftmost empty -1) earns the final column's reward.
func rewardColumn(leftmostEmpty int) int {
	if leftmostEmpty < 0 {
		return SlotsPerHabitat - 1
	}
	return leftmostEmpty
}
