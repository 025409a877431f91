package game

import "github.com/aviarylabs/aviary/internal/content"

// PlayerState holds everything one player owns: hand, bonus cards, food
// supply, board, and the remaining-actions counter. The board and hand are
// owned exclusively here; nothing else keeps a competing reference.
type PlayerState struct {
	ID          PlayerID
	Name        string
	Hand        []content.CardID
	Bonus       []content.CardID
	Food        map[content.FoodType]int
	Board       *Board
	ActionsLeft int
	Forfeited   bool
}

func newPlayerState(id PlayerID, name string) *PlayerState {
	return &PlayerState{
		ID:    id,
		Name:  name,
		Food:  make(map[content.FoodType]int),
		Board: NewBoard(),
	}
}

// FoodTotal reports the number of food tokens in the player's supply.
func (p *PlayerState) FoodTotal() int {
	n := 0
	for _, v := range p.Food {
		n += v
	}
	return n
}

// removeCard removes one copy of id from the hand, reporting success.
func (p *PlayerState) removeCard(id content.CardID) bool {
	for i, c := range p.Hand {
		if c == id {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// CanAfford reports whether the supply covers a food cost, counting wild
// slots against whatever remains after the typed components.
func (p *PlayerState) CanAfford(cost content.FoodCost) bool {
	spare := 0
	for _, f := range content.FoodTypes() {
		have := p.Food[f]
		need := cost.Typed[f]
		if have < need {
			return false
		}
		spare += have - need
	}
	return spare >= cost.Wild
}

// EggTotal reports the number of eggs across the player's board.
func (p *PlayerState) EggTotal() int {
	n := 0
	for _, b := range p.Board.All() {
		n += b.Eggs
	}
	return n
}
