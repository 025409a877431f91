package game

import (
	"fmt"

	"github.com/aviarylabs/aviary/internal/content"
)

// SlotsPerHabitat is the fixed width of each habitat column.
const SlotsPerHabitat = 5

// BirdInstance is a runtime placement of a bird card, with its own eggs,
// cached food, and tucked cards. Egg count never exceeds the card's capacity.
type BirdInstance struct {
	Key    BirdKey
	Card   content.BirdCard
	Eggs   int
	Cached map[content.FoodType]int
	Tucked int
}

// EggSpace reports how many more eggs the bird can hold.
func (b *BirdInstance) EggSpace() int {
	return b.Card.EggCapacity - b.Eggs
}

// CachedTotal reports the number of food tokens cached on the bird.
func (b *BirdInstance) CachedTotal() int {
	n := 0
	for _, v := range b.Cached {
		n += v
	}
	return n
}

// Board is a player's three fixed-width habitat columns. Birds always occupy
// the leftmost contiguous slots of their habitat; there are never gaps.
type Board struct {
	slots [content.NumHabitats][SlotsPerHabitat]*BirdInstance
}

// NewBoard returns an empty board.
func NewBoard() *Board { return &Board{} }

// LeftmostEmpty returns the column index of the leftmost empty slot in the
// habitat, or -1 when the habitat is full.
func (b *Board) LeftmostEmpty(h content.Habitat) int {
	for i, s := range b.slots[h] {
		if s == nil {
			return i
		}
	}
	return -1
}

// Place puts a bird into the leftmost empty slot of the habitat and returns
// the column it landed in.
func (b *Board) Place(h content.Habitat, bird *BirdInstance) (int, error) {
	col := b.LeftmostEmpty(h)
	if col < 0 {
		return 0, fmt.Errorf("game: habitat %s is full", h)
	}
	b.slots[h][col] = bird
	return col, nil
}

// Birds returns the occupied slots of a habitat, left to right.
func (b *Board) Birds(h content.Habitat) []*BirdInstance {
	var out []*BirdInstance
	for _, s := range b.slots[h] {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// All returns every bird on the board, habitat by habitat, left to right.
func (b *Board) All() []*BirdInstance {
	var out []*BirdInstance
	for _, h := range content.Habitats() {
		out = append(out, b.Birds(h)...)
	}
	return out
}

// Find returns the bird instance for a card id, or nil.
func (b *Board) Find(id content.CardID) *BirdInstance {
	for _, bird := range b.All() {
		if bird.Key.Card == id {
			return bird
		}
	}
	return nil
}

// Count reports how many birds occupy the habitat.
func (b *Board) Count(h content.Habitat) int {
	return len(b.Birds(h))
}

// EggSpaceTotal reports the remaining egg capacity across the whole board.
func (b *Board) EggSpaceTotal() int {
	n := 0
	for _, bird := range b.All() {
		n += bird.EggSpace()
	}
	return n
}
