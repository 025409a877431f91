// Package pool provides the deterministic resource pools the engine draws
// from: a reusable draw/discard deck and the shared dice pool ("feeder").
// All randomness flows through an injected *rand.Rand; nothing in this
// package touches ambient randomness.
package pool

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrExhausted is returned when a draw asks for more items than the active
// and discard piles hold together. This indicates a content-accounting bug,
// not a recoverable game condition.
var ErrExhausted = errors.New("pool: deck exhausted")

// Source is the draw-pile abstraction the engine depends on. Deck is the
// production implementation; FixedDeck pins exact contents for tests.
type Source[T any] interface {
	// Draw removes and returns n items, reshuffling the discard pile back
	// into the active pile first if needed.
	Draw(n int) ([]T, error)
	// Discard returns items to the discard pile.
	Discard(items ...T)
	// Len reports the active pile size.
	Len() int
	// DiscardLen reports the discard pile size.
	DiscardLen() int
	// Total reports active + discard.
	Total() int
}

// Deck is an active pile plus a discard pile. An item is always in exactly
// one of {active, discard, in use outside the deck}.
type Deck[T any] struct {
	active  []T
	discard []T
	rng     *rand.Rand
}

// NewDeck creates a shuffled deck from items using the provided RNG.
func NewDeck[T any](rng *rand.Rand, items []T) *Deck[T] {
	if rng == nil {
		panic("pool: rng is required")
	}
	d := &Deck[T]{
		active:  make([]T, len(items)),
		discard: make([]T, 0, len(items)),
		rng:     rng,
	}
	copy(d.active, items)
	d.shuffle()
	return d
}

func (d *Deck[T]) shuffle() {
	d.rng.Shuffle(len(d.active), func(i, j int) {
		d.active[i], d.active[j] = d.active[j], d.active[i]
	})
}

// Draw removes and returns the top n items. If the active pile holds fewer
// than n, the discard pile is first moved back in and the whole active pile
// reshuffled, atomically. Drawing more than the combined piles hold returns
// ErrExhausted.
func (d *Deck[T]) Draw(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("pool: draw count %d is negative", n)
	}
	if n > len(d.active) {
		if n > d.Total() {
			return nil, fmt.Errorf("%w: want %d, have %d", ErrExhausted, n, d.Total())
		}
		d.active = append(d.active, d.discard...)
		d.discard = d.discard[:0]
		d.shuffle()
	}
	out := make([]T, n)
	copy(out, d.active[:n])
	d.active = d.active[n:]
	return out, nil
}

// Discard returns items to the discard pile.
func (d *Deck[T]) Discard(items ...T) {
	d.discard = append(d.discard, items...)
}

// Len reports the active pile size.
func (d *Deck[T]) Len() int { return len(d.active) }

// DiscardLen reports the discard pile size.
func (d *Deck[T]) DiscardLen() int { return len(d.discard) }

// Total reports active + discard.
func (d *Deck[T]) Total() int { return len(d.active) + len(d.discard) }
