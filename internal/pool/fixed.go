package pool

import "fmt"

// FixedDeck is a Source that deals a preset sequence in order and never
// shuffles. Tests use it to pin exact draw contents.
type FixedDeck[T any] struct {
	active  []T
	discard []T
}

// NewFixedDeck creates a deck that deals items front to back.
func NewFixedDeck[T any](items []T) *FixedDeck[T] {
	d := &FixedDeck[T]{active: make([]T, len(items))}
	copy(d.active, items)
	return d
}

// Draw deals the next n items in sequence. When the active pile runs dry the
// discard pile is appended in discard order, preserving determinism.
func (d *FixedDeck[T]) Draw(n int) ([]T, error) {
	if n > len(d.active) {
		if n > d.Total() {
			return nil, fmt.Errorf("%w: want %d, have %d", ErrExhausted, n, d.Total())
		}
		d.active = append(d.active, d.discard...)
		d.discard = d.discard[:0]
	}
	out := make([]T, n)
	copy(out, d.active[:n])
	d.active = d.active[n:]
	return out, nil
}

// Discard returns items to the discard pile.
func (d *FixedDeck[T]) Discard(items ...T) {
	d.discard = append(d.discard, items...)
}

// Len reports the active pile size.
func (d *FixedDeck[T]) Len() int { return len(d.active) }

// DiscardLen reports the discard pile size.
func (d *FixedDeck[T]) DiscardLen() int { return len(d.discard) }

// Total reports active + discard.
func (d *FixedDeck[T]) Total() int { return len(d.active) + len(d.discard) }
