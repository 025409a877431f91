package pool

import "fmt"

// FeederCapacity is the number of dice in a full feeder.
const FeederCapacity = 5

// Feeder is the shared dice pool. Taking dice removes them without
// re-rolling; the pool refills to capacity only when it empties, or when the
// engine grants the all-same-face opt-in just before a gain-food selection.
// F is the die-face type; a "dual" face compares as its own distinct value.
type Feeder[F comparable] struct {
	dice []F
	roll func() F
}

// NewFeeder creates a feeder rolled to full capacity using roll, which must
// derive each face from the game's deterministic random source.
func NewFeeder[F comparable](roll func() F) *Feeder[F] {
	if roll == nil {
		panic("pool: roll func is required")
	}
	f := &Feeder[F]{
		dice: make([]F, 0, FeederCapacity),
		roll: roll,
	}
	f.Refill()
	return f
}

// Take removes a single die showing face. Selecting a die never re-rolls it.
func (f *Feeder[F]) Take(face F) error {
	for i, d := range f.dice {
		if d == face {
			f.dice = append(f.dice[:i], f.dice[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("pool: no die showing %v in feeder", face)
}

// Faces returns a copy of the dice currently in the feeder.
func (f *Feeder[F]) Faces() []F {
	out := make([]F, len(f.dice))
	copy(out, f.dice)
	return out
}

// Len reports how many dice remain.
func (f *Feeder[F]) Len() int { return len(f.dice) }

// Empty reports whether the feeder holds no dice.
func (f *Feeder[F]) Empty() bool { return len(f.dice) == 0 }

// AllSame reports whether every remaining die shows one identical face. A
// dual face counts as its own face, not as either face it stands in for.
func (f *Feeder[F]) AllSame() bool {
	if len(f.dice) == 0 {
		return false
	}
	first := f.dice[0]
	for _, d := range f.dice[1:] {
		if d != first {
			return false
		}
	}
	return true
}

// Refill re-rolls every die and restores the feeder to full capacity.
func (f *Feeder[F]) Refill() {
	f.dice = f.dice[:0]
	for range FeederCapacity {
		f.dice = append(f.dice, f.roll())
	}
}

// ResetIfEmpty refills the feeder when it has emptied, per the reset law.
// It reports whether a refill happened.
func (f *Feeder[F]) ResetIfEmpty() bool {
	if !f.Empty() {
		return false
	}
	f.Refill()
	return true
}
