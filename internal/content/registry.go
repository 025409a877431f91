package content

import (
	"errors"
	"fmt"
)

// ErrUnknownCard is returned when a lookup misses. The engine treats this as
// a fatal data-integrity error, never a legal game state.
var ErrUnknownCard = errors.New("content: unknown card id")

// Registry is the read-only lookup surface the engine consumes. Definitions
// are immutable; implementations must never mutate a returned card.
type Registry interface {
	Bird(id CardID) (BirdCard, error)
	Bonus(id CardID) (BonusCard, error)
	BirdIDs() []CardID
	BonusIDs() []CardID
}

// MapRegistry is a Registry backed by plain maps, constructed once at
// process setup and passed by reference into the engine.
type MapRegistry struct {
	birds    map[CardID]BirdCard
	bonuses  map[CardID]BonusCard
	birdIDs  []CardID
	bonusIDs []CardID
}

// NewRegistry builds a MapRegistry from card definitions. Duplicate ids are
// a configuration error.
func NewRegistry(birds []BirdCard, bonuses []BonusCard) (*MapRegistry, error) {
	r := &MapRegistry{
		birds:   make(map[CardID]BirdCard, len(birds)),
		bonuses: make(map[CardID]BonusCard, len(bonuses)),
	}
	for _, b := range birds {
		if _, dup := r.birds[b.ID]; dup {
			return nil, fmt.Errorf("content: duplicate bird id %q", b.ID)
		}
		r.birds[b.ID] = b
		r.birdIDs = append(r.birdIDs, b.ID)
	}
	for _, b := range bonuses {
		if _, dup := r.bonuses[b.ID]; dup {
			return nil, fmt.Errorf("content: duplicate bonus id %q", b.ID)
		}
		r.bonuses[b.ID] = b
		r.bonusIDs = append(r.bonusIDs, b.ID)
	}
	return r, nil
}

// Bird looks up a bird definition by id.
func (r *MapRegistry) Bird(id CardID) (BirdCard, error) {
	b, ok := r.birds[id]
	if !ok {
		return BirdCard{}, fmt.Errorf("%w: bird %q", ErrUnknownCard, id)
	}
	return b, nil
}

// Bonus looks up a bonus definition by id.
func (r *MapRegistry) Bonus(id CardID) (BonusCard, error) {
	b, ok := r.bonuses[id]
	if !ok {
		return BonusCard{}, fmt.Errorf("%w: bonus %q", ErrUnknownCard, id)
	}
	return b, nil
}

// BirdIDs returns every bird id in registration order.
func (r *MapRegistry) BirdIDs() []CardID {
	out := make([]CardID, len(r.birdIDs))
	copy(out, r.birdIDs)
	return out
}

// BonusIDs returns every bonus id in registration order.
func (r *MapRegistry) BonusIDs() []CardID {
	out := make([]CardID, len(r.bonusIDs))
	copy(out, r.bonusIDs)
	return out
}
