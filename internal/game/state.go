package game

import (
	"fmt"

	"github.com/aviarylabs/aviary/internal/content"
	"github.com/aviarylabs/aviary/internal/pool"
)

// GameState is the root aggregate: players in seat order, the active player,
// round/turn counters, and the shared resource pools. It is owned exclusively
// by the engine; all mutation happens through apply.
type GameState struct {
	Players []*PlayerState
	Active  PlayerID
	Round   int // 1-based
	Turn    int // total turns taken across the game

	Deck   pool.Source[content.CardID]
	Bonus  pool.Source[content.CardID]
	Tray   []content.CardID
	Feeder *pool.Feeder[content.DieFace]
}

// Player returns the state for a seat.
func (s *GameState) Player(id PlayerID) *PlayerState {
	return s.Players[int(id)]
}

// bird resolves a BirdKey to its instance.
func (s *GameState) bird(k BirdKey) (*BirdInstance, error) {
	b := s.Player(k.Player).Board.Find(k.Card)
	if b == nil {
		return nil, fmt.Errorf("game: no bird %s on board", k)
	}
	return b, nil
}

// removeFromTray removes one copy of id from the face-up tray.
func (s *GameState) removeFromTray(id content.CardID) bool {
	for i, c := range s.Tray {
		if c == id {
			s.Tray = append(s.Tray[:i], s.Tray[i+1:]...)
			return true
		}
	}
	return false
}

// apply is the single mutation path for GameState. The registry resolves
// card definitions for placements. Violating a state invariant here is a
// programming bug, reported as an error rather than silently clamped.
func (s *GameState) apply(e Effect, reg content.Registry) error {
	switch ef := e.(type) {
	case FoodGainedEffect:
		s.Player(ef.Player).Food[ef.Food] += ef.Count

	case FoodSpentEffect:
		p := s.Player(ef.Player)
		if p.Food[ef.Food] < ef.Count {
			return fmt.Errorf("game: player %d overspends %s", ef.Player, ef.Food)
		}
		p.Food[ef.Food] -= ef.Count

	case FoodCachedEffect:
		b, err := s.bird(ef.Bird)
		if err != nil {
			return err
		}
		if b.Cached == nil {
			b.Cached = make(map[content.FoodType]int)
		}
		b.Cached[ef.Food] += ef.Count

	case EggsLaidEffect:
		b, err := s.bird(ef.Bird)
		if err != nil {
			return err
		}
		if b.Eggs+ef.Count > b.Card.EggCapacity {
			return fmt.Errorf("game: %s exceeds egg capacity %d", ef.Bird, b.Card.EggCapacity)
		}
		b.Eggs += ef.Count

	case EggsDiscardedEffect:
		b, err := s.bird(ef.Bird)
		if err != nil {
			return err
		}
		if b.Eggs < ef.Count {
			return fmt.Errorf("game: %s has %d eggs, discarding %d", ef.Bird, b.Eggs, ef.Count)
		}
		b.Eggs -= ef.Count

	case DieTakenEffect, FeederRefilledEffect, CardRevealedEffect:
		// Pool transitions are performed by the dispatch layer through the
		// feeder itself; the effect is recorded for the log only.

	case CardsDrawnEffect:
		p := s.Player(ef.Player)
		if ef.FromTray {
			for _, c := range ef.Cards {
				if !s.removeFromTray(c) {
					return fmt.Errorf("game: card %s not in tray", c)
				}
			}
		}
		p.Hand = append(p.Hand, ef.Cards...)

	case CardDiscardedEffect:
		p := s.Player(ef.Player)
		if !p.removeCard(ef.Card) {
			return fmt.Errorf("game: player %d does not hold %s", ef.Player, ef.Card)
		}
		s.Deck.Discard(ef.Card)

	case CardTuckedEffect:
		b, err := s.bird(ef.Bird)
		if err != nil {
			return err
		}
		if ef.FromHand {
			p := s.Player(ef.Bird.Player)
			if !p.removeCard(ef.Card) {
				return fmt.Errorf("game: player %d does not hold %s", ef.Bird.Player, ef.Card)
			}
		}
		b.Tucked++

	case TrayRefilledEffect:
		s.Tray = append(s.Tray, ef.Cards...)

	case BirdPlayedEffect:
		p := s.Player(ef.Player)
		card, err := reg.Bird(ef.Card)
		if err != nil {
			return err
		}
		if !p.removeCard(ef.Card) {
			return fmt.Errorf("game: player %d does not hold %s", ef.Player, ef.Card)
		}
		bird := &BirdInstance{
			Key:  BirdKey{Player: ef.Player, Card: ef.Card},
			Card: card,
		}
		col, err := p.Board.Place(ef.Habitat, bird)
		if err != nil {
			return err
		}
		if col != ef.Column {
			return fmt.Errorf("game: %s landed in column %d, effect says %d", ef.Card, col, ef.Column)
		}

	case BonusGainedEffect:
		p := s.Player(ef.Player)
		p.Bonus = append(p.Bonus, ef.Card)

	case ActionSpentEffect:
		p := s.Player(ef.Player)
		if p.ActionsLeft <= 0 {
			return fmt.Errorf("game: player %d has no actions left", ef.Player)
		}
		p.ActionsLeft--

	case PowerSkippedEffect:
		// Recorded only; a skip mutates nothing.

	case PlayerForfeitedEffect:
		s.Player(ef.Player).Forfeited = true

	default:
		return fmt.Errorf("game: unknown effect %T", e)
	}
	return nil
}
