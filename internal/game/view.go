package game

import "github.com/aviarylabs/aviary/internal/content"

// StateView is the read-only snapshot of visible state carried by every
// prompt. It contains only information the prompted player is entitled to
// see: hands appear as counts, never contents.
type StateView struct {
	Round    int
	Turn     int
	Active   PlayerID
	Feeder   []content.DieFace
	Tray     []content.CardID
	DeckSize int // drawable cards, reshuffle included
	Players  []PlayerView
}

// PlayerView is the public projection of one player's state.
type PlayerView struct {
	ID          PlayerID
	Name        string
	HandSize    int
	Food        map[content.FoodType]int
	ActionsLeft int
	Forfeited   bool
	Habitats    [content.NumHabitats][]BirdView
}

// BirdView is the public projection of a bird instance.
type BirdView struct {
	Card   content.CardID
	Eggs   int
	Tucked int
	Cached map[content.FoodType]int
}

func buildView(s *GameState) StateView {
	v := StateView{
		Round:    s.Round,
		Turn:     s.Turn,
		Active:   s.Active,
		Feeder:   s.Feeder.Faces(),
		Tray:     append([]content.CardID(nil), s.Tray...),
		DeckSize: s.Deck.Total(),
	}
	for _, p := range s.Players {
		pv := PlayerView{
			ID:          p.ID,
			Name:        p.Name,
			HandSize:    len(p.Hand),
			Food:        make(map[content.FoodType]int, len(p.Food)),
			ActionsLeft: p.ActionsLeft,
			Forfeited:   p.Forfeited,
		}
		for f, n := range p.Food {
			pv.Food[f] = n
		}
		for _, h := range content.Habitats() {
			for _, b := range p.Board.Birds(h) {
				bv := BirdView{
					Card:   b.Key.Card,
					Eggs:   b.Eggs,
					Tucked: b.Tucked,
					Cached: make(map[content.FoodType]int, len(b.Cached)),
				}
				for f, n := range b.Cached {
					bv.Cached[f] = n
				}
				pv.Habitats[h] = append(pv.Habitats[h], bv)
			}
		}
		v.Players = append(v.Players, pv)
	}
	return v
}
