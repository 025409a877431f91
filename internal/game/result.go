package game

import "github.com/aviarylabs/aviary/internal/content"

// PlayerScore is one player's final score, broken down by source.
type PlayerScore struct {
	Player PlayerID
	Name   string

	Birds  int // printed points of birds on the board
	Eggs   int // one point per egg
	Cached int // one point per cached food token
	Tucked int // one point per tucked card
	Bonus  int // bonus card awards

	Total     int
	Forfeited bool
}

// GameResult is the outcome of a completed game.
type GameResult struct {
	Winner PlayerID
	Scores []PlayerScore
	Rounds int
	Turns  int
}

// score tallies every player's board and picks the winner. Ties break by
// unused food tokens, then by seat order. Forfeited players keep their
// scores but never win.
func (e *Engine) score() *GameResult {
	result := &GameResult{
		Rounds: e.st.Round,
		Turns:  e.turnsTaken,
	}
	for _, p := range e.st.Players {
		sc := PlayerScore{Player: p.ID, Name: p.Name, Forfeited: p.Forfeited}
		for _, b := range p.Board.All() {
			sc.Birds += b.Card.Points
			sc.Eggs += b.Eggs
			sc.Cached += b.CachedTotal()
			sc.Tucked += b.Tucked
		}
		for _, id := range p.Bonus {
			sc.Bonus += e.bonusScore(p, id)
		}
		sc.Total = sc.Birds + sc.Eggs + sc.Cached + sc.Tucked + sc.Bonus
		result.Scores = append(result.Scores, sc)
	}

	winner := -1
	for i, sc := range result.Scores {
		if sc.Forfeited {
			continue
		}
		if winner < 0 || e.beats(sc, result.Scores[winner]) {
			winner = i
		}
	}
	if winner < 0 {
		winner = 0 // everyone forfeited; seat order decides
	}
	result.Winner = PlayerID(winner)
	return result
}

// beats reports whether a strictly outranks b: higher total, then more
// unused food, then the earlier seat (a never beats b on equal footing
// because the caller scans in seat order).
func (e *Engine) beats(a, b PlayerScore) bool {
	if a.Total != b.Total {
		return a.Total > b.Total
	}
	return e.st.Player(a.Player).FoodTotal() > e.st.Player(b.Player).FoodTotal()
}

// bonusScore evaluates one bonus card against the player's final board.
func (e *Engine) bonusScore(p *PlayerState, id content.CardID) int {
	card, err := e.reg.Bonus(id)
	if err != nil || card.Matches == nil {
		return 0
	}
	n := 0
	for _, b := range p.Board.All() {
		if card.Matches(b.Card) {
			n++
		}
	}
	return n * card.PerBird
}
