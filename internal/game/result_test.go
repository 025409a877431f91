package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviarylabs/aviary/internal/content"
)

func TestScoreBreakdown(t *testing.T) {
	e := newTestEngine(t, 1)

	heron := place(t, e, 0, "great-blue-heron", content.Wetland) // 5 points
	heron.Eggs = 2
	heron.Tucked = 3
	heron.Cached = map[content.FoodType]int{content.Fish: 1}

	place(t, e, 1, "house-wren", content.Forest) // 2 points

	result := e.score()
	require.Len(t, result.Scores, 2)

	s0 := result.Scores[0]
	assert.Equal(t, 5, s0.Birds)
	assert.Equal(t, 2, s0.Eggs)
	assert.Equal(t, 1, s0.Cached)
	assert.Equal(t, 3, s0.Tucked)
	assert.Equal(t, 11, s0.Total)

	assert.Equal(t, PlayerID(0), result.Winner)
	assert.Equal(t, 2, result.Scores[1].Total)
}

func TestScoreBonusCards(t *testing.T) {
	e := newTestEngine(t, 1)

	place(t, e, 0, "mallard", content.Wetland)          // lives in wetland
	place(t, e, 0, "belted-kingfisher", content.Wetland)
	place(t, e, 0, "house-wren", content.Forest)

	bonusID := content.StarterSet().BonusIDs()[0]
	bonus, err := e.reg.Bonus(bonusID)
	require.NoError(t, err)
	e.st.Player(0).Bonus = []content.CardID{bonusID}

	matching := 0
	for _, b := range e.st.Player(0).Board.All() {
		if bonus.Matches(b.Card) {
			matching++
		}
	}

	result := e.score()
	assert.Equal(t, matching*bonus.PerBird, result.Scores[0].Bonus)
}

func TestScoreTieBreaksOnUnusedFood(t *testing.T) {
	e := newTestEngine(t, 1)

	// Equal boards, unequal pantries.
	place(t, e, 0, "house-wren", content.Forest)
	place(t, e, 1, "house-wren", content.Forest)

	e.st.Player(1).Food[content.Seed] = 3

	result := e.score()
	assert.Equal(t, result.Scores[0].Total, result.Scores[1].Total)
	assert.Equal(t, PlayerID(1), result.Winner)
}

func TestScoreTieFallsBackToSeatOrder(t *testing.T) {
	e := newTestEngine(t, 1)
	place(t, e, 0, "house-wren", content.Forest)
	place(t, e, 1, "house-wren", content.Forest)

	result := e.score()
	assert.Equal(t, PlayerID(0), result.Winner)
}

func TestForfeitedPlayerNeverWins(t *testing.T) {
	e := newTestEngine(t, 1)

	place(t, e, 0, "great-blue-heron", content.Wetland) // 5 points
	e.st.Player(0).Forfeited = true

	result := e.score()
	assert.Equal(t, PlayerID(1), result.Winner)
	assert.True(t, result.Scores[0].Forfeited)
	assert.Equal(t, 5, result.Scores[0].Total) // score still tallied
}
