package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(winner int, scores []int, turns int) GameRecord {
	return GameRecord{Winner: winner, Scores: scores, Turns: turns}
}

func TestAddAccumulates(t *testing.T) {
	s := &Statistics{}
	s.Add(record(0, []int{40, 30}, 52))
	s.Add(record(1, []int{20, 35}, 48))

	assert.Equal(t, 2, s.Games)
	assert.InDelta(t, 37.5, s.Mean(), 1e-9) // (40+35)/2
	assert.InDelta(t, 50.0, s.MeanTurns(), 1e-9)

	require.Len(t, s.Seats, 2)
	assert.Equal(t, 1, s.Seats[0].Wins)
	assert.Equal(t, 1, s.Seats[1].Wins)
	assert.InDelta(t, 30.0, s.Seats[0].Mean(), 1e-9)
	assert.InDelta(t, 0.5, s.Seats[0].WinRate(), 1e-9)
}

func TestVarianceAndConfidence(t *testing.T) {
	s := &Statistics{}
	for _, win := range []int{40, 50, 60} {
		s.Add(record(0, []int{win, 10}, 50))
	}

	assert.InDelta(t, 50.0, s.Mean(), 1e-9)
	assert.InDelta(t, 100.0, s.Variance(), 1e-9)
	assert.InDelta(t, 10.0, s.StdDev(), 1e-9)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
}

func TestEmptyStatisticsAreZero(t *testing.T) {
	s := &Statistics{}
	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdError())
	assert.Zero(t, s.MeanTurns())
	assert.NoError(t, s.Validate())
}

func TestValidateCatchesWinMiscount(t *testing.T) {
	s := &Statistics{}
	s.Add(record(0, []int{40, 30}, 52))
	require.NoError(t, s.Validate())

	s.Seats[1].Wins++ // corrupt
	assert.Error(t, s.Validate())
}

func TestForfeitsCounted(t *testing.T) {
	s := &Statistics{}
	s.Add(GameRecord{Winner: 0, Scores: []int{40, 0}, Turns: 26, Forfeits: 1})
	assert.Equal(t, 1, s.Forfeits)
}
