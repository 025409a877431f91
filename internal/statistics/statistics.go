// Package statistics aggregates simulation outcomes across many games.
package statistics

import (
	"fmt"
	"math"
)

// GameRecord is the outcome of one simulated game.
type GameRecord struct {
	Seed     int64 // engine seed, for replay
	Winner   int   // winning seat
	Scores   []int // final score per seat
	Turns    int
	Forfeits int
}

// SeatStats tracks per-seat score aggregates.
type SeatStats struct {
	Games     int
	Wins      int
	SumScore  float64
	SumScore2 float64
}

// Mean returns the seat's mean final score.
func (s *SeatStats) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumScore / float64(s.Games)
}

// WinRate returns the fraction of games the seat won.
func (s *SeatStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Statistics tracks comprehensive simulation statistics. Not safe for
// concurrent use; callers serialise Add.
type Statistics struct {
	Games     int
	SumScore  float64 // winning scores
	SumScore2 float64 // sum of squares for variance calculation
	SumTurns  int
	Forfeits  int

	Seats []SeatStats
}

// Mean returns the mean winning score.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumScore / float64(s.Games)
}

// Variance returns the sample variance of winning scores.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumScore2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of winning scores.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean winning score.
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
// winning score.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// MeanTurns returns the mean number of turns per game.
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumTurns) / float64(s.Games)
}

// Add incorporates a game record.
func (s *Statistics) Add(r GameRecord) {
	if len(s.Seats) < len(r.Scores) {
		grown := make([]SeatStats, len(r.Scores))
		copy(grown, s.Seats)
		s.Seats = grown
	}

	s.Games++
	win := float64(r.Scores[r.Winner])
	s.SumScore += win
	s.SumScore2 += win * win
	s.SumTurns += r.Turns
	s.Forfeits += r.Forfeits

	for seat, score := range r.Scores {
		st := &s.Seats[seat]
		st.Games++
		st.SumScore += float64(score)
		st.SumScore2 += float64(score) * float64(score)
		if seat == r.Winner {
			st.Wins++
		}
	}
}

// Validate checks internal consistency before results are reported.
func (s *Statistics) Validate() error {
	wins := 0
	for _, seat := range s.Seats {
		wins += seat.Wins
		if seat.Games > s.Games {
			return fmt.Errorf("statistics: seat played %d games of %d total", seat.Games, s.Games)
		}
	}
	if wins != s.Games {
		return fmt.Errorf("statistics: %d wins recorded across %d games", wins, s.Games)
	}
	return nil
}
