package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Alive                int
	Decaying             int
	Dead                 int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation's census and how long it took
func (s *Stats) Update(generation, alive, decaying, dead int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Alive, s.Decaying, s.Dead = alive, decaying, dead
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(alive)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(alive) * 0.1)
	}
}

// Density returns the share of living cells in percent
func (s *Stats) Density() float64 {
	total := s.Alive + s.Decaying + s.Dead
	if total == 0 {
		return 0
	}
	return float64(s.Alive) / float64(total) * 100
}
