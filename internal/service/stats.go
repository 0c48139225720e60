package service

import (
	"hangman/internal/domain"

	"go.uber.org/zap"
)

// StatsService keeps per-session round statistics
type StatsService struct {
	summary domain.SessionSummary
	logger  *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(logger *zap.Logger) *StatsService {
	return &StatsService{logger: logger}
}

// Record counts a finished round
func (s *StatsService) Record(result domain.GameResult) {
	s.summary.Played++

	if result.Won() {
		s.summary.Won++
		s.summary.Streak++
		if s.summary.Streak > s.summary.BestStreak {
			s.summary.BestStreak = s.summary.Streak
		}
	} else {
		s.summary.Lost++
		s.summary.Streak = 0
	}

	s.logger.Debug("Session stats updated",
		zap.Int("played", s.summary.Played),
		zap.Int("won", s.summary.Won),
		zap.Int("streak", s.summary.Streak),
	)
}

// Summary returns the counters so far
func (s *StatsService) Summary() domain.SessionSummary {
	return s.summary
}
