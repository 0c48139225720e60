package service

import (
	"testing"

	"hangman/internal/domain"
	"hangman/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_Record(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []domain.RoundState
		expected domain.SessionSummary
	}{
		{
			name:     "no rounds",
			expected: domain.SessionSummary{},
		},
		{
			name:     "single win",
			outcomes: []domain.RoundState{domain.RoundWon},
			expected: domain.SessionSummary{Played: 1, Won: 1, Streak: 1, BestStreak: 1},
		},
		{
			name:     "loss resets streak",
			outcomes: []domain.RoundState{domain.RoundWon, domain.RoundWon, domain.RoundLost, domain.RoundWon},
			expected: domain.SessionSummary{Played: 4, Won: 3, Lost: 1, Streak: 1, BestStreak: 2},
		},
		{
			name:     "only losses",
			outcomes: []domain.RoundState{domain.RoundLost, domain.RoundLost},
			expected: domain.SessionSummary{Played: 2, Lost: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewStatsService(testutil.NewTestLogger())

			for _, outcome := range tt.outcomes {
				service.Record(testutil.NewTestResult("CAT", outcome, 3, "CAT"))
			}

			assert.Equal(t, tt.expected, service.Summary())
		})
	}
}
