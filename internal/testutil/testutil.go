package testutil

import (
	"hangman/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// FirstWord is a pick function that always selects index 0
func FirstWord(n int) int {
	return 0
}

// NewTestResult creates a finished round result
func NewTestResult(word string, outcome domain.RoundState, livesLeft int, used string) domain.GameResult {
	revealed := []rune(word)
	if outcome == domain.RoundLost {
		for i := range revealed {
			revealed[i] = domain.Placeholder
		}
	}
	return domain.GameResult{
		RoundID:     "test-round",
		Word:        word,
		Outcome:     outcome,
		LivesLeft:   livesLeft,
		UsedLetters: []rune(used),
		Revealed:    revealed,
	}
}

// NewTestBook creates a normal edition book without validation
func NewTestBook(title, author string, year int) domain.Book {
	return domain.Book{
		Title:   title,
		Author:  author,
		Year:    year,
		Edition: domain.EditionNormal,
	}
}
