package domain

import (
	"sort"
	"strings"
)

// MaxErrors is the number of mistakes that ends a round
const MaxErrors = 6

// Placeholder marks a word position that has not been guessed yet
const Placeholder = '_'

// RoundState represents where a round is in its lifecycle
type RoundState string

const (
	RoundInProgress RoundState = "in_progress"
	RoundWon        RoundState = "won"
	RoundLost       RoundState = "lost"
)

// Terminal reports whether no further guesses are accepted
func (s RoundState) Terminal() bool {
	return s == RoundWon || s == RoundLost
}

// DefaultWords is the pool used when no word list is available
var DefaultWords = []string{"PROGRAMMING", "COMPUTER", "ALGORITHM", "DATABASE", "NETWORK"}

// GameResult is the snapshot of a finished round
type GameResult struct {
	RoundID     string
	Word        string
	Outcome     RoundState
	LivesLeft   int
	UsedLetters []rune // insertion order
	Revealed    []rune
}

// Won reports whether the round ended in a win
func (r GameResult) Won() bool {
	return r.Outcome == RoundWon
}

// SortedUsedLetters returns the used letters in alphabetical order
func (r GameResult) SortedUsedLetters() []rune {
	sorted := make([]rune, len(r.UsedLetters))
	copy(sorted, r.UsedLetters)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}

// RevealedString returns the final word with positions separated by spaces
func (r GameResult) RevealedString() string {
	return JoinRunes(r.Revealed, " ")
}

// JoinRunes joins single characters with sep
func JoinRunes(rs []rune, sep string) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

// SessionSummary holds per-process round counters
type SessionSummary struct {
	Played     int
	Won        int
	Lost       int
	Streak     int
	BestStreak int
}
