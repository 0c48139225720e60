// Package game implements the state machine for a single Hangman round.
//
// A round starts InProgress with every position hidden and moves to Won
// or Lost; terminal rounds accept no further guesses. Ordinary bad input
// (empty, non-letter, repeated letter) is reported as a Rejected
// transition, never as an error. Errors are reserved for driver bugs.
package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"hangman/internal/domain"

	"github.com/google/uuid"
)

var (
	// ErrInvalidState is returned when an operation does not fit the round's state
	ErrInvalidState = errors.New("invalid round state")
	// ErrInvalidWord is returned for target words that are not all ASCII letters
	ErrInvalidWord = errors.New("invalid target word")
)

// Engine owns the mutable state of one round. It is not safe for
// concurrent use; each round gets a fresh Engine.
type Engine struct {
	id       string
	word     string
	revealed []rune
	used     []rune
	usedSet  map[rune]struct{}
	mistakes int
	state    domain.RoundState
}

// New starts a round for word. The word is trimmed and upper-cased.
func New(word string) (*Engine, error) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if !IsWord(word) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}

	revealed := make([]rune, len(word))
	for i := range revealed {
		revealed[i] = domain.Placeholder
	}

	return &Engine{
		id:       uuid.NewString(),
		word:     word,
		revealed: revealed,
		usedSet:  make(map[rune]struct{}),
		state:    domain.RoundInProgress,
	}, nil
}

// SubmitGuess evaluates one raw guess and applies the matching transition.
// Inputs longer than one character are whole-word guesses.
func (e *Engine) SubmitGuess(input string) (Transition, error) {
	if e.state.Terminal() {
		return Transition{}, fmt.Errorf("%w: round already %s", ErrInvalidState, e.state)
	}

	guess := strings.ToUpper(strings.TrimSpace(input))

	switch utf8.RuneCountInString(guess) {
	case 0:
		return e.reject(ReasonEmpty, 0), nil
	case 1:
		letter, _ := utf8.DecodeRuneInString(guess)
		return e.guessLetter(letter), nil
	default:
		return e.guessWord(guess), nil
	}
}

func (e *Engine) guessWord(guess string) Transition {
	if guess == e.word {
		e.revealed = []rune(e.word)
		e.state = domain.RoundWon
		return Transition{Kind: WordHit, Guess: guess, State: e.state}
	}

	e.miss()
	return Transition{Kind: WordMiss, Guess: guess, State: e.state}
}

func (e *Engine) guessLetter(letter rune) Transition {
	if !isLetter(letter) {
		return e.reject(ReasonNotLetter, letter)
	}
	if _, seen := e.usedSet[letter]; seen {
		return e.reject(ReasonDuplicate, letter)
	}

	e.usedSet[letter] = struct{}{}
	e.used = append(e.used, letter)

	if !e.reveal(letter) {
		e.miss()
		return Transition{Kind: LetterMiss, Letter: letter, Guess: string(letter), State: e.state}
	}

	if !e.hasPlaceholders() {
		e.state = domain.RoundWon
	}
	return Transition{Kind: LetterHit, Letter: letter, Guess: string(letter), State: e.state}
}

// reveal uncovers every position holding letter and reports whether any matched.
func (e *Engine) reveal(letter rune) bool {
	match := false
	for i, r := range e.word {
		if r == letter {
			e.revealed[i] = letter
			match = true
		}
	}
	return match
}

// miss costs one life. Winning never goes through here, so a round
// cannot be both won and lost.
func (e *Engine) miss() {
	e.mistakes++
	if e.mistakes >= domain.MaxErrors {
		e.state = domain.RoundLost
	}
}

func (e *Engine) reject(reason RejectReason, letter rune) Transition {
	return Transition{Kind: Rejected, Reason: reason, Letter: letter, State: e.state}
}

func (e *Engine) hasPlaceholders() bool {
	for _, r := range e.revealed {
		if r == domain.Placeholder {
			return true
		}
	}
	return false
}

// Result returns the snapshot of a finished round.
func (e *Engine) Result() (domain.GameResult, error) {
	if !e.state.Terminal() {
		return domain.GameResult{}, fmt.Errorf("%w: round still in progress", ErrInvalidState)
	}

	return domain.GameResult{
		RoundID:     e.id,
		Word:        e.word,
		Outcome:     e.state,
		LivesLeft:   e.LivesLeft(),
		UsedLetters: e.UsedLetters(),
		Revealed:    e.Revealed(),
	}, nil
}

// ID returns the round identifier used in logs.
func (e *Engine) ID() string { return e.id }

// State returns the current round state.
func (e *Engine) State() domain.RoundState { return e.state }

// Errors returns the number of mistakes so far.
func (e *Engine) Errors() int { return e.mistakes }

// LivesLeft returns MaxErrors minus the mistakes so far.
func (e *Engine) LivesLeft() int { return domain.MaxErrors - e.mistakes }

// WordLength returns the number of positions in the target word.
func (e *Engine) WordLength() int { return len(e.revealed) }

// Revealed returns a copy of the revealed sequence.
func (e *Engine) Revealed() []rune {
	out := make([]rune, len(e.revealed))
	copy(out, e.revealed)
	return out
}

// UsedLetters returns a copy of the attempted letters in guess order.
func (e *Engine) UsedLetters() []rune {
	out := make([]rune, len(e.used))
	copy(out, e.used)
	return out
}

// IsWord reports whether s is a non-empty run of uppercase ASCII letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
