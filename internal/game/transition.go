package game

import "hangman/internal/domain"

// TransitionKind identifies which row of the transition table fired
type TransitionKind int

const (
	Rejected TransitionKind = iota
	LetterHit
	LetterMiss
	WordHit
	WordMiss
)

func (k TransitionKind) String() string {
	switch k {
	case Rejected:
		return "rejected"
	case LetterHit:
		return "letter_hit"
	case LetterMiss:
		return "letter_miss"
	case WordHit:
		return "word_hit"
	case WordMiss:
		return "word_miss"
	default:
		return "unknown"
	}
}

// RejectReason explains a Rejected transition
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonEmpty
	ReasonNotLetter
	ReasonDuplicate
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEmpty:
		return "empty"
	case ReasonNotLetter:
		return "not_letter"
	case ReasonDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Transition describes the outcome of one submitted guess
type Transition struct {
	Kind   TransitionKind
	Reason RejectReason
	Letter rune   // single-letter guesses only
	Guess  string // normalized guess, empty when rejected
	State  domain.RoundState
}

// Mistake reports whether the transition cost a life
func (t Transition) Mistake() bool {
	return t.Kind == LetterMiss || t.Kind == WordMiss
}
