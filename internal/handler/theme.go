package handler

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"hangman/internal/domain"
)

// ErrUnknownTheme is returned by LookupTheme for unregistered names
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the presentation of a game variant: banner text and gallows art.
// A nil Gallows draws no art.
type Theme struct {
	Name    string
	Banner  []string
	Gallows func(mistakes int) []string
}

var themes = map[string]Theme{
	"classic": {
		Name: "classic",
		Banner: []string{
			"=======================================",
			"        WELCOME TO HANGMAN GAME        ",
			"=======================================",
			"Guess the hidden word one letter at a time,",
			"or try to guess the whole word at once!",
			fmt.Sprintf("You have %d lives. Each wrong guess brings you closer to being hanged!", domain.MaxErrors),
			"Good luck! May your guesses be sharp.",
		},
		Gallows: classicGallows,
	},
	"plain": {
		Name: "plain",
		Banner: []string{
			"HANGMAN",
			fmt.Sprintf("Guess a letter or the whole word. %d mistakes and you are out.", domain.MaxErrors),
		},
	},
}

// LookupTheme returns the theme registered under name
func LookupTheme(name string) (Theme, error) {
	theme, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownTheme, name, strings.Join(ThemeNames(), ", "))
	}
	return theme, nil
}

// ThemeNames lists registered themes in alphabetical order
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// classicGallows draws one body part per mistake
func classicGallows(mistakes int) []string {
	head, body, legs := "      |", "      |", "      |"

	if mistakes >= 1 {
		head = "  O   |"
	}
	switch {
	case mistakes >= 4:
		body = " /|\\  |"
	case mistakes == 3:
		body = " /|   |"
	case mistakes == 2:
		body = "  |   |"
	}
	switch {
	case mistakes >= 6:
		legs = " / \\  |"
	case mistakes == 5:
		legs = " /    |"
	}

	return []string{
		"  +---+",
		"  |   |",
		head,
		body,
		legs,
		"      |",
		"=========",
	}
}
