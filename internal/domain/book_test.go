package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name        string
		title       string
		author      string
		year        int
		expectedErr error
	}{
		{
			name:   "valid book",
			title:  "  Dune ",
			author: "Frank Herbert",
			year:   1965,
		},
		{
			name:   "current year",
			title:  "Fresh",
			author: "Someone",
			year:   currentYear,
		},
		{
			name:        "empty title",
			title:       "   ",
			author:      "Frank Herbert",
			year:        1965,
			expectedErr: ErrEmptyTitle,
		},
		{
			name:        "empty author",
			title:       "Dune",
			author:      "",
			year:        1965,
			expectedErr: ErrEmptyAuthor,
		},
		{
			name:        "zero year",
			title:       "Dune",
			author:      "Frank Herbert",
			year:        0,
			expectedErr: ErrInvalidYear,
		},
		{
			name:        "future year",
			title:       "Dune",
			author:      "Frank Herbert",
			year:        currentYear + 1,
			expectedErr: ErrInvalidYear,
		},
		{
			name:        "separator in title",
			title:       "Dune|Messiah",
			author:      "Frank Herbert",
			year:        1969,
			expectedErr: ErrReservedCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := NewBook(tt.title, tt.author, tt.year)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, EditionNormal, book.Edition)
			assert.Equal(t, strings.TrimSpace(tt.title), book.Title)
		})
	}
}

func TestNewSpecialEdition_DefaultNote(t *testing.T) {
	book, err := NewSpecialEdition("Dune", "Frank Herbert", 1965, "  ")

	require.NoError(t, err)
	assert.Equal(t, EditionSpecial, book.Edition)
	assert.Equal(t, DefaultSpecialNote, book.Note)
}

func TestBook_DisplayAndSerialize(t *testing.T) {
	tests := []struct {
		name              string
		book              Book
		expectedDisplay   string
		expectedSerialize string
	}{
		{
			name:              "normal",
			book:              Book{Title: "Dune", Author: "Frank Herbert", Year: 1965},
			expectedDisplay:   `"Dune" by Frank Herbert, 1965`,
			expectedSerialize: "NORMAL|Dune|Frank Herbert|1965",
		},
		{
			name:              "special",
			book:              Book{Title: "Dune Special", Author: "Frank Herbert", Year: 1965, Edition: EditionSpecial, Note: "Limited"},
			expectedDisplay:   `[Special] "Dune Special" by Frank Herbert, 1965 — Limited`,
			expectedSerialize: "SPECIAL|Dune Special|Frank Herbert|1965|Limited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedDisplay, tt.book.Display())
			assert.Equal(t, tt.expectedSerialize, tt.book.Serialize())

			parsed, err := ParseBook(tt.book.Serialize())
			require.NoError(t, err)
			assert.Equal(t, tt.book, parsed)
		})
	}
}

func TestParseBook_Malformed(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		expectedErr error
	}{
		{name: "unknown tag", line: "EBOOK|Dune|Frank Herbert|1965", expectedErr: ErrMalformedRecord},
		{name: "special without note", line: "SPECIAL|Dune|Frank Herbert|1965", expectedErr: ErrMalformedRecord},
		{name: "normal with extra field", line: "NORMAL|Dune|Frank Herbert|1965|x", expectedErr: ErrMalformedRecord},
		{name: "bad year", line: "NORMAL|Dune|Frank Herbert|sixties", expectedErr: ErrMalformedRecord},
		{name: "empty line", line: "", expectedErr: ErrMalformedRecord},
		{name: "empty title", line: "NORMAL||Frank Herbert|1965", expectedErr: ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBook(tt.line)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
