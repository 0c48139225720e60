package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Edition tags a book record
type Edition int

const (
	EditionNormal Edition = iota
	EditionSpecial
)

const (
	tagNormal  = "NORMAL"
	tagSpecial = "SPECIAL"

	fieldSeparator = "|"

	// DefaultSpecialNote is used when a special edition has no note
	DefaultSpecialNote = "Special Edition"
)

var (
	ErrEmptyTitle        = errors.New("title can't be empty")
	ErrEmptyAuthor       = errors.New("author can't be empty")
	ErrInvalidYear       = errors.New("year out of range")
	ErrReservedCharacter = errors.New("fields can't contain '|'")
	ErrMalformedRecord   = errors.New("malformed book record")
)

// Book is a catalog entry; Note is only set for special editions
type Book struct {
	Title   string
	Author  string
	Year    int
	Edition Edition
	Note    string
}

// NewBook validates and builds a normal edition
func NewBook(title, author string, year int) (Book, error) {
	b := Book{
		Title:   strings.TrimSpace(title),
		Author:  strings.TrimSpace(author),
		Year:    year,
		Edition: EditionNormal,
	}
	if err := b.Validate(time.Now()); err != nil {
		return Book{}, err
	}
	return b, nil
}

// NewSpecialEdition validates and builds a special edition
func NewSpecialEdition(title, author string, year int, note string) (Book, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		note = DefaultSpecialNote
	}
	b := Book{
		Title:   strings.TrimSpace(title),
		Author:  strings.TrimSpace(author),
		Year:    year,
		Edition: EditionSpecial,
		Note:    note,
	}
	if err := b.Validate(time.Now()); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Validate checks the book against the catalog rules as of now
func (b Book) Validate(now time.Time) error {
	if b.Title == "" {
		return ErrEmptyTitle
	}
	if b.Author == "" {
		return ErrEmptyAuthor
	}
	if b.Year <= 0 || b.Year > now.Year() {
		return fmt.Errorf("%w: %d", ErrInvalidYear, b.Year)
	}
	for _, field := range []string{b.Title, b.Author, b.Note} {
		if strings.Contains(field, fieldSeparator) {
			return ErrReservedCharacter
		}
	}
	return nil
}

// Display returns the human readable form
func (b Book) Display() string {
	if b.Edition == EditionSpecial {
		return fmt.Sprintf("[Special] \"%s\" by %s, %d — %s", b.Title, b.Author, b.Year, b.Note)
	}
	return fmt.Sprintf("\"%s\" by %s, %d", b.Title, b.Author, b.Year)
}

// Serialize returns the pipe-delimited record line
func (b Book) Serialize() string {
	fields := []string{tagNormal, b.Title, b.Author, strconv.Itoa(b.Year)}
	if b.Edition == EditionSpecial {
		fields[0] = tagSpecial
		fields = append(fields, b.Note)
	}
	return strings.Join(fields, fieldSeparator)
}

// ParseBook parses one record line produced by Serialize
func ParseBook(line string) (Book, error) {
	p := strings.Split(line, fieldSeparator)

	switch {
	case p[0] == tagSpecial && len(p) == 5:
		year, err := strconv.Atoi(p[3])
		if err != nil {
			return Book{}, fmt.Errorf("%w: bad year %q", ErrMalformedRecord, p[3])
		}
		return NewSpecialEdition(p[1], p[2], year, p[4])
	case p[0] == tagNormal && len(p) == 4:
		year, err := strconv.Atoi(p[3])
		if err != nil {
			return Book{}, fmt.Errorf("%w: bad year %q", ErrMalformedRecord, p[3])
		}
		return NewBook(p[1], p[2], year)
	default:
		return Book{}, ErrMalformedRecord
	}
}
