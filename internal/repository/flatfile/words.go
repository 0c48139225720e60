package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"hangman/internal/domain"
	"hangman/internal/game"
)

// WordFile implements repository.WordSource over a one-word-per-line file
type WordFile struct {
	path     string
	defaults []string
}

// NewWordFile creates a word source; a missing file is seeded with domain.DefaultWords
func NewWordFile(path string) *WordFile {
	return &WordFile{path: path, defaults: domain.DefaultWords}
}

// LoadWords reads the word list, seeding it first if it does not exist.
// Lines are trimmed and upper-cased; blank lines and lines that are not
// plain ASCII words are skipped.
func (w *WordFile) LoadWords() ([]string, error) {
	if _, err := os.Stat(w.path); errors.Is(err, fs.ErrNotExist) {
		if err := w.seed(); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(w.path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if word := strings.ToUpper(strings.TrimSpace(line)); game.IsWord(word) {
			words = append(words, word)
		}
		if errors.Is(err, io.EOF) {
			return words, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read word list: %w", err)
		}
	}
}

// seed writes the default pool to a new file
func (w *WordFile) seed() error {
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		// another process seeded it first
		return nil
	}
	if err != nil {
		return fmt.Errorf("create word list: %w", err)
	}

	content := strings.Join(w.defaults, "\n") + "\n"
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("seed word list: %w", err)
	}
	return f.Close()
}
