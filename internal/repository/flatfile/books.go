package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"hangman/internal/domain"
)

// BookFile implements repository.BookRepository on a pipe-delimited file
type BookFile struct {
	path string
	mu   sync.Mutex
}

// NewBookFile creates a new book repository
func NewBookFile(path string) *BookFile {
	return &BookFile{path: path}
}

// LoadBooks returns all valid records in file order.
// A missing file is an empty catalog; malformed lines are skipped.
func (r *BookFile) LoadBooks() ([]domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var books []domain.Book
	rd := bufio.NewReader(f)
	for {
		line, err := rd.ReadString('\n')
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			if book, perr := domain.ParseBook(line); perr == nil {
				books = append(books, book)
			}
		}
		if errors.Is(err, io.EOF) {
			return books, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
	}
}

// AppendBook appends one record line
func (r *BookFile) AppendBook(book domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := appendLine(r.path, book.Serialize()); err != nil {
		return fmt.Errorf("append book: %w", err)
	}
	return nil
}
