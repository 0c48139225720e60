package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hangman/internal/domain"
	"hangman/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// ReleaseDateLayout is the expected release date input (dd.MM.yyyy)
const ReleaseDateLayout = "02.01.2006"

// ErrInvalidReleaseDate is returned for dates not in ReleaseDateLayout
var ErrInvalidReleaseDate = errors.New("invalid release date")

// specialMarker in a title makes the book a special edition
const specialMarker = "special"

// specialNote is the note given to special editions added from the console
const specialNote = "Limited"

// BookService handles catalog logic
type BookService struct {
	bookRepo repository.BookRepository
	logger   *zap.Logger

	books []domain.Book
}

// NewBookService creates a new book service
func NewBookService(bookRepo repository.BookRepository, logger *zap.Logger) *BookService {
	return &BookService{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

// Load reads the catalog into memory
func (s *BookService) Load() error {
	books, err := s.bookRepo.LoadBooks()
	if err != nil {
		s.logger.Error("Failed to load catalog", zap.Error(err))
		return err
	}

	s.books = books
	s.logger.Info("Catalog loaded", zap.Int("books", len(books)))
	return nil
}

// BuildBook validates console input and builds a book.
// Titles mentioning "special" become special editions.
func (s *BookService) BuildBook(title, author, releaseDate string) (domain.Book, error) {
	date, err := time.Parse(ReleaseDateLayout, strings.TrimSpace(releaseDate))
	if err != nil {
		return domain.Book{}, fmt.Errorf("%w: %v", ErrInvalidReleaseDate, err)
	}

	if containsFold(title, specialMarker) {
		return domain.NewSpecialEdition(title, author, date.Year(), specialNote)
	}
	return domain.NewBook(title, author, date.Year())
}

// Add persists a book and keeps it in the in-memory catalog
func (s *BookService) Add(book domain.Book) error {
	if err := book.Validate(time.Now()); err != nil {
		return err
	}

	if err := s.bookRepo.AppendBook(book); err != nil {
		s.logger.Error("Failed to save book", zap.Error(err), zap.String("title", book.Title))
		return err
	}

	s.books = append(s.books, book)
	s.logger.Info("Book added",
		zap.String("title", book.Title),
		zap.Bool("special", book.Edition == domain.EditionSpecial),
	)
	return nil
}

// All returns every book in insertion order
func (s *BookService) All() []domain.Book {
	out := make([]domain.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Search returns books whose title contains query, ignoring case.
// An empty query matches nothing.
func (s *BookService) Search(query string) []domain.Book {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var found []domain.Book
	for _, b := range s.books {
		if containsFold(b.Title, query) {
			found = append(found, b)
		}
	}
	return found
}

func containsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
