package repository

import (
	"hangman/internal/domain"
)

// WordSource supplies the pool of candidate target words
type WordSource interface {
	LoadWords() ([]string, error)
}

// ResultSink persists finished rounds
type ResultSink interface {
	AppendResult(result domain.GameResult) error
}

// BookRepository defines catalog storage operations
type BookRepository interface {
	LoadBooks() ([]domain.Book, error)
	AppendBook(book domain.Book) error
}
