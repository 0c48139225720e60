package testutil

import (
	"hangman/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordSource is a mock for WordSource
type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) LoadWords() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockResultSink is a mock for ResultSink
type MockResultSink struct {
	mock.Mock
}

func (m *MockResultSink) AppendResult(result domain.GameResult) error {
	args := m.Called(result)
	return args.Error(0)
}

// MockBookRepository is a mock for BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) LoadBooks() ([]domain.Book, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}

func (m *MockBookRepository) AppendBook(book domain.Book) error {
	args := m.Called(book)
	return args.Error(0)
}
