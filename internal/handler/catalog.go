package handler

import (
	"errors"
	"io"

	"hangman/internal/domain"
	"hangman/internal/service"

	"go.uber.org/zap"
)

// CatalogHandler drives the book catalog menu over a console
type CatalogHandler struct {
	console     *console
	bookService *service.BookService
	logger      *zap.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(in io.Reader, out io.Writer, bookService *service.BookService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		console:     newConsole(in, out, logger),
		bookService: bookService,
		logger:      logger,
	}
}

// Run shows the menu until the user exits or input closes
func (h *CatalogHandler) Run() {
	for {
		h.console.println()
		h.console.println("1. Add book")
		h.console.println("2. View books")
		h.console.println("3. Search")
		h.console.println("4. Exit")

		choice, ok := h.console.prompt("Choice: ")
		if !ok {
			h.logger.Info("Input closed, leaving catalog")
			return
		}
		h.logger.Debug("Menu choice", zap.String("choice", choice))

		switch choice {
		case "1":
			h.handleAdd()
		case "2":
			h.printBooks(h.bookService.All(), "No books found.")
		case "3":
			h.handleSearch()
		case "4":
			return
		default:
			h.logger.Warn("Invalid menu choice", zap.String("choice", choice))
			h.console.println("Invalid choice.")
		}
	}
}

func (h *CatalogHandler) handleAdd() {
	title, ok := h.console.prompt("Title: ")
	if !ok {
		return
	}
	if title == "" {
		h.console.println("Title required.")
		return
	}

	author, ok := h.console.prompt("Author: ")
	if !ok {
		return
	}
	if author == "" {
		h.console.println("Author required.")
		return
	}

	date, ok := h.console.prompt("Release date (dd.MM.yyyy): ")
	if !ok {
		return
	}

	book, err := h.bookService.BuildBook(title, author, date)
	if err != nil {
		h.logger.Info("Book rejected", zap.Error(err), zap.String("title", title))
	}
	switch {
	case errors.Is(err, service.ErrInvalidReleaseDate), errors.Is(err, domain.ErrInvalidYear):
		h.console.println("Invalid date.")
		return
	case err != nil:
		h.console.printf("Invalid book: %v\n", err)
		return
	}

	if err := h.bookService.Add(book); err != nil {
		h.console.println("Could not save the book.")
		return
	}
	h.console.println("Book added.")
}

func (h *CatalogHandler) handleSearch() {
	query, ok := h.console.prompt("Search title: ")
	if !ok {
		return
	}
	found := h.bookService.Search(query)
	h.logger.Info("Catalog searched", zap.String("query", query), zap.Int("matches", len(found)))
	h.printBooks(found, "No results.")
}

func (h *CatalogHandler) printBooks(books []domain.Book, empty string) {
	if len(books) == 0 {
		h.console.println(empty)
		return
	}
	for i, b := range books {
		h.console.printf("%d. %s\n", i+1, b.Display())
	}
}
