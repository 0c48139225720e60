package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hangman/internal/config"
	"hangman/internal/handler"
	"hangman/internal/logging"
	"hangman/internal/repository/flatfile"
	"hangman/internal/service"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting book catalog", zap.String("books_file", cfg.Books.File))

	bookRepo := flatfile.NewBookFile(cfg.Books.File)
	bookService := service.NewBookService(bookRepo, logger)

	if err := bookService.Load(); err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	h := handler.NewCatalogHandler(os.Stdin, os.Stdout, bookService, logger)

	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		fmt.Fprintln(os.Stdout)
		logger.Info("Shutdown signal received")
	case <-done:
		logger.Info("Book catalog closed")
	}
}
