package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

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

	logger.Info("Starting Hangman",
		zap.String("words_file", cfg.Hangman.WordsFile),
		zap.String("results_file", cfg.Hangman.ResultsFile),
		zap.String("theme", cfg.Hangman.Theme),
	)

	theme, err := handler.LookupTheme(cfg.Hangman.Theme)
	if err != nil {
		logger.Fatal("Failed to select theme", zap.Error(err))
	}

	seed := cfg.Hangman.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("Word selection seeded", zap.Int64("seed", seed))
	rng := rand.New(rand.NewSource(seed))

	// Initialize repositories
	wordRepo := flatfile.NewWordFile(cfg.Hangman.WordsFile)
	resultLog := flatfile.NewResultLog(cfg.Hangman.ResultsFile)

	// Initialize services
	gameService := service.NewGameService(wordRepo, resultLog, rng.Intn, logger)
	statsService := service.NewStatsService(logger)

	h := handler.NewGameHandler(os.Stdin, os.Stdout, gameService, statsService, theme, logger)

	// Play in background so an interrupt can end a blocked prompt
	done := make(chan error, 1)
	go func() {
		done <- h.Run()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		fmt.Fprintln(os.Stdout)
		logger.Info("Shutdown signal received, current round abandoned")
	case err := <-done:
		if err != nil {
			logger.Error("Game stopped unexpectedly", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Game stopped unexpectedly: %v\n", err)
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("Hangman finished")
	}
}
