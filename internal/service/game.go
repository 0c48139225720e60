package service

import (
	"fmt"

	"hangman/internal/domain"
	"hangman/internal/game"
	"hangman/internal/repository"

	"go.uber.org/zap"
)

// GameService starts rounds and records their results
type GameService struct {
	words   repository.WordSource
	results repository.ResultSink
	pick    func(n int) int
	logger  *zap.Logger

	pool []string
}

// NewGameService creates a new game service.
// pick returns an index in [0, n) and decides which word each round uses.
func NewGameService(
	words repository.WordSource,
	results repository.ResultSink,
	pick func(n int) int,
	logger *zap.Logger,
) *GameService {
	return &GameService{
		words:   words,
		results: results,
		pick:    pick,
		logger:  logger,
	}
}

// WordPool returns the candidate words, loading them on first use.
// Any failure of the word source falls back to domain.DefaultWords.
func (s *GameService) WordPool() []string {
	if s.pool != nil {
		return s.pool
	}

	words, err := s.words.LoadWords()
	switch {
	case err != nil:
		s.logger.Warn("Failed to load word list, using default pool", zap.Error(err))
		words = domain.DefaultWords
	case len(words) == 0:
		s.logger.Warn("Word list is empty, using default pool")
		words = domain.DefaultWords
	default:
		s.logger.Info("Word list loaded", zap.Int("words", len(words)))
	}

	s.pool = words
	return s.pool
}

// NewRound starts a round with a word chosen by the pick function
func (s *GameService) NewRound() (*game.Engine, error) {
	pool := s.WordPool()

	i := s.pick(len(pool))
	if i < 0 || i >= len(pool) {
		return nil, fmt.Errorf("word index %d out of range [0, %d)", i, len(pool))
	}

	engine, err := game.New(pool[i])
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Round started",
		zap.String("round_id", engine.ID()),
		zap.Int("word_length", engine.WordLength()),
	)
	return engine, nil
}

// RecordResult appends a finished round to the result log.
// The error is returned for reporting only; the round's outcome stands.
func (s *GameService) RecordResult(result domain.GameResult) error {
	s.logger.Info("Round finished",
		zap.String("round_id", result.RoundID),
		zap.String("outcome", string(result.Outcome)),
		zap.String("word", result.Word),
		zap.Int("lives_left", result.LivesLeft),
	)

	if err := s.results.AppendResult(result); err != nil {
		s.logger.Error("Failed to record result",
			zap.Error(err),
			zap.String("round_id", result.RoundID),
		)
		return err
	}
	return nil
}
