package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Hangman HangmanConfig
	Books   BooksConfig
	Log     LogConfig
}

// HangmanConfig holds game settings
type HangmanConfig struct {
	WordsFile   string `env:"HANGMAN_WORDS_FILE" envDefault:"words.txt"`
	ResultsFile string `env:"HANGMAN_RESULTS_FILE" envDefault:"results.txt"`
	Theme       string `env:"HANGMAN_THEME" envDefault:"classic"`
	// Seed for word selection; zero means seed from the clock
	Seed int64 `env:"HANGMAN_SEED" envDefault:"0"`
}

// BooksConfig holds catalog settings
type BooksConfig struct {
	File string `env:"BOOKS_FILE" envDefault:"books.txt"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
	Output      string `env:"LOG_OUTPUT" envDefault:"app.log"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields
func (c *Config) Validate() error {
	if c.Hangman.WordsFile == "" {
		return fmt.Errorf("HANGMAN_WORDS_FILE is required")
	}
	if c.Hangman.ResultsFile == "" {
		return fmt.Errorf("HANGMAN_RESULTS_FILE is required")
	}
	if c.Hangman.Theme == "" {
		return fmt.Errorf("HANGMAN_THEME is required")
	}
	if c.Books.File == "" {
		return fmt.Errorf("BOOKS_FILE is required")
	}
	if c.Log.Output == "" {
		return fmt.Errorf("LOG_OUTPUT is required")
	}
	return nil
}
