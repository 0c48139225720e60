package logging

import (
	"fmt"

	"hangman/internal/config"

	"go.uber.org/zap"
)

// New builds the application logger. Output goes to cfg.Output so that
// log lines stay out of the interactive console.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level
	zcfg.OutputPaths = []string{cfg.Output}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
