package flatfile

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"hangman/internal/domain"
)

// TimestampLayout is the timestamp format of result log lines
const TimestampLayout = "2006-01-02 15:04:05"

// ResultLog implements repository.ResultSink as an append-only text file
type ResultLog struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewResultLog creates a result log writing to path
func NewResultLog(path string) *ResultLog {
	return &ResultLog{path: path, now: time.Now}
}

// WithClock overrides the clock used to stamp lines
func (l *ResultLog) WithClock(now func() time.Time) *ResultLog {
	l.now = now
	return l
}

// AppendResult writes one line for a finished round
func (l *ResultLog) AppendResult(result domain.GameResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := FormatResult(result, l.now())
	if err := appendLine(l.path, line); err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

// FormatResult renders a finished round as a result log line (no newline)
func FormatResult(result domain.GameResult, at time.Time) string {
	outcome := "LOSS"
	if result.Won() {
		outcome = "WIN"
	}

	used := "None"
	if len(result.UsedLetters) > 0 {
		used = domain.JoinRunes(result.UsedLetters, ",")
	}

	fields := []string{
		at.Format(TimestampLayout),
		outcome,
		"WORD: " + result.Word,
		fmt.Sprintf("LIVES LEFT: %d", result.LivesLeft),
		"USED: " + used,
		"FINAL: " + result.RevealedString(),
	}
	return strings.Join(fields, " | ")
}
