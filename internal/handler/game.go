package handler

import (
	"io"
	"strings"

	"hangman/internal/domain"
	"hangman/internal/game"
	"hangman/internal/service"

	"go.uber.org/zap"
)

// GameHandler drives Hangman rounds over a console
type GameHandler struct {
	console      *console
	gameService  *service.GameService
	statsService *service.StatsService
	theme        Theme
	logger       *zap.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	in io.Reader,
	out io.Writer,
	gameService *service.GameService,
	statsService *service.StatsService,
	theme Theme,
	logger *zap.Logger,
) *GameHandler {
	return &GameHandler{
		console:      newConsole(in, out, logger),
		gameService:  gameService,
		statsService: statsService,
		theme:        theme,
		logger:       logger,
	}
}

// Run plays rounds until the player declines another one or input closes.
// Only driver bugs are returned as errors.
func (h *GameHandler) Run() error {
	h.showWelcome()

	for {
		finished, err := h.playRound()
		if err != nil {
			return err
		}
		if !finished || !h.askPlayAgain() {
			break
		}
	}

	h.showSummary()
	return nil
}

// playRound runs one round; finished is false if input closed mid-round
func (h *GameHandler) playRound() (finished bool, err error) {
	engine, err := h.gameService.NewRound()
	if err != nil {
		return false, err
	}

	for !engine.State().Terminal() {
		h.renderState(engine)

		input, ok := h.console.prompt("Enter a letter or full word: ")
		if !ok {
			h.logger.Info("Input closed, round abandoned", zap.String("round_id", engine.ID()))
			return false, nil
		}

		tr, err := engine.SubmitGuess(input)
		if err != nil {
			return false, err
		}
		if tr.Mistake() {
			h.logger.Debug("Guess missed",
				zap.String("round_id", engine.ID()),
				zap.String("kind", tr.Kind.String()),
				zap.Int("lives_left", engine.LivesLeft()),
			)
		}
		h.renderTransition(tr)
	}

	h.renderState(engine)

	result, err := engine.Result()
	if err != nil {
		return false, err
	}
	h.renderResult(result)
	h.statsService.Record(result)

	if err := h.gameService.RecordResult(result); err != nil {
		h.console.println("Warning: the result could not be saved to the log.")
	}
	return true, nil
}

// askPlayAgain accepts only Y or N; closed input counts as N
func (h *GameHandler) askPlayAgain() bool {
	for {
		answer, ok := h.console.prompt("Play again? (Y/N): ")
		if !ok {
			return false
		}
		switch strings.ToUpper(answer) {
		case "Y":
			return true
		case "N":
			return false
		}
		h.console.println("Error: You must enter Y or N.")
		h.console.println()
	}
}

func (h *GameHandler) showWelcome() {
	for _, line := range h.theme.Banner {
		h.console.println(line)
	}
	h.console.println()
}

func (h *GameHandler) renderState(engine *game.Engine) {
	h.console.println()
	if h.theme.Gallows != nil {
		h.console.println("Hangman:")
		for _, line := range h.theme.Gallows(engine.Errors()) {
			h.console.println(line)
		}
	}

	if lives := engine.LivesLeft(); lives > 0 {
		h.console.printf("Lives left: %d\n", lives)
	} else {
		h.console.println("No lives left.")
	}

	h.console.println("Word: " + domain.JoinRunes(engine.Revealed(), " "))

	used := "None"
	if letters := engine.UsedLetters(); len(letters) > 0 {
		used = domain.JoinRunes(letters, ", ")
	}
	h.console.println("Used letters: " + used)
	h.console.println()
}

func (h *GameHandler) renderTransition(tr game.Transition) {
	switch tr.Kind {
	case game.Rejected:
		switch tr.Reason {
		case game.ReasonNotLetter:
			h.console.println("Error: You must enter a valid letter (A-Z).")
		case game.ReasonDuplicate:
			h.console.println("You already guessed that letter!")
		}
	case game.LetterHit:
		h.console.println("Good guess!")
	case game.LetterMiss:
		h.console.println("Incorrect letter!")
	case game.WordHit:
		h.console.printf("You guessed the full word! GG! The word was: %s\n", tr.Guess)
	case game.WordMiss:
		h.console.println("Incorrect full-word guess!")
	}
}

func (h *GameHandler) renderResult(result domain.GameResult) {
	if result.Won() {
		h.console.println("Congrats! You won!")
	} else {
		h.console.printf("Game Over! The word was: %s\n", result.Word)
	}

	tried := "None"
	if letters := result.SortedUsedLetters(); len(letters) > 0 {
		tried = domain.JoinRunes(letters, ", ")
	}
	h.console.println("Letters tried: " + tried)
}

func (h *GameHandler) showSummary() {
	s := h.statsService.Summary()
	h.console.printf("Rounds played: %d | Won: %d | Lost: %d | Best streak: %d\n",
		s.Played, s.Won, s.Lost, s.BestStreak)
	h.console.println("Goodbye!")
}
