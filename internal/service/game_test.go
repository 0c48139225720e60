package service

import (
	"fmt"
	"testing"

	"hangman/internal/domain"
	"hangman/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGameService_WordPool(t *testing.T) {
	tests := []struct {
		name         string
		mockWords    []string
		mockError    error
		expectedPool []string
	}{
		{
			name:         "words from source",
			mockWords:    []string{"CAT", "DOG"},
			expectedPool: []string{"CAT", "DOG"},
		},
		{
			name:         "source error falls back to defaults",
			mockWords:    nil,
			mockError:    fmt.Errorf("permission denied"),
			expectedPool: domain.DefaultWords,
		},
		{
			name:         "empty source falls back to defaults",
			mockWords:    []string{},
			expectedPool: domain.DefaultWords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWords := new(testutil.MockWordSource)
			mockWords.On("LoadWords").Return(tt.mockWords, tt.mockError).Once()

			service := NewGameService(mockWords, new(testutil.MockResultSink), testutil.FirstWord, testutil.NewTestLogger())

			assert.Equal(t, tt.expectedPool, service.WordPool())
			// second call is served from memory
			assert.Equal(t, tt.expectedPool, service.WordPool())

			mockWords.AssertExpectations(t)
		})
	}
}

func TestGameService_NewRound(t *testing.T) {
	tests := []struct {
		name          string
		pool          []string
		pick          func(n int) int
		expectedLen   int
		expectedError bool
	}{
		{
			name:        "first word",
			pool:        []string{"CAT", "PROGRAMMING"},
			pick:        testutil.FirstWord,
			expectedLen: 3,
		},
		{
			name:        "last word",
			pool:        []string{"CAT", "PROGRAMMING"},
			pick:        func(n int) int { return n - 1 },
			expectedLen: 11,
		},
		{
			name:          "pick out of range",
			pool:          []string{"CAT"},
			pick:          func(n int) int { return n },
			expectedError: true,
		},
		{
			name:          "invalid word in pool",
			pool:          []string{"C4T"},
			pick:          testutil.FirstWord,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWords := new(testutil.MockWordSource)
			mockWords.On("LoadWords").Return(tt.pool, nil)

			service := NewGameService(mockWords, new(testutil.MockResultSink), tt.pick, testutil.NewTestLogger())

			engine, err := service.NewRound()

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, engine)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.RoundInProgress, engine.State())
			assert.Equal(t, tt.expectedLen, engine.WordLength())
		})
	}
}

func TestGameService_NewRoundIsFresh(t *testing.T) {
	mockWords := new(testutil.MockWordSource)
	mockWords.On("LoadWords").Return([]string{"CAT"}, nil)

	service := NewGameService(mockWords, new(testutil.MockResultSink), testutil.FirstWord, testutil.NewTestLogger())

	first, err := service.NewRound()
	require.NoError(t, err)
	_, err = first.SubmitGuess("X")
	require.NoError(t, err)

	second, err := service.NewRound()
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 0, second.Errors())
	assert.Empty(t, second.UsedLetters())
}

func TestGameService_RecordResult(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful append",
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "log write error",
			mockError:     fmt.Errorf("disk full"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testutil.NewTestResult("CAT", domain.RoundWon, 6, "CAT")

			mockSink := new(testutil.MockResultSink)
			mockSink.On("AppendResult", mock.MatchedBy(func(r domain.GameResult) bool {
				return r.RoundID == result.RoundID && r.Word == "CAT"
			})).Return(tt.mockError)

			service := NewGameService(new(testutil.MockWordSource), mockSink, testutil.FirstWord, testutil.NewTestLogger())

			err := service.RecordResult(result)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockSink.AssertExpectations(t)
		})
	}
}
