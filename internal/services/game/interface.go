package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wheelrift/internal/services/game Service
//go:generate mockgen -package=mocks -destination=mocks/mock_spinner.go github.com/KirkDiggler/wheelrift/internal/services/game Spinner

import (
	"context"

	"github.com/KirkDiggler/wheelrift/internal/models"
)

// Service is the action surface of one wheel session. Rejected actions
// return an error and leave the session untouched.
type Service interface {
	// StartGame deals the first puzzle
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SpinWheel starts a spin for the current player
	SpinWheel(ctx context.Context, input *SpinWheelInput) (*SpinWheelOutput, error)

	// OnSpinComplete resolves the wedge the wheel landed on
	OnSpinComplete(ctx context.Context, input *OnSpinCompleteInput) (*OnSpinCompleteOutput, error)

	// PickLetter guesses a consonant after a spin or a bought vowel
	PickLetter(ctx context.Context, input *PickLetterInput) (*PickLetterOutput, error)

	// BuyVowel pays for the right to pick a vowel
	BuyVowel(ctx context.Context, input *BuyVowelInput) (*BuyVowelOutput, error)

	// AttemptSolve guesses the whole phrase
	AttemptSolve(ctx context.Context, input *AttemptSolveInput) (*AttemptSolveOutput, error)

	// PassTurn hands the wheel to the next player
	PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error)

	// NextRound deals the next puzzle or ends the game
	NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error)

	// Restart returns to the title screen with fresh players
	Restart(ctx context.Context, input *RestartInput) (*RestartOutput, error)

	// StartAnagramRift opens the rift for the current player
	StartAnagramRift(ctx context.Context, input *StartAnagramRiftInput) (*StartAnagramRiftOutput, error)

	// SubmitRiftWord scores a word in the open rift
	SubmitRiftWord(ctx context.Context, input *SubmitRiftWordInput) (*SubmitRiftWordOutput, error)

	// EndAnagramRift closes the rift and pays out
	EndAnagramRift(ctx context.Context, input *EndAnagramRiftInput) (*EndAnagramRiftOutput, error)

	// AddNotification posts a transient message
	AddNotification(ctx context.Context, input *AddNotificationInput) (*AddNotificationOutput, error)

	// GetLeaderboard returns the best recorded totals
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetState returns a snapshot of the session
	GetState() *models.GameState

	// GetNotifications returns the visible notifications
	GetNotifications() []*models.Notification

	// Watch returns a channel closed at the next state change
	Watch() <-chan struct{}
}

// Spinner plays the wheel animation and reports the landing wedge index.
// onComplete may be called synchronously or from another goroutine.
type Spinner interface {
	Spin(wedgeCount int, onComplete func(wedgeIndex int))
}
