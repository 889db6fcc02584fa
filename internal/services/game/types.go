package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wheelrift/internal/catalog"
	"github.com/KirkDiggler/wheelrift/internal/common/clock"
	"github.com/KirkDiggler/wheelrift/internal/common/random"
	"github.com/KirkDiggler/wheelrift/internal/common/uuid"
	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/repositories/results"
	"github.com/KirkDiggler/wheelrift/internal/rift"
	"github.com/KirkDiggler/wheelrift/internal/services/messaging"
	"github.com/KirkDiggler/wheelrift/internal/services/notification"
)

const (
	// DefaultTotalRounds is the number of puzzles per game
	DefaultTotalRounds = 3

	// DefaultVowelCost is the price of a vowel
	DefaultVowelCost = 250
)

// PlayerSpec describes a seat created at start and on restart
type PlayerSpec struct {
	Name        string
	Kind        models.PlayerKind
	Personality string
}

// DefaultPlayers is one human against two computer players
func DefaultPlayers() []PlayerSpec {
	return []PlayerSpec{
		{Name: "Player", Kind: models.PlayerKindHuman},
		{Name: "Byte", Kind: models.PlayerKindAI, Personality: "cautious"},
		{Name: "Cog", Kind: models.PlayerKindAI, Personality: "bold"},
	}
}

// Config holds configuration for the game service
type Config struct {
	// Static catalogs, checked by catalog.Validate
	Wedges  []models.Wedge
	Puzzles catalog.Puzzles

	// Dictionary answers rift word lookups
	Dictionary rift.Dictionary

	// Players defaults to DefaultPlayers
	Players []PlayerSpec

	// TotalRounds defaults to DefaultTotalRounds
	TotalRounds int

	// VowelCost defaults to DefaultVowelCost
	VowelCost int

	// PassTurnDelay holds a passing turn on screen before it moves on.
	// Zero passes immediately.
	PassTurnDelay time.Duration

	// Rift tuning, rift.DefaultConfig when Duration is zero
	Rift rift.Config

	// Service dependencies
	Roller        random.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Notifier      notification.Service
	Messenger     messaging.Service
	ResultsRepo   results.Repository

	// Spinner is optional. Without one the caller reports the landing
	// wedge through OnSpinComplete.
	Spinner Spinner

	// Logger defaults to a no-op logger
	Logger *zerolog.Logger
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct{}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	GameID string
	State  *models.GameState
}

// SpinWheelInput contains parameters for spinning
type SpinWheelInput struct {
	// PlayerID of the acting player, empty acts for the current player
	PlayerID string
}

// SpinWheelOutput contains the result of starting a spin
type SpinWheelOutput struct {
	State *models.GameState
}

// OnSpinCompleteInput reports where the wheel stopped
type OnSpinCompleteInput struct {
	WedgeIndex int
}

// OnSpinCompleteOutput contains the wedge resolution
type OnSpinCompleteOutput struct {
	Wedge models.Wedge

	// Combo is the element that issued an effect, ElementNone if none did
	Combo models.Element

	Negated    bool
	Bankrupted bool
	TurnPassed bool
	RiftOpened bool

	// LightningLetter is the consonant uncovered by lightning, 0 if none
	LightningLetter rune

	State *models.GameState
}

// PickLetterInput contains parameters for guessing a letter
type PickLetterInput struct {
	PlayerID string
	Letter   string
}

// PickLetterOutput contains the result of a letter guess
type PickLetterOutput struct {
	Letter rune
	Count  int

	// Amount credited to the round bank
	Amount int

	// FireVowel is the vowel uncovered by a fire effect, 0 if none
	FireVowel rune

	Solved     bool
	TurnPassed bool
	State      *models.GameState
}

// BuyVowelInput contains parameters for buying a vowel
type BuyVowelInput struct {
	PlayerID string
}

// BuyVowelOutput contains the result of buying a vowel
type BuyVowelOutput struct {
	Cost  int
	State *models.GameState
}

// AttemptSolveInput contains parameters for a solve attempt
type AttemptSolveInput struct {
	PlayerID string
	Guess    string
}

// AttemptSolveOutput contains the result of a solve attempt
type AttemptSolveOutput struct {
	Correct bool

	// Banked is the round bank moved into the total bank
	Banked int

	TurnPassed bool
	State      *models.GameState
}

// PassTurnInput contains parameters for passing the turn
type PassTurnInput struct {
	PlayerID string
}

// PassTurnOutput contains the result of passing the turn
type PassTurnOutput struct {
	NextPlayerID string
	State        *models.GameState
}

// NextRoundInput contains parameters for advancing rounds
type NextRoundInput struct{}

// NextRoundOutput contains the result of advancing rounds
type NextRoundOutput struct {
	GameOver bool

	// Result is set when the game ended
	Result *models.GameResult

	State *models.GameState
}

// RestartInput contains parameters for restarting
type RestartInput struct{}

// RestartOutput contains the result of restarting
type RestartOutput struct {
	State *models.GameState
}

// StartAnagramRiftInput contains parameters for opening the rift
type StartAnagramRiftInput struct {
	PlayerID string
}

// StartAnagramRiftOutput contains the opened rift
type StartAnagramRiftOutput struct {
	Rift  *models.RiftView
	State *models.GameState
}

// SubmitRiftWordInput contains parameters for a rift word
type SubmitRiftWordInput struct {
	PlayerID string
	Word     string
}

// SubmitRiftWordOutput contains the result of a rift word
type SubmitRiftWordOutput struct {
	Word  string
	Score int
}

// EndAnagramRiftInput contains parameters for closing the rift
type EndAnagramRiftInput struct {
	PlayerID string
}

// EndAnagramRiftOutput contains the rift payout
type EndAnagramRiftOutput struct {
	Score int

	// Revealed holds consonants uncovered by a reveal payout
	Revealed []rune

	// Cash credited by a cash payout
	Cash int

	State *models.GameState
}

// AddNotificationInput contains parameters for posting a notification
type AddNotificationInput struct {
	Message  string
	Severity models.Severity
}

// AddNotificationOutput contains the posted notification
type AddNotificationOutput struct {
	Notification *models.Notification
}

// GetLeaderboardInput contains parameters for the leaderboard
type GetLeaderboardInput struct {
	Limit int
}

// GetLeaderboardOutput contains the leaderboard
type GetLeaderboardOutput struct {
	Entries []*models.ScoreEntry
}
