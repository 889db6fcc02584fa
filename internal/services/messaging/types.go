package messaging

import (
	"github.com/KirkDiggler/wheelrift/internal/common/random"
	"github.com/KirkDiggler/wheelrift/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// TurnReason explains why the turn changed hands
type TurnReason string

const (
	TurnReasonStart      TurnReason = "start"
	TurnReasonMiss       TurnReason = "miss"
	TurnReasonHazard     TurnReason = "hazard"
	TurnReasonWrongSolve TurnReason = "wrong_solve"
	TurnReasonPass       TurnReason = "pass"
)

// RiftStage is the moment of the rift being announced
type RiftStage string

const (
	RiftStageOpen     RiftStage = "open"
	RiftStageClose    RiftStage = "close"
	RiftStageRejected RiftStage = "rejected"
)

// Config contains configuration for the messaging service
type Config struct {
	// Roller picks among candidate lines
	Roller random.Roller
}

// GetWedgeMessageInput contains parameters for a wedge announcement
type GetWedgeMessageInput struct {
	PlayerName string
	Wedge      models.Wedge

	// Negated is set when an ice shield absorbed a hazard
	Negated bool
}

// GetWedgeMessageOutput contains the wedge announcement
type GetWedgeMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetComboMessageInput contains parameters for a combo announcement
type GetComboMessageInput struct {
	PlayerName string
	Element    models.Element
	ComboCount int
}

// GetComboMessageOutput contains the combo announcement
type GetComboMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetLetterResultMessageInput contains parameters for reacting to a letter
type GetLetterResultMessageInput struct {
	PlayerName string
	Letter     rune
	Count      int

	// Amount credited, zero for vowels and misses
	Amount int
}

// GetLetterResultMessageOutput contains the letter reaction
type GetLetterResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetTurnMessageInput contains parameters for a turn announcement
type GetTurnMessageInput struct {
	// PlayerName is the player now up
	PlayerName string

	// PreviousName is the player whose turn ended, empty on start
	PreviousName string

	Reason TurnReason
}

// GetTurnMessageOutput contains the turn announcement
type GetTurnMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetSolveMessageInput contains parameters for reacting to a solve attempt
type GetSolveMessageInput struct {
	PlayerName string
	Correct    bool

	// Amount banked by a correct solve
	Amount int
}

// GetSolveMessageOutput contains the solve reaction
type GetSolveMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRiftMessageInput contains parameters for a rift announcement
type GetRiftMessageInput struct {
	PlayerName string
	Stage      RiftStage
	Score      int
}

// GetRiftMessageOutput contains the rift announcement
type GetRiftMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameEndMessageInput contains parameters for the final line
type GetGameEndMessageInput struct {
	WinnerName string
	Amount     int
}

// GetGameEndMessageOutput contains the final line
type GetGameEndMessageOutput struct {
	Message string
	Tone    MessageTone
}
