package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wheelrift/internal/services/messaging Service

import "context"

// Service produces the host's dialogue lines
type Service interface {
	// GetWedgeMessage announces where the wheel landed
	GetWedgeMessage(ctx context.Context, input *GetWedgeMessageInput) (*GetWedgeMessageOutput, error)

	// GetComboMessage announces an elemental combo
	GetComboMessage(ctx context.Context, input *GetComboMessageInput) (*GetComboMessageOutput, error)

	// GetLetterResultMessage reacts to a letter pick
	GetLetterResultMessage(ctx context.Context, input *GetLetterResultMessageInput) (*GetLetterResultMessageOutput, error)

	// GetTurnMessage announces whose turn it is and why
	GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error)

	// GetSolveMessage reacts to a solve attempt
	GetSolveMessage(ctx context.Context, input *GetSolveMessageInput) (*GetSolveMessageOutput, error)

	// GetRiftMessage announces the rift opening or closing
	GetRiftMessage(ctx context.Context, input *GetRiftMessageInput) (*GetRiftMessageOutput, error)

	// GetGameEndMessage crowns the winner
	GetGameEndMessage(ctx context.Context, input *GetGameEndMessageInput) (*GetGameEndMessageOutput, error)
}
