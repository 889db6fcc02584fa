package results

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/wheelrift/internal/repositories/results Repository

import "context"

// Repository defines the interface for finished game persistence
type Repository interface {
	// SaveResult records a finished game and updates best totals
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetRecentResults returns finished games, newest first
	GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error)

	// GetTopScores returns the best total per player name, highest first
	GetTopScores(ctx context.Context, input *GetTopScoresInput) (*GetTopScoresOutput, error)
}

// DefaultLimit is used when an input asks for zero rows
const DefaultLimit = 10

// MaxRecentResults caps the stored result history
const MaxRecentResults = 100

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// Compile-time checks
var (
	_ Repository = (*redisRepository)(nil)
	_ Repository = (*memoryRepository)(nil)
)

