package results

import "github.com/KirkDiggler/wheelrift/internal/models"

// SaveResultInput contains parameters for recording a game
type SaveResultInput struct {
	Result *models.GameResult
}

// GetRecentResultsInput contains parameters for listing games
type GetRecentResultsInput struct {
	Limit int
}

// GetRecentResultsOutput contains the listed games
type GetRecentResultsOutput struct {
	Results []*models.GameResult
}

// GetTopScoresInput contains parameters for the leaderboard
type GetTopScoresInput struct {
	Limit int
}

// GetTopScoresOutput contains the leaderboard rows
type GetTopScoresOutput struct {
	Entries []*models.ScoreEntry
}
