package models

import "time"

// Standing is one player's final bank in a finished game
type Standing struct {
	PlayerID  string     `json:"player_id"`
	Name      string     `json:"name"`
	Kind      PlayerKind `json:"kind"`
	TotalBank int        `json:"total_bank"`
}

// GameResult records a finished game for the leaderboard
type GameResult struct {
	GameID     string      `json:"game_id"`
	Rounds     int         `json:"rounds"`
	FinishedAt time.Time   `json:"finished_at"`
	Standings  []*Standing `json:"standings"` // highest total first
}

// Winner returns the top standing, or nil for an empty result
func (r *GameResult) Winner() *Standing {
	if r == nil || len(r.Standings) == 0 {
		return nil
	}
	return r.Standings[0]
}

// ScoreEntry is a leaderboard row
type ScoreEntry struct {
	Name  string
	Score int
}
