package models

import "time"

// BoardView is a read-only copy of the puzzle board
type BoardView struct {
	Category string
	Phrase   string
	Masked   string // phrase with unrevealed letters as '_'
	Revealed []rune // distinct, in phrase order
	Guessed  []rune // in guess order
	Needed   []rune // distinct unrevealed letters, in phrase order
	Solved   bool
}

// RiftView is a read-only copy of the Anagram Rift
type RiftView struct {
	Active     bool
	Pool       []rune
	UsedWords  []string
	ScoreCount int
	EndsAt     time.Time
}

// GameState is a snapshot of the whole session. It never aliases
// canonical state, so callers may keep or modify it freely.
type GameState struct {
	GameID             string
	Phase              GamePhase
	Players            []*Player
	CurrentPlayerIndex int
	Round              int
	TotalRounds        int
	Board              *BoardView
	ActiveWedge        *Wedge
	PassPending        bool
	Rift               *RiftView
	HostLine           string

	// TurnToken changes whenever turn ownership changes (pass, round
	// change, restart). In-flight waits compare it to detect staleness.
	TurnToken uint64
}

// CurrentPlayer returns the acting player, or nil before the game starts
func (s *GameState) CurrentPlayer() *Player {
	if s == nil || s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return nil
	}
	return s.Players[s.CurrentPlayerIndex]
}
