package models

// GamePhase is the current discrete state of the turn machine
type GamePhase string

const (
	PhaseTitle          GamePhase = "title"
	PhaseTurnHuman      GamePhase = "turn_human"
	PhaseTurnAI         GamePhase = "turn_ai"
	PhaseSpin           GamePhase = "spin"
	PhaseAwaitAction    GamePhase = "await_action"
	PhaseAwaitConsonant GamePhase = "await_consonant"
	PhaseBuyVowel       GamePhase = "buy_vowel"
	PhaseAnagramRift    GamePhase = "anagram_rift"
	PhaseRoundEnd       GamePhase = "round_end"
	PhaseGameEnd        GamePhase = "game_end"
)

// IsTurnStart reports whether the current player may spin, buy or solve
func (p GamePhase) IsTurnStart() bool {
	return p == PhaseTurnHuman || p == PhaseTurnAI || p == PhaseAwaitAction
}

// IsActive reports whether a round is being played and a solve may be attempted
func (p GamePhase) IsActive() bool {
	switch p {
	case PhaseTurnHuman, PhaseTurnAI, PhaseAwaitAction, PhaseAwaitConsonant, PhaseBuyVowel:
		return true
	}
	return false
}

// IsOver reports whether the round or game has finished
func (p GamePhase) IsOver() bool {
	return p == PhaseRoundEnd || p == PhaseGameEnd || p == PhaseTitle
}
