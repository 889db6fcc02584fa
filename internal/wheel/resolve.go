// Package wheel resolves a landed wedge against the acting player.
package wheel

import (
	"github.com/KirkDiggler/wheelrift/internal/board"
	"github.com/KirkDiggler/wheelrift/internal/common/random"
	"github.com/KirkDiggler/wheelrift/internal/effects"
	"github.com/KirkDiggler/wheelrift/internal/models"
)

// WheelError is a custom error type for resolution errors
type WheelError string

// Error implements the error interface
func (e WheelError) Error() string {
	return string(e)
}

const (
	ErrNoBoard      WheelError = "board cannot be nil"
	ErrNoRoller     WheelError = "roller cannot be nil"
	ErrBadPlayerIdx WheelError = "current player index out of range"
)

// ResolveInput carries the session state a wedge outcome acts on.
// Players, the acting player and the board are mutated in place.
type ResolveInput struct {
	Wedge        models.Wedge
	Players      []*models.Player
	CurrentIndex int
	Board        *board.Board
	Round        int
	Roller       random.Roller
}

// Resolution is what happened, for the state machine to act on
type Resolution struct {
	Wedge   models.Wedge
	Trigger *effects.Trigger

	Hazard     bool
	Negated    bool // an ice shield absorbed the hazard
	Bankrupted bool
	LostAmount int // round bank wiped by bankrupt

	// Rift hands control to the Anagram Rift; nothing else was applied
	Rift bool

	// LightningLetter is the consonant uncovered by lightning, 0 if none
	LightningLetter rune
	LightningCount  int
	Rotated         bool

	// Players and CurrentIndex after any rotation
	Players      []*models.Player
	CurrentIndex int

	// PassTurn is set for an un-negated hazard. Otherwise NextPhase is
	// await_consonant (or empty for the rift hand-off).
	PassTurn  bool
	NextPhase models.GamePhase
}

// Resolve applies a wedge outcome in strict order: combo accounting,
// hazard and shield, rift hand-off, lightning, then the next phase.
func Resolve(input *ResolveInput) (*Resolution, error) {
	if input.Board == nil {
		return nil, ErrNoBoard
	}
	if input.Roller == nil {
		return nil, ErrNoRoller
	}
	if input.CurrentIndex < 0 || input.CurrentIndex >= len(input.Players) {
		return nil, ErrBadPlayerIdx
	}

	player := input.Players[input.CurrentIndex]
	res := &Resolution{
		Wedge:        input.Wedge,
		Players:      input.Players,
		CurrentIndex: input.CurrentIndex,
	}

	// 1. combos
	res.Trigger = effects.Apply(&player.Status, input.Wedge.Element, input.Round)

	// 2-4. hazards
	res.Hazard = input.Wedge.IsHazard()
	if res.Hazard {
		if effects.ConsumeIceShield(&player.Status) {
			res.Negated = true
		} else {
			if input.Wedge.Kind == models.WedgeKindBankrupt {
				res.LostAmount = player.RoundBank
				res.Bankrupted = true
				player.RoundBank = 0
			}
			res.PassTurn = true
		}
	}

	// 5. the rift pre-empts everything but combo accounting
	if input.Wedge.IsRift() {
		// lightning never persists past the spin that issued it
		for effects.TakePendingLightning(&player.Status) {
		}
		res.Rift = true
		return res, nil
	}

	// 6. lightning
	if effects.TakePendingLightning(&player.Status) {
		consonants := input.Board.UnrevealedConsonants()
		if len(consonants) > 0 {
			letter := consonants[random.Index(input.Roller, len(consonants))]
			res.LightningLetter = letter
			res.LightningCount = input.Board.Uncover(letter)
		}
		res.Players, res.CurrentIndex = Rotate(input.Players, input.CurrentIndex)
		res.Rotated = true
	}

	// 7. next phase
	if !res.PassTurn {
		res.NextPhase = models.PhaseAwaitConsonant
	}
	return res, nil
}

// Rotate moves the acting player to the back of the turn order, keeping the
// cyclic order of everyone else. Returns the new order and the acting
// player's new index.
func Rotate(players []*models.Player, index int) ([]*models.Player, int) {
	n := len(players)
	if n == 0 || index < 0 || index >= n {
		return players, index
	}
	rotated := make([]*models.Player, 0, n)
	rotated = append(rotated, players[index+1:]...)
	rotated = append(rotated, players[:index+1]...)
	return rotated, n - 1
}
