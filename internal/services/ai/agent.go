// Package ai drives the computer seats through the same action surface the
// human front end uses.
package ai

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wheelrift/internal/board"
	"github.com/KirkDiggler/wheelrift/internal/common/clock"
	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/services/game"
)

const (
	// DefaultThinkDelay paces each decision step
	DefaultThinkDelay = 900 * time.Millisecond

	// DefaultSpinTimeout bounds the wait for a spin to land
	DefaultSpinTimeout = 10 * time.Second

	// solveThreshold is the most hidden letters the AI will solve with
	solveThreshold = 2
)

// ConsonantOrder is the fixed frequency order consonants are called in
const ConsonantOrder = "RSTLNCDMHPGWBYFKVJXZ"

// VowelOrder is the order vowels are bought in
const VowelOrder = "AEIOU"

// Config holds configuration for the agent
type Config struct {
	Game  game.Service
	Clock clock.Clock

	ThinkDelay  time.Duration
	SpinTimeout time.Duration

	// VowelCost must match the game's vowel price
	VowelCost int

	Logger *zerolog.Logger
}

// Agent plays every AI seat, one decision task at a time
type Agent struct {
	game        game.Service
	clock       clock.Clock
	thinkDelay  time.Duration
	spinTimeout time.Duration
	vowelCost   int
	log         zerolog.Logger
}

// turn identifies the turn a task was started for
type turn struct {
	token    uint64
	playerID string
}

// New creates an agent
func New(cfg *Config) (*Agent, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Game == nil {
		return nil, errors.New("game service cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	thinkDelay := cfg.ThinkDelay
	if thinkDelay < 0 {
		thinkDelay = 0
	} else if thinkDelay == 0 {
		thinkDelay = DefaultThinkDelay
	}

	spinTimeout := cfg.SpinTimeout
	if spinTimeout <= 0 {
		spinTimeout = DefaultSpinTimeout
	}

	vowelCost := cfg.VowelCost
	if vowelCost <= 0 {
		vowelCost = game.DefaultVowelCost
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("component", "ai").Logger()
	}

	return &Agent{
		game:        cfg.Game,
		clock:       clk,
		thinkDelay:  thinkDelay,
		spinTimeout: spinTimeout,
		vowelCost:   vowelCost,
		log:         log,
	}, nil
}

// Run plays AI turns until ctx is cancelled. It wakes on every state
// change and re-reads the state each time.
func (a *Agent) Run(ctx context.Context) {
	for {
		changed := a.game.Watch()
		state := a.game.GetState()

		if needsDecision(state) {
			a.takeTurn(ctx, state)
		}

		select {
		case <-ctx.Done():
			return
		case <-changed:
		}
	}
}

func needsDecision(state *models.GameState) bool {
	player := state.CurrentPlayer()
	if player == nil || !player.IsAI() || state.PassPending || state.Board == nil {
		return false
	}
	switch state.Phase {
	case models.PhaseTurnAI, models.PhaseAwaitAction, models.PhaseAwaitConsonant,
		models.PhaseBuyVowel, models.PhaseAnagramRift:
		return true
	}
	return false
}

// owns reports whether the state still belongs to the turn
func (t turn) owns(state *models.GameState) bool {
	player := state.CurrentPlayer()
	return player != nil &&
		player.ID == t.playerID &&
		state.TurnToken == t.token &&
		!state.PassPending &&
		!state.Phase.IsOver()
}

// think waits the thinking delay and returns the fresh state, or nil when
// the context ended or the turn moved on
func (a *Agent) think(ctx context.Context, t turn) *models.GameState {
	select {
	case <-ctx.Done():
		return nil
	case <-a.clock.After(a.thinkDelay):
	}

	state := a.game.GetState()
	if !t.owns(state) {
		a.log.Debug().Str("player", t.playerID).Msg("turn moved on while thinking")
		return nil
	}
	return state
}

func (a *Agent) takeTurn(ctx context.Context, state *models.GameState) {
	t := turn{
		token:    state.TurnToken,
		playerID: state.CurrentPlayer().ID,
	}

	state = a.think(ctx, t)
	if state == nil {
		return
	}

	switch state.Phase {
	case models.PhaseTurnAI, models.PhaseAwaitAction:
		a.decide(ctx, t, state)
	case models.PhaseAwaitConsonant:
		a.pickConsonant(ctx, t, state)
	case models.PhaseBuyVowel:
		a.pickVowel(ctx, t, state)
	case models.PhaseAnagramRift:
		a.act("end_rift", func() error {
			_, err := a.game.EndAnagramRift(ctx, &game.EndAnagramRiftInput{PlayerID: t.playerID})
			return err
		})
	}
}

// decide runs the turn-start policy: solve when close, buy a needed vowel
// when affordable, otherwise spin
func (a *Agent) decide(ctx context.Context, t turn, state *models.GameState) {
	needed := state.Board.Needed

	if len(needed) <= solveThreshold {
		a.act("solve", func() error {
			_, err := a.game.AttemptSolve(ctx, &game.AttemptSolveInput{
				PlayerID: t.playerID,
				Guess:    state.Board.Phrase,
			})
			return err
		})
		return
	}

	if a.canBuyVowel(state) {
		ok := a.act("buy_vowel", func() error {
			_, err := a.game.BuyVowel(ctx, &game.BuyVowelInput{PlayerID: t.playerID})
			return err
		})
		if !ok {
			return
		}
		if state = a.think(ctx, t); state == nil {
			return
		}
		a.pickVowel(ctx, t, state)
		return
	}

	ok := a.act("spin", func() error {
		_, err := a.game.SpinWheel(ctx, &game.SpinWheelInput{PlayerID: t.playerID})
		return err
	})
	if !ok {
		return
	}

	if state = a.awaitConsonantPhase(ctx, t); state == nil {
		return
	}
	a.pickConsonant(ctx, t, state)
}

func (a *Agent) canBuyVowel(state *models.GameState) bool {
	if state.Phase != models.PhaseTurnAI && state.Phase != models.PhaseAwaitAction {
		return false
	}
	if state.CurrentPlayer().RoundBank < a.vowelCost {
		return false
	}
	for _, r := range state.Board.Needed {
		if board.IsVowel(r) {
			return true
		}
	}
	return false
}

// awaitConsonantPhase waits for the spin to land on a consonant phase.
// Any other outcome, a turn change or the timeout returns nil.
func (a *Agent) awaitConsonantPhase(ctx context.Context, t turn) *models.GameState {
	timeout := a.clock.After(a.spinTimeout)
	for {
		changed := a.game.Watch()
		state := a.game.GetState()
		if !t.owns(state) {
			return nil
		}

		switch state.Phase {
		case models.PhaseAwaitConsonant:
			return state
		case models.PhaseSpin:
		default:
			// rift or another outcome; the run loop picks it up
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-timeout:
			a.log.Warn().Str("player", t.playerID).Msg("spin did not land in time")
			return nil
		case <-changed:
		}
	}
}

func (a *Agent) pickConsonant(ctx context.Context, t turn, state *models.GameState) {
	if state = a.think(ctx, t); state == nil {
		return
	}
	if state.Phase != models.PhaseAwaitConsonant {
		return
	}

	letter, ok := firstUnused(ConsonantOrder, state.Board)
	if !ok {
		a.act("pass", func() error {
			_, err := a.game.PassTurn(ctx, &game.PassTurnInput{PlayerID: t.playerID})
			return err
		})
		return
	}

	a.act("pick_consonant", func() error {
		_, err := a.game.PickLetter(ctx, &game.PickLetterInput{
			PlayerID: t.playerID,
			Letter:   string(letter),
		})
		return err
	})
}

func (a *Agent) pickVowel(ctx context.Context, t turn, state *models.GameState) {
	if state.Phase != models.PhaseBuyVowel {
		return
	}

	letter, ok := firstNeeded(VowelOrder, state.Board)
	if !ok {
		letter, ok = firstUnused(VowelOrder, state.Board)
	}
	if !ok {
		return
	}

	a.act("pick_vowel", func() error {
		_, err := a.game.PickLetter(ctx, &game.PickLetterInput{
			PlayerID: t.playerID,
			Letter:   string(letter),
		})
		return err
	})
}

// act runs an action. Rejections are expected races and only logged.
func (a *Agent) act(action string, fn func() error) bool {
	if err := fn(); err != nil {
		a.log.Debug().Err(err).Str("action", action).Msg("ai action rejected")
		return false
	}
	return true
}

func firstNeeded(order string, view *models.BoardView) (rune, bool) {
	for _, r := range order {
		if containsRune(view.Needed, r) {
			return r, true
		}
	}
	return 0, false
}

func firstUnused(order string, view *models.BoardView) (rune, bool) {
	for _, r := range order {
		if !containsRune(view.Guessed, r) && !containsRune(view.Revealed, r) {
			return r, true
		}
	}
	return 0, false
}

func containsRune(list []rune, r rune) bool {
	for _, c := range list {
		if c == r {
			return true
		}
	}
	return false
}
