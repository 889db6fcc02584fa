package game

import (
	"context"

	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/rift"
	"github.com/KirkDiggler/wheelrift/internal/services/messaging"
)

// StartAnagramRift opens the rift for the current player
func (s *service) StartAnagramRift(ctx context.Context, input *StartAnagramRiftInput) (*StartAnagramRiftOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.canStartTurnAction(input.PlayerID); err != nil {
		return nil, s.ignore("start_rift", err)
	}

	if err := s.openRift(ctx); err != nil {
		return nil, s.reject("start_rift", err)
	}

	s.broadcast()
	return &StartAnagramRiftOutput{
		Rift:  s.rift.View(),
		State: s.snapshot(),
	}, nil
}

// SubmitRiftWord scores a word against the rift pool
func (s *service) SubmitRiftWord(ctx context.Context, input *SubmitRiftWordInput) (*SubmitRiftWordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.riftOpen() {
		return nil, s.reject("submit_word", rift.ErrInactive)
	}
	if err := s.checkTurn(input.PlayerID); err != nil {
		return nil, s.ignore("submit_word", err)
	}

	word, err := s.rift.Submit(input.Word, s.dictionary)
	if err != nil {
		return nil, s.reject("submit_word", err)
	}

	score := s.rift.Score()
	s.notify(models.SeveritySuccess, "%s! Rift score %d", word, score)

	s.broadcast()
	return &SubmitRiftWordOutput{
		Word:  word,
		Score: score,
	}, nil
}

// EndAnagramRift closes the rift early and pays out
func (s *service) EndAnagramRift(ctx context.Context, input *EndAnagramRiftInput) (*EndAnagramRiftOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.riftOpen() {
		return nil, s.ignore("end_rift", rift.ErrInactive)
	}
	if err := s.checkTurn(input.PlayerID); err != nil {
		return nil, s.ignore("end_rift", err)
	}

	out := s.closeRift(ctx)

	s.broadcast()
	out.State = s.snapshot()
	return out, nil
}

func (s *service) riftOpen() bool {
	return s.phase == models.PhaseAnagramRift && s.rift != nil && s.rift.Active()
}

// openRift starts a rift on the revealed letters and arms its timeout.
// On error nothing changes.
func (s *service) openRift(ctx context.Context) error {
	r, err := rift.Start(s.board.RevealedLetters(), s.riftConfig, s.clock.Now())
	if err != nil {
		return err
	}

	s.stopRift()
	s.rift = r
	gen := s.riftGen
	s.riftTimer = s.clock.AfterFunc(s.riftConfig.Duration, func() {
		s.riftTimeout(gen)
	})

	player := s.currentPlayer()
	s.activeWedge = nil
	s.setPhase(models.PhaseAnagramRift)
	s.sayRift(ctx, player, messaging.RiftStageOpen, 0)
	s.notify(models.SeverityInfo, "The Anagram Rift is open for %d seconds", int(s.riftConfig.Duration.Seconds()))

	s.log.Debug().
		Str("player", player.Name).
		Str("pool", string(r.View().Pool)).
		Msg("rift opened")

	return nil
}

// riftTimeout is the timer callback armed by openRift
func (s *service) riftTimeout(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.riftGen || !s.riftOpen() {
		s.log.Debug().Uint64("gen", gen).Msg("stale rift timeout ignored")
		return
	}

	s.riftTimer = nil
	s.closeRift(context.Background())
	s.broadcast()
}

// closeRift deactivates the open rift, pays out and returns control to the
// player, or ends the round when the payout solved the board
func (s *service) closeRift(ctx context.Context) *EndAnagramRiftOutput {
	if s.riftTimer != nil {
		s.riftTimer.Stop()
		s.riftTimer = nil
	}
	s.rift.End()

	player := s.currentPlayer()
	score := s.rift.Score()
	out := &EndAnagramRiftOutput{Score: score}

	switch s.riftConfig.Payout {
	case rift.PayoutReveal:
		out.Revealed = rift.RevealPayout(s.board, score)
	case rift.PayoutCash:
		out.Cash = score * s.riftConfig.CashPerWord
		player.RoundBank += out.Cash
	}

	s.notify(models.SeverityInfo, "The rift closes with a score of %d", score)
	if len(out.Revealed) > 0 {
		s.notify(models.SeveritySuccess, "The rift reveals %s", string(out.Revealed))
	}
	if out.Cash > 0 {
		s.notify(models.SeveritySuccess, "The rift pays %s $%d", player.Name, out.Cash)
	}
	s.sayRift(ctx, player, messaging.RiftStageClose, score)

	s.log.Debug().
		Str("player", player.Name).
		Int("score", score).
		Msg("rift closed")

	if s.board.IsSolved() {
		s.endRound(ctx, player)
	} else {
		s.setPhase(models.PhaseAwaitAction)
	}

	return out
}
