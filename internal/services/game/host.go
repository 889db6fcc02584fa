package game

import (
	"context"

	"github.com/KirkDiggler/wheelrift/internal/effects"
	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/services/messaging"
)

// Host lines are flavour. A messaging failure is logged and the previous
// line stays up.

func (s *service) sayWedge(ctx context.Context, player *models.Player, wedge models.Wedge, negated bool) {
	out, err := s.messenger.GetWedgeMessage(ctx, &messaging.GetWedgeMessageInput{
		PlayerName: player.Name,
		Wedge:      wedge,
		Negated:    negated,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to get wedge message")
		return
	}
	s.hostLine = out.Message
}

// announceCombo posts the combo line as a notification so the wedge line
// can take the host bubble
func (s *service) announceCombo(ctx context.Context, player *models.Player, trigger *effects.Trigger) {
	out, err := s.messenger.GetComboMessage(ctx, &messaging.GetComboMessageInput{
		PlayerName: player.Name,
		Element:    trigger.Element,
		ComboCount: trigger.ComboCount,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to get combo message")
		return
	}
	s.notifier.Add(out.Message, models.SeveritySuccess)
}

func (s *service) sayLetter(ctx context.Context, player *models.Player, letter rune, count, amount int) {
	out, err := s.messenger.GetLetterResultMessage(ctx, &messaging.GetLetterResultMessageInput{
		PlayerName: player.Name,
		Letter:     letter,
		Count:      count,
		Amount:     amount,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to get letter message")
		return
	}
	s.hostLine = out.Message
}

func (s *service) sayTurn(ctx context.Context, reason messaging.TurnReason, previous *models.Player) {
	player := s.currentPlayer()
	if player == nil {
		return
	}
	input := &messaging.GetTurnMessageInput{
		PlayerName: player.Name,
		Reason:     reason,
	}
	if previous != nil {
		input.PreviousName = previous.Name
	}
	out, err := s.messenger.GetTurnMessage(ctx, input)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to get turn message")
		return
	}
	s.hostLine = out.Message
}

func (s *service) saySolve(ctx context.Context, player *models.Player, correct bool, amount int) {
	out, err := s.messenger.GetSolveMessage(ctx, &messaging.GetSolveMessageInput{
		PlayerName: player.Name,
		Correct:    correct,
		Amount:     amount,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to get solve message")
		return
	}
	s.hostLine = out.Message
}

func (s *service) sayRift(ctx context.Context, player *models.Player, stage messaging.RiftStage, score int) {
	out, err := s.messenger.GetRiftMessage(ctx, &messaging.GetRiftMessageInput{
		PlayerName: player.Name,
		Stage:      stage,
		Score:      score,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to get rift message")
		return
	}
	s.hostLine = out.Message
}

func (s *service) sayGameEnd(ctx context.Context, winner *models.Standing) {
	if winner == nil {
		return
	}
	out, err := s.messenger.GetGameEndMessage(ctx, &messaging.GetGameEndMessageInput{
		WinnerName: winner.Name,
		Amount:     winner.TotalBank,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to get game end message")
		return
	}
	s.hostLine = out.Message
}
