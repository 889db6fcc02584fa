package game

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/wheelrift/internal/board"
	"github.com/KirkDiggler/wheelrift/internal/effects"
	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/repositories/results"
	"github.com/KirkDiggler/wheelrift/internal/services/messaging"
	"github.com/KirkDiggler/wheelrift/internal/wheel"
)

// StartGame deals the first puzzle and hands the wheel to the human
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseTitle {
		return nil, s.ignore("start", ErrInvalidPhase)
	}

	s.gameID = s.uuid.NewUUID()
	for _, p := range s.players {
		p.RoundBank = 0
		p.TotalBank = 0
		effects.Reset(&p.Status)
	}

	if err := s.beginRound(ctx, 1); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("game_id", s.gameID).
		Int("players", len(s.players)).
		Int("rounds", s.totalRounds).
		Msg("game started")

	s.broadcast()
	return &StartGameOutput{
		GameID: s.gameID,
		State:  s.snapshot(),
	}, nil
}

// SpinWheel moves to the spin phase and starts the spinner, if any.
// The spinner runs outside the lock so it may complete synchronously.
func (s *service) SpinWheel(ctx context.Context, input *SpinWheelInput) (*SpinWheelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	if err := s.canStartTurnAction(input.PlayerID); err != nil {
		err = s.ignore("spin", err)
		s.mu.Unlock()
		return nil, err
	}

	player := s.currentPlayer()
	s.activeWedge = nil
	s.spinSeq++
	seq := s.spinSeq
	s.setPhase(models.PhaseSpin)
	s.hostLine = fmt.Sprintf("%s spins the wheel!", player.Name)
	s.broadcast()

	state := s.snapshot()
	spinner := s.spinner
	wedgeCount := len(s.wedges)
	s.mu.Unlock()

	if spinner != nil {
		spinner.Spin(wedgeCount, func(index int) {
			s.completeSpin(seq, index)
		})
	}

	return &SpinWheelOutput{State: state}, nil
}

// OnSpinComplete resolves the wedge reported by the caller
func (s *service) OnSpinComplete(ctx context.Context, input *OnSpinCompleteInput) (*OnSpinCompleteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseSpin {
		return nil, s.ignore("spin_complete", ErrInvalidPhase)
	}

	return s.resolveSpin(ctx, input.WedgeIndex)
}

// completeSpin is the Spinner callback. A callback from an older spin is dropped.
func (s *service) completeSpin(seq uint64, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.spinSeq || s.phase != models.PhaseSpin {
		s.log.Debug().Uint64("spin", seq).Msg("stale spin completion ignored")
		return
	}

	if _, err := s.resolveSpin(context.Background(), index); err != nil {
		s.log.Error().Err(err).Int("wedge", index).Msg("failed to resolve spin")
	}
}

// resolveSpin must be called with mu held in the spin phase
func (s *service) resolveSpin(ctx context.Context, index int) (*OnSpinCompleteOutput, error) {
	if index < 0 || index >= len(s.wedges) {
		return nil, s.ignore("spin_complete", ErrBadWedgeIndex)
	}

	wedge := s.wedges[index]
	player := s.currentPlayer()

	res, err := wheel.Resolve(&wheel.ResolveInput{
		Wedge:        wedge,
		Players:      s.players,
		CurrentIndex: s.current,
		Board:        s.board,
		Round:        s.round,
		Roller:       s.roller,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wedge: %w", err)
	}
	s.players, s.current = res.Players, res.CurrentIndex

	s.log.Debug().
		Str("player", player.Name).
		Str("wedge", wedge.Label).
		Str("element", string(wedge.Element)).
		Int("combo", player.Status.ComboCount).
		Msg("wedge resolved")

	out := &OnSpinCompleteOutput{
		Wedge:           wedge,
		Combo:           models.ElementNone,
		Negated:         res.Negated,
		Bankrupted:      res.Bankrupted,
		LightningLetter: res.LightningLetter,
	}

	if res.Trigger != nil {
		out.Combo = res.Trigger.Element
		s.announceCombo(ctx, player, res.Trigger)
	}
	if res.Negated {
		s.notify(models.SeveritySuccess, "%s's ice shield absorbs the %s!", player.Name, wedge.Label)
	}
	if res.Bankrupted && res.LostAmount > 0 {
		s.notify(models.SeverityWarning, "%s loses $%d", player.Name, res.LostAmount)
	}

	if res.Rift {
		if err := s.openRift(ctx); err != nil {
			s.notifier.Add(err.Error(), models.SeverityWarning)
			s.sayRift(ctx, player, messaging.RiftStageRejected, 0)
			s.setPhase(models.PhaseAwaitAction)
		} else {
			out.RiftOpened = true
		}
		s.broadcast()
		out.State = s.snapshot()
		return out, nil
	}

	if res.LightningLetter != 0 {
		s.notify(models.SeverityInfo, "Lightning strikes! %d %c revealed", res.LightningCount, res.LightningLetter)
	}
	if res.Rotated {
		s.notify(models.SeverityInfo, "%s moves to the back of the turn order", player.Name)
	}

	s.activeWedge = &wedge
	switch {
	case res.PassTurn:
		s.sayWedge(ctx, player, wedge, false)
		s.passTurn(ctx, messaging.TurnReasonHazard)
		out.TurnPassed = true
	case s.board.IsSolved():
		// lightning took the last hidden letter
		s.endRound(ctx, player)
	default:
		s.sayWedge(ctx, player, wedge, res.Negated)
		s.setPhase(models.PhaseAwaitConsonant)
	}

	s.broadcast()
	out.State = s.snapshot()
	return out, nil
}

// PickLetter guesses a consonant after a spin or a vowel after buying one
func (s *service) PickLetter(ctx context.Context, input *PickLetterInput) (*PickLetterOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseAwaitConsonant && s.phase != models.PhaseBuyVowel {
		return nil, s.ignore("pick_letter", ErrInvalidPhase)
	}
	if err := s.checkTurn(input.PlayerID); err != nil {
		return nil, s.ignore("pick_letter", err)
	}

	letter, ok := board.ParseLetter(input.Letter)
	if !ok {
		return nil, s.reject("pick_letter", ErrInvalidLetter)
	}
	vowel := board.IsVowel(letter)
	if s.phase == models.PhaseAwaitConsonant && vowel {
		return nil, s.reject("pick_letter", ErrNotConsonant)
	}
	if s.phase == models.PhaseBuyVowel && !vowel {
		return nil, s.reject("pick_letter", ErrNotVowel)
	}
	if s.board.IsUsed(letter) {
		return nil, s.reject("pick_letter", ErrLetterUsed)
	}

	player := s.currentPlayer()
	count := s.board.Reveal(letter)
	out := &PickLetterOutput{
		Letter: letter,
		Count:  count,
	}

	if count == 0 {
		s.sayLetter(ctx, player, letter, 0, 0)
		s.passTurn(ctx, messaging.TurnReasonMiss)
		out.TurnPassed = true
		s.broadcast()
		out.State = s.snapshot()
		return out, nil
	}

	if !vowel {
		if s.activeWedge != nil {
			out.Amount = s.activeWedge.Value * count
		}
		player.RoundBank += out.Amount

		if effects.TakeFire(&player.Status, s.round) {
			if v, ok := s.board.FirstUnrevealedVowel(); ok {
				n := s.board.Uncover(v)
				out.FireVowel = v
				s.notify(models.SeveritySuccess, "Fire reveals %d %c!", n, v)
			}
		}
	}

	s.sayLetter(ctx, player, letter, count, out.Amount)

	if s.board.IsSolved() {
		s.endRound(ctx, player)
		out.Solved = true
	} else {
		s.activeWedge = nil
		s.setPhase(models.PhaseAwaitAction)
	}

	s.broadcast()
	out.State = s.snapshot()
	return out, nil
}

// BuyVowel deducts the vowel cost and waits for a vowel pick
func (s *service) BuyVowel(ctx context.Context, input *BuyVowelInput) (*BuyVowelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.canStartTurnAction(input.PlayerID); err != nil {
		return nil, s.ignore("buy_vowel", err)
	}

	player := s.currentPlayer()
	if !s.board.HasUnguessedVowel() {
		return nil, s.reject("buy_vowel", ErrNoVowelsLeft)
	}
	if player.RoundBank < s.vowelCost {
		return nil, s.reject("buy_vowel", ErrInsufficientFunds)
	}

	player.RoundBank -= s.vowelCost
	s.activeWedge = nil
	s.setPhase(models.PhaseBuyVowel)
	s.hostLine = fmt.Sprintf("%s buys a vowel.", player.Name)

	s.broadcast()
	return &BuyVowelOutput{
		Cost:  s.vowelCost,
		State: s.snapshot(),
	}, nil
}

// AttemptSolve checks a full phrase guess
func (s *service) AttemptSolve(ctx context.Context, input *AttemptSolveInput) (*AttemptSolveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.IsActive() {
		return nil, s.ignore("solve", ErrInvalidPhase)
	}
	if s.passPending {
		return nil, s.ignore("solve", ErrPassPending)
	}
	if err := s.checkTurn(input.PlayerID); err != nil {
		return nil, s.ignore("solve", err)
	}

	guess := strings.TrimSpace(input.Guess)
	if guess == "" {
		return nil, s.reject("solve", ErrEmptyGuess)
	}

	player := s.currentPlayer()
	out := &AttemptSolveOutput{}

	if s.board.MatchesSolution(guess) {
		out.Correct = true
		out.Banked = s.endRound(ctx, player)
	} else {
		s.saySolve(ctx, player, false, 0)
		s.notify(models.SeverityWarning, "%q is not the answer", strings.ToUpper(guess))
		s.passTurn(ctx, messaging.TurnReasonWrongSolve)
		out.TurnPassed = true
	}

	s.broadcast()
	out.State = s.snapshot()
	return out, nil
}

// PassTurn hands the wheel on. A pending pass runs at once.
func (s *service) PassTurn(ctx context.Context, input *PassTurnInput) (*PassTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.IsActive() {
		return nil, s.ignore("pass", ErrInvalidPhase)
	}
	if err := s.checkTurn(input.PlayerID); err != nil {
		return nil, s.ignore("pass", err)
	}

	reason := messaging.TurnReasonPass
	if s.passPending && s.passReason != "" {
		reason = s.passReason
	}
	s.advanceTurn(ctx, reason)

	s.broadcast()
	return &PassTurnOutput{
		NextPlayerID: s.currentPlayer().ID,
		State:        s.snapshot(),
	}, nil
}

// NextRound deals the next puzzle, or ends the game after the last round
func (s *service) NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error) {
	s.mu.Lock()

	if s.phase != models.PhaseRoundEnd {
		err := s.ignore("next_round", ErrInvalidPhase)
		s.mu.Unlock()
		return nil, err
	}

	if s.round >= s.totalRounds {
		result := s.endGame(ctx)
		s.broadcast()
		state := s.snapshot()
		s.mu.Unlock()

		s.saveResult(ctx, result)
		return &NextRoundOutput{
			GameOver: true,
			Result:   result,
			State:    state,
		}, nil
	}

	if err := s.beginRound(ctx, s.round+1); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.broadcast()
	state := s.snapshot()
	s.mu.Unlock()

	return &NextRoundOutput{State: state}, nil
}

// Restart drops the session back to the title with fresh players
func (s *service) Restart(ctx context.Context, input *RestartInput) (*RestartOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == models.PhaseTitle {
		return nil, s.ignore("restart", ErrInvalidPhase)
	}

	s.stopPassTimer()
	s.stopRift()
	s.rift = nil
	s.players = s.newPlayers()
	s.current = 0
	s.round = 0
	s.board = nil
	s.activeWedge = nil
	s.gameID = ""
	s.hostLine = ""
	s.turnToken++
	s.setPhase(models.PhaseTitle)
	s.notifier.Clear()

	s.log.Info().Msg("game restarted")

	s.broadcast()
	return &RestartOutput{State: s.snapshot()}, nil
}

// beginRound deals a puzzle. Round banks reset; fire effects from earlier
// rounds expire while ice shields and combos carry over.
func (s *service) beginRound(ctx context.Context, round int) error {
	s.stopPassTimer()
	s.stopRift()
	s.rift = nil

	puzzle := s.puzzles.Random(s.roller)
	b, err := board.New(puzzle.Category, puzzle.Phrase)
	if err != nil {
		return fmt.Errorf("failed to deal puzzle: %w", err)
	}

	s.board = b
	s.round = round
	s.activeWedge = nil
	for _, p := range s.players {
		p.RoundBank = 0
		effects.ExpireFire(&p.Status, round)
	}

	s.current = s.firstHuman()
	s.turnToken++
	s.setPhase(s.turnPhase())
	s.sayTurn(ctx, messaging.TurnReasonStart, nil)
	s.notify(models.SeverityInfo, "Round %d of %d: %s", round, s.totalRounds, b.Category())

	return nil
}

func (s *service) firstHuman() int {
	for i, p := range s.players {
		if !p.IsAI() {
			return i
		}
	}
	return 0
}

// passTurn ends the current turn, now or after the pass delay
func (s *service) passTurn(ctx context.Context, reason messaging.TurnReason) {
	if s.passDelay <= 0 {
		s.advanceTurn(ctx, reason)
		return
	}

	s.passPending = true
	s.passReason = reason
	s.setPhase(models.PhaseAwaitAction)

	token := s.turnToken
	s.passTimer = s.clock.AfterFunc(s.passDelay, func() {
		s.deferredPass(token)
	})
}

// deferredPass runs a pending pass unless the turn already moved on
func (s *service) deferredPass(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.turnToken || !s.passPending {
		s.log.Debug().Uint64("token", token).Msg("stale pass ignored")
		return
	}

	s.advanceTurn(context.Background(), s.passReason)
	s.broadcast()
}

func (s *service) advanceTurn(ctx context.Context, reason messaging.TurnReason) {
	s.stopPassTimer()

	departing := s.currentPlayer()
	if departing != nil {
		effects.ExpireAllFire(&departing.Status)
	}

	s.current = (s.current + 1) % len(s.players)
	s.activeWedge = nil
	s.turnToken++
	s.setPhase(s.turnPhase())
	s.sayTurn(ctx, reason, departing)
}

// endRound banks the solver's round money and reveals the phrase.
// Returns the amount banked.
func (s *service) endRound(ctx context.Context, solver *models.Player) int {
	s.stopPassTimer()
	s.board.RevealAll()

	banked := solver.RoundBank
	solver.TotalBank += banked
	solver.RoundBank = 0

	s.activeWedge = nil
	s.turnToken++
	s.setPhase(models.PhaseRoundEnd)
	s.saySolve(ctx, solver, true, banked)
	s.notify(models.SeveritySuccess, "%s solved it: %s", solver.Name, s.board.Phrase())

	s.log.Info().
		Str("game_id", s.gameID).
		Int("round", s.round).
		Str("solver", solver.Name).
		Int("banked", banked).
		Msg("round solved")

	return banked
}

func (s *service) endGame(ctx context.Context) *models.GameResult {
	s.stopPassTimer()
	s.stopRift()
	s.turnToken++
	s.setPhase(models.PhaseGameEnd)

	standings := make([]*models.Standing, 0, len(s.players))
	for _, p := range s.players {
		standings = append(standings, &models.Standing{
			PlayerID:  p.ID,
			Name:      p.Name,
			Kind:      p.Kind,
			TotalBank: p.TotalBank,
		})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalBank > standings[j].TotalBank
	})

	result := &models.GameResult{
		GameID:     s.gameID,
		Rounds:     s.round,
		FinishedAt: s.clock.Now(),
		Standings:  standings,
	}

	winner := result.Winner()
	s.sayGameEnd(ctx, winner)
	s.log.Info().
		Str("game_id", s.gameID).
		Str("winner", winner.Name).
		Int("total", winner.TotalBank).
		Msg("game over")

	return result
}

// saveResult records the game. Called without mu held.
func (s *service) saveResult(ctx context.Context, result *models.GameResult) {
	err := s.resultsRepo.SaveResult(ctx, &results.SaveResultInput{Result: result})
	if err != nil {
		s.log.Error().Err(err).Str("game_id", result.GameID).Msg("failed to save result")
		s.notifier.Add("Could not record this game on the leaderboard", models.SeverityWarning)
	}
}
