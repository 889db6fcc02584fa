package game

import (
	"context"
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wheelrift/internal/effects"
	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/repositories/results"
)

func (s *GameServiceTestSuite) TestCashConsonantCreditsValueTimesCount() {
	s.start()

	out := s.land(wedgeFire500)
	s.Equal(models.PhaseAwaitConsonant, out.State.Phase)
	s.Equal("$500", out.State.ActiveWedge.Label)

	pick := s.pick("t")
	s.Equal('T', pick.Letter)
	s.Equal(3, pick.Count)
	s.Equal(1500, pick.Amount)
	s.Equal(1500, pick.State.Players[0].RoundBank)
	s.Equal(models.PhaseAwaitAction, pick.State.Phase)
	s.Nil(pick.State.ActiveWedge)
	s.Equal("__TT__ T___", pick.State.Board.Masked)
}

func (s *GameServiceTestSuite) TestBankruptWipesRoundBankAndPasses() {
	start := s.start()
	s.land(wedgeFire500)
	s.pick("T")

	out := s.land(wedgeBankrupt)

	s.True(out.Bankrupted)
	s.True(out.TurnPassed)
	s.Equal(0, out.State.Players[0].RoundBank)
	s.Equal(1, out.State.CurrentPlayerIndex)
	s.Equal(models.PhaseTurnAI, out.State.Phase)
	s.Greater(out.State.TurnToken, start.TurnToken)
	s.Equal("Player loses $1500", s.lastWarning())
}

func (s *GameServiceTestSuite) TestLoseTurnPassesToHumanPhaseByKind() {
	s.newService(func(cfg *Config) {
		cfg.Players = []PlayerSpec{
			{Name: "Ada", Kind: models.PlayerKindHuman},
			{Name: "Bo", Kind: models.PlayerKindHuman},
		}
	})
	s.start()

	out := s.land(wedgeLoseTurn)

	s.True(out.TurnPassed)
	s.Equal("Bo", out.State.CurrentPlayer().Name)
	s.Equal(models.PhaseTurnHuman, out.State.Phase)
}

func (s *GameServiceTestSuite) TestIceShieldNegatesBankrupt() {
	s.start()
	s.land(wedgeIce300)
	s.pick("T")

	combo := s.land(wedgeIce300)
	s.Equal(models.ElementIce, combo.Combo)
	s.True(effects.HasIceShield(&combo.State.Players[0].Status))
	s.pick("L")

	out := s.land(wedgeBankrupt)

	s.True(out.Negated)
	s.False(out.Bankrupted)
	s.False(out.TurnPassed)
	s.Equal(models.PhaseAwaitConsonant, out.State.Phase)
	s.Equal(0, out.State.CurrentPlayerIndex)
	s.Equal(1500, out.State.Players[0].RoundBank)
	s.False(effects.HasIceShield(&out.State.Players[0].Status))
	s.Equal(0, out.State.Players[0].Status.ComboCount)
}

func (s *GameServiceTestSuite) TestFireComboRevealsNextVowel() {
	s.start()
	s.land(wedgeFire500)
	s.pick("T")

	combo := s.land(wedgeFire500)
	s.Equal(models.ElementFire, combo.Combo)
	s.Equal(1, effects.Count(&combo.State.Players[0].Status, models.EffectFireRevealNextVowel))

	pick := s.pick("L")

	s.Equal(2, pick.Count)
	s.Equal('I', pick.FireVowel)
	s.Contains(pick.State.Board.Revealed, 'I')
	s.NotContains(pick.State.Board.Guessed, 'I')
	s.Equal(0, effects.Count(&pick.State.Players[0].Status, models.EffectFireRevealNextVowel))
	s.Equal("LITTL_ T___", pick.State.Board.Masked)
}

func (s *GameServiceTestSuite) TestFireExpiresWhenTurnPasses() {
	s.start()
	s.land(wedgeFire500)
	s.pick("T")
	s.land(wedgeFire500)

	out := s.pick("Z")

	s.True(out.TurnPassed)
	s.Equal(0, effects.Count(&out.State.Players[0].Status, models.EffectFireRevealNextVowel))
}

func (s *GameServiceTestSuite) TestLightningRevealsConsonantAndRotates() {
	s.start()
	s.land(wedgeLightning200)
	s.pick("T")

	// hidden consonants are L, W, N; roll 2 picks W
	s.mockRoller.EXPECT().Roll(3).Return(2)
	before := s.service.GetState()
	out := s.land(wedgeLightning200)

	s.Equal('W', out.LightningLetter)
	s.Equal(models.ElementLightning, out.Combo)
	s.Equal(models.PhaseAwaitConsonant, out.State.Phase)
	s.Equal([]string{"Byte", "Cog", "Player"}, names(out.State.Players))
	s.Equal(2, out.State.CurrentPlayerIndex)
	s.Equal("Player", out.State.CurrentPlayer().Name)
	s.Equal(before.TurnToken, out.State.TurnToken)
	s.Contains(out.State.Board.Revealed, 'W')
	s.Equal(0, effects.Count(&out.State.CurrentPlayer().Status, models.EffectLightningRevealRandomConsonant))

	// the acting player keeps the turn after rotation
	pick := s.pick("N")
	s.Equal(200, pick.Amount)
	s.Equal("Player", pick.State.CurrentPlayer().Name)
	s.Equal(800, pick.State.CurrentPlayer().RoundBank)
}

func (s *GameServiceTestSuite) TestMissPassesTurn() {
	s.start()
	s.land(wedgePlain100)

	out := s.pick("Z")

	s.Equal(0, out.Count)
	s.True(out.TurnPassed)
	s.Equal(1, out.State.CurrentPlayerIndex)
	s.Equal(models.PhaseTurnAI, out.State.Phase)
	s.Contains(out.State.Board.Guessed, 'Z')
}

func (s *GameServiceTestSuite) TestLetterGuards() {
	s.start()
	s.land(wedgeFire500)
	s.pick("T")
	s.land(wedgePlain100)
	before := s.service.GetState()

	_, err := s.service.PickLetter(s.ctx, &PickLetterInput{Letter: "T"})
	s.Equal(ErrLetterUsed, err)
	s.Equal(string(ErrLetterUsed), s.lastWarning())

	_, err = s.service.PickLetter(s.ctx, &PickLetterInput{Letter: "E"})
	s.Equal(ErrNotConsonant, err)

	_, err = s.service.PickLetter(s.ctx, &PickLetterInput{Letter: "7"})
	s.Equal(ErrInvalidLetter, err)

	_, err = s.service.PickLetter(s.ctx, &PickLetterInput{Letter: "ab"})
	s.Equal(ErrInvalidLetter, err)

	after := s.service.GetState()
	s.Equal(before.Phase, after.Phase)
	s.Equal(before.Board, after.Board)
	s.Equal(before.Players, after.Players)
}

func (s *GameServiceTestSuite) TestPickLetterOutsideLetterPhase() {
	s.start()

	_, err := s.service.PickLetter(s.ctx, &PickLetterInput{Letter: "T"})
	s.Equal(ErrInvalidPhase, err)
}

func (s *GameServiceTestSuite) TestBuyVowel() {
	s.start()

	_, err := s.service.BuyVowel(s.ctx, &BuyVowelInput{})
	s.Equal(ErrInsufficientFunds, err)
	s.Equal(models.PhaseTurnHuman, s.service.GetState().Phase)

	s.land(wedgeFire500)
	s.pick("T")

	out, err := s.service.BuyVowel(s.ctx, &BuyVowelInput{})
	s.Require().NoError(err)
	s.Equal(250, out.Cost)
	s.Equal(1250, out.State.Players[0].RoundBank)
	s.Equal(models.PhaseBuyVowel, out.State.Phase)

	_, err = s.service.PickLetter(s.ctx, &PickLetterInput{Letter: "L"})
	s.Equal(ErrNotVowel, err)

	pick := s.pick("e")
	s.Equal(1, pick.Count)
	s.Equal(0, pick.Amount)
	s.Equal(1250, pick.State.Players[0].RoundBank)
	s.Equal(models.PhaseAwaitAction, pick.State.Phase)
}

func (s *GameServiceTestSuite) TestSolveCreditsRoundBank() {
	s.start()
	s.land(wedgeFire500)
	s.pick("T")

	out, err := s.service.AttemptSolve(s.ctx, &AttemptSolveInput{Guess: "  little town "})
	s.Require().NoError(err)

	s.True(out.Correct)
	s.Equal(1500, out.Banked)
	s.Equal(1500, out.State.Players[0].TotalBank)
	s.Equal(0, out.State.Players[0].RoundBank)
	s.Equal(models.PhaseRoundEnd, out.State.Phase)
	s.True(out.State.Board.Solved)
	s.Equal("LITTLE TOWN", out.State.Board.Masked)
}

func (s *GameServiceTestSuite) TestSolveRightAfterStart() {
	s.start()

	out, err := s.service.AttemptSolve(s.ctx, &AttemptSolveInput{Guess: "LITTLE TOWN"})
	s.Require().NoError(err)

	s.True(out.Correct)
	s.Equal(0, out.Banked)
	s.Equal(models.PhaseRoundEnd, out.State.Phase)
}

func (s *GameServiceTestSuite) TestSolveByLastLetterEndsRound() {
	s.newService(func(cfg *Config) {
		cfg.Puzzles[0].Phrase = "TNT"
	})
	s.start()
	s.land(wedgeFire500)
	s.pick("T")
	s.land(wedgePlain100)

	out := s.pick("N")

	s.True(out.Solved)
	s.Equal(models.PhaseRoundEnd, out.State.Phase)
	s.Equal(1100, out.State.Players[0].TotalBank)
}

func (s *GameServiceTestSuite) TestWrongSolvePasses() {
	s.start()

	out, err := s.service.AttemptSolve(s.ctx, &AttemptSolveInput{Guess: "big city"})
	s.Require().NoError(err)

	s.False(out.Correct)
	s.True(out.TurnPassed)
	s.Equal(1, out.State.CurrentPlayerIndex)
	s.Equal(`"BIG CITY" is not the answer`, s.lastWarning())

	_, err = s.service.AttemptSolve(s.ctx, &AttemptSolveInput{Guess: "   "})
	s.Equal(ErrEmptyGuess, err)
}

func (s *GameServiceTestSuite) TestNotYourTurn() {
	state := s.start()
	bot := state.Players[1]

	_, err := s.service.SpinWheel(s.ctx, &SpinWheelInput{PlayerID: bot.ID})
	s.Equal(ErrNotYourTurn, err)

	_, err = s.service.AttemptSolve(s.ctx, &AttemptSolveInput{PlayerID: bot.ID, Guess: "LITTLE TOWN"})
	s.Equal(ErrNotYourTurn, err)

	s.Equal(models.PhaseTurnHuman, s.service.GetState().Phase)

	_, err = s.service.SpinWheel(s.ctx, &SpinWheelInput{PlayerID: state.Players[0].ID})
	s.NoError(err)
}

func (s *GameServiceTestSuite) TestBadWedgeIndex() {
	s.start()
	_, err := s.service.SpinWheel(s.ctx, &SpinWheelInput{})
	s.Require().NoError(err)

	_, err = s.service.OnSpinComplete(s.ctx, &OnSpinCompleteInput{WedgeIndex: 99})
	s.Equal(ErrBadWedgeIndex, err)
	s.Equal(models.PhaseSpin, s.service.GetState().Phase)

	_, err = s.service.SpinWheel(s.ctx, &SpinWheelInput{})
	s.Equal(ErrInvalidPhase, err)
}

func (s *GameServiceTestSuite) TestDeferredPass() {
	s.newService(func(cfg *Config) {
		cfg.PassTurnDelay = 2 * time.Second
	})
	s.start()

	out := s.land(wedgeBankrupt)
	s.True(out.TurnPassed)
	s.True(out.State.PassPending)
	s.Equal(models.PhaseAwaitAction, out.State.Phase)
	s.Equal(0, out.State.CurrentPlayerIndex)

	_, err := s.service.SpinWheel(s.ctx, &SpinWheelInput{})
	s.Equal(ErrPassPending, err)
	_, err = s.service.BuyVowel(s.ctx, &BuyVowelInput{})
	s.Equal(ErrPassPending, err)

	s.Require().Len(s.timers, 1)
	s.Equal(2*time.Second, s.timers[0].delay)
	s.timers[0].fire()

	state := s.service.GetState()
	s.False(state.PassPending)
	s.Equal(1, state.CurrentPlayerIndex)
	s.Equal(models.PhaseTurnAI, state.Phase)
}

func (s *GameServiceTestSuite) TestStalePassTimerIsNoop() {
	s.newService(func(cfg *Config) {
		cfg.PassTurnDelay = 2 * time.Second
	})
	s.start()
	s.land(wedgeLoseTurn)

	out, err := s.service.PassTurn(s.ctx, &PassTurnInput{})
	s.Require().NoError(err)
	s.Equal(out.State.Players[1].ID, out.NextPlayerID)
	s.True(s.timers[0].stopped)

	// a callback that raced the stop must not pass again
	s.timers[0].fire()

	state := s.service.GetState()
	s.Equal(1, state.CurrentPlayerIndex)
	s.Equal(out.State.TurnToken, state.TurnToken)
}

func (s *GameServiceTestSuite) TestPassTurn() {
	s.start()

	out, err := s.service.PassTurn(s.ctx, &PassTurnInput{})
	s.Require().NoError(err)

	s.Equal(1, out.State.CurrentPlayerIndex)
	s.Equal(models.PhaseTurnAI, out.State.Phase)

	_, err = s.service.PassTurn(s.ctx, &PassTurnInput{})
	s.Require().NoError(err)
	out, err = s.service.PassTurn(s.ctx, &PassTurnInput{})
	s.Require().NoError(err)
	s.Equal(0, out.State.CurrentPlayerIndex)
	s.Equal(models.PhaseTurnHuman, out.State.Phase)
}

func (s *GameServiceTestSuite) TestRoundsAndGameEnd() {
	s.start()
	s.land(wedgeFire500)
	s.pick("T")
	_, err := s.service.AttemptSolve(s.ctx, &AttemptSolveInput{Guess: "LITTLE TOWN"})
	s.Require().NoError(err)

	next, err := s.service.NextRound(s.ctx, &NextRoundInput{})
	s.Require().NoError(err)
	s.False(next.GameOver)
	s.Equal(2, next.State.Round)
	s.Equal(models.PhaseTurnHuman, next.State.Phase)
	s.Equal(1500, next.State.Players[0].TotalBank)
	s.Equal(0, next.State.Players[0].RoundBank)
	s.False(next.State.Board.Solved)

	_, err = s.service.AttemptSolve(s.ctx, &AttemptSolveInput{Guess: "LITTLE TOWN"})
	s.Require().NoError(err)

	var saved *models.GameResult
	s.mockResults.EXPECT().
		SaveResult(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *results.SaveResultInput) error {
			saved = input.Result
			return nil
		})

	final, err := s.service.NextRound(s.ctx, &NextRoundInput{})
	s.Require().NoError(err)

	s.True(final.GameOver)
	s.Equal(models.PhaseGameEnd, final.State.Phase)
	s.Require().NotNil(saved)
	s.Equal(final.Result, saved)
	s.Equal(2, saved.Rounds)
	s.Equal(s.testTime, saved.FinishedAt)
	s.Equal("Player", saved.Winner().Name)
	s.Equal(1500, saved.Winner().TotalBank)
	s.Len(saved.Standings, 3)

	_, err = s.service.NextRound(s.ctx, &NextRoundInput{})
	s.Equal(ErrInvalidPhase, err)
}

func (s *GameServiceTestSuite) TestGameEndSaveFailureWarns() {
	s.newService(func(cfg *Config) {
		cfg.TotalRounds = 1
	})
	s.start()
	_, err := s.service.AttemptSolve(s.ctx, &AttemptSolveInput{Guess: "LITTLE TOWN"})
	s.Require().NoError(err)

	s.mockResults.EXPECT().SaveResult(s.ctx, gomock.Any()).Return(errors.New("connection refused"))

	out, err := s.service.NextRound(s.ctx, &NextRoundInput{})
	s.Require().NoError(err)
	s.True(out.GameOver)
	s.Equal("Could not record this game on the leaderboard", s.lastWarning())
}

func (s *GameServiceTestSuite) TestRestart() {
	first := s.start()
	s.land(wedgeFire500)
	s.pick("T")
	_, err := s.service.AttemptSolve(s.ctx, &AttemptSolveInput{Guess: "LITTLE TOWN"})
	s.Require().NoError(err)

	s.mockNotifier.EXPECT().Clear()
	out, err := s.service.Restart(s.ctx, &RestartInput{})
	s.Require().NoError(err)

	s.Equal(models.PhaseTitle, out.State.Phase)
	s.Nil(out.State.Board)
	s.Equal(0, out.State.Round)
	s.Len(out.State.Players, 3)
	s.NotEqual(first.Players[0].ID, out.State.Players[0].ID)
	s.Equal(0, out.State.Players[0].TotalBank)

	again := s.start()
	s.Equal(models.PhaseTurnHuman, again.Phase)
	s.NotEqual(first.GameID, again.GameID)
}

func (s *GameServiceTestSuite) TestSpinnerCompletion() {
	spinner := &fakeSpinner{}
	s.newService(func(cfg *Config) {
		cfg.Spinner = spinner
	})
	s.start()

	spin, err := s.service.SpinWheel(s.ctx, &SpinWheelInput{})
	s.Require().NoError(err)
	s.Equal(models.PhaseSpin, spin.State.Phase)
	s.Equal(1, spinner.calls)

	spinner.complete(wedgeFire500)
	state := s.service.GetState()
	s.Equal(models.PhaseAwaitConsonant, state.Phase)
	s.Equal("$500", state.ActiveWedge.Label)

	s.pick("T")
	stale := spinner.complete
	_, err = s.service.SpinWheel(s.ctx, &SpinWheelInput{})
	s.Require().NoError(err)

	// a callback from the previous spin must not resolve this one
	stale(wedgeBankrupt)
	s.Equal(models.PhaseSpin, s.service.GetState().Phase)

	spinner.complete(wedgePlain100)
	state = s.service.GetState()
	s.Equal(models.PhaseAwaitConsonant, state.Phase)
	s.Equal("$100", state.ActiveWedge.Label)
	s.Equal(1500, state.Players[0].RoundBank)
}

func names(players []*models.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.Name)
	}
	return out
}
