package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/services/game"
	gameMocks "github.com/KirkDiggler/wheelrift/internal/services/game/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockGame *gameMocks.MockService
	ctx      context.Context
	out      *bytes.Buffer
	state    *models.GameState
	handler  *Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()
	s.out = &bytes.Buffer{}
	s.state = &models.GameState{
		Phase:       models.PhaseTurnHuman,
		Round:       1,
		TotalRounds: 3,
		Players: []*models.Player{
			{ID: "p1", Name: "Player", Kind: models.PlayerKindHuman},
			{ID: "p2", Name: "Byte", Kind: models.PlayerKindAI},
		},
		Board: &models.BoardView{
			Category: "Place",
			Phrase:   "LITTLE TOWN",
			Masked:   "L_TTL_ T_WN",
			Guessed:  []rune("LTWN"),
		},
		HostLine: "Player, spin the wheel.",
	}
	s.mockGame.EXPECT().GetState().DoAndReturn(func() *models.GameState {
		return s.state
	}).AnyTimes()

	handler, err := New(&Config{
		GameService: s.mockGame,
		In:          strings.NewReader(""),
		Out:         s.out,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{In: strings.NewReader(""), Out: s.out})
	s.Error(err)

	_, err = New(&Config{GameService: s.mockGame, Out: s.out})
	s.Error(err)

	_, err = New(&Config{GameService: s.mockGame, In: strings.NewReader("")})
	s.Error(err)
}

func (s *HandlerTestSuite) TestPickActsForHumanSeat() {
	s.mockGame.EXPECT().PickLetter(s.ctx, &game.PickLetterInput{PlayerID: "p1", Letter: "i"}).
		Return(&game.PickLetterOutput{Letter: 'I', Count: 1}, nil)

	s.Require().NoError(s.handler.Execute(s.ctx, "pick i"))
	s.Contains(s.out.String(), "1 I on the board.")
}

func (s *HandlerTestSuite) TestPickMiss() {
	s.mockGame.EXPECT().PickLetter(s.ctx, &game.PickLetterInput{PlayerID: "p1", Letter: "z"}).
		Return(&game.PickLetterOutput{Letter: 'Z'}, nil)

	s.Require().NoError(s.handler.Execute(s.ctx, "P z"))
	s.Contains(s.out.String(), "No Z.")
}

func (s *HandlerTestSuite) TestPickUsage() {
	err := s.handler.Execute(s.ctx, "pick")
	s.EqualError(err, "usage: pick <letter>")
}

func (s *HandlerTestSuite) TestVowelBuysThenPicks() {
	gomock.InOrder(
		s.mockGame.EXPECT().BuyVowel(s.ctx, &game.BuyVowelInput{PlayerID: "p1"}).
			Return(&game.BuyVowelOutput{}, nil),
		s.mockGame.EXPECT().PickLetter(s.ctx, &game.PickLetterInput{PlayerID: "p1", Letter: "e"}).
			Return(&game.PickLetterOutput{Letter: 'E', Count: 1}, nil),
	)

	s.Require().NoError(s.handler.Execute(s.ctx, "vowel e"))
}

func (s *HandlerTestSuite) TestVowelRejected() {
	s.mockGame.EXPECT().BuyVowel(s.ctx, &game.BuyVowelInput{PlayerID: "p1"}).
		Return(nil, game.ErrInsufficientFunds)

	err := s.handler.Execute(s.ctx, "v e")
	s.True(errors.Is(err, game.ErrInsufficientFunds))
}

func (s *HandlerTestSuite) TestSolveJoinsWords() {
	s.mockGame.EXPECT().AttemptSolve(s.ctx, &game.AttemptSolveInput{PlayerID: "p1", Guess: "little town"}).
		Return(&game.AttemptSolveOutput{Correct: true, Banked: 900}, nil)

	s.Require().NoError(s.handler.Execute(s.ctx, "solve little   town"))
	s.Contains(s.out.String(), "Solved! $900 banked.")
}

func (s *HandlerTestSuite) TestSpinErrorPassesThrough() {
	s.mockGame.EXPECT().SpinWheel(s.ctx, &game.SpinWheelInput{PlayerID: "p1"}).
		Return(nil, game.ErrNotYourTurn)

	err := s.handler.Execute(s.ctx, "spin")
	s.True(errors.Is(err, game.ErrNotYourTurn))
}

func (s *HandlerTestSuite) TestRiftWord() {
	s.mockGame.EXPECT().SubmitRiftWord(s.ctx, &game.SubmitRiftWordInput{PlayerID: "p1", Word: "tilt"}).
		Return(&game.SubmitRiftWordOutput{Word: "TILT", Score: 1}, nil)

	s.Require().NoError(s.handler.Execute(s.ctx, "word tilt"))
	s.EqualError(s.handler.Execute(s.ctx, "word"), "usage: word <word>")
}

func (s *HandlerTestSuite) TestNextRoundPrintsFinalStandings() {
	s.mockGame.EXPECT().NextRound(s.ctx, &game.NextRoundInput{}).
		Return(&game.NextRoundOutput{
			GameOver: true,
			Result: &models.GameResult{Standings: []*models.Standing{
				{Name: "Byte", TotalBank: 2100},
				{Name: "Player", TotalBank: 900},
			}},
		}, nil)

	s.Require().NoError(s.handler.Execute(s.ctx, "next"))
	s.Contains(s.out.String(), "1. Byte     $2100")
	s.Contains(s.out.String(), "2. Player   $900")
}

func (s *HandlerTestSuite) TestScores() {
	s.mockGame.EXPECT().GetLeaderboard(s.ctx, &game.GetLeaderboardInput{Limit: 5}).
		Return(&game.GetLeaderboardOutput{Entries: []*models.ScoreEntry{{Name: "Cog", Score: 3000}}}, nil)

	s.Require().NoError(s.handler.Execute(s.ctx, "scores"))
	s.Contains(s.out.String(), "1. Cog      $3000")
}

func (s *HandlerTestSuite) TestUnknownAndBlank() {
	s.NoError(s.handler.Execute(s.ctx, "   "))

	err := s.handler.Execute(s.ctx, "dance")
	s.Error(err)
	s.Contains(err.Error(), "unknown command")
}

func (s *HandlerTestSuite) TestQuit() {
	s.True(errors.Is(s.handler.Execute(s.ctx, "exit"), ErrQuit))
}

func (s *HandlerTestSuite) TestRunStopsAtQuit() {
	never := make(chan struct{})
	s.mockGame.EXPECT().Watch().Return(never).AnyTimes()
	s.mockGame.EXPECT().GetNotifications().Return([]*models.Notification{
		{ID: "n1", Message: "Welcome to the wheel", Severity: models.SeverityInfo},
	}).AnyTimes()

	handler, err := New(&Config{
		GameService: s.mockGame,
		In:          strings.NewReader("help\nquit\nstart\n"),
		Out:         s.out,
	})
	s.Require().NoError(err)

	s.Require().NoError(handler.Run(s.ctx))

	out := s.out.String()
	s.Contains(out, "Commands:")
	s.Contains(out, "L _ T T L _   T _ W N")
	s.Contains(out, "(spin, vowel, solve or pass)")
	s.Equal(1, strings.Count(out, "- Welcome to the wheel"))
}

func (s *HandlerTestSuite) TestRenderState() {
	s.state.CurrentPlayerIndex = 1
	s.state.Phase = models.PhaseTurnAI
	s.state.Players[1].Status = models.ElementStatus{
		LastElement:   models.ElementFire,
		ComboCount:    2,
		QueuedEffects: []models.Effect{{Kind: models.EffectFireRevealNextVowel, ExpiresAtRound: 1}},
	}

	view := renderState(s.state)
	s.Contains(view, "-- Round 1/3 [Place] --")
	s.Contains(view, "used: L T W N")
	s.Contains(view, "> Byte")
	s.Contains(view, "fire x2 fire")
	s.Contains(view, "(Byte is thinking)")

	s.Contains(renderState(&models.GameState{Phase: models.PhaseTitle}), "ELEMENTAL WHEEL")
}
