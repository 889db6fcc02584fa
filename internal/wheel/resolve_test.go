package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wheelrift/internal/board"
	"github.com/KirkDiggler/wheelrift/internal/common/clock"
	clockMocks "github.com/KirkDiggler/wheelrift/internal/common/clock/mocks"
	"github.com/KirkDiggler/wheelrift/internal/common/random/mocks"
	"github.com/KirkDiggler/wheelrift/internal/effects"
	"github.com/KirkDiggler/wheelrift/internal/models"
)

type ResolveTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *mocks.MockRoller

	players []*models.Player
	board   *board.Board
}

func (s *ResolveTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = mocks.NewMockRoller(s.mockCtrl)

	s.players = []*models.Player{
		{ID: "human", Name: "You", Kind: models.PlayerKindHuman, RoundBank: 1200, Status: models.ElementStatus{LastElement: models.ElementNone}},
		{ID: "ai-1", Name: "Ember", Kind: models.PlayerKindAI, Status: models.ElementStatus{LastElement: models.ElementNone}},
		{ID: "ai-2", Name: "Frost", Kind: models.PlayerKindAI, Status: models.ElementStatus{LastElement: models.ElementNone}},
	}

	b, err := board.New("Phrase", "BREAK THE ICE")
	s.Require().NoError(err)
	s.board = b
}

func (s *ResolveTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResolveTestSuite(t *testing.T) {
	suite.Run(t, new(ResolveTestSuite))
}

func (s *ResolveTestSuite) resolve(wedge models.Wedge, index int) *Resolution {
	res, err := Resolve(&ResolveInput{
		Wedge:        wedge,
		Players:      s.players,
		CurrentIndex: index,
		Board:        s.board,
		Round:        1,
		Roller:       s.mockRoller,
	})
	s.Require().NoError(err)
	return res
}

func (s *ResolveTestSuite) TestCashWedgeAwaitsConsonant() {
	res := s.resolve(models.Wedge{Kind: models.WedgeKindCash, Label: "$500", Value: 500, Element: models.ElementNone}, 0)

	s.Equal(models.PhaseAwaitConsonant, res.NextPhase)
	s.False(res.PassTurn)
	s.False(res.Hazard)
	s.Nil(res.Trigger)
	s.Equal(1200, s.players[0].RoundBank)
}

func (s *ResolveTestSuite) TestBankruptWithoutShield() {
	res := s.resolve(models.Wedge{Kind: models.WedgeKindBankrupt, Label: "BANKRUPT", Element: models.ElementNone}, 0)

	s.True(res.Hazard)
	s.True(res.Bankrupted)
	s.True(res.PassTurn)
	s.False(res.Negated)
	s.Equal(1200, res.LostAmount)
	s.Equal(0, s.players[0].RoundBank)
	s.Empty(res.NextPhase)
}

func (s *ResolveTestSuite) TestLoseTurnKeepsBank() {
	res := s.resolve(models.Wedge{Kind: models.WedgeKindLoseTurn, Label: "LOSE A TURN", Element: models.ElementNone}, 0)

	s.True(res.PassTurn)
	s.False(res.Bankrupted)
	s.Equal(1200, s.players[0].RoundBank)
}

func (s *ResolveTestSuite) TestIceShieldNegatesHazard() {
	s.players[0].Status.QueuedEffects = []models.Effect{{Kind: models.EffectIceNegateNextHazard, Charges: 1}}

	res := s.resolve(models.Wedge{Kind: models.WedgeKindBankrupt, Label: "BANKRUPT", Element: models.ElementNone}, 0)

	s.True(res.Hazard)
	s.True(res.Negated)
	s.False(res.PassTurn)
	s.False(res.Bankrupted)
	s.Equal(models.PhaseAwaitConsonant, res.NextPhase)
	s.Equal(1200, s.players[0].RoundBank)
	s.False(effects.HasIceShield(&s.players[0].Status))
}

func (s *ResolveTestSuite) TestIceComboOnHazardShieldsSameSpin() {
	// the combo is counted before the hazard check, so the fresh shield applies
	s.players[0].Status = models.ElementStatus{LastElement: models.ElementIce, ComboCount: 1}

	res := s.resolve(models.Wedge{Kind: models.WedgeKindLoseTurn, Label: "LOSE A TURN", Element: models.ElementIce}, 0)

	s.Require().NotNil(res.Trigger)
	s.True(res.Negated)
	s.False(res.PassTurn)
	s.Equal(2, s.players[0].Status.ComboCount)
}

func (s *ResolveTestSuite) TestRiftHandOff() {
	s.players[0].Status = models.ElementStatus{LastElement: models.ElementLightning, ComboCount: 1}

	res := s.resolve(models.Wedge{Kind: models.WedgeKindSpecial, Label: models.RiftLabel, Element: models.ElementLightning}, 0)

	s.True(res.Rift)
	s.Empty(res.NextPhase)
	s.False(res.Rotated)
	s.Zero(res.LightningLetter)
	s.Equal(2, s.players[0].Status.ComboCount)
	s.Empty(s.players[0].Status.QueuedEffects)
	s.Empty(s.board.RevealedLetters())
}

func (s *ResolveTestSuite) TestLightningRevealsAndRotates() {
	s.players[1].Status = models.ElementStatus{LastElement: models.ElementLightning, ComboCount: 1}

	// BREAK THE ICE consonants in order: B R K T H C
	s.mockRoller.EXPECT().Roll(6).Return(4)

	res := s.resolve(models.Wedge{Kind: models.WedgeKindCash, Label: "$800", Value: 800, Element: models.ElementLightning}, 1)

	s.Equal('T', res.LightningLetter)
	s.Equal(1, res.LightningCount)
	s.True(s.board.IsRevealed('T'))
	s.False(s.board.IsGuessed('T'))

	s.True(res.Rotated)
	s.Equal(2, res.CurrentIndex)
	s.Equal("ai-1", res.Players[res.CurrentIndex].ID)
	s.Equal([]string{"ai-2", "human", "ai-1"}, ids(res.Players))
	s.Equal(models.PhaseAwaitConsonant, res.NextPhase)
	s.Empty(s.players[1].Status.QueuedEffects)
}

func (s *ResolveTestSuite) TestLightningWithNothingLeftStillRotates() {
	for _, r := range "BRKTHC" {
		s.board.Reveal(r)
	}
	s.players[0].Status = models.ElementStatus{LastElement: models.ElementLightning, ComboCount: 1}

	res := s.resolve(models.Wedge{Kind: models.WedgeKindCash, Label: "$400", Value: 400, Element: models.ElementLightning}, 0)

	s.Zero(res.LightningLetter)
	s.True(res.Rotated)
	s.Equal("human", res.Players[res.CurrentIndex].ID)
}

func (s *ResolveTestSuite) TestResolveValidatesInput() {
	_, err := Resolve(&ResolveInput{Players: s.players, Roller: s.mockRoller})
	s.ErrorIs(err, ErrNoBoard)

	_, err = Resolve(&ResolveInput{Players: s.players, Board: s.board})
	s.ErrorIs(err, ErrNoRoller)

	_, err = Resolve(&ResolveInput{Players: s.players, Board: s.board, Roller: s.mockRoller, CurrentIndex: 3})
	s.ErrorIs(err, ErrBadPlayerIdx)
}

func (s *ResolveTestSuite) TestRotate() {
	rotated, idx := Rotate(s.players, 0)
	s.Equal([]string{"ai-1", "ai-2", "human"}, ids(rotated))
	s.Equal(2, idx)

	rotated, idx = Rotate(s.players, 2)
	s.Equal([]string{"human", "ai-1", "ai-2"}, ids(rotated))
	s.Equal(2, idx)

	// the input order is untouched
	s.Equal([]string{"human", "ai-1", "ai-2"}, ids(s.players))
}

func (s *ResolveTestSuite) TestRandomSpinnerSynchronous() {
	spinner, err := NewRandomSpinner(&SpinnerConfig{Roller: s.mockRoller})
	s.Require().NoError(err)

	s.mockRoller.EXPECT().Roll(24).Return(11)

	var got int
	spinner.Spin(24, func(i int) { got = i })
	s.Equal(10, got)
}

func (s *ResolveTestSuite) TestRandomSpinnerUsesClock() {
	mockClock := clockMocks.NewMockClock(s.mockCtrl)
	spinner, err := NewRandomSpinner(&SpinnerConfig{Roller: s.mockRoller, Clock: mockClock, Duration: time.Second})
	s.Require().NoError(err)

	var fire func()
	s.mockRoller.EXPECT().Roll(24).Return(1)
	mockClock.EXPECT().AfterFunc(time.Second, gomock.Any()).DoAndReturn(func(_ time.Duration, f func()) clock.Timer {
		fire = f
		return clockMocks.NewMockTimer(s.mockCtrl)
	})

	got := -1
	spinner.Spin(24, func(i int) { got = i })
	s.Equal(-1, got)

	s.Require().NotNil(fire)
	fire()
	s.Equal(0, got)
}

func (s *ResolveTestSuite) TestNewRandomSpinnerValidates() {
	_, err := NewRandomSpinner(nil)
	s.Error(err)
	_, err = NewRandomSpinner(&SpinnerConfig{})
	s.ErrorIs(err, ErrNoRoller)
}

func ids(players []*models.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}
