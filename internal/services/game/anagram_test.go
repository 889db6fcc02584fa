package game

import (
	"time"

	"github.com/KirkDiggler/wheelrift/internal/catalog"
	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/rift"
)

// openCatRift reveals C, A and T on "CAT BOW" and lands on the rift
func (s *GameServiceTestSuite) openCatRift(modify func(cfg *Config)) *OnSpinCompleteOutput {
	s.newService(func(cfg *Config) {
		cfg.Puzzles = catalog.Puzzles{{Category: "Thing", Phrase: "CAT BOW"}}
		if modify != nil {
			modify(cfg)
		}
	})
	s.start()
	s.land(wedgeFire500)
	s.pick("C")
	s.land(wedgeFire500)
	pick := s.pick("T")
	s.Require().Equal('A', pick.FireVowel)

	out := s.land(wedgeRift)
	s.Require().True(out.RiftOpened)
	return out
}

func (s *GameServiceTestSuite) TestRiftWordScoring() {
	out := s.openCatRift(nil)

	s.Equal(models.PhaseAnagramRift, out.State.Phase)
	s.Equal([]rune{'C', 'A', 'T', rift.Wildcard, rift.Wildcard}, out.State.Rift.Pool)
	s.Equal(s.testTime.Add(45*time.Second), out.State.Rift.EndsAt)
	s.Require().Len(s.timers, 1)
	s.Equal(45*time.Second, s.timers[0].delay)

	word, err := s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "cat"})
	s.Require().NoError(err)
	s.Equal("CAT", word.Word)
	s.Equal(1, word.Score)

	_, err = s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "CAT"})
	s.Equal(rift.ErrDuplicate, err)
	s.Equal(string(rift.ErrDuplicate), s.lastWarning())
	s.Equal(1, s.service.GetState().Rift.ScoreCount)

	// N is covered by a wildcard
	word, err = s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "tan"})
	s.Require().NoError(err)
	s.Equal(2, word.Score)

	_, err = s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "zzz"})
	s.Equal(rift.ErrNotAWord, err)

	_, err = s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "at"})
	s.Equal(rift.ErrTooShort, err)

	s.Equal([]string{"CAT", "TAN"}, s.service.GetState().Rift.UsedWords)
}

func (s *GameServiceTestSuite) TestRiftNotEnoughLettersLeavesScore() {
	s.openCatRift(func(cfg *Config) {
		cfg.Dictionary = wordsOf("tile")
	})

	_, err := s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "tile"})
	s.Equal(rift.ErrNotEnoughLetters, err)

	state := s.service.GetState()
	s.Equal(0, state.Rift.ScoreCount)
	s.Empty(state.Rift.UsedWords)
	s.True(state.Rift.Active)
}

func (s *GameServiceTestSuite) TestRiftTimeoutRevealsConsonants() {
	s.openCatRift(nil)
	_, err := s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "cat"})
	s.Require().NoError(err)
	_, err = s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "act"})
	s.Require().NoError(err)

	s.timers[0].fire()

	state := s.service.GetState()
	s.Equal(models.PhaseAwaitAction, state.Phase)
	s.False(state.Rift.Active)
	s.Equal(2, state.Rift.ScoreCount)
	s.Equal("CAT B_W", state.Board.Masked)
	s.Equal(0, state.CurrentPlayerIndex)

	_, err = s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "tan"})
	s.Equal(rift.ErrInactive, err)
}

func (s *GameServiceTestSuite) TestRiftPayoutSolvingBoardEndsRound() {
	s.openCatRift(func(cfg *Config) {
		cfg.Puzzles = catalog.Puzzles{{Category: "Thing", Phrase: "CAT BAT"}}
	})
	_, err := s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "cat"})
	s.Require().NoError(err)

	out, err := s.service.EndAnagramRift(s.ctx, &EndAnagramRiftInput{})
	s.Require().NoError(err)

	s.Equal([]rune{'B'}, out.Revealed)
	s.Equal(models.PhaseRoundEnd, out.State.Phase)
	s.Equal(1500, out.State.Players[0].TotalBank)
}

func (s *GameServiceTestSuite) TestRiftCashPayout() {
	s.openCatRift(func(cfg *Config) {
		riftCfg := rift.DefaultConfig()
		riftCfg.Payout = rift.PayoutCash
		cfg.Rift = riftCfg
	})
	_, err := s.service.SubmitRiftWord(s.ctx, &SubmitRiftWordInput{Word: "cat"})
	s.Require().NoError(err)

	out, err := s.service.EndAnagramRift(s.ctx, &EndAnagramRiftInput{})
	s.Require().NoError(err)

	s.Equal(100, out.Cash)
	s.Empty(out.Revealed)
	s.Equal(1100, out.State.Players[0].RoundBank)
	s.Equal(models.PhaseAwaitAction, out.State.Phase)
}

func (s *GameServiceTestSuite) TestEndRiftTwiceIsNoop() {
	s.openCatRift(nil)

	out, err := s.service.EndAnagramRift(s.ctx, &EndAnagramRiftInput{})
	s.Require().NoError(err)
	s.Equal(0, out.Score)
	s.True(s.timers[0].stopped)

	_, err = s.service.EndAnagramRift(s.ctx, &EndAnagramRiftInput{})
	s.Equal(rift.ErrInactive, err)

	// the timeout firing after a manual end changes nothing
	before := s.service.GetState()
	s.timers[0].fire()
	s.Equal(before, s.service.GetState())
}

func (s *GameServiceTestSuite) TestStaleRiftTimerIsNoop() {
	s.openCatRift(nil)
	_, err := s.service.EndAnagramRift(s.ctx, &EndAnagramRiftInput{})
	s.Require().NoError(err)

	// a second rift in the same turn gets a fresh timer
	_, err = s.service.StartAnagramRift(s.ctx, &StartAnagramRiftInput{})
	s.Require().NoError(err)
	s.Require().Len(s.timers, 2)

	s.timers[0].fire()
	s.True(s.service.GetState().Rift.Active)

	s.timers[1].fire()
	s.False(s.service.GetState().Rift.Active)
}

func (s *GameServiceTestSuite) TestRiftRejectedWithTooFewLetters() {
	s.start()

	out := s.land(wedgeRift)

	s.False(out.RiftOpened)
	s.Equal(models.PhaseAwaitAction, out.State.Phase)
	s.Nil(out.State.Rift)
	s.Equal(string(rift.ErrTooFewLetters), s.lastWarning())
	s.Empty(s.timers)

	_, err := s.service.StartAnagramRift(s.ctx, &StartAnagramRiftInput{})
	s.Equal(rift.ErrTooFewLetters, err)
	s.Equal(models.PhaseAwaitAction, s.service.GetState().Phase)
}

func (s *GameServiceTestSuite) TestRestartClosesRift() {
	s.openCatRift(nil)

	s.mockNotifier.EXPECT().Clear()
	_, err := s.service.Restart(s.ctx, &RestartInput{})
	s.Require().NoError(err)
	s.True(s.timers[0].stopped)

	s.timers[0].fire()
	state := s.service.GetState()
	s.Equal(models.PhaseTitle, state.Phase)
	s.Nil(state.Rift)
}
