package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wheelrift/internal/board"
	"github.com/KirkDiggler/wheelrift/internal/catalog"
	"github.com/KirkDiggler/wheelrift/internal/common/clock"
	"github.com/KirkDiggler/wheelrift/internal/common/random"
	"github.com/KirkDiggler/wheelrift/internal/common/uuid"
	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/repositories/results"
	"github.com/KirkDiggler/wheelrift/internal/rift"
	"github.com/KirkDiggler/wheelrift/internal/services/messaging"
	"github.com/KirkDiggler/wheelrift/internal/services/notification"
)

// service owns the canonical session. Every field below mu is guarded by it.
type service struct {
	wedges      []models.Wedge
	puzzles     catalog.Puzzles
	dictionary  rift.Dictionary
	playerSpecs []PlayerSpec
	totalRounds int
	vowelCost   int
	passDelay   time.Duration
	riftConfig  rift.Config

	roller      random.Roller
	clock       clock.Clock
	uuid        uuid.UUID
	notifier    notification.Service
	messenger   messaging.Service
	resultsRepo results.Repository
	spinner     Spinner
	log         zerolog.Logger

	mu          sync.Mutex
	gameID      string
	phase       models.GamePhase
	players     []*models.Player
	current     int
	round       int
	board       *board.Board
	activeWedge *models.Wedge
	hostLine    string

	// turnToken changes when turn ownership changes
	turnToken uint64

	// spinSeq identifies the spin a Spinner callback belongs to
	spinSeq uint64

	passPending bool
	passReason  messaging.TurnReason
	passTimer   clock.Timer

	rift      *rift.Rift
	riftGen   uint64
	riftTimer clock.Timer

	changed chan struct{}
}

// New creates a new game service in the title phase
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if err := catalog.Validate(cfg.Wedges, cfg.Puzzles); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	if cfg.Dictionary == nil {
		return nil, ErrNilDictionary
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}

	if cfg.ResultsRepo == nil {
		return nil, ErrNilResultsRepo
	}

	if cfg.TotalRounds < 0 {
		return nil, ErrInvalidTotalRounds
	}

	specs := cfg.Players
	if specs == nil {
		specs = DefaultPlayers()
	}
	if len(specs) == 0 {
		return nil, ErrNoPlayers
	}

	totalRounds := cfg.TotalRounds
	if totalRounds == 0 {
		totalRounds = DefaultTotalRounds
	}

	vowelCost := cfg.VowelCost
	if vowelCost <= 0 {
		vowelCost = DefaultVowelCost
	}

	riftConfig := cfg.Rift
	if riftConfig.Duration <= 0 {
		riftConfig = rift.DefaultConfig()
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("component", "game").Logger()
	}

	s := &service{
		wedges:      append([]models.Wedge(nil), cfg.Wedges...),
		puzzles:     cfg.Puzzles,
		dictionary:  cfg.Dictionary,
		playerSpecs: append([]PlayerSpec(nil), specs...),
		totalRounds: totalRounds,
		vowelCost:   vowelCost,
		passDelay:   cfg.PassTurnDelay,
		riftConfig:  riftConfig,
		roller:      cfg.Roller,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
		notifier:    cfg.Notifier,
		messenger:   cfg.Messenger,
		resultsRepo: cfg.ResultsRepo,
		spinner:     cfg.Spinner,
		log:         log,
		phase:       models.PhaseTitle,
		changed:     make(chan struct{}),
	}
	s.players = s.newPlayers()

	return s, nil
}

// GetState returns a snapshot that shares nothing with the session
func (s *service) GetState() *models.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// GetNotifications returns the visible notifications
func (s *service) GetNotifications() []*models.Notification {
	return s.notifier.List()
}

// Watch returns a channel closed at the next state change
func (s *service) Watch() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changed
}

// AddNotification posts a transient message
func (s *service) AddNotification(ctx context.Context, input *AddNotificationInput) (*AddNotificationOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	severity := input.Severity
	if severity == "" {
		severity = models.SeverityInfo
	}

	return &AddNotificationOutput{
		Notification: s.notifier.Add(input.Message, severity),
	}, nil
}

// GetLeaderboard returns the best recorded totals
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.resultsRepo.GetTopScores(ctx, &results.GetTopScoresInput{Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &GetLeaderboardOutput{Entries: out.Entries}, nil
}

func (s *service) newPlayers() []*models.Player {
	players := make([]*models.Player, 0, len(s.playerSpecs))
	for _, spec := range s.playerSpecs {
		kind := spec.Kind
		if kind == "" {
			kind = models.PlayerKindHuman
		}
		players = append(players, &models.Player{
			ID:          s.uuid.NewUUID(),
			Name:        spec.Name,
			Kind:        kind,
			Personality: spec.Personality,
			Status:      models.ElementStatus{LastElement: models.ElementNone},
		})
	}
	return players
}

// snapshot must be called with mu held
func (s *service) snapshot() *models.GameState {
	state := &models.GameState{
		GameID:             s.gameID,
		Phase:              s.phase,
		Players:            make([]*models.Player, 0, len(s.players)),
		CurrentPlayerIndex: s.current,
		Round:              s.round,
		TotalRounds:        s.totalRounds,
		PassPending:        s.passPending,
		HostLine:           s.hostLine,
		TurnToken:          s.turnToken,
	}
	for _, p := range s.players {
		state.Players = append(state.Players, p.Clone())
	}
	if s.board != nil {
		state.Board = s.board.View()
	}
	if s.activeWedge != nil {
		wedge := *s.activeWedge
		state.ActiveWedge = &wedge
	}
	if s.rift != nil {
		state.Rift = s.rift.View()
	}
	return state
}

// broadcast wakes every Watch caller. Must be called with mu held.
func (s *service) broadcast() {
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *service) currentPlayer() *models.Player {
	if s.current < 0 || s.current >= len(s.players) {
		return nil
	}
	return s.players[s.current]
}

// checkTurn rejects actions by anyone but the current player. An empty id
// acts for the current player.
func (s *service) checkTurn(playerID string) error {
	player := s.currentPlayer()
	if player == nil {
		return ErrInvalidPhase
	}
	if playerID != "" && playerID != player.ID {
		return ErrNotYourTurn
	}
	return nil
}

// canStartTurnAction guards spinning, buying a vowel and opening the rift
func (s *service) canStartTurnAction(playerID string) error {
	if !s.phase.IsTurnStart() {
		return ErrInvalidPhase
	}
	if s.passPending {
		return ErrPassPending
	}
	return s.checkTurn(playerID)
}

// setPhase must be called with mu held
func (s *service) setPhase(phase models.GamePhase) {
	if s.phase == phase {
		return
	}
	s.log.Debug().
		Str("from", string(s.phase)).
		Str("to", string(phase)).
		Int("round", s.round).
		Msg("phase transition")
	s.phase = phase
}

func (s *service) turnPhase() models.GamePhase {
	if player := s.currentPlayer(); player != nil && player.IsAI() {
		return models.PhaseTurnAI
	}
	return models.PhaseTurnHuman
}

// reject warns the player about a rule violation and returns err
func (s *service) reject(action string, err error) error {
	s.log.Debug().Err(err).Str("action", action).Msg("action rejected")
	s.notifier.Add(err.Error(), models.SeverityWarning)
	return err
}

// ignore returns err without a notification, used for ordering races
func (s *service) ignore(action string, err error) error {
	s.log.Debug().Err(err).Str("action", action).Str("phase", string(s.phase)).Msg("action ignored")
	return err
}

func (s *service) notify(severity models.Severity, format string, args ...any) {
	s.notifier.Add(fmt.Sprintf(format, args...), severity)
}

func (s *service) stopPassTimer() {
	if s.passTimer != nil {
		s.passTimer.Stop()
		s.passTimer = nil
	}
	s.passPending = false
	s.passReason = ""
}

func (s *service) stopRift() {
	if s.riftTimer != nil {
		s.riftTimer.Stop()
		s.riftTimer = nil
	}
	if s.rift != nil {
		s.rift.End()
	}
	s.riftGen++
}
