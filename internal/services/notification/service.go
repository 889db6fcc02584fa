package notification

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wheelrift/internal/common/clock"
	"github.com/KirkDiggler/wheelrift/internal/common/uuid"
	"github.com/KirkDiggler/wheelrift/internal/models"
)

const (
	// DefaultTTL is how long a notification stays up
	DefaultTTL = 3 * time.Second

	// DefaultMaxVisible caps the live list; the oldest is dropped first
	DefaultMaxVisible = 5
)

// Config holds configuration for the notification service
type Config struct {
	TTL        time.Duration
	MaxVisible int

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zerolog.Logger
}

type entry struct {
	note  *models.Notification
	timer clock.Timer
}

// service keeps one expiry timer per notification id
type service struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string

	ttl        time.Duration
	maxVisible int
	clock      clock.Clock
	uuid       uuid.UUID
	log        zerolog.Logger
}

// New creates a notification service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	s := &service{
		entries:    make(map[string]*entry),
		ttl:        cfg.TTL,
		maxVisible: cfg.MaxVisible,
		clock:      cfg.Clock,
		uuid:       cfg.UUIDGenerator,
		log:        zerolog.Nop(),
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.maxVisible <= 0 {
		s.maxVisible = DefaultMaxVisible
	}
	if cfg.Logger != nil {
		s.log = cfg.Logger.With().Str("component", "notification").Logger()
	}
	return s, nil
}

// Add posts a message and arms its expiry timer
func (s *service) Add(message string, severity models.Severity) *models.Notification {
	if severity == "" {
		severity = models.SeverityInfo
	}
	now := s.clock.Now()
	note := &models.Notification{
		ID:        s.uuid.NewUUID(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.order) >= s.maxVisible {
		s.removeLocked(s.order[0])
	}

	id := note.ID
	e := &entry{note: note}
	s.entries[id] = e
	s.order = append(s.order, id)
	e.timer = s.clock.AfterFunc(s.ttl, func() { s.expire(id, e) })

	s.log.Debug().Str("id", id).Str("severity", string(severity)).Msg(message)

	out := *note
	return &out
}

// expire drops the entry only if it is still the one the timer was armed for
func (s *service) expire(id string, armed *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.entries[id]; ok && cur == armed {
		s.removeLocked(id)
	}
}

// List returns copies of the live notifications, oldest first
func (s *service) List() []*models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Notification, 0, len(s.order))
	for _, id := range s.order {
		n := *s.entries[id].note
		out = append(out, &n)
	}
	return out
}

// Dismiss removes a notification before it expires
func (s *service) Dismiss(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return false
	}
	s.removeLocked(id)
	return true
}

// Clear removes every notification and stops their timers
func (s *service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range append([]string(nil), s.order...) {
		s.removeLocked(id)
	}
}

func (s *service) removeLocked(id string) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	delete(s.entries, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
