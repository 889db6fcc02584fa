package wheel

import (
	"time"

	"github.com/KirkDiggler/wheelrift/internal/common/clock"
	"github.com/KirkDiggler/wheelrift/internal/common/random"
)

// DefaultSpinDuration stands in for the wheel animation
const DefaultSpinDuration = 1500 * time.Millisecond

// SpinnerConfig holds configuration for the random spinner
type SpinnerConfig struct {
	Roller   random.Roller
	Clock    clock.Clock
	Duration time.Duration // zero resolves synchronously
}

// RandomSpinner resolves spins to a uniformly random wedge after a delay.
// It plays the part of the wheel renderer when no renderer is attached.
type RandomSpinner struct {
	roller   random.Roller
	clock    clock.Clock
	duration time.Duration
}

// NewRandomSpinner creates a spinner
func NewRandomSpinner(cfg *SpinnerConfig) (*RandomSpinner, error) {
	if cfg == nil {
		return nil, WheelError("config cannot be nil")
	}
	if cfg.Roller == nil {
		return nil, ErrNoRoller
	}
	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	return &RandomSpinner{
		roller:   cfg.Roller,
		clock:    clk,
		duration: cfg.Duration,
	}, nil
}

// Spin picks the landing wedge and reports it through onComplete
func (s *RandomSpinner) Spin(wedgeCount int, onComplete func(wedgeIndex int)) {
	index := random.Index(s.roller, wedgeCount)
	if s.duration <= 0 {
		onComplete(index)
		return
	}
	s.clock.AfterFunc(s.duration, func() { onComplete(index) })
}
