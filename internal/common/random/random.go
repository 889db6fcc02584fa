package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/wheelrift/internal/common/random Roller

// Roller picks uniformly among a number of faces
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int
}

// Config for the default roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// SeededRoller is a Roller backed by math/rand. Safe for concurrent use.
type SeededRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &SeededRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random value with the specified number of sides.
// Fewer than one side always rolls 1.
func (r *SeededRoller) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// Index converts a roll into a zero-based slice index
func Index(r Roller, n int) int {
	if n <= 1 {
		return 0
	}
	return r.Roll(n) - 1
}
