package models

// PlayerKind distinguishes the human seat from computer seats
type PlayerKind string

const (
	// PlayerKindHuman is driven by the presentation layer
	PlayerKindHuman PlayerKind = "human"

	// PlayerKindAI is driven by the AI policy
	PlayerKindAI PlayerKind = "ai"
)

// Player represents one seat at the wheel
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the display name of the player
	Name string

	// Kind is human or AI
	Kind PlayerKind

	// Personality flavours host dialogue for AI players
	Personality string

	// RoundBank is money accrued this round
	RoundBank int

	// TotalBank is money banked across rounds
	TotalBank int

	// Status tracks elemental combos and queued effects
	Status ElementStatus
}

// IsAI reports whether the player is computer controlled
func (p *Player) IsAI() bool {
	return p.Kind == PlayerKindAI
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.Status = p.Status.Clone()
	return &c
}

// ElementStatus is the per-player combo counter and effect queue
type ElementStatus struct {
	LastElement   Element
	ComboCount    int
	QueuedEffects []Effect
}

// Clone returns a copy with its own effect slice
func (s ElementStatus) Clone() ElementStatus {
	c := s
	if s.QueuedEffects != nil {
		c.QueuedEffects = make([]Effect, len(s.QueuedEffects))
		copy(c.QueuedEffects, s.QueuedEffects)
	}
	return c
}
