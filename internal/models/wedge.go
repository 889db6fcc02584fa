package models

// WedgeKind is the resolution rule of a wedge
type WedgeKind string

const (
	WedgeKindCash     WedgeKind = "cash"
	WedgeKindBankrupt WedgeKind = "bankrupt"
	WedgeKindLoseTurn WedgeKind = "lose_turn"
	WedgeKindSpecial  WedgeKind = "special"
)

// RiftLabel is the label of the special wedge that opens the Anagram Rift
const RiftLabel = "RIFT"

// Wedge is one sector of the wheel
type Wedge struct {
	Kind    WedgeKind
	Label   string
	Value   int // cash wedges only
	Element Element
}

// IsHazard reports whether landing here penalizes the player
func (w Wedge) IsHazard() bool {
	return w.Kind == WedgeKindBankrupt || w.Kind == WedgeKindLoseTurn
}

// IsRift reports whether the wedge triggers the Anagram Rift
func (w Wedge) IsRift() bool {
	return w.Kind == WedgeKindSpecial && w.Label == RiftLabel
}
