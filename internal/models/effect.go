package models

// Element is the elemental tag carried by a wedge
type Element string

const (
	ElementNone      Element = "none"
	ElementFire      Element = "fire"
	ElementIce       Element = "ice"
	ElementLightning Element = "lightning"
)

// EffectKind tags the Effect variant
type EffectKind string

const (
	// EffectFireRevealNextVowel uncovers a vowel on the next correct consonant
	EffectFireRevealNextVowel EffectKind = "fire_reveal_next_vowel"

	// EffectIceNegateNextHazard shields the next bankrupt or lose-a-turn
	EffectIceNegateNextHazard EffectKind = "ice_negate_next_hazard"

	// EffectLightningRevealRandomConsonant uncovers a random consonant at once
	EffectLightningRevealRandomConsonant EffectKind = "lightning_reveal_random_consonant"
)

// Effect is a queued elemental effect. Only the fields of its Kind are set.
type Effect struct {
	Kind EffectKind

	// ExpiresAtRound is the last round a fire effect may be used in
	ExpiresAtRound int

	// Charges left on an ice shield
	Charges int

	// ApplyNow marks a lightning effect for immediate resolution
	ApplyNow bool
}
