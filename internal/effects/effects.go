// Package effects implements elemental combo accounting and the effect queue.
//
// It mutates a player's ElementStatus only; phase decisions belong to the
// callers.
package effects

import "github.com/KirkDiggler/wheelrift/internal/models"

// ComboThreshold is the combo count at which effects are issued
const ComboThreshold = 2

// Trigger describes an effect issued by a combo
type Trigger struct {
	Element    models.Element
	ComboCount int
	Effect     models.Effect
}

// Apply records a wedge element against the status and issues the combo
// effect when the run of identical elements reaches the threshold.
// Returns nil when no effect was issued.
func Apply(status *models.ElementStatus, element models.Element, round int) *Trigger {
	switch {
	case element == models.ElementNone || element == "":
		status.ComboCount = 0
		status.LastElement = models.ElementNone
		return nil
	case element == status.LastElement:
		status.ComboCount++
	default:
		status.ComboCount = 1
		status.LastElement = element
	}

	if status.ComboCount < ComboThreshold {
		return nil
	}

	var effect models.Effect
	switch element {
	case models.ElementFire:
		effect = models.Effect{Kind: models.EffectFireRevealNextVowel, ExpiresAtRound: round}
	case models.ElementIce:
		// Shields never stack; a new combo replaces the old charge
		remove(status, models.EffectIceNegateNextHazard)
		effect = models.Effect{Kind: models.EffectIceNegateNextHazard, Charges: 1}
	case models.ElementLightning:
		effect = models.Effect{Kind: models.EffectLightningRevealRandomConsonant, ApplyNow: true}
	default:
		return nil
	}
	status.QueuedEffects = append(status.QueuedEffects, effect)

	return &Trigger{
		Element:    element,
		ComboCount: status.ComboCount,
		Effect:     effect,
	}
}

// Count returns how many queued effects have the kind
func Count(status *models.ElementStatus, kind models.EffectKind) int {
	n := 0
	for _, e := range status.QueuedEffects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// HasIceShield reports whether a hazard would be negated
func HasIceShield(status *models.ElementStatus) bool {
	for _, e := range status.QueuedEffects {
		if e.Kind == models.EffectIceNegateNextHazard && e.Charges > 0 {
			return true
		}
	}
	return false
}

// ConsumeIceShield spends the shield charge. Returns false without a shield.
func ConsumeIceShield(status *models.ElementStatus) bool {
	for i, e := range status.QueuedEffects {
		if e.Kind != models.EffectIceNegateNextHazard || e.Charges <= 0 {
			continue
		}
		e.Charges--
		if e.Charges == 0 {
			removeAt(status, i)
		} else {
			status.QueuedEffects[i] = e
		}
		return true
	}
	return false
}

// TakeFire removes the oldest fire effect still valid for the round
func TakeFire(status *models.ElementStatus, round int) bool {
	for i, e := range status.QueuedEffects {
		if e.Kind == models.EffectFireRevealNextVowel && e.ExpiresAtRound >= round {
			removeAt(status, i)
			return true
		}
	}
	return false
}

// TakePendingLightning removes the first lightning effect marked to apply now
func TakePendingLightning(status *models.ElementStatus) bool {
	for i, e := range status.QueuedEffects {
		if e.Kind == models.EffectLightningRevealRandomConsonant && e.ApplyNow {
			removeAt(status, i)
			return true
		}
	}
	return false
}

// ExpireFire drops fire effects that can no longer be used in the round
func ExpireFire(status *models.ElementStatus, round int) {
	kept := status.QueuedEffects[:0]
	for _, e := range status.QueuedEffects {
		if e.Kind == models.EffectFireRevealNextVowel && e.ExpiresAtRound < round {
			continue
		}
		kept = append(kept, e)
	}
	status.QueuedEffects = kept
}

// ExpireAllFire drops every fire effect; used when the holder's turn ends
func ExpireAllFire(status *models.ElementStatus) {
	remove(status, models.EffectFireRevealNextVowel)
}

// Reset clears combos and all queued effects
func Reset(status *models.ElementStatus) {
	*status = models.ElementStatus{LastElement: models.ElementNone}
}

func remove(status *models.ElementStatus, kind models.EffectKind) {
	kept := status.QueuedEffects[:0]
	for _, e := range status.QueuedEffects {
		if e.Kind != kind {
			kept = append(kept, e)
		}
	}
	status.QueuedEffects = kept
}

func removeAt(status *models.ElementStatus, i int) {
	status.QueuedEffects = append(status.QueuedEffects[:i], status.QueuedEffects[i+1:]...)
}
