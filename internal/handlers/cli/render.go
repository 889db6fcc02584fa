package cli

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/wheelrift/internal/models"
)

// renderState formats the board, the seats and the host line
func renderState(state *models.GameState) string {
	var b strings.Builder

	if state == nil || state.Phase == models.PhaseTitle {
		b.WriteString("\n== ELEMENTAL WHEEL ==\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\n-- Round %d/%d", state.Round, state.TotalRounds)
	if state.Board != nil {
		fmt.Fprintf(&b, " [%s]", state.Board.Category)
	}
	b.WriteString(" --\n")

	if state.Board != nil {
		fmt.Fprintf(&b, "  %s\n", spaced(state.Board.Masked))
		if len(state.Board.Guessed) > 0 {
			fmt.Fprintf(&b, "  used: %s\n", spaced(string(state.Board.Guessed)))
		}
	}

	for i, p := range state.Players {
		marker := " "
		if i == state.CurrentPlayerIndex {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %-8s $%-6d total $%-6d %s\n",
			marker, p.Name, p.RoundBank, p.TotalBank, renderStatus(p.Status))
	}

	if state.Rift != nil && state.Rift.Active {
		fmt.Fprintf(&b, "  RIFT %s  score %d\n", renderPool(state.Rift.Pool), state.Rift.ScoreCount)
	}
	if state.HostLine != "" {
		fmt.Fprintf(&b, "  %s\n", state.HostLine)
	}
	fmt.Fprintf(&b, "  (%s)\n", renderPrompt(state))

	return b.String()
}

// renderPrompt hints at what the current phase is waiting for
func renderPrompt(state *models.GameState) string {
	player := state.CurrentPlayer()
	switch state.Phase {
	case models.PhaseTurnHuman, models.PhaseAwaitAction:
		if player != nil && player.IsAI() {
			return player.Name + " is thinking"
		}
		if state.PassPending {
			return "passing"
		}
		return "spin, vowel, solve or pass"
	case models.PhaseTurnAI:
		return player.Name + " is thinking"
	case models.PhaseSpin:
		return "spinning"
	case models.PhaseAwaitConsonant:
		return "pick a consonant"
	case models.PhaseBuyVowel:
		return "pick a vowel"
	case models.PhaseAnagramRift:
		return "word <word> or end"
	case models.PhaseRoundEnd:
		return "next"
	case models.PhaseGameEnd:
		return "restart or scores"
	}
	return string(state.Phase)
}

func renderStatus(status models.ElementStatus) string {
	var parts []string
	if status.ComboCount > 1 && status.LastElement != models.ElementNone {
		parts = append(parts, fmt.Sprintf("%s x%d", status.LastElement, status.ComboCount))
	}
	for _, e := range status.QueuedEffects {
		switch e.Kind {
		case models.EffectFireRevealNextVowel:
			parts = append(parts, "fire")
		case models.EffectIceNegateNextHazard:
			parts = append(parts, fmt.Sprintf("ice(%d)", e.Charges))
		}
	}
	return strings.Join(parts, " ")
}

func renderPool(pool []rune) string {
	return spaced(string(pool))
}

func renderNotification(n *models.Notification) string {
	switch n.Severity {
	case models.SeverityWarning, models.SeverityError:
		return fmt.Sprintf("! %s\n", n.Message)
	case models.SeveritySuccess:
		return fmt.Sprintf("* %s\n", n.Message)
	}
	return fmt.Sprintf("- %s\n", n.Message)
}

func renderResult(result *models.GameResult) string {
	var b strings.Builder
	b.WriteString("\n== FINAL STANDINGS ==\n")
	for i, s := range result.Standings {
		fmt.Fprintf(&b, "%d. %-8s $%d\n", i+1, s.Name, s.TotalBank)
	}
	return b.String()
}

func renderLeaderboard(entries []*models.ScoreEntry) string {
	if len(entries) == 0 {
		return "No games recorded yet.\n"
	}

	var b strings.Builder
	b.WriteString("== BEST SCORES ==\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %-8s $%d\n", i+1, e.Name, e.Score)
	}
	return b.String()
}

// spaced puts a space between runes so blanks read as separate tiles
func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
