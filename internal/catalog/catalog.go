package catalog

import (
	"fmt"

	"github.com/KirkDiggler/wheelrift/internal/board"
	"github.com/KirkDiggler/wheelrift/internal/common/random"
	"github.com/KirkDiggler/wheelrift/internal/models"
)

// CatalogError is a custom error type for configuration errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

const (
	ErrNoWedges       CatalogError = "wedge catalog is empty"
	ErrNoPuzzles      CatalogError = "puzzle pool is empty"
	ErrCashNoValue    CatalogError = "cash wedge has no value"
	ErrValueOnNonCash CatalogError = "only cash wedges carry a value"
	ErrBadElement     CatalogError = "unknown wedge element"
	ErrBadKind        CatalogError = "unknown wedge kind"
)

// Puzzle is one category/phrase pair
type Puzzle struct {
	Category string
	Phrase   string
}

// Puzzles is the pool rounds draw from
type Puzzles []Puzzle

// Random picks a puzzle uniformly
func (p Puzzles) Random(roller random.Roller) Puzzle {
	return p[random.Index(roller, len(p))]
}

// Validate checks wedge and puzzle consistency. Any error here is a
// configuration problem and should stop startup.
func Validate(wedges []models.Wedge, puzzles Puzzles) error {
	if len(wedges) == 0 {
		return ErrNoWedges
	}
	if len(puzzles) == 0 {
		return ErrNoPuzzles
	}

	for i, w := range wedges {
		switch w.Kind {
		case models.WedgeKindCash:
			if w.Value <= 0 {
				return fmt.Errorf("wedge %d (%q): %w", i, w.Label, ErrCashNoValue)
			}
		case models.WedgeKindBankrupt, models.WedgeKindLoseTurn, models.WedgeKindSpecial:
			if w.Value != 0 {
				return fmt.Errorf("wedge %d (%q): %w", i, w.Label, ErrValueOnNonCash)
			}
		default:
			return fmt.Errorf("wedge %d (%q): %w", i, w.Label, ErrBadKind)
		}

		switch w.Element {
		case models.ElementNone, models.ElementFire, models.ElementIce, models.ElementLightning:
		default:
			return fmt.Errorf("wedge %d (%q): %w", i, w.Label, ErrBadElement)
		}
	}

	for i, p := range puzzles {
		if _, err := board.New(p.Category, p.Phrase); err != nil {
			return fmt.Errorf("puzzle %d (%q): %w", i, p.Phrase, err)
		}
	}
	return nil
}
