package catalog

import (
	"strconv"

	"github.com/KirkDiggler/wheelrift/internal/models"
)

func cash(value int, element models.Element) models.Wedge {
	return models.Wedge{
		Kind:    models.WedgeKindCash,
		Label:   "$" + strconv.Itoa(value),
		Value:   value,
		Element: element,
	}
}

// DefaultWedges returns the standard 24-wedge wheel, clockwise from the pointer.
// Elements repeat in runs of neighbours so combos are reachable.
func DefaultWedges() []models.Wedge {
	return []models.Wedge{
		cash(500, models.ElementFire),
		cash(300, models.ElementFire),
		cash(700, models.ElementFire),
		{Kind: models.WedgeKindBankrupt, Label: "BANKRUPT", Element: models.ElementNone},
		cash(450, models.ElementIce),
		cash(350, models.ElementIce),
		cash(600, models.ElementIce),
		cash(200, models.ElementNone),
		cash(800, models.ElementLightning),
		cash(400, models.ElementLightning),
		{Kind: models.WedgeKindSpecial, Label: models.RiftLabel, Element: models.ElementNone},
		cash(550, models.ElementNone),
		cash(900, models.ElementFire),
		cash(250, models.ElementFire),
		{Kind: models.WedgeKindLoseTurn, Label: "LOSE A TURN", Element: models.ElementIce},
		cash(650, models.ElementIce),
		cash(300, models.ElementIce),
		cash(500, models.ElementNone),
		cash(750, models.ElementLightning),
		cash(350, models.ElementLightning),
		cash(1000, models.ElementNone),
		cash(400, models.ElementFire),
		cash(600, models.ElementNone),
		cash(5000, models.ElementNone),
	}
}
