// Package persona assigns a spending personality to a summary based on
// its dominant category.
package persona

import (
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
)

// profiles maps a category name to its personality card. Categories
// without an entry fall through to the Mystery Spender.
var profiles = map[string]models.Persona{
	"Food & Drink": {
		Title:       "The Foodie",
		Description: "Your kitchen is pristine because you never use it. Your delivery drivers are your best friends.",
		Roast:       "You spent enough on takeout to fund a small restaurant.",
		Emoji:       "🍔",
	},
	"Travel & Transport": {
		Title:       "The Jetsetter",
		Description: "Always on the move. Your home is just a place you store your suitcase.",
		Roast:       "Your carbon footprint is visible from space.",
		Emoji:       "✈️",
	},
	"Shopping": {
		Title:       "The Shopaholic",
		Description: "Click. Buy. Repeat. The dopamine hit of a delivery notification is your favorite feeling.",
		Roast:       "Your local delivery guy probably thinks you run a warehouse.",
		Emoji:       "🛍️",
	},
	"Groceries": {
		Title:       "The Master Chef",
		Description: "You actually cook at home? In this economy? We are impressed.",
		Roast:       "You bought enough kale to feed a rabbit colony.",
		Emoji:       "🥦",
	},
	"Entertainment": {
		Title:       "The Entertainer",
		Description: "You know how to have a good time. Life is a movie and you bought the front row tickets.",
		Roast:       "You subscribe to services you forgot you had in 2019.",
		Emoji:       "🎬",
	},
	"General": {
		Title:       "The Mystery Spender",
		Description: "Your spending is as mysterious as it is vast. A true enigma of the financial world.",
		Roast:       "We do not even know what you bought, but you sure bought a lot of it.",
		Emoji:       "🕵️",
	},
}

// Assign picks the persona matching the summary's top category by
// spend. Unknown or missing categories resolve to the General persona.
func Assign(summary models.SpendingSummary, logger logging.Logger) models.Persona {
	top := ""
	if len(summary.TopCategories) > 0 {
		top = summary.TopCategories[0].Name
	}

	p, ok := profiles[top]
	if !ok {
		p = profiles["General"]
	}

	logger.Debug("assigned persona",
		logging.Field{Key: logging.FieldCategory, Value: top},
		logging.Field{Key: "persona", Value: p.Title})
	return p
}
