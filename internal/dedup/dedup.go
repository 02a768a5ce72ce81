// Package dedup collapses transaction records that describe the same
// real-world charge across overlapping sources, e.g. the same statement
// period exported as both CSV and PDF, or an authorization double-reported
// with its settlement.
package dedup

import (
	"sort"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
)

// Deduplicate collapses exact duplicates from the combined candidate list and
// returns the canonical set, sorted ascending by date. The duplicate key is
// (calendar day, amount rounded to 2 decimals, lower-cased trimmed merchant);
// the first occurrence wins and no fuzzy matching is attempted. The sort
// order is part of the canonical set's contract: later stages rely on
// "first" and "last" meaning chronologically first and last.
func Deduplicate(candidates []models.Transaction, logger logging.Logger) models.CanonicalTransactionSet {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	seen := make(map[string]struct{}, len(candidates))
	unique := make([]models.Transaction, 0, len(candidates))

	for _, tx := range candidates {
		key := tx.DedupKey()
		if _, dup := seen[key]; dup {
			logger.Debug("Duplicate transaction removed",
				logging.Field{Key: logging.FieldMerchant, Value: tx.Merchant},
				logging.Field{Key: logging.FieldSource, Value: tx.Source})
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, tx)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Date.Before(unique[j].Date)
	})

	if removed := len(candidates) - len(unique); removed > 0 {
		logger.Info("Collapsed duplicate transactions",
			logging.Field{Key: logging.FieldCount, Value: removed})
	}

	return unique
}
