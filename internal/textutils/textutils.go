// Package textutils provides text cleaning utilities for merchant descriptors.
package textutils

import (
	"regexp"
	"strings"
)

// Card-network descriptors carry boilerplate that obscures the merchant:
// authorization stamps, long reference numbers, embedded short dates.
var (
	boilerplateRe = regexp.MustCompile(`(?i)(PURCHASE AUTHORIZED ON \d{2}/\d{2})|(\d{10,})|(DEBIT CARD \d+)`)
	shortDateRe   = regexp.MustCompile(`\d{2}/\d{2}`)
	multiSpaceRe  = regexp.MustCompile(`\s{2,}`)
)

// CleanMerchantName derives a display merchant name from a raw transaction
// description: boilerplate and reference noise is stripped, whitespace
// collapsed, and the name truncated at the first '*' delimiter that card
// networks use to append location or order identifiers.
func CleanMerchantName(description string) string {
	name := strings.TrimSpace(description)
	name = boilerplateRe.ReplaceAllString(name, "")
	name = shortDateRe.ReplaceAllString(name, "")
	name = multiSpaceRe.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if idx := strings.Index(name, "*"); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

// TruncateAtStar applies only the '*' truncation rule. Document extraction
// output is already free of tabular boilerplate, so its merchant derivation
// needs just this step.
func TruncateAtStar(description string) string {
	name := strings.TrimSpace(description)
	if idx := strings.Index(name, "*"); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}
