package csvparser

import (
	"strings"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/parsererror"
)

// ColumnMap holds the resolved header labels for each transaction role.
// Date and Amount are always present; Description and Category may be empty
// when the source carries no such column.
type ColumnMap struct {
	Date        string
	Amount      string
	Description string
	Category    string
}

// ResolveColumns inspects a header row case-insensitively and assigns each
// role the first label matching its substring set:
//
//	date:        first label containing "date" or "time"
//	amount:      first label containing "amount", "debit" or "cost",
//	             excluding any containing "original"
//	description: first label containing "description", "merchant", "payee",
//	             "name" or "narrative"
//	category:    first label containing "category" or "type"
//
// Roles are resolved independently, so one label may serve more than one role.
// A source with no identifiable date or amount column is rejected as a whole
// with a SchemaError; row-by-row recovery is not attempted.
func ResolveColumns(source string, labels []string) (ColumnMap, error) {
	cm := ColumnMap{
		Date: findLabel(labels, func(k string) bool {
			return strings.Contains(k, "date") || strings.Contains(k, "time")
		}),
		Amount: findLabel(labels, func(k string) bool {
			return !strings.Contains(k, "original") &&
				(strings.Contains(k, "amount") || strings.Contains(k, "debit") || strings.Contains(k, "cost"))
		}),
		Description: findLabel(labels, func(k string) bool {
			return containsAny(k, "description", "merchant", "payee", "name", "narrative")
		}),
		Category: findLabel(labels, func(k string) bool {
			return strings.Contains(k, "category") || strings.Contains(k, "type")
		}),
	}

	if cm.Date == "" {
		return ColumnMap{}, &parsererror.SchemaError{Source: source, Headers: labels, Missing: "date"}
	}
	if cm.Amount == "" {
		return ColumnMap{}, &parsererror.SchemaError{Source: source, Headers: labels, Missing: "amount"}
	}

	return cm, nil
}

func findLabel(labels []string, match func(lowered string) bool) string {
	for _, label := range labels {
		if match(strings.ToLower(label)) {
			return label
		}
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
