// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single validated spend record from any source.
// Amount is always a positive magnitude; the debit/credit sign of the
// originating export is resolved before a Transaction is constructed.
type Transaction struct {
	Date        time.Time       `csv:"Date" json:"date"`
	Description string          `csv:"Description" json:"description"`
	Amount      decimal.Decimal `csv:"Amount" json:"amount"`
	Category    string          `csv:"Category" json:"category,omitempty"` // empty means "infer"
	Merchant    string          `csv:"Merchant" json:"merchant"`
	Source      string          `csv:"Source" json:"source"` // originating file, used for card attribution
}

// MerchantOrDescription returns the cleaned merchant name, falling back to the
// raw description when cleaning produced nothing.
func (t Transaction) MerchantOrDescription() string {
	if strings.TrimSpace(t.Merchant) != "" {
		return t.Merchant
	}
	return t.Description
}

// DedupKey builds the duplicate-collapse key: calendar day, amount rounded to
// two decimal places, and the lower-cased trimmed merchant. Two records with
// the same key describe the same real-world charge.
func (t Transaction) DedupKey() string {
	return t.Date.Format("2006-01-02") + "|" +
		t.Amount.Round(2).String() + "|" +
		strings.ToLower(strings.TrimSpace(t.Merchant))
}

// CanonicalTransactionSet is the deduplicated, time-ascending-sorted sequence
// of transactions for one pipeline run. It is immutable once produced; every
// later stage only reads it.
type CanonicalTransactionSet []Transaction
