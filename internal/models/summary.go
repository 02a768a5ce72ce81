package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendingCategory is one ranked entry of the category breakdown.
type SpendingCategory struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Color      string          `json:"color"`
}

// CardBreakdown attributes spend to one source file (one card export).
type CardBreakdown struct {
	CardName   string          `json:"cardName"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// MerchantStats describes cumulative spend at a single merchant.
type MerchantStats struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// PurchaseRecord is a merchant/amount/date triple for temporal extremes.
type PurchaseRecord struct {
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
}

// Persona is the fixed narrative descriptor chosen by dominant category.
type Persona struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Roast       string `json:"roast"`
	Emoji       string `json:"emoji"`
}

// SpendingSummary is the complete derived aggregate for one pipeline run.
// It is computed once from a non-empty CanonicalTransactionSet and never
// mutated afterward.
type SpendingSummary struct {
	TotalSpent         decimal.Decimal    `json:"totalSpent"`
	TransactionCount   int                `json:"transactionCount"`
	AverageTransaction decimal.Decimal    `json:"averageTransaction"`
	TopCategories      []SpendingCategory `json:"topCategories"` // ranked, at most 5
	TopMerchant        MerchantStats      `json:"topMerchant"`
	CardBreakdown      []CardBreakdown    `json:"cardBreakdown"` // desc by amount, unbounded

	// MonthlySpending buckets amounts by calendar month regardless of year;
	// multi-year inputs collapse into the same 12 slots. This is a documented
	// simplification inherited from the product definition.
	MonthlySpending [12]decimal.Decimal `json:"monthlySpending"`

	BusiestMonth          string         `json:"busiestMonth"`
	MostExpensivePurchase PurchaseRecord `json:"mostExpensivePurchase"`
	FirstPurchase         PurchaseRecord `json:"firstPurchase"`
	LastPurchase          PurchaseRecord `json:"lastPurchase"`
	Persona               Persona        `json:"persona"`
}

// MonthNames maps MonthlySpending indexes to display names.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// WrapResult bundles the two read-only views handed to the presentation
// layer. Neither view references the other; both derive from the same
// canonical set in the same run. The canonical set itself rides along for
// callers that export the normalized transactions; it is excluded from the
// JSON report.
type WrapResult struct {
	Summary      SpendingSummary         `json:"summary"`
	Achievements []Achievement           `json:"achievements"`
	Transactions CanonicalTransactionSet `json:"-"`
}
