// Package analyzer derives the spending summary from a canonical transaction
// set: totals, per-month series, merchant/category/card breakdowns and
// temporal extremes.
package analyzer

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/dateutils"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
)

// topCategoryCount caps the ranked category breakdown.
const topCategoryCount = 5

// DefaultPalette is the ordered display palette for category colors, cycled
// by rank index.
var DefaultPalette = []string{"#e91e63", "#8e44ad", "#f1c40f", "#1ed760", "#e67e22", "#3498db"}

// Classifier assigns a category to a transaction whose source did not supply
// one.
type Classifier interface {
	Categorize(tx models.Transaction) string
}

// Analyzer computes spending summaries.
type Analyzer struct {
	classifier Classifier
	palette    []string
	logger     logging.Logger
}

// New creates an Analyzer. A nil palette uses DefaultPalette; a nil logger
// falls back to a default adapter.
func New(classifier Classifier, palette []string, logger logging.Logger) *Analyzer {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Analyzer{classifier: classifier, palette: palette, logger: logger}
}

type merchantAgg struct {
	amount decimal.Decimal
	count  int
}

// Analyze consumes a non-empty canonical set and returns the summary with
// every field populated except Persona, which a later stage fills in.
//
// Preconditions: len(txs) >= 1 and ascending date order; the pipeline rejects
// empty runs upstream, so average and busiest-month are always defined here.
//
// Ties are broken deterministically: equal merchant or purchase amounts go to
// the lexicographically smaller merchant name, and an equal monthly maximum
// goes to the earliest calendar month.
func (a *Analyzer) Analyze(txs models.CanonicalTransactionSet) models.SpendingSummary {
	var summary models.SpendingSummary
	summary.TransactionCount = len(txs)

	merchants := make(map[string]*merchantAgg)
	categories := make(map[string]decimal.Decimal)
	sources := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		summary.TotalSpent = summary.TotalSpent.Add(tx.Amount)
		month := dateutils.MonthIndex(tx.Date)
		summary.MonthlySpending[month] = summary.MonthlySpending[month].Add(tx.Amount)

		merchant := tx.MerchantOrDescription()
		agg, ok := merchants[merchant]
		if !ok {
			agg = &merchantAgg{}
			merchants[merchant] = agg
		}
		agg.amount = agg.amount.Add(tx.Amount)
		agg.count++

		// Trim before deciding so a whitespace-only category is inferred,
		// matching the classifier's own notion of "explicit".
		category := strings.TrimSpace(tx.Category)
		if category == "" && a.classifier != nil {
			category = a.classifier.Categorize(tx)
		}
		categories[category] = categories[category].Add(tx.Amount)

		if tx.Source != "" {
			sources[tx.Source] = sources[tx.Source].Add(tx.Amount)
		}

		if better(tx.Amount, merchant, summary.MostExpensivePurchase.Amount, summary.MostExpensivePurchase.Merchant) {
			summary.MostExpensivePurchase = models.PurchaseRecord{
				Merchant: merchant,
				Amount:   tx.Amount,
				Date:     tx.Date,
			}
		}
	}

	summary.AverageTransaction = summary.TotalSpent.Div(decimal.NewFromInt(int64(len(txs))))
	summary.TopMerchant = topMerchant(merchants)
	summary.TopCategories = a.topCategories(categories, summary.TotalSpent)
	summary.CardBreakdown = cardBreakdown(sources, summary.TotalSpent)
	summary.BusiestMonth = busiestMonth(summary.MonthlySpending)

	first, last := txs[0], txs[len(txs)-1]
	summary.FirstPurchase = models.PurchaseRecord{Merchant: first.MerchantOrDescription(), Amount: first.Amount, Date: first.Date}
	summary.LastPurchase = models.PurchaseRecord{Merchant: last.MerchantOrDescription(), Amount: last.Amount, Date: last.Date}

	a.logger.Info("Computed spending summary",
		logging.Field{Key: logging.FieldCount, Value: summary.TransactionCount},
		logging.Field{Key: "total", Value: summary.TotalSpent.StringFixed(2)})

	return summary
}

// better reports whether (amount, merchant) beats the current best: strictly
// larger amount, or equal amount and lexicographically smaller name.
func better(amount decimal.Decimal, merchant string, bestAmount decimal.Decimal, bestMerchant string) bool {
	if amount.GreaterThan(bestAmount) {
		return true
	}
	return amount.Equal(bestAmount) && (bestMerchant == "" || merchant < bestMerchant)
}

// topMerchant picks the merchant with the highest cumulative amount.
func topMerchant(merchants map[string]*merchantAgg) models.MerchantStats {
	var top models.MerchantStats
	names := sortedKeys(merchants)
	for _, name := range names {
		agg := merchants[name]
		if agg.amount.GreaterThan(top.Amount) {
			top = models.MerchantStats{Name: name, Amount: agg.amount, Count: agg.count}
		}
	}
	return top
}

// topCategories ranks categories by amount descending, keeps the top five and
// annotates each with its share of the total and a palette color by rank.
func (a *Analyzer) topCategories(categories map[string]decimal.Decimal, total decimal.Decimal) []models.SpendingCategory {
	ranked := make([]models.SpendingCategory, 0, len(categories))
	for _, name := range sortedKeys(categories) {
		ranked = append(ranked, models.SpendingCategory{
			Name:       name,
			Amount:     categories[name],
			Percentage: percentage(categories[name], total),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})
	if len(ranked) > topCategoryCount {
		ranked = ranked[:topCategoryCount]
	}
	for i := range ranked {
		ranked[i].Color = a.palette[i%len(a.palette)]
	}
	return ranked
}

// cardBreakdown attributes spend to sources, descending by amount. Unlike the
// category view it is unbounded, so its percentages always sum to 100.
func cardBreakdown(sources map[string]decimal.Decimal, total decimal.Decimal) []models.CardBreakdown {
	breakdown := make([]models.CardBreakdown, 0, len(sources))
	for _, name := range sortedKeys(sources) {
		breakdown = append(breakdown, models.CardBreakdown{
			CardName:   name,
			Amount:     sources[name],
			Percentage: percentage(sources[name], total),
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})
	return breakdown
}

// busiestMonth returns the name of the month with the maximum spend; the
// earliest maximum wins on ties.
func busiestMonth(monthly [12]decimal.Decimal) string {
	best := 0
	for i := 1; i < len(monthly); i++ {
		if monthly[i].GreaterThan(monthly[best]) {
			best = i
		}
	}
	return models.MonthNames[best]
}

func percentage(amount, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// sortedKeys returns map keys in lexicographic order so ranking is stable
// across runs regardless of map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
