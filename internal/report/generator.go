// Package report renders a wrap result for human or machine consumption.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
)

// Generator renders wrap results in the supported formats (text, json).
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new report generator.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate renders the result in the requested format. It returns the
// report as a byte slice and an error when the format is unsupported.
func (g *Generator) Generate(result models.WrapResult, format string) ([]byte, error) {
	switch format {
	case "text":
		return g.generateText(result), nil
	case "json":
		return g.generateJSON(result)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(result models.WrapResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("failed to marshal report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateText(result models.WrapResult) []byte {
	var b strings.Builder
	s := result.Summary

	fmt.Fprintln(&b, "========================================")
	fmt.Fprintln(&b, "       YOUR YEAR IN SPENDING")
	fmt.Fprintln(&b, "========================================")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "SUMMARY")
	fmt.Fprintf(&b, "  Total spent:        $%s\n", s.TotalSpent.StringFixed(2))
	fmt.Fprintf(&b, "  Transactions:       %d\n", s.TransactionCount)
	fmt.Fprintf(&b, "  Average purchase:   $%s\n", s.AverageTransaction.StringFixed(2))
	fmt.Fprintf(&b, "  Busiest month:      %s\n", s.BusiestMonth)
	fmt.Fprintf(&b, "  Top merchant:       %s ($%s across %d purchases)\n",
		s.TopMerchant.Name, s.TopMerchant.Amount.StringFixed(2), s.TopMerchant.Count)
	fmt.Fprintf(&b, "  Biggest splurge:    %s ($%s on %s)\n",
		s.MostExpensivePurchase.Merchant,
		s.MostExpensivePurchase.Amount.StringFixed(2),
		s.MostExpensivePurchase.Date.Format("2006-01-02"))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "YOUR PERSONA")
	fmt.Fprintf(&b, "  %s %s\n", s.Persona.Emoji, s.Persona.Title)
	fmt.Fprintf(&b, "  %s\n", s.Persona.Description)
	fmt.Fprintf(&b, "  Roast: %s\n", s.Persona.Roast)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "TOP SPENDING")
	for _, c := range s.TopCategories {
		fmt.Fprintf(&b, "  %-22s $%10s  (%.1f%%)\n", c.Name, c.Amount.StringFixed(2), c.Percentage)
	}
	if len(s.CardBreakdown) > 1 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "  By card:")
		for _, cb := range s.CardBreakdown {
			fmt.Fprintf(&b, "  %-22s $%10s  (%.1f%%)\n", cb.CardName, cb.Amount.StringFixed(2), cb.Percentage)
		}
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "ACHIEVEMENTS")
	for _, a := range result.Achievements {
		status := " "
		if a.Earned {
			status = "x"
		}
		fmt.Fprintf(&b, "  [%s] %s %-20s %s (%s)\n", status, a.Emoji, a.Name, a.Description, a.Progress)
	}

	return []byte(b.String())
}
