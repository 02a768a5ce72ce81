// Package docparser adapts an external document-extraction collaborator into
// the pipeline's transaction shape. It does not reimplement extraction; it
// invokes the collaborator and validates its output at the boundary.
package docparser

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/dateutils"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/parsererror"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/textutils"
)

// Parser validates and shapes extraction output for one document source.
type Parser struct {
	extractor Extractor
	logger    logging.Logger
}

// NewParser creates a Parser around the given extractor. A nil logger falls
// back to a default adapter.
func NewParser(extractor Extractor, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{extractor: extractor, logger: logger}
}

// Parse invokes the extraction collaborator for one document and returns the
// validated transactions. Elements without a parseable date or a positive
// amount are dropped; if the collaborator fails, returns a non-array result,
// or zero elements survive filtering, the whole source is rejected with an
// ExtractionError. Retrying is a caller decision, never done here.
func (p *Parser) Parse(ctx context.Context, doc []byte, source string) ([]models.Transaction, error) {
	if p.extractor == nil {
		return nil, &parsererror.ExtractionError{Source: source, Reason: "document extraction is not configured"}
	}

	records, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, &parsererror.ExtractionError{Source: source, Reason: "extraction call failed", Err: err}
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, rec := range records {
		tx, ok := p.shapeRecord(rec, source)
		if !ok {
			continue
		}
		transactions = append(transactions, tx)
	}

	if len(transactions) == 0 {
		return nil, &parsererror.ExtractionError{
			Source: source,
			Reason: fmt.Sprintf("no valid transactions among %d extracted records", len(records)),
		}
	}

	p.logger.Info("Extracted document source",
		logging.Field{Key: logging.FieldSource, Value: source},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions, nil
}

// shapeRecord validates one extracted record and converts it into a
// Transaction. Invalid records are dropped, not errors.
func (p *Parser) shapeRecord(rec RawTransaction, source string) (models.Transaction, bool) {
	if rec.Amount <= 0 || rec.Date == "" {
		return models.Transaction{}, false
	}

	date, err := dateutils.ParseDate(rec.Date)
	if err != nil {
		p.logger.Debug("Dropping extracted record with unparseable date",
			logging.Field{Key: logging.FieldSource, Value: source},
			logging.Field{Key: "date", Value: rec.Date})
		return models.Transaction{}, false
	}

	description := rec.Description
	if description == "" {
		description = "Unknown Transaction"
	}

	return models.Transaction{
		Date:        date,
		Description: description,
		Amount:      decimal.NewFromFloat(rec.Amount),
		Category:    rec.Category,
		Merchant:    textutils.TruncateAtStar(description),
		Source:      source,
	}, true
}
