// Package csvparser normalizes delimited-text card exports into transactions.
// Column roles are discovered dynamically from the header row, so exports from
// different banks are accepted without per-bank configuration.
package csvparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/dateutils"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/textutils"
)

const unknownMerchant = "Unknown Merchant"

// nonAmountRe matches every character that cannot be part of a numeric amount.
var nonAmountRe = regexp.MustCompile(`[^0-9.\-]`)

// Parser normalizes tabular sources into transactions.
type Parser struct {
	logger logging.Logger
}

// NewParser creates a Parser. A nil logger falls back to a default adapter.
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{logger: logger}
}

// Parse reads one tabular source (first row = headers) and returns its
// normalized transactions. The whole source is rejected with a SchemaError
// when no date or amount column can be identified; individual rows that fail
// to parse, including ragged rows with the wrong field count, are dropped and
// never surface as errors.
//
// Parse is a pure function of its input: identical rows always yield
// identical transactions.
func (p *Parser) Parse(r io.Reader, source string) ([]models.Transaction, error) {
	records, err := readRecords(r, source)
	if err != nil {
		return nil, err
	}

	headers := records[0]
	columns, err := ResolveColumns(source, headers)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Resolved source columns",
		logging.Field{Key: logging.FieldSource, Value: source},
		logging.Field{Key: logging.FieldColumn, Value: fmt.Sprintf("%+v", columns)})

	transactions := make([]models.Transaction, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(headers) {
			p.logger.Debug("Dropping row with wrong field count",
				logging.Field{Key: logging.FieldSource, Value: source},
				logging.Field{Key: logging.FieldCount, Value: len(record)})
			continue
		}
		row := make(map[string]string, len(headers))
		for i, label := range headers {
			row[label] = record[i]
		}
		tx, ok := p.normalizeRow(row, columns, source)
		if !ok {
			continue
		}
		transactions = append(transactions, tx)
	}

	p.logger.Info("Normalized tabular source",
		logging.Field{Key: logging.FieldSource, Value: source},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions, nil
}

// normalizeRow converts one raw row into a Transaction. The bool result
// reports whether the row survived validation; rejected rows are logged at
// debug level and silently dropped per the ingestion contract.
func (p *Parser) normalizeRow(row map[string]string, columns ColumnMap, source string) (models.Transaction, bool) {
	rawDate := strings.TrimSpace(row[columns.Date])
	rawAmount := strings.TrimSpace(row[columns.Amount])
	if rawDate == "" || rawAmount == "" {
		return models.Transaction{}, false
	}

	description := unknownMerchant
	if columns.Description != "" {
		if v := strings.TrimSpace(row[columns.Description]); v != "" {
			description = v
		}
	}

	// Payments and credits toward the account are not spend and must not
	// pollute the totals.
	lowerDesc := strings.ToLower(description)
	if strings.Contains(lowerDesc, "payment") || strings.Contains(lowerDesc, "thank you") {
		return models.Transaction{}, false
	}

	amount, err := decimal.NewFromString(nonAmountRe.ReplaceAllString(rawAmount, ""))
	if err != nil {
		p.logger.Debug("Dropping row with unparseable amount",
			logging.Field{Key: logging.FieldSource, Value: source},
			logging.Field{Key: "amount", Value: rawAmount})
		return models.Transaction{}, false
	}
	// Sign carries no meaning once credits are filtered out; spend is positive.
	amount = amount.Abs()
	if amount.IsZero() {
		return models.Transaction{}, false
	}

	date, err := dateutils.ParseDate(rawDate)
	if err != nil {
		p.logger.Debug("Dropping row with unparseable date",
			logging.Field{Key: logging.FieldSource, Value: source},
			logging.Field{Key: "date", Value: rawDate})
		return models.Transaction{}, false
	}

	category := ""
	if columns.Category != "" {
		category = strings.TrimSpace(row[columns.Category])
	}

	return models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    category,
		Merchant:    textutils.CleanMerchantName(description),
		Source:      source,
	}, true
}

// readRecords reads all CSV records without enforcing a uniform field count,
// so a ragged row costs only itself, not the source. The first record is the
// header row; an input without one is rejected.
func readRecords(r io.Reader, source string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading header row of %s: empty input", source)
	}
	return records, nil
}
