package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/analyzer"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/categorizer"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/csvparser"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/docparser"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/parsererror"
)

const cardCSV = `Date,Description,Amount
2024-01-01,Starbucks Store 123,$5.50
2024-06-15,Starbucks Store 123,4.75
2024-12-31,Uber Trip Help,12.50
`

func newPipeline(extractor docparser.Extractor) *Pipeline {
	logger := &logging.MockLogger{}
	return New(
		csvparser.NewParser(logger),
		docparser.NewParser(extractor, logger),
		analyzer.New(categorizer.NewCategorizer(logger), nil, logger),
		logger,
	)
}

func TestRun_SingleTabularSource(t *testing.T) {
	p := newPipeline(nil)

	result, err := p.Run(context.Background(), []Source{
		{Name: "card-a.csv", Data: []byte(cardCSV), Kind: KindTabular},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Summary.TransactionCount)
	assert.Equal(t, "22.75", result.Summary.TotalSpent.StringFixed(2))
	assert.NotEmpty(t, result.Summary.Persona.Title)
	assert.Len(t, result.Achievements, 12)
}

func TestRun_DeduplicatesAcrossSources(t *testing.T) {
	extractor := &docparser.MockExtractor{
		Records: []docparser.RawTransaction{
			{Date: "2024-01-01", Description: "STARBUCKS STORE 123", Amount: 5.50},
			{Date: "2024-03-10", Description: "Whole Foods Market", Amount: 82.10},
		},
	}
	p := newPipeline(extractor)

	result, err := p.Run(context.Background(), []Source{
		{Name: "card-a.csv", Data: []byte(cardCSV), Kind: KindTabular},
		{Name: "statement.pdf", Data: []byte("%PDF-1.4 ..."), Kind: KindDocument},
	})
	require.NoError(t, err)

	// The Starbucks charge appears in both sources and must count once,
	// attributed to the earlier source in input order.
	assert.Equal(t, 4, result.Summary.TransactionCount)
	for _, tx := range result.Transactions {
		if tx.Merchant == "Starbucks Store 123" {
			assert.Equal(t, "card-a.csv", tx.Source)
		}
	}
}

func TestRun_DuplicateAttributionIsDeterministic(t *testing.T) {
	extractor := &docparser.MockExtractor{
		Records: []docparser.RawTransaction{
			{Date: "2024-05-01", Description: "Delta Air Lines", Amount: 412.30},
		},
	}
	p := newPipeline(extractor)
	sources := []Source{
		{Name: "a.pdf", Data: []byte("%PDF-"), Kind: KindDocument},
		{Name: "b.pdf", Data: []byte("%PDF-"), Kind: KindDocument},
	}

	// Both statements report the identical charge; the surviving record must
	// come from the first source on every run regardless of goroutine timing.
	for i := 0; i < 50; i++ {
		result, err := p.Run(context.Background(), sources)
		require.NoError(t, err)
		require.Len(t, result.Transactions, 1)
		assert.Equal(t, "a.pdf", result.Transactions[0].Source)
		require.Len(t, result.Summary.CardBreakdown, 1)
		assert.Equal(t, "a.pdf", result.Summary.CardBreakdown[0].CardName)
	}
}

func TestRun_FailedSourceDoesNotAbortRun(t *testing.T) {
	extractor := &docparser.MockExtractor{Err: errors.New("model unavailable")}
	p := newPipeline(extractor)

	result, err := p.Run(context.Background(), []Source{
		{Name: "card-a.csv", Data: []byte(cardCSV), Kind: KindTabular},
		{Name: "statement.pdf", Data: []byte("%PDF-"), Kind: KindDocument},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Summary.TransactionCount)
}

func TestRun_AllSourcesFail(t *testing.T) {
	extractor := &docparser.MockExtractor{Err: errors.New("model unavailable")}
	p := newPipeline(extractor)

	_, err := p.Run(context.Background(), []Source{
		{Name: "bad.csv", Data: []byte("Reference,Value\nx,y\n"), Kind: KindTabular},
		{Name: "statement.pdf", Data: []byte("%PDF-"), Kind: KindDocument},
	})

	var empty *parsererror.EmptyResultError
	require.ErrorAs(t, err, &empty)
	assert.Len(t, empty.Reasons, 2)
}

func TestRun_NoSources(t *testing.T) {
	p := newPipeline(nil)

	_, err := p.Run(context.Background(), nil)

	var empty *parsererror.EmptyResultError
	require.ErrorAs(t, err, &empty)
	assert.Empty(t, empty.Reasons)
}

func TestRun_UnknownKindIsCollected(t *testing.T) {
	p := newPipeline(nil)

	result, err := p.Run(context.Background(), []Source{
		{Name: "card-a.csv", Data: []byte(cardCSV), Kind: KindTabular},
		{Name: "mystery.bin", Data: []byte{0x00}, Kind: SourceKind("binary")},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Summary.TransactionCount)
}
