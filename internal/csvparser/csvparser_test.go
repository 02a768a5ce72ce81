package csvparser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/parsererror"
)

func TestParse_StandardExport(t *testing.T) {
	csv := `Date,Description,Amount,Category
2024-01-01,Starbucks,5.50,
2024-06-15,UBER *TRIP,12.50,Travel
2024-12-31,"Whole Foods Market",-89.20,`

	p := NewParser(&logging.MockLogger{})
	txs, err := p.Parse(strings.NewReader(csv), "card-a.csv")
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, "Starbucks", txs[0].Merchant)
	assert.Equal(t, "5.5", txs[0].Amount.String())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.Equal(t, "card-a.csv", txs[0].Source)
	assert.Empty(t, txs[0].Category)

	assert.Equal(t, "UBER", txs[1].Merchant)
	assert.Equal(t, "Travel", txs[1].Category)

	// Negative exports are spend magnitudes.
	assert.True(t, txs[2].Amount.Equal(txs[2].Amount.Abs()))
	assert.Equal(t, "89.2", txs[2].Amount.String())
}

func TestParse_SubstringHeaders(t *testing.T) {
	csv := `Txn Date,Payee,Debit Amount
01/15/2024,SHELL OIL,45.00`

	p := NewParser(&logging.MockLogger{})
	txs, err := p.Parse(strings.NewReader(csv), "card-b.csv")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "SHELL OIL", txs[0].Description)
}

func TestParse_SchemaError(t *testing.T) {
	csv := `Reference,Value
A1,100`

	p := NewParser(&logging.MockLogger{})
	_, err := p.Parse(strings.NewReader(csv), "bad.csv")

	var schemaErr *parsererror.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "bad.csv", schemaErr.Source)
}

func TestParse_SkipsPaymentRows(t *testing.T) {
	csv := `Date,Description,Amount
2024-01-01,Starbucks,5.50
2024-01-02,PAYMENT RECEIVED - THANK YOU,-250.00
2024-01-03,Online Payment,100.00
2024-01-04,Uber,12.00`

	p := NewParser(&logging.MockLogger{})
	txs, err := p.Parse(strings.NewReader(csv), "card.csv")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "Starbucks", txs[0].Description)
	assert.Equal(t, "Uber", txs[1].Description)
}

func TestParse_DropsInvalidRows(t *testing.T) {
	csv := `Date,Description,Amount
2024-01-01,Good Row,10.00
,Missing Date,10.00
2024-01-03,Missing Amount,
2024-01-04,Bad Amount,abc
not-a-date,Bad Date,10.00
2024-01-06,Zero Amount,0.00
2024-01-07,Euro Grouping,$1.209.00`

	p := NewParser(&logging.MockLogger{})
	txs, err := p.Parse(strings.NewReader(csv), "card.csv")
	require.NoError(t, err)

	// Currency symbols and separators are stripped before parsing; rows whose
	// remainder still is not a number are dropped, like "$1.209.00".
	require.Len(t, txs, 1)
	assert.Equal(t, "Good Row", txs[0].Description)
}

func TestParse_DropsRaggedRows(t *testing.T) {
	csv := `Date,Description,Amount
2024-01-01,Starbucks,5.50
2024-01-02,Uber,12.00,extra,fields
2024-01-03,Target,20.00
2024-01-04,Short
2024-01-05,Netflix,15.99`

	p := NewParser(&logging.MockLogger{})
	txs, err := p.Parse(strings.NewReader(csv), "card.csv")
	require.NoError(t, err)

	// Rows with the wrong field count cost only themselves.
	require.Len(t, txs, 3)
	assert.Equal(t, "Starbucks", txs[0].Description)
	assert.Equal(t, "Target", txs[1].Description)
	assert.Equal(t, "Netflix", txs[2].Description)
}

func TestParse_AmountCleaning(t *testing.T) {
	csv := `Date,Description,Amount
2024-01-01,Dollar Sign,$45.10
2024-01-02,Spaces And Code,USD 12.00`

	p := NewParser(&logging.MockLogger{})
	txs, err := p.Parse(strings.NewReader(csv), "card.csv")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "45.1", txs[0].Amount.String())
	assert.Equal(t, "12", txs[1].Amount.String())
}

func TestParse_MissingDescriptionColumn(t *testing.T) {
	csv := `Date,Amount
2024-01-01,5.50`

	p := NewParser(&logging.MockLogger{})
	txs, err := p.Parse(strings.NewReader(csv), "card.csv")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Unknown Merchant", txs[0].Description)
}

func TestParse_Idempotent(t *testing.T) {
	csv := `Date,Description,Amount
2024-01-01,PURCHASE AUTHORIZED ON 01/01 STARBUCKS 1234567890,5.50
2024-06-15,SQ *BLUE BOTTLE,4.75`

	p := NewParser(&logging.MockLogger{})
	first, err := p.Parse(strings.NewReader(csv), "card.csv")
	require.NoError(t, err)
	second, err := p.Parse(strings.NewReader(csv), "card.csv")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
