package docparser

import "context"

// RawTransaction is the strict intermediate record the extraction collaborator
// must produce for each transaction found in a document. Anything not
// conforming is rejected at this boundary and never trusted deeper into the
// pipeline.
type RawTransaction struct {
	Date        string  `json:"date"` // ISO calendar day, YYYY-MM-DD
	Description string  `json:"description"`
	Amount      float64 `json:"amount"` // absolute positive value
	Category    string  `json:"category"`
}

// Extractor turns document bytes into raw transaction candidates. The core
// treats this strictly as bytes -> candidates | error and is decoupled from
// how the collaborator achieves the extraction.
type Extractor interface {
	Extract(ctx context.Context, doc []byte) ([]RawTransaction, error)
}

// MockExtractor implements Extractor for testing purposes. It returns
// predefined records or an error instead of calling an external service.
type MockExtractor struct {
	Records []RawTransaction
	Err     error
}

// Extract returns the predefined mock records or error.
func (m *MockExtractor) Extract(ctx context.Context, doc []byte) ([]RawTransaction, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}
