package docparser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
)

// extractionPrompt instructs the model to return a strict JSON array matching
// the RawTransaction schema, spend-positive, with account credits excluded.
const extractionPrompt = `Extract all financial transactions from this bank statement.
Return a JSON array where each object has:
- "date": string, YYYY-MM-DD format
- "description": string, merchant name or transaction description
- "amount": number, absolute positive value
- "category": string, inferred from the description (e.g. Food, Shopping, Transport, Utilities)

Ignore headers, footers, account info, page numbers, and summary tables.
If a transaction has a negative sign, treat it as spending (positive amount).
Ignore payments and credits TO the account (like "Payment Received").
Return ONLY valid raw JSON. Do not wrap the response in code fences.
Output must begin with "[" and end with "]".`

// GeminiExtractor implements Extractor against the Google Gemini API,
// sending the document bytes inline alongside the schema contract.
type GeminiExtractor struct {
	client *genai.Client
	model  string
	logger logging.Logger
}

// NewGeminiExtractor creates a GeminiExtractor with the given API key and
// model name.
func NewGeminiExtractor(ctx context.Context, apiKey, model string, logger logging.Logger) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (e *GeminiExtractor) Close() error {
	return e.client.Close()
}

// Extract sends the PDF bytes to the model and decodes its JSON response into
// raw transaction candidates. Validation of individual candidates is the
// caller's concern; this method only enforces the array shape.
func (e *GeminiExtractor) Extract(ctx context.Context, doc []byte) ([]RawTransaction, error) {
	model := e.client.GenerativeModel(e.model)
	model.SetTemperature(0)

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: "application/pdf", Data: doc},
		genai.Text(extractionPrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini extraction call failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty response from extraction model")
	}

	var records []RawTransaction
	if err := json.Unmarshal([]byte(cleanModelJSON(text)), &records); err != nil {
		return nil, fmt.Errorf("extraction response is not a transaction array: %w", err)
	}

	e.logger.Debug("Extraction model returned records",
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return records, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}

// cleanModelJSON strips Markdown code fences the model may emit despite the
// prompt instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
