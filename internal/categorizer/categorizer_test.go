package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
)

func TestCategorize_KeywordRules(t *testing.T) {
	c := NewCategorizer(&logging.MockLogger{})

	tests := []struct {
		description string
		want        string
	}{
		{"UBER TRIP SAN FRANCISCO", "Travel & Transport"},
		{"SHELL OIL 5543", "Travel & Transport"},
		{"WHOLE FOODS MARKET", "Groceries"},
		{"TRADER JOES #552", "Groceries"},
		{"STARBUCKS STORE 1234", "Food & Drink"},
		{"DOORDASH*CHIPOTLE", "Food & Drink"},
		{"AMAZON MKTPL", "Shopping"},
		{"TARGET 00123", "Shopping"},
		{"NETFLIX.COM", "Entertainment"},
		{"SPOTIFY USA", "Entertainment"},
		{"ACME PLUMBING", "General"},
		{"", "General"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := c.Categorize(models.Transaction{Description: tt.description})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategorize_FirstRuleWins(t *testing.T) {
	c := NewCategorizer(&logging.MockLogger{})

	// "uber" (Travel & Transport) is evaluated before "amazon" (Shopping).
	got := c.Categorize(models.Transaction{Description: "UBER EATS VIA AMAZON PAY"})
	assert.Equal(t, "Travel & Transport", got)
}

func TestCategorize_ExplicitCategoryBypasses(t *testing.T) {
	c := NewCategorizer(&logging.MockLogger{})

	tx := models.Transaction{Description: "STARBUCKS", Category: "Business"}
	assert.Equal(t, "Business", c.Categorize(tx))
}

func TestNewCategorizerFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `categories:
  - name: Pets
    keywords: [petco, chewy]
  - name: Coffee
    keywords: [starbucks]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	c, err := NewCategorizerFromFile(path, &logging.MockLogger{})
	require.NoError(t, err)

	assert.Equal(t, "Pets", c.Categorize(models.Transaction{Description: "CHEWY.COM"}))
	assert.Equal(t, "Coffee", c.Categorize(models.Transaction{Description: "STARBUCKS"}))
	// Built-in rules are replaced, not merged.
	assert.Equal(t, "General", c.Categorize(models.Transaction{Description: "NETFLIX"}))
}

func TestNewCategorizerFromFile_EmptyPathUsesDefaults(t *testing.T) {
	c, err := NewCategorizerFromFile("", &logging.MockLogger{})
	require.NoError(t, err)
	assert.Equal(t, "Shopping", c.Categorize(models.Transaction{Description: "AMAZON"}))
}

func TestNewCategorizerFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: []"), 0600))

	_, err := NewCategorizerFromFile(path, &logging.MockLogger{})
	assert.Error(t, err)
}
