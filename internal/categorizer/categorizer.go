// Package categorizer assigns spending categories to transactions that their
// source did not categorize, using ordered keyword matching against the
// transaction description. Rules are data, not code: the compiled-in defaults
// can be replaced from a YAML file without touching the matching logic.
package categorizer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
)

// CategoryGeneral is the fallback when no rule matches.
const CategoryGeneral = "General"

// CategoryRule maps a category name to the keywords that select it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// rulesFile is the YAML shape of a category override file.
type rulesFile struct {
	Categories []CategoryRule `yaml:"categories"`
}

// DefaultRules returns the built-in ordered rule table. Order matters: the
// first matching rule wins, so more specific merchant classes come before
// general retail.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{Name: "Travel & Transport", Keywords: []string{"uber", "lyft", "gas", "shell", "parking"}},
		{Name: "Groceries", Keywords: []string{"market", "whole foods", "trader joes", "safeway", "kroger"}},
		{Name: "Food & Drink", Keywords: []string{"restaurant", "cafe", "coffee", "starbucks", "doordash", "grubhub"}},
		{Name: "Shopping", Keywords: []string{"amazon", "target", "walmart"}},
		{Name: "Entertainment", Keywords: []string{"netflix", "spotify", "cinema", "hbo"}},
	}
}

// Categorizer performs keyword-based category classification.
type Categorizer struct {
	rules  []CategoryRule
	logger logging.Logger
}

// NewCategorizer creates a Categorizer with the built-in rules.
func NewCategorizer(logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Categorizer{rules: DefaultRules(), logger: logger}
}

// NewCategorizerFromFile creates a Categorizer whose rules are loaded from a
// YAML file. An empty path yields the built-in rules.
func NewCategorizerFromFile(path string, logger logging.Logger) (*Categorizer, error) {
	c := NewCategorizer(logger)
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read categories file: %w", err)
	}

	var cfg rulesFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse categories file: %w", err)
	}
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("categories file %s defines no categories", path)
	}

	c.rules = cfg.Categories
	c.logger.Info("Loaded category rules from file",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(cfg.Categories)})
	return c, nil
}

// Categorize returns the category for a transaction. An explicit category
// supplied by the source always takes precedence and bypasses the rules.
// Otherwise rules are evaluated in order against the lower-cased description
// and the first match wins; no match yields "General".
func (c *Categorizer) Categorize(tx models.Transaction) string {
	if strings.TrimSpace(tx.Category) != "" {
		return tx.Category
	}

	desc := strings.ToLower(tx.Description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, keyword) {
				return rule.Name
			}
		}
	}

	return CategoryGeneral
}
