// Package wrap contains the command that runs the full wrap pipeline
// over one or more card exports and statements.
package wrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/cmd/root"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/analyzer"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/categorizer"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/csvparser"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/docparser"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/fileutils"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/pipeline"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/report"
)

// Cmd is the wrap command
var Cmd = &cobra.Command{
	Use:   "wrap [files...]",
	Short: "Build a spending wrap from card exports and statements.",
	Long: `Wrap reads each input file, parses it with the matching parser
(CSV exports by header labels, PDF statements via document extraction),
merges and deduplicates the transactions, and renders the report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWrap,
}

// exportPath, when set, receives the normalized deduplicated transactions
// as CSV alongside the report.
var exportPath string

func init() {
	Cmd.Flags().StringVar(&exportPath, "export-csv", "", "Also write the normalized transactions to a CSV file")
}

func runWrap(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg
	log := root.Log

	sources, err := loadSources(args, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
	defer cancel()

	docParser, closeExtractor, err := buildDocParser(ctx, log)
	if err != nil {
		return err
	}
	defer closeExtractor()

	classifier, err := categorizer.NewCategorizerFromFile(cfg.Categories.File, log)
	if err != nil {
		return fmt.Errorf("failed to load category rules: %w", err)
	}

	p := pipeline.New(
		csvparser.NewParser(log),
		docParser,
		analyzer.New(classifier, nil, log),
		log,
	)

	result, err := p.Run(ctx, sources)
	if err != nil {
		return err
	}

	if exportPath != "" {
		if err := exportTransactions(result.Transactions, exportPath, log); err != nil {
			return err
		}
	}

	format := cfg.Report.Format
	if root.SharedFlags.Format != "" {
		format = root.SharedFlags.Format
	}
	out, err := report.NewGenerator(log).Generate(result, format)
	if err != nil {
		return err
	}

	if root.SharedFlags.Output != "" {
		if err := fileutils.WriteFile(root.SharedFlags.Output, out, 0644); err != nil {
			return err
		}
		log.Info("report written",
			logging.Field{Key: logging.FieldFile, Value: root.SharedFlags.Output})
		return nil
	}

	_, err = os.Stdout.Write(out)
	return err
}

// exportTransactions writes the canonical set as CSV, one row per
// transaction in chronological order.
func exportTransactions(txs models.CanonicalTransactionSet, path string, log logging.Logger) error {
	data, err := gocsv.MarshalBytes(&txs)
	if err != nil {
		return fmt.Errorf("failed to marshal transactions: %w", err)
	}
	if err := fileutils.WriteFile(path, data, 0644); err != nil {
		return err
	}
	log.Info("transactions exported",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(txs)})
	return nil
}

// loadSources reads every input file and classifies it as tabular or
// document by content magic and extension.
func loadSources(paths []string, log logging.Logger) ([]pipeline.Source, error) {
	sources := make([]pipeline.Source, 0, len(paths))
	for _, path := range paths {
		data, err := fileutils.ReadFile(path)
		if err != nil {
			return nil, err
		}

		kind := pipeline.KindTabular
		if fileutils.IsDocument(path, data) {
			kind = pipeline.KindDocument
		}
		log.Debug("loaded source",
			logging.Field{Key: logging.FieldFile, Value: path},
			logging.Field{Key: logging.FieldFormat, Value: string(kind)})

		sources = append(sources, pipeline.Source{Name: path, Data: data, Kind: kind})
	}
	return sources, nil
}

// buildDocParser wires the Gemini extractor when AI is enabled and a
// key is configured. Without it, document sources are rejected with a
// clear reason while tabular sources still parse.
func buildDocParser(ctx context.Context, log logging.Logger) (*docparser.Parser, func(), error) {
	cfg := root.Cfg
	noop := func() {}

	if !cfg.AI.Enabled || cfg.AI.APIKey == "" {
		log.Debug("document extraction disabled",
			logging.Field{Key: "ai_enabled", Value: cfg.AI.Enabled})
		return docparser.NewParser(nil, log), noop, nil
	}

	extractor, err := docparser.NewGeminiExtractor(ctx, cfg.AI.APIKey, cfg.AI.Model, log)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to initialize document extractor: %w", err)
	}
	return docparser.NewParser(extractor, log), func() { _ = extractor.Close() }, nil
}
