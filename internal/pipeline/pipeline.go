// Package pipeline orchestrates the full wrap run: parse every source,
// merge and deduplicate the survivors, then summarize them.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/achievements"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/analyzer"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/csvparser"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/dedup"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/docparser"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/logging"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/models"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/parsererror"
	"github.com/VenkataManognaKopparapu/credit-card-wrapped/internal/persona"
)

// SourceKind tells the pipeline which parser handles a source.
type SourceKind string

const (
	// KindTabular marks CSV exports with a header row.
	KindTabular SourceKind = "tabular"
	// KindDocument marks opaque statements, typically PDFs.
	KindDocument SourceKind = "document"
)

// Source is one input to a wrap run.
type Source struct {
	Name string
	Data []byte
	Kind SourceKind
}

// Pipeline wires the parsers and the summarizer together. A failed
// source never aborts the run; only an empty merged pool does.
type Pipeline struct {
	csvParser *csvparser.Parser
	docParser *docparser.Parser
	analyzer  *analyzer.Analyzer
	logger    logging.Logger
}

func New(csvParser *csvparser.Parser, docParser *docparser.Parser, a *analyzer.Analyzer, logger logging.Logger) *Pipeline {
	return &Pipeline{
		csvParser: csvParser,
		docParser: docParser,
		analyzer:  a,
		logger:    logger,
	}
}

// sourceResult carries one source's outcome back to the collection loop.
// Exactly one of txs and err is set.
type sourceResult struct {
	txs []models.Transaction
	err error
}

// Run parses all sources concurrently and produces the wrap result.
// It returns *parsererror.EmptyResultError when no source contributed
// a single valid transaction.
//
// Results are collected in input order, not completion order, so the
// candidate list handed to dedup is deterministic: when two sources carry
// the same charge, the earlier source always wins the card attribution.
func (p *Pipeline) Run(ctx context.Context, sources []Source) (models.WrapResult, error) {
	results := make([]sourceResult, len(sources))
	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			txs, err := p.parseSource(ctx, src)
			results[i] = sourceResult{txs: txs, err: err}
		}(i, src)
	}
	wg.Wait()

	var candidates []models.Transaction
	var reasons []string
	for i, res := range results {
		if res.err != nil {
			p.logger.WithError(res.err).Warn("source rejected",
				logging.Field{Key: logging.FieldSource, Value: sources[i].Name})
			reasons = append(reasons, fmt.Sprintf("%s: %v", sources[i].Name, res.err))
			continue
		}
		p.logger.Info("source parsed",
			logging.Field{Key: logging.FieldSource, Value: sources[i].Name},
			logging.Field{Key: logging.FieldCount, Value: len(res.txs)})
		candidates = append(candidates, res.txs...)
	}

	if len(candidates) == 0 {
		return models.WrapResult{}, &parsererror.EmptyResultError{Reasons: reasons}
	}

	canonical := dedup.Deduplicate(candidates, p.logger)
	summary := p.analyzer.Analyze(canonical)
	summary.Persona = persona.Assign(summary, p.logger)
	badges := achievements.Evaluate(canonical, summary, p.logger)

	p.logger.Info("wrap complete",
		logging.Field{Key: logging.FieldCount, Value: summary.TransactionCount})

	return models.WrapResult{Summary: summary, Achievements: badges, Transactions: canonical}, nil
}

func (p *Pipeline) parseSource(ctx context.Context, src Source) ([]models.Transaction, error) {
	switch src.Kind {
	case KindDocument:
		return p.docParser.Parse(ctx, src.Data, src.Name)
	case KindTabular:
		return p.csvParser.Parse(bytes.NewReader(src.Data), src.Name)
	default:
		return nil, fmt.Errorf("unknown source kind %q", src.Kind)
	}
}
