// Package parsererror defines the typed errors produced by the ingestion
// pipeline. Row-level failures are absorbed where they occur; the types here
// describe source-level and run-level failures that callers may inspect.
package parsererror

import (
	"fmt"
	"strings"
)

// SchemaError reports a tabular source whose header row has no identifiable
// date or amount column. The whole source is rejected, not row-by-row.
type SchemaError struct {
	Source  string
	Headers []string
	Missing string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: could not identify %s column in headers [%s]",
		e.Source, e.Missing, strings.Join(e.Headers, ", "))
}

// RowError reports a single unparseable row. It never escapes the parser;
// rows failing to parse are dropped and the source continues.
type RowError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v", e.Source, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ExtractionError reports a document source whose extraction produced no
// usable records. The source's contribution is wholly discarded; retry is a
// caller decision.
type ExtractionError struct {
	Source string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Source, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// EmptyResultError reports a pipeline run whose combined candidate pool ended
// up empty. It carries every per-source failure reason verbatim so the caller
// can surface one consolidated message.
type EmptyResultError struct {
	Reasons []string
}

func (e *EmptyResultError) Error() string {
	if len(e.Reasons) == 0 {
		return "no valid transactions found in any source"
	}
	return fmt.Sprintf("no valid transactions found in any source:\n%s",
		strings.Join(e.Reasons, "\n"))
}
