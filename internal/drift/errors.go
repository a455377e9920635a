package drift

import "fmt"

// ErrorKind classifies where in the pipeline an analysis failed.
type ErrorKind string

const (
	// KindLoad: a data source could not be read or parsed.
	KindLoad ErrorKind = "load"
	// KindSchema: an expected feature column is missing from a dataset.
	KindSchema ErrorKind = "schema"
	// KindComputation: the statistical test could not be evaluated.
	KindComputation ErrorKind = "computation"
	// KindFormat: the result could not be serialized. Fatal.
	KindFormat ErrorKind = "format"
)

// AnalysisError is the single error type surfaced by the drift pipeline.
// Every failure from load through serialization carries one of the
// kinds above; there is no partial-report degradation.
type AnalysisError struct {
	Kind ErrorKind
	Err  error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("drift: %s error: %v", e.Kind, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// NewError wraps err with the given kind. If err is already an
// AnalysisError it is returned unchanged so the original kind survives
// propagation through outer pipeline stages.
func NewError(kind ErrorKind, err error) *AnalysisError {
	if ae, ok := err.(*AnalysisError); ok {
		return ae
	}
	return &AnalysisError{Kind: kind, Err: err}
}

// Errorf wraps a formatted error with the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *AnalysisError {
	return &AnalysisError{Kind: kind, Err: fmt.Errorf(format, args...)}
}
