// Package reporting serializes analysis results. Every run emits
// exactly one structured document: the full report on success, or the
// error document on any failure. Consumers can treat the presence of a
// drift_analysis key as proof the whole pipeline succeeded.
package reporting

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/modelwatch/driftscan/internal/drift"
)

// ErrorDocument is the failure-path output.
type ErrorDocument struct {
	Error          string `json:"error"`
	Details        string `json:"details"`
	Recommendation string `json:"recommendation"`
}

// WriteReport serializes the full report as indented JSON. A marshal
// failure is a format-kind analysis error, treated as fatal.
func WriteReport(w io.Writer, report *drift.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return drift.NewError(drift.KindFormat, fmt.Errorf("marshal report: %w", err))
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return drift.NewError(drift.KindFormat, fmt.Errorf("write report: %w", err))
	}
	return nil
}

// WriteError serializes the error document for a failed run. The
// document always renders: if even the error document cannot be
// marshaled, a hand-built minimal JSON object is written instead so the
// output stays structured.
func WriteError(w io.Writer, runErr error) {
	doc := ErrorDocument{
		Error:          "drift analysis failed",
		Details:        runErr.Error(),
		Recommendation: remediationHint(runErr),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintln(w, `{"error": "drift analysis failed", "details": "error document could not be serialized", "recommendation": "Check the driftscan installation"}`) //nolint:errcheck
		return
	}
	fmt.Fprintln(w, string(data)) //nolint:errcheck
}

// remediationHint suggests environment remediation based on the failure
// kind.
func remediationHint(err error) string {
	var ae *drift.AnalysisError
	if errors.As(err, &ae) {
		switch ae.Kind {
		case drift.KindLoad:
			return "Verify the reference and production CSV files exist and are readable"
		case drift.KindSchema:
			return "Ensure both datasets contain every configured feature column"
		case drift.KindComputation:
			return "Check that feature columns hold numeric values and neither dataset is empty"
		case drift.KindFormat:
			return "Check the driftscan installation; report serialization should not fail"
		}
	}
	return "Check the input data files and the .driftscan.yaml configuration"
}
