package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess        = 0 // Analysis completed and the report was written
	ExitAnalysisFailed = 1 // Analysis failed; the error document was written
	ExitError          = 2 // Configuration or usage error
)

// AnalysisFailedError indicates the pipeline failed but the error
// document was still produced on the output. Stdout holds valid
// structured output in every case; the exit code lets CI branch on it.
type AnalysisFailedError struct {
	Message string
}

func (e *AnalysisFailedError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var analysisErr *AnalysisFailedError
		if errors.As(err, &analysisErr) {
			os.Exit(ExitAnalysisFailed)
		}

		// All other errors are configuration/usage errors
		os.Exit(ExitError)
	}
}
