package llm

import (
	"context"

	"github.com/qbankhq/qbank/constants"
)

// RawQuestion is one record mapping as returned by the generative service,
// before normalization. Unrecognized keys are ignored downstream.
type RawQuestion map[string]any

// ExtractRequest carries one page's content plus the surrounding context labels.
type ExtractRequest struct {
	PageText   string
	PageNumber int
	TotalPages int

	SubjectName    string
	ClassName      string
	Specialization string
	Languages      []string
}

// PageResult is the terminal outcome of extracting one page. Failure is data,
// not control flow: an exhausted retry budget surfaces here as Status failed
// with an empty Questions list, never as an error to the caller.
type PageResult struct {
	Questions []RawQuestion
	Status    constants.PageStatus
	Err       string // diagnostic, set when Status == PageFailed
	Attempts  int    // generative calls actually made
	Dropped   int    // non-object list elements discarded by the parser
}

// Completer issues a single completion call to a generative service and
// returns the raw response text. Implementations must be safe for concurrent
// use; the aggregator shares one across page workers.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// PageExtractor is the interface the pipeline depends on.
type PageExtractor interface {
	ExtractPage(ctx context.Context, req ExtractRequest) PageResult
}
