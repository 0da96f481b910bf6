package docintel

import "context"

// Page is one unit of document content, numbered from 1 in source order.
type Page struct {
	Number  int
	Content string // markdown, already trimmed; may be empty for scanned pages
}

// Analysis is the ordered page segmentation of one document.
type Analysis struct {
	PageCount int
	Languages []string
	Pages     []Page
}

// Analyzer turns a binary document into page-segmented text. The pipeline
// consumes only the ordered page sequence; how segmentation was computed is
// the collaborator's business.
type Analyzer interface {
	AnalyzeDocument(ctx context.Context, doc []byte) (*Analysis, error)
}
