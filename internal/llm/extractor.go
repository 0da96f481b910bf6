package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qbankhq/qbank/constants"
)

// Extractor implements PageExtractor: it issues the request for one page and
// delegates response handling to the Retrier and parser. It holds no mutable
// state across pages, so the aggregator may run pages concurrently against a
// single Extractor.
type Extractor struct {
	completer Completer
	retrier   *Retrier
	logger    *slog.Logger
}

func NewExtractor(completer Completer, retrier *Retrier, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{completer: completer, retrier: retrier, logger: logger}
}

// ExtractPage resolves one page to a terminal PageResult. Pages with no
// extractable text are skipped without a network call; they are common in
// scanned documents and must not count against the failure budget.
func (e *Extractor) ExtractPage(ctx context.Context, req ExtractRequest) PageResult {
	rid := uuid.New().String()
	start := time.Now()

	if strings.TrimSpace(req.PageText) == "" {
		e.logger.Info("extract.page.no_content", "req_id", rid, "page", req.PageNumber)
		return PageResult{Status: constants.PageNoContent}
	}

	e.logger.Info("extract.page.start",
		"req_id", rid,
		"page", req.PageNumber,
		"text_len", len(req.PageText),
		"subject", req.SubjectName,
	)

	system := BuildSystemPrompt(req)
	user := BuildUserPrompt(req)

	outcome := e.retrier.Do(ctx, func(ctx context.Context) (string, error) {
		return e.completer.Complete(ctx, system, user)
	})
	if outcome.Err != nil {
		e.logger.Warn("extract.page.failed",
			"req_id", rid,
			"page", req.PageNumber,
			"attempts", outcome.Attempts,
			"error", outcome.Err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return PageResult{
			Status:   constants.PageFailed,
			Err:      outcome.Err.Error(),
			Attempts: outcome.Attempts,
		}
	}

	status := constants.PageProcessed
	if len(outcome.Questions) == 0 {
		// the model legitimately found nothing, distinct from unusable output
		status = constants.PageNoQuestionsFound
	}

	e.logger.Info("extract.page.ok",
		"req_id", rid,
		"page", req.PageNumber,
		"questions", len(outcome.Questions),
		"dropped", outcome.Dropped,
		"attempts", outcome.Attempts,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return PageResult{
		Questions: outcome.Questions,
		Status:    status,
		Attempts:  outcome.Attempts,
		Dropped:   outcome.Dropped,
	}
}
