package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/qbankhq/qbank/constants"
	"github.com/qbankhq/qbank/internal/docintel"
	"github.com/qbankhq/qbank/internal/entity"
	"github.com/qbankhq/qbank/internal/llm"
)

// QuestionStore persists normalized questions. Insert is keyed on the dedup
// identity; a repeat of the same record reports inserted=false.
type QuestionStore interface {
	InsertIfAbsent(ctx context.Context, q *entity.Question) (inserted bool, err error)
}

// OutcomeStore records the terminal state of each page.
type OutcomeStore interface {
	RecordOutcome(ctx context.Context, o *entity.PageOutcome) error
}

// Aggregator fans a job's pages across a bounded worker pool, collects the
// per-page outcomes, and reduces them into a JobSummary. Pages are independent;
// the only ordering constraint is that the emitted summary lists outcomes by
// page number regardless of completion order.
type Aggregator struct {
	extractor  llm.PageExtractor
	normalizer *Normalizer
	questions  QuestionStore
	outcomes   OutcomeStore
	logger     *slog.Logger

	workers int
	limiter *rate.Limiter
}

type Option func(*Aggregator)

func WithPageWorkers(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithRateLimit caps generative calls per second across all workers.
func WithRateLimit(perSec float64) Option {
	return func(a *Aggregator) {
		if perSec > 0 {
			a.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
		}
	}
}

func WithStores(questions QuestionStore, outcomes OutcomeStore) Option {
	return func(a *Aggregator) {
		a.questions = questions
		a.outcomes = outcomes
	}
}

func NewAggregator(extractor llm.PageExtractor, normalizer *Normalizer, logger *slog.Logger, opts ...Option) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Aggregator{
		extractor:  extractor,
		normalizer: normalizer,
		logger:     logger,
		workers:    4,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

type pageOutcomeStored struct {
	outcome entity.PageOutcome
	stored  int
}

// Run processes every page of a job and returns the summary. Page-level
// failures are folded into the summary as data; Run itself never fails on
// them. After ctx is done no new page is scheduled; in-flight pages finish
// and unscheduled pages are recorded as failed.
func (a *Aggregator) Run(ctx context.Context, jc JobContext, analysis *docintel.Analysis) entity.JobSummary {
	start := time.Now()
	a.logger.Info("aggregate.start",
		"job_id", jc.JobID, "pages", analysis.PageCount, "workers", a.workers)

	jobs := make(chan docintel.Page)
	results := make(chan pageOutcomeStored, len(analysis.Pages))

	var wg sync.WaitGroup
	for i := 0; i < a.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for page := range jobs {
				results <- a.processPage(ctx, jc, analysis, page)
			}
		}(i + 1)
	}

	// Producer: stop scheduling once ctx is done, then account for what was
	// never handed to a worker.
	var unscheduled []docintel.Page
	for i, page := range analysis.Pages {
		select {
		case jobs <- page:
		case <-ctx.Done():
			unscheduled = analysis.Pages[i:]
		}
		if unscheduled != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	outcomes := make([]entity.PageOutcome, 0, len(analysis.Pages))
	stored := 0
	for r := range results {
		outcomes = append(outcomes, r.outcome)
		stored += r.stored
	}
	for _, page := range unscheduled {
		outcome := entity.PageOutcome{
			JobID:      jc.JobID,
			PageNumber: page.Number,
			Status:     string(constants.PageFailed),
			Error:      "canceled before scheduling",
		}
		// ctx is already done here; the outcome row still has to land so the
		// persisted job matches the summary handed back to the caller.
		a.record(context.WithoutCancel(ctx), &outcome)
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].PageNumber < outcomes[j].PageNumber
	})

	summary := reduce(jc, analysis.PageCount, outcomes, stored)
	a.logger.Info("aggregate.done",
		"job_id", jc.JobID,
		"status", summary.Status,
		"pages_failed", summary.PagesFailed,
		"questions_stored", summary.QuestionsStored,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return summary
}

func (a *Aggregator) processPage(ctx context.Context, jc JobContext, analysis *docintel.Analysis, page docintel.Page) pageOutcomeStored {
	outcome := entity.PageOutcome{JobID: jc.JobID, PageNumber: page.Number}

	// Rate-limit only pages that will actually reach the generative service.
	if a.limiter != nil && strings.TrimSpace(page.Content) != "" {
		if err := a.limiter.Wait(ctx); err != nil {
			outcome.Status = string(constants.PageFailed)
			outcome.Error = err.Error()
			a.record(ctx, &outcome)
			return pageOutcomeStored{outcome: outcome}
		}
	}

	result := a.extractor.ExtractPage(ctx, llm.ExtractRequest{
		PageText:       page.Content,
		PageNumber:     page.Number,
		TotalPages:     analysis.PageCount,
		SubjectName:    jc.SubjectName,
		ClassName:      jc.ClassName,
		Specialization: jc.Specialization,
		Languages:      analysis.Languages,
	})
	outcome.Status = string(result.Status)
	outcome.Error = result.Err

	stored := 0
	if result.Status == constants.PageProcessed {
		questions, _ := a.normalizer.Normalize(jc, page.Number, result.Questions)
		if len(questions) == 0 {
			outcome.Status = string(constants.PageNoQuestionsFound)
		}
		for i := range questions {
			inserted, err := a.store(ctx, &questions[i])
			if err != nil {
				outcome.Status = string(constants.PageFailed)
				outcome.Error = err.Error()
				break
			}
			if inserted {
				stored++
			}
		}
	}
	outcome.QuestionCount = stored

	a.record(ctx, &outcome)
	return pageOutcomeStored{outcome: outcome, stored: stored}
}

func (a *Aggregator) store(ctx context.Context, q *entity.Question) (bool, error) {
	if a.questions == nil {
		return true, nil
	}
	return a.questions.InsertIfAbsent(ctx, q)
}

func (a *Aggregator) record(ctx context.Context, o *entity.PageOutcome) {
	if a.outcomes == nil {
		return
	}
	if err := a.outcomes.RecordOutcome(ctx, o); err != nil {
		a.logger.Error("aggregate.outcome_store_error",
			"job_id", o.JobID, "page", o.PageNumber, "error", err)
	}
}

// reduce computes the job-level totals and status. A job is failed only when
// at least one page failed and no page produced records; failures alongside
// any stored questions degrade to partial success.
func reduce(jc JobContext, totalPages int, outcomes []entity.PageOutcome, stored int) entity.JobSummary {
	s := entity.JobSummary{
		JobID:           jc.JobID,
		TotalPages:      totalPages,
		QuestionsStored: stored,
		Pages:           outcomes,
	}
	for _, o := range outcomes {
		switch constants.PageStatus(o.Status) {
		case constants.PageNoContent:
			s.PagesSkipped++
		case constants.PageFailed:
			s.PagesFailed++
			s.PagesWithContent++
		default:
			s.PagesWithContent++
		}
	}
	switch {
	case s.PagesFailed == 0:
		s.Status = string(constants.JobStatusSuccess)
	case stored > 0:
		s.Status = string(constants.JobStatusPartialSuccess)
	default:
		s.Status = string(constants.JobStatusFailed)
	}
	return s
}
