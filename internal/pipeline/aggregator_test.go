package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbankhq/qbank/constants"
	"github.com/qbankhq/qbank/internal/docintel"
	"github.com/qbankhq/qbank/internal/entity"
	"github.com/qbankhq/qbank/internal/llm"
)

// scriptedExtractor resolves pages from a fixed script, optionally delaying
// some pages to force out-of-order completion.
type scriptedExtractor struct {
	results map[int]llm.PageResult
	delays  map[int]time.Duration
}

func (s *scriptedExtractor) ExtractPage(ctx context.Context, req llm.ExtractRequest) llm.PageResult {
	if d, ok := s.delays[req.PageNumber]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
		}
	}
	if r, ok := s.results[req.PageNumber]; ok {
		return r
	}
	return llm.PageResult{Status: constants.PageNoContent}
}

// memoryStore implements QuestionStore and OutcomeStore with dedup semantics.
type memoryStore struct {
	mu        sync.Mutex
	questions map[string]entity.Question
	outcomes  []entity.PageOutcome
}

func newMemoryStore() *memoryStore {
	return &memoryStore{questions: make(map[string]entity.Question)}
}

func (m *memoryStore) InsertIfAbsent(_ context.Context, q *entity.Question) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := q.JobID.String() + ":" + q.DedupKey
	if _, ok := m.questions[key]; ok {
		return false, nil
	}
	m.questions[key] = *q
	return true, nil
}

func (m *memoryStore) RecordOutcome(_ context.Context, o *entity.PageOutcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, *o)
	return nil
}

func pages(contents ...string) *docintel.Analysis {
	a := &docintel.Analysis{PageCount: len(contents)}
	for i, c := range contents {
		a.Pages = append(a.Pages, docintel.Page{Number: i + 1, Content: c})
	}
	return a
}

func processed(questions ...string) llm.PageResult {
	r := llm.PageResult{Status: constants.PageProcessed, Attempts: 1}
	for _, q := range questions {
		r.Questions = append(r.Questions, llm.RawQuestion{"question": q})
	}
	return r
}

func TestAggregatorRun_EndToEnd(t *testing.T) {
	store := newMemoryStore()
	extractor := &scriptedExtractor{results: map[int]llm.PageResult{
		1: {Status: constants.PageNoContent},
		2: processed("What is osmosis?", "Define diffusion."),
		3: {Status: constants.PageFailed, Err: "parse failure (malformed) after 3 attempts", Attempts: 3},
	}}

	agg := NewAggregator(extractor, NewNormalizer(nil), nil,
		WithPageWorkers(2),
		WithStores(store, store),
	)
	summary := agg.Run(context.Background(), testJobContext(), pages("", "biology content", "garbled scan"))

	assert.Equal(t, string(constants.JobStatusPartialSuccess), summary.Status)
	assert.Equal(t, 3, summary.TotalPages)
	assert.Equal(t, 2, summary.PagesWithContent)
	assert.Equal(t, 1, summary.PagesSkipped)
	assert.Equal(t, 1, summary.PagesFailed)
	assert.Equal(t, 2, summary.QuestionsStored)

	require.Len(t, summary.Pages, 3)
	assert.Equal(t, string(constants.PageNoContent), summary.Pages[0].Status)
	assert.Equal(t, string(constants.PageProcessed), summary.Pages[1].Status)
	assert.Equal(t, 2, summary.Pages[1].QuestionCount)
	assert.Equal(t, string(constants.PageFailed), summary.Pages[2].Status)
	assert.NotEmpty(t, summary.Pages[2].Error)

	assert.Len(t, store.questions, 2)
	assert.Len(t, store.outcomes, 3)
}

func TestAggregatorRun_SummaryOrderedByPageNumber(t *testing.T) {
	results := make(map[int]llm.PageResult)
	for p := 1; p <= 6; p++ {
		results[p] = processed("question from page")
	}
	extractor := &scriptedExtractor{
		results: results,
		// early pages finish last
		delays: map[int]time.Duration{1: 60 * time.Millisecond, 2: 30 * time.Millisecond},
	}

	agg := NewAggregator(extractor, NewNormalizer(nil), nil, WithPageWorkers(6))
	summary := agg.Run(context.Background(), testJobContext(),
		pages("a", "b", "c", "d", "e", "f"))

	require.Len(t, summary.Pages, 6)
	for i, o := range summary.Pages {
		assert.Equal(t, i+1, o.PageNumber, "summary must be sorted by page number")
	}
}

func TestAggregatorRun_PartialTolerance(t *testing.T) {
	// page 2 always fails; every other page's records must still come through
	extractor := &scriptedExtractor{results: map[int]llm.PageResult{
		1: processed("q1"),
		2: {Status: constants.PageFailed, Err: "exhausted", Attempts: 3},
		3: processed("q3"),
	}}
	store := newMemoryStore()

	agg := NewAggregator(extractor, NewNormalizer(nil), nil, WithStores(store, store))
	summary := agg.Run(context.Background(), testJobContext(), pages("x", "y", "z"))

	assert.Equal(t, string(constants.JobStatusPartialSuccess), summary.Status)
	assert.Equal(t, string(constants.PageFailed), summary.Pages[1].Status)
	assert.Equal(t, 2, summary.QuestionsStored)
}

func TestAggregatorRun_AllPagesClean(t *testing.T) {
	extractor := &scriptedExtractor{results: map[int]llm.PageResult{
		1: {Status: constants.PageNoContent},
		2: processed("only question"),
		3: {Status: constants.PageNoQuestionsFound},
	}}

	agg := NewAggregator(extractor, NewNormalizer(nil), nil)
	summary := agg.Run(context.Background(), testJobContext(), pages("", "b", "c"))

	assert.Equal(t, string(constants.JobStatusSuccess), summary.Status,
		"zero failed pages means success even with skips and empty pages")
}

func TestAggregatorRun_NothingUsableIsFailed(t *testing.T) {
	extractor := &scriptedExtractor{results: map[int]llm.PageResult{
		1: {Status: constants.PageFailed, Err: "exhausted"},
		2: {Status: constants.PageFailed, Err: "exhausted"},
	}}

	agg := NewAggregator(extractor, NewNormalizer(nil), nil)
	summary := agg.Run(context.Background(), testJobContext(), pages("a", "b"))

	assert.Equal(t, string(constants.JobStatusFailed), summary.Status)
}

func TestAggregatorRun_DuplicateQuestionsStoredOnce(t *testing.T) {
	extractor := &scriptedExtractor{results: map[int]llm.PageResult{
		1: processed("What is inertia?", "what  is INERTIA?"),
	}}
	store := newMemoryStore()

	agg := NewAggregator(extractor, NewNormalizer(nil), nil, WithStores(store, store))
	summary := agg.Run(context.Background(), testJobContext(), pages("physics"))

	assert.Equal(t, 1, summary.QuestionsStored)
	assert.Len(t, store.questions, 1)
	assert.Equal(t, string(constants.JobStatusSuccess), summary.Status)
}

func TestAggregatorRun_CancelledContextStopsScheduling(t *testing.T) {
	extractor := &scriptedExtractor{results: map[int]llm.PageResult{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agg := NewAggregator(extractor, NewNormalizer(nil), nil, WithPageWorkers(1))
	summary := agg.Run(ctx, testJobContext(), pages("a", "b", "c"))

	// every page still appears in the summary, unscheduled ones as failed
	require.Len(t, summary.Pages, 3)
	for _, o := range summary.Pages {
		if o.Status == string(constants.PageFailed) {
			assert.NotEmpty(t, o.Error)
		}
	}
}

func TestAggregatorRun_CancelledPagesStillRecorded(t *testing.T) {
	extractor := &scriptedExtractor{results: map[int]llm.PageResult{}}
	store := newMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agg := NewAggregator(extractor, NewNormalizer(nil), nil,
		WithPageWorkers(1),
		WithStores(store, store),
	)
	summary := agg.Run(ctx, testJobContext(), pages("a", "b", "c"))

	// the persisted outcomes must cover the same pages as the summary,
	// including pages that were never handed to a worker
	require.Len(t, summary.Pages, 3)
	require.Len(t, store.outcomes, 3)
	seen := make(map[int]bool)
	for _, o := range store.outcomes {
		seen[o.PageNumber] = true
	}
	for p := 1; p <= 3; p++ {
		assert.True(t, seen[p], "page %d outcome not persisted", p)
	}
}
