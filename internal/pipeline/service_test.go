package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbankhq/qbank/constants"
	"github.com/qbankhq/qbank/gen/ent"
	"github.com/qbankhq/qbank/internal/docintel"
	"github.com/qbankhq/qbank/internal/llm"
	"github.com/qbankhq/qbank/internal/repository"
)

type staticAnalyzer struct {
	analysis *docintel.Analysis
	err      error
}

func (s *staticAnalyzer) AnalyzeDocument(context.Context, []byte) (*docintel.Analysis, error) {
	return s.analysis, s.err
}

type finishCall struct {
	status string
	errMsg string
}

// recordingJobs captures the lifecycle calls made against the job row.
type recordingJobs struct {
	mu       sync.Mutex
	id       uuid.UUID
	totals   []int
	finished []finishCall
}

func newRecordingJobs() *recordingJobs { return &recordingJobs{id: uuid.New()} }

func (r *recordingJobs) Start(context.Context, repository.NewJob) (*ent.ExtractionJob, error) {
	return &ent.ExtractionJob{ID: r.id}, nil
}

func (r *recordingJobs) SetTotalPages(_ context.Context, _ uuid.UUID, pages int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.totals = append(r.totals, pages)
	return nil
}

func (r *recordingJobs) Finish(_ context.Context, _ uuid.UUID, status, errorMessage string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, finishCall{status: status, errMsg: errorMessage})
	return nil
}

func (r *recordingJobs) Get(context.Context, uuid.UUID) (*ent.ExtractionJob, error) {
	return nil, errors.New("not implemented")
}

func newTestService(analyzer docintel.Analyzer, jobs repository.JobRepository, results map[int]llm.PageResult) *Service {
	agg := NewAggregator(&scriptedExtractor{results: results}, NewNormalizer(nil), nil)
	return NewService(analyzer, agg, jobs, "test-model", nil)
}

func TestExtractDocument_EmptyAnalysisFailsJob(t *testing.T) {
	jobs := newRecordingJobs()
	svc := newTestService(&staticAnalyzer{analysis: &docintel.Analysis{}}, jobs, nil)

	_, err := svc.ExtractDocument(context.Background(), ExtractDocumentRequest{
		Document:    []byte("pdf bytes"),
		FileName:    "empty.pdf",
		SubjectName: "Physics",
		UploadedBy:  "tester",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPages)
	require.Len(t, jobs.finished, 1)
	assert.Equal(t, string(constants.JobStatusFailed), jobs.finished[0].status)
	assert.NotEmpty(t, jobs.finished[0].errMsg)
	assert.Empty(t, jobs.totals, "no page count for a pageless analysis")
}

func TestExtractDocument_AnalyzerErrorFailsJob(t *testing.T) {
	jobs := newRecordingJobs()
	boom := errors.New("service unavailable")
	svc := newTestService(&staticAnalyzer{err: boom}, jobs, nil)

	_, err := svc.ExtractDocument(context.Background(), ExtractDocumentRequest{
		Document:    []byte("pdf bytes"),
		FileName:    "doc.pdf",
		SubjectName: "Physics",
		UploadedBy:  "tester",
	})

	require.Error(t, err)
	require.Len(t, jobs.finished, 1)
	assert.Equal(t, string(constants.JobStatusFailed), jobs.finished[0].status)
}

func TestExtractDocument_FinishesWithSummaryStatus(t *testing.T) {
	jobs := newRecordingJobs()
	analyzer := &staticAnalyzer{analysis: &docintel.Analysis{
		PageCount: 1,
		Pages:     []docintel.Page{{Number: 1, Content: "lesson text"}},
	}}
	svc := newTestService(analyzer, jobs, map[int]llm.PageResult{1: processed("What is momentum?")})

	summary, err := svc.ExtractDocument(context.Background(), ExtractDocumentRequest{
		Document:    []byte("pdf bytes"),
		FileName:    "doc.pdf",
		SubjectName: "Physics",
		UploadedBy:  "tester",
	})

	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusSuccess), summary.Status)
	assert.Equal(t, []int{1}, jobs.totals)
	require.Len(t, jobs.finished, 1)
	assert.Equal(t, string(constants.JobStatusSuccess), jobs.finished[0].status)
}
