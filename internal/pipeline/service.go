package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/qbankhq/qbank/constants"
	"github.com/qbankhq/qbank/internal/common"
	"github.com/qbankhq/qbank/internal/docintel"
	"github.com/qbankhq/qbank/internal/entity"
	"github.com/qbankhq/qbank/internal/repository"
)

// ErrNoPages reports an analysis result without a single page. Like any other
// pre-page infrastructure failure it fails the whole job.
var ErrNoPages = errors.New("document analysis returned no pages")

// ExtractDocumentRequest is the caller-facing input for one extraction run.
type ExtractDocumentRequest struct {
	Document       []byte
	FileName       string
	SubjectName    string
	ClassName      string
	Specialization string
	UploadedBy     string
}

// Service orchestrates one document end to end: job row, layout analysis,
// page-wise extraction, job finalization. Only infrastructure failures before
// any page is available surface as errors; everything page-level is summary
// data.
type Service struct {
	analyzer  docintel.Analyzer
	agg       *Aggregator
	jobs      repository.JobRepository
	modelName string
	logger    *slog.Logger
}

func NewService(analyzer docintel.Analyzer, agg *Aggregator, jobs repository.JobRepository, modelName string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		analyzer:  analyzer,
		agg:       agg,
		jobs:      jobs,
		modelName: modelName,
		logger:    logger,
	}
}

func (s *Service) ExtractDocument(ctx context.Context, req ExtractDocumentRequest) (entity.JobSummary, error) {
	start := time.Now()

	job, err := s.jobs.Start(ctx, repository.NewJob{
		FileName:       req.FileName,
		SubjectName:    req.SubjectName,
		ClassName:      req.ClassName,
		Specialization: req.Specialization,
		UploadedBy:     req.UploadedBy,
		ModelName:      s.modelName,
	})
	if err != nil {
		return entity.JobSummary{}, common.WrapError(err, "starting extraction job")
	}
	ctx = common.WithJobID(ctx, job.ID.String())
	s.logger.Info("extract.job.start", "job_id", job.ID, "file_name", req.FileName)

	analysis, err := s.analyzer.AnalyzeDocument(ctx, req.Document)
	if err != nil {
		// before any page exists: the whole job fails hard
		_ = s.jobs.Finish(ctx, job.ID, string(constants.JobStatusFailed), err.Error())
		s.logger.Error("extract.job.analysis_failed", "job_id", job.ID, "error", err)
		return entity.JobSummary{}, common.WrapError(err, "analyzing document")
	}
	if analysis.PageCount == 0 || len(analysis.Pages) == 0 {
		_ = s.jobs.Finish(ctx, job.ID, string(constants.JobStatusFailed), ErrNoPages.Error())
		s.logger.Error("extract.job.analysis_failed", "job_id", job.ID, "error", ErrNoPages)
		return entity.JobSummary{}, ErrNoPages
	}
	if err := s.jobs.SetTotalPages(ctx, job.ID, analysis.PageCount); err != nil {
		s.logger.Warn("extract.job.page_count_not_recorded", "job_id", job.ID, "error", err)
	}

	summary := s.agg.Run(ctx, JobContext{
		JobID:          job.ID,
		FileName:       req.FileName,
		SubjectName:    req.SubjectName,
		ClassName:      req.ClassName,
		Specialization: req.Specialization,
		UploadedBy:     req.UploadedBy,
	}, analysis)

	if err := s.jobs.Finish(ctx, job.ID, summary.Status, ""); err != nil {
		s.logger.Error("extract.job.finalize_failed", "job_id", job.ID, "error", err)
	}

	s.logger.Info("extract.job.done",
		"job_id", job.ID,
		"status", summary.Status,
		"questions_stored", summary.QuestionsStored,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}
