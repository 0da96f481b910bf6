package server

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/qbankhq/qbank/constants"
	qbankpb "github.com/qbankhq/qbank/gen/proto/qbank/v1"
	"github.com/qbankhq/qbank/internal/common"
	"github.com/qbankhq/qbank/internal/pipeline"
	"github.com/qbankhq/qbank/internal/repository"
	"github.com/qbankhq/qbank/internal/utils"
)

type ExtractionServer struct {
	qbankpb.UnimplementedExtractionServiceServer
	svc      *pipeline.Service
	jobs     repository.JobRepository
	outcomes repository.OutcomeRepository
	logger   *slog.Logger
}

func NewExtractionServer(svc *pipeline.Service, jobs repository.JobRepository, outcomes repository.OutcomeRepository, logger *slog.Logger) *ExtractionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionServer{svc: svc, jobs: jobs, outcomes: outcomes, logger: logger}
}

func (s *ExtractionServer) Extract(ctx context.Context, req *qbankpb.ExtractRequest) (*qbankpb.ExtractResponse, error) {
	if len(req.GetDocument()) == 0 {
		return nil, common.InvalidArgumentError("document is required")
	}
	fileName := strings.TrimSpace(req.GetFileName())
	subject := strings.TrimSpace(req.GetSubjectName())
	uploadedBy := strings.TrimSpace(req.GetUploadedBy())

	v := common.NewValidator().
		Field("file_name", fileName, common.Required).
		Field("subject_name", subject, common.Required).
		Field("uploaded_by", uploadedBy, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.InvalidArgumentErrorf("unsupported file type: %q", ext)
	}

	summary, err := s.svc.ExtractDocument(ctx, pipeline.ExtractDocumentRequest{
		Document:       req.GetDocument(),
		FileName:       fileName,
		SubjectName:    subject,
		ClassName:      strings.TrimSpace(req.GetClassName()),
		Specialization: strings.TrimSpace(req.GetSpecialization()),
		UploadedBy:     uploadedBy,
	})
	if err != nil {
		s.logger.Error("rpc.extract.failed", "file_name", fileName, "error", err)
		return nil, common.InternalError("extraction failed")
	}
	return &qbankpb.ExtractResponse{Summary: utils.ToPBSummary(&summary)}, nil
}

func (s *ExtractionServer) GetJob(ctx context.Context, req *qbankpb.GetJobRequest) (*qbankpb.GetJobResponse, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, common.InvalidArgumentError("job_id must be a UUID")
	}
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, common.NotFoundError("job not found")
	}
	outcomes, err := s.outcomes.ListForJob(ctx, jobID)
	if err != nil {
		s.logger.Error("rpc.get_job.outcomes_failed", "job_id", jobID, "error", err)
		return nil, common.InternalError("loading page outcomes failed")
	}
	return &qbankpb.GetJobResponse{
		Summary: utils.ToPBSummary(utils.SummaryFromJob(job, outcomes)),
	}, nil
}
