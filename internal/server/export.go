package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	qbankpb "github.com/qbankhq/qbank/gen/proto/qbank/v1"
	"github.com/qbankhq/qbank/internal/common"
	"github.com/qbankhq/qbank/internal/export"
	"github.com/qbankhq/qbank/internal/repository"
)

type ExportServer struct {
	qbankpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportQuestions(ctx context.Context, req *qbankpb.ExportQuestionsRequest) (*qbankpb.ExportQuestionsResponse, error) {
	filter := repository.QuestionFilter{
		SubjectName: strings.TrimSpace(req.GetSubjectName()),
	}
	if jid := strings.TrimSpace(req.GetJobId()); jid != "" {
		jobID, err := uuid.Parse(jid)
		if err != nil {
			return nil, common.InvalidArgumentError("job_id must be a UUID")
		}
		filter.JobID = jobID
	}
	if filter.JobID == uuid.Nil && filter.SubjectName == "" {
		return nil, common.InvalidArgumentError("job_id or subject_name is required")
	}

	xlsx, err := s.svc.ExportQuestionsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, common.InternalError("export failed")
	}
	return &qbankpb.ExportQuestionsResponse{Xlsx: xlsx}, nil
}
