package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/qbankhq/qbank/constants"
	qbankpb "github.com/qbankhq/qbank/gen/proto/qbank/v1"
	"github.com/qbankhq/qbank/internal/common"
	"github.com/qbankhq/qbank/internal/repository"
	"github.com/qbankhq/qbank/internal/utils"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type QuestionServer struct {
	qbankpb.UnimplementedQuestionServiceServer
	questions repository.QuestionRepository
	logger    *slog.Logger
}

func NewQuestionServer(questions repository.QuestionRepository, logger *slog.Logger) *QuestionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuestionServer{questions: questions, logger: logger}
}

func (s *QuestionServer) ListQuestions(ctx context.Context, req *qbankpb.ListQuestionsRequest) (*qbankpb.ListQuestionsResponse, error) {
	filter := repository.QuestionFilter{
		SubjectName: strings.TrimSpace(req.GetSubjectName()),
		ClassName:   strings.TrimSpace(req.GetClassName()),
		LessonTitle: strings.TrimSpace(req.GetLessonTitle()),
		Limit:       clampLimit(int(req.GetLimit())),
		Offset:      int(req.GetOffset()),
	}
	if jid := strings.TrimSpace(req.GetJobId()); jid != "" {
		jobID, err := uuid.Parse(jid)
		if err != nil {
			return nil, common.InvalidArgumentError("job_id must be a UUID")
		}
		filter.JobID = jobID
	}
	if qt := strings.TrimSpace(req.GetQuestionType()); qt != "" {
		canonical, ok := constants.CanonicalizeType(qt)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown question_type: %q", qt)
		}
		filter.Type = string(canonical)
	}
	if qd := strings.TrimSpace(req.GetQuestionDifficulty()); qd != "" {
		canonical, ok := constants.CanonicalizeDifficulty(qd)
		if !ok {
			return nil, common.InvalidArgumentErrorf("unknown question_difficulty: %q", qd)
		}
		filter.Difficulty = string(canonical)
	}

	rows, err := s.questions.List(ctx, filter)
	if err != nil {
		s.logger.Error("rpc.list_questions.failed", "error", err)
		return nil, common.InternalError("listing questions failed")
	}
	out := make([]*qbankpb.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBQuestion(row))
	}
	return &qbankpb.ListQuestionsResponse{Questions: out}, nil
}

func (s *QuestionServer) GetQuestion(ctx context.Context, req *qbankpb.GetQuestionRequest) (*qbankpb.GetQuestionResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a UUID")
	}
	row, err := s.questions.Get(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("question not found")
	}
	return &qbankpb.GetQuestionResponse{Question: utils.ToPBQuestion(row)}, nil
}

func clampLimit(n int) int {
	if n <= 0 {
		return defaultListLimit
	}
	if n > maxListLimit {
		return maxListLimit
	}
	return n
}
