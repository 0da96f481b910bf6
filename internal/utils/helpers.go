package utils

import (
	"time"

	"github.com/qbankhq/qbank/constants"
	"github.com/qbankhq/qbank/gen/ent"
	qbankpb "github.com/qbankhq/qbank/gen/proto/qbank/v1"
	"github.com/qbankhq/qbank/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBQuestion(q *ent.Question) *qbankpb.Question {
	options := make([]string, 0, 6)
	for _, opt := range []*string{q.Option1, q.Option2, q.Option3, q.Option4, q.Option5, q.Option6} {
		if opt != nil {
			options = append(options, *opt)
		}
	}
	return &qbankpb.Question{
		Id:                 q.ID.String(),
		JobId:              q.JobID.String(),
		FileName:           q.FileName,
		SubjectName:        q.SubjectName,
		LessonTitle:        q.LessonTitle,
		ClassName:          strOrEmpty(q.ClassName),
		Specialization:     strOrEmpty(q.Specialization),
		Question:           q.Question,
		QuestionType:       strOrEmpty(q.QuestionType),
		QuestionDifficulty: strOrEmpty(q.QuestionDifficulty),
		PageNumber:         int32(q.PageNumber),
		AnswerSteps:        strOrEmpty(q.AnswerSteps),
		CorrectAnswer:      strOrEmpty(q.CorrectAnswer),
		Options:            options,
		UploadedBy:         q.UploadedBy,
		UpdatedBy:          strOrEmpty(q.UpdatedBy),
		CreatedAt:          q.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          q.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBSummary(s *entity.JobSummary) *qbankpb.JobSummary {
	pages := make([]*qbankpb.PageOutcome, 0, len(s.Pages))
	for _, p := range s.Pages {
		pages = append(pages, &qbankpb.PageOutcome{
			PageNumber:         int32(p.PageNumber),
			Status:             p.Status,
			QuestionsExtracted: int32(p.QuestionCount),
			Error:              p.Error,
		})
	}
	return &qbankpb.JobSummary{
		JobId:              s.JobID.String(),
		Status:             s.Status,
		TotalPagesDetected: int32(s.TotalPages),
		PagesWithContent:   int32(s.PagesWithContent),
		PagesSkipped:       int32(s.PagesSkipped),
		PagesFailed:        int32(s.PagesFailed),
		QuestionsStored:    int32(s.QuestionsStored),
		Pages:              pages,
	}
}

// SummaryFromJob rebuilds a JobSummary from persisted rows, for GetJob reads
// after the run completed.
func SummaryFromJob(job *ent.ExtractionJob, outcomes []*ent.PageOutcome) *entity.JobSummary {
	s := &entity.JobSummary{
		JobID:      job.ID,
		Status:     job.Status,
		TotalPages: job.TotalPages,
	}
	for _, o := range outcomes {
		po := entity.PageOutcome{
			JobID:         o.JobID,
			PageNumber:    o.PageNumber,
			Status:        o.Status,
			QuestionCount: o.QuestionCount,
			Error:         strOrEmpty(o.Error),
		}
		s.Pages = append(s.Pages, po)
		s.QuestionsStored += o.QuestionCount
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
	return s
}
