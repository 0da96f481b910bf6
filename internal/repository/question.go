package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/qbankhq/qbank/gen/ent"
	"github.com/qbankhq/qbank/gen/ent/question"
	"github.com/qbankhq/qbank/internal/entity"
)

// QuestionFilter narrows List. Zero values mean "no constraint".
type QuestionFilter struct {
	JobID       uuid.UUID
	SubjectName string
	ClassName   string
	LessonTitle string
	Type        string
	Difficulty  string
	Limit       int
	Offset      int
}

type QuestionRepository interface {
	// InsertIfAbsent persists q unless a record with the same (job_id,
	// dedup_key) already exists. Reports whether a row was written.
	InsertIfAbsent(ctx context.Context, q *entity.Question) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.Question, error)
	List(ctx context.Context, f QuestionFilter) ([]*ent.Question, error)
}

type questionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewQuestionRepository(entc *ent.Client, log *slog.Logger) QuestionRepository {
	return &questionRepo{ent: entc, log: log}
}

func (r *questionRepo) InsertIfAbsent(ctx context.Context, q *entity.Question) (bool, error) {
	exists, err := r.ent.Question.
		Query().
		Where(question.JobID(q.JobID), question.DedupKey(q.DedupKey)).
		Exist(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		r.log.Debug("question duplicate skipped", "job_id", q.JobID, "page", q.PageNumber)
		return false, nil
	}

	create := r.ent.Question.
		Create().
		SetID(q.ID).
		SetJobID(q.JobID).
		SetDedupKey(q.DedupKey).
		SetFileName(q.FileName).
		SetSubjectName(q.SubjectName).
		SetLessonTitle(q.LessonTitle).
		SetNillableClassName(q.ClassName).
		SetNillableSpecialization(q.Specialization).
		SetQuestion(q.Question).
		SetNillableQuestionType(q.QuestionType).
		SetNillableQuestionDifficulty(q.Difficulty).
		SetPageNumber(q.PageNumber).
		SetNillableAnswerSteps(q.AnswerSteps).
		SetNillableCorrectAnswer(q.CorrectAnswer).
		SetUploadedBy(q.UploadedBy).
		SetNillableUpdatedBy(q.UpdatedBy).
		SetNillableOption1(q.Options[0]).
		SetNillableOption2(q.Options[1]).
		SetNillableOption3(q.Options[2]).
		SetNillableOption4(q.Options[3]).
		SetNillableOption5(q.Options[4]).
		SetNillableOption6(q.Options[5])

	if _, err := create.Save(ctx); err != nil {
		// concurrent insert of the same dedup identity lands here
		if ent.IsConstraintError(err) {
			r.log.Debug("question duplicate skipped on constraint", "job_id", q.JobID, "page", q.PageNumber)
			return false, nil
		}
		r.log.Error("question insert failed", "job_id", q.JobID, "page", q.PageNumber, "err", err)
		return false, err
	}
	return true, nil
}

func (r *questionRepo) Get(ctx context.Context, id uuid.UUID) (*ent.Question, error) {
	return r.ent.Question.Get(ctx, id)
}

func (r *questionRepo) List(ctx context.Context, f QuestionFilter) ([]*ent.Question, error) {
	query := r.ent.Question.Query()
	if f.JobID != uuid.Nil {
		query = query.Where(question.JobID(f.JobID))
	}
	if f.SubjectName != "" {
		query = query.Where(question.SubjectName(f.SubjectName))
	}
	if f.ClassName != "" {
		query = query.Where(question.ClassName(f.ClassName))
	}
	if f.LessonTitle != "" {
		query = query.Where(question.LessonTitleContainsFold(f.LessonTitle))
	}
	if f.Type != "" {
		query = query.Where(question.QuestionType(f.Type))
	}
	if f.Difficulty != "" {
		query = query.Where(question.QuestionDifficulty(f.Difficulty))
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}
	return query.
		Order(ent.Asc(question.FieldPageNumber), ent.Asc(question.FieldCreatedAt)).
		All(ctx)
}
