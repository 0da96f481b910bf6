package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/qbankhq/qbank/gen/ent"
	"github.com/qbankhq/qbank/gen/ent/pageoutcome"
	"github.com/qbankhq/qbank/internal/entity"
)

type OutcomeRepository interface {
	RecordOutcome(ctx context.Context, o *entity.PageOutcome) error
	ListForJob(ctx context.Context, jobID uuid.UUID) ([]*ent.PageOutcome, error)
}

type outcomeRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewOutcomeRepository(entc *ent.Client, log *slog.Logger) OutcomeRepository {
	return &outcomeRepo{ent: entc, log: log}
}

func (r *outcomeRepo) RecordOutcome(ctx context.Context, o *entity.PageOutcome) error {
	create := r.ent.PageOutcome.
		Create().
		SetJobID(o.JobID).
		SetPageNumber(o.PageNumber).
		SetStatus(o.Status).
		SetQuestionCount(o.QuestionCount)
	if o.Error != "" {
		create.SetError(o.Error)
	}
	if _, err := create.Save(ctx); err != nil {
		r.log.Error("page_outcome record failed", "job_id", o.JobID, "page", o.PageNumber, "err", err)
		return err
	}
	return nil
}

func (r *outcomeRepo) ListForJob(ctx context.Context, jobID uuid.UUID) ([]*ent.PageOutcome, error) {
	return r.ent.PageOutcome.
		Query().
		Where(pageoutcome.JobID(jobID)).
		Order(ent.Asc(pageoutcome.FieldPageNumber)).
		All(ctx)
}
