package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/qbankhq/qbank/gen/ent"
)

// NewJob carries the caller-supplied labels for a fresh extraction run.
type NewJob struct {
	FileName       string
	SubjectName    string
	ClassName      string
	Specialization string
	UploadedBy     string
	ModelName      string
}

type JobRepository interface {
	Start(ctx context.Context, nj NewJob) (*ent.ExtractionJob, error)
	SetTotalPages(ctx context.Context, jobID uuid.UUID, pages int) error
	Finish(ctx context.Context, jobID uuid.UUID, status string, errorMessage string) error
	Get(ctx context.Context, jobID uuid.UUID) (*ent.ExtractionJob, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Start(ctx context.Context, nj NewJob) (*ent.ExtractionJob, error) {
	create := r.ent.ExtractionJob.
		Create().
		SetFileName(nj.FileName).
		SetSubjectName(nj.SubjectName).
		SetUploadedBy(nj.UploadedBy)
	if nj.ClassName != "" {
		create.SetClassName(nj.ClassName)
	}
	if nj.Specialization != "" {
		create.SetSpecialization(nj.Specialization)
	}
	if nj.ModelName != "" {
		create.SetModelName(nj.ModelName)
	}
	job, err := create.Save(ctx)
	if err != nil {
		r.log.Error("extraction_job start failed", "file_name", nj.FileName, "err", err)
		return nil, err
	}
	r.log.Info("extraction_job started", "job_id", job.ID, "file_name", nj.FileName, "subject", nj.SubjectName)
	return job, nil
}

func (r *jobRepo) SetTotalPages(ctx context.Context, jobID uuid.UUID, pages int) error {
	_, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetTotalPages(pages).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job page count update failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *jobRepo) Finish(ctx context.Context, jobID uuid.UUID, status string, errorMessage string) error {
	update := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetStatus(status).
		SetFinishedAt(time.Now())
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	if _, err := update.Save(ctx); err != nil {
		r.log.Error("extraction_job finish failed", "job_id", jobID, "status", status, "err", err)
		return err
	}
	r.log.Info("extraction_job finished", "job_id", jobID, "status", status)
	return nil
}

func (r *jobRepo) Get(ctx context.Context, jobID uuid.UUID) (*ent.ExtractionJob, error) {
	return r.ent.ExtractionJob.Get(ctx, jobID)
}
