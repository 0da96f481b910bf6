// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/qbankhq/qbank/gen/ent/extractionjob"
	"github.com/qbankhq/qbank/gen/ent/pageoutcome"
	"github.com/qbankhq/qbank/gen/ent/predicate"
	"github.com/qbankhq/qbank/gen/ent/question"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionJob = "ExtractionJob"
	TypePageOutcome   = "PageOutcome"
	TypeQuestion      = "Question"
)

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	file_name        *string
	subject_name     *string
	class_name       *string
	specialization   *string
	uploaded_by      *string
	total_pages      *int
	addtotal_pages   *int
	status           *string
	error_message    *string
	model_name       *string
	started_at       *time.Time
	finished_at      *time.Time
	clearedFields    map[string]struct{}
	pages            map[uuid.UUID]struct{}
	removedpages     map[uuid.UUID]struct{}
	clearedpages     bool
	questions        map[uuid.UUID]struct{}
	removedquestions map[uuid.UUID]struct{}
	clearedquestions bool
	done             bool
	oldValue         func(context.Context) (*ExtractionJob, error)
	predicates       []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id uuid.UUID) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionJob entities.
func (m *ExtractionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileName sets the "file_name" field.
func (m *ExtractionJobMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ExtractionJobMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ExtractionJobMutation) ResetFileName() {
	m.file_name = nil
}

// SetSubjectName sets the "subject_name" field.
func (m *ExtractionJobMutation) SetSubjectName(s string) {
	m.subject_name = &s
}

// SubjectName returns the value of the "subject_name" field in the mutation.
func (m *ExtractionJobMutation) SubjectName() (r string, exists bool) {
	v := m.subject_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectName returns the old "subject_name" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldSubjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectName: %w", err)
	}
	return oldValue.SubjectName, nil
}

// ResetSubjectName resets all changes to the "subject_name" field.
func (m *ExtractionJobMutation) ResetSubjectName() {
	m.subject_name = nil
}

// SetClassName sets the "class_name" field.
func (m *ExtractionJobMutation) SetClassName(s string) {
	m.class_name = &s
}

// ClassName returns the value of the "class_name" field in the mutation.
func (m *ExtractionJobMutation) ClassName() (r string, exists bool) {
	v := m.class_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClassName returns the old "class_name" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldClassName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassName: %w", err)
	}
	return oldValue.ClassName, nil
}

// ClearClassName clears the value of the "class_name" field.
func (m *ExtractionJobMutation) ClearClassName() {
	m.class_name = nil
	m.clearedFields[extractionjob.FieldClassName] = struct{}{}
}

// ClassNameCleared returns if the "class_name" field was cleared in this mutation.
func (m *ExtractionJobMutation) ClassNameCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldClassName]
	return ok
}

// ResetClassName resets all changes to the "class_name" field.
func (m *ExtractionJobMutation) ResetClassName() {
	m.class_name = nil
	delete(m.clearedFields, extractionjob.FieldClassName)
}

// SetSpecialization sets the "specialization" field.
func (m *ExtractionJobMutation) SetSpecialization(s string) {
	m.specialization = &s
}

// Specialization returns the value of the "specialization" field in the mutation.
func (m *ExtractionJobMutation) Specialization() (r string, exists bool) {
	v := m.specialization
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialization returns the old "specialization" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldSpecialization(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialization: %w", err)
	}
	return oldValue.Specialization, nil
}

// ClearSpecialization clears the value of the "specialization" field.
func (m *ExtractionJobMutation) ClearSpecialization() {
	m.specialization = nil
	m.clearedFields[extractionjob.FieldSpecialization] = struct{}{}
}

// SpecializationCleared returns if the "specialization" field was cleared in this mutation.
func (m *ExtractionJobMutation) SpecializationCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldSpecialization]
	return ok
}

// ResetSpecialization resets all changes to the "specialization" field.
func (m *ExtractionJobMutation) ResetSpecialization() {
	m.specialization = nil
	delete(m.clearedFields, extractionjob.FieldSpecialization)
}

// SetUploadedBy sets the "uploaded_by" field.
func (m *ExtractionJobMutation) SetUploadedBy(s string) {
	m.uploaded_by = &s
}

// UploadedBy returns the value of the "uploaded_by" field in the mutation.
func (m *ExtractionJobMutation) UploadedBy() (r string, exists bool) {
	v := m.uploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedBy returns the old "uploaded_by" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldUploadedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedBy: %w", err)
	}
	return oldValue.UploadedBy, nil
}

// ResetUploadedBy resets all changes to the "uploaded_by" field.
func (m *ExtractionJobMutation) ResetUploadedBy() {
	m.uploaded_by = nil
}

// SetTotalPages sets the "total_pages" field.
func (m *ExtractionJobMutation) SetTotalPages(i int) {
	m.total_pages = &i
	m.addtotal_pages = nil
}

// TotalPages returns the value of the "total_pages" field in the mutation.
func (m *ExtractionJobMutation) TotalPages() (r int, exists bool) {
	v := m.total_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPages returns the old "total_pages" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTotalPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPages: %w", err)
	}
	return oldValue.TotalPages, nil
}

// AddTotalPages adds i to the "total_pages" field.
func (m *ExtractionJobMutation) AddTotalPages(i int) {
	if m.addtotal_pages != nil {
		*m.addtotal_pages += i
	} else {
		m.addtotal_pages = &i
	}
}

// AddedTotalPages returns the value that was added to the "total_pages" field in this mutation.
func (m *ExtractionJobMutation) AddedTotalPages() (r int, exists bool) {
	v := m.addtotal_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPages resets all changes to the "total_pages" field.
func (m *ExtractionJobMutation) ResetTotalPages() {
	m.total_pages = nil
	m.addtotal_pages = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionjob.FieldErrorMessage)
}

// SetModelName sets the "model_name" field.
func (m *ExtractionJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractionJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractionJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractionjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractionJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractionJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractionjob.FieldModelName)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractionjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractionjob.FieldFinishedAt)
}

// AddPageIDs adds the "pages" edge to the PageOutcome entity by ids.
func (m *ExtractionJobMutation) AddPageIDs(ids ...uuid.UUID) {
	if m.pages == nil {
		m.pages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.pages[ids[i]] = struct{}{}
	}
}

// ClearPages clears the "pages" edge to the PageOutcome entity.
func (m *ExtractionJobMutation) ClearPages() {
	m.clearedpages = true
}

// PagesCleared reports if the "pages" edge to the PageOutcome entity was cleared.
func (m *ExtractionJobMutation) PagesCleared() bool {
	return m.clearedpages
}

// RemovePageIDs removes the "pages" edge to the PageOutcome entity by IDs.
func (m *ExtractionJobMutation) RemovePageIDs(ids ...uuid.UUID) {
	if m.removedpages == nil {
		m.removedpages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.pages, ids[i])
		m.removedpages[ids[i]] = struct{}{}
	}
}

// RemovedPages returns the removed IDs of the "pages" edge to the PageOutcome entity.
func (m *ExtractionJobMutation) RemovedPagesIDs() (ids []uuid.UUID) {
	for id := range m.removedpages {
		ids = append(ids, id)
	}
	return
}

// PagesIDs returns the "pages" edge IDs in the mutation.
func (m *ExtractionJobMutation) PagesIDs() (ids []uuid.UUID) {
	for id := range m.pages {
		ids = append(ids, id)
	}
	return
}

// ResetPages resets all changes to the "pages" edge.
func (m *ExtractionJobMutation) ResetPages() {
	m.pages = nil
	m.clearedpages = false
	m.removedpages = nil
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *ExtractionJobMutation) AddQuestionIDs(ids ...uuid.UUID) {
	if m.questions == nil {
		m.questions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *ExtractionJobMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *ExtractionJobMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *ExtractionJobMutation) RemoveQuestionIDs(ids ...uuid.UUID) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *ExtractionJobMutation) RemovedQuestionsIDs() (ids []uuid.UUID) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *ExtractionJobMutation) QuestionsIDs() (ids []uuid.UUID) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *ExtractionJobMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.file_name != nil {
		fields = append(fields, extractionjob.FieldFileName)
	}
	if m.subject_name != nil {
		fields = append(fields, extractionjob.FieldSubjectName)
	}
	if m.class_name != nil {
		fields = append(fields, extractionjob.FieldClassName)
	}
	if m.specialization != nil {
		fields = append(fields, extractionjob.FieldSpecialization)
	}
	if m.uploaded_by != nil {
		fields = append(fields, extractionjob.FieldUploadedBy)
	}
	if m.total_pages != nil {
		fields = append(fields, extractionjob.FieldTotalPages)
	}
	if m.status != nil {
		fields = append(fields, extractionjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.model_name != nil {
		fields = append(fields, extractionjob.FieldModelName)
	}
	if m.started_at != nil {
		fields = append(fields, extractionjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractionjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldFileName:
		return m.FileName()
	case extractionjob.FieldSubjectName:
		return m.SubjectName()
	case extractionjob.FieldClassName:
		return m.ClassName()
	case extractionjob.FieldSpecialization:
		return m.Specialization()
	case extractionjob.FieldUploadedBy:
		return m.UploadedBy()
	case extractionjob.FieldTotalPages:
		return m.TotalPages()
	case extractionjob.FieldStatus:
		return m.Status()
	case extractionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionjob.FieldModelName:
		return m.ModelName()
	case extractionjob.FieldStartedAt:
		return m.StartedAt()
	case extractionjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldFileName:
		return m.OldFileName(ctx)
	case extractionjob.FieldSubjectName:
		return m.OldSubjectName(ctx)
	case extractionjob.FieldClassName:
		return m.OldClassName(ctx)
	case extractionjob.FieldSpecialization:
		return m.OldSpecialization(ctx)
	case extractionjob.FieldUploadedBy:
		return m.OldUploadedBy(ctx)
	case extractionjob.FieldTotalPages:
		return m.OldTotalPages(ctx)
	case extractionjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionjob.FieldModelName:
		return m.OldModelName(ctx)
	case extractionjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case extractionjob.FieldSubjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectName(v)
		return nil
	case extractionjob.FieldClassName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassName(v)
		return nil
	case extractionjob.FieldSpecialization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialization(v)
		return nil
	case extractionjob.FieldUploadedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedBy(v)
		return nil
	case extractionjob.FieldTotalPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPages(v)
		return nil
	case extractionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractionjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_pages != nil {
		fields = append(fields, extractionjob.FieldTotalPages)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldTotalPages:
		return m.AddedTotalPages()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldTotalPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPages(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionjob.FieldClassName) {
		fields = append(fields, extractionjob.FieldClassName)
	}
	if m.FieldCleared(extractionjob.FieldSpecialization) {
		fields = append(fields, extractionjob.FieldSpecialization)
	}
	if m.FieldCleared(extractionjob.FieldErrorMessage) {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractionjob.FieldModelName) {
		fields = append(fields, extractionjob.FieldModelName)
	}
	if m.FieldCleared(extractionjob.FieldFinishedAt) {
		fields = append(fields, extractionjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	switch name {
	case extractionjob.FieldClassName:
		m.ClearClassName()
		return nil
	case extractionjob.FieldSpecialization:
		m.ClearSpecialization()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionjob.FieldModelName:
		m.ClearModelName()
		return nil
	case extractionjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldFileName:
		m.ResetFileName()
		return nil
	case extractionjob.FieldSubjectName:
		m.ResetSubjectName()
		return nil
	case extractionjob.FieldClassName:
		m.ResetClassName()
		return nil
	case extractionjob.FieldSpecialization:
		m.ResetSpecialization()
		return nil
	case extractionjob.FieldUploadedBy:
		m.ResetUploadedBy()
		return nil
	case extractionjob.FieldTotalPages:
		m.ResetTotalPages()
		return nil
	case extractionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionjob.FieldModelName:
		m.ResetModelName()
		return nil
	case extractionjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.pages != nil {
		edges = append(edges, extractionjob.EdgePages)
	}
	if m.questions != nil {
		edges = append(edges, extractionjob.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgePages:
		ids := make([]ent.Value, 0, len(m.pages))
		for id := range m.pages {
			ids = append(ids, id)
		}
		return ids
	case extractionjob.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpages != nil {
		edges = append(edges, extractionjob.EdgePages)
	}
	if m.removedquestions != nil {
		edges = append(edges, extractionjob.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgePages:
		ids := make([]ent.Value, 0, len(m.removedpages))
		for id := range m.removedpages {
			ids = append(ids, id)
		}
		return ids
	case extractionjob.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpages {
		edges = append(edges, extractionjob.EdgePages)
	}
	if m.clearedquestions {
		edges = append(edges, extractionjob.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgePages:
		return m.clearedpages
	case extractionjob.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgePages:
		m.ResetPages()
		return nil
	case extractionjob.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}

// PageOutcomeMutation represents an operation that mutates the PageOutcome nodes in the graph.
type PageOutcomeMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	page_number       *int
	addpage_number    *int
	status            *string
	question_count    *int
	addquestion_count *int
	error             *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	job               *uuid.UUID
	clearedjob        bool
	done              bool
	oldValue          func(context.Context) (*PageOutcome, error)
	predicates        []predicate.PageOutcome
}

var _ ent.Mutation = (*PageOutcomeMutation)(nil)

// pageoutcomeOption allows management of the mutation configuration using functional options.
type pageoutcomeOption func(*PageOutcomeMutation)

// newPageOutcomeMutation creates new mutation for the PageOutcome entity.
func newPageOutcomeMutation(c config, op Op, opts ...pageoutcomeOption) *PageOutcomeMutation {
	m := &PageOutcomeMutation{
		config:        c,
		op:            op,
		typ:           TypePageOutcome,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageOutcomeID sets the ID field of the mutation.
func withPageOutcomeID(id uuid.UUID) pageoutcomeOption {
	return func(m *PageOutcomeMutation) {
		var (
			err   error
			once  sync.Once
			value *PageOutcome
		)
		m.oldValue = func(ctx context.Context) (*PageOutcome, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PageOutcome.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPageOutcome sets the old PageOutcome of the mutation.
func withPageOutcome(node *PageOutcome) pageoutcomeOption {
	return func(m *PageOutcomeMutation) {
		m.oldValue = func(context.Context) (*PageOutcome, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageOutcomeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageOutcomeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PageOutcome entities.
func (m *PageOutcomeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageOutcomeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageOutcomeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PageOutcome.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *PageOutcomeMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *PageOutcomeMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the PageOutcome entity.
// If the PageOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageOutcomeMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *PageOutcomeMutation) ResetJobID() {
	m.job = nil
}

// SetPageNumber sets the "page_number" field.
func (m *PageOutcomeMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *PageOutcomeMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the PageOutcome entity.
// If the PageOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageOutcomeMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *PageOutcomeMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *PageOutcomeMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *PageOutcomeMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetStatus sets the "status" field.
func (m *PageOutcomeMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PageOutcomeMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PageOutcome entity.
// If the PageOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageOutcomeMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PageOutcomeMutation) ResetStatus() {
	m.status = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *PageOutcomeMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *PageOutcomeMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the PageOutcome entity.
// If the PageOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageOutcomeMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *PageOutcomeMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *PageOutcomeMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *PageOutcomeMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetError sets the "error" field.
func (m *PageOutcomeMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *PageOutcomeMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the PageOutcome entity.
// If the PageOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageOutcomeMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *PageOutcomeMutation) ClearError() {
	m.error = nil
	m.clearedFields[pageoutcome.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *PageOutcomeMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[pageoutcome.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *PageOutcomeMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, pageoutcome.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *PageOutcomeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PageOutcomeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PageOutcome entity.
// If the PageOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageOutcomeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PageOutcomeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (m *PageOutcomeMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[pageoutcome.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ExtractionJob entity was cleared.
func (m *PageOutcomeMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *PageOutcomeMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *PageOutcomeMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the PageOutcomeMutation builder.
func (m *PageOutcomeMutation) Where(ps ...predicate.PageOutcome) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageOutcomeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageOutcomeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PageOutcome, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageOutcomeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageOutcomeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PageOutcome).
func (m *PageOutcomeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageOutcomeMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.job != nil {
		fields = append(fields, pageoutcome.FieldJobID)
	}
	if m.page_number != nil {
		fields = append(fields, pageoutcome.FieldPageNumber)
	}
	if m.status != nil {
		fields = append(fields, pageoutcome.FieldStatus)
	}
	if m.question_count != nil {
		fields = append(fields, pageoutcome.FieldQuestionCount)
	}
	if m.error != nil {
		fields = append(fields, pageoutcome.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, pageoutcome.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageOutcomeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pageoutcome.FieldJobID:
		return m.JobID()
	case pageoutcome.FieldPageNumber:
		return m.PageNumber()
	case pageoutcome.FieldStatus:
		return m.Status()
	case pageoutcome.FieldQuestionCount:
		return m.QuestionCount()
	case pageoutcome.FieldError:
		return m.Error()
	case pageoutcome.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageOutcomeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pageoutcome.FieldJobID:
		return m.OldJobID(ctx)
	case pageoutcome.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case pageoutcome.FieldStatus:
		return m.OldStatus(ctx)
	case pageoutcome.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case pageoutcome.FieldError:
		return m.OldError(ctx)
	case pageoutcome.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PageOutcome field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageOutcomeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pageoutcome.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case pageoutcome.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case pageoutcome.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pageoutcome.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case pageoutcome.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case pageoutcome.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PageOutcome field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageOutcomeMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, pageoutcome.FieldPageNumber)
	}
	if m.addquestion_count != nil {
		fields = append(fields, pageoutcome.FieldQuestionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageOutcomeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pageoutcome.FieldPageNumber:
		return m.AddedPageNumber()
	case pageoutcome.FieldQuestionCount:
		return m.AddedQuestionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageOutcomeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pageoutcome.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	case pageoutcome.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	}
	return fmt.Errorf("unknown PageOutcome numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageOutcomeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pageoutcome.FieldError) {
		fields = append(fields, pageoutcome.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageOutcomeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageOutcomeMutation) ClearField(name string) error {
	switch name {
	case pageoutcome.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown PageOutcome nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageOutcomeMutation) ResetField(name string) error {
	switch name {
	case pageoutcome.FieldJobID:
		m.ResetJobID()
		return nil
	case pageoutcome.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case pageoutcome.FieldStatus:
		m.ResetStatus()
		return nil
	case pageoutcome.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case pageoutcome.FieldError:
		m.ResetError()
		return nil
	case pageoutcome.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PageOutcome field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageOutcomeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, pageoutcome.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageOutcomeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pageoutcome.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageOutcomeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageOutcomeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageOutcomeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, pageoutcome.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageOutcomeMutation) EdgeCleared(name string) bool {
	switch name {
	case pageoutcome.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageOutcomeMutation) ClearEdge(name string) error {
	switch name {
	case pageoutcome.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown PageOutcome unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageOutcomeMutation) ResetEdge(name string) error {
	switch name {
	case pageoutcome.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown PageOutcome edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	dedup_key           *string
	file_name           *string
	subject_name        *string
	lesson_title        *string
	class_name          *string
	specialization      *string
	question            *string
	question_type       *string
	question_difficulty *string
	page_number         *int
	addpage_number      *int
	answer_steps        *string
	correct_answer      *string
	uploaded_by         *string
	updated_by          *string
	created_at          *time.Time
	updated_at          *time.Time
	option1             *string
	option2             *string
	option3             *string
	option4             *string
	option5             *string
	option6             *string
	clearedFields       map[string]struct{}
	job                 *uuid.UUID
	clearedjob          bool
	done                bool
	oldValue            func(context.Context) (*Question, error)
	predicates          []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id uuid.UUID) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *QuestionMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *QuestionMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *QuestionMutation) ResetJobID() {
	m.job = nil
}

// SetDedupKey sets the "dedup_key" field.
func (m *QuestionMutation) SetDedupKey(s string) {
	m.dedup_key = &s
}

// DedupKey returns the value of the "dedup_key" field in the mutation.
func (m *QuestionMutation) DedupKey() (r string, exists bool) {
	v := m.dedup_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupKey returns the old "dedup_key" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDedupKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupKey: %w", err)
	}
	return oldValue.DedupKey, nil
}

// ResetDedupKey resets all changes to the "dedup_key" field.
func (m *QuestionMutation) ResetDedupKey() {
	m.dedup_key = nil
}

// SetFileName sets the "file_name" field.
func (m *QuestionMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *QuestionMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *QuestionMutation) ResetFileName() {
	m.file_name = nil
}

// SetSubjectName sets the "subject_name" field.
func (m *QuestionMutation) SetSubjectName(s string) {
	m.subject_name = &s
}

// SubjectName returns the value of the "subject_name" field in the mutation.
func (m *QuestionMutation) SubjectName() (r string, exists bool) {
	v := m.subject_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectName returns the old "subject_name" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectName: %w", err)
	}
	return oldValue.SubjectName, nil
}

// ResetSubjectName resets all changes to the "subject_name" field.
func (m *QuestionMutation) ResetSubjectName() {
	m.subject_name = nil
}

// SetLessonTitle sets the "lesson_title" field.
func (m *QuestionMutation) SetLessonTitle(s string) {
	m.lesson_title = &s
}

// LessonTitle returns the value of the "lesson_title" field in the mutation.
func (m *QuestionMutation) LessonTitle() (r string, exists bool) {
	v := m.lesson_title
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonTitle returns the old "lesson_title" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldLessonTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonTitle: %w", err)
	}
	return oldValue.LessonTitle, nil
}

// ClearLessonTitle clears the value of the "lesson_title" field.
func (m *QuestionMutation) ClearLessonTitle() {
	m.lesson_title = nil
	m.clearedFields[question.FieldLessonTitle] = struct{}{}
}

// LessonTitleCleared returns if the "lesson_title" field was cleared in this mutation.
func (m *QuestionMutation) LessonTitleCleared() bool {
	_, ok := m.clearedFields[question.FieldLessonTitle]
	return ok
}

// ResetLessonTitle resets all changes to the "lesson_title" field.
func (m *QuestionMutation) ResetLessonTitle() {
	m.lesson_title = nil
	delete(m.clearedFields, question.FieldLessonTitle)
}

// SetClassName sets the "class_name" field.
func (m *QuestionMutation) SetClassName(s string) {
	m.class_name = &s
}

// ClassName returns the value of the "class_name" field in the mutation.
func (m *QuestionMutation) ClassName() (r string, exists bool) {
	v := m.class_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClassName returns the old "class_name" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldClassName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassName: %w", err)
	}
	return oldValue.ClassName, nil
}

// ClearClassName clears the value of the "class_name" field.
func (m *QuestionMutation) ClearClassName() {
	m.class_name = nil
	m.clearedFields[question.FieldClassName] = struct{}{}
}

// ClassNameCleared returns if the "class_name" field was cleared in this mutation.
func (m *QuestionMutation) ClassNameCleared() bool {
	_, ok := m.clearedFields[question.FieldClassName]
	return ok
}

// ResetClassName resets all changes to the "class_name" field.
func (m *QuestionMutation) ResetClassName() {
	m.class_name = nil
	delete(m.clearedFields, question.FieldClassName)
}

// SetSpecialization sets the "specialization" field.
func (m *QuestionMutation) SetSpecialization(s string) {
	m.specialization = &s
}

// Specialization returns the value of the "specialization" field in the mutation.
func (m *QuestionMutation) Specialization() (r string, exists bool) {
	v := m.specialization
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialization returns the old "specialization" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSpecialization(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialization: %w", err)
	}
	return oldValue.Specialization, nil
}

// ClearSpecialization clears the value of the "specialization" field.
func (m *QuestionMutation) ClearSpecialization() {
	m.specialization = nil
	m.clearedFields[question.FieldSpecialization] = struct{}{}
}

// SpecializationCleared returns if the "specialization" field was cleared in this mutation.
func (m *QuestionMutation) SpecializationCleared() bool {
	_, ok := m.clearedFields[question.FieldSpecialization]
	return ok
}

// ResetSpecialization resets all changes to the "specialization" field.
func (m *QuestionMutation) ResetSpecialization() {
	m.specialization = nil
	delete(m.clearedFields, question.FieldSpecialization)
}

// SetQuestion sets the "question" field.
func (m *QuestionMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *QuestionMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *QuestionMutation) ResetQuestion() {
	m.question = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ClearQuestionType clears the value of the "question_type" field.
func (m *QuestionMutation) ClearQuestionType() {
	m.question_type = nil
	m.clearedFields[question.FieldQuestionType] = struct{}{}
}

// QuestionTypeCleared returns if the "question_type" field was cleared in this mutation.
func (m *QuestionMutation) QuestionTypeCleared() bool {
	_, ok := m.clearedFields[question.FieldQuestionType]
	return ok
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
	delete(m.clearedFields, question.FieldQuestionType)
}

// SetQuestionDifficulty sets the "question_difficulty" field.
func (m *QuestionMutation) SetQuestionDifficulty(s string) {
	m.question_difficulty = &s
}

// QuestionDifficulty returns the value of the "question_difficulty" field in the mutation.
func (m *QuestionMutation) QuestionDifficulty() (r string, exists bool) {
	v := m.question_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionDifficulty returns the old "question_difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionDifficulty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionDifficulty: %w", err)
	}
	return oldValue.QuestionDifficulty, nil
}

// ClearQuestionDifficulty clears the value of the "question_difficulty" field.
func (m *QuestionMutation) ClearQuestionDifficulty() {
	m.question_difficulty = nil
	m.clearedFields[question.FieldQuestionDifficulty] = struct{}{}
}

// QuestionDifficultyCleared returns if the "question_difficulty" field was cleared in this mutation.
func (m *QuestionMutation) QuestionDifficultyCleared() bool {
	_, ok := m.clearedFields[question.FieldQuestionDifficulty]
	return ok
}

// ResetQuestionDifficulty resets all changes to the "question_difficulty" field.
func (m *QuestionMutation) ResetQuestionDifficulty() {
	m.question_difficulty = nil
	delete(m.clearedFields, question.FieldQuestionDifficulty)
}

// SetPageNumber sets the "page_number" field.
func (m *QuestionMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *QuestionMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *QuestionMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *QuestionMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *QuestionMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetAnswerSteps sets the "answer_steps" field.
func (m *QuestionMutation) SetAnswerSteps(s string) {
	m.answer_steps = &s
}

// AnswerSteps returns the value of the "answer_steps" field in the mutation.
func (m *QuestionMutation) AnswerSteps() (r string, exists bool) {
	v := m.answer_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerSteps returns the old "answer_steps" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAnswerSteps(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerSteps: %w", err)
	}
	return oldValue.AnswerSteps, nil
}

// ClearAnswerSteps clears the value of the "answer_steps" field.
func (m *QuestionMutation) ClearAnswerSteps() {
	m.answer_steps = nil
	m.clearedFields[question.FieldAnswerSteps] = struct{}{}
}

// AnswerStepsCleared returns if the "answer_steps" field was cleared in this mutation.
func (m *QuestionMutation) AnswerStepsCleared() bool {
	_, ok := m.clearedFields[question.FieldAnswerSteps]
	return ok
}

// ResetAnswerSteps resets all changes to the "answer_steps" field.
func (m *QuestionMutation) ResetAnswerSteps() {
	m.answer_steps = nil
	delete(m.clearedFields, question.FieldAnswerSteps)
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *QuestionMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *QuestionMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCorrectAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (m *QuestionMutation) ClearCorrectAnswer() {
	m.correct_answer = nil
	m.clearedFields[question.FieldCorrectAnswer] = struct{}{}
}

// CorrectAnswerCleared returns if the "correct_answer" field was cleared in this mutation.
func (m *QuestionMutation) CorrectAnswerCleared() bool {
	_, ok := m.clearedFields[question.FieldCorrectAnswer]
	return ok
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *QuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
	delete(m.clearedFields, question.FieldCorrectAnswer)
}

// SetUploadedBy sets the "uploaded_by" field.
func (m *QuestionMutation) SetUploadedBy(s string) {
	m.uploaded_by = &s
}

// UploadedBy returns the value of the "uploaded_by" field in the mutation.
func (m *QuestionMutation) UploadedBy() (r string, exists bool) {
	v := m.uploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedBy returns the old "uploaded_by" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUploadedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedBy: %w", err)
	}
	return oldValue.UploadedBy, nil
}

// ResetUploadedBy resets all changes to the "uploaded_by" field.
func (m *QuestionMutation) ResetUploadedBy() {
	m.uploaded_by = nil
}

// SetUpdatedBy sets the "updated_by" field.
func (m *QuestionMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *QuestionMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *QuestionMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[question.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *QuestionMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[question.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *QuestionMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, question.FieldUpdatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOption1 sets the "option1" field.
func (m *QuestionMutation) SetOption1(s string) {
	m.option1 = &s
}

// Option1 returns the value of the "option1" field in the mutation.
func (m *QuestionMutation) Option1() (r string, exists bool) {
	v := m.option1
	if v == nil {
		return
	}
	return *v, true
}

// OldOption1 returns the old "option1" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOption1(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOption1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOption1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOption1: %w", err)
	}
	return oldValue.Option1, nil
}

// ClearOption1 clears the value of the "option1" field.
func (m *QuestionMutation) ClearOption1() {
	m.option1 = nil
	m.clearedFields[question.FieldOption1] = struct{}{}
}

// Option1Cleared returns if the "option1" field was cleared in this mutation.
func (m *QuestionMutation) Option1Cleared() bool {
	_, ok := m.clearedFields[question.FieldOption1]
	return ok
}

// ResetOption1 resets all changes to the "option1" field.
func (m *QuestionMutation) ResetOption1() {
	m.option1 = nil
	delete(m.clearedFields, question.FieldOption1)
}

// SetOption2 sets the "option2" field.
func (m *QuestionMutation) SetOption2(s string) {
	m.option2 = &s
}

// Option2 returns the value of the "option2" field in the mutation.
func (m *QuestionMutation) Option2() (r string, exists bool) {
	v := m.option2
	if v == nil {
		return
	}
	return *v, true
}

// OldOption2 returns the old "option2" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOption2(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOption2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOption2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOption2: %w", err)
	}
	return oldValue.Option2, nil
}

// ClearOption2 clears the value of the "option2" field.
func (m *QuestionMutation) ClearOption2() {
	m.option2 = nil
	m.clearedFields[question.FieldOption2] = struct{}{}
}

// Option2Cleared returns if the "option2" field was cleared in this mutation.
func (m *QuestionMutation) Option2Cleared() bool {
	_, ok := m.clearedFields[question.FieldOption2]
	return ok
}

// ResetOption2 resets all changes to the "option2" field.
func (m *QuestionMutation) ResetOption2() {
	m.option2 = nil
	delete(m.clearedFields, question.FieldOption2)
}

// SetOption3 sets the "option3" field.
func (m *QuestionMutation) SetOption3(s string) {
	m.option3 = &s
}

// Option3 returns the value of the "option3" field in the mutation.
func (m *QuestionMutation) Option3() (r string, exists bool) {
	v := m.option3
	if v == nil {
		return
	}
	return *v, true
}

// OldOption3 returns the old "option3" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOption3(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOption3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOption3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOption3: %w", err)
	}
	return oldValue.Option3, nil
}

// ClearOption3 clears the value of the "option3" field.
func (m *QuestionMutation) ClearOption3() {
	m.option3 = nil
	m.clearedFields[question.FieldOption3] = struct{}{}
}

// Option3Cleared returns if the "option3" field was cleared in this mutation.
func (m *QuestionMutation) Option3Cleared() bool {
	_, ok := m.clearedFields[question.FieldOption3]
	return ok
}

// ResetOption3 resets all changes to the "option3" field.
func (m *QuestionMutation) ResetOption3() {
	m.option3 = nil
	delete(m.clearedFields, question.FieldOption3)
}

// SetOption4 sets the "option4" field.
func (m *QuestionMutation) SetOption4(s string) {
	m.option4 = &s
}

// Option4 returns the value of the "option4" field in the mutation.
func (m *QuestionMutation) Option4() (r string, exists bool) {
	v := m.option4
	if v == nil {
		return
	}
	return *v, true
}

// OldOption4 returns the old "option4" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOption4(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOption4 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOption4 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOption4: %w", err)
	}
	return oldValue.Option4, nil
}

// ClearOption4 clears the value of the "option4" field.
func (m *QuestionMutation) ClearOption4() {
	m.option4 = nil
	m.clearedFields[question.FieldOption4] = struct{}{}
}

// Option4Cleared returns if the "option4" field was cleared in this mutation.
func (m *QuestionMutation) Option4Cleared() bool {
	_, ok := m.clearedFields[question.FieldOption4]
	return ok
}

// ResetOption4 resets all changes to the "option4" field.
func (m *QuestionMutation) ResetOption4() {
	m.option4 = nil
	delete(m.clearedFields, question.FieldOption4)
}

// SetOption5 sets the "option5" field.
func (m *QuestionMutation) SetOption5(s string) {
	m.option5 = &s
}

// Option5 returns the value of the "option5" field in the mutation.
func (m *QuestionMutation) Option5() (r string, exists bool) {
	v := m.option5
	if v == nil {
		return
	}
	return *v, true
}

// OldOption5 returns the old "option5" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOption5(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOption5 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOption5 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOption5: %w", err)
	}
	return oldValue.Option5, nil
}

// ClearOption5 clears the value of the "option5" field.
func (m *QuestionMutation) ClearOption5() {
	m.option5 = nil
	m.clearedFields[question.FieldOption5] = struct{}{}
}

// Option5Cleared returns if the "option5" field was cleared in this mutation.
func (m *QuestionMutation) Option5Cleared() bool {
	_, ok := m.clearedFields[question.FieldOption5]
	return ok
}

// ResetOption5 resets all changes to the "option5" field.
func (m *QuestionMutation) ResetOption5() {
	m.option5 = nil
	delete(m.clearedFields, question.FieldOption5)
}

// SetOption6 sets the "option6" field.
func (m *QuestionMutation) SetOption6(s string) {
	m.option6 = &s
}

// Option6 returns the value of the "option6" field in the mutation.
func (m *QuestionMutation) Option6() (r string, exists bool) {
	v := m.option6
	if v == nil {
		return
	}
	return *v, true
}

// OldOption6 returns the old "option6" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOption6(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOption6 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOption6 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOption6: %w", err)
	}
	return oldValue.Option6, nil
}

// ClearOption6 clears the value of the "option6" field.
func (m *QuestionMutation) ClearOption6() {
	m.option6 = nil
	m.clearedFields[question.FieldOption6] = struct{}{}
}

// Option6Cleared returns if the "option6" field was cleared in this mutation.
func (m *QuestionMutation) Option6Cleared() bool {
	_, ok := m.clearedFields[question.FieldOption6]
	return ok
}

// ResetOption6 resets all changes to the "option6" field.
func (m *QuestionMutation) ResetOption6() {
	m.option6 = nil
	delete(m.clearedFields, question.FieldOption6)
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (m *QuestionMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[question.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ExtractionJob entity was cleared.
func (m *QuestionMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *QuestionMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.job != nil {
		fields = append(fields, question.FieldJobID)
	}
	if m.dedup_key != nil {
		fields = append(fields, question.FieldDedupKey)
	}
	if m.file_name != nil {
		fields = append(fields, question.FieldFileName)
	}
	if m.subject_name != nil {
		fields = append(fields, question.FieldSubjectName)
	}
	if m.lesson_title != nil {
		fields = append(fields, question.FieldLessonTitle)
	}
	if m.class_name != nil {
		fields = append(fields, question.FieldClassName)
	}
	if m.specialization != nil {
		fields = append(fields, question.FieldSpecialization)
	}
	if m.question != nil {
		fields = append(fields, question.FieldQuestion)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.question_difficulty != nil {
		fields = append(fields, question.FieldQuestionDifficulty)
	}
	if m.page_number != nil {
		fields = append(fields, question.FieldPageNumber)
	}
	if m.answer_steps != nil {
		fields = append(fields, question.FieldAnswerSteps)
	}
	if m.correct_answer != nil {
		fields = append(fields, question.FieldCorrectAnswer)
	}
	if m.uploaded_by != nil {
		fields = append(fields, question.FieldUploadedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, question.FieldUpdatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, question.FieldUpdatedAt)
	}
	if m.option1 != nil {
		fields = append(fields, question.FieldOption1)
	}
	if m.option2 != nil {
		fields = append(fields, question.FieldOption2)
	}
	if m.option3 != nil {
		fields = append(fields, question.FieldOption3)
	}
	if m.option4 != nil {
		fields = append(fields, question.FieldOption4)
	}
	if m.option5 != nil {
		fields = append(fields, question.FieldOption5)
	}
	if m.option6 != nil {
		fields = append(fields, question.FieldOption6)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldJobID:
		return m.JobID()
	case question.FieldDedupKey:
		return m.DedupKey()
	case question.FieldFileName:
		return m.FileName()
	case question.FieldSubjectName:
		return m.SubjectName()
	case question.FieldLessonTitle:
		return m.LessonTitle()
	case question.FieldClassName:
		return m.ClassName()
	case question.FieldSpecialization:
		return m.Specialization()
	case question.FieldQuestion:
		return m.Question()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldQuestionDifficulty:
		return m.QuestionDifficulty()
	case question.FieldPageNumber:
		return m.PageNumber()
	case question.FieldAnswerSteps:
		return m.AnswerSteps()
	case question.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case question.FieldUploadedBy:
		return m.UploadedBy()
	case question.FieldUpdatedBy:
		return m.UpdatedBy()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldUpdatedAt:
		return m.UpdatedAt()
	case question.FieldOption1:
		return m.Option1()
	case question.FieldOption2:
		return m.Option2()
	case question.FieldOption3:
		return m.Option3()
	case question.FieldOption4:
		return m.Option4()
	case question.FieldOption5:
		return m.Option5()
	case question.FieldOption6:
		return m.Option6()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldJobID:
		return m.OldJobID(ctx)
	case question.FieldDedupKey:
		return m.OldDedupKey(ctx)
	case question.FieldFileName:
		return m.OldFileName(ctx)
	case question.FieldSubjectName:
		return m.OldSubjectName(ctx)
	case question.FieldLessonTitle:
		return m.OldLessonTitle(ctx)
	case question.FieldClassName:
		return m.OldClassName(ctx)
	case question.FieldSpecialization:
		return m.OldSpecialization(ctx)
	case question.FieldQuestion:
		return m.OldQuestion(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldQuestionDifficulty:
		return m.OldQuestionDifficulty(ctx)
	case question.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case question.FieldAnswerSteps:
		return m.OldAnswerSteps(ctx)
	case question.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case question.FieldUploadedBy:
		return m.OldUploadedBy(ctx)
	case question.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case question.FieldOption1:
		return m.OldOption1(ctx)
	case question.FieldOption2:
		return m.OldOption2(ctx)
	case question.FieldOption3:
		return m.OldOption3(ctx)
	case question.FieldOption4:
		return m.OldOption4(ctx)
	case question.FieldOption5:
		return m.OldOption5(ctx)
	case question.FieldOption6:
		return m.OldOption6(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case question.FieldDedupKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupKey(v)
		return nil
	case question.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case question.FieldSubjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectName(v)
		return nil
	case question.FieldLessonTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonTitle(v)
		return nil
	case question.FieldClassName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassName(v)
		return nil
	case question.FieldSpecialization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialization(v)
		return nil
	case question.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldQuestionDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionDifficulty(v)
		return nil
	case question.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case question.FieldAnswerSteps:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerSteps(v)
		return nil
	case question.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case question.FieldUploadedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedBy(v)
		return nil
	case question.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case question.FieldOption1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOption1(v)
		return nil
	case question.FieldOption2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOption2(v)
		return nil
	case question.FieldOption3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOption3(v)
		return nil
	case question.FieldOption4:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOption4(v)
		return nil
	case question.FieldOption5:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOption5(v)
		return nil
	case question.FieldOption6:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOption6(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, question.FieldPageNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldPageNumber:
		return m.AddedPageNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldLessonTitle) {
		fields = append(fields, question.FieldLessonTitle)
	}
	if m.FieldCleared(question.FieldClassName) {
		fields = append(fields, question.FieldClassName)
	}
	if m.FieldCleared(question.FieldSpecialization) {
		fields = append(fields, question.FieldSpecialization)
	}
	if m.FieldCleared(question.FieldQuestionType) {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.FieldCleared(question.FieldQuestionDifficulty) {
		fields = append(fields, question.FieldQuestionDifficulty)
	}
	if m.FieldCleared(question.FieldAnswerSteps) {
		fields = append(fields, question.FieldAnswerSteps)
	}
	if m.FieldCleared(question.FieldCorrectAnswer) {
		fields = append(fields, question.FieldCorrectAnswer)
	}
	if m.FieldCleared(question.FieldUpdatedBy) {
		fields = append(fields, question.FieldUpdatedBy)
	}
	if m.FieldCleared(question.FieldOption1) {
		fields = append(fields, question.FieldOption1)
	}
	if m.FieldCleared(question.FieldOption2) {
		fields = append(fields, question.FieldOption2)
	}
	if m.FieldCleared(question.FieldOption3) {
		fields = append(fields, question.FieldOption3)
	}
	if m.FieldCleared(question.FieldOption4) {
		fields = append(fields, question.FieldOption4)
	}
	if m.FieldCleared(question.FieldOption5) {
		fields = append(fields, question.FieldOption5)
	}
	if m.FieldCleared(question.FieldOption6) {
		fields = append(fields, question.FieldOption6)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldLessonTitle:
		m.ClearLessonTitle()
		return nil
	case question.FieldClassName:
		m.ClearClassName()
		return nil
	case question.FieldSpecialization:
		m.ClearSpecialization()
		return nil
	case question.FieldQuestionType:
		m.ClearQuestionType()
		return nil
	case question.FieldQuestionDifficulty:
		m.ClearQuestionDifficulty()
		return nil
	case question.FieldAnswerSteps:
		m.ClearAnswerSteps()
		return nil
	case question.FieldCorrectAnswer:
		m.ClearCorrectAnswer()
		return nil
	case question.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case question.FieldOption1:
		m.ClearOption1()
		return nil
	case question.FieldOption2:
		m.ClearOption2()
		return nil
	case question.FieldOption3:
		m.ClearOption3()
		return nil
	case question.FieldOption4:
		m.ClearOption4()
		return nil
	case question.FieldOption5:
		m.ClearOption5()
		return nil
	case question.FieldOption6:
		m.ClearOption6()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldJobID:
		m.ResetJobID()
		return nil
	case question.FieldDedupKey:
		m.ResetDedupKey()
		return nil
	case question.FieldFileName:
		m.ResetFileName()
		return nil
	case question.FieldSubjectName:
		m.ResetSubjectName()
		return nil
	case question.FieldLessonTitle:
		m.ResetLessonTitle()
		return nil
	case question.FieldClassName:
		m.ResetClassName()
		return nil
	case question.FieldSpecialization:
		m.ResetSpecialization()
		return nil
	case question.FieldQuestion:
		m.ResetQuestion()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldQuestionDifficulty:
		m.ResetQuestionDifficulty()
		return nil
	case question.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case question.FieldAnswerSteps:
		m.ResetAnswerSteps()
		return nil
	case question.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case question.FieldUploadedBy:
		m.ResetUploadedBy()
		return nil
	case question.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case question.FieldOption1:
		m.ResetOption1()
		return nil
	case question.FieldOption2:
		m.ResetOption2()
		return nil
	case question.FieldOption3:
		m.ResetOption3()
		return nil
	case question.FieldOption4:
		m.ResetOption4()
		return nil
	case question.FieldOption5:
		m.ResetOption5()
		return nil
	case question.FieldOption6:
		m.ResetOption6()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, question.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, question.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	case question.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}
