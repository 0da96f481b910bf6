// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qbankhq/qbank/gen/ent/extractionjob"
	"github.com/qbankhq/qbank/gen/ent/pageoutcome"
	"github.com/qbankhq/qbank/gen/ent/predicate"
	"github.com/qbankhq/qbank/gen/ent/question"
)

// ExtractionJobUpdate is the builder for updating ExtractionJob entities.
type ExtractionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdate) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ExtractionJobUpdate) SetFileName(v string) *ExtractionJobUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableFileName(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *ExtractionJobUpdate) SetSubjectName(v string) *ExtractionJobUpdate {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableSubjectName(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetClassName sets the "class_name" field.
func (_u *ExtractionJobUpdate) SetClassName(v string) *ExtractionJobUpdate {
	_u.mutation.SetClassName(v)
	return _u
}

// SetNillableClassName sets the "class_name" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableClassName(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetClassName(*v)
	}
	return _u
}

// ClearClassName clears the value of the "class_name" field.
func (_u *ExtractionJobUpdate) ClearClassName() *ExtractionJobUpdate {
	_u.mutation.ClearClassName()
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *ExtractionJobUpdate) SetSpecialization(v string) *ExtractionJobUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableSpecialization(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// ClearSpecialization clears the value of the "specialization" field.
func (_u *ExtractionJobUpdate) ClearSpecialization() *ExtractionJobUpdate {
	_u.mutation.ClearSpecialization()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *ExtractionJobUpdate) SetUploadedBy(v string) *ExtractionJobUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableUploadedBy(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// SetTotalPages sets the "total_pages" field.
func (_u *ExtractionJobUpdate) SetTotalPages(v int) *ExtractionJobUpdate {
	_u.mutation.ResetTotalPages()
	_u.mutation.SetTotalPages(v)
	return _u
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableTotalPages(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetTotalPages(*v)
	}
	return _u
}

// AddTotalPages adds value to the "total_pages" field.
func (_u *ExtractionJobUpdate) AddTotalPages(v int) *ExtractionJobUpdate {
	_u.mutation.AddTotalPages(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdate) SetStatus(v string) *ExtractionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStatus(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdate) SetErrorMessage(v string) *ExtractionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableErrorMessage(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdate) ClearErrorMessage() *ExtractionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionJobUpdate) SetModelName(v string) *ExtractionJobUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableModelName(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionJobUpdate) ClearModelName() *ExtractionJobUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdate) SetStartedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionJobUpdate) SetFinishedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionJobUpdate) ClearFinishedAt() *ExtractionJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddPageIDs adds the "pages" edge to the PageOutcome entity by IDs.
func (_u *ExtractionJobUpdate) AddPageIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the PageOutcome entity.
func (_u *ExtractionJobUpdate) AddPages(v ...*PageOutcome) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *ExtractionJobUpdate) AddQuestionIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *ExtractionJobUpdate) AddQuestions(v ...*Question) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdate) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearPages clears all "pages" edges to the PageOutcome entity.
func (_u *ExtractionJobUpdate) ClearPages() *ExtractionJobUpdate {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to PageOutcome entities by IDs.
func (_u *ExtractionJobUpdate) RemovePageIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to PageOutcome entities.
func (_u *ExtractionJobUpdate) RemovePages(v ...*PageOutcome) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *ExtractionJobUpdate) ClearQuestions() *ExtractionJobUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *ExtractionJobUpdate) RemoveQuestionIDs(ids ...uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *ExtractionJobUpdate) RemoveQuestions(v ...*Question) *ExtractionJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := extractionjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectName(); ok {
		if err := extractionjob.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.subject_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UploadedBy(); ok {
		if err := extractionjob.UploadedByValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_by", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.uploaded_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(extractionjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(extractionjob.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassName(); ok {
		_spec.SetField(extractionjob.FieldClassName, field.TypeString, value)
	}
	if _u.mutation.ClassNameCleared() {
		_spec.ClearField(extractionjob.FieldClassName, field.TypeString)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(extractionjob.FieldSpecialization, field.TypeString, value)
	}
	if _u.mutation.SpecializationCleared() {
		_spec.ClearField(extractionjob.FieldSpecialization, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(extractionjob.FieldUploadedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPages(); ok {
		_spec.SetField(extractionjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPages(); ok {
		_spec.AddField(extractionjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.PagesTable,
			Columns: []string{extractionjob.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pageoutcome.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.PagesTable,
			Columns: []string{extractionjob.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pageoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.PagesTable,
			Columns: []string{extractionjob.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pageoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.QuestionsTable,
			Columns: []string{extractionjob.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.QuestionsTable,
			Columns: []string{extractionjob.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.QuestionsTable,
			Columns: []string{extractionjob.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionJobUpdateOne is the builder for updating a single ExtractionJob entity.
type ExtractionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// SetFileName sets the "file_name" field.
func (_u *ExtractionJobUpdateOne) SetFileName(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableFileName(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *ExtractionJobUpdateOne) SetSubjectName(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableSubjectName(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetClassName sets the "class_name" field.
func (_u *ExtractionJobUpdateOne) SetClassName(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetClassName(v)
	return _u
}

// SetNillableClassName sets the "class_name" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableClassName(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetClassName(*v)
	}
	return _u
}

// ClearClassName clears the value of the "class_name" field.
func (_u *ExtractionJobUpdateOne) ClearClassName() *ExtractionJobUpdateOne {
	_u.mutation.ClearClassName()
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *ExtractionJobUpdateOne) SetSpecialization(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableSpecialization(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// ClearSpecialization clears the value of the "specialization" field.
func (_u *ExtractionJobUpdateOne) ClearSpecialization() *ExtractionJobUpdateOne {
	_u.mutation.ClearSpecialization()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *ExtractionJobUpdateOne) SetUploadedBy(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableUploadedBy(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// SetTotalPages sets the "total_pages" field.
func (_u *ExtractionJobUpdateOne) SetTotalPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetTotalPages()
	_u.mutation.SetTotalPages(v)
	return _u
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableTotalPages(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetTotalPages(*v)
	}
	return _u
}

// AddTotalPages adds value to the "total_pages" field.
func (_u *ExtractionJobUpdateOne) AddTotalPages(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddTotalPages(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdateOne) SetStatus(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStatus(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdateOne) SetErrorMessage(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdateOne) ClearErrorMessage() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionJobUpdateOne) SetModelName(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableModelName(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionJobUpdateOne) ClearModelName() *ExtractionJobUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdateOne) SetStartedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionJobUpdateOne) SetFinishedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionJobUpdateOne) ClearFinishedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddPageIDs adds the "pages" edge to the PageOutcome entity by IDs.
func (_u *ExtractionJobUpdateOne) AddPageIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the PageOutcome entity.
func (_u *ExtractionJobUpdateOne) AddPages(v ...*PageOutcome) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *ExtractionJobUpdateOne) AddQuestionIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *ExtractionJobUpdateOne) AddQuestions(v ...*Question) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdateOne) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearPages clears all "pages" edges to the PageOutcome entity.
func (_u *ExtractionJobUpdateOne) ClearPages() *ExtractionJobUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to PageOutcome entities by IDs.
func (_u *ExtractionJobUpdateOne) RemovePageIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to PageOutcome entities.
func (_u *ExtractionJobUpdateOne) RemovePages(v ...*PageOutcome) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *ExtractionJobUpdateOne) ClearQuestions() *ExtractionJobUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *ExtractionJobUpdateOne) RemoveQuestionIDs(ids ...uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *ExtractionJobUpdateOne) RemoveQuestions(v ...*Question) *ExtractionJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdateOne) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionJobUpdateOne) Select(field string, fields ...string) *ExtractionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionJob entity.
func (_u *ExtractionJobUpdateOne) Save(ctx context.Context) (*ExtractionJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) SaveX(ctx context.Context) *ExtractionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := extractionjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectName(); ok {
		if err := extractionjob.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.subject_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UploadedBy(); ok {
		if err := extractionjob.UploadedByValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_by", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.uploaded_by": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionjob.FieldID)
		for _, f := range fields {
			if !extractionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(extractionjob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(extractionjob.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassName(); ok {
		_spec.SetField(extractionjob.FieldClassName, field.TypeString, value)
	}
	if _u.mutation.ClassNameCleared() {
		_spec.ClearField(extractionjob.FieldClassName, field.TypeString)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(extractionjob.FieldSpecialization, field.TypeString, value)
	}
	if _u.mutation.SpecializationCleared() {
		_spec.ClearField(extractionjob.FieldSpecialization, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(extractionjob.FieldUploadedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPages(); ok {
		_spec.SetField(extractionjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPages(); ok {
		_spec.AddField(extractionjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.PagesTable,
			Columns: []string{extractionjob.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pageoutcome.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.PagesTable,
			Columns: []string{extractionjob.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pageoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.PagesTable,
			Columns: []string{extractionjob.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pageoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.QuestionsTable,
			Columns: []string{extractionjob.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.QuestionsTable,
			Columns: []string{extractionjob.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionjob.QuestionsTable,
			Columns: []string{extractionjob.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
