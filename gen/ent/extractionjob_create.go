// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qbankhq/qbank/gen/ent/extractionjob"
	"github.com/qbankhq/qbank/gen/ent/pageoutcome"
	"github.com/qbankhq/qbank/gen/ent/question"
)

// ExtractionJobCreate is the builder for creating a ExtractionJob entity.
type ExtractionJobCreate struct {
	config
	mutation *ExtractionJobMutation
	hooks    []Hook
}

// SetFileName sets the "file_name" field.
func (_c *ExtractionJobCreate) SetFileName(v string) *ExtractionJobCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetSubjectName sets the "subject_name" field.
func (_c *ExtractionJobCreate) SetSubjectName(v string) *ExtractionJobCreate {
	_c.mutation.SetSubjectName(v)
	return _c
}

// SetClassName sets the "class_name" field.
func (_c *ExtractionJobCreate) SetClassName(v string) *ExtractionJobCreate {
	_c.mutation.SetClassName(v)
	return _c
}

// SetNillableClassName sets the "class_name" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableClassName(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetClassName(*v)
	}
	return _c
}

// SetSpecialization sets the "specialization" field.
func (_c *ExtractionJobCreate) SetSpecialization(v string) *ExtractionJobCreate {
	_c.mutation.SetSpecialization(v)
	return _c
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableSpecialization(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetSpecialization(*v)
	}
	return _c
}

// SetUploadedBy sets the "uploaded_by" field.
func (_c *ExtractionJobCreate) SetUploadedBy(v string) *ExtractionJobCreate {
	_c.mutation.SetUploadedBy(v)
	return _c
}

// SetTotalPages sets the "total_pages" field.
func (_c *ExtractionJobCreate) SetTotalPages(v int) *ExtractionJobCreate {
	_c.mutation.SetTotalPages(v)
	return _c
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableTotalPages(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetTotalPages(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionJobCreate) SetStatus(v string) *ExtractionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStatus(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionJobCreate) SetErrorMessage(v string) *ExtractionJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableErrorMessage(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ExtractionJobCreate) SetModelName(v string) *ExtractionJobCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableModelName(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionJobCreate) SetStartedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStartedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractionJobCreate) SetFinishedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableFinishedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionJobCreate) SetID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableID(v *uuid.UUID) *ExtractionJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPageIDs adds the "pages" edge to the PageOutcome entity by IDs.
func (_c *ExtractionJobCreate) AddPageIDs(ids ...uuid.UUID) *ExtractionJobCreate {
	_c.mutation.AddPageIDs(ids...)
	return _c
}

// AddPages adds the "pages" edges to the PageOutcome entity.
func (_c *ExtractionJobCreate) AddPages(v ...*PageOutcome) *ExtractionJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPageIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *ExtractionJobCreate) AddQuestionIDs(ids ...uuid.UUID) *ExtractionJobCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *ExtractionJobCreate) AddQuestions(v ...*Question) *ExtractionJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_c *ExtractionJobCreate) Mutation() *ExtractionJobMutation {
	return _c.mutation
}

// Save creates the ExtractionJob in the database.
func (_c *ExtractionJobCreate) Save(ctx context.Context) (*ExtractionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionJobCreate) SaveX(ctx context.Context) *ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionJobCreate) defaults() {
	if _, ok := _c.mutation.TotalPages(); !ok {
		v := extractionjob.DefaultTotalPages
		_c.mutation.SetTotalPages(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := extractionjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := extractionjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionJobCreate) check() error {
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ExtractionJob.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := extractionjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectName(); !ok {
		return &ValidationError{Name: "subject_name", err: errors.New(`ent: missing required field "ExtractionJob.subject_name"`)}
	}
	if v, ok := _c.mutation.SubjectName(); ok {
		if err := extractionjob.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.subject_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedBy(); !ok {
		return &ValidationError{Name: "uploaded_by", err: errors.New(`ent: missing required field "ExtractionJob.uploaded_by"`)}
	}
	if v, ok := _c.mutation.UploadedBy(); ok {
		if err := extractionjob.UploadedByValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_by", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.uploaded_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPages(); !ok {
		return &ValidationError{Name: "total_pages", err: errors.New(`ent: missing required field "ExtractionJob.total_pages"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExtractionJob.started_at"`)}
	}
	return nil
}

func (_c *ExtractionJobCreate) sqlSave(ctx context.Context) (*ExtractionJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionJobCreate) createSpec() (*ExtractionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionjob.Table, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(extractionjob.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.SubjectName(); ok {
		_spec.SetField(extractionjob.FieldSubjectName, field.TypeString, value)
		_node.SubjectName = value
	}
	if value, ok := _c.mutation.ClassName(); ok {
		_spec.SetField(extractionjob.FieldClassName, field.TypeString, value)
		_node.ClassName = &value
	}
	if value, ok := _c.mutation.Specialization(); ok {
		_spec.SetField(extractionjob.FieldSpecialization, field.TypeString, value)
		_node.Specialization = &value
	}
	if value, ok := _c.mutation.UploadedBy(); ok {
		_spec.SetField(extractionjob.FieldUploadedBy, field.TypeString, value)
		_node.UploadedBy = value
	}
	if value, ok := _c.mutation.TotalPages(); ok {
		_spec.SetField(extractionjob.FieldTotalPages, field.TypeInt, value)
		_node.TotalPages = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(extractionjob.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.PagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionJobCreateBulk is the builder for creating many ExtractionJob entities in bulk.
type ExtractionJobCreateBulk struct {
	config
	err      error
	builders []*ExtractionJobCreate
}

// Save creates the ExtractionJob entities in the database.
func (_c *ExtractionJobCreateBulk) Save(ctx context.Context) ([]*ExtractionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) SaveX(ctx context.Context) []*ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
