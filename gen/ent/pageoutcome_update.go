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
)

// PageOutcomeUpdate is the builder for updating PageOutcome entities.
type PageOutcomeUpdate struct {
	config
	hooks    []Hook
	mutation *PageOutcomeMutation
}

// Where appends a list predicates to the PageOutcomeUpdate builder.
func (_u *PageOutcomeUpdate) Where(ps ...predicate.PageOutcome) *PageOutcomeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *PageOutcomeUpdate) SetJobID(v uuid.UUID) *PageOutcomeUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PageOutcomeUpdate) SetNillableJobID(v *uuid.UUID) *PageOutcomeUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *PageOutcomeUpdate) SetPageNumber(v int) *PageOutcomeUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *PageOutcomeUpdate) SetNillablePageNumber(v *int) *PageOutcomeUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *PageOutcomeUpdate) AddPageNumber(v int) *PageOutcomeUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PageOutcomeUpdate) SetStatus(v string) *PageOutcomeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PageOutcomeUpdate) SetNillableStatus(v *string) *PageOutcomeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *PageOutcomeUpdate) SetQuestionCount(v int) *PageOutcomeUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *PageOutcomeUpdate) SetNillableQuestionCount(v *int) *PageOutcomeUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *PageOutcomeUpdate) AddQuestionCount(v int) *PageOutcomeUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetError sets the "error" field.
func (_u *PageOutcomeUpdate) SetError(v string) *PageOutcomeUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PageOutcomeUpdate) SetNillableError(v *string) *PageOutcomeUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PageOutcomeUpdate) ClearError() *PageOutcomeUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PageOutcomeUpdate) SetCreatedAt(v time.Time) *PageOutcomeUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PageOutcomeUpdate) SetNillableCreatedAt(v *time.Time) *PageOutcomeUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *PageOutcomeUpdate) SetJob(v *ExtractionJob) *PageOutcomeUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the PageOutcomeMutation object of the builder.
func (_u *PageOutcomeUpdate) Mutation() *PageOutcomeMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *PageOutcomeUpdate) ClearJob() *PageOutcomeUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PageOutcomeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageOutcomeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PageOutcomeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageOutcomeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageOutcomeUpdate) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := pageoutcome.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "PageOutcome.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pageoutcome.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PageOutcome.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PageOutcome.job"`)
	}
	return nil
}

func (_u *PageOutcomeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pageoutcome.Table, pageoutcome.Columns, sqlgraph.NewFieldSpec(pageoutcome.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(pageoutcome.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(pageoutcome.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pageoutcome.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(pageoutcome.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(pageoutcome.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(pageoutcome.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(pageoutcome.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pageoutcome.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pageoutcome.JobTable,
			Columns: []string{pageoutcome.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pageoutcome.JobTable,
			Columns: []string{pageoutcome.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PageOutcomeUpdateOne is the builder for updating a single PageOutcome entity.
type PageOutcomeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageOutcomeMutation
}

// SetJobID sets the "job_id" field.
func (_u *PageOutcomeUpdateOne) SetJobID(v uuid.UUID) *PageOutcomeUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PageOutcomeUpdateOne) SetNillableJobID(v *uuid.UUID) *PageOutcomeUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *PageOutcomeUpdateOne) SetPageNumber(v int) *PageOutcomeUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *PageOutcomeUpdateOne) SetNillablePageNumber(v *int) *PageOutcomeUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *PageOutcomeUpdateOne) AddPageNumber(v int) *PageOutcomeUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PageOutcomeUpdateOne) SetStatus(v string) *PageOutcomeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PageOutcomeUpdateOne) SetNillableStatus(v *string) *PageOutcomeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *PageOutcomeUpdateOne) SetQuestionCount(v int) *PageOutcomeUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *PageOutcomeUpdateOne) SetNillableQuestionCount(v *int) *PageOutcomeUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *PageOutcomeUpdateOne) AddQuestionCount(v int) *PageOutcomeUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetError sets the "error" field.
func (_u *PageOutcomeUpdateOne) SetError(v string) *PageOutcomeUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *PageOutcomeUpdateOne) SetNillableError(v *string) *PageOutcomeUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *PageOutcomeUpdateOne) ClearError() *PageOutcomeUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PageOutcomeUpdateOne) SetCreatedAt(v time.Time) *PageOutcomeUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PageOutcomeUpdateOne) SetNillableCreatedAt(v *time.Time) *PageOutcomeUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *PageOutcomeUpdateOne) SetJob(v *ExtractionJob) *PageOutcomeUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the PageOutcomeMutation object of the builder.
func (_u *PageOutcomeUpdateOne) Mutation() *PageOutcomeMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *PageOutcomeUpdateOne) ClearJob() *PageOutcomeUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the PageOutcomeUpdate builder.
func (_u *PageOutcomeUpdateOne) Where(ps ...predicate.PageOutcome) *PageOutcomeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PageOutcomeUpdateOne) Select(field string, fields ...string) *PageOutcomeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PageOutcome entity.
func (_u *PageOutcomeUpdateOne) Save(ctx context.Context) (*PageOutcome, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageOutcomeUpdateOne) SaveX(ctx context.Context) *PageOutcome {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PageOutcomeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageOutcomeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageOutcomeUpdateOne) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := pageoutcome.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "PageOutcome.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pageoutcome.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PageOutcome.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PageOutcome.job"`)
	}
	return nil
}

func (_u *PageOutcomeUpdateOne) sqlSave(ctx context.Context) (_node *PageOutcome, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pageoutcome.Table, pageoutcome.Columns, sqlgraph.NewFieldSpec(pageoutcome.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PageOutcome.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pageoutcome.FieldID)
		for _, f := range fields {
			if !pageoutcome.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pageoutcome.FieldID {
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
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(pageoutcome.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(pageoutcome.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pageoutcome.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(pageoutcome.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(pageoutcome.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(pageoutcome.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(pageoutcome.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pageoutcome.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pageoutcome.JobTable,
			Columns: []string{pageoutcome.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pageoutcome.JobTable,
			Columns: []string{pageoutcome.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PageOutcome{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pageoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
