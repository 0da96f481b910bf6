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
)

// PageOutcomeCreate is the builder for creating a PageOutcome entity.
type PageOutcomeCreate struct {
	config
	mutation *PageOutcomeMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *PageOutcomeCreate) SetJobID(v uuid.UUID) *PageOutcomeCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *PageOutcomeCreate) SetPageNumber(v int) *PageOutcomeCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PageOutcomeCreate) SetStatus(v string) *PageOutcomeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *PageOutcomeCreate) SetQuestionCount(v int) *PageOutcomeCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *PageOutcomeCreate) SetNillableQuestionCount(v *int) *PageOutcomeCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *PageOutcomeCreate) SetError(v string) *PageOutcomeCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *PageOutcomeCreate) SetNillableError(v *string) *PageOutcomeCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PageOutcomeCreate) SetCreatedAt(v time.Time) *PageOutcomeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PageOutcomeCreate) SetNillableCreatedAt(v *time.Time) *PageOutcomeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PageOutcomeCreate) SetID(v uuid.UUID) *PageOutcomeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PageOutcomeCreate) SetNillableID(v *uuid.UUID) *PageOutcomeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_c *PageOutcomeCreate) SetJob(v *ExtractionJob) *PageOutcomeCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the PageOutcomeMutation object of the builder.
func (_c *PageOutcomeCreate) Mutation() *PageOutcomeMutation {
	return _c.mutation
}

// Save creates the PageOutcome in the database.
func (_c *PageOutcomeCreate) Save(ctx context.Context) (*PageOutcome, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PageOutcomeCreate) SaveX(ctx context.Context) *PageOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageOutcomeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageOutcomeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PageOutcomeCreate) defaults() {
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := pageoutcome.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pageoutcome.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pageoutcome.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PageOutcomeCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "PageOutcome.job_id"`)}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "PageOutcome.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := pageoutcome.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "PageOutcome.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PageOutcome.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pageoutcome.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PageOutcome.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "PageOutcome.question_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PageOutcome.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "PageOutcome.job"`)}
	}
	return nil
}

func (_c *PageOutcomeCreate) sqlSave(ctx context.Context) (*PageOutcome, error) {
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

func (_c *PageOutcomeCreate) createSpec() (*PageOutcome, *sqlgraph.CreateSpec) {
	var (
		_node = &PageOutcome{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pageoutcome.Table, sqlgraph.NewFieldSpec(pageoutcome.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(pageoutcome.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pageoutcome.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(pageoutcome.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(pageoutcome.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pageoutcome.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PageOutcomeCreateBulk is the builder for creating many PageOutcome entities in bulk.
type PageOutcomeCreateBulk struct {
	config
	err      error
	builders []*PageOutcomeCreate
}

// Save creates the PageOutcome entities in the database.
func (_c *PageOutcomeCreateBulk) Save(ctx context.Context) ([]*PageOutcome, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PageOutcome, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PageOutcomeMutation)
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
func (_c *PageOutcomeCreateBulk) SaveX(ctx context.Context) []*PageOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageOutcomeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageOutcomeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
