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
	"github.com/qbankhq/qbank/gen/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *QuestionCreate) SetJobID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetDedupKey sets the "dedup_key" field.
func (_c *QuestionCreate) SetDedupKey(v string) *QuestionCreate {
	_c.mutation.SetDedupKey(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *QuestionCreate) SetFileName(v string) *QuestionCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetSubjectName sets the "subject_name" field.
func (_c *QuestionCreate) SetSubjectName(v string) *QuestionCreate {
	_c.mutation.SetSubjectName(v)
	return _c
}

// SetLessonTitle sets the "lesson_title" field.
func (_c *QuestionCreate) SetLessonTitle(v string) *QuestionCreate {
	_c.mutation.SetLessonTitle(v)
	return _c
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableLessonTitle(v *string) *QuestionCreate {
	if v != nil {
		_c.SetLessonTitle(*v)
	}
	return _c
}

// SetClassName sets the "class_name" field.
func (_c *QuestionCreate) SetClassName(v string) *QuestionCreate {
	_c.mutation.SetClassName(v)
	return _c
}

// SetNillableClassName sets the "class_name" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableClassName(v *string) *QuestionCreate {
	if v != nil {
		_c.SetClassName(*v)
	}
	return _c
}

// SetSpecialization sets the "specialization" field.
func (_c *QuestionCreate) SetSpecialization(v string) *QuestionCreate {
	_c.mutation.SetSpecialization(v)
	return _c
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSpecialization(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSpecialization(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QuestionCreate) SetQuestion(v string) *QuestionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionCreate) SetQuestionType(v string) *QuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableQuestionType(v *string) *QuestionCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetQuestionDifficulty sets the "question_difficulty" field.
func (_c *QuestionCreate) SetQuestionDifficulty(v string) *QuestionCreate {
	_c.mutation.SetQuestionDifficulty(v)
	return _c
}

// SetNillableQuestionDifficulty sets the "question_difficulty" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableQuestionDifficulty(v *string) *QuestionCreate {
	if v != nil {
		_c.SetQuestionDifficulty(*v)
	}
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *QuestionCreate) SetPageNumber(v int) *QuestionCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetAnswerSteps sets the "answer_steps" field.
func (_c *QuestionCreate) SetAnswerSteps(v string) *QuestionCreate {
	_c.mutation.SetAnswerSteps(v)
	return _c
}

// SetNillableAnswerSteps sets the "answer_steps" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableAnswerSteps(v *string) *QuestionCreate {
	if v != nil {
		_c.SetAnswerSteps(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionCreate) SetCorrectAnswer(v string) *QuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCorrectAnswer(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetUploadedBy sets the "uploaded_by" field.
func (_c *QuestionCreate) SetUploadedBy(v string) *QuestionCreate {
	_c.mutation.SetUploadedBy(v)
	return _c
}

// SetUpdatedBy sets the "updated_by" field.
func (_c *QuestionCreate) SetUpdatedBy(v string) *QuestionCreate {
	_c.mutation.SetUpdatedBy(v)
	return _c
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableUpdatedBy(v *string) *QuestionCreate {
	if v != nil {
		_c.SetUpdatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionCreate) SetUpdatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableUpdatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOption1 sets the "option1" field.
func (_c *QuestionCreate) SetOption1(v string) *QuestionCreate {
	_c.mutation.SetOption1(v)
	return _c
}

// SetNillableOption1 sets the "option1" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableOption1(v *string) *QuestionCreate {
	if v != nil {
		_c.SetOption1(*v)
	}
	return _c
}

// SetOption2 sets the "option2" field.
func (_c *QuestionCreate) SetOption2(v string) *QuestionCreate {
	_c.mutation.SetOption2(v)
	return _c
}

// SetNillableOption2 sets the "option2" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableOption2(v *string) *QuestionCreate {
	if v != nil {
		_c.SetOption2(*v)
	}
	return _c
}

// SetOption3 sets the "option3" field.
func (_c *QuestionCreate) SetOption3(v string) *QuestionCreate {
	_c.mutation.SetOption3(v)
	return _c
}

// SetNillableOption3 sets the "option3" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableOption3(v *string) *QuestionCreate {
	if v != nil {
		_c.SetOption3(*v)
	}
	return _c
}

// SetOption4 sets the "option4" field.
func (_c *QuestionCreate) SetOption4(v string) *QuestionCreate {
	_c.mutation.SetOption4(v)
	return _c
}

// SetNillableOption4 sets the "option4" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableOption4(v *string) *QuestionCreate {
	if v != nil {
		_c.SetOption4(*v)
	}
	return _c
}

// SetOption5 sets the "option5" field.
func (_c *QuestionCreate) SetOption5(v string) *QuestionCreate {
	_c.mutation.SetOption5(v)
	return _c
}

// SetNillableOption5 sets the "option5" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableOption5(v *string) *QuestionCreate {
	if v != nil {
		_c.SetOption5(*v)
	}
	return _c
}

// SetOption6 sets the "option6" field.
func (_c *QuestionCreate) SetOption6(v string) *QuestionCreate {
	_c.mutation.SetOption6(v)
	return _c
}

// SetNillableOption6 sets the "option6" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableOption6(v *string) *QuestionCreate {
	if v != nil {
		_c.SetOption6(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_c *QuestionCreate) SetJob(v *ExtractionJob) *QuestionCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := question.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := question.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Question.job_id"`)}
	}
	if _, ok := _c.mutation.DedupKey(); !ok {
		return &ValidationError{Name: "dedup_key", err: errors.New(`ent: missing required field "Question.dedup_key"`)}
	}
	if v, ok := _c.mutation.DedupKey(); ok {
		if err := question.DedupKeyValidator(v); err != nil {
			return &ValidationError{Name: "dedup_key", err: fmt.Errorf(`ent: validator failed for field "Question.dedup_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "Question.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := question.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Question.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectName(); !ok {
		return &ValidationError{Name: "subject_name", err: errors.New(`ent: missing required field "Question.subject_name"`)}
	}
	if v, ok := _c.mutation.SubjectName(); ok {
		if err := question.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "Question.subject_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Question.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := question.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Question.question": %w`, err)}
		}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.QuestionDifficulty(); ok {
		if err := question.QuestionDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "question_difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.question_difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "Question.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := question.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "Question.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedBy(); !ok {
		return &ValidationError{Name: "uploaded_by", err: errors.New(`ent: missing required field "Question.uploaded_by"`)}
	}
	if v, ok := _c.mutation.UploadedBy(); ok {
		if err := question.UploadedByValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_by", err: fmt.Errorf(`ent: validator failed for field "Question.uploaded_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Question.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "Question.job"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DedupKey(); ok {
		_spec.SetField(question.FieldDedupKey, field.TypeString, value)
		_node.DedupKey = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(question.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.SubjectName(); ok {
		_spec.SetField(question.FieldSubjectName, field.TypeString, value)
		_node.SubjectName = value
	}
	if value, ok := _c.mutation.LessonTitle(); ok {
		_spec.SetField(question.FieldLessonTitle, field.TypeString, value)
		_node.LessonTitle = value
	}
	if value, ok := _c.mutation.ClassName(); ok {
		_spec.SetField(question.FieldClassName, field.TypeString, value)
		_node.ClassName = &value
	}
	if value, ok := _c.mutation.Specialization(); ok {
		_spec.SetField(question.FieldSpecialization, field.TypeString, value)
		_node.Specialization = &value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(question.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = &value
	}
	if value, ok := _c.mutation.QuestionDifficulty(); ok {
		_spec.SetField(question.FieldQuestionDifficulty, field.TypeString, value)
		_node.QuestionDifficulty = &value
	}
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(question.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.AnswerSteps(); ok {
		_spec.SetField(question.FieldAnswerSteps, field.TypeString, value)
		_node.AnswerSteps = &value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = &value
	}
	if value, ok := _c.mutation.UploadedBy(); ok {
		_spec.SetField(question.FieldUploadedBy, field.TypeString, value)
		_node.UploadedBy = value
	}
	if value, ok := _c.mutation.UpdatedBy(); ok {
		_spec.SetField(question.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Option1(); ok {
		_spec.SetField(question.FieldOption1, field.TypeString, value)
		_node.Option1 = &value
	}
	if value, ok := _c.mutation.Option2(); ok {
		_spec.SetField(question.FieldOption2, field.TypeString, value)
		_node.Option2 = &value
	}
	if value, ok := _c.mutation.Option3(); ok {
		_spec.SetField(question.FieldOption3, field.TypeString, value)
		_node.Option3 = &value
	}
	if value, ok := _c.mutation.Option4(); ok {
		_spec.SetField(question.FieldOption4, field.TypeString, value)
		_node.Option4 = &value
	}
	if value, ok := _c.mutation.Option5(); ok {
		_spec.SetField(question.FieldOption5, field.TypeString, value)
		_node.Option5 = &value
	}
	if value, ok := _c.mutation.Option6(); ok {
		_spec.SetField(question.FieldOption6, field.TypeString, value)
		_node.Option6 = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.JobTable,
			Columns: []string{question.JobColumn},
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

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
