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
	"github.com/qbankhq/qbank/gen/ent/predicate"
	"github.com/qbankhq/qbank/gen/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *QuestionUpdate) SetJobID(v uuid.UUID) *QuestionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableJobID(v *uuid.UUID) *QuestionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDedupKey sets the "dedup_key" field.
func (_u *QuestionUpdate) SetDedupKey(v string) *QuestionUpdate {
	_u.mutation.SetDedupKey(v)
	return _u
}

// SetNillableDedupKey sets the "dedup_key" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDedupKey(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDedupKey(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *QuestionUpdate) SetFileName(v string) *QuestionUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableFileName(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *QuestionUpdate) SetSubjectName(v string) *QuestionUpdate {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubjectName(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *QuestionUpdate) SetLessonTitle(v string) *QuestionUpdate {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableLessonTitle(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// ClearLessonTitle clears the value of the "lesson_title" field.
func (_u *QuestionUpdate) ClearLessonTitle() *QuestionUpdate {
	_u.mutation.ClearLessonTitle()
	return _u
}

// SetClassName sets the "class_name" field.
func (_u *QuestionUpdate) SetClassName(v string) *QuestionUpdate {
	_u.mutation.SetClassName(v)
	return _u
}

// SetNillableClassName sets the "class_name" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableClassName(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetClassName(*v)
	}
	return _u
}

// ClearClassName clears the value of the "class_name" field.
func (_u *QuestionUpdate) ClearClassName() *QuestionUpdate {
	_u.mutation.ClearClassName()
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *QuestionUpdate) SetSpecialization(v string) *QuestionUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSpecialization(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// ClearSpecialization clears the value of the "specialization" field.
func (_u *QuestionUpdate) ClearSpecialization() *QuestionUpdate {
	_u.mutation.ClearSpecialization()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuestionUpdate) SetQuestion(v string) *QuestionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestion(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionUpdate) SetQuestionType(v string) *QuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionType(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// ClearQuestionType clears the value of the "question_type" field.
func (_u *QuestionUpdate) ClearQuestionType() *QuestionUpdate {
	_u.mutation.ClearQuestionType()
	return _u
}

// SetQuestionDifficulty sets the "question_difficulty" field.
func (_u *QuestionUpdate) SetQuestionDifficulty(v string) *QuestionUpdate {
	_u.mutation.SetQuestionDifficulty(v)
	return _u
}

// SetNillableQuestionDifficulty sets the "question_difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionDifficulty(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionDifficulty(*v)
	}
	return _u
}

// ClearQuestionDifficulty clears the value of the "question_difficulty" field.
func (_u *QuestionUpdate) ClearQuestionDifficulty() *QuestionUpdate {
	_u.mutation.ClearQuestionDifficulty()
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *QuestionUpdate) SetPageNumber(v int) *QuestionUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillablePageNumber(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *QuestionUpdate) AddPageNumber(v int) *QuestionUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetAnswerSteps sets the "answer_steps" field.
func (_u *QuestionUpdate) SetAnswerSteps(v string) *QuestionUpdate {
	_u.mutation.SetAnswerSteps(v)
	return _u
}

// SetNillableAnswerSteps sets the "answer_steps" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnswerSteps(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetAnswerSteps(*v)
	}
	return _u
}

// ClearAnswerSteps clears the value of the "answer_steps" field.
func (_u *QuestionUpdate) ClearAnswerSteps() *QuestionUpdate {
	_u.mutation.ClearAnswerSteps()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdate) SetCorrectAnswer(v string) *QuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *QuestionUpdate) ClearCorrectAnswer() *QuestionUpdate {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *QuestionUpdate) SetUploadedBy(v string) *QuestionUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableUploadedBy(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *QuestionUpdate) SetUpdatedBy(v string) *QuestionUpdate {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableUpdatedBy(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *QuestionUpdate) ClearUpdatedBy() *QuestionUpdate {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuestionUpdate) SetCreatedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCreatedAt(v *time.Time) *QuestionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdate) SetUpdatedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOption1 sets the "option1" field.
func (_u *QuestionUpdate) SetOption1(v string) *QuestionUpdate {
	_u.mutation.SetOption1(v)
	return _u
}

// SetNillableOption1 sets the "option1" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOption1(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOption1(*v)
	}
	return _u
}

// ClearOption1 clears the value of the "option1" field.
func (_u *QuestionUpdate) ClearOption1() *QuestionUpdate {
	_u.mutation.ClearOption1()
	return _u
}

// SetOption2 sets the "option2" field.
func (_u *QuestionUpdate) SetOption2(v string) *QuestionUpdate {
	_u.mutation.SetOption2(v)
	return _u
}

// SetNillableOption2 sets the "option2" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOption2(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOption2(*v)
	}
	return _u
}

// ClearOption2 clears the value of the "option2" field.
func (_u *QuestionUpdate) ClearOption2() *QuestionUpdate {
	_u.mutation.ClearOption2()
	return _u
}

// SetOption3 sets the "option3" field.
func (_u *QuestionUpdate) SetOption3(v string) *QuestionUpdate {
	_u.mutation.SetOption3(v)
	return _u
}

// SetNillableOption3 sets the "option3" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOption3(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOption3(*v)
	}
	return _u
}

// ClearOption3 clears the value of the "option3" field.
func (_u *QuestionUpdate) ClearOption3() *QuestionUpdate {
	_u.mutation.ClearOption3()
	return _u
}

// SetOption4 sets the "option4" field.
func (_u *QuestionUpdate) SetOption4(v string) *QuestionUpdate {
	_u.mutation.SetOption4(v)
	return _u
}

// SetNillableOption4 sets the "option4" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOption4(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOption4(*v)
	}
	return _u
}

// ClearOption4 clears the value of the "option4" field.
func (_u *QuestionUpdate) ClearOption4() *QuestionUpdate {
	_u.mutation.ClearOption4()
	return _u
}

// SetOption5 sets the "option5" field.
func (_u *QuestionUpdate) SetOption5(v string) *QuestionUpdate {
	_u.mutation.SetOption5(v)
	return _u
}

// SetNillableOption5 sets the "option5" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOption5(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOption5(*v)
	}
	return _u
}

// ClearOption5 clears the value of the "option5" field.
func (_u *QuestionUpdate) ClearOption5() *QuestionUpdate {
	_u.mutation.ClearOption5()
	return _u
}

// SetOption6 sets the "option6" field.
func (_u *QuestionUpdate) SetOption6(v string) *QuestionUpdate {
	_u.mutation.SetOption6(v)
	return _u
}

// SetNillableOption6 sets the "option6" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableOption6(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetOption6(*v)
	}
	return _u
}

// ClearOption6 clears the value of the "option6" field.
func (_u *QuestionUpdate) ClearOption6() *QuestionUpdate {
	_u.mutation.ClearOption6()
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *QuestionUpdate) SetJob(v *ExtractionJob) *QuestionUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *QuestionUpdate) ClearJob() *QuestionUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.DedupKey(); ok {
		if err := question.DedupKeyValidator(v); err != nil {
			return &ValidationError{Name: "dedup_key", err: fmt.Errorf(`ent: validator failed for field "Question.dedup_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := question.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Question.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectName(); ok {
		if err := question.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "Question.subject_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := question.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Question.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionDifficulty(); ok {
		if err := question.QuestionDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "question_difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.question_difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := question.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "Question.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UploadedBy(); ok {
		if err := question.UploadedByValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_by", err: fmt.Errorf(`ent: validator failed for field "Question.uploaded_by": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.job"`)
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DedupKey(); ok {
		_spec.SetField(question.FieldDedupKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(question.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(question.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(question.FieldLessonTitle, field.TypeString, value)
	}
	if _u.mutation.LessonTitleCleared() {
		_spec.ClearField(question.FieldLessonTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ClassName(); ok {
		_spec.SetField(question.FieldClassName, field.TypeString, value)
	}
	if _u.mutation.ClassNameCleared() {
		_spec.ClearField(question.FieldClassName, field.TypeString)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(question.FieldSpecialization, field.TypeString, value)
	}
	if _u.mutation.SpecializationCleared() {
		_spec.ClearField(question.FieldSpecialization, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(question.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if _u.mutation.QuestionTypeCleared() {
		_spec.ClearField(question.FieldQuestionType, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionDifficulty(); ok {
		_spec.SetField(question.FieldQuestionDifficulty, field.TypeString, value)
	}
	if _u.mutation.QuestionDifficultyCleared() {
		_spec.ClearField(question.FieldQuestionDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(question.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(question.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerSteps(); ok {
		_spec.SetField(question.FieldAnswerSteps, field.TypeString, value)
	}
	if _u.mutation.AnswerStepsCleared() {
		_spec.ClearField(question.FieldAnswerSteps, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(question.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(question.FieldUploadedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(question.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(question.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Option1(); ok {
		_spec.SetField(question.FieldOption1, field.TypeString, value)
	}
	if _u.mutation.Option1Cleared() {
		_spec.ClearField(question.FieldOption1, field.TypeString)
	}
	if value, ok := _u.mutation.Option2(); ok {
		_spec.SetField(question.FieldOption2, field.TypeString, value)
	}
	if _u.mutation.Option2Cleared() {
		_spec.ClearField(question.FieldOption2, field.TypeString)
	}
	if value, ok := _u.mutation.Option3(); ok {
		_spec.SetField(question.FieldOption3, field.TypeString, value)
	}
	if _u.mutation.Option3Cleared() {
		_spec.ClearField(question.FieldOption3, field.TypeString)
	}
	if value, ok := _u.mutation.Option4(); ok {
		_spec.SetField(question.FieldOption4, field.TypeString, value)
	}
	if _u.mutation.Option4Cleared() {
		_spec.ClearField(question.FieldOption4, field.TypeString)
	}
	if value, ok := _u.mutation.Option5(); ok {
		_spec.SetField(question.FieldOption5, field.TypeString, value)
	}
	if _u.mutation.Option5Cleared() {
		_spec.ClearField(question.FieldOption5, field.TypeString)
	}
	if value, ok := _u.mutation.Option6(); ok {
		_spec.SetField(question.FieldOption6, field.TypeString, value)
	}
	if _u.mutation.Option6Cleared() {
		_spec.ClearField(question.FieldOption6, field.TypeString)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetJobID sets the "job_id" field.
func (_u *QuestionUpdateOne) SetJobID(v uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableJobID(v *uuid.UUID) *QuestionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDedupKey sets the "dedup_key" field.
func (_u *QuestionUpdateOne) SetDedupKey(v string) *QuestionUpdateOne {
	_u.mutation.SetDedupKey(v)
	return _u
}

// SetNillableDedupKey sets the "dedup_key" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDedupKey(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDedupKey(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *QuestionUpdateOne) SetFileName(v string) *QuestionUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableFileName(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *QuestionUpdateOne) SetSubjectName(v string) *QuestionUpdateOne {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubjectName(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *QuestionUpdateOne) SetLessonTitle(v string) *QuestionUpdateOne {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableLessonTitle(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// ClearLessonTitle clears the value of the "lesson_title" field.
func (_u *QuestionUpdateOne) ClearLessonTitle() *QuestionUpdateOne {
	_u.mutation.ClearLessonTitle()
	return _u
}

// SetClassName sets the "class_name" field.
func (_u *QuestionUpdateOne) SetClassName(v string) *QuestionUpdateOne {
	_u.mutation.SetClassName(v)
	return _u
}

// SetNillableClassName sets the "class_name" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableClassName(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetClassName(*v)
	}
	return _u
}

// ClearClassName clears the value of the "class_name" field.
func (_u *QuestionUpdateOne) ClearClassName() *QuestionUpdateOne {
	_u.mutation.ClearClassName()
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *QuestionUpdateOne) SetSpecialization(v string) *QuestionUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSpecialization(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// ClearSpecialization clears the value of the "specialization" field.
func (_u *QuestionUpdateOne) ClearSpecialization() *QuestionUpdateOne {
	_u.mutation.ClearSpecialization()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuestionUpdateOne) SetQuestion(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestion(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionUpdateOne) SetQuestionType(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionType(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// ClearQuestionType clears the value of the "question_type" field.
func (_u *QuestionUpdateOne) ClearQuestionType() *QuestionUpdateOne {
	_u.mutation.ClearQuestionType()
	return _u
}

// SetQuestionDifficulty sets the "question_difficulty" field.
func (_u *QuestionUpdateOne) SetQuestionDifficulty(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionDifficulty(v)
	return _u
}

// SetNillableQuestionDifficulty sets the "question_difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionDifficulty(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionDifficulty(*v)
	}
	return _u
}

// ClearQuestionDifficulty clears the value of the "question_difficulty" field.
func (_u *QuestionUpdateOne) ClearQuestionDifficulty() *QuestionUpdateOne {
	_u.mutation.ClearQuestionDifficulty()
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *QuestionUpdateOne) SetPageNumber(v int) *QuestionUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillablePageNumber(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *QuestionUpdateOne) AddPageNumber(v int) *QuestionUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetAnswerSteps sets the "answer_steps" field.
func (_u *QuestionUpdateOne) SetAnswerSteps(v string) *QuestionUpdateOne {
	_u.mutation.SetAnswerSteps(v)
	return _u
}

// SetNillableAnswerSteps sets the "answer_steps" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnswerSteps(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetAnswerSteps(*v)
	}
	return _u
}

// ClearAnswerSteps clears the value of the "answer_steps" field.
func (_u *QuestionUpdateOne) ClearAnswerSteps() *QuestionUpdateOne {
	_u.mutation.ClearAnswerSteps()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdateOne) SetCorrectAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *QuestionUpdateOne) ClearCorrectAnswer() *QuestionUpdateOne {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *QuestionUpdateOne) SetUploadedBy(v string) *QuestionUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableUploadedBy(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// SetUpdatedBy sets the "updated_by" field.
func (_u *QuestionUpdateOne) SetUpdatedBy(v string) *QuestionUpdateOne {
	_u.mutation.SetUpdatedBy(v)
	return _u
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableUpdatedBy(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetUpdatedBy(*v)
	}
	return _u
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (_u *QuestionUpdateOne) ClearUpdatedBy() *QuestionUpdateOne {
	_u.mutation.ClearUpdatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuestionUpdateOne) SetCreatedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCreatedAt(v *time.Time) *QuestionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdateOne) SetUpdatedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOption1 sets the "option1" field.
func (_u *QuestionUpdateOne) SetOption1(v string) *QuestionUpdateOne {
	_u.mutation.SetOption1(v)
	return _u
}

// SetNillableOption1 sets the "option1" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOption1(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOption1(*v)
	}
	return _u
}

// ClearOption1 clears the value of the "option1" field.
func (_u *QuestionUpdateOne) ClearOption1() *QuestionUpdateOne {
	_u.mutation.ClearOption1()
	return _u
}

// SetOption2 sets the "option2" field.
func (_u *QuestionUpdateOne) SetOption2(v string) *QuestionUpdateOne {
	_u.mutation.SetOption2(v)
	return _u
}

// SetNillableOption2 sets the "option2" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOption2(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOption2(*v)
	}
	return _u
}

// ClearOption2 clears the value of the "option2" field.
func (_u *QuestionUpdateOne) ClearOption2() *QuestionUpdateOne {
	_u.mutation.ClearOption2()
	return _u
}

// SetOption3 sets the "option3" field.
func (_u *QuestionUpdateOne) SetOption3(v string) *QuestionUpdateOne {
	_u.mutation.SetOption3(v)
	return _u
}

// SetNillableOption3 sets the "option3" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOption3(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOption3(*v)
	}
	return _u
}

// ClearOption3 clears the value of the "option3" field.
func (_u *QuestionUpdateOne) ClearOption3() *QuestionUpdateOne {
	_u.mutation.ClearOption3()
	return _u
}

// SetOption4 sets the "option4" field.
func (_u *QuestionUpdateOne) SetOption4(v string) *QuestionUpdateOne {
	_u.mutation.SetOption4(v)
	return _u
}

// SetNillableOption4 sets the "option4" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOption4(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOption4(*v)
	}
	return _u
}

// ClearOption4 clears the value of the "option4" field.
func (_u *QuestionUpdateOne) ClearOption4() *QuestionUpdateOne {
	_u.mutation.ClearOption4()
	return _u
}

// SetOption5 sets the "option5" field.
func (_u *QuestionUpdateOne) SetOption5(v string) *QuestionUpdateOne {
	_u.mutation.SetOption5(v)
	return _u
}

// SetNillableOption5 sets the "option5" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOption5(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOption5(*v)
	}
	return _u
}

// ClearOption5 clears the value of the "option5" field.
func (_u *QuestionUpdateOne) ClearOption5() *QuestionUpdateOne {
	_u.mutation.ClearOption5()
	return _u
}

// SetOption6 sets the "option6" field.
func (_u *QuestionUpdateOne) SetOption6(v string) *QuestionUpdateOne {
	_u.mutation.SetOption6(v)
	return _u
}

// SetNillableOption6 sets the "option6" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableOption6(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetOption6(*v)
	}
	return _u
}

// ClearOption6 clears the value of the "option6" field.
func (_u *QuestionUpdateOne) ClearOption6() *QuestionUpdateOne {
	_u.mutation.ClearOption6()
	return _u
}

// SetJob sets the "job" edge to the ExtractionJob entity.
func (_u *QuestionUpdateOne) SetJob(v *ExtractionJob) *QuestionUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ExtractionJob entity.
func (_u *QuestionUpdateOne) ClearJob() *QuestionUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.DedupKey(); ok {
		if err := question.DedupKeyValidator(v); err != nil {
			return &ValidationError{Name: "dedup_key", err: fmt.Errorf(`ent: validator failed for field "Question.dedup_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := question.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Question.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectName(); ok {
		if err := question.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "Question.subject_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := question.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Question.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionDifficulty(); ok {
		if err := question.QuestionDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "question_difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.question_difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := question.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "Question.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UploadedBy(); ok {
		if err := question.UploadedByValidator(v); err != nil {
			return &ValidationError{Name: "uploaded_by", err: fmt.Errorf(`ent: validator failed for field "Question.uploaded_by": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Question.job"`)
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.DedupKey(); ok {
		_spec.SetField(question.FieldDedupKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(question.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(question.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(question.FieldLessonTitle, field.TypeString, value)
	}
	if _u.mutation.LessonTitleCleared() {
		_spec.ClearField(question.FieldLessonTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ClassName(); ok {
		_spec.SetField(question.FieldClassName, field.TypeString, value)
	}
	if _u.mutation.ClassNameCleared() {
		_spec.ClearField(question.FieldClassName, field.TypeString)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(question.FieldSpecialization, field.TypeString, value)
	}
	if _u.mutation.SpecializationCleared() {
		_spec.ClearField(question.FieldSpecialization, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(question.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if _u.mutation.QuestionTypeCleared() {
		_spec.ClearField(question.FieldQuestionType, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionDifficulty(); ok {
		_spec.SetField(question.FieldQuestionDifficulty, field.TypeString, value)
	}
	if _u.mutation.QuestionDifficultyCleared() {
		_spec.ClearField(question.FieldQuestionDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(question.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(question.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnswerSteps(); ok {
		_spec.SetField(question.FieldAnswerSteps, field.TypeString, value)
	}
	if _u.mutation.AnswerStepsCleared() {
		_spec.ClearField(question.FieldAnswerSteps, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(question.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(question.FieldUploadedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedBy(); ok {
		_spec.SetField(question.FieldUpdatedBy, field.TypeString, value)
	}
	if _u.mutation.UpdatedByCleared() {
		_spec.ClearField(question.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Option1(); ok {
		_spec.SetField(question.FieldOption1, field.TypeString, value)
	}
	if _u.mutation.Option1Cleared() {
		_spec.ClearField(question.FieldOption1, field.TypeString)
	}
	if value, ok := _u.mutation.Option2(); ok {
		_spec.SetField(question.FieldOption2, field.TypeString, value)
	}
	if _u.mutation.Option2Cleared() {
		_spec.ClearField(question.FieldOption2, field.TypeString)
	}
	if value, ok := _u.mutation.Option3(); ok {
		_spec.SetField(question.FieldOption3, field.TypeString, value)
	}
	if _u.mutation.Option3Cleared() {
		_spec.ClearField(question.FieldOption3, field.TypeString)
	}
	if value, ok := _u.mutation.Option4(); ok {
		_spec.SetField(question.FieldOption4, field.TypeString, value)
	}
	if _u.mutation.Option4Cleared() {
		_spec.ClearField(question.FieldOption4, field.TypeString)
	}
	if value, ok := _u.mutation.Option5(); ok {
		_spec.SetField(question.FieldOption5, field.TypeString, value)
	}
	if _u.mutation.Option5Cleared() {
		_spec.ClearField(question.FieldOption5, field.TypeString)
	}
	if value, ok := _u.mutation.Option6(); ok {
		_spec.SetField(question.FieldOption6, field.TypeString, value)
	}
	if _u.mutation.Option6Cleared() {
		_spec.ClearField(question.FieldOption6, field.TypeString)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
