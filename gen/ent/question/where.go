// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/qbankhq/qbank/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldJobID, v))
}

// DedupKey applies equality check predicate on the "dedup_key" field. It's identical to DedupKeyEQ.
func DedupKey(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDedupKey, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFileName, v))
}

// SubjectName applies equality check predicate on the "subject_name" field. It's identical to SubjectNameEQ.
func SubjectName(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubjectName, v))
}

// LessonTitle applies equality check predicate on the "lesson_title" field. It's identical to LessonTitleEQ.
func LessonTitle(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldLessonTitle, v))
}

// ClassName applies equality check predicate on the "class_name" field. It's identical to ClassNameEQ.
func ClassName(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldClassName, v))
}

// Specialization applies equality check predicate on the "specialization" field. It's identical to SpecializationEQ.
func Specialization(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSpecialization, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestion, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionDifficulty applies equality check predicate on the "question_difficulty" field. It's identical to QuestionDifficultyEQ.
func QuestionDifficulty(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionDifficulty, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPageNumber, v))
}

// AnswerSteps applies equality check predicate on the "answer_steps" field. It's identical to AnswerStepsEQ.
func AnswerSteps(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswerSteps, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectAnswer, v))
}

// UploadedBy applies equality check predicate on the "uploaded_by" field. It's identical to UploadedByEQ.
func UploadedBy(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUploadedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// Option1 applies equality check predicate on the "option1" field. It's identical to Option1EQ.
func Option1(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption1, v))
}

// Option2 applies equality check predicate on the "option2" field. It's identical to Option2EQ.
func Option2(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption2, v))
}

// Option3 applies equality check predicate on the "option3" field. It's identical to Option3EQ.
func Option3(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption3, v))
}

// Option4 applies equality check predicate on the "option4" field. It's identical to Option4EQ.
func Option4(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption4, v))
}

// Option5 applies equality check predicate on the "option5" field. It's identical to Option5EQ.
func Option5(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption5, v))
}

// Option6 applies equality check predicate on the "option6" field. It's identical to Option6EQ.
func Option6(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption6, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldJobID, vs...))
}

// DedupKeyEQ applies the EQ predicate on the "dedup_key" field.
func DedupKeyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDedupKey, v))
}

// DedupKeyNEQ applies the NEQ predicate on the "dedup_key" field.
func DedupKeyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDedupKey, v))
}

// DedupKeyIn applies the In predicate on the "dedup_key" field.
func DedupKeyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDedupKey, vs...))
}

// DedupKeyNotIn applies the NotIn predicate on the "dedup_key" field.
func DedupKeyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDedupKey, vs...))
}

// DedupKeyGT applies the GT predicate on the "dedup_key" field.
func DedupKeyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDedupKey, v))
}

// DedupKeyGTE applies the GTE predicate on the "dedup_key" field.
func DedupKeyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDedupKey, v))
}

// DedupKeyLT applies the LT predicate on the "dedup_key" field.
func DedupKeyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDedupKey, v))
}

// DedupKeyLTE applies the LTE predicate on the "dedup_key" field.
func DedupKeyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDedupKey, v))
}

// DedupKeyContains applies the Contains predicate on the "dedup_key" field.
func DedupKeyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDedupKey, v))
}

// DedupKeyHasPrefix applies the HasPrefix predicate on the "dedup_key" field.
func DedupKeyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDedupKey, v))
}

// DedupKeyHasSuffix applies the HasSuffix predicate on the "dedup_key" field.
func DedupKeyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDedupKey, v))
}

// DedupKeyEqualFold applies the EqualFold predicate on the "dedup_key" field.
func DedupKeyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDedupKey, v))
}

// DedupKeyContainsFold applies the ContainsFold predicate on the "dedup_key" field.
func DedupKeyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDedupKey, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldFileName, v))
}

// SubjectNameEQ applies the EQ predicate on the "subject_name" field.
func SubjectNameEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubjectName, v))
}

// SubjectNameNEQ applies the NEQ predicate on the "subject_name" field.
func SubjectNameNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubjectName, v))
}

// SubjectNameIn applies the In predicate on the "subject_name" field.
func SubjectNameIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubjectName, vs...))
}

// SubjectNameNotIn applies the NotIn predicate on the "subject_name" field.
func SubjectNameNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubjectName, vs...))
}

// SubjectNameGT applies the GT predicate on the "subject_name" field.
func SubjectNameGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubjectName, v))
}

// SubjectNameGTE applies the GTE predicate on the "subject_name" field.
func SubjectNameGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubjectName, v))
}

// SubjectNameLT applies the LT predicate on the "subject_name" field.
func SubjectNameLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubjectName, v))
}

// SubjectNameLTE applies the LTE predicate on the "subject_name" field.
func SubjectNameLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubjectName, v))
}

// SubjectNameContains applies the Contains predicate on the "subject_name" field.
func SubjectNameContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubjectName, v))
}

// SubjectNameHasPrefix applies the HasPrefix predicate on the "subject_name" field.
func SubjectNameHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubjectName, v))
}

// SubjectNameHasSuffix applies the HasSuffix predicate on the "subject_name" field.
func SubjectNameHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubjectName, v))
}

// SubjectNameEqualFold applies the EqualFold predicate on the "subject_name" field.
func SubjectNameEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubjectName, v))
}

// SubjectNameContainsFold applies the ContainsFold predicate on the "subject_name" field.
func SubjectNameContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubjectName, v))
}

// LessonTitleEQ applies the EQ predicate on the "lesson_title" field.
func LessonTitleEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldLessonTitle, v))
}

// LessonTitleNEQ applies the NEQ predicate on the "lesson_title" field.
func LessonTitleNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldLessonTitle, v))
}

// LessonTitleIn applies the In predicate on the "lesson_title" field.
func LessonTitleIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldLessonTitle, vs...))
}

// LessonTitleNotIn applies the NotIn predicate on the "lesson_title" field.
func LessonTitleNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldLessonTitle, vs...))
}

// LessonTitleGT applies the GT predicate on the "lesson_title" field.
func LessonTitleGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldLessonTitle, v))
}

// LessonTitleGTE applies the GTE predicate on the "lesson_title" field.
func LessonTitleGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldLessonTitle, v))
}

// LessonTitleLT applies the LT predicate on the "lesson_title" field.
func LessonTitleLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldLessonTitle, v))
}

// LessonTitleLTE applies the LTE predicate on the "lesson_title" field.
func LessonTitleLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldLessonTitle, v))
}

// LessonTitleContains applies the Contains predicate on the "lesson_title" field.
func LessonTitleContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldLessonTitle, v))
}

// LessonTitleHasPrefix applies the HasPrefix predicate on the "lesson_title" field.
func LessonTitleHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldLessonTitle, v))
}

// LessonTitleHasSuffix applies the HasSuffix predicate on the "lesson_title" field.
func LessonTitleHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldLessonTitle, v))
}

// LessonTitleIsNil applies the IsNil predicate on the "lesson_title" field.
func LessonTitleIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldLessonTitle))
}

// LessonTitleNotNil applies the NotNil predicate on the "lesson_title" field.
func LessonTitleNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldLessonTitle))
}

// LessonTitleEqualFold applies the EqualFold predicate on the "lesson_title" field.
func LessonTitleEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldLessonTitle, v))
}

// LessonTitleContainsFold applies the ContainsFold predicate on the "lesson_title" field.
func LessonTitleContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldLessonTitle, v))
}

// ClassNameEQ applies the EQ predicate on the "class_name" field.
func ClassNameEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldClassName, v))
}

// ClassNameNEQ applies the NEQ predicate on the "class_name" field.
func ClassNameNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldClassName, v))
}

// ClassNameIn applies the In predicate on the "class_name" field.
func ClassNameIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldClassName, vs...))
}

// ClassNameNotIn applies the NotIn predicate on the "class_name" field.
func ClassNameNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldClassName, vs...))
}

// ClassNameGT applies the GT predicate on the "class_name" field.
func ClassNameGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldClassName, v))
}

// ClassNameGTE applies the GTE predicate on the "class_name" field.
func ClassNameGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldClassName, v))
}

// ClassNameLT applies the LT predicate on the "class_name" field.
func ClassNameLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldClassName, v))
}

// ClassNameLTE applies the LTE predicate on the "class_name" field.
func ClassNameLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldClassName, v))
}

// ClassNameContains applies the Contains predicate on the "class_name" field.
func ClassNameContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldClassName, v))
}

// ClassNameHasPrefix applies the HasPrefix predicate on the "class_name" field.
func ClassNameHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldClassName, v))
}

// ClassNameHasSuffix applies the HasSuffix predicate on the "class_name" field.
func ClassNameHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldClassName, v))
}

// ClassNameIsNil applies the IsNil predicate on the "class_name" field.
func ClassNameIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldClassName))
}

// ClassNameNotNil applies the NotNil predicate on the "class_name" field.
func ClassNameNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldClassName))
}

// ClassNameEqualFold applies the EqualFold predicate on the "class_name" field.
func ClassNameEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldClassName, v))
}

// ClassNameContainsFold applies the ContainsFold predicate on the "class_name" field.
func ClassNameContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldClassName, v))
}

// SpecializationEQ applies the EQ predicate on the "specialization" field.
func SpecializationEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSpecialization, v))
}

// SpecializationNEQ applies the NEQ predicate on the "specialization" field.
func SpecializationNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSpecialization, v))
}

// SpecializationIn applies the In predicate on the "specialization" field.
func SpecializationIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSpecialization, vs...))
}

// SpecializationNotIn applies the NotIn predicate on the "specialization" field.
func SpecializationNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSpecialization, vs...))
}

// SpecializationGT applies the GT predicate on the "specialization" field.
func SpecializationGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSpecialization, v))
}

// SpecializationGTE applies the GTE predicate on the "specialization" field.
func SpecializationGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSpecialization, v))
}

// SpecializationLT applies the LT predicate on the "specialization" field.
func SpecializationLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSpecialization, v))
}

// SpecializationLTE applies the LTE predicate on the "specialization" field.
func SpecializationLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSpecialization, v))
}

// SpecializationContains applies the Contains predicate on the "specialization" field.
func SpecializationContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSpecialization, v))
}

// SpecializationHasPrefix applies the HasPrefix predicate on the "specialization" field.
func SpecializationHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSpecialization, v))
}

// SpecializationHasSuffix applies the HasSuffix predicate on the "specialization" field.
func SpecializationHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSpecialization, v))
}

// SpecializationIsNil applies the IsNil predicate on the "specialization" field.
func SpecializationIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSpecialization))
}

// SpecializationNotNil applies the NotNil predicate on the "specialization" field.
func SpecializationNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSpecialization))
}

// SpecializationEqualFold applies the EqualFold predicate on the "specialization" field.
func SpecializationEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSpecialization, v))
}

// SpecializationContainsFold applies the ContainsFold predicate on the "specialization" field.
func SpecializationContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSpecialization, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestion, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeIsNil applies the IsNil predicate on the "question_type" field.
func QuestionTypeIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldQuestionType))
}

// QuestionTypeNotNil applies the NotNil predicate on the "question_type" field.
func QuestionTypeNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldQuestionType))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionType, v))
}

// QuestionDifficultyEQ applies the EQ predicate on the "question_difficulty" field.
func QuestionDifficultyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionDifficulty, v))
}

// QuestionDifficultyNEQ applies the NEQ predicate on the "question_difficulty" field.
func QuestionDifficultyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionDifficulty, v))
}

// QuestionDifficultyIn applies the In predicate on the "question_difficulty" field.
func QuestionDifficultyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionDifficulty, vs...))
}

// QuestionDifficultyNotIn applies the NotIn predicate on the "question_difficulty" field.
func QuestionDifficultyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionDifficulty, vs...))
}

// QuestionDifficultyGT applies the GT predicate on the "question_difficulty" field.
func QuestionDifficultyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionDifficulty, v))
}

// QuestionDifficultyGTE applies the GTE predicate on the "question_difficulty" field.
func QuestionDifficultyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionDifficulty, v))
}

// QuestionDifficultyLT applies the LT predicate on the "question_difficulty" field.
func QuestionDifficultyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionDifficulty, v))
}

// QuestionDifficultyLTE applies the LTE predicate on the "question_difficulty" field.
func QuestionDifficultyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionDifficulty, v))
}

// QuestionDifficultyContains applies the Contains predicate on the "question_difficulty" field.
func QuestionDifficultyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionDifficulty, v))
}

// QuestionDifficultyHasPrefix applies the HasPrefix predicate on the "question_difficulty" field.
func QuestionDifficultyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionDifficulty, v))
}

// QuestionDifficultyHasSuffix applies the HasSuffix predicate on the "question_difficulty" field.
func QuestionDifficultyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionDifficulty, v))
}

// QuestionDifficultyIsNil applies the IsNil predicate on the "question_difficulty" field.
func QuestionDifficultyIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldQuestionDifficulty))
}

// QuestionDifficultyNotNil applies the NotNil predicate on the "question_difficulty" field.
func QuestionDifficultyNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldQuestionDifficulty))
}

// QuestionDifficultyEqualFold applies the EqualFold predicate on the "question_difficulty" field.
func QuestionDifficultyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionDifficulty, v))
}

// QuestionDifficultyContainsFold applies the ContainsFold predicate on the "question_difficulty" field.
func QuestionDifficultyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionDifficulty, v))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPageNumber, v))
}

// AnswerStepsEQ applies the EQ predicate on the "answer_steps" field.
func AnswerStepsEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswerSteps, v))
}

// AnswerStepsNEQ applies the NEQ predicate on the "answer_steps" field.
func AnswerStepsNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAnswerSteps, v))
}

// AnswerStepsIn applies the In predicate on the "answer_steps" field.
func AnswerStepsIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAnswerSteps, vs...))
}

// AnswerStepsNotIn applies the NotIn predicate on the "answer_steps" field.
func AnswerStepsNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAnswerSteps, vs...))
}

// AnswerStepsGT applies the GT predicate on the "answer_steps" field.
func AnswerStepsGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAnswerSteps, v))
}

// AnswerStepsGTE applies the GTE predicate on the "answer_steps" field.
func AnswerStepsGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAnswerSteps, v))
}

// AnswerStepsLT applies the LT predicate on the "answer_steps" field.
func AnswerStepsLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAnswerSteps, v))
}

// AnswerStepsLTE applies the LTE predicate on the "answer_steps" field.
func AnswerStepsLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAnswerSteps, v))
}

// AnswerStepsContains applies the Contains predicate on the "answer_steps" field.
func AnswerStepsContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAnswerSteps, v))
}

// AnswerStepsHasPrefix applies the HasPrefix predicate on the "answer_steps" field.
func AnswerStepsHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAnswerSteps, v))
}

// AnswerStepsHasSuffix applies the HasSuffix predicate on the "answer_steps" field.
func AnswerStepsHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAnswerSteps, v))
}

// AnswerStepsIsNil applies the IsNil predicate on the "answer_steps" field.
func AnswerStepsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldAnswerSteps))
}

// AnswerStepsNotNil applies the NotNil predicate on the "answer_steps" field.
func AnswerStepsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldAnswerSteps))
}

// AnswerStepsEqualFold applies the EqualFold predicate on the "answer_steps" field.
func AnswerStepsEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAnswerSteps, v))
}

// AnswerStepsContainsFold applies the ContainsFold predicate on the "answer_steps" field.
func AnswerStepsContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAnswerSteps, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerIsNil applies the IsNil predicate on the "correct_answer" field.
func CorrectAnswerIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldCorrectAnswer))
}

// CorrectAnswerNotNil applies the NotNil predicate on the "correct_answer" field.
func CorrectAnswerNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldCorrectAnswer))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// UploadedByEQ applies the EQ predicate on the "uploaded_by" field.
func UploadedByEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUploadedBy, v))
}

// UploadedByNEQ applies the NEQ predicate on the "uploaded_by" field.
func UploadedByNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUploadedBy, v))
}

// UploadedByIn applies the In predicate on the "uploaded_by" field.
func UploadedByIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUploadedBy, vs...))
}

// UploadedByNotIn applies the NotIn predicate on the "uploaded_by" field.
func UploadedByNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUploadedBy, vs...))
}

// UploadedByGT applies the GT predicate on the "uploaded_by" field.
func UploadedByGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUploadedBy, v))
}

// UploadedByGTE applies the GTE predicate on the "uploaded_by" field.
func UploadedByGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUploadedBy, v))
}

// UploadedByLT applies the LT predicate on the "uploaded_by" field.
func UploadedByLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUploadedBy, v))
}

// UploadedByLTE applies the LTE predicate on the "uploaded_by" field.
func UploadedByLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUploadedBy, v))
}

// UploadedByContains applies the Contains predicate on the "uploaded_by" field.
func UploadedByContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldUploadedBy, v))
}

// UploadedByHasPrefix applies the HasPrefix predicate on the "uploaded_by" field.
func UploadedByHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldUploadedBy, v))
}

// UploadedByHasSuffix applies the HasSuffix predicate on the "uploaded_by" field.
func UploadedByHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldUploadedBy, v))
}

// UploadedByEqualFold applies the EqualFold predicate on the "uploaded_by" field.
func UploadedByEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldUploadedBy, v))
}

// UploadedByContainsFold applies the ContainsFold predicate on the "uploaded_by" field.
func UploadedByContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldUploadedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUpdatedAt, v))
}

// Option1EQ applies the EQ predicate on the "option1" field.
func Option1EQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption1, v))
}

// Option1NEQ applies the NEQ predicate on the "option1" field.
func Option1NEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOption1, v))
}

// Option1In applies the In predicate on the "option1" field.
func Option1In(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOption1, vs...))
}

// Option1NotIn applies the NotIn predicate on the "option1" field.
func Option1NotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOption1, vs...))
}

// Option1GT applies the GT predicate on the "option1" field.
func Option1GT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOption1, v))
}

// Option1GTE applies the GTE predicate on the "option1" field.
func Option1GTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOption1, v))
}

// Option1LT applies the LT predicate on the "option1" field.
func Option1LT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOption1, v))
}

// Option1LTE applies the LTE predicate on the "option1" field.
func Option1LTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOption1, v))
}

// Option1Contains applies the Contains predicate on the "option1" field.
func Option1Contains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOption1, v))
}

// Option1HasPrefix applies the HasPrefix predicate on the "option1" field.
func Option1HasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOption1, v))
}

// Option1HasSuffix applies the HasSuffix predicate on the "option1" field.
func Option1HasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOption1, v))
}

// Option1IsNil applies the IsNil predicate on the "option1" field.
func Option1IsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOption1))
}

// Option1NotNil applies the NotNil predicate on the "option1" field.
func Option1NotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOption1))
}

// Option1EqualFold applies the EqualFold predicate on the "option1" field.
func Option1EqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOption1, v))
}

// Option1ContainsFold applies the ContainsFold predicate on the "option1" field.
func Option1ContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOption1, v))
}

// Option2EQ applies the EQ predicate on the "option2" field.
func Option2EQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption2, v))
}

// Option2NEQ applies the NEQ predicate on the "option2" field.
func Option2NEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOption2, v))
}

// Option2In applies the In predicate on the "option2" field.
func Option2In(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOption2, vs...))
}

// Option2NotIn applies the NotIn predicate on the "option2" field.
func Option2NotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOption2, vs...))
}

// Option2GT applies the GT predicate on the "option2" field.
func Option2GT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOption2, v))
}

// Option2GTE applies the GTE predicate on the "option2" field.
func Option2GTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOption2, v))
}

// Option2LT applies the LT predicate on the "option2" field.
func Option2LT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOption2, v))
}

// Option2LTE applies the LTE predicate on the "option2" field.
func Option2LTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOption2, v))
}

// Option2Contains applies the Contains predicate on the "option2" field.
func Option2Contains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOption2, v))
}

// Option2HasPrefix applies the HasPrefix predicate on the "option2" field.
func Option2HasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOption2, v))
}

// Option2HasSuffix applies the HasSuffix predicate on the "option2" field.
func Option2HasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOption2, v))
}

// Option2IsNil applies the IsNil predicate on the "option2" field.
func Option2IsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOption2))
}

// Option2NotNil applies the NotNil predicate on the "option2" field.
func Option2NotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOption2))
}

// Option2EqualFold applies the EqualFold predicate on the "option2" field.
func Option2EqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOption2, v))
}

// Option2ContainsFold applies the ContainsFold predicate on the "option2" field.
func Option2ContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOption2, v))
}

// Option3EQ applies the EQ predicate on the "option3" field.
func Option3EQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption3, v))
}

// Option3NEQ applies the NEQ predicate on the "option3" field.
func Option3NEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOption3, v))
}

// Option3In applies the In predicate on the "option3" field.
func Option3In(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOption3, vs...))
}

// Option3NotIn applies the NotIn predicate on the "option3" field.
func Option3NotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOption3, vs...))
}

// Option3GT applies the GT predicate on the "option3" field.
func Option3GT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOption3, v))
}

// Option3GTE applies the GTE predicate on the "option3" field.
func Option3GTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOption3, v))
}

// Option3LT applies the LT predicate on the "option3" field.
func Option3LT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOption3, v))
}

// Option3LTE applies the LTE predicate on the "option3" field.
func Option3LTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOption3, v))
}

// Option3Contains applies the Contains predicate on the "option3" field.
func Option3Contains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOption3, v))
}

// Option3HasPrefix applies the HasPrefix predicate on the "option3" field.
func Option3HasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOption3, v))
}

// Option3HasSuffix applies the HasSuffix predicate on the "option3" field.
func Option3HasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOption3, v))
}

// Option3IsNil applies the IsNil predicate on the "option3" field.
func Option3IsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOption3))
}

// Option3NotNil applies the NotNil predicate on the "option3" field.
func Option3NotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOption3))
}

// Option3EqualFold applies the EqualFold predicate on the "option3" field.
func Option3EqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOption3, v))
}

// Option3ContainsFold applies the ContainsFold predicate on the "option3" field.
func Option3ContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOption3, v))
}

// Option4EQ applies the EQ predicate on the "option4" field.
func Option4EQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption4, v))
}

// Option4NEQ applies the NEQ predicate on the "option4" field.
func Option4NEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOption4, v))
}

// Option4In applies the In predicate on the "option4" field.
func Option4In(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOption4, vs...))
}

// Option4NotIn applies the NotIn predicate on the "option4" field.
func Option4NotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOption4, vs...))
}

// Option4GT applies the GT predicate on the "option4" field.
func Option4GT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOption4, v))
}

// Option4GTE applies the GTE predicate on the "option4" field.
func Option4GTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOption4, v))
}

// Option4LT applies the LT predicate on the "option4" field.
func Option4LT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOption4, v))
}

// Option4LTE applies the LTE predicate on the "option4" field.
func Option4LTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOption4, v))
}

// Option4Contains applies the Contains predicate on the "option4" field.
func Option4Contains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOption4, v))
}

// Option4HasPrefix applies the HasPrefix predicate on the "option4" field.
func Option4HasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOption4, v))
}

// Option4HasSuffix applies the HasSuffix predicate on the "option4" field.
func Option4HasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOption4, v))
}

// Option4IsNil applies the IsNil predicate on the "option4" field.
func Option4IsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOption4))
}

// Option4NotNil applies the NotNil predicate on the "option4" field.
func Option4NotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOption4))
}

// Option4EqualFold applies the EqualFold predicate on the "option4" field.
func Option4EqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOption4, v))
}

// Option4ContainsFold applies the ContainsFold predicate on the "option4" field.
func Option4ContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOption4, v))
}

// Option5EQ applies the EQ predicate on the "option5" field.
func Option5EQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption5, v))
}

// Option5NEQ applies the NEQ predicate on the "option5" field.
func Option5NEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOption5, v))
}

// Option5In applies the In predicate on the "option5" field.
func Option5In(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOption5, vs...))
}

// Option5NotIn applies the NotIn predicate on the "option5" field.
func Option5NotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOption5, vs...))
}

// Option5GT applies the GT predicate on the "option5" field.
func Option5GT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOption5, v))
}

// Option5GTE applies the GTE predicate on the "option5" field.
func Option5GTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOption5, v))
}

// Option5LT applies the LT predicate on the "option5" field.
func Option5LT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOption5, v))
}

// Option5LTE applies the LTE predicate on the "option5" field.
func Option5LTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOption5, v))
}

// Option5Contains applies the Contains predicate on the "option5" field.
func Option5Contains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOption5, v))
}

// Option5HasPrefix applies the HasPrefix predicate on the "option5" field.
func Option5HasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOption5, v))
}

// Option5HasSuffix applies the HasSuffix predicate on the "option5" field.
func Option5HasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOption5, v))
}

// Option5IsNil applies the IsNil predicate on the "option5" field.
func Option5IsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOption5))
}

// Option5NotNil applies the NotNil predicate on the "option5" field.
func Option5NotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOption5))
}

// Option5EqualFold applies the EqualFold predicate on the "option5" field.
func Option5EqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOption5, v))
}

// Option5ContainsFold applies the ContainsFold predicate on the "option5" field.
func Option5ContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOption5, v))
}

// Option6EQ applies the EQ predicate on the "option6" field.
func Option6EQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOption6, v))
}

// Option6NEQ applies the NEQ predicate on the "option6" field.
func Option6NEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOption6, v))
}

// Option6In applies the In predicate on the "option6" field.
func Option6In(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOption6, vs...))
}

// Option6NotIn applies the NotIn predicate on the "option6" field.
func Option6NotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOption6, vs...))
}

// Option6GT applies the GT predicate on the "option6" field.
func Option6GT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOption6, v))
}

// Option6GTE applies the GTE predicate on the "option6" field.
func Option6GTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOption6, v))
}

// Option6LT applies the LT predicate on the "option6" field.
func Option6LT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOption6, v))
}

// Option6LTE applies the LTE predicate on the "option6" field.
func Option6LTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOption6, v))
}

// Option6Contains applies the Contains predicate on the "option6" field.
func Option6Contains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOption6, v))
}

// Option6HasPrefix applies the HasPrefix predicate on the "option6" field.
func Option6HasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOption6, v))
}

// Option6HasSuffix applies the HasSuffix predicate on the "option6" field.
func Option6HasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOption6, v))
}

// Option6IsNil applies the IsNil predicate on the "option6" field.
func Option6IsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOption6))
}

// Option6NotNil applies the NotNil predicate on the "option6" field.
func Option6NotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOption6))
}

// Option6EqualFold applies the EqualFold predicate on the "option6" field.
func Option6EqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOption6, v))
}

// Option6ContainsFold applies the ContainsFold predicate on the "option6" field.
func Option6ContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOption6, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ExtractionJob) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
