// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/qbankhq/qbank/db/ent/schema"
	"github.com/qbankhq/qbank/gen/ent/extractionjob"
	"github.com/qbankhq/qbank/gen/ent/pageoutcome"
	"github.com/qbankhq/qbank/gen/ent/question"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescFileName is the schema descriptor for file_name field.
	extractionjobDescFileName := extractionjobFields[1].Descriptor()
	// extractionjob.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	extractionjob.FileNameValidator = extractionjobDescFileName.Validators[0].(func(string) error)
	// extractionjobDescSubjectName is the schema descriptor for subject_name field.
	extractionjobDescSubjectName := extractionjobFields[2].Descriptor()
	// extractionjob.SubjectNameValidator is a validator for the "subject_name" field. It is called by the builders before save.
	extractionjob.SubjectNameValidator = extractionjobDescSubjectName.Validators[0].(func(string) error)
	// extractionjobDescUploadedBy is the schema descriptor for uploaded_by field.
	extractionjobDescUploadedBy := extractionjobFields[5].Descriptor()
	// extractionjob.UploadedByValidator is a validator for the "uploaded_by" field. It is called by the builders before save.
	extractionjob.UploadedByValidator = extractionjobDescUploadedBy.Validators[0].(func(string) error)
	// extractionjobDescTotalPages is the schema descriptor for total_pages field.
	extractionjobDescTotalPages := extractionjobFields[6].Descriptor()
	// extractionjob.DefaultTotalPages holds the default value on creation for the total_pages field.
	extractionjob.DefaultTotalPages = extractionjobDescTotalPages.Default.(int)
	// extractionjobDescStatus is the schema descriptor for status field.
	extractionjobDescStatus := extractionjobFields[7].Descriptor()
	// extractionjob.DefaultStatus holds the default value on creation for the status field.
	extractionjob.DefaultStatus = extractionjobDescStatus.Default.(string)
	// extractionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionjob.StatusValidator = extractionjobDescStatus.Validators[0].(func(string) error)
	// extractionjobDescStartedAt is the schema descriptor for started_at field.
	extractionjobDescStartedAt := extractionjobFields[10].Descriptor()
	// extractionjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractionjob.DefaultStartedAt = extractionjobDescStartedAt.Default.(func() time.Time)
	// extractionjobDescID is the schema descriptor for id field.
	extractionjobDescID := extractionjobFields[0].Descriptor()
	// extractionjob.DefaultID holds the default value on creation for the id field.
	extractionjob.DefaultID = extractionjobDescID.Default.(func() uuid.UUID)
	pageoutcomeFields := schema.PageOutcome{}.Fields()
	_ = pageoutcomeFields
	// pageoutcomeDescPageNumber is the schema descriptor for page_number field.
	pageoutcomeDescPageNumber := pageoutcomeFields[2].Descriptor()
	// pageoutcome.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	pageoutcome.PageNumberValidator = pageoutcomeDescPageNumber.Validators[0].(func(int) error)
	// pageoutcomeDescStatus is the schema descriptor for status field.
	pageoutcomeDescStatus := pageoutcomeFields[3].Descriptor()
	// pageoutcome.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	pageoutcome.StatusValidator = func() func(string) error {
		validators := pageoutcomeDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pageoutcomeDescQuestionCount is the schema descriptor for question_count field.
	pageoutcomeDescQuestionCount := pageoutcomeFields[4].Descriptor()
	// pageoutcome.DefaultQuestionCount holds the default value on creation for the question_count field.
	pageoutcome.DefaultQuestionCount = pageoutcomeDescQuestionCount.Default.(int)
	// pageoutcomeDescCreatedAt is the schema descriptor for created_at field.
	pageoutcomeDescCreatedAt := pageoutcomeFields[6].Descriptor()
	// pageoutcome.DefaultCreatedAt holds the default value on creation for the created_at field.
	pageoutcome.DefaultCreatedAt = pageoutcomeDescCreatedAt.Default.(func() time.Time)
	// pageoutcomeDescID is the schema descriptor for id field.
	pageoutcomeDescID := pageoutcomeFields[0].Descriptor()
	// pageoutcome.DefaultID holds the default value on creation for the id field.
	pageoutcome.DefaultID = pageoutcomeDescID.Default.(func() uuid.UUID)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescDedupKey is the schema descriptor for dedup_key field.
	questionDescDedupKey := questionFields[2].Descriptor()
	// question.DedupKeyValidator is a validator for the "dedup_key" field. It is called by the builders before save.
	question.DedupKeyValidator = func() func(string) error {
		validators := questionDescDedupKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(dedup_key string) error {
			for _, fn := range fns {
				if err := fn(dedup_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionDescFileName is the schema descriptor for file_name field.
	questionDescFileName := questionFields[3].Descriptor()
	// question.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	question.FileNameValidator = questionDescFileName.Validators[0].(func(string) error)
	// questionDescSubjectName is the schema descriptor for subject_name field.
	questionDescSubjectName := questionFields[4].Descriptor()
	// question.SubjectNameValidator is a validator for the "subject_name" field. It is called by the builders before save.
	question.SubjectNameValidator = questionDescSubjectName.Validators[0].(func(string) error)
	// questionDescQuestion is the schema descriptor for question field.
	questionDescQuestion := questionFields[8].Descriptor()
	// question.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	question.QuestionValidator = questionDescQuestion.Validators[0].(func(string) error)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[9].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescQuestionDifficulty is the schema descriptor for question_difficulty field.
	questionDescQuestionDifficulty := questionFields[10].Descriptor()
	// question.QuestionDifficultyValidator is a validator for the "question_difficulty" field. It is called by the builders before save.
	question.QuestionDifficultyValidator = questionDescQuestionDifficulty.Validators[0].(func(string) error)
	// questionDescPageNumber is the schema descriptor for page_number field.
	questionDescPageNumber := questionFields[11].Descriptor()
	// question.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	question.PageNumberValidator = questionDescPageNumber.Validators[0].(func(int) error)
	// questionDescUploadedBy is the schema descriptor for uploaded_by field.
	questionDescUploadedBy := questionFields[14].Descriptor()
	// question.UploadedByValidator is a validator for the "uploaded_by" field. It is called by the builders before save.
	question.UploadedByValidator = questionDescUploadedBy.Validators[0].(func(string) error)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[16].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionFields[17].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
}
