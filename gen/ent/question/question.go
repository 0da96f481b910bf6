// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldDedupKey holds the string denoting the dedup_key field in the database.
	FieldDedupKey = "dedup_key"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldSubjectName holds the string denoting the subject_name field in the database.
	FieldSubjectName = "subject_name"
	// FieldLessonTitle holds the string denoting the lesson_title field in the database.
	FieldLessonTitle = "lesson_title"
	// FieldClassName holds the string denoting the class_name field in the database.
	FieldClassName = "class_name"
	// FieldSpecialization holds the string denoting the specialization field in the database.
	FieldSpecialization = "specialization"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldQuestionDifficulty holds the string denoting the question_difficulty field in the database.
	FieldQuestionDifficulty = "question_difficulty"
	// FieldPageNumber holds the string denoting the page_number field in the database.
	FieldPageNumber = "page_number"
	// FieldAnswerSteps holds the string denoting the answer_steps field in the database.
	FieldAnswerSteps = "answer_steps"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldUploadedBy holds the string denoting the uploaded_by field in the database.
	FieldUploadedBy = "uploaded_by"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOption1 holds the string denoting the option1 field in the database.
	FieldOption1 = "option1"
	// FieldOption2 holds the string denoting the option2 field in the database.
	FieldOption2 = "option2"
	// FieldOption3 holds the string denoting the option3 field in the database.
	FieldOption3 = "option3"
	// FieldOption4 holds the string denoting the option4 field in the database.
	FieldOption4 = "option4"
	// FieldOption5 holds the string denoting the option5 field in the database.
	FieldOption5 = "option5"
	// FieldOption6 holds the string denoting the option6 field in the database.
	FieldOption6 = "option6"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the question in the database.
	Table = "question"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "question"
	// JobInverseTable is the table name for the ExtractionJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractionjob" package.
	JobInverseTable = "extraction_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldDedupKey,
	FieldFileName,
	FieldSubjectName,
	FieldLessonTitle,
	FieldClassName,
	FieldSpecialization,
	FieldQuestion,
	FieldQuestionType,
	FieldQuestionDifficulty,
	FieldPageNumber,
	FieldAnswerSteps,
	FieldCorrectAnswer,
	FieldUploadedBy,
	FieldUpdatedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOption1,
	FieldOption2,
	FieldOption3,
	FieldOption4,
	FieldOption5,
	FieldOption6,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DedupKeyValidator is a validator for the "dedup_key" field. It is called by the builders before save.
	DedupKeyValidator func(string) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// SubjectNameValidator is a validator for the "subject_name" field. It is called by the builders before save.
	SubjectNameValidator func(string) error
	// QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	QuestionValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// QuestionDifficultyValidator is a validator for the "question_difficulty" field. It is called by the builders before save.
	QuestionDifficultyValidator func(string) error
	// PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	PageNumberValidator func(int) error
	// UploadedByValidator is a validator for the "uploaded_by" field. It is called by the builders before save.
	UploadedByValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByDedupKey orders the results by the dedup_key field.
func ByDedupKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupKey, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// BySubjectName orders the results by the subject_name field.
func BySubjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectName, opts...).ToFunc()
}

// ByLessonTitle orders the results by the lesson_title field.
func ByLessonTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonTitle, opts...).ToFunc()
}

// ByClassName orders the results by the class_name field.
func ByClassName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassName, opts...).ToFunc()
}

// BySpecialization orders the results by the specialization field.
func BySpecialization(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialization, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByQuestionDifficulty orders the results by the question_difficulty field.
func ByQuestionDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionDifficulty, opts...).ToFunc()
}

// ByPageNumber orders the results by the page_number field.
func ByPageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNumber, opts...).ToFunc()
}

// ByAnswerSteps orders the results by the answer_steps field.
func ByAnswerSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerSteps, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByUploadedBy orders the results by the uploaded_by field.
func ByUploadedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedBy, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOption1 orders the results by the option1 field.
func ByOption1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOption1, opts...).ToFunc()
}

// ByOption2 orders the results by the option2 field.
func ByOption2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOption2, opts...).ToFunc()
}

// ByOption3 orders the results by the option3 field.
func ByOption3(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOption3, opts...).ToFunc()
}

// ByOption4 orders the results by the option4 field.
func ByOption4(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOption4, opts...).ToFunc()
}

// ByOption5 orders the results by the option5 field.
func ByOption5(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOption5, opts...).ToFunc()
}

// ByOption6 orders the results by the option6 field.
func ByOption6(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOption6, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
