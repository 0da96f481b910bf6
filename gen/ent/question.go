// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/qbankhq/qbank/gen/ent/extractionjob"
	"github.com/qbankhq/qbank/gen/ent/question"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// DedupKey holds the value of the "dedup_key" field.
	DedupKey string `json:"dedup_key,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// SubjectName holds the value of the "subject_name" field.
	SubjectName string `json:"subject_name,omitempty"`
	// LessonTitle holds the value of the "lesson_title" field.
	LessonTitle string `json:"lesson_title,omitempty"`
	// ClassName holds the value of the "class_name" field.
	ClassName *string `json:"class_name,omitempty"`
	// Specialization holds the value of the "specialization" field.
	Specialization *string `json:"specialization,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// QuestionType holds the value of the "question_type" field.
	QuestionType *string `json:"question_type,omitempty"`
	// QuestionDifficulty holds the value of the "question_difficulty" field.
	QuestionDifficulty *string `json:"question_difficulty,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// AnswerSteps holds the value of the "answer_steps" field.
	AnswerSteps *string `json:"answer_steps,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer *string `json:"correct_answer,omitempty"`
	// UploadedBy holds the value of the "uploaded_by" field.
	UploadedBy string `json:"uploaded_by,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy *string `json:"updated_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Option1 holds the value of the "option1" field.
	Option1 *string `json:"option1,omitempty"`
	// Option2 holds the value of the "option2" field.
	Option2 *string `json:"option2,omitempty"`
	// Option3 holds the value of the "option3" field.
	Option3 *string `json:"option3,omitempty"`
	// Option4 holds the value of the "option4" field.
	Option4 *string `json:"option4,omitempty"`
	// Option5 holds the value of the "option5" field.
	Option5 *string `json:"option5,omitempty"`
	// Option6 holds the value of the "option6" field.
	Option6 *string `json:"option6,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges        QuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Job holds the value of the job edge.
	Job *ExtractionJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) JobOrErr() (*ExtractionJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractionjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldPageNumber:
			values[i] = new(sql.NullInt64)
		case question.FieldDedupKey, question.FieldFileName, question.FieldSubjectName, question.FieldLessonTitle, question.FieldClassName, question.FieldSpecialization, question.FieldQuestion, question.FieldQuestionType, question.FieldQuestionDifficulty, question.FieldAnswerSteps, question.FieldCorrectAnswer, question.FieldUploadedBy, question.FieldUpdatedBy, question.FieldOption1, question.FieldOption2, question.FieldOption3, question.FieldOption4, question.FieldOption5, question.FieldOption6:
			values[i] = new(sql.NullString)
		case question.FieldCreatedAt, question.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case question.FieldID, question.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case question.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case question.FieldDedupKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedup_key", values[i])
			} else if value.Valid {
				_m.DedupKey = value.String
			}
		case question.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case question.FieldSubjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_name", values[i])
			} else if value.Valid {
				_m.SubjectName = value.String
			}
		case question.FieldLessonTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_title", values[i])
			} else if value.Valid {
				_m.LessonTitle = value.String
			}
		case question.FieldClassName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field class_name", values[i])
			} else if value.Valid {
				_m.ClassName = new(string)
				*_m.ClassName = value.String
			}
		case question.FieldSpecialization:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specialization", values[i])
			} else if value.Valid {
				_m.Specialization = new(string)
				*_m.Specialization = value.String
			}
		case question.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case question.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = new(string)
				*_m.QuestionType = value.String
			}
		case question.FieldQuestionDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_difficulty", values[i])
			} else if value.Valid {
				_m.QuestionDifficulty = new(string)
				*_m.QuestionDifficulty = value.String
			}
		case question.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case question.FieldAnswerSteps:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_steps", values[i])
			} else if value.Valid {
				_m.AnswerSteps = new(string)
				*_m.AnswerSteps = value.String
			}
		case question.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = new(string)
				*_m.CorrectAnswer = value.String
			}
		case question.FieldUploadedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_by", values[i])
			} else if value.Valid {
				_m.UploadedBy = value.String
			}
		case question.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				_m.UpdatedBy = new(string)
				*_m.UpdatedBy = value.String
			}
		case question.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case question.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case question.FieldOption1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option1", values[i])
			} else if value.Valid {
				_m.Option1 = new(string)
				*_m.Option1 = value.String
			}
		case question.FieldOption2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option2", values[i])
			} else if value.Valid {
				_m.Option2 = new(string)
				*_m.Option2 = value.String
			}
		case question.FieldOption3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option3", values[i])
			} else if value.Valid {
				_m.Option3 = new(string)
				*_m.Option3 = value.String
			}
		case question.FieldOption4:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option4", values[i])
			} else if value.Valid {
				_m.Option4 = new(string)
				*_m.Option4 = value.String
			}
		case question.FieldOption5:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option5", values[i])
			} else if value.Valid {
				_m.Option5 = new(string)
				*_m.Option5 = value.String
			}
		case question.FieldOption6:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option6", values[i])
			} else if value.Valid {
				_m.Option6 = new(string)
				*_m.Option6 = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the Question entity.
func (_m *Question) QueryJob() *ExtractionJobQuery {
	return NewQuestionClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("dedup_key=")
	builder.WriteString(_m.DedupKey)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("subject_name=")
	builder.WriteString(_m.SubjectName)
	builder.WriteString(", ")
	builder.WriteString("lesson_title=")
	builder.WriteString(_m.LessonTitle)
	builder.WriteString(", ")
	if v := _m.ClassName; v != nil {
		builder.WriteString("class_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Specialization; v != nil {
		builder.WriteString("specialization=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	if v := _m.QuestionType; v != nil {
		builder.WriteString("question_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.QuestionDifficulty; v != nil {
		builder.WriteString("question_difficulty=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	if v := _m.AnswerSteps; v != nil {
		builder.WriteString("answer_steps=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CorrectAnswer; v != nil {
		builder.WriteString("correct_answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_by=")
	builder.WriteString(_m.UploadedBy)
	builder.WriteString(", ")
	if v := _m.UpdatedBy; v != nil {
		builder.WriteString("updated_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Option1; v != nil {
		builder.WriteString("option1=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Option2; v != nil {
		builder.WriteString("option2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Option3; v != nil {
		builder.WriteString("option3=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Option4; v != nil {
		builder.WriteString("option4=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Option5; v != nil {
		builder.WriteString("option5=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Option6; v != nil {
		builder.WriteString("option6=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
