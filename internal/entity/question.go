package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/qbankhq/qbank/constants"
)

// Question represents one extracted question for data transfer between layers.
// Optional fields are pointers: nil means "not provided", which downstream
// consumers treat differently from an empty string.
type Question struct {
	ID             uuid.UUID `json:"id"`
	JobID          uuid.UUID `json:"job_id"`
	DedupKey       string    `json:"dedup_key"`
	FileName       string    `json:"file_name"`
	SubjectName    string    `json:"subject_name"`
	LessonTitle    string    `json:"lesson_title"`
	ClassName      *string   `json:"class_name,omitempty"`
	Specialization *string   `json:"specialization,omitempty"`
	Question       string    `json:"question"`
	QuestionType   *string   `json:"question_type,omitempty"`
	Difficulty     *string   `json:"question_difficulty,omitempty"`
	PageNumber     int       `json:"page_number"`
	AnswerSteps    *string   `json:"answer_steps,omitempty"`
	CorrectAnswer  *string   `json:"correct_answer,omitempty"`
	// Options holds slots option1..option6 by position: a nil slot was empty
	// or missing in the source, and slots are never compacted or reordered.
	Options    [constants.MaxOptions]*string `json:"options"`
	UploadedBy string                        `json:"uploaded_by"`
	UpdatedBy  *string                       `json:"updated_by,omitempty"`
	CreatedAt  time.Time                     `json:"created_at"`
	UpdatedAt  time.Time                     `json:"updated_at"`
}
