package entity

import "github.com/google/uuid"

// PageOutcome is the per-page result. Written exactly once per page,
// never mutated after the page resolves.
type PageOutcome struct {
	JobID         uuid.UUID `json:"job_id"`
	PageNumber    int       `json:"page_number"` // 1-based, source document ordering
	Status        string    `json:"status"`
	QuestionCount int       `json:"questions_extracted"`
	Error         string    `json:"error,omitempty"`
}
