package entity

import (
	"github.com/google/uuid"
)

// JobSummary is the sole observable contract the pipeline hands back to callers.
// Page-level failures appear here as data, never as errors.
type JobSummary struct {
	JobID            uuid.UUID     `json:"job_id"`
	Status           string        `json:"status"`
	TotalPages       int           `json:"total_pages_detected"`
	PagesWithContent int           `json:"pages_with_content"`
	PagesSkipped     int           `json:"pages_skipped"`
	PagesFailed      int           `json:"pages_failed"`
	QuestionsStored  int           `json:"questions_stored"`
	Pages            []PageOutcome `json:"pages"`
}
