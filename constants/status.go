package constants

// JobStatus is the canonical status for rows in extraction_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusRunning        JobStatus = "RUNNING"         // pages in flight
	JobStatusSuccess        JobStatus = "SUCCESS"         // zero failed pages
	JobStatusPartialSuccess JobStatus = "PARTIAL_SUCCESS" // some pages failed, some produced questions
	JobStatusFailed         JobStatus = "FAILED"          // nothing usable came out of the job
)

// PageStatus is the terminal state of one page within a job.
type PageStatus string

const (
	PageProcessed        PageStatus = "processed"          // questions extracted and stored
	PageNoContent        PageStatus = "no_content"         // no extractable text, skipped before any network call
	PageNoQuestionsFound PageStatus = "no_questions_found" // model returned a valid but empty list
	PageFailed           PageStatus = "failed"             // retries exhausted (transport or unusable output)
)

// PageStatuses holds the allowed values for the page_outcome status column.
var PageStatuses = []string{
	string(PageProcessed),
	string(PageNoContent),
	string(PageNoQuestionsFound),
	string(PageFailed),
}

// JobStatuses holds the allowed values for the extraction_job status column.
var JobStatuses = []string{
	string(JobStatusRunning),
	string(JobStatusSuccess),
	string(JobStatusPartialSuccess),
	string(JobStatusFailed),
}
