// Package pipeline runs page-wise extraction: normalizing model output into
// records and aggregating per-page outcomes into a job summary.
package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/qbankhq/qbank/constants"
	"github.com/qbankhq/qbank/internal/entity"
	"github.com/qbankhq/qbank/internal/llm"
)

// JobContext is the per-job metadata stamped onto every normalized record.
type JobContext struct {
	JobID          uuid.UUID
	FileName       string
	SubjectName    string
	ClassName      string
	Specialization string
	UploadedBy     string
}

// Normalizer turns raw model records into entity.Question values. It is
// stateless and safe for concurrent use.
type Normalizer struct {
	logger *slog.Logger
}

func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// Normalize converts one page's raw records. Records with no question text
// are dropped and counted; every other field degrades to absent rather than
// failing the record.
func (n *Normalizer) Normalize(jc JobContext, page int, raw []llm.RawQuestion) (questions []entity.Question, dropped int) {
	for _, r := range raw {
		q, ok := n.normalizeOne(jc, page, r)
		if !ok {
			dropped++
			continue
		}
		questions = append(questions, q)
	}
	if dropped > 0 {
		n.logger.Warn("normalize.records_dropped",
			"job_id", jc.JobID, "page", page, "dropped", dropped)
	}
	return questions, dropped
}

func (n *Normalizer) normalizeOne(jc JobContext, page int, r llm.RawQuestion) (entity.Question, bool) {
	text := cleanString(r["question"])
	if text == nil {
		return entity.Question{}, false
	}

	q := entity.Question{
		ID:          uuid.New(),
		JobID:       jc.JobID,
		FileName:    jc.FileName,
		SubjectName: jc.SubjectName,
		Question:    *text,
		PageNumber:  page,
		UploadedBy:  jc.UploadedBy,
	}
	if lesson := cleanString(r["lesson_title"]); lesson != nil {
		q.LessonTitle = *lesson
	}
	q.ClassName = optional(jc.ClassName)
	q.Specialization = optional(jc.Specialization)
	q.AnswerSteps = cleanString(r["answer_steps"])
	q.CorrectAnswer = cleanString(r["correct_answer"])

	if v := cleanString(r["question_type"]); v != nil {
		if qt, ok := constants.CanonicalizeType(*v); ok {
			s := string(qt)
			q.QuestionType = &s
		} else {
			n.logger.Warn("normalize.unknown_question_type",
				"job_id", jc.JobID, "page", page, "value", *v)
		}
	}
	if v := cleanString(r["question_difficulty"]); v != nil {
		if d, ok := constants.CanonicalizeDifficulty(*v); ok {
			s := string(d)
			q.Difficulty = &s
		} else {
			n.logger.Warn("normalize.unknown_difficulty",
				"job_id", jc.JobID, "page", page, "value", *v)
		}
	}

	// Options keep their supplied slots: a blank or missing optionN leaves
	// slot N absent without compacting the others.
	for i := 1; i <= constants.MaxOptions; i++ {
		q.Options[i-1] = cleanString(r["option"+strconv.Itoa(i)])
	}

	q.DedupKey = DedupKey(jc.JobID, page, q.Question)
	return q, true
}

// DedupKey identifies a question within a job: same job, same page, same
// normalized text collapses to one stored record.
func DedupKey(jobID uuid.UUID, page int, question string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(question), " "))
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%d:%s", jobID, page, normalized)))
	return hex.EncodeToString(sum[:])
}

// cleanString trims a raw value and maps empty or non-string to nil. Numbers
// are stringified since models occasionally emit bare numerics for answers.
func cleanString(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
