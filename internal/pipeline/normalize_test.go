package pipeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbankhq/qbank/internal/llm"
)

func testJobContext() JobContext {
	return JobContext{
		JobID:       uuid.New(),
		FileName:    "algebra.pdf",
		SubjectName: "Mathematics",
		UploadedBy:  "tester",
	}
}

func TestNormalize_EmptyOptionSlotIsAbsentNotCompacted(t *testing.T) {
	n := NewNormalizer(nil)
	raw := []llm.RawQuestion{{
		"question": "Which of these is prime?",
		"option1":  "4",
		"option2":  "6",
		"option3":  "7",
		"option4":  "   ", // whitespace only: absent, not empty string
		"option5":  "9",
	}}

	questions, dropped := n.Normalize(testJobContext(), 1, raw)
	require.Len(t, questions, 1)
	require.Zero(t, dropped)

	q := questions[0]
	require.NotNil(t, q.Options[2])
	assert.Equal(t, "7", *q.Options[2])
	assert.Nil(t, q.Options[3], "whitespace-only slot must be absent")
	require.NotNil(t, q.Options[4], "later slots must keep their positions")
	assert.Equal(t, "9", *q.Options[4])
	assert.Nil(t, q.Options[5])
}

func TestNormalize_DropsRecordsWithoutQuestionText(t *testing.T) {
	n := NewNormalizer(nil)
	raw := []llm.RawQuestion{
		{"question": "Keep me"},
		{"question": "   "},
		{"lesson_title": "no question key at all"},
		{"question": float64(12345)}, // numeric is tolerated and stringified
	}

	questions, dropped := n.Normalize(testJobContext(), 2, raw)
	assert.Len(t, questions, 2)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, "12345", questions[1].Question)
}

func TestNormalize_UnknownEnumValuesStoredAbsent(t *testing.T) {
	n := NewNormalizer(nil)
	raw := []llm.RawQuestion{
		{"question": "A", "question_type": "interpretive dance", "question_difficulty": "brutal"},
		{"question": "B", "question_type": "mcq", "question_difficulty": "easy"},
	}

	questions, _ := n.Normalize(testJobContext(), 1, raw)
	require.Len(t, questions, 2)

	assert.Nil(t, questions[0].QuestionType, "unknown type must be absent, not stored raw")
	assert.Nil(t, questions[0].Difficulty)

	require.NotNil(t, questions[1].QuestionType)
	assert.Equal(t, "Multiple Choice", *questions[1].QuestionType)
	require.NotNil(t, questions[1].Difficulty)
	assert.Equal(t, "Easy", *questions[1].Difficulty)
}

func TestNormalize_TrimsAndAbsentsOptionalFields(t *testing.T) {
	n := NewNormalizer(nil)
	raw := []llm.RawQuestion{{
		"question":       "  What is H2O?  ",
		"lesson_title":   " Water ",
		"answer_steps":   "",
		"correct_answer": "  H2O is water  ",
	}}

	questions, _ := n.Normalize(testJobContext(), 3, raw)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, "What is H2O?", q.Question)
	assert.Equal(t, "Water", q.LessonTitle)
	assert.Nil(t, q.AnswerSteps, "empty string must become absent")
	require.NotNil(t, q.CorrectAnswer)
	assert.Equal(t, "H2O is water", *q.CorrectAnswer)
}

func TestNormalize_ContextLabels(t *testing.T) {
	n := NewNormalizer(nil)
	jc := testJobContext()
	jc.ClassName = "Grade 10"
	jc.Specialization = ""

	questions, _ := n.Normalize(jc, 1, []llm.RawQuestion{{"question": "Q"}})
	require.Len(t, questions, 1)

	require.NotNil(t, questions[0].ClassName)
	assert.Equal(t, "Grade 10", *questions[0].ClassName)
	assert.Nil(t, questions[0].Specialization, "blank label stays absent")
	assert.Equal(t, jc.JobID, questions[0].JobID)
	assert.Equal(t, 1, questions[0].PageNumber)
}

func TestDedupKey_Stability(t *testing.T) {
	jobID := uuid.New()

	a := DedupKey(jobID, 3, "What  is\tthe capital of France?")
	b := DedupKey(jobID, 3, "what is the CAPITAL of france?")
	assert.Equal(t, a, b, "whitespace and case must not change identity")

	assert.NotEqual(t, a, DedupKey(jobID, 4, "What is the capital of France?"),
		"page number is part of the identity")
	assert.NotEqual(t, a, DedupKey(uuid.New(), 3, "What is the capital of France?"),
		"job id is part of the identity")
	assert.Len(t, a, 64)
}
