package llm

import (
	"strconv"

	"github.com/qbankhq/qbank/constants"
)

// BuildQuestionSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map. It is passed to the generative service as a structured output constraint:
// an object carrying the questions list, each element a question record.
func BuildQuestionSchema() map[string]any {
	optionProps := map[string]any{}
	for i := 1; i <= constants.MaxOptions; i++ {
		optionProps["option"+strconv.Itoa(i)] = map[string]any{"type": "string"}
	}

	recordProps := map[string]any{
		"lesson_title": map[string]any{"type": "string", "minLength": 1},
		"question":     map[string]any{"type": "string", "minLength": 1},
		"question_type": map[string]any{
			"type": "string",
			"enum": constants.QuestionTypeStrings(),
		},
		"question_difficulty": map[string]any{
			"type": "string",
			"enum": constants.DifficultyStrings(),
		},
		"answer_steps":   map[string]any{"type": "string"},
		"correct_answer": map[string]any{"type": "string"},
	}
	for k, v := range optionProps {
		recordProps[k] = v
	}

	return map[string]any{
		"type":     "object",
		"required": []string{QuestionsKey},
		"properties": map[string]any{
			QuestionsKey: map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"required":   []string{"question"},
					"properties": recordProps,
				},
			},
		},
	}
}

// BuildEnvelopeSchema returns only the top-level constraint: an object whose
// questions key holds a list. Element-level problems are tolerated per record
// by the parser and normalizer, so they are deliberately not constrained here.
func BuildEnvelopeSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{QuestionsKey},
		"properties": map[string]any{
			QuestionsKey: map[string]any{"type": "array"},
		},
	}
}
