package constants

import "strings"

// QuestionType is the closed set of types the generative service is asked to use.
type QuestionType string

const (
	Descriptive    QuestionType = "Descriptive"
	MultipleChoice QuestionType = "Multiple Choice"
	TrueFalse      QuestionType = "True/False"
	FillInTheBlank QuestionType = "Fill in the blank"
	ShortAnswer    QuestionType = "Short Answer"
)

var allQuestionTypes = []QuestionType{
	Descriptive,
	MultipleChoice,
	TrueFalse,
	FillInTheBlank,
	ShortAnswer,
}

// Difficulty is the closed difficulty set.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

var allDifficulties = []Difficulty{Easy, Medium, Hard}

func QuestionTypeStrings() []string {
	result := make([]string, len(allQuestionTypes))
	for i, qt := range allQuestionTypes {
		result[i] = string(qt)
	}
	return result
}

func DifficultyStrings() []string {
	result := make([]string, len(allDifficulties))
	for i, d := range allDifficulties {
		result[i] = string(d)
	}
	return result
}

// CanonicalizeType maps a model-supplied type label onto the closed set.
// Unknown labels return ok=false; the caller stores the field as absent.
func CanonicalizeType(input string) (QuestionType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}

	synonyms := map[string]QuestionType{
		"mcq":             MultipleChoice,
		"multiple-choice": MultipleChoice,
		"multi choice":    MultipleChoice,
		"true or false":   TrueFalse,
		"true false":      TrueFalse,
		"fill in blank":   FillInTheBlank,
		"fill-in":         FillInTheBlank,
		"essay":           Descriptive,
		"open ended":      Descriptive,
	}
	if qt, ok := synonyms[normalized]; ok {
		return qt, true
	}

	for _, qt := range allQuestionTypes {
		if normalized == strings.ToLower(string(qt)) {
			return qt, true
		}
	}
	return "", false
}

// CanonicalizeDifficulty maps a model-supplied difficulty onto the closed set.
func CanonicalizeDifficulty(input string) (Difficulty, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}
	for _, d := range allDifficulties {
		if normalized == strings.ToLower(string(d)) {
			return d, true
		}
	}
	return "", false
}
