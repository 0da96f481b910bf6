package llm

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/qbankhq/qbank/constants"
)

// maxPageChars bounds how much page content goes into one prompt.
const maxPageChars = 12000

// BuildSystemPrompt composes the system message: extraction role, the closed
// enums, symbol-preservation rules, and the required response envelope.
func BuildSystemPrompt(req ExtractRequest) string {
	parts := []string{
		"You are an education specialist who extracts questions and exercises from digitized textbooks.",
		"Extract every question from the provided page content: solved, partial, and multi-part questions included.",
		"Preserve all mathematical, physical, and chemical notation exactly as written (√, ∫, ∑, x², H₂O, Δ, λ, …). Never spell symbols out or add Markdown/LaTeX/HTML formatting.",
		"Keep the source language of the text; do not translate.",
		"'question_type' must be one of: " + strings.Join(constants.QuestionTypeStrings(), ", ") + ".",
		"'question_difficulty' must be one of: " + strings.Join(constants.DifficultyStrings(), ", ") + ".",
		"For multiple choice questions, put the choices in option1..option" + strconv.Itoa(constants.MaxOptions) + " in the order they appear. Omit unused option fields entirely.",
		"Include 'answer_steps' and 'correct_answer' only when the page provides them.",
		"Never output null. If a field is not present, omit it.",
		"Return ONLY a JSON object matching the provided JSON Schema, with all questions under the '" + QuestionsKey + "' key. No commentary outside the JSON.",
	}

	if ctxLine := contextLine(req); ctxLine != "" {
		parts = append(parts, ctxLine)
	}
	parts = append(parts, "JSON Schema:\n"+mustJSON(BuildQuestionSchema()))
	return strings.Join(parts, " ")
}

// BuildUserPrompt carries the page content plus its position in the document.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	b.WriteString("Page ")
	b.WriteString(strconv.Itoa(req.PageNumber))
	b.WriteString(" of ")
	b.WriteString(strconv.Itoa(req.TotalPages))
	if len(req.Languages) > 0 {
		b.WriteString(" (languages: ")
		b.WriteString(strings.Join(req.Languages, ", "))
		b.WriteString(")")
	}
	b.WriteString("\n\nPage content (Markdown):\n")
	b.WriteString(truncateToRune(req.PageText, maxPageChars))
	b.WriteString("\n\nReturn ONLY the JSON object.")
	return b.String()
}

func contextLine(req ExtractRequest) string {
	var bits []string
	if s := strings.TrimSpace(req.SubjectName); s != "" {
		bits = append(bits, "Subject: "+s+".")
	}
	if c := strings.TrimSpace(req.ClassName); c != "" {
		bits = append(bits, "Class: "+c+".")
	}
	if sp := strings.TrimSpace(req.Specialization); sp != "" {
		bits = append(bits, "Specialization: "+sp+".")
	}
	if len(bits) == 0 {
		return ""
	}
	return "Curriculum context: " + strings.Join(bits, " ")
}

// truncateToRune cuts s at max bytes without splitting a multi-byte rune,
// backing up to the preceding rune boundary when the cut lands mid-sequence.
func truncateToRune(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
