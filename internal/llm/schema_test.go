package llm

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad test input: %v", err)
	}
	return v
}

func TestValidateAgainstSchema_Envelope(t *testing.T) {
	schema := BuildEnvelopeSchema()

	if err := ValidateAgainstSchema(schema, decode(t, `{"questions":[]}`)); err != nil {
		t.Fatalf("empty list must validate: %v", err)
	}
	if err := ValidateAgainstSchema(schema, decode(t, `{"questions":["anything",1]}`)); err != nil {
		t.Fatalf("element shape is deliberately unconstrained at the envelope: %v", err)
	}
	if err := ValidateAgainstSchema(schema, decode(t, `{"questions":"not a list"}`)); err == nil {
		t.Fatal("non-array questions must be rejected")
	}
	if err := ValidateAgainstSchema(schema, decode(t, `{"other":[]}`)); err == nil {
		t.Fatal("missing questions key must be rejected")
	}
}

func TestBuildQuestionSchema_ConstrainsRecords(t *testing.T) {
	schema := BuildQuestionSchema()

	valid := `{"questions":[{
		"question":"Pick one",
		"question_type":"Multiple Choice",
		"question_difficulty":"Hard",
		"option1":"a","option2":"b"
	}]}`
	if err := ValidateAgainstSchema(schema, decode(t, valid)); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}

	badEnum := `{"questions":[{"question":"Q","question_type":"Trivia"}]}`
	if err := ValidateAgainstSchema(schema, decode(t, badEnum)); err == nil {
		t.Fatal("out-of-enum question_type must be rejected by the full schema")
	}

	missingQuestion := `{"questions":[{"lesson_title":"L"}]}`
	if err := ValidateAgainstSchema(schema, decode(t, missingQuestion)); err == nil {
		t.Fatal("record without question text must be rejected by the full schema")
	}
}

func TestBuildSystemPrompt_CarriesConstraints(t *testing.T) {
	prompt := BuildSystemPrompt(ExtractRequest{SubjectName: "Chemistry"})

	for _, want := range []string{
		QuestionsKey,
		"Multiple Choice",
		"True/False",
		"Easy", "Medium", "Hard",
		"option1",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("system prompt missing %q", want)
		}
	}
}

func TestBuildUserPrompt_TruncatesLongPages(t *testing.T) {
	req := ExtractRequest{
		PageText:   strings.Repeat("a", maxPageChars+5000),
		PageNumber: 2,
		TotalPages: 7,
	}
	prompt := BuildUserPrompt(req)

	if len(prompt) > maxPageChars+512 {
		t.Fatalf("user prompt not truncated: %d bytes", len(prompt))
	}
	if !strings.Contains(prompt, "2") || !strings.Contains(prompt, "7") {
		t.Fatal("user prompt must carry page position")
	}
}

func TestBuildUserPrompt_TruncatesOnRuneBoundary(t *testing.T) {
	// Arabic text is two bytes per rune, so a byte-offset cut at maxPageChars
	// would land mid-rune.
	req := ExtractRequest{
		PageText:   strings.Repeat("سؤال ", maxPageChars/9+600),
		PageNumber: 1,
		TotalPages: 1,
	}
	prompt := BuildUserPrompt(req)

	if !utf8.ValidString(prompt) {
		t.Fatal("truncation split a multi-byte rune")
	}
	if len(prompt) > maxPageChars+512 {
		t.Fatalf("user prompt not truncated: %d bytes", len(prompt))
	}
}

func TestTruncateToRune(t *testing.T) {
	s := "abé" // 0x61 0x62 0xC3 0xA9
	for _, tc := range []struct {
		max  int
		want string
	}{
		{4, s},
		{3, "ab"},
		{2, "ab"},
		{0, ""},
	} {
		if got := truncateToRune(s, tc.max); got != tc.want {
			t.Errorf("truncateToRune(%q, %d) = %q, want %q", s, tc.max, got, tc.want)
		}
	}
}
