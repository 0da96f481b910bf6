package llm

import (
	"strings"
	"testing"
)

func TestParseQuestions_WellFormed(t *testing.T) {
	raw := `{"questions":[{"question":"What is 2+2?"},{"question":"State Newton's first law."}]}`

	questions, dropped, failure := ParseQuestions(raw)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if dropped != 0 {
		t.Fatalf("expected no dropped records, got %d", dropped)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0]["question"] != "What is 2+2?" {
		t.Fatalf("unexpected first question: %v", questions[0]["question"])
	}
}

func TestParseQuestions_FencedWithTrailingComma(t *testing.T) {
	wellFormed := `{"questions":[{"question":"A"},{"question":"B"}]}`
	broken := "```json\n{\"questions\":[{\"question\":\"A\"},{\"question\":\"B\"},]}\n```"

	want, _, failure := ParseQuestions(wellFormed)
	if failure != nil {
		t.Fatalf("well-formed input failed: %v", failure)
	}
	got, _, failure := ParseQuestions(broken)
	if failure != nil {
		t.Fatalf("repairable input failed: %v", failure)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i]["question"] != want[i]["question"] {
			t.Fatalf("question %d mismatch: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestParseQuestions_ProseWrapped(t *testing.T) {
	raw := "Here are the extracted questions:\n" +
		`{"questions":[{"question":"Solve [x+1] = 3 for x {show steps}"}]}` +
		"\nLet me know if you need anything else."

	questions, _, failure := ParseQuestions(raw)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	// brackets inside the string must not have truncated the span
	if !strings.Contains(questions[0]["question"].(string), "{show steps}") {
		t.Fatalf("span extraction truncated the record: %v", questions[0])
	}
}

func TestParseQuestions_TrailingCommaInProseSpan(t *testing.T) {
	raw := "Result:\n" + `{"questions":[{"question":"A"},]}` + "\nDone."

	questions, _, failure := ParseQuestions(raw)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
}

func TestParseQuestions_Malformed(t *testing.T) {
	raw := `{"questions": [{"question": "unterminated`

	questions, _, failure := ParseQuestions(raw)
	if failure == nil {
		t.Fatal("expected a failure")
	}
	if failure.Kind != Malformed {
		t.Fatalf("expected kind %s, got %s", Malformed, failure.Kind)
	}
	if questions != nil {
		t.Fatalf("expected no questions, got %v", questions)
	}
}

func TestParseQuestions_ExcerptIsBounded(t *testing.T) {
	raw := `{"questions": [` + strings.Repeat(`"x",`, 2000) + "oops"

	_, _, failure := ParseQuestions(raw)
	if failure == nil {
		t.Fatal("expected a failure")
	}
	if len(failure.Excerpt) > excerptWindow {
		t.Fatalf("excerpt length %d exceeds window %d", len(failure.Excerpt), excerptWindow)
	}
	if failure.Excerpt == "" {
		t.Fatal("expected a non-empty excerpt")
	}
}

func TestParseQuestions_SchemaMismatch(t *testing.T) {
	for name, raw := range map[string]string{
		"wrong key":    `{"records":[{"question":"A"}]}`,
		"not a list":   `{"questions":{"question":"A"}}`,
		"bare list":    `[{"question":"A"}]`,
		"bare scalar":  `42`,
		"quoted value": `"no json here"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, _, failure := ParseQuestions(raw)
			if failure == nil {
				t.Fatal("expected a failure")
			}
			if failure.Kind != SchemaMismatch {
				t.Fatalf("expected kind %s, got %s", SchemaMismatch, failure.Kind)
			}
		})
	}
}

func TestParseQuestions_DropsNonObjectElements(t *testing.T) {
	raw := `{"questions":[{"question":"A"},"noise",42,{"question":"B"}]}`

	questions, dropped, failure := ParseQuestions(raw)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if dropped != 2 {
		t.Fatalf("expected 2 dropped elements, got %d", dropped)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestParseQuestions_EmptyList(t *testing.T) {
	questions, dropped, failure := ParseQuestions(`{"questions":[]}`)
	if failure != nil {
		t.Fatalf("unexpected failure: %v", failure)
	}
	if dropped != 0 || len(questions) != 0 {
		t.Fatalf("expected empty result, got %d questions %d dropped", len(questions), dropped)
	}
}
