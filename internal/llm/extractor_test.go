package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/qbankhq/qbank/constants"
)

// fakeCompleter returns scripted responses and counts calls. Safe for
// concurrent use like the real clients.
type fakeCompleter struct {
	mu        sync.Mutex
	calls     int
	responses []string
	err       error
}

func (f *fakeCompleter) Complete(context.Context, string, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		f.calls++
		return "", f.err
	}
	resp := f.responses[f.calls%len(f.responses)]
	f.calls++
	return resp, nil
}

func newTestExtractor(c Completer) *Extractor {
	r := NewRetrier(RetryConfig{MaxAttempts: 3, BackoffUnit: time.Millisecond}, nil)
	r.sleep = func(context.Context, time.Duration) error { return nil }
	return NewExtractor(c, r, nil)
}

func TestExtractPage_NoContentSkipsNetwork(t *testing.T) {
	completer := &fakeCompleter{}
	e := newTestExtractor(completer)

	result := e.ExtractPage(context.Background(), ExtractRequest{
		PageText:   "  \n\t ",
		PageNumber: 1,
		TotalPages: 3,
	})

	if result.Status != constants.PageNoContent {
		t.Fatalf("expected status %s, got %s", constants.PageNoContent, result.Status)
	}
	if completer.calls != 0 {
		t.Fatalf("expected no network calls for an empty page, got %d", completer.calls)
	}
}

func TestExtractPage_Processed(t *testing.T) {
	completer := &fakeCompleter{
		responses: []string{`{"questions":[{"question":"Define velocity."}]}`},
	}
	e := newTestExtractor(completer)

	result := e.ExtractPage(context.Background(), ExtractRequest{
		PageText:    "## Kinematics\nDefine velocity.",
		PageNumber:  2,
		TotalPages:  3,
		SubjectName: "Physics",
	})

	if result.Status != constants.PageProcessed {
		t.Fatalf("expected status %s, got %s", constants.PageProcessed, result.Status)
	}
	if len(result.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(result.Questions))
	}
	if result.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", result.Attempts)
	}
}

func TestExtractPage_NoQuestionsFound(t *testing.T) {
	completer := &fakeCompleter{responses: []string{`{"questions":[]}`}}
	e := newTestExtractor(completer)

	result := e.ExtractPage(context.Background(), ExtractRequest{
		PageText:   "Blank cover page with only a logo.",
		PageNumber: 1,
		TotalPages: 1,
	})

	if result.Status != constants.PageNoQuestionsFound {
		t.Fatalf("expected status %s, got %s", constants.PageNoQuestionsFound, result.Status)
	}
}

func TestExtractPage_FailureIsDataNotError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("upstream 503")}
	e := newTestExtractor(completer)

	result := e.ExtractPage(context.Background(), ExtractRequest{
		PageText:   "real content",
		PageNumber: 4,
		TotalPages: 9,
	})

	if result.Status != constants.PageFailed {
		t.Fatalf("expected status %s, got %s", constants.PageFailed, result.Status)
	}
	if result.Err == "" {
		t.Fatal("expected a diagnostic error string")
	}
	if result.Attempts != 3 {
		t.Fatalf("expected the full budget of 3 attempts, got %d", result.Attempts)
	}
	if completer.calls != 3 {
		t.Fatalf("expected 3 network calls, got %d", completer.calls)
	}
}
