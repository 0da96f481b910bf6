package docintel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func analyzeHandler(t *testing.T, polls *atomic.Int32, succeedAfter int32) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			if r.Header.Get("Ocp-Apim-Subscription-Key") == "" {
				t.Error("missing api key header on submit")
			}
			w.Header().Set("Operation-Location", "http://"+r.Host+"/operations/op-1")
			w.WriteHeader(http.StatusAccepted)
		case r.Method == http.MethodGet:
			n := polls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			if n < succeedAfter {
				_ = json.NewEncoder(w).Encode(map[string]any{"status": "running"})
				return
			}
			content := "Page one text.Page two text."
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "succeeded",
				"analyzeResult": map[string]any{
					"content": content,
					"pages": []map[string]any{
						{"pageNumber": 1, "spans": []map[string]int{{"offset": 0, "length": 14}}},
						{"pageNumber": 2, "spans": []map[string]int{{"offset": 14, "length": 14}}},
					},
					"languages": []map[string]string{{"locale": "en"}},
				},
			})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func TestAnalyzeDocument(t *testing.T) {
	var polls atomic.Int32
	srv := httptest.NewServer(analyzeHandler(t, &polls, 3))
	defer srv.Close()

	c := NewClient(Config{
		Endpoint:     srv.URL,
		APIKey:       "test-key",
		PollInterval: 5 * time.Millisecond,
		Timeout:      5 * time.Second,
	}, nil)

	analysis, err := c.AnalyzeDocument(context.Background(), []byte("%PDF-1.7"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.PageCount != 2 {
		t.Fatalf("expected 2 pages, got %d", analysis.PageCount)
	}
	if analysis.Pages[0].Content != "Page one text." {
		t.Fatalf("unexpected page 1 content: %q", analysis.Pages[0].Content)
	}
	if analysis.Pages[1].Number != 2 {
		t.Fatalf("expected page number 2, got %d", analysis.Pages[1].Number)
	}
	if len(analysis.Languages) != 1 || analysis.Languages[0] != "en" {
		t.Fatalf("unexpected languages: %v", analysis.Languages)
	}
	if polls.Load() < 3 {
		t.Fatalf("expected at least 3 polls, got %d", polls.Load())
	}
}

func TestAnalyzeDocument_FailedAnalysis(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Header().Set("Operation-Location", "http://"+r.Host+"/operations/op-2")
			w.WriteHeader(http.StatusAccepted)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "failed"})
	}))
	defer srv.Close()

	c := NewClient(Config{
		Endpoint:     srv.URL,
		APIKey:       "test-key",
		PollInterval: 5 * time.Millisecond,
		Timeout:      2 * time.Second,
	}, nil)

	if _, err := c.AnalyzeDocument(context.Background(), []byte("doc")); err == nil {
		t.Fatal("expected a hard error when analysis fails before any page exists")
	}
}

func TestAnalyzeDocument_RejectedSubmission(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"code":"InvalidRequest"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, APIKey: "k", Timeout: time.Second}, nil)
	if _, err := c.AnalyzeDocument(context.Background(), []byte("doc")); err == nil {
		t.Fatal("expected an error on rejected submission")
	}
}
