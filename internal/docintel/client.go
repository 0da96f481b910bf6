// Package docintel is a thin client for an Azure Document Intelligence-style
// layout analysis service: submit a document, poll the operation, read back
// per-page markdown.
package docintel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const apiVersion = "2024-11-30"

// Config for the document-analysis client.
type Config struct {
	Endpoint     string
	APIKey       string
	Model        string // default "prebuilt-layout"
	PollInterval time.Duration
	Timeout      time.Duration // overall budget for submit + polling
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = "prebuilt-layout"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}
}

// analyzeResult mirrors the slice of the service response we consume.
type analyzeResult struct {
	Status        string `json:"status"`
	AnalyzeResult struct {
		Content string `json:"content"`
		Pages   []struct {
			PageNumber int `json:"pageNumber"`
			Spans      []struct {
				Offset int `json:"offset"`
				Length int `json:"length"`
			} `json:"spans"`
		} `json:"pages"`
		Languages []struct {
			Locale string `json:"locale"`
		} `json:"languages"`
	} `json:"analyzeResult"`
}

// AnalyzeDocument implements Analyzer. A failure here happens before any page
// is available, so it propagates as a hard error rather than page data.
func (c *Client) AnalyzeDocument(ctx context.Context, doc []byte) (*Analysis, error) {
	rid := uuid.New().String()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	opURL, err := c.submit(ctx, doc)
	if err != nil {
		c.logger.Error("docintel.submit_error", "req_id", rid, "error", err)
		return nil, fmt.Errorf("submit document: %w", err)
	}

	result, err := c.poll(ctx, opURL)
	if err != nil {
		c.logger.Error("docintel.poll_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("poll analysis: %w", err)
	}

	analysis := toAnalysis(result)
	c.logger.Info("docintel.ok",
		"req_id", rid,
		"pages", analysis.PageCount,
		"languages", analysis.Languages,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return analysis, nil
}

func (c *Client) submit(ctx context.Context, doc []byte) (string, error) {
	url := fmt.Sprintf(
		"%s/documentintelligence/documentModels/%s:analyze?api-version=%s&outputContentFormat=markdown",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Model, apiVersion,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(doc))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("analyze returned %d: %s", resp.StatusCode, body)
	}
	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("analyze response missing Operation-Location")
	}
	return opURL, nil
}

func (c *Client) poll(ctx context.Context, opURL string) (*analyzeResult, error) {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		raw, err := io.ReadAll(resp.Body)
		drainAndClose(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("poll returned %d: %s", resp.StatusCode, truncate(raw, 512))
		}

		var result analyzeResult
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("decode poll response: %w", err)
		}
		switch result.Status {
		case "succeeded":
			return &result, nil
		case "failed":
			return nil, fmt.Errorf("analysis failed: %s", truncate(raw, 512))
		default:
			// running / notStarted: keep polling
		}
	}
}

// toAnalysis assembles per-page content from the span offsets into the full
// markdown body, matching the service's page segmentation.
func toAnalysis(r *analyzeResult) *Analysis {
	full := r.AnalyzeResult.Content

	languages := make([]string, 0, len(r.AnalyzeResult.Languages))
	for _, l := range r.AnalyzeResult.Languages {
		if l.Locale != "" {
			languages = append(languages, l.Locale)
		}
	}

	pages := make([]Page, 0, len(r.AnalyzeResult.Pages))
	for i, p := range r.AnalyzeResult.Pages {
		number := p.PageNumber
		if number == 0 {
			number = i + 1
		}
		var b strings.Builder
		for _, span := range p.Spans {
			if span.Offset < 0 || span.Offset+span.Length > len(full) {
				continue
			}
			b.WriteString(full[span.Offset : span.Offset+span.Length])
		}
		pages = append(pages, Page{
			Number:  number,
			Content: strings.TrimSpace(b.String()),
		})
	}

	return &Analysis{
		PageCount: len(pages),
		Languages: languages,
		Pages:     pages,
	}
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
