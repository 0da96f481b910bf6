// extract runs the pipeline once over a local document and prints the job
// summary as JSON. Useful for smoke-testing a deployment without the gRPC
// surface; pair it with a sqlite DSN for a fully local run.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/qbankhq/qbank/internal/common"
	"github.com/qbankhq/qbank/internal/docintel"
	"github.com/qbankhq/qbank/internal/llm"
	"github.com/qbankhq/qbank/internal/llm/anthropic"
	"github.com/qbankhq/qbank/internal/llm/openai"
	"github.com/qbankhq/qbank/internal/pipeline"
	repo "github.com/qbankhq/qbank/internal/repository"
)

func main() {
	var (
		filePath       = flag.String("file", "", "path to the document to extract (required)")
		subject        = flag.String("subject", "", "subject name label (required)")
		class          = flag.String("class", "", "class name label")
		specialization = flag.String("specialization", "", "specialization label")
		uploadedBy     = flag.String("uploaded-by", "cli", "who is running this extraction")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *filePath == "" || *subject == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	document, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Error("failed to read document", "file", *filePath, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer conn.Close(logger)

	jobsRepo := repo.NewJobRepository(conn.Ent, logger)
	outcomesRepo := repo.NewOutcomeRepository(conn.Ent, logger)
	questionsRepo := repo.NewQuestionRepository(conn.Ent, logger)

	var completer llm.Completer
	if cfg.LLM.Provider == "anthropic" {
		completer = anthropic.NewClient(anthropic.Config{APIKey: cfg.LLM.APIKey, Model: cfg.LLM.Model}, logger)
	} else {
		completer = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}
	retrier := llm.NewRetrier(llm.RetryConfig{
		MaxAttempts: cfg.Pipeline.MaxAttempts,
		BackoffUnit: cfg.Pipeline.BackoffUnit,
	}, logger)
	extractor := llm.NewExtractor(completer, retrier, logger)

	aggregator := pipeline.NewAggregator(extractor, pipeline.NewNormalizer(logger), logger,
		pipeline.WithPageWorkers(cfg.Pipeline.PageWorkers),
		pipeline.WithRateLimit(cfg.Pipeline.RatePerSec),
		pipeline.WithStores(questionsRepo, outcomesRepo),
	)
	analyzer := docintel.NewClient(docintel.Config{
		Endpoint:     cfg.DocIntel.Endpoint,
		APIKey:       cfg.DocIntel.APIKey,
		PollInterval: cfg.DocIntel.PollInterval,
		Timeout:      cfg.DocIntel.Timeout,
	}, logger)
	service := pipeline.NewService(analyzer, aggregator, jobsRepo, cfg.LLM.Model, logger)

	summary, err := service.ExtractDocument(ctx, pipeline.ExtractDocumentRequest{
		Document:       document,
		FileName:       *filePath,
		SubjectName:    *subject,
		ClassName:      *class,
		Specialization: *specialization,
		UploadedBy:     *uploadedBy,
	})
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		logger.Error("failed to encode summary", "error", err)
		os.Exit(1)
	}
}
