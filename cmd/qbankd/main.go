package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	qbankpb "github.com/qbankhq/qbank/gen/proto/qbank/v1"
	"github.com/qbankhq/qbank/internal/common"
	"github.com/qbankhq/qbank/internal/docintel"
	"github.com/qbankhq/qbank/internal/export"
	"github.com/qbankhq/qbank/internal/llm"
	"github.com/qbankhq/qbank/internal/llm/anthropic"
	"github.com/qbankhq/qbank/internal/llm/openai"
	"github.com/qbankhq/qbank/internal/pipeline"
	repo "github.com/qbankhq/qbank/internal/repository"
	svc "github.com/qbankhq/qbank/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer conn.Close(logger)

	if err := conn.Ping(ctx, cfg.Database.DialTimeout); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewJobRepository(conn.Ent, logger)
	outcomesRepo := repo.NewOutcomeRepository(conn.Ent, logger)
	questionsRepo := repo.NewQuestionRepository(conn.Ent, logger)

	completer := buildCompleter(cfg, logger)
	retrier := llm.NewRetrier(llm.RetryConfig{
		MaxAttempts: cfg.Pipeline.MaxAttempts,
		BackoffUnit: cfg.Pipeline.BackoffUnit,
	}, logger)
	extractor := llm.NewExtractor(completer, retrier, logger)

	normalizer := pipeline.NewNormalizer(logger)
	aggregator := pipeline.NewAggregator(extractor, normalizer, logger,
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

	extraction := pipeline.NewService(analyzer, aggregator, jobsRepo, cfg.LLM.Model, logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	qbankpb.RegisterExtractionServiceServer(grpcServer,
		svc.NewExtractionServer(extraction, jobsRepo, outcomesRepo, logger))
	qbankpb.RegisterQuestionServiceServer(grpcServer,
		svc.NewQuestionServer(questionsRepo, logger))
	qbankpb.RegisterExportServiceServer(grpcServer,
		svc.NewExportServer(export.NewService(questionsRepo, logger), logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("qbankd listening", "addr", addr, "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

func buildCompleter(cfg *common.Config, logger *slog.Logger) llm.Completer {
	if cfg.LLM.Provider == "anthropic" {
		return anthropic.NewClient(anthropic.Config{
			APIKey: cfg.LLM.APIKey,
			Model:  cfg.LLM.Model,
		}, logger)
	}
	return openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
}
