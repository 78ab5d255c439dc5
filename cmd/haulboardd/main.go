package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	haulboardpb "github.com/haulboard/haulboard/gen/proto/haulboard/v1"
	"github.com/haulboard/haulboard/internal/async"
	"github.com/haulboard/haulboard/internal/common"
	"github.com/haulboard/haulboard/internal/export"
	"github.com/haulboard/haulboard/internal/extract"
	"github.com/haulboard/haulboard/internal/ocr"
	processor "github.com/haulboard/haulboard/internal/pipeline"
	repo "github.com/haulboard/haulboard/internal/repository"
	svc "github.com/haulboard/haulboard/internal/server"
	"github.com/haulboard/haulboard/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
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
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	driversRepo := repo.NewDriverRepository(entc, logger)
	loadsRepo := repo.NewLoadRepository(entc, logger)
	expensesRepo := repo.NewExpenseRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	store := storage.NewStore(cfg.Storage.UploadDir, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:   cfg.OCR.Pdftotext,
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Tesseract:   cfg.OCR.Tesseract,
		TessdataDir: cfg.OCR.TessdataDir,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.MaxPages,
	}, logger)
	ocrAdapter := extract.NewOCRAdapter(extractor, store, logger)
	ocrStage := processor.NewOCRStage(docsRepo, jobsRepo, ocrAdapter, logger)
	parseStage := processor.NewParseStage(logger, jobsRepo, driversRepo, loadsRepo, docsRepo)
	proc := processor.NewProcessor(logger, ocrStage, parseStage)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Worker.Workers),
		async.WithQueueSize(cfg.Worker.QueueSize),
		async.WithProcessTimeout(cfg.Worker.ProcessTimeout),
	)

	exporter := export.NewService(loadsRepo, expensesRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	haulboardpb.RegisterDriversServiceServer(grpcServer, svc.NewDriverService(driversRepo, logger))
	haulboardpb.RegisterLoadsServiceServer(grpcServer, svc.NewLoadService(loadsRepo, expensesRepo, logger))
	haulboardpb.RegisterExpensesServiceServer(grpcServer, svc.NewExpenseService(expensesRepo, logger))
	haulboardpb.RegisterDocumentsServiceServer(grpcServer,
		svc.NewDocumentService(docsRepo, jobsRepo, loadsRepo, expensesRepo, store, proc, queue, logger))
	haulboardpb.RegisterReportsServiceServer(grpcServer, svc.NewReportService(loadsRepo, expensesRepo, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("haulboard listening", "addr", cfg.Server.GRPCAddr, "db_driver", cfg.Database.Driver)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
