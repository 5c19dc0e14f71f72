package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/simaogato/portfolio-analytics-backend/internal/adapter/grpc"
	httpadapter "github.com/simaogato/portfolio-analytics-backend/internal/adapter/http"
	"github.com/simaogato/portfolio-analytics-backend/internal/adapter/repository/dataset"
	"github.com/simaogato/portfolio-analytics-backend/internal/adapter/repository/memory"
	"github.com/simaogato/portfolio-analytics-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/portfolio-analytics-backend/internal/config"
	"github.com/simaogato/portfolio-analytics-backend/internal/domain"
	"github.com/simaogato/portfolio-analytics-backend/internal/logger"
	"github.com/simaogato/portfolio-analytics-backend/internal/metrics"
	"github.com/simaogato/portfolio-analytics-backend/internal/tracing"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/dashboard"
	"github.com/simaogato/portfolio-analytics-backend/internal/usecase/seeder"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.Environment)
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := tracing.Init(cfg.Tracing.Enabled, cfg.Tracing.ServiceName)
	if err != nil {
		log.Fatalw("Failed to initialize tracing", "error", err)
	}

	// 2. Resolve the dataset once; it is immutable for the life of the process
	ctx := context.Background()
	source, closeSource, err := datasetSource(cfg.Data)
	if err != nil {
		log.Fatalw("Failed to open dataset source", "source", cfg.Data.Source, "error", err)
	}

	data, err := seeder.NewSeeder(source).Seed(ctx)
	closeSource()
	if err != nil {
		log.Fatalw("Failed to seed dataset", "error", err)
	}

	store, err := memory.NewStore(data)
	if err != nil {
		log.Fatalw("Failed to build dataset store", "error", err)
	}
	metrics.RecordDataset(store.HoldingsCount(), store.TimelineLength())
	log.Infow("Dataset loaded",
		"source", data.Metadata.Source,
		"version", data.Metadata.Version,
		"holdings", store.HoldingsCount(),
		"timeline_points", store.TimelineLength(),
	)

	// 3. Initialize Services (Use Cases)
	dashboardService := dashboard.NewDashboardService(store, store)

	// 4. Start HTTP Server
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpadapter.NewRouter(
		httpadapter.NewHandler(dashboardService, store, log),
		log,
		cfg.Server.AllowedOrigins,
	)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Infow("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("Failed to serve HTTP", "error", err)
		}
	}()

	// 5. Start gRPC Server
	grpcServer := grpcadapter.NewGRPCServer(dashboardService, log)

	grpcAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalw("Failed to listen", "addr", grpcAddr, "error", err)
	}

	go func() {
		log.Infow("gRPC server listening", "addr", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalw("Failed to serve gRPC", "error", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(log, httpServer, grpcServer, shutdownTracing)
}

// datasetSource builds the configured source. The returned close func releases
// any connection the source holds and is safe to call once loading is done.
func datasetSource(cfg config.DataConfig) (domain.DatasetSource, func(), error) {
	switch cfg.Source {
	case config.SourceFile:
		return dataset.NewFileSource(cfg.File), func() {}, nil
	case config.SourcePostgres:
		db, err := postgres.NewDB(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewDatasetSource(db), func() { _ = db.Close() }, nil
	default:
		return nil, func() {}, nil
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down both servers
func waitForShutdown(log *logger.Logger, httpServer *http.Server, grpcServer *grpclib.Server, shutdownTracing tracing.ShutdownFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Infow("Shutting down gracefully", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Errorw("HTTP server shutdown failed", "error", err)
	}
	log.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")

	if err := shutdownTracing(ctx); err != nil {
		log.Errorw("Tracer shutdown failed", "error", err)
	}
}
