package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/bankdash-backend/internal/adapter/grpc"
	"github.com/simaogato/bankdash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/bankdash-backend/internal/adapter/rest"
	"github.com/simaogato/bankdash-backend/internal/config"
	"github.com/simaogato/bankdash-backend/internal/logger"
	"github.com/simaogato/bankdash-backend/internal/metrics"
	"github.com/simaogato/bankdash-backend/internal/usecase/dashboard"
	"github.com/simaogato/bankdash-backend/internal/usecase/generator"
	"github.com/simaogato/bankdash-backend/internal/usecase/seeder"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.New(cfg.LogLevel)
	if cfg.LogFormat == config.LogFormatJSON {
		log = logger.NewWithWriter(os.Stdout, cfg.LogLevel)
	}

	// 2. Seed the in-memory store with the demo session
	fixtures, err := seeder.NewDemoSeeder().Seed()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build demo data")
	}
	store, err := memory.NewStore(fixtures)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed store")
	}
	log.Info().
		Int("accounts", len(fixtures.Accounts)).
		Int("transactions", len(fixtures.Transactions)).
		Msg("Demo data seeded successfully")

	// 3. Initialize Repositories (in-memory)
	accountRepo := memory.NewAccountRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)
	profileRepo := memory.NewProfileRepository(store)

	// 4. Initialize Services (Use Cases)
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	dashboardService := dashboard.NewDashboardService(accountRepo, transactionRepo, profileRepo)
	dashboardService.Generator = generator.NewGenerator(cfg.GeneratorSeed)
	dashboardService.Metrics = metrics.NewPrometheusMetrics(registry)
	dashboardService.Logger = log
	dashboardService.Metrics.TransactionCount(transactionRepo.Count(context.Background()))

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(log),
			grpcadapter.AuthInterceptor(cfg.APIToken, grpcadapter.IsMutation),
			grpcadapter.EditModeInterceptor(),
		),
	)
	grpcadapter.RegisterDashboardServiceServer(grpcServer, grpcadapter.NewServer(dashboardService))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("Failed to listen")
	}

	go func() {
		log.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve gRPC server")
		}
	}()

	// 6. Start HTTP Server
	httpServer := rest.NewRouter(rest.NewHandler(dashboardService), rest.RouterConfig{
		APIToken: cfg.APIToken,
		Gatherer: registry,
		Logger:   log,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to serve HTTP server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(log, grpcServer, httpServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down both servers
func waitForShutdown(log zerolog.Logger, grpcServer *grpclib.Server, httpServer *echo.Echo) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	log.Info().Msg("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Info().Msg("gRPC server stopped")
}
