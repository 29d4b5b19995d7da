package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/auth"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/kafka"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/observability"

	"github.com/davidaanderson/PaymentScheduleGenerator/internal/application/usecase"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/service"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/infrastructure/config"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/infrastructure/messaging"
	grpcPresentation "github.com/davidaanderson/PaymentScheduleGenerator/internal/presentation/grpc"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/presentation/rest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "quote-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Initialize structured logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("starting quote-service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
		"currency", cfg.QuoteCurrency.Code(),
	)

	// Metrics.
	metrics, err := observability.InitMetrics()
	if err != nil {
		return fmt.Errorf("initialize metrics: %w", err)
	}

	// Kafka producer and event publisher.
	kafkaProducer := kafka.NewProducer(kafka.Config{
		Brokers: cfg.KafkaBrokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.KafkaTopic)
	logger.Info("kafka producer created", "topic", cfg.KafkaTopic)

	// Domain services and use cases.
	validator := service.NewQuoteValidator()
	settings := usecase.QuoteSettings{
		Currency:       cfg.QuoteCurrency,
		ArrangementFee: cfg.QuoteArrangementFee,
		CompletionFee:  cfg.QuoteCompletionFee,
	}
	createSchedule := usecase.NewCreatePaymentScheduleUseCase(validator, settings, publisher)
	validateQuote := usecase.NewValidateQuoteUseCase(validator)
	getTerms := usecase.NewGetQuoteTermsUseCase(settings)

	// JWT service for gRPC auth.
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "dev-secret"
		logger.Warn("JWT_SECRET not set, using insecure development secret")
	}
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     jwtSecret,
		Issuer:     cfg.JWTIssuer,
		Expiration: cfg.JWTExpiration,
	})
	if err != nil {
		return fmt.Errorf("initialize JWT service: %w", err)
	}

	// gRPC server.
	handler := grpcPresentation.NewHandler(createSchedule, validateQuote, getTerms, logger, metrics.Meter("quote-service"))
	grpcServer := grpcPresentation.NewServer(handler, logger, cfg.GRPCPort, jwtSvc)

	// HTTP server: health endpoints and the metrics scrape endpoint.
	mux := http.NewServeMux()
	rest.NewHealthHandler().RegisterRoutes(mux)
	mux.Handle("GET /metrics", metrics.Handler)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		errCh <- grpcServer.Start()
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	// Graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error", "error", err)
		return err
	}

	// Shutdown sequence.
	logger.Info("shutting down")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := metrics.Provider.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics provider shutdown error", "error", err)
	}

	logger.Info("quote-service stopped")
	return nil
}
