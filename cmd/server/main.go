package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/Aarifshaik/ganga-calc/internal/adapter/http"
	"github.com/Aarifshaik/ganga-calc/internal/adapter/http/handler"
	redisRepo "github.com/Aarifshaik/ganga-calc/internal/adapter/repository/redis"
	"github.com/Aarifshaik/ganga-calc/internal/domain"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/auth"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/config"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/id"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/logger"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/metrics"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/redis"
	"github.com/Aarifshaik/ganga-calc/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	m := metrics.New()

	stateRepo := redisRepo.NewStateRepository(redisClient, cfg.StorageKey, appLogger)
	idGen := id.NewULIDGenerator()

	ledgerUC := usecase.NewLedgerUseCase(stateRepo, idGen, appLogger)
	if err := ledgerUC.Hydrate(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load persisted state")
	}
	if ledgerUC.StorageRecovered() {
		m.StorageRecoveries.Inc()
		appLogger.Warn().Msg("corrupt persisted state archived, starting fresh")
	}

	var jwtManager *auth.JWTManager
	var tokens usecase.TokenIssuer
	if cfg.AuthEnabled() {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		tokens = jwtManager
		appLogger.Info().Msg("api authentication enabled")
	} else {
		appLogger.Warn().Msg("JWT_SECRET not set, api authentication disabled")
	}

	authUC := usecase.NewAuthUseCase(domain.SeededUsers(), auth.NewPinHasher(), tokens, ledgerUC, appLogger)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DayHandler:     handler.NewDayHandler(ledgerUC, m),
		EntryHandler:   handler.NewEntryHandler(ledgerUC, m),
		AuthHandler:    handler.NewAuthHandler(authUC, m),
		CatalogHandler: handler.NewCatalogHandler(ledgerUC, domain.Vehicles()),
		StateHandler:   handler.NewStateHandler(ledgerUC),
		HealthHandler:  handler.NewHealthHandler(redisClient),
		JWTManager:     jwtManager,
		Metrics:        m,
		Logger:         appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
