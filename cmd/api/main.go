package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"faithai-profile/internal/cache"
	"faithai-profile/internal/config"
	"faithai-profile/internal/db"
	apihttp "faithai-profile/internal/http"
	"faithai-profile/internal/repository"
	"faithai-profile/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	engine, err := cfg.LoadEngine()
	if err != nil {
		logger.Fatal("scoring engine", zap.Error(err),
			zap.String("catalog", cfg.CatalogPath),
			zap.String("calibration", cfg.CalibrationPath),
		)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()
	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("db schema", zap.Error(err))
	}
	respondentRepo := repository.NewPgRespondentRepository(pool)

	cacheTTL := time.Duration(cfg.PopulationCacheTTLMinutes) * time.Minute
	rateWindow := time.Duration(cfg.SubmissionRateWindowSeconds) * time.Second
	var (
		populationCache cache.PopulationCache
		tokenStore      service.RefreshTokenStore
		limiter         service.SubmissionLimiter
		redisClient     *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			populationCache = cache.NewRedisPopulationCache(redisClient, cacheTTL)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			limiter = service.NewRedisSubmissionLimiter(redisClient, rateWindow, cfg.SubmissionRateLimit)
		}
		cancel()
	}
	if populationCache == nil {
		populationCache = cache.NewMemoryPopulationCache(cacheTTL)
	}
	if limiter == nil {
		limiter = service.NewSubmissionLimiter(rateWindow, cfg.SubmissionRateLimit)
	}

	pseudonyms, err := service.NewPseudonymizer(cfg.PseudonymKey)
	if err != nil {
		logger.Fatal("pseudonymizer", zap.Error(err))
	}
	if !pseudonyms.Enabled() {
		logger.Warn("pseudonym key not configured, respondent keys will not be stored")
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		cfg.JWTIssuer,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	profileSvc := service.NewProfileService(logger, engine, respondentRepo, populationCache, pseudonyms, limiter)
	analyticsSvc := service.NewAnalyticsService(logger, engine, respondentRepo, populationCache)
	authSvc := service.NewAuthService(logger, jwtSvc, cfg.AnalystAPIKey, cfg.AdminAPIKey)

	router := apihttp.NewRouter(logger,
		apihttp.NewProfileHandler(logger, profileSvc),
		apihttp.NewAnalyticsHandler(logger, analyticsSvc),
		apihttp.NewAuthHandler(logger, authSvc),
		jwtSvc,
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("profiles", len(engine.Catalog().Profiles)),
		zap.Int("recalibration_threshold", engine.Calibration().RecalibrationThreshold),
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
