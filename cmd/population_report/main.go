package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"faithai-profile/internal/cache"
	"faithai-profile/internal/config"
	"faithai-profile/internal/db"
	"faithai-profile/internal/repository"
	"faithai-profile/internal/service"
)

// population_report agrega los respondentes con consentimiento y escribe las estadisticas en JSON.
// Con -recalibrate publica los parametros medidos en Redis si la muestra alcanza el umbral.
func main() {
	segmentsFlag := flag.String("segments", "", "comma separated segments (role,denomination,age); empty = all")
	recalibrate := flag.Bool("recalibrate", false, "publish measured population params")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	segments, err := service.ParseSegments(*segmentsFlag)
	if err != nil {
		logger.Fatal("segments", zap.Error(err))
	}

	engine, err := cfg.LoadEngine()
	if err != nil {
		logger.Fatal("scoring engine", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()
	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	var population cache.PopulationCache
	if *recalibrate {
		if cfg.RedisAddr == "" {
			logger.Fatal("recalibrate needs REDIS_ADDR")
		}
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		defer client.Close()
		population = cache.NewRedisPopulationCache(client, time.Duration(cfg.PopulationCacheTTLMinutes)*time.Minute)
	}

	respondents := repository.NewPgRespondentRepository(pool)
	consenting, err := respondents.CountConsenting(ctx)
	if err != nil {
		logger.Fatal("count respondents", zap.Error(err))
	}
	logger.Info("consenting respondents", zap.Int("n", consenting))

	analytics := service.NewAnalyticsService(logger, engine, respondents, population)
	stats, err := analytics.Summarize(ctx, segments)
	if err != nil {
		logger.Fatal("aggregate", zap.Error(err))
	}
	if *recalibrate {
		params, updated, err := analytics.Publish(ctx, stats)
		if err != nil {
			logger.Fatal("publish params", zap.Error(err))
		}
		logger.Info("recalibration",
			zap.Bool("updated", updated),
			zap.String("source", string(params.Source)),
			zap.Int("n", stats.N),
			zap.Int("threshold", engine.Calibration().RecalibrationThreshold),
		)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(stats); err != nil {
		logger.Fatal("encode", zap.Error(err))
	}
}
