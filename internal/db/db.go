package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"faithai-profile/internal/config"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

// EnsureSchema crea la extension vector y la tabla de respondentes si faltan.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaPostgres)
	return err
}

const schemaPostgres = `
CREATE EXTENSION IF NOT EXISTS vector;

CREATE TABLE IF NOT EXISTS respondents (
  id UUID PRIMARY KEY,
  pseudonym TEXT NOT NULL DEFAULT '',
  answers JSONB NOT NULL,
  dimensions vector(7) NOT NULL,
  primary_profile TEXT NOT NULL,
  segments JSONB NOT NULL DEFAULT '{}'::jsonb,
  consent BOOLEAN NOT NULL DEFAULT FALSE,
  submitted_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_respondents_consent ON respondents(consent, submitted_at);
CREATE INDEX IF NOT EXISTS idx_respondents_pseudonym ON respondents(pseudonym);
`
