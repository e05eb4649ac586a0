package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"

	"faithai-profile/internal/scoring"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret            string `env:"JWT_SECRET"`
	JWTIssuer            string `env:"JWT_ISSUER" envDefault:"faithai-profile"`
	JWTAccessTTLMinutes  int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	JWTRefreshTTLMinutes int    `env:"JWT_REFRESH_TTL_MINUTES" envDefault:"10080"`

	// Claves que se canjean por tokens de analista o administrador.
	AnalystAPIKey string `env:"ANALYST_API_KEY"`
	AdminAPIKey   string `env:"ADMIN_API_KEY"`

	SubmissionRateLimit         int `env:"SUBMISSION_RATE_LIMIT" envDefault:"20"`
	SubmissionRateWindowSeconds int `env:"SUBMISSION_RATE_WINDOW_SECONDS" envDefault:"3600"`

	// Vacios: catalogo y calibracion incorporados.
	CatalogPath     string `env:"CATALOG_PATH"`
	CalibrationPath string `env:"CALIBRATION_PATH"`

	PseudonymKey string `env:"PSEUDONYM_KEY"`

	// Nil: manda recalibration_threshold del archivo de calibracion.
	RecalibrationThreshold    *int `env:"RECALIBRATION_THRESHOLD"`
	PopulationCacheTTLMinutes int  `env:"POPULATION_CACHE_TTL_MINUTES" envDefault:"1440"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEngine carga catalogo y calibracion y construye el motor de puntuacion.
// RECALIBRATION_THRESHOLD, si esta definida, reemplaza el umbral de la calibracion.
func (c *Config) LoadEngine() (*scoring.Engine, error) {
	catalog, err := scoring.LoadCatalog(c.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	calibration, err := scoring.LoadCalibration(c.CalibrationPath)
	if err != nil {
		return nil, fmt.Errorf("load calibration: %w", err)
	}
	if c.RecalibrationThreshold != nil {
		calibration.RecalibrationThreshold = *c.RecalibrationThreshold
	}
	return scoring.NewEngine(catalog, calibration)
}
