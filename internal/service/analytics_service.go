package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"faithai-profile/internal/cache"
	"faithai-profile/internal/domain"
	"faithai-profile/internal/repository"
	"faithai-profile/internal/scoring"
)

// AnalyticsService recalcula las estadisticas poblacionales completas en cada llamada
// y publica parametros medidos cuando la muestra alcanza el umbral de recalibracion.
type AnalyticsService struct {
	logger      *zap.Logger
	engine      *scoring.Engine
	respondents repository.RespondentRepository
	population  cache.PopulationCache
	now         func() time.Time
}

func NewAnalyticsService(
	logger *zap.Logger,
	engine *scoring.Engine,
	respondents repository.RespondentRepository,
	population cache.PopulationCache,
) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		logger:      logger,
		engine:      engine,
		respondents: respondents,
		population:  population,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var knownSegments = map[string]struct{}{
	scoring.SegmentRole:         {},
	scoring.SegmentDenomination: {},
	scoring.SegmentAge:          {},
}

// ParseSegments lee una lista separada por comas; vacia selecciona todos los segmentos.
func ParseSegments(raw string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" || seen[name] {
			continue
		}
		if _, ok := knownSegments[name]; !ok {
			return nil, fmt.Errorf("%w: unknown segment %q", ErrInvalidInput, name)
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

// Aggregate calcula las estadisticas y, si la muestra alcanza el umbral, publica los
// parametros medidos. Un fallo al publicar solo se registra.
func (s *AnalyticsService) Aggregate(ctx context.Context, segments []string) (domain.PopulationStats, error) {
	stats, err := s.Summarize(ctx, segments)
	if err != nil {
		return domain.PopulationStats{}, err
	}
	if s.population != nil && stats.HasData && s.engine.ShouldRecalibrate(stats.N) {
		if _, _, err := s.Publish(ctx, stats); err != nil {
			s.logger.Warn("population params publish failed", zap.Error(err), zap.Int("n", stats.N))
		}
	}
	return stats, nil
}

// Summarize carga todos los respondentes con consentimiento y agrega sobre la coleccion completa.
func (s *AnalyticsService) Summarize(ctx context.Context, segments []string) (domain.PopulationStats, error) {
	if s == nil || s.engine == nil || s.respondents == nil {
		return domain.PopulationStats{}, ErrServiceNotConfigured
	}
	for _, name := range segments {
		if _, ok := knownSegments[name]; !ok {
			return domain.PopulationStats{}, fmt.Errorf("%w: unknown segment %q", ErrInvalidInput, name)
		}
	}

	rows, err := s.respondents.ListConsenting(ctx)
	if err != nil {
		return domain.PopulationStats{}, fmt.Errorf("list respondents: %w", err)
	}
	collection := make([]domain.Answers, len(rows))
	for i, r := range rows {
		collection[i] = r.Answers
	}

	start := time.Now()
	stats, err := s.engine.AggregateContext(ctx, collection, scoring.SelectSegments(scoring.DefaultSegmentKeys, segments...))
	if err != nil {
		return domain.PopulationStats{}, err
	}
	s.logger.Info("population aggregated",
		zap.Int("n", stats.N),
		zap.Int("segments", len(stats.Segments)),
		zap.Int("findings", len(stats.KeyFindings)),
		zap.String("confidence", string(stats.Caveat.Confidence)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return stats, nil
}

// Recalibrate agrega sin segmentos y publica el resultado. Ver Publish.
func (s *AnalyticsService) Recalibrate(ctx context.Context) (params domain.PopulationParams, updated bool, err error) {
	stats, err := s.Summarize(ctx, []string{})
	if err != nil {
		return domain.PopulationParams{}, false, err
	}
	return s.Publish(ctx, stats)
}

// Publish deja en la cache los parametros que deben usar los reportes y los devuelve.
// Bajo el umbral borra los parametros medidos anteriores y devuelve los provisionales
// con updated=false. updated solo es true si la escritura en la cache tuvo exito.
func (s *AnalyticsService) Publish(ctx context.Context, stats domain.PopulationStats) (params domain.PopulationParams, updated bool, err error) {
	if s == nil || s.engine == nil || s.population == nil {
		return domain.PopulationParams{}, false, ErrServiceNotConfigured
	}
	if !stats.HasData || !s.engine.ShouldRecalibrate(stats.N) {
		if err := s.population.Clear(ctx); err != nil {
			return domain.PopulationParams{}, false, fmt.Errorf("%w: %v", ErrParamsNotPublished, err)
		}
		return s.engine.DefaultParams(), false, nil
	}
	params = stats.Params(s.now())
	if err := s.population.Set(ctx, params); err != nil {
		return domain.PopulationParams{}, false, fmt.Errorf("%w: %v", ErrParamsNotPublished, err)
	}
	s.logger.Info("population params recalibrated", zap.Int("n", stats.N))
	return params, true, nil
}
