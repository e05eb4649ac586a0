package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"faithai-profile/internal/cache"
	"faithai-profile/internal/domain"
	"faithai-profile/internal/repository"
	"faithai-profile/internal/scoring"
)

var (
	ErrServiceNotConfigured = errors.New("service not configured")
	ErrInvalidInput         = errors.New("invalid input")
	ErrRespondentNotFound   = errors.New("respondent not found")
	ErrParamsNotPublished   = errors.New("population params not published")
)

const maxSimilar = 50

// ProfileService expone el calculo de espectro y escalas validadas a los consumidores de reportes.
type ProfileService struct {
	logger      *zap.Logger
	engine      *scoring.Engine
	respondents repository.RespondentRepository
	population  cache.PopulationCache
	pseudonyms  *Pseudonymizer
	limiter     SubmissionLimiter
	now         func() time.Time
}

func NewProfileService(
	logger *zap.Logger,
	engine *scoring.Engine,
	respondents repository.RespondentRepository,
	population cache.PopulationCache,
	pseudonyms *Pseudonymizer,
	limiter SubmissionLimiter,
) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{
		logger:      logger,
		engine:      engine,
		respondents: respondents,
		population:  population,
		pseudonyms:  pseudonyms,
		limiter:     limiter,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Report es el resultado que consumen los generadores de documentos.
type Report struct {
	Spectrum        domain.ProfileSpectrum `json:"spectrum"`
	ValidatedScores domain.ValidatedScores `json:"validatedScores"`
	ParamsSource    string                 `json:"paramsSource"`
	ParamsN         int                    `json:"paramsN"`
}

// ClientKey identifica el origen para el limite de frecuencia; vacio no limita.
type SubmitInput struct {
	Answers       domain.Answers
	RespondentKey string
	ClientKey     string
	Consent       bool
}

type Submission struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Report
}

// CurrentParams devuelve los parametros medidos en cache o, si no hay, los provisionales.
// Un fallo de cache nunca bloquea un reporte.
func (s *ProfileService) CurrentParams(ctx context.Context) domain.PopulationParams {
	if s.population != nil {
		params, err := s.population.Get(ctx)
		if err != nil {
			s.logger.Warn("population cache read failed", zap.Error(err))
		} else if params != nil {
			return *params
		}
	}
	return s.engine.DefaultParams()
}

// Evaluate calcula el reporte sin persistir nada.
func (s *ProfileService) Evaluate(ctx context.Context, answers domain.Answers) (Report, error) {
	if s == nil || s.engine == nil {
		return Report{}, ErrServiceNotConfigured
	}
	if answers == nil {
		return Report{}, fmt.Errorf("%w: answers required", ErrInvalidInput)
	}
	params := s.CurrentParams(ctx)
	return Report{
		Spectrum:        s.engine.ComputeProfileSpectrum(answers, params),
		ValidatedScores: s.engine.ComputeValidatedScores(answers),
		ParamsSource:    params.Source,
		ParamsN:         params.N,
	}, nil
}

// Submit calcula el reporte y guarda la respuesta con su vector de dimensiones.
func (s *ProfileService) Submit(ctx context.Context, in SubmitInput) (Submission, error) {
	if s == nil || s.engine == nil || s.respondents == nil {
		return Submission{}, ErrServiceNotConfigured
	}
	if s.limiter != nil && strings.TrimSpace(in.ClientKey) != "" && !s.limiter.Allow(in.ClientKey) {
		s.logger.Warn("submission rate limited")
		return Submission{}, ErrRateLimited
	}
	report, err := s.Evaluate(ctx, in.Answers)
	if err != nil {
		return Submission{}, err
	}

	respondent := domain.Respondent{
		ID:             uuid.NewString(),
		Pseudonym:      s.pseudonyms.Pseudonym(in.RespondentKey),
		Answers:        in.Answers,
		Vector:         report.Spectrum.Dimensions.Vector(),
		PrimaryProfile: report.Spectrum.PrimaryProfile(),
		Segments:       nonEmpty(scoring.DefaultSegmentKeys(in.Answers)),
		Consent:        in.Consent,
		SubmittedAt:    s.now(),
	}
	if err := s.respondents.Create(ctx, respondent); err != nil {
		s.logger.Error("persist submission failed", zap.Error(err))
		return Submission{}, fmt.Errorf("persist submission: %w", err)
	}
	s.logger.Info("submission stored",
		zap.String("respondent_id", respondent.ID),
		zap.String("primary_profile", string(respondent.PrimaryProfile)),
		zap.Bool("consent", respondent.Consent),
	)
	return Submission{ID: respondent.ID, SubmittedAt: respondent.SubmittedAt, Report: report}, nil
}

// Similar devuelve los k respondentes con consentimiento mas cercanos en el espacio de dimensiones.
func (s *ProfileService) Similar(ctx context.Context, id string, k int) ([]domain.SimilarRespondent, error) {
	if s == nil || s.respondents == nil {
		return nil, ErrServiceNotConfigured
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid respondent id", ErrInvalidInput)
	}
	if k <= 0 || k > maxSimilar {
		return nil, fmt.Errorf("%w: k must be within 1..%d", ErrInvalidInput, maxSimilar)
	}
	if _, err := s.respondents.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRespondentNotFound
		}
		return nil, err
	}
	return s.respondents.FindSimilar(ctx, id, k)
}

// Catalog expone el catalogo activo.
func (s *ProfileService) Catalog() (scoring.Catalog, error) {
	if s == nil || s.engine == nil {
		return scoring.Catalog{}, ErrServiceNotConfigured
	}
	return s.engine.Catalog(), nil
}

func nonEmpty(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
