package scoring

import (
	"faithai-profile/internal/domain"
)

// Engine es el motor de puntaje y clasificacion. Es inmutable despues de NewEngine
// y puede usarse desde muchas goroutines sin coordinacion.
type Engine struct {
	catalog Catalog
	cal     Calibration
}

// NewEngine valida catalogo y calibracion y guarda copias propias.
// Cualquier problema devuelve un error que envuelve ErrConfiguration.
func NewEngine(catalog Catalog, cal Calibration) (*Engine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	return &Engine{catalog: catalog.clone(), cal: cal.clone()}, nil
}

// Catalog devuelve una copia del catalogo activo.
func (e *Engine) Catalog() Catalog {
	return e.catalog.clone()
}

// Calibration devuelve una copia de la calibracion activa.
func (e *Engine) Calibration() Calibration {
	return e.cal.clone()
}

// DefaultParams son los parametros poblacionales provisionales.
func (e *Engine) DefaultParams() domain.PopulationParams {
	return e.cal.DefaultParams()
}

// ShouldRecalibrate indica si n respuestas alcanzan el umbral para usar parametros medidos.
func (e *Engine) ShouldRecalibrate(n int) bool {
	return n >= e.cal.RecalibrationThreshold
}

// ComputeValidatedScores calcula CRS-5, adopcion de IA, sesgo e indice de resistencia.
func (e *Engine) ComputeValidatedScores(a domain.Answers) domain.ValidatedScores {
	values, _ := e.dimensionValues(a)
	return domain.ValidatedScores{
		CRS5:            CRS5(a),
		AIAdoption:      AIAdoption(a),
		BiasAdjustment:  BiasScore(a),
		ResistanceIndex: ResistanceIndex(domain.DimensionsFromVector(values)),
	}
}

// ComputeDimensions devuelve las 7 dimensiones con su percentil segun params.
func (e *Engine) ComputeDimensions(a domain.Answers, params domain.PopulationParams) domain.SevenDimensions {
	values, _ := e.dimensionValues(a)
	return e.withPercentiles(values, params)
}

// ComputeProfileSpectrum clasifica al respondente y genera la interpretacion completa.
// Es una funcion pura de (answers, params): mismas entradas, mismo resultado byte a byte.
func (e *Engine) ComputeProfileSpectrum(a domain.Answers, params domain.PopulationParams) domain.ProfileSpectrum {
	values, defaulted := e.dimensionValues(a)
	dims := e.withPercentiles(values, params)
	cls := e.classify(values)

	eff := e.effectiveParams(params)
	spectrum := domain.ProfileSpectrum{
		Primary:    cls.primary,
		Secondary:  cls.secondary,
		SubProfile: cls.subProfile,
		AllMatches: cls.all,
		Dimensions: dims,
	}
	in := interpretationInput{
		profile:    cls.primaryDef,
		subProfile: cls.subDef,
		secondary:  cls.secondaryDef,
		spectrum:   &spectrum,
		means:      eff,
		defaulted:  defaulted,
		resistance: ResistanceIndex(dims),
	}
	spectrum.Interpretation = e.interpret(in)
	spectrum.Tensions = e.tensions(dims)
	spectrum.GrowthAreas = growthAreas(dims, eff)
	spectrum.Insights = e.insights(in)
	return spectrum
}

// Classify devuelve solo el perfil principal para un vector ya calculado.
func (e *Engine) Classify(values [7]float64) domain.ProfileID {
	return domain.ProfileID(e.classify(values).primary.ProfileID)
}
