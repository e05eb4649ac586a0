package scoring

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"faithai-profile/internal/domain"
)

type TensionThresholds struct {
	High float64 `yaml:"high"`
	Low  float64 `yaml:"low"`
}

type MatchConfig struct {
	// Sharpness controla la transformacion distancia -> similitud: exp(-sharpness * d).
	Sharpness          float64 `yaml:"sharpness"`
	SecondaryThreshold float64 `yaml:"secondary_threshold"`
}

type FindingThresholds struct {
	SegmentDelta   float64 `yaml:"segment_delta"`
	Correlation    float64 `yaml:"correlation"`
	MinSegmentSize int     `yaml:"min_segment_size"`
	MaxFindings    int     `yaml:"max_findings"`
}

type SampleThresholds struct {
	Low      int `yaml:"low"`
	Moderate int `yaml:"moderate"`
}

// Calibration reune los parametros provisionales de experto.
// Se espera recalibrarlos sin cambiar codigo (archivo YAML).
type Calibration struct {
	Population             map[domain.Dimension]domain.NormalParams `yaml:"population"`
	BiasSensitivity        map[domain.Dimension]float64             `yaml:"bias_sensitivity"`
	Weights                map[domain.Dimension][]AnswerRule        `yaml:"weights"`
	Tension                TensionThresholds                        `yaml:"tension"`
	Match                  MatchConfig                              `yaml:"match"`
	Findings               FindingThresholds                        `yaml:"findings"`
	Sample                 SampleThresholds                         `yaml:"sample"`
	RecalibrationThreshold int                                      `yaml:"recalibration_threshold"`
}

// DefaultCalibration devuelve los valores por defecto (copia nueva en cada llamada).
func DefaultCalibration() Calibration {
	return Calibration{
		Population: map[domain.Dimension]domain.NormalParams{
			domain.DimReligiosity:             {Mean: 3.4, StdDev: 1.0},
			domain.DimAIOpenness:              {Mean: 2.9, StdDev: 0.9},
			domain.DimSacredBoundary:          {Mean: 3.5, StdDev: 0.9},
			domain.DimEthicalConcern:          {Mean: 3.6, StdDev: 0.8},
			domain.DimPsychologicalPerception: {Mean: 2.4, StdDev: 0.8},
			domain.DimCommunityInfluence:      {Mean: 3.1, StdDev: 0.9},
			domain.DimFutureOrientation:       {Mean: 3.0, StdDev: 0.9},
		},
		BiasSensitivity: map[domain.Dimension]float64{
			domain.DimReligiosity:             1.0,
			domain.DimAIOpenness:              0,
			domain.DimSacredBoundary:          0.5,
			domain.DimEthicalConcern:          0.8,
			domain.DimPsychologicalPerception: 0,
			domain.DimCommunityInfluence:      0.5,
			domain.DimFutureOrientation:       0,
		},
		Weights: DefaultWeights(),
		Tension: TensionThresholds{High: 4.0, Low: 2.0},
		Match:   MatchConfig{Sharpness: 1.5, SecondaryThreshold: 15},
		Findings: FindingThresholds{
			SegmentDelta:   0.5,
			Correlation:    0.5,
			MinSegmentSize: 5,
			MaxFindings:    12,
		},
		Sample:                 SampleThresholds{Low: 30, Moderate: 100},
		RecalibrationThreshold: 500,
	}
}

// LoadCalibration lee un YAML sobre los valores por defecto.
// path vacio devuelve los valores por defecto; un archivo ausente o invalido es ErrConfiguration.
func LoadCalibration(path string) (Calibration, error) {
	cal := DefaultCalibration()
	if path == "" {
		return cal, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Calibration{}, configErrorf("calibration file %q not found", path)
		}
		return Calibration{}, configErrorf("read calibration %q: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return Calibration{}, configErrorf("parse calibration %q: %v", path, err)
	}
	if err := cal.Validate(); err != nil {
		return Calibration{}, err
	}
	return cal, nil
}

// Validate verifica que toda dimension tenga parametros, sensibilidad y reglas utilizables.
func (c Calibration) Validate() error {
	for _, d := range domain.AllDimensions {
		p, ok := c.Population[d]
		if !ok {
			return configErrorf("population params missing for %s", d)
		}
		if p.StdDev <= 0 || p.Mean < domain.DimensionMin || p.Mean > domain.DimensionMax {
			return configErrorf("population params for %s out of range (mean=%v stddev=%v)", d, p.Mean, p.StdDev)
		}
		if s := c.BiasSensitivity[d]; s < 0 {
			return configErrorf("negative bias sensitivity for %s", d)
		}
		rules := c.Weights[d]
		if len(rules) == 0 {
			return configErrorf("weight table missing for %s", d)
		}
		for _, r := range rules {
			if err := r.validate(); err != nil {
				return configErrorf("weight table for %s: %v", d, err)
			}
		}
	}
	for d := range c.Weights {
		if !d.Valid() {
			return configErrorf("weight table for unknown dimension %q", d)
		}
	}
	if c.Tension.Low >= c.Tension.High {
		return configErrorf("tension thresholds must satisfy low < high")
	}
	if c.Match.Sharpness <= 0 {
		return configErrorf("match sharpness must be positive")
	}
	if c.Match.SecondaryThreshold < 0 || c.Match.SecondaryThreshold > 100 {
		return configErrorf("secondary threshold must be within [0,100]")
	}
	if c.Findings.SegmentDelta <= 0 || c.Findings.Correlation <= 0 || c.Findings.Correlation > 1 {
		return configErrorf("finding thresholds out of range")
	}
	if c.Findings.MaxFindings <= 0 || c.Findings.MinSegmentSize <= 0 {
		return configErrorf("finding limits must be positive")
	}
	if c.Sample.Low <= 0 || c.Sample.Moderate <= c.Sample.Low {
		return configErrorf("sample thresholds must satisfy 0 < low < moderate")
	}
	if c.RecalibrationThreshold <= 0 {
		return configErrorf("recalibration threshold must be positive")
	}
	return nil
}

func (r AnswerRule) validate() error {
	if r.Key == "" {
		return errors.New("rule without key")
	}
	if r.Weight <= 0 {
		return errors.New("rule " + r.Key + " has non-positive weight")
	}
	switch r.Kind {
	case RuleLabel:
		if len(r.Labels) == 0 {
			return errors.New("label rule " + r.Key + " has no labels")
		}
	case RuleScale, RuleReverseScale:
		if r.Hi <= r.Lo {
			return errors.New("scale rule " + r.Key + " needs lo < hi")
		}
	case RuleCount:
		if r.Step <= 0 {
			return errors.New("count rule " + r.Key + " needs a positive step")
		}
	default:
		return errors.New("rule " + r.Key + " has unknown kind " + string(r.Kind))
	}
	return nil
}

// clone copia profunda para que el motor quede inmutable.
func (c Calibration) clone() Calibration {
	out := c
	out.Population = make(map[domain.Dimension]domain.NormalParams, len(c.Population))
	for k, v := range c.Population {
		out.Population[k] = v
	}
	out.BiasSensitivity = make(map[domain.Dimension]float64, len(c.BiasSensitivity))
	for k, v := range c.BiasSensitivity {
		out.BiasSensitivity[k] = v
	}
	out.Weights = make(map[domain.Dimension][]AnswerRule, len(c.Weights))
	for d, rules := range c.Weights {
		copied := make([]AnswerRule, len(rules))
		for i, r := range rules {
			copied[i] = r
			if r.Labels != nil {
				copied[i].Labels = make(map[string]float64, len(r.Labels))
				for k, v := range r.Labels {
					copied[i].Labels[normalizeLabel(k)] = v
				}
			}
		}
		out.Weights[d] = copied
	}
	return out
}

// DefaultParams son los parametros poblacionales provisionales de la calibracion.
func (c Calibration) DefaultParams() domain.PopulationParams {
	params := domain.PopulationParams{
		Source:     domain.ParamsSourceDefault,
		Dimensions: make(map[domain.Dimension]domain.NormalParams, len(c.Population)),
	}
	for k, v := range c.Population {
		params.Dimensions[k] = v
	}
	return params
}
