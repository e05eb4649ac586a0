package domain

import "time"

// NormalParams son los parametros (media, desvio) de una dimension en la poblacion.
type NormalParams struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
}

const (
	ParamsSourceDefault  = "default"
	ParamsSourceMeasured = "measured"
)

// PopulationParams alimenta el calculo de percentiles y areas de crecimiento.
// Source es "default" (valores de experto) o "measured" (recalibrado).
type PopulationParams struct {
	Source     string                     `json:"source"`
	N          int                        `json:"n"`
	Dimensions map[Dimension]NormalParams `json:"dimensions"`
	UpdatedAt  time.Time                  `json:"updatedAt"`
}

// Mean devuelve la media de la dimension, o el punto medio si no hay dato.
func (p PopulationParams) Mean(d Dimension) float64 {
	if np, ok := p.Dimensions[d]; ok {
		return np.Mean
	}
	return DimensionMidpoint
}

type ConfidenceLevel string

const (
	ConfidenceNone     ConfidenceLevel = "none"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceModerate ConfidenceLevel = "moderate"
	ConfidenceHigh     ConfidenceLevel = "high"
)

// SampleCaveat acompaña a toda salida estadistica.
type SampleCaveat struct {
	Confidence         ConfidenceLevel `json:"confidence"`
	InsufficientSample bool            `json:"insufficientSample"`
	ModerateSample     bool            `json:"moderateSample"`
}

type DimensionStat struct {
	Dimension Dimension `json:"dimension"`
	Mean      float64   `json:"mean"`
	StdDev    float64   `json:"stddev"`
	N         int       `json:"n"`
}

// CorrelationMatrix es simetrica 7x7 en el orden de Dimensions, diagonal 1.
type CorrelationMatrix struct {
	Dimensions []Dimension `json:"dimensions"`
	Values     [][]float64 `json:"values"`
}

// At devuelve r(a, b), o 0 si alguna dimension no existe en la matriz.
func (m CorrelationMatrix) At(a, b Dimension) float64 {
	i, j := -1, -1
	for k, d := range m.Dimensions {
		if d == a {
			i = k
		}
		if d == b {
			j = k
		}
	}
	if i < 0 || j < 0 || i >= len(m.Values) || j >= len(m.Values[i]) {
		return 0
	}
	return m.Values[i][j]
}

type ProfileCount struct {
	ProfileID ProfileID `json:"profileId"`
	Count     int       `json:"count"`
}

// GroupStats es el bloque comun de estadisticas para la poblacion o un segmento.
type GroupStats struct {
	N                int                `json:"n"`
	HasData          bool               `json:"hasData"`
	Dimensions       []DimensionStat    `json:"dimensions"`
	Correlations     *CorrelationMatrix `json:"correlations"`
	ProfileHistogram []ProfileCount     `json:"profileHistogram"`
	Caveat           SampleCaveat       `json:"caveat"`
}

// Stat busca la estadistica de una dimension.
func (g GroupStats) Stat(d Dimension) (DimensionStat, bool) {
	for _, s := range g.Dimensions {
		if s.Dimension == d {
			return s, true
		}
	}
	return DimensionStat{}, false
}

// SegmentStats es el desglose de un valor de segmento (ej: role=pasteur).
type SegmentStats struct {
	Segment string `json:"segment"`
	Bucket  string `json:"bucket"`
	GroupStats
}

const (
	FindingSegmentDelta = "segment_delta"
	FindingCorrelation  = "correlation"
)

type KeyFinding struct {
	Kind       string      `json:"kind"`
	Text       string      `json:"text"`
	Magnitude  float64     `json:"magnitude"`
	Dimensions []Dimension `json:"dimensions"`
	Segment    string      `json:"segment,omitempty"`
	Bucket     string      `json:"bucket,omitempty"`
}

// PopulationStats es el resultado de una agregacion completa.
type PopulationStats struct {
	GroupStats
	Segments    []SegmentStats `json:"segments"`
	KeyFindings []KeyFinding   `json:"keyFindings"`
}

// Params convierte las estadisticas medidas en parametros poblacionales.
func (p PopulationStats) Params(now time.Time) PopulationParams {
	params := PopulationParams{
		Source:     ParamsSourceMeasured,
		N:          p.N,
		Dimensions: make(map[Dimension]NormalParams, len(p.Dimensions)),
		UpdatedAt:  now,
	}
	for _, s := range p.Dimensions {
		params.Dimensions[s.Dimension] = NormalParams{Mean: s.Mean, StdDev: s.StdDev}
	}
	return params
}
