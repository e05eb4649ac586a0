package domain

// Dimension identifica uno de los 7 ejes continuos (escala 1-5).
type Dimension string

const (
	DimReligiosity             Dimension = "religiosity"
	DimAIOpenness              Dimension = "aiOpenness"
	DimSacredBoundary          Dimension = "sacredBoundary"
	DimEthicalConcern          Dimension = "ethicalConcern"
	DimPsychologicalPerception Dimension = "psychologicalPerception"
	DimCommunityInfluence      Dimension = "communityInfluence"
	DimFutureOrientation       Dimension = "futureOrientation"
)

// AllDimensions fija el orden canonico usado en vectores, matrices y reportes.
var AllDimensions = [7]Dimension{
	DimReligiosity,
	DimAIOpenness,
	DimSacredBoundary,
	DimEthicalConcern,
	DimPsychologicalPerception,
	DimCommunityInfluence,
	DimFutureOrientation,
}

const (
	DimensionMin      = 1.0
	DimensionMax      = 5.0
	DimensionMidpoint = 3.0
)

// Index devuelve la posicion canonica de la dimension, o -1 si no existe.
func (d Dimension) Index() int {
	for i, dim := range AllDimensions {
		if dim == d {
			return i
		}
	}
	return -1
}

// Valid indica si la dimension pertenece al conjunto fijo.
func (d Dimension) Valid() bool {
	return d.Index() >= 0
}

// Label es el nombre legible usado en textos de reporte.
func (d Dimension) Label() string {
	switch d {
	case DimReligiosity:
		return "religiosité"
	case DimAIOpenness:
		return "ouverture à l'IA"
	case DimSacredBoundary:
		return "frontière du sacré"
	case DimEthicalConcern:
		return "préoccupation éthique"
	case DimPsychologicalPerception:
		return "perception psychologique de l'IA"
	case DimCommunityInfluence:
		return "influence communautaire"
	case DimFutureOrientation:
		return "orientation vers l'avenir"
	default:
		return string(d)
	}
}

// DimensionScore es el valor de una dimension y su percentil poblacional.
type DimensionScore struct {
	Value      float64 `json:"value"`
	Percentile float64 `json:"percentile"`
}

// SevenDimensions siempre contiene las 7 dimensiones.
type SevenDimensions struct {
	Religiosity             DimensionScore `json:"religiosity"`
	AIOpenness              DimensionScore `json:"aiOpenness"`
	SacredBoundary          DimensionScore `json:"sacredBoundary"`
	EthicalConcern          DimensionScore `json:"ethicalConcern"`
	PsychologicalPerception DimensionScore `json:"psychologicalPerception"`
	CommunityInfluence      DimensionScore `json:"communityInfluence"`
	FutureOrientation       DimensionScore `json:"futureOrientation"`
}

func (s *SevenDimensions) slot(d Dimension) *DimensionScore {
	switch d {
	case DimReligiosity:
		return &s.Religiosity
	case DimAIOpenness:
		return &s.AIOpenness
	case DimSacredBoundary:
		return &s.SacredBoundary
	case DimEthicalConcern:
		return &s.EthicalConcern
	case DimPsychologicalPerception:
		return &s.PsychologicalPerception
	case DimCommunityInfluence:
		return &s.CommunityInfluence
	case DimFutureOrientation:
		return &s.FutureOrientation
	default:
		return nil
	}
}

// Get devuelve el puntaje de la dimension (cero si la dimension no existe).
func (s SevenDimensions) Get(d Dimension) DimensionScore {
	if p := s.slot(d); p != nil {
		return *p
	}
	return DimensionScore{}
}

// Set asigna el puntaje de la dimension; dimensiones desconocidas se ignoran.
func (s *SevenDimensions) Set(d Dimension, score DimensionScore) {
	if p := s.slot(d); p != nil {
		*p = score
	}
}

// Value es un atajo para Get(d).Value.
func (s SevenDimensions) Value(d Dimension) float64 {
	return s.Get(d).Value
}

// Vector devuelve los valores en el orden de AllDimensions.
func (s SevenDimensions) Vector() [7]float64 {
	var out [7]float64
	for i, d := range AllDimensions {
		out[i] = s.Value(d)
	}
	return out
}

// DimensionsFromVector reconstruye el registro a partir de un vector canonico (percentiles en 0).
func DimensionsFromVector(v [7]float64) SevenDimensions {
	var s SevenDimensions
	for i, d := range AllDimensions {
		s.Set(d, DimensionScore{Value: v[i]})
	}
	return s
}
