package scoring

import (
	"math"

	"github.com/montanaflynn/stats"

	"faithai-profile/internal/domain"
)

// dimensionValues calcula los 7 valores en orden canonico y la lista de dimensiones
// sin ninguna respuesta interpretable (quedan en el punto medio 3.0).
func (e *Engine) dimensionValues(a domain.Answers) ([7]float64, []domain.Dimension) {
	var (
		values    [7]float64
		defaulted []domain.Dimension
	)
	bias := BiasScore(a)
	for i, d := range domain.AllDimensions {
		raw, ok := weightedAverage(a, e.cal.Weights[d])
		if !ok {
			values[i] = domain.DimensionMidpoint
			defaulted = append(defaulted, d)
			continue
		}
		adjusted := AdjustForBias(raw, bias, e.cal.BiasSensitivity[d])
		values[i] = clamp(round(adjusted, 1), domain.DimensionMin, domain.DimensionMax)
	}
	return values, defaulted
}

// weightedAverage = sum(w*sub) / sum(w) sobre las claves que produjeron sub-puntaje.
func weightedAverage(a domain.Answers, rules []AnswerRule) (float64, bool) {
	var sum, weights float64
	for _, r := range rules {
		sub, ok := r.SubScore(a)
		if !ok {
			continue
		}
		sum += r.Weight * sub
		weights += r.Weight
	}
	if weights == 0 {
		return 0, false
	}
	return sum / weights, true
}

func (e *Engine) withPercentiles(values [7]float64, params domain.PopulationParams) domain.SevenDimensions {
	eff := e.effectiveParams(params)
	var dims domain.SevenDimensions
	for i, d := range domain.AllDimensions {
		dims.Set(d, domain.DimensionScore{
			Value:      values[i],
			Percentile: Percentile(values[i], eff[d]),
		})
	}
	return dims
}

// effectiveParams completa params con los valores por defecto de la calibracion.
// Solo se aceptan entradas con desvio positivo y media finita.
func (e *Engine) effectiveParams(params domain.PopulationParams) map[domain.Dimension]domain.NormalParams {
	out := make(map[domain.Dimension]domain.NormalParams, len(domain.AllDimensions))
	for _, d := range domain.AllDimensions {
		out[d] = e.cal.Population[d]
		if p, ok := params.Dimensions[d]; ok && p.StdDev > 0 && !math.IsNaN(p.Mean) && !math.IsInf(p.Mean, 0) {
			out[d] = p
		}
	}
	return out
}

// Percentile evalua la CDF normal(mean, stddev) en value, en escala 0-100.
// Con desvio no positivo degenera en un escalon alrededor de la media.
func Percentile(value float64, p domain.NormalParams) float64 {
	if p.StdDev <= 0 || math.IsNaN(p.StdDev) {
		switch {
		case value < p.Mean:
			return 0
		case value > p.Mean:
			return 100
		default:
			return 50
		}
	}
	cdf := stats.NormCdf(value, p.Mean, p.StdDev)
	if math.IsNaN(cdf) {
		return 50
	}
	return clamp(round(cdf*100, 1), 0, 100)
}
