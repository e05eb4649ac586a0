package scoring

import (
	"math"
	"sort"

	"faithai-profile/internal/domain"
)

// Distance es la distancia ponderada de un vector a un prototipo:
// sqrt(sum(w_d * desvio_d^2)), con desvio 0 dentro del intervalo [min,max].
// Las dimensiones ausentes del prototipo no participan.
func Distance(values [7]float64, p domain.Prototype) float64 {
	sum := 0.0
	for i, d := range domain.AllDimensions {
		r, ok := p[d]
		if !ok {
			continue
		}
		dev := r.Deviation(values[i])
		sum += r.Weight * dev * dev
	}
	return math.Sqrt(sum)
}

type candidate struct {
	id        string
	prototype domain.Prototype
}

// rankMatches convierte distancias en puntajes relativos 0-100:
// sim = exp(-sharpness*d), score = 100 * sim / sum(sim).
// Orden descendente por puntaje; los empates conservan el orden de declaracion.
func rankMatches(values [7]float64, cands []candidate, sharpness float64) []domain.ProfileMatch {
	if len(cands) == 0 {
		return nil
	}
	dists := make([]float64, len(cands))
	sims := make([]float64, len(cands))
	total := 0.0
	for i, c := range cands {
		dists[i] = Distance(values, c.prototype)
		sims[i] = math.Exp(-sharpness * dists[i])
		total += sims[i]
	}
	matches := make([]domain.ProfileMatch, len(cands))
	for i, c := range cands {
		score := 0.0
		if total > 0 {
			score = 100 * sims[i] / total
		}
		matches[i] = domain.ProfileMatch{
			ProfileID:  c.id,
			MatchScore: clamp(round(score, 1), 0, 100),
			Distance:   round(dists[i], 3),
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

type classification struct {
	primary      domain.ProfileMatch
	secondary    *domain.ProfileMatch
	subProfile   domain.ProfileMatch
	all          []domain.ProfileMatch
	primaryDef   domain.ProfileDefinition
	secondaryDef *domain.ProfileDefinition
	subDef       domain.SubProfileDefinition
}

func (e *Engine) classify(values [7]float64) classification {
	cands := make([]candidate, len(e.catalog.Profiles))
	for i, p := range e.catalog.Profiles {
		cands[i] = candidate{id: string(p.ID), prototype: p.Prototype}
	}
	all := rankMatches(values, cands, e.cal.Match.Sharpness)

	out := classification{primary: all[0], all: all}
	out.primaryDef, _ = e.catalog.Profile(domain.ProfileID(all[0].ProfileID))
	if len(all) > 1 && all[1].MatchScore >= e.cal.Match.SecondaryThreshold {
		second := all[1]
		out.secondary = &second
		if def, ok := e.catalog.Profile(domain.ProfileID(second.ProfileID)); ok {
			out.secondaryDef = &def
		}
	}

	subs := make([]candidate, 0, len(out.primaryDef.SubProfiles))
	for _, id := range out.primaryDef.SubProfiles {
		if sp, ok := e.catalog.SubProfile(id); ok {
			subs = append(subs, candidate{id: string(sp.ID), prototype: sp.Prototype})
		}
	}
	if ranked := rankMatches(values, subs, e.cal.Match.Sharpness); len(ranked) > 0 {
		out.subProfile = ranked[0]
		out.subDef, _ = e.catalog.SubProfile(domain.SubProfileID(ranked[0].ProfileID))
	}
	return out
}
