package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"faithai-profile/internal/domain"
)

type interpretationInput struct {
	profile    domain.ProfileDefinition
	subProfile domain.SubProfileDefinition
	secondary  *domain.ProfileDefinition
	spectrum   *domain.ProfileSpectrum
	means      map[domain.Dimension]domain.NormalParams
	defaulted  []domain.Dimension
	resistance float64
}

func (e *Engine) interpret(in interpretationInput) domain.Interpretation {
	tpl := e.catalog.Narratives[in.profile.ID]
	dims := in.spectrum.Dimensions
	return domain.Interpretation{
		Headline:      tpl.Headline,
		Narrative:     renderNarrative(tpl.Narrative, in.profile, in.subProfile, dims),
		Strengths:     e.strengths(tpl, dims),
		UniqueAspects: uniqueAspects(in.profile, dims),
		BlindSpots:    e.blindSpots(tpl, dims),
	}
}

func renderNarrative(text string, p domain.ProfileDefinition, sp domain.SubProfileDefinition, dims domain.SevenDimensions) string {
	pairs := []string{"{title}", p.Title, "{subprofile}", sp.Title}
	for _, d := range domain.AllDimensions {
		pairs = append(pairs, "{"+string(d)+"}", frNum(dims.Value(d), 1))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func (e *Engine) strengths(tpl ProfileNarrative, dims domain.SevenDimensions) []string {
	out := appendUnique(nil, maxStrengths, tpl.Strengths...)
	for _, d := range domain.AllDimensions {
		if dims.Value(d) >= e.cal.Tension.High {
			out = appendUnique(out, maxStrengths, highStrengths[d])
		}
	}
	if len(out) < minStrengths {
		out = appendUnique(out, maxStrengths, fallbackStrength)
	}
	return out
}

func (e *Engine) blindSpots(tpl ProfileNarrative, dims domain.SevenDimensions) []string {
	out := appendUnique(nil, maxBlindSpots, tpl.BlindSpots...)
	for _, d := range domain.AllDimensions {
		if dims.Value(d) <= e.cal.Tension.Low {
			out = appendUnique(out, maxBlindSpots, lowBlindSpots[d])
		}
	}
	if dims.Value(domain.DimPsychologicalPerception) >= anthropomorphismThreshold {
		out = appendUnique(out, maxBlindSpots, anthropomorphismBlindSpot)
	}
	return out
}

// uniqueAspects destaca los percentiles mas alejados de 50 (>= 85 o <= 15).
func uniqueAspects(p domain.ProfileDefinition, dims domain.SevenDimensions) []string {
	type extreme struct {
		dim domain.Dimension
		pct float64
	}
	var xs []extreme
	for _, d := range domain.AllDimensions {
		pct := dims.Get(d).Percentile
		if pct >= uniqueHighPercentile || pct <= uniqueLowPercentile {
			xs = append(xs, extreme{d, pct})
		}
	}
	sort.SliceStable(xs, func(i, j int) bool {
		return math.Abs(xs[i].pct-50) > math.Abs(xs[j].pct-50)
	})
	var out []string
	for _, x := range xs {
		if len(out) == maxUniqueAspects {
			break
		}
		v := frNum(dims.Value(x.dim), 1)
		if x.pct >= 50 {
			out = append(out, fmt.Sprintf("Votre %s (%s) est plus élevée que celle de %s %% des répondants.",
				x.dim.Label(), v, frNum(x.pct, 0)))
		} else {
			out = append(out, fmt.Sprintf("Votre %s (%s) est plus basse que celle de %s %% des répondants.",
				x.dim.Label(), v, frNum(100-x.pct, 0)))
		}
	}
	if len(out) == 0 {
		out = append(out, "Ce qui vous anime : "+lowerFirst(p.CoreMotivation))
	}
	return out
}

func (e *Engine) tensions(dims domain.SevenDimensions) []domain.Tension {
	var out []domain.Tension
	for _, r := range tensionRules {
		if e.matchesSide(dims.Value(r.a), r.aHigh) && e.matchesSide(dims.Value(r.b), r.bHigh) {
			out = append(out, domain.Tension{
				Dimension1:  r.a,
				Dimension2:  r.b,
				Description: r.description,
				Suggestion:  r.suggestion,
			})
		}
	}
	return out
}

func (e *Engine) matchesSide(v float64, high bool) bool {
	if high {
		return v >= e.cal.Tension.High
	}
	return v <= e.cal.Tension.Low
}

// growthAreas toma la dimension mas baja respecto de la media poblacional y, si tambien
// esta por debajo de la media, la segunda. Empates en orden canonico.
func growthAreas(dims domain.SevenDimensions, means map[domain.Dimension]domain.NormalParams) []domain.GrowthArea {
	type gap struct {
		dim   domain.Dimension
		delta float64
	}
	gaps := make([]gap, 0, len(domain.AllDimensions))
	for _, d := range domain.AllDimensions {
		gaps = append(gaps, gap{d, round(dims.Value(d)-means[d].Mean, 3)})
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].delta < gaps[j].delta })

	picked := gaps[:1]
	if gaps[1].delta < 0 {
		picked = gaps[:2]
	}
	out := make([]domain.GrowthArea, 0, len(picked))
	for _, g := range picked {
		tpl := growthTemplates[g.dim]
		out = append(out, domain.GrowthArea{
			Area:            g.dim,
			CurrentState:    currentState(g.dim, dims.Value(g.dim), means[g.dim].Mean, g.delta),
			PotentialGrowth: tpl.potential,
			ActionableStep:  tpl.step,
		})
	}
	return out
}

func currentState(d domain.Dimension, value, mean, delta float64) string {
	switch {
	case delta < 0:
		return fmt.Sprintf("Votre %s (%s) est inférieure à la moyenne de la population (%s).",
			d.Label(), frNum(value, 1), frNum(mean, 1))
	case delta == 0:
		return fmt.Sprintf("Votre %s (%s) est égale à la moyenne de la population.", d.Label(), frNum(value, 1))
	default:
		return fmt.Sprintf("Votre %s (%s) est votre point relativement le moins marqué, au-dessus de la moyenne (%s).",
			d.Label(), frNum(value, 1), frNum(mean, 1))
	}
}

func (e *Engine) insights(in interpretationInput) []domain.Insight {
	var out []domain.Insight
	s := in.spectrum
	if s.Secondary != nil && in.secondary != nil {
		out = append(out, domain.Insight{
			Kind:  domain.InsightProfileBlend,
			Title: "Profil mixte",
			Text: fmt.Sprintf("Votre profil combine %s (%s) et %s (%s).",
				in.profile.Title, frNum(s.Primary.MatchScore, 1), in.secondary.Title, frNum(s.Secondary.MatchScore, 1)),
		})
	}
	for _, d := range domain.AllDimensions {
		pct := s.Dimensions.Get(d).Percentile
		switch {
		case pct >= extremeHighPercentile:
			out = append(out, domain.Insight{
				Kind:  domain.InsightExtremeValue,
				Title: "Valeur remarquable",
				Text:  fmt.Sprintf("Votre %s se situe dans les 10 %% les plus élevés (percentile %s).", d.Label(), frNum(pct, 0)),
			})
		case pct <= extremeLowPercentile:
			out = append(out, domain.Insight{
				Kind:  domain.InsightExtremeValue,
				Title: "Valeur remarquable",
				Text:  fmt.Sprintf("Votre %s se situe dans les 10 %% les plus bas (percentile %s).", d.Label(), frNum(pct, 0)),
			})
		}
	}
	out = append(out, domain.Insight{
		Kind:  domain.InsightResistance,
		Title: "Indice de résistance",
		Text:  fmt.Sprintf("Votre engagement de foi génère une résistance %s à l'IA (%s/100).", resistanceBand(in.resistance), frNum(in.resistance, 1)),
	})
	if len(in.defaulted) > 0 {
		labels := make([]string, len(in.defaulted))
		for i, d := range in.defaulted {
			labels[i] = d.Label()
		}
		out = append(out, domain.Insight{
			Kind:  domain.InsightIncompleteData,
			Title: "Données incomplètes",
			Text:  "Faute de réponses, ces dimensions ont été fixées à la valeur neutre (3) : " + strings.Join(labels, ", ") + ".",
		})
	}
	return out
}

func resistanceBand(v float64) string {
	switch {
	case v >= 66:
		return "forte"
	case v >= 33:
		return "modérée"
	default:
		return "faible"
	}
}

func appendUnique(list []string, limit int, items ...string) []string {
	for _, it := range items {
		if it == "" || len(list) >= limit {
			continue
		}
		dup := false
		for _, existing := range list {
			if existing == it {
				dup = true
				break
			}
		}
		if !dup {
			list = append(list, it)
		}
	}
	return list
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToLower(string(r[0])))[0]
	return string(r)
}
