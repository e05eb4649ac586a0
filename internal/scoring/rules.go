package scoring

import (
	"math"

	"faithai-profile/internal/domain"
)

// RuleKind indica como se deriva un sub-puntaje 1-5 de una respuesta cruda.
type RuleKind string

const (
	// RuleLabel: etiqueta categorica -> puntaje via tabla; un numero 1-5 se acepta directo.
	RuleLabel RuleKind = "label"
	// RuleScale: numero en [Lo, Hi] reescalado linealmente a 1-5.
	RuleScale RuleKind = "scale"
	// RuleReverseScale: como RuleScale pero invertido (Lo -> 5, Hi -> 1).
	RuleReverseScale RuleKind = "reverse_scale"
	// RuleCount: largo de una lista -> min(5, 1 + Step*len).
	RuleCount RuleKind = "count"
)

// AnswerRule es una clave contribuyente de una dimension con su peso.
type AnswerRule struct {
	Key    string             `yaml:"key"`
	Weight float64            `yaml:"weight"`
	Kind   RuleKind           `yaml:"kind"`
	Labels map[string]float64 `yaml:"labels,omitempty"`
	Lo     float64            `yaml:"lo,omitempty"`
	Hi     float64            `yaml:"hi,omitempty"`
	Step   float64            `yaml:"step,omitempty"`
}

// SubScore devuelve el sub-puntaje 1-5 y ok=false si la respuesta no es interpretable.
func (r AnswerRule) SubScore(a domain.Answers) (float64, bool) {
	switch r.Kind {
	case RuleLabel:
		return lookupLabel(a, r.Key, r.Labels)
	case RuleScale, RuleReverseScale:
		v, ok := a.GetNumber(r.Key)
		if !ok || r.Hi <= r.Lo {
			return 0, false
		}
		frac := (clamp(v, r.Lo, r.Hi) - r.Lo) / (r.Hi - r.Lo)
		if r.Kind == RuleReverseScale {
			frac = 1 - frac
		}
		return domain.DimensionMin + frac*(domain.DimensionMax-domain.DimensionMin), true
	case RuleCount:
		raw, present := a[r.Key]
		if !present || raw == nil {
			return 0, false
		}
		items := a.GetArray(r.Key)
		if items == nil {
			return 0, false
		}
		return math.Min(domain.DimensionMax, domain.DimensionMin+r.Step*float64(len(items))), true
	default:
		return 0, false
	}
}

// lookupLabel resuelve una etiqueta contra la tabla; acepta tambien numeros 1-5.
func lookupLabel(a domain.Answers, key string, table map[string]float64) (float64, bool) {
	if s := a.GetString(key); s != "" {
		v, ok := table[normalizeLabel(s)]
		return v, ok
	}
	if v, ok := a.GetNumber(key); ok {
		if v < domain.DimensionMin || v > domain.DimensionMax {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

var (
	frequencyLabels = map[string]float64{
		"jamais":       1,
		"rarement":     2,
		"parfois":      3,
		"souvent":      4,
		"tres_souvent": 5,
		"toujours":     5,
	}
	intensityLabels = map[string]float64{
		"pas_du_tout": 1,
		"un_peu":      2,
		"moderement":  3,
		"beaucoup":    4,
		"totalement":  5,
	}
	publicPracticeLabels = map[string]float64{
		"jamais":                     1,
		"rarement":                   2,
		"quelques_fois_par_an":       2,
		"mensuel":                    3,
		"hebdomadaire":               4,
		"plusieurs_fois_par_semaine": 5,
	}
	privatePracticeLabels = map[string]float64{
		"jamais":                  1,
		"rarement":                2,
		"hebdomadaire":            3,
		"quotidien":               4,
		"plusieurs_fois_par_jour": 5,
	}
	aiFrequencyLabels = map[string]float64{
		"jamais":       1,
		"rarement":     2,
		"mensuel":      3,
		"hebdomadaire": 4,
		"quotidien":    5,
	}
	agreementLabels = map[string]float64{
		"pas_du_tout_d_accord": 1,
		"plutot_pas_d_accord":  2,
		"neutre":               3,
		"plutot_d_accord":      4,
		"tout_a_fait_d_accord": 5,
	}
	// inacceptable = frontera fuerte.
	boundaryLabels = map[string]float64{
		"acceptable":          1,
		"plutot_acceptable":   2,
		"neutre":              3,
		"plutot_inacceptable": 4,
		"inacceptable":        5,
	}
	attitudeLabels = map[string]float64{
		"tres_negative": 1,
		"negative":      2,
		"neutre":        3,
		"positive":      4,
		"tres_positive": 5,
	}
	yesMaybeNoLabels = map[string]float64{
		"non":       1,
		"peut_etre": 3,
		"oui":       5,
	}
)

func label(key string, weight float64, table map[string]float64) AnswerRule {
	labels := make(map[string]float64, len(table))
	for k, v := range table {
		labels[k] = v
	}
	return AnswerRule{Key: key, Weight: weight, Kind: RuleLabel, Labels: labels}
}

func scale(key string, weight, lo, hi float64) AnswerRule {
	return AnswerRule{Key: key, Weight: weight, Kind: RuleScale, Lo: lo, Hi: hi}
}

func count(key string, weight, step float64) AnswerRule {
	return AnswerRule{Key: key, Weight: weight, Kind: RuleCount, Step: step}
}

// DefaultWeights es la tabla de claves contribuyentes por dimension.
func DefaultWeights() map[domain.Dimension][]AnswerRule {
	return map[domain.Dimension][]AnswerRule{
		domain.DimReligiosity: {
			label(KeyCRSIntellect, 1.0, frequencyLabels),
			label(KeyCRSIdeology, 1.0, intensityLabels),
			label(KeyCRSPublicPractice, 1.0, publicPracticeLabels),
			label(KeyCRSPrivatePractice, 1.0, privatePracticeLabels),
			label(KeyCRSExperience, 1.0, frequencyLabels),
			scale("importance_foi", 1.5, 0, 10),
		},
		domain.DimAIOpenness: {
			label(KeyAIFrequency, 1.0, aiFrequencyLabels),
			scale(KeyAIComfort, 1.0, 1, 5),
			count(KeyAIContexts, 0.8, 0.7),
			label("ia_attitude_generale", 1.2, attitudeLabels),
		},
		domain.DimSacredBoundary: {
			label("ia_sermon_acceptable", 1.0, boundaryLabels),
			label("ia_priere_acceptable", 1.2, boundaryLabels),
			label("ia_conseil_spirituel", 1.0, boundaryLabels),
			count("sacre_domaines_proteges", 0.6, 0.8),
		},
		domain.DimEthicalConcern: {
			scale("ia_inquietude_ethique", 1.2, 1, 5),
			label("ia_risque_manipulation", 1.0, agreementLabels),
			count("ia_preoccupations", 0.8, 0.8),
		},
		domain.DimPsychologicalPerception: {
			label("ia_conscience_possible", 1.0, agreementLabels),
			label("ia_relation_emotionnelle", 1.0, agreementLabels),
			scale("ia_anthropomorphisme", 0.8, 1, 5),
		},
		domain.DimCommunityInfluence: {
			scale("communaute_influence", 1.2, 1, 5),
			label("communaute_discussion_ia", 1.0, frequencyLabels),
			label("leader_avis_important", 1.0, agreementLabels),
		},
		domain.DimFutureOrientation: {
			scale("avenir_optimisme", 1.2, 0, 10),
			label("avenir_eglise_ia", 1.0, agreementLabels),
			label("avenir_formation_ia", 0.8, yesMaybeNoLabels),
		},
	}
}
