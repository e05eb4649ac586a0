package scoring

import (
	"math"

	"faithai-profile/internal/domain"
)

// Claves de las escalas validadas.
const (
	KeyCRSIntellect       = "crs_intellect"
	KeyCRSIdeology        = "crs_ideologie"
	KeyCRSPublicPractice  = "crs_pratique_publique"
	KeyCRSPrivatePractice = "crs_pratique_privee"
	KeyCRSExperience      = "crs_experience"

	KeyAIFrequency = "ctrl_ia_frequence"
	KeyAIComfort   = "ctrl_ia_confort"
	KeyAIContexts  = "ctrl_ia_contextes"
)

// Items dicotomicos de deseabilidad social: "vrai"/"oui" (o 1) suma al conteo.
var SocialDesirabilityItems = []string{
	"sd_jamais_menti",
	"sd_toujours_courtois",
	"sd_jamais_envieux",
	"sd_admet_toujours_erreurs",
	"sd_jamais_profite",
}

type crsItem struct {
	key   string
	table map[string]float64
}

var crsItems = [5]crsItem{
	{KeyCRSIntellect, frequencyLabels},
	{KeyCRSIdeology, intensityLabels},
	{KeyCRSPublicPractice, publicPracticeLabels},
	{KeyCRSPrivatePractice, privatePracticeLabels},
	{KeyCRSExperience, frequencyLabels},
}

const (
	crsDefaultItem      = 3
	aiFrequencyDefault  = 1.0
	aiComfortDefault    = 2.5
	aiContextStep       = 0.7
	aiWeightFrequency   = 0.40
	aiWeightComfort     = 0.35
	aiWeightContexts    = 0.25
	biasAdjustmentScale = 0.05
)

// CRS5 promedia los 5 sub-items; cada uno se mapea a un entero 1-5 (3 si falta o no se reconoce).
func CRS5(a domain.Answers) float64 {
	sum := 0.0
	for _, item := range crsItems {
		v, ok := lookupLabel(a, item.key, item.table)
		if !ok {
			v = crsDefaultItem
		}
		sum += math.Round(v)
	}
	return round(sum/float64(len(crsItems)), 2)
}

// AIAdoption mezcla frecuencia de uso, confort declarado y amplitud de contextos.
func AIAdoption(a domain.Answers) float64 {
	frequency, ok := lookupLabel(a, KeyAIFrequency, aiFrequencyLabels)
	if !ok {
		frequency = aiFrequencyDefault
	}
	comfort, ok := a.GetNumber(KeyAIComfort)
	if !ok {
		comfort = aiComfortDefault
	}
	comfort = clamp(comfort, domain.DimensionMin, domain.DimensionMax)
	contexts := ContextsScore(len(a.GetArray(KeyAIContexts)))

	blended := aiWeightFrequency*frequency + aiWeightComfort*comfort + aiWeightContexts*contexts
	return round(clamp(blended, domain.DimensionMin, domain.DimensionMax), 2)
}

// ContextsScore = min(5, 1 + 0.7 * n).
func ContextsScore(n int) float64 {
	return math.Min(domain.DimensionMax, 1+aiContextStep*float64(n))
}

// BiasCount cuenta los items de deseabilidad social respondidos afirmativamente.
func BiasCount(a domain.Answers) int {
	n := 0
	for _, key := range SocialDesirabilityItems {
		if affirmative(a, key) {
			n++
		}
	}
	return n
}

// BiasScore escala el conteo a 0-5.
func BiasScore(a domain.Answers) float64 {
	return round(float64(BiasCount(a))*domain.DimensionMax/float64(len(SocialDesirabilityItems)), 2)
}

func affirmative(a domain.Answers, key string) bool {
	if s := a.GetString(key); s != "" {
		switch normalizeLabel(s) {
		case "vrai", "oui", "true", "1":
			return true
		}
		return false
	}
	v, ok := a.GetNumber(key)
	return ok && v == 1
}

// AdjustForBias aplica adjusted = raw - bias*sensitivity*0.05.
func AdjustForBias(raw, biasScore, sensitivity float64) float64 {
	return raw - biasScore*sensitivity*biasAdjustmentScale
}

// ResistanceIndex (0-100) expresa cuanta resistencia a la IA genera el compromiso de fe.
// Crece con religiosidad y frontera del sacro, decrece con apertura a la IA.
func ResistanceIndex(dims domain.SevenDimensions) float64 {
	norm := func(v float64) float64 {
		return (clamp(v, domain.DimensionMin, domain.DimensionMax) - domain.DimensionMin) / (domain.DimensionMax - domain.DimensionMin)
	}
	r := norm(dims.Value(domain.DimReligiosity))
	s := norm(dims.Value(domain.DimSacredBoundary))
	closed := 1 - norm(dims.Value(domain.DimAIOpenness))
	return round(100*(0.40*r+0.35*s+0.25*closed), 1)
}
