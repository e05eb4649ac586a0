package domain

// ValidatedScores agrupa los indices estandarizados.
type ValidatedScores struct {
	CRS5            float64 `json:"crs5"`
	AIAdoption      float64 `json:"aiAdoption"`
	BiasAdjustment  float64 `json:"biasAdjustment"`
	ResistanceIndex float64 `json:"resistanceIndex"`
}

// ProfileMatch es la afinidad (0-100) con un perfil o sub-perfil.
// ProfileID lleva el id del sub-perfil cuando el match es de sub-perfil.
type ProfileMatch struct {
	ProfileID  string  `json:"profileId"`
	MatchScore float64 `json:"matchScore"`
	Distance   float64 `json:"distance"`
}

type Interpretation struct {
	Headline      string   `json:"headline"`
	Narrative     string   `json:"narrative"`
	Strengths     []string `json:"strengths"`
	UniqueAspects []string `json:"uniqueAspects"`
	BlindSpots    []string `json:"blindSpots"`
}

// Tension marca dos dimensiones en combinacion contradictoria.
type Tension struct {
	Dimension1  Dimension `json:"dimension1"`
	Dimension2  Dimension `json:"dimension2"`
	Description string    `json:"description"`
	Suggestion  string    `json:"suggestion"`
}

type GrowthArea struct {
	Area            Dimension `json:"area"`
	CurrentState    string    `json:"currentState"`
	PotentialGrowth string    `json:"potentialGrowth"`
	ActionableStep  string    `json:"actionableStep"`
}

const (
	InsightProfileBlend   = "profile_blend"
	InsightExtremeValue   = "extreme_dimension"
	InsightResistance     = "resistance"
	InsightIncompleteData = "incomplete_data"
)

// Insight es una observacion corta derivada del espectro.
type Insight struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ProfileSpectrum es el resultado completo de clasificacion de un respondente.
type ProfileSpectrum struct {
	Primary        ProfileMatch    `json:"primary"`
	Secondary      *ProfileMatch   `json:"secondary"`
	SubProfile     ProfileMatch    `json:"subProfile"`
	AllMatches     []ProfileMatch  `json:"allMatches"`
	Dimensions     SevenDimensions `json:"dimensions"`
	Interpretation Interpretation  `json:"interpretation"`
	Tensions       []Tension       `json:"tensions"`
	GrowthAreas    []GrowthArea    `json:"growthAreas"`
	Insights       []Insight       `json:"insights"`
}

// PrimaryProfile devuelve el id tipado del perfil principal.
func (s ProfileSpectrum) PrimaryProfile() ProfileID {
	return ProfileID(s.Primary.ProfileID)
}
