package domain

// ProfileID identifica un arquetipo del catalogo.
type ProfileID string

const (
	ProfileGuardian      ProfileID = "gardien_du_sacre"
	ProfileSteward       ProfileID = "intendant_prudent"
	ProfileInnovator     ProfileID = "innovateur_spirituel"
	ProfileSentinel      ProfileID = "sentinelle_ethique"
	ProfilePragmatist    ProfileID = "pragmatique_adoptant"
	ProfileBridge        ProfileID = "pont_communautaire"
	ProfileContemplative ProfileID = "sceptique_contemplatif"
	ProfileVisionary     ProfileID = "visionnaire_prospectif"
)

// SubProfileID identifica un sub-perfil, siempre bajo un unico perfil padre.
type SubProfileID string

// Range es el intervalo objetivo de una dimension y su peso en la distancia.
type Range struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Contains indica si v cae dentro de [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Deviation es cuanto se aleja v del intervalo; 0 dentro de el.
func (r Range) Deviation(v float64) float64 {
	switch {
	case r.Contains(v):
		return 0
	case v < r.Min:
		return r.Min - v
	default:
		return v - r.Max
	}
}

// Midpoint es el centro del intervalo.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Prototype define, por dimension, el intervalo objetivo y el peso.
// Una dimension ausente no participa en la distancia.
type Prototype map[Dimension]Range

// ProfileDefinition es una entrada estatica del catalogo.
type ProfileDefinition struct {
	ID               ProfileID      `json:"id" yaml:"id"`
	Title            string         `json:"title" yaml:"title"`
	ShortDescription string         `json:"shortDescription" yaml:"short_description"`
	FullDescription  string         `json:"fullDescription" yaml:"full_description"`
	CoreMotivation   string         `json:"coreMotivation" yaml:"core_motivation"`
	PrimaryFear      string         `json:"primaryFear" yaml:"primary_fear"`
	Prototype        Prototype      `json:"prototype" yaml:"prototype"`
	SubProfiles      []SubProfileID `json:"subProfiles" yaml:"sub_profiles"`
}

// SubProfileDefinition tiene la misma forma de prototipo, acotada a un perfil padre.
type SubProfileDefinition struct {
	ID          SubProfileID `json:"id" yaml:"id"`
	Parent      ProfileID    `json:"parent" yaml:"parent"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Prototype   Prototype    `json:"prototype" yaml:"prototype"`
}
