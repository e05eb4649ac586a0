package scoring

import (
	"faithai-profile/internal/domain"
)

// SegmentKeyFunc asigna a un respondente sus claves de segmento (nombre -> valor).
// Un valor vacio excluye al respondente de ese segmento.
type SegmentKeyFunc func(domain.Answers) map[string]string

const (
	SegmentRole         = "role"
	SegmentDenomination = "denomination"
	SegmentAge          = "age"

	KeyRole         = "profil_role"
	KeyDenomination = "profil_denomination"
	KeyAge          = "profil_age"
)

// DefaultSegmentKeys segmenta por rol, denominacion y franja de edad.
func DefaultSegmentKeys(a domain.Answers) map[string]string {
	return map[string]string{
		SegmentRole:         normalizeLabel(a.GetString(KeyRole)),
		SegmentDenomination: normalizeLabel(a.GetString(KeyDenomination)),
		SegmentAge:          ageBucket(a),
	}
}

// SelectSegments restringe fn a los segmentos nombrados. Sin nombres devuelve fn intacta.
func SelectSegments(fn SegmentKeyFunc, names ...string) SegmentKeyFunc {
	if fn == nil || len(names) == 0 {
		return fn
	}
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}
	return func(a domain.Answers) map[string]string {
		out := make(map[string]string, len(keep))
		for k, v := range fn(a) {
			if _, ok := keep[k]; ok {
				out[k] = v
			}
		}
		return out
	}
}

// AgeBracket devuelve la franja de una edad; vacio por debajo de 18.
func AgeBracket(age float64) string {
	switch {
	case age < 18:
		return ""
	case age < 25:
		return "18-24"
	case age < 35:
		return "25-34"
	case age < 50:
		return "35-49"
	case age < 65:
		return "50-64"
	default:
		return "65+"
	}
}

func ageBucket(a domain.Answers) string {
	if age, ok := a.GetNumber(KeyAge); ok {
		return AgeBracket(age)
	}
	switch s := a.GetString(KeyAge); s {
	case "18-24", "25-34", "35-49", "50-64", "65+":
		return s
	}
	return ""
}
