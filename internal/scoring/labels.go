package scoring

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/montanaflynn/stats"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeLabel baja a minusculas, quita diacriticos y une palabras con "_".
// Ej: "Très souvent" -> "tres_souvent", "plutôt d'accord" -> "plutot_d_accord".
func normalizeLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		out = strings.ToLower(strings.TrimSpace(s))
	}
	fields := strings.FieldsFunc(out, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "_")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round(v float64, places int) float64 {
	r, err := stats.Round(v, places)
	if err != nil {
		return v
	}
	return r
}

// frNum formatea con coma decimal para los textos de reporte.
func frNum(v float64, places int) string {
	return strings.Replace(strconv.FormatFloat(round(v, places), 'f', places, 64), ".", ",", 1)
}
