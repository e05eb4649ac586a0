package domain

import (
	"encoding/json"
	"math"
	"strings"
)

// Answers mapea clave de pregunta -> respuesta cruda (string, numero o lista de strings).
// El motor nunca la muta; una clave ausente equivale a "sin respuesta".
type Answers map[string]any

// GetString devuelve la respuesta como string recortado, o "" si falta o no es string.
func (a Answers) GetString(key string) string {
	raw, ok := a[key]
	if !ok {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// GetNumber devuelve la respuesta numerica. ok=false si falta, no es numero o no es finito.
func (a Answers) GetNumber(key string) (float64, bool) {
	raw, ok := a[key]
	if !ok {
		return 0, false
	}
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		v = f
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// GetArray devuelve la respuesta como lista de strings no vacios.
// Elementos que no son string se descartan; si la respuesta no es lista devuelve nil.
func (a Answers) GetArray(key string) []string {
	raw, ok := a[key]
	if !ok {
		return nil
	}
	switch items := raw.(type) {
	case []string:
		out := make([]string, 0, len(items))
		for _, it := range items {
			if s := strings.TrimSpace(it); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(items))
		for _, it := range items {
			s, ok := it.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
