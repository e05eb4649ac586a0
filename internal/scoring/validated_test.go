package scoring

import (
	"math"
	"testing"

	"faithai-profile/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCRS5_DefaultsMissingItems(t *testing.T) {
	got := CRS5(domain.Answers{KeyCRSIntellect: "souvent"})
	if !almostEqual(got, 3.2) {
		t.Fatalf("expected crs5 3.2, got %v", got)
	}
	if got := CRS5(domain.Answers{}); !almostEqual(got, 3) {
		t.Fatalf("expected empty crs5 3, got %v", got)
	}
	if got := CRS5(domain.Answers{KeyCRSIntellect: "n'importe quoi"}); !almostEqual(got, 3) {
		t.Fatalf("unrecognized label must default to 3, got %v", got)
	}
}

func TestCRS5_AcceptsAccentsAndCase(t *testing.T) {
	a := domain.Answers{
		KeyCRSIntellect:       "Très souvent",
		KeyCRSIdeology:        "Totalement",
		KeyCRSPublicPractice:  "plusieurs fois par semaine",
		KeyCRSPrivatePractice: "Plusieurs fois par jour",
		KeyCRSExperience:      "toujours",
	}
	if got := CRS5(a); !almostEqual(got, 5) {
		t.Fatalf("expected crs5 5, got %v", got)
	}
}

func TestAIAdoption_Blend(t *testing.T) {
	a := domain.Answers{
		KeyAIFrequency: "quotidien",
		KeyAIComfort:   5,
		KeyAIContexts:  []string{"priere", "etude"},
	}
	if got := ContextsScore(2); !almostEqual(got, 2.4) {
		t.Fatalf("expected contexts score 2.4, got %v", got)
	}
	if got := AIAdoption(a); !almostEqual(got, 4.35) {
		t.Fatalf("expected ai adoption 4.35, got %v", got)
	}
}

func TestAIAdoption_Defaults(t *testing.T) {
	// frecuencia 1, confort 2.5, contextos 1 -> 1.525
	if got := AIAdoption(domain.Answers{}); got < 1.52-1e-9 || got > 1.53+1e-9 {
		t.Fatalf("expected ai adoption around 1.525, got %v", got)
	}
	if got := ContextsScore(20); got != 5 {
		t.Fatalf("contexts score must cap at 5, got %v", got)
	}
}

func TestBiasScore(t *testing.T) {
	a := domain.Answers{
		"sd_jamais_menti":      "Vrai",
		"sd_toujours_courtois": 1,
		"sd_jamais_envieux":    "faux",
	}
	if n := BiasCount(a); n != 2 {
		t.Fatalf("expected 2 affirmative items, got %d", n)
	}
	if got := BiasScore(a); !almostEqual(got, 2) {
		t.Fatalf("expected bias score 2, got %v", got)
	}
	if got := AdjustForBias(4, 5, 1); !almostEqual(got, 3.75) {
		t.Fatalf("expected adjusted 3.75, got %v", got)
	}
	if got := AdjustForBias(4, 5, 0); got != 4 {
		t.Fatalf("zero sensitivity must not adjust, got %v", got)
	}
}

func TestResistanceIndex(t *testing.T) {
	tests := []struct {
		name string
		vec  [7]float64
		want float64
	}{
		{"maximal", [7]float64{5, 1, 5, 3, 3, 3, 3}, 100},
		{"minimal", [7]float64{1, 5, 1, 3, 3, 3, 3}, 0},
		{"neutral", [7]float64{3, 3, 3, 3, 3, 3, 3}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResistanceIndex(domain.DimensionsFromVector(tt.vec))
			if !almostEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	low := ResistanceIndex(domain.DimensionsFromVector([7]float64{2, 3, 3, 3, 3, 3, 3}))
	high := ResistanceIndex(domain.DimensionsFromVector([7]float64{4, 3, 3, 3, 3, 3, 3}))
	if high <= low {
		t.Fatalf("resistance must grow with religiosity: %v <= %v", high, low)
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{in: "Très souvent", want: "tres_souvent"},
		{in: "plutôt d'accord", want: "plutot_d_accord"},
		{in: "  Tout à fait d'accord ", want: "tout_a_fait_d_accord"},
		{in: "Peut-être", want: "peut_etre"},
	}
	for _, tt := range tests {
		if got := normalizeLabel(tt.in); got != tt.want {
			t.Fatalf("normalizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
