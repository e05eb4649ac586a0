package scoring

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"faithai-profile/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultCatalog(), DefaultCalibration())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func fullAnswers() domain.Answers {
	return domain.Answers{
		KeyCRSIntellect:            "souvent",
		KeyCRSIdeology:             "beaucoup",
		KeyCRSPublicPractice:       "hebdomadaire",
		KeyCRSPrivatePractice:      "quotidien",
		KeyCRSExperience:           "parfois",
		"importance_foi":           8,
		KeyAIFrequency:             "hebdomadaire",
		KeyAIComfort:               3,
		KeyAIContexts:              []any{"travail", "etude"},
		"ia_attitude_generale":     "positive",
		"ia_sermon_acceptable":     "plutôt inacceptable",
		"ia_priere_acceptable":     "inacceptable",
		"sacre_domaines_proteges":  []string{"priere", "confession"},
		"ia_inquietude_ethique":    4,
		"ia_risque_manipulation":   "plutôt d'accord",
		"ia_conscience_possible":   "plutôt pas d'accord",
		"communaute_influence":     4,
		"communaute_discussion_ia": "rarement",
		"avenir_optimisme":         6,
		"avenir_formation_ia":      "peut-être",
		"sd_jamais_menti":          "faux",
	}
}

func answersWithExtremes(high bool) domain.Answers {
	pick := func(hi, lo any) any {
		if high {
			return hi
		}
		return lo
	}
	return domain.Answers{
		KeyCRSIntellect:            pick("toujours", "jamais"),
		KeyCRSIdeology:             pick("totalement", "pas du tout"),
		"importance_foi":           pick(10, 0),
		KeyAIFrequency:             pick("quotidien", "jamais"),
		KeyAIComfort:               pick(5, 1),
		KeyAIContexts:              pick([]string{"a", "b", "c", "d", "e", "f", "g"}, []string{}),
		"ia_priere_acceptable":     pick("inacceptable", "acceptable"),
		"ia_inquietude_ethique":    pick(5, 1),
		"ia_conscience_possible":   pick("tout à fait d'accord", "pas du tout d'accord"),
		"communaute_influence":     pick(5, 1),
		"avenir_optimisme":         pick(10, 0),
		"sd_jamais_menti":          pick("vrai", "faux"),
		"sd_toujours_courtois":     pick("vrai", "faux"),
		"communaute_discussion_ia": pick("toujours", "jamais"),
	}
}

func TestNewEngine_RejectsInvalidConfiguration(t *testing.T) {
	broken := DefaultCatalog()
	delete(broken.Profiles[0].Prototype, domain.DimReligiosity)
	if _, err := NewEngine(broken, DefaultCalibration()); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for incomplete prototype, got %v", err)
	}

	cal := DefaultCalibration()
	delete(cal.Weights, domain.DimAIOpenness)
	if _, err := NewEngine(DefaultCatalog(), cal); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for missing weight table, got %v", err)
	}
}

func TestNewEngine_IsolatedFromCallerMutation(t *testing.T) {
	cat := DefaultCatalog()
	e, err := NewEngine(cat, DefaultCalibration())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	cat.Profiles[0].Prototype[domain.DimReligiosity] = domain.Range{Min: 1, Max: 1, Weight: 100}
	got := e.Catalog().Profiles[0].Prototype[domain.DimReligiosity]
	if got.Min != 4 || got.Weight != 2 {
		t.Fatalf("engine catalog changed after caller mutation: %+v", got)
	}
}

func TestComputeDimensions_Bounds(t *testing.T) {
	e := newTestEngine(t)
	params := e.DefaultParams()
	cases := map[string]domain.Answers{
		"empty":    {},
		"full":     fullAnswers(),
		"high":     answersWithExtremes(true),
		"low":      answersWithExtremes(false),
		"garbage":  {"importance_foi": "beaucoup", KeyAIContexts: 3, KeyCRSIntellect: 42},
		"negative": {"importance_foi": -50, "avenir_optimisme": 1e9},
	}
	for name, a := range cases {
		t.Run(name, func(t *testing.T) {
			dims := e.ComputeDimensions(a, params)
			for _, d := range domain.AllDimensions {
				s := dims.Get(d)
				if s.Value < domain.DimensionMin || s.Value > domain.DimensionMax {
					t.Fatalf("%s value out of range: %v", d, s.Value)
				}
				if s.Percentile < 0 || s.Percentile > 100 {
					t.Fatalf("%s percentile out of range: %v", d, s.Percentile)
				}
			}
		})
	}
}

func TestComputeDimensions_EmptyDefaultsToMidpoint(t *testing.T) {
	e := newTestEngine(t)
	values, defaulted := e.dimensionValues(domain.Answers{})
	for i, v := range values {
		if v != domain.DimensionMidpoint {
			t.Fatalf("dimension %s expected 3.0, got %v", domain.AllDimensions[i], v)
		}
	}
	if len(defaulted) != len(domain.AllDimensions) {
		t.Fatalf("expected all dimensions defaulted, got %v", defaulted)
	}
}

func TestComputeDimensions_BiasOnlyAdjustsAnsweredDimensions(t *testing.T) {
	e := newTestEngine(t)
	bias := domain.Answers{}
	for _, k := range SocialDesirabilityItems {
		bias[k] = "vrai"
	}
	values, _ := e.dimensionValues(bias)
	if values[domain.DimReligiosity.Index()] != domain.DimensionMidpoint {
		t.Fatalf("unanswered religiosity must stay neutral, got %v", values[0])
	}

	for k, v := range answersWithExtremes(true) {
		bias[k] = v
	}
	bias[KeyCRSPublicPractice] = "plusieurs fois par semaine"
	bias[KeyCRSPrivatePractice] = "plusieurs fois par jour"
	bias[KeyCRSExperience] = "très souvent"
	values, _ = e.dimensionValues(bias)
	// 5 - 5*1.0*0.05 = 4.75 -> 4.8
	if got := values[domain.DimReligiosity.Index()]; !almostEqual(got, 4.8) {
		t.Fatalf("expected bias-adjusted religiosity 4.8, got %v", got)
	}
	if got := values[domain.DimAIOpenness.Index()]; got != 5 {
		t.Fatalf("ai openness has zero sensitivity, expected 5, got %v", got)
	}
}

func TestPercentile(t *testing.T) {
	p := domain.NormalParams{Mean: 3, StdDev: 1}
	if got := Percentile(3, p); got != 50 {
		t.Fatalf("expected 50 at the mean, got %v", got)
	}
	if got := Percentile(4, p); !almostEqual(got, 84.1) {
		t.Fatalf("expected 84.1 one sd above, got %v", got)
	}
	if lo, hi := Percentile(2, p), Percentile(4, p); lo >= hi {
		t.Fatalf("percentile must be monotone: %v >= %v", lo, hi)
	}
	degenerate := domain.NormalParams{Mean: 3}
	if Percentile(2, degenerate) != 0 || Percentile(3, degenerate) != 50 || Percentile(4, degenerate) != 100 {
		t.Fatalf("zero stddev must degrade to a step")
	}
}

func TestComputeDimensions_UsesMeasuredParams(t *testing.T) {
	e := newTestEngine(t)
	measured := domain.PopulationParams{
		Source: domain.ParamsSourceMeasured,
		Dimensions: map[domain.Dimension]domain.NormalParams{
			domain.DimReligiosity: {Mean: 3, StdDev: 1},
			domain.DimAIOpenness:  {Mean: 3, StdDev: 0},
		},
	}
	dims := e.ComputeDimensions(domain.Answers{}, measured)
	if got := dims.Religiosity.Percentile; got != 50 {
		t.Fatalf("expected measured religiosity percentile 50, got %v", got)
	}
	want := Percentile(3, e.Calibration().Population[domain.DimAIOpenness])
	if got := dims.AIOpenness.Percentile; got != want {
		t.Fatalf("zero-stddev measured params must fall back to defaults: got %v want %v", got, want)
	}
}

func TestComputeProfileSpectrum_Deterministic(t *testing.T) {
	e := newTestEngine(t)
	params := e.DefaultParams()
	a := fullAnswers()

	first := e.ComputeProfileSpectrum(a, params)
	for i := 0; i < 5; i++ {
		again := e.ComputeProfileSpectrum(a, params)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("spectrum differs between calls")
		}
	}
	b1, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b2, _ := json.Marshal(e.ComputeProfileSpectrum(a, params))
	if string(b1) != string(b2) {
		t.Fatalf("serialized spectrum differs between calls")
	}
}

func TestComputeProfileSpectrum_Shape(t *testing.T) {
	e := newTestEngine(t)
	params := e.DefaultParams()
	for name, a := range map[string]domain.Answers{
		"empty": {},
		"full":  fullAnswers(),
		"high":  answersWithExtremes(true),
		"low":   answersWithExtremes(false),
	} {
		t.Run(name, func(t *testing.T) {
			s := e.ComputeProfileSpectrum(a, params)
			if len(s.AllMatches) != len(DefaultCatalog().Profiles) {
				t.Fatalf("expected one match per profile, got %d", len(s.AllMatches))
			}
			for _, m := range s.AllMatches {
				if m.MatchScore < 0 || m.MatchScore > 100 {
					t.Fatalf("match score out of range: %+v", m)
				}
				if m.MatchScore > s.Primary.MatchScore {
					t.Fatalf("primary %+v is not the maximum (%+v)", s.Primary, m)
				}
			}
			if s.Primary != s.AllMatches[0] {
				t.Fatalf("primary must be the first ranked match")
			}
			if s.Secondary != nil && (s.Secondary.MatchScore < 15 || *s.Secondary != s.AllMatches[1]) {
				t.Fatalf("unexpected secondary %+v", s.Secondary)
			}
			sp, ok := e.catalog.SubProfile(domain.SubProfileID(s.SubProfile.ProfileID))
			if !ok || sp.Parent != s.PrimaryProfile() {
				t.Fatalf("sub-profile %q does not belong to %q", s.SubProfile.ProfileID, s.Primary.ProfileID)
			}
			in := s.Interpretation
			if in.Headline == "" || in.Narrative == "" {
				t.Fatalf("missing headline or narrative")
			}
			if n := len(in.Strengths); n < 2 || n > 4 {
				t.Fatalf("expected 2-4 strengths, got %d", n)
			}
			if n := len(in.BlindSpots); n < 1 || n > 3 {
				t.Fatalf("expected 1-3 blind spots, got %d", n)
			}
			if n := len(in.UniqueAspects); n < 1 || n > 3 {
				t.Fatalf("expected 1-3 unique aspects, got %d", n)
			}
			if n := len(s.GrowthAreas); n < 1 || n > 2 {
				t.Fatalf("expected 1-2 growth areas, got %d", n)
			}
		})
	}
}

func TestComputeValidatedScores(t *testing.T) {
	e := newTestEngine(t)
	a := domain.Answers{
		KeyCRSIntellect: "souvent",
		KeyAIFrequency:  "quotidien",
		KeyAIComfort:    5,
		KeyAIContexts:   []string{"priere", "etude"},
	}
	got := e.ComputeValidatedScores(a)
	if !almostEqual(got.CRS5, 3.2) || !almostEqual(got.AIAdoption, 4.35) {
		t.Fatalf("unexpected validated scores: %+v", got)
	}
	if got.BiasAdjustment != 0 {
		t.Fatalf("expected no bias, got %v", got.BiasAdjustment)
	}
	if got.ResistanceIndex < 0 || got.ResistanceIndex > 100 {
		t.Fatalf("resistance index out of range: %v", got.ResistanceIndex)
	}
}

func TestShouldRecalibrate(t *testing.T) {
	e := newTestEngine(t)
	if e.ShouldRecalibrate(499) {
		t.Fatalf("499 responses must not trigger recalibration")
	}
	if !e.ShouldRecalibrate(500) {
		t.Fatalf("500 responses must trigger recalibration")
	}
}
