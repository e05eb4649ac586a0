package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"faithai-profile/internal/domain"
	"faithai-profile/internal/scoring"
)

// Scenario es un caso de regresion: respuestas (o un vector ya calculado) y el perfil esperado.
type Scenario struct {
	Name            string           `yaml:"name"`
	Answers         domain.Answers   `yaml:"answers"`
	Vector          *[7]float64      `yaml:"vector"`
	Expected        domain.ProfileID `yaml:"expected"`
	AcceptSecondary bool             `yaml:"accept_secondary"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

type result struct {
	Scenario  Scenario
	Primary   domain.ProfileID
	Secondary domain.ProfileID
	Score     float64
	Pass      bool
}

func loadScenarios(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	for i, sc := range f.Scenarios {
		if sc.Expected == "" {
			return nil, fmt.Errorf("scenario %d (%s): expected profile missing", i, sc.Name)
		}
		if sc.Vector == nil && sc.Answers == nil {
			return nil, fmt.Errorf("scenario %d (%s): answers or vector required", i, sc.Name)
		}
	}
	return f.Scenarios, nil
}

// prototypeScenarios genera un caso por perfil con el centro de cada intervalo del prototipo.
func prototypeScenarios(catalog scoring.Catalog) []Scenario {
	out := make([]Scenario, 0, len(catalog.Profiles))
	for _, p := range catalog.Profiles {
		var v [7]float64
		for i, d := range domain.AllDimensions {
			v[i] = domain.DimensionMidpoint
			if r, ok := p.Prototype[d]; ok {
				v[i] = r.Midpoint()
			}
		}
		vec := v
		out = append(out, Scenario{
			Name:     "centro " + p.Title,
			Vector:   &vec,
			Expected: p.ID,
		})
	}
	return out
}

func evaluate(engine *scoring.Engine, sc Scenario) result {
	res := result{Scenario: sc}
	if sc.Vector != nil {
		res.Primary = engine.Classify(*sc.Vector)
		res.Pass = res.Primary == sc.Expected
		return res
	}

	spectrum := engine.ComputeProfileSpectrum(sc.Answers, engine.DefaultParams())
	res.Primary = spectrum.PrimaryProfile()
	res.Score = spectrum.Primary.MatchScore
	if spectrum.Secondary != nil {
		res.Secondary = domain.ProfileID(spectrum.Secondary.ProfileID)
	}
	res.Pass = res.Primary == sc.Expected || (sc.AcceptSecondary && res.Secondary == sc.Expected)
	return res
}
