package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"faithai-profile/internal/domain"
	"faithai-profile/internal/scoring"
)

func newEngine(t *testing.T) *scoring.Engine {
	t.Helper()
	e, err := scoring.NewEngine(scoring.DefaultCatalog(), scoring.DefaultCalibration())
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e
}

func TestPrototypeScenariosPass(t *testing.T) {
	engine := newEngine(t)
	scenarios := prototypeScenarios(scoring.DefaultCatalog())
	if len(scenarios) != 8 {
		t.Fatalf("expected one scenario per profile, got %d", len(scenarios))
	}
	for _, sc := range scenarios {
		if res := evaluate(engine, sc); !res.Pass {
			t.Fatalf("%s: got %s, expected %s", sc.Name, res.Primary, sc.Expected)
		}
	}
}

func TestEvaluateAnswersScenario(t *testing.T) {
	engine := newEngine(t)
	answers := domain.Answers{"importance_foi": 10, scoring.KeyAIFrequency: "quotidien"}
	primary := engine.ComputeProfileSpectrum(answers, engine.DefaultParams()).PrimaryProfile()

	res := evaluate(engine, Scenario{Name: "match", Answers: answers, Expected: primary})
	if !res.Pass || res.Score <= 0 {
		t.Fatalf("expected pass with score, got %+v", res)
	}

	wrong := domain.ProfileGuardian
	if primary == wrong {
		wrong = domain.ProfileVisionary
	}
	if res := evaluate(engine, Scenario{Name: "mismatch", Answers: answers, Expected: wrong}); res.Pass {
		t.Fatalf("expected failure for %s, got %+v", wrong, res)
	}
}

func TestLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	content := strings.Join([]string{
		"scenarios:",
		"  - name: vecteur gardien",
		"    vector: [4.5, 1.5, 4.5, 4.0, 1.5, 4.0, 2.0]",
		"    expected: gardien_du_sacre",
		"  - name: reponses",
		"    answers:",
		"      importance_foi: 9",
		"      ctrl_ia_frequence: jamais",
		"    expected: intendant_prudent",
		"    accept_secondary: true",
	}, "\n")
	if err := os.WriteFile(good, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	scenarios, err := loadScenarios(good)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(scenarios) != 2 || scenarios[0].Vector == nil || scenarios[0].Vector[0] != 4.5 {
		t.Fatalf("unexpected scenarios: %+v", scenarios)
	}
	if n, ok := scenarios[1].Answers.GetNumber("importance_foi"); !ok || n != 9 {
		t.Fatalf("expected numeric answer from yaml, got %v %v", n, ok)
	}
	if !scenarios[1].AcceptSecondary {
		t.Fatalf("expected accept_secondary")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("scenarios:\n  - name: vide\n    expected: gardien_du_sacre\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadScenarios(bad); err == nil {
		t.Fatalf("expected error for scenario without input")
	}
	if _, err := loadScenarios(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
