package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"faithai-profile/internal/domain"
	"faithai-profile/internal/scoring"
)

// score_check calcula el espectro de un conjunto de respuestas sin base de datos ni red.
// Uso: score_check [-catalog f.yaml] [-calibration f.yaml] [answers.json]   (sin archivo lee stdin)
func main() {
	_ = godotenv.Load()
	catalogPath := flag.String("catalog", os.Getenv("CATALOG_PATH"), "catalog YAML (default: $CATALOG_PATH or built-in)")
	calibrationPath := flag.String("calibration", os.Getenv("CALIBRATION_PATH"), "calibration YAML (default: $CALIBRATION_PATH or built-in)")
	validatedOnly := flag.Bool("validated", false, "print only validated scores")
	flag.Parse()

	catalog, err := scoring.LoadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	calibration, err := scoring.LoadCalibration(*calibrationPath)
	if err != nil {
		log.Fatalf("load calibration: %v", err)
	}
	engine, err := scoring.NewEngine(catalog, calibration)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("open answers: %v", err)
		}
		defer f.Close()
		in = f
	}
	answers, err := decodeAnswers(in)
	if err != nil {
		log.Fatalf("decode answers: %v", err)
	}

	var out any = engine.ComputeValidatedScores(answers)
	if !*validatedOnly {
		out = struct {
			Spectrum        domain.ProfileSpectrum `json:"spectrum"`
			ValidatedScores domain.ValidatedScores `json:"validatedScores"`
		}{
			Spectrum:        engine.ComputeProfileSpectrum(answers, engine.DefaultParams()),
			ValidatedScores: engine.ComputeValidatedScores(answers),
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// decodeAnswers acepta un objeto de respuestas o {"answers": {...}}.
func decodeAnswers(r io.Reader) (domain.Answers, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if inner, ok := body["answers"].(map[string]any); ok && len(body) == 1 {
		return domain.Answers(inner), nil
	}
	return domain.Answers(body), nil
}
