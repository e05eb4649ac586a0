package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"faithai-profile/internal/scoring"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// profile_check corre escenarios de regresion contra el catalogo y la calibracion.
// Sin -scenarios usa los centros de los prototipos del catalogo.
func main() {
	_ = godotenv.Load()
	catalogPath := flag.String("catalog", os.Getenv("CATALOG_PATH"), "catalog YAML (default: $CATALOG_PATH or built-in)")
	calibrationPath := flag.String("calibration", os.Getenv("CALIBRATION_PATH"), "calibration YAML (default: $CALIBRATION_PATH or built-in)")
	scenariosPath := flag.String("scenarios", "", "scenarios YAML")
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

	scenarios := prototypeScenarios(catalog)
	if *scenariosPath != "" {
		scenarios, err = loadScenarios(*scenariosPath)
		if err != nil {
			log.Fatalf("load scenarios: %v", err)
		}
	}

	failed := 0
	for _, sc := range scenarios {
		res := evaluate(engine, sc)
		status, color := "OK  ", colorGreen
		if !res.Pass {
			status, color = "FAIL", colorRed
			failed++
		}
		fmt.Printf("%s%s%s %s%-40s%s primary=%s", color, status, colorReset, colorCyan, sc.Name, colorReset, res.Primary)
		if res.Score > 0 {
			fmt.Printf(" (%.1f)", res.Score)
		}
		if res.Secondary != "" {
			fmt.Printf(" secondary=%s", res.Secondary)
		}
		if !res.Pass {
			fmt.Printf(" expected=%s", sc.Expected)
		}
		fmt.Println()
	}

	fmt.Printf("\n%d/%d scenarios passed\n", len(scenarios)-failed, len(scenarios))
	if failed > 0 {
		os.Exit(1)
	}
}
