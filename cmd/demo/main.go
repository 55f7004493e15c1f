// Command demo walks a single RNAP through the canonical initial
// transcription sequence and prints its state, or runs a YAML scenario
// script with -scenario.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/txkinetics/inittx"
	"github.com/txkinetics/inittx/scenario"
)

func main() {
	scenarioPath := flag.String("scenario", "", "path to a YAML scenario script")
	its := flag.String("its", "ATAATAGATTCAT", "transcribed-region sequence for active-site lookups")
	flag.Parse()

	if *scenarioPath != "" {
		runScenario(*scenarioPath)
		return
	}

	r := inittx.New()

	dinuc, err := r.ActiveSiteDinucleotide(*its)
	if err != nil {
		log.Fatalf("active-site lookup: %v", err)
	}
	fmt.Printf("Active-site dinucleotide: %s\n\n", dinuc)

	r.GrowRNA()
	r.Translocate()
	r.ReverseTranslocate()
	r.Pause()
	r.Backtrack()

	fmt.Print(r)
}

func runScenario(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read scenario: %v", err)
	}
	cfg, err := scenario.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	r, trace, err := scenario.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("--- %s ---\n", cfg.Name)
	for _, sr := range trace {
		fmt.Println(sr)
	}
	fmt.Printf("\n%s", r)
}
