// cmd/sigma-plot/main.go: charts of power-sum expansions
//
// Expands (Σa)^e in the Σ basis and writes an HTML page with one bar chart
// per exponent: the coefficient of every shape, and the number of monomials
// each shape stands for.
//
// Usage:
//
//	go run ./cmd/sigma-plot -n 4 -max 5 -out ./plots
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/njchilds90/gosigma"
	"github.com/njchilds90/gosigma/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	degree := flag.Int("n", cfg.Degree, "Number of variables")
	maxExp := flag.Int("max", 4, "Largest exponent to expand")
	outDir := flag.String("out", cfg.PlotDir, "Output directory")
	flag.Parse()

	ring, err := gosigma.NewRing(*degree, gosigma.WithProductCache(gosigma.NewMemoryCache()))
	if err != nil {
		log.Fatalf("invalid ring: %v", err)
	}
	if *maxExp < 1 {
		log.Fatalf("-max must be at least 1, got %d", *maxExp)
	}

	page := components.NewPage()
	for e := 1; e <= *maxExp; e++ {
		start := time.Now()
		series, err := expansion(ring, e)
		if err != nil {
			log.Fatalf("expand (Σa)^%d: %v", e, err)
		}
		log.Printf("(Σa)^%d: %d shapes in %s", e, len(series.shapes), time.Since(start))
		page.AddCharts(newExpansionChart(ring, e, series))
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("sigma_powers_n%d_%s.html", *degree, time.Now().Format("20060102_150405")))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Expansion page:", htmlPath)
}
