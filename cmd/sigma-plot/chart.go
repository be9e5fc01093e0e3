package main

import (
	"fmt"
	"math/big"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/njchilds90/gosigma"
)

type expansionSeries struct {
	shapes         []string
	coefficients   []float64
	multiplicities []float64
}

// expansion returns (Σa)^e term by term, highest partition first.
func expansion(ring *gosigma.Ring, e int) (expansionSeries, error) {
	p, err := ring.Pow(gosigma.Sigma("a"), e)
	if err != nil {
		return expansionSeries{}, err
	}
	var s expansionSeries
	for _, t := range p.Prune().Sorted().Terms() {
		m, err := ring.Multiplicity(t.Shape())
		if err != nil {
			return expansionSeries{}, err
		}
		s.shapes = append(s.shapes, "Σ"+t.Shape().String())
		s.coefficients = append(s.coefficients, toFloat(t.Coefficient()))
		s.multiplicities = append(s.multiplicities, toFloat(m))
	}
	return s, nil
}

func toFloat(n *big.Int) float64 {
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

func toBarItems(vals []float64) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newExpansionChart(ring *gosigma.Ring, e int, s expansionSeries) *charts.Bar {
	title := fmt.Sprintf("(Σa)^%d", e)
	subtitle := fmt.Sprintf("n=%d, %d shapes", ring.Degree(), len(s.shapes))
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(s.shapes).
		AddSeries("coefficient", toBarItems(s.coefficients)).
		AddSeries("monomials per shape", toBarItems(s.multiplicities)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}
