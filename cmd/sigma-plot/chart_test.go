package main

import (
	"testing"

	"github.com/njchilds90/gosigma"
)

func TestExpansion_Cube(t *testing.T) {
	s, err := expansion(gosigma.MustRing(3), 3)
	if err != nil {
		t.Fatalf("expansion: %v", err)
	}
	// (a+b+c)^3 = Σa3 + 3Σa2b + 6Σabc
	wantShapes := []string{"Σa3", "Σa2b", "Σabc"}
	wantCoeffs := []float64{1, 3, 6}
	wantMults := []float64{3, 6, 1}
	if len(s.shapes) != len(wantShapes) {
		t.Fatalf("want %v, got %v", wantShapes, s.shapes)
	}
	for i := range wantShapes {
		if s.shapes[i] != wantShapes[i] || s.coefficients[i] != wantCoeffs[i] || s.multiplicities[i] != wantMults[i] {
			t.Errorf("row %d: want (%s, %v, %v), got (%s, %v, %v)", i,
				wantShapes[i], wantCoeffs[i], wantMults[i], s.shapes[i], s.coefficients[i], s.multiplicities[i])
		}
	}
}

func TestNewExpansionChart(t *testing.T) {
	r := gosigma.MustRing(2)
	s, err := expansion(r, 2)
	if err != nil {
		t.Fatalf("expansion: %v", err)
	}
	if bar := newExpansionChart(r, 2, s); bar == nil {
		t.Fatal("want a chart")
	}
}
