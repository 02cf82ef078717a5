package geometry

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		roots   []float64
	}{
		{
			name: "zero leading coefficient yields no roots",
			a:    0, b: 2, c: -4,
			roots: nil,
		},
		{
			name: "negative discriminant yields no roots",
			a:    1, b: 0, c: 1,
			roots: nil,
		},
		{
			name: "double root reported once",
			a:    1, b: -2, c: 1,
			roots: []float64{1},
		},
		{
			name: "two distinct roots",
			a:    1, b: 0, c: -1,
			roots: []float64{1, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := solveQuadratic(tt.a, tt.b, tt.c)
			if len(roots) != len(tt.roots) {
				t.Fatalf("Expected %d roots, got %d", len(tt.roots), len(roots))
			}
			for i, expected := range tt.roots {
				if math.Abs(roots[i]-expected) > 1e-9 {
					t.Errorf("Root %d: expected %f, got %f", i, expected, roots[i])
				}
			}
		})
	}
}

func TestComponentIntersection_Closer_NaN(t *testing.T) {
	nan := ComponentIntersection{T: math.NaN()}
	finite := ComponentIntersection{T: 1}

	// NaN comparisons resolve to "not closer" in both directions, keeping
	// minimum-t selection total.
	if nan.Closer(finite) {
		t.Error("NaN intersection must not be closer than a finite one")
	}
	if finite.Closer(nan) {
		t.Error("Comparison against NaN must report false")
	}
}

func TestComponentIntersection_Closer(t *testing.T) {
	near := ComponentIntersection{T: 1}
	far := ComponentIntersection{T: 2}

	if !near.Closer(far) {
		t.Error("Expected t=1 to be closer than t=2")
	}
	if far.Closer(near) {
		t.Error("Expected t=2 not to be closer than t=1")
	}
	if near.Closer(near) {
		t.Error("Equal t must not compare as closer")
	}
}
