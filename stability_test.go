package rcdesign

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestComputeStabilityPercentConvention(t *testing.T) {
	s, err := ComputeStability(153.125, 25, 30)
	if err != nil {
		t.Fatal(err)
	}
	if s.StaticMargin != 5 {
		t.Fatalf("SM(NP=30, CG=25) = %f, want exactly 5", s.StaticMargin)
	}
	if !scalar.EqualWithinRel(s.AerodynamicCenter, 0.25*153.125, 1e-12) {
		t.Fatalf("aerodynamic center = %f, want quarter chord", s.AerodynamicCenter)
	}
	if !scalar.EqualWithinRel(s.NeutralPoint, 0.30*153.125, 1e-12) {
		t.Fatalf("NP position = %f", s.NeutralPoint)
	}
	if !scalar.EqualWithinRel(s.CenterOfGravity, 0.25*153.125, 1e-12) {
		t.Fatalf("CG position = %f", s.CenterOfGravity)
	}
}

func TestComputeStabilityInvalid(t *testing.T) {
	if _, err := ComputeStability(0, 25, 30); !errors.Is(err, ErrInvalidInput) {
		t.Fatal("zero MAC should be rejected")
	}
	if _, err := ComputeStability(150, -5, 30); !errors.Is(err, ErrInvalidInput) {
		t.Fatal("negative CG percent should be rejected")
	}
	if _, err := ComputeStability(150, 25, 130); !errors.Is(err, ErrInvalidInput) {
		t.Fatal("NP percent above 100 should be rejected")
	}
}

func TestClassifyBands(t *testing.T) {
	cases := []struct {
		sm   float64
		want StabilityClass
	}{
		{-3, Unstable},
		{0, Unstable},
		{0.1, LowMargin},
		{4.999, LowMargin},
		{5, Stable},
		{15, Stable},
		{15.001, Sluggish},
		{25, Sluggish},
	}
	for _, tc := range cases {
		got := StabilityResult{StaticMargin: tc.sm}.Classify()
		if got != tc.want {
			t.Fatalf("Classify(SM=%f) = %v, want %v", tc.sm, got, tc.want)
		}
	}
}

func TestStabilityClassString(t *testing.T) {
	for _, c := range []StabilityClass{Unstable, LowMargin, Stable, Sluggish} {
		if c.String() == "" {
			t.Fatalf("empty string for class %d", c)
		}
	}
}
