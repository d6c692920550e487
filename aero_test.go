package rcdesign

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestComputeAeroWorkedExample(t *testing.T) {
	// ρ=1.225, V=10, S=0.18 m², CL=1.4, CD0=0.02, e=0.8, AR=8
	res, err := ComputeAero(1.225, 10, 0.18, 1.4, 0.02, 8, 0.8)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(res.DynamicPressure, 61.25, 1e-12) {
		t.Fatalf("q = %f, want 61.25", res.DynamicPressure)
	}
	if !scalar.EqualWithinAbs(res.Lift, 15.435, 1e-9) {
		t.Fatalf("lift = %f, want 15.435", res.Lift)
	}
	wantCD := 0.02 + 1.4*1.4/(math.Pi*0.8*8)
	if !scalar.EqualWithinRel(res.DragCoeff, wantCD, 1e-12) {
		t.Fatalf("CD = %f, want %f", res.DragCoeff, wantCD)
	}
	if !scalar.EqualWithinRel(res.Drag, 61.25*0.18*wantCD, 1e-12) {
		t.Fatalf("drag = %f, want q·S·CD", res.Drag)
	}
}

func TestComputeAeroInvalid(t *testing.T) {
	if _, err := ComputeAero(0, 10, 0.18, 1.4, 0.02, 8, 0.8); !errors.Is(err, ErrInvalidInput) {
		t.Fatal("zero density should be rejected")
	}
	if _, err := ComputeAero(1.225, 10, 0, 1.4, 0.02, 8, 0.8); !errors.Is(err, ErrInvalidInput) {
		t.Fatal("zero area should be rejected")
	}
	if _, err := ComputeAero(1.225, 10, 0.18, 1.4, 0.02, 0, 0.8); !errors.Is(err, ErrInvalidInput) {
		t.Fatal("zero AR should be rejected")
	}
	if _, err := ComputeAero(1.225, 10, 0.18, 1.4, 0.02, 8, 1.2); !errors.Is(err, ErrInvalidInput) {
		t.Fatal("Oswald efficiency above 1 should be rejected")
	}
	if _, err := ComputeAero(1.225, -10, 0.18, 1.4, 0.02, 8, 0.8); !errors.Is(err, ErrInvalidInput) {
		t.Fatal("negative velocity should be rejected")
	}
}

func TestStallSpeedValue(t *testing.T) {
	// W = 2 kg · 9.81, ρ=1.225, S=0.18 m²
	v, err := StallSpeed(KgToN(2.0), 1.225, 0.18)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(2 * 2.0 * 9.81 / (1.225 * 0.18))
	if !scalar.EqualWithinRel(v, want, 1e-12) {
		t.Fatalf("stall speed = %f, want %f", v, want)
	}
}

func TestStallSpeedMonotonicity(t *testing.T) {
	base, err := StallSpeed(19.62, 1.225, 0.18)
	if err != nil {
		t.Fatal(err)
	}
	heavier, _ := StallSpeed(25, 1.225, 0.18)
	if heavier <= base {
		t.Fatal("stall speed should increase with weight")
	}
	bigger, _ := StallSpeed(19.62, 1.225, 0.25)
	if bigger >= base {
		t.Fatal("stall speed should decrease with wing area")
	}
	denser, _ := StallSpeed(19.62, 1.4, 0.18)
	if denser >= base {
		t.Fatal("stall speed should decrease with density")
	}
}

func TestStallSpeedInvalid(t *testing.T) {
	cases := [][3]float64{
		{0, 1.225, 0.18},
		{19.62, 0, 0.18},
		{19.62, 1.225, 0},
		{-19.62, 1.225, 0.18},
	}
	for _, c := range cases {
		if _, err := StallSpeed(c[0], c[1], c[2]); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("StallSpeed(%v) should be rejected", c)
		}
	}
}

func TestLiftCurvePoints(t *testing.T) {
	alphas, cls := LiftCurvePoints(1.4, 50)
	if len(alphas) != 50 || len(cls) != 50 {
		t.Fatalf("expected 50 samples, got %d/%d", len(alphas), len(cls))
	}
	if alphas[0] != -5 || alphas[len(alphas)-1] != 15 {
		t.Fatalf("alpha range [%f, %f], want [-5, 15]", alphas[0], alphas[len(alphas)-1])
	}
	for i, cl := range cls {
		if cl < 0 || cl > 1.4 {
			t.Fatalf("CL[%d] = %f outside [0, clMax]", i, cl)
		}
		if alphas[i] > 0 && alphas[i] < 14 && cl == 0 {
			t.Fatalf("CL should be positive at α=%f", alphas[i])
		}
	}
	// The slope saturates at clMax: α=15 gives 0.1·15 = 1.5 > 1.4.
	if cls[len(cls)-1] != 1.4 {
		t.Fatalf("CL at α=15 should clip to clMax, got %f", cls[len(cls)-1])
	}
}

func TestDragPolarPoints(t *testing.T) {
	cls, cds := DragPolarPoints(0.02, 0.8, 8, 50)
	if cls[0] != 0 || cls[len(cls)-1] != 1.5 {
		t.Fatalf("CL range [%f, %f], want [0, 1.5]", cls[0], cls[len(cls)-1])
	}
	if cds[0] != 0.02 {
		t.Fatalf("CD at CL=0 should be CD0, got %f", cds[0])
	}
	for i := 1; i < len(cds); i++ {
		if cds[i] <= cds[i-1] {
			t.Fatal("drag polar should be strictly increasing in CL")
		}
	}
}
