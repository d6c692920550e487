package rcdesign

import (
	"fmt"
	"math"
)

// AeroResult holds the steady-flight forces for one flight condition. Units
// follow the inputs: with SI inputs (kg/m³, m/s, m²) the forces are in Newtons.
type AeroResult struct {
	DynamicPressure float64
	Lift            float64
	Drag            float64
	DragCoeff       float64
}

// ComputeAero evaluates the lift and drag equations with a parabolic drag
// polar: q = ½ρV², L = qS·CL, CD = CD0 + CL²/(π·e·AR), D = qS·CD.
func ComputeAero(density, velocity, wingArea, liftCoeff, zeroDragCoeff, aspectRatio, oswald float64) (AeroResult, error) {
	if err := requirePositive("air density", density); err != nil {
		return AeroResult{}, err
	}
	if err := requirePositive("wing area", wingArea); err != nil {
		return AeroResult{}, err
	}
	if err := requirePositive("aspect ratio", aspectRatio); err != nil {
		return AeroResult{}, err
	}
	if oswald <= 0 || oswald > 1 {
		return AeroResult{}, fmt.Errorf("%w: Oswald efficiency must be in (0, 1], got %g", ErrInvalidInput, oswald)
	}
	if velocity < 0 || math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return AeroResult{}, fmt.Errorf("%w: velocity must not be negative, got %g", ErrInvalidInput, velocity)
	}
	q := 0.5 * density * velocity * velocity
	cd := zeroDragCoeff + liftCoeff*liftCoeff/(math.Pi*oswald*aspectRatio)
	return AeroResult{
		DynamicPressure: q,
		Lift:            q * wingArea * liftCoeff,
		Drag:            q * wingArea * cd,
		DragCoeff:       cd,
	}, nil
}

// StallSpeed returns the 1g stall speed √(2W/(ρS)). The weight must already be
// a force (Newtons when SI units are used); convert a mass input with KgToN.
func StallSpeed(weight, density, wingArea float64) (float64, error) {
	if err := requirePositive("weight", weight); err != nil {
		return 0, err
	}
	if err := requirePositive("air density", density); err != nil {
		return 0, err
	}
	if err := requirePositive("wing area", wingArea); err != nil {
		return 0, err
	}
	return math.Sqrt(2 * weight / (density * wingArea)), nil
}

// LiftCurvePoints samples the linear thin-airfoil lift slope CL = 0.1·α over
// α ∈ [-5°, 15°], clipped to [0, clMax]. Used for the lift-curve chart.
func LiftCurvePoints(clMax float64, n int) (alphas, cls []float64) {
	if n < 2 {
		n = 2
	}
	alphas = make([]float64, n)
	cls = make([]float64, n)
	for i := range alphas {
		α := -5.0 + 20.0*float64(i)/float64(n-1)
		cl := 0.1 * α
		if cl < 0 {
			cl = 0
		} else if cl > clMax {
			cl = clMax
		}
		alphas[i] = α
		cls[i] = cl
	}
	return alphas, cls
}

// DragPolarPoints samples CD = CD0 + CL²/(π·e·AR) over CL ∈ [0, 1.5]. Used for
// the drag-polar chart.
func DragPolarPoints(zeroDragCoeff, oswald, aspectRatio float64, n int) (cls, cds []float64) {
	if n < 2 {
		n = 2
	}
	cls = make([]float64, n)
	cds = make([]float64, n)
	for i := range cls {
		cl := 1.5 * float64(i) / float64(n-1)
		cls[i] = cl
		cds[i] = zeroDragCoeff + cl*cl/(math.Pi*oswald*aspectRatio)
	}
	return cls, cds
}
