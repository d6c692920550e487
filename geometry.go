package rcdesign

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a design parameter is non-positive, out of
// its declared range, or would make the geometry degenerate. Validation happens
// before any arithmetic so the formulas never see a zero span or aspect ratio.
var ErrInvalidInput = errors.New("invalid input")

// WingSpec holds the planform of a trapezoidal wing. All lengths share the unit
// of the span passed in; the math is unit-agnostic.
type WingSpec struct {
	Span        float64
	AspectRatio float64
	TaperRatio  float64
	Area        float64
	MAC         float64
	RootChord   float64
	TipChord    float64
}

// TailSpec holds the planform of a horizontal or vertical stabilizer.
type TailSpec struct {
	Area       float64
	Span       float64
	TaperRatio float64
	RootChord  float64
	TipChord   float64
}

// FuselageSpec holds the overall fuselage dimensions, each derived as a
// fraction of the previous one (length from span, height from length, width
// from height).
type FuselageSpec struct {
	Length float64
	Height float64
	Width  float64
}

// ComputeWing sizes a trapezoidal wing from its span, aspect ratio and taper
// ratio:
//
//	S  = b²/AR
//	Cr = 2S / (b(1+λ))
//	Ct = λ·Cr
//
// The mean aerodynamic chord uses the full trapezoidal formula
// MAC = (2/3)·Cr·(1+λ+λ²)/(1+λ), which reduces to the chord itself for a
// rectangular wing (λ=1). The simplified S/b approximation is deliberately not
// used; see DESIGN.md.
func ComputeWing(span, aspectRatio, taperRatio float64) (WingSpec, error) {
	if err := requirePositive("span", span); err != nil {
		return WingSpec{}, err
	}
	if err := requirePositive("aspect ratio", aspectRatio); err != nil {
		return WingSpec{}, err
	}
	if err := requirePositive("taper ratio", taperRatio); err != nil {
		return WingSpec{}, err
	}
	λ := taperRatio
	area := span * span / aspectRatio
	if math.IsInf(area, 0) {
		return WingSpec{}, fmt.Errorf("%w: span %g with aspect ratio %g overflows the wing area", ErrInvalidInput, span, aspectRatio)
	}
	cr := 2 * area / (span * (1 + λ))
	return WingSpec{
		Span:        span,
		AspectRatio: aspectRatio,
		TaperRatio:  λ,
		Area:        area,
		MAC:         trapezoidMAC(cr, λ),
		RootChord:   cr,
		TipChord:    λ * cr,
	}, nil
}

// ComputeTail sizes a stabilizer whose area is a fraction of the wing area and
// whose span follows from its own aspect ratio: b = √(AR·S).
func ComputeTail(areaFraction, wingArea, aspectRatio, taperRatio float64) (TailSpec, error) {
	if err := requirePositive("tail area fraction", areaFraction); err != nil {
		return TailSpec{}, err
	}
	if err := requirePositive("wing area", wingArea); err != nil {
		return TailSpec{}, err
	}
	if err := requirePositive("tail aspect ratio", aspectRatio); err != nil {
		return TailSpec{}, err
	}
	area := areaFraction * wingArea
	span := math.Sqrt(aspectRatio * area)
	return TailFromSpan(area, span, taperRatio)
}

// TailFromSpan sizes a stabilizer whose span is imposed externally (e.g. the
// horizontal tail spanning a fixed fraction of the wingspan, or a vertical fin
// as tall as the fuselage).
func TailFromSpan(area, span, taperRatio float64) (TailSpec, error) {
	if err := requirePositive("tail area", area); err != nil {
		return TailSpec{}, err
	}
	if err := requirePositive("tail span", span); err != nil {
		return TailSpec{}, err
	}
	if err := requirePositive("tail taper ratio", taperRatio); err != nil {
		return TailSpec{}, err
	}
	λ := taperRatio
	cr := 2 * area / (span * (1 + λ))
	return TailSpec{
		Area:       area,
		Span:       span,
		TaperRatio: λ,
		RootChord:  cr,
		TipChord:   λ * cr,
	}, nil
}

// ComputeFuselage chains the fuselage dimensions off the wingspan. A zero
// widthFraction is allowed and leaves Width at zero, matching designs that only
// size length and height.
func ComputeFuselage(span, lengthFraction, heightFraction, widthFraction float64) (FuselageSpec, error) {
	if err := requirePositive("span", span); err != nil {
		return FuselageSpec{}, err
	}
	if err := requirePositive("fuselage length fraction", lengthFraction); err != nil {
		return FuselageSpec{}, err
	}
	if err := requirePositive("fuselage height fraction", heightFraction); err != nil {
		return FuselageSpec{}, err
	}
	if widthFraction < 0 {
		return FuselageSpec{}, fmt.Errorf("%w: fuselage width fraction must not be negative, got %g", ErrInvalidInput, widthFraction)
	}
	length := lengthFraction * span
	height := heightFraction * length
	return FuselageSpec{
		Length: length,
		Height: height,
		Width:  widthFraction * height,
	}, nil
}

// ControlSurfaceArea returns the area of an elevator or rudder sized as a
// fraction of its parent stabilizer area.
func ControlSurfaceArea(fraction, tailArea float64) (float64, error) {
	if fraction <= 0 || fraction > 1 {
		return 0, fmt.Errorf("%w: control surface fraction must be in (0, 1], got %g", ErrInvalidInput, fraction)
	}
	if err := requirePositive("tail area", tailArea); err != nil {
		return 0, err
	}
	return fraction * tailArea, nil
}

// trapezoidMAC is the mean aerodynamic chord of a trapezoidal planform.
func trapezoidMAC(rootChord, λ float64) float64 {
	return (2.0 / 3.0) * rootChord * (1 + λ + λ*λ) / (1 + λ)
}

func requirePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidInput, name, v)
	}
	return nil
}
