package rcdesign

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

const (
	mmPerM   = 1000.0
	mm2PerM2 = 1e6
	// EarthGravity is the gravitational acceleration used to convert a mass
	// input in kilograms into a weight in Newtons.
	EarthGravity = 9.81 // m/s²
)

// MMToM converts millimeters to meters.
func MMToM(x float64) float64 {
	return x / mmPerM
}

// MToMM converts meters to millimeters.
func MToMM(x float64) float64 {
	return x * mmPerM
}

// MM2ToM2 converts square millimeters to square meters.
func MM2ToM2(x float64) float64 {
	return x / mm2PerM2
}

// M2ToMM2 converts square meters to square millimeters.
func M2ToMM2(x float64) float64 {
	return x * mm2PerM2
}

// KgToN converts a mass in kilograms to a weight in Newtons.
func KgToN(kg float64) float64 {
	return kg * EarthGravity
}

// Round rounds x to the given number of decimal places.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

// FmtMM formats a length in millimeters for display, e.g. "1,234.500 mm".
func FmtMM(x float64) string {
	return humanize.CommafWithDigits(x, 3) + " mm"
}

// FmtM formats a length given in millimeters as meters, e.g. "1.235 m".
func FmtM(xmm float64) string {
	return fmt.Sprintf("%.3f m", MMToM(xmm))
}

// FmtMM2 formats an area in square millimeters, e.g. "180,000.000 mm²".
func FmtMM2(x float64) string {
	return humanize.CommafWithDigits(x, 3) + " mm²"
}

// FmtM2 formats an area given in square millimeters as square meters.
func FmtM2(xmm2 float64) string {
	return fmt.Sprintf("%.4f m²", MM2ToM2(xmm2))
}
