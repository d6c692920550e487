// Package rcdesign derives the basic geometry, aerodynamics and longitudinal
// stability of a small radio-controlled fixed-wing aircraft from a handful of
// design inputs, and assembles the results into a flat report record consumed
// by the console, CSV, chart, XLSX and PDF exporters.
//
// Two conventions are fixed across the whole package and documented in
// DESIGN.md: the mean aerodynamic chord always uses the trapezoidal formula
// (2/3)·Cr·(1+λ+λ²)/(1+λ), and the static margin is always the percent-of-MAC
// difference NP% − CG%.
//
// All calculator functions are pure and unit-agnostic: feed them consistent
// units and the outputs come back in the same units. The batch pipeline in
// ComputeDesign works in SI internally and converts to millimeters only for
// presentation.
package rcdesign
