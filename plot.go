package rcdesign

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
	chartPoints = 50
)

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// PlotLiftCurve renders CL versus angle of attack to a PNG and returns the
// file path.
func PlotLiftCurve(clMax float64, conf ExportConfig) (string, error) {
	alphas, cls := LiftCurvePoints(clMax, chartPoints)
	p := plot.New()
	p.Title.Text = "Lift Curve"
	p.X.Label.Text = "Angle of Attack (deg)"
	p.Y.Label.Text = "CL"
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLines(p, "Lift Curve", xys(alphas, cls)); err != nil {
		return "", fmt.Errorf("lift curve plot: %w", err)
	}
	path := conf.Path("png")
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("lift curve plot: %w", err)
	}
	return path, nil
}

// PlotDragPolar renders CD versus CL to a PNG and returns the file path.
func PlotDragPolar(zeroDragCoeff, oswald, aspectRatio float64, conf ExportConfig) (string, error) {
	cls, cds := DragPolarPoints(zeroDragCoeff, oswald, aspectRatio, chartPoints)
	p := plot.New()
	p.Title.Text = "Drag Polar"
	p.X.Label.Text = "CL"
	p.Y.Label.Text = "CD"
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLines(p, "Drag Polar", xys(cls, cds)); err != nil {
		return "", fmt.Errorf("drag polar plot: %w", err)
	}
	path := conf.Path("png")
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("drag polar plot: %w", err)
	}
	return path, nil
}

// PlotCGvsNP renders the CG and neutral-point positions along the MAC to a PNG
// and returns the file path. The neutral point is a horizontal line; the CG is
// a vertical marker.
func PlotCGvsNP(s StabilityResult, conf ExportConfig) (string, error) {
	p := plot.New()
	p.Title.Text = "CG vs Neutral Point"
	p.X.Label.Text = "Position along MAC (mm)"
	p.Y.Label.Text = "Position (mm)"
	p.Add(plotter.NewGrid())

	macLen := 4 * s.AerodynamicCenter // AC is fixed at quarter chord
	np := make(plotter.XYs, chartPoints)
	for i := range np {
		np[i].X = macLen * float64(i) / float64(chartPoints-1)
		np[i].Y = s.NeutralPoint
	}
	cg := plotter.XYs{{X: s.CenterOfGravity, Y: 0}, {X: s.CenterOfGravity, Y: s.NeutralPoint}}
	if err := plotutil.AddLines(p, "Neutral Point", np, "CG", cg); err != nil {
		return "", fmt.Errorf("cg/np plot: %w", err)
	}
	path := conf.Path("png")
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("cg/np plot: %w", err)
	}
	return path, nil
}
