package rcdesign

import (
	"os"
	"testing"
)

func assertFileWritten(t *testing.T, path string, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		t.Fatal(statErr)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestPlotLiftCurve(t *testing.T) {
	conf := ExportConfig{Filename: "lift_curve", OutputDir: t.TempDir()}
	path, err := PlotLiftCurve(1.4, conf)
	assertFileWritten(t, path, err)
}

func TestPlotDragPolar(t *testing.T) {
	conf := ExportConfig{Filename: "drag_polar", OutputDir: t.TempDir()}
	path, err := PlotDragPolar(0.02, 0.8, 8, conf)
	assertFileWritten(t, path, err)
}

func TestPlotCGvsNP(t *testing.T) {
	s, err := ComputeStability(150, 30, 40)
	if err != nil {
		t.Fatal(err)
	}
	conf := ExportConfig{Filename: "cg_vs_np", OutputDir: t.TempDir()}
	path, err := PlotCGvsNP(s, conf)
	assertFileWritten(t, path, err)
}

func TestExportXLSX(t *testing.T) {
	conf := ExportConfig{Filename: "results", OutputDir: t.TempDir()}
	path, err := ExportXLSX(sampleReport(), conf)
	assertFileWritten(t, path, err)
}

func TestExportPDF(t *testing.T) {
	dir := t.TempDir()
	s, err := ComputeStability(150, 30, 40)
	if err != nil {
		t.Fatal(err)
	}
	img, err := PlotCGvsNP(s, ExportConfig{Filename: "cg_vs_np", OutputDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	inputs := []KV{{"Wingspan (mm)", "1200"}, {"Propeller", "9x4.5"}}
	path, err := ExportPDF(inputs, sampleReport(), []string{img, "does-not-exist.png"}, ExportConfig{Filename: "design_report", OutputDir: dir})
	assertFileWritten(t, path, err)
}
