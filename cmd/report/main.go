// Command report runs the batch variant: it reads a JSON design file, runs the
// full sizing pipeline and exports the results as a console table, CSV, PNG
// charts, an XLSX workbook and a PDF report.
package main

import (
	"flag"
	"os"

	rcdesign "github.com/ADARSH-HN/SAE-REGULAR-CLASS-2025-RC-PLANE-DESIGNER"
	"github.com/ADARSH-HN/SAE-REGULAR-CLASS-2025-RC-PLANE-DESIGNER/pkg/logger"
)

var (
	input     string
	outdir    string
	logLevel  string
	timestamp bool
)

func init() {
	flag.StringVar(&input, "input", "", "design JSON file (required)")
	flag.StringVar(&outdir, "outdir", ".", "directory for exported artifacts")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&timestamp, "timestamp", false, "timestamp exported file names")
}

func main() {
	flag.Parse()
	log, err := logger.New(logLevel)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log = log.Named("report")
	if input == "" {
		log.Fatal("no design file provided, use -input design.json")
	}

	in, err := rcdesign.LoadDesignInput(input)
	if err != nil {
		log.Fatal("invalid design input", logger.Error(err))
	}
	design, err := rcdesign.ComputeDesign(in)
	if err != nil {
		log.Fatal("design computation failed", logger.Error(err))
	}
	report := design.Report()

	if err := report.WriteTable(os.Stdout); err != nil {
		log.Fatal("writing results table", logger.Error(err))
	}
	if class := design.Stability.Classify(); class != rcdesign.Stable {
		log.Warn("static margin advisory",
			logger.Float64("percent_mac", design.Stability.StaticMargin),
			logger.String("note", class.String()))
	}

	// Export failures are reported but never invalidate the computed report,
	// which has already been printed above.
	conf := func(name string) rcdesign.ExportConfig {
		return rcdesign.ExportConfig{Filename: name, OutputDir: outdir, Timestamp: timestamp}
	}
	exported := func(kind, path string, err error) bool {
		if err != nil {
			log.Error(kind+" export failed", logger.Error(err))
			return false
		}
		log.Info(kind+" written", logger.String("path", path))
		return true
	}

	path, err := rcdesign.ExportCSV(report, conf("results"))
	exported("csv", path, err)

	var images []string
	if path, err = rcdesign.PlotLiftCurve(in.CLMax, conf("lift_curve")); exported("lift curve", path, err) {
		images = append(images, path)
	}
	if path, err = rcdesign.PlotDragPolar(in.CD0, in.Oswald, in.AspectRatio, conf("drag_polar")); exported("drag polar", path, err) {
		images = append(images, path)
	}
	if path, err = rcdesign.PlotCGvsNP(design.Stability, conf("cg_vs_np")); exported("cg/np chart", path, err) {
		images = append(images, path)
	}

	path, err = rcdesign.ExportXLSX(report, conf("results"))
	exported("xlsx", path, err)

	path, err = rcdesign.ExportPDF(design.InputKVs(), report, images, conf("design_report"))
	exported("pdf", path, err)
}
