// Command designer runs the interactive variant: it prompts for wing,
// empennage, fuselage and CG parameters (all lengths in millimeters), prints
// the derived geometry and exports a text report, a CSV and a PDF.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	rcdesign "github.com/ADARSH-HN/SAE-REGULAR-CLASS-2025-RC-PLANE-DESIGNER"
	"github.com/ADARSH-HN/SAE-REGULAR-CLASS-2025-RC-PLANE-DESIGNER/pkg/logger"
)

func main() {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		fmt.Println("\nexiting.")
		os.Exit(0)
	}()

	log, err := logger.New("info")
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log = log.Named("designer")

	fmt.Println("RC Plane Designer — interactive")
	fmt.Println("(enter lengths in mm; follow the prompts)")
	sc := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	report, runErr := run(sc, out)
	if runErr != nil {
		if errors.Is(runErr, io.EOF) {
			fmt.Println("\nexiting.")
			os.Exit(0)
		}
		log.Fatal("design failed", logger.Error(runErr))
	}

	conf := func(name string) rcdesign.ExportConfig {
		return rcdesign.ExportConfig{Filename: name}
	}
	if path, err := rcdesign.ExportText(report, conf("rc_plane_design")); err != nil {
		log.Error("text export failed", logger.Error(err))
	} else {
		log.Info("text report written", logger.String("path", path))
	}
	if path, err := rcdesign.ExportCSV(report, conf("rc_plane_design")); err != nil {
		log.Error("csv export failed", logger.Error(err))
	} else {
		log.Info("csv written", logger.String("path", path))
	}
	if path, err := rcdesign.ExportPDF(nil, report, nil, conf("rc_plane_design")); err != nil {
		log.Error("pdf export failed", logger.Error(err))
	} else {
		log.Info("pdf written", logger.String("path", path))
	}
	fmt.Println("\nDesign completed.")
}

// run drives the prompt flow and returns the assembled report. Any prompt
// error other than bad input (which re-prompts in place) aborts the run.
func run(sc *bufio.Scanner, out io.Writer) (*rcdesign.Report, error) {
	fmt.Fprintln(out, "\n=== WING DESIGN ===")
	span, err := rcdesign.NewFloatPrompt("Enter wingspan b (mm): ").AtLeast(1).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	ar, err := rcdesign.NewFloatPrompt("Enter Aspect Ratio (AR): ").AtLeast(0.1).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	taper, err := rcdesign.NewFloatPrompt("Enter Taper Ratio λ (tip/root, 0 < λ <= 1 typical): ").Between(0.05, 1.5).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	wing, err := rcdesign.ComputeWing(span, ar, taper)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "\n--- Results (Wing) ---")
	fmt.Fprintf(out, "Span (b):          %s\n", rcdesign.FmtMM(wing.Span))
	fmt.Fprintf(out, "Aspect Ratio (AR): %.3f\n", wing.AspectRatio)
	fmt.Fprintf(out, "Wing Area (S):     %s   (%s)\n", rcdesign.FmtMM2(wing.Area), rcdesign.FmtM2(wing.Area))
	fmt.Fprintf(out, "Mean Aero Chord:   %s   (%s)\n", rcdesign.FmtMM(wing.MAC), rcdesign.FmtM(wing.MAC))
	fmt.Fprintf(out, "Root Chord (Cr):   %s\n", rcdesign.FmtMM(wing.RootChord))
	fmt.Fprintf(out, "Tip Chord (Ct):    %s\n", rcdesign.FmtMM(wing.TipChord))

	fmt.Fprintln(out, "\n=== EMPENNAGE DESIGN ===")
	fmt.Fprintln(out, "Horizontal Stabilizer (HS): area is 18-20% of wing area.")
	hsPct, err := rcdesign.NewFloatPrompt("Choose HS area % of wing area [18-20]: ").Between(18, 20).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	hsAR, err := rcdesign.NewFloatPrompt("Enter HS Aspect Ratio [recommended 3-5]: ").Between(1, 20).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	hsTaper, err := rcdesign.NewFloatPrompt("Enter HS taper ratio [recommended 0.3-0.6]: ").Between(0.05, 1.5).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	hs, err := rcdesign.ComputeTail(hsPct/100, wing.Area, hsAR, hsTaper)
	if err != nil {
		return nil, err
	}
	elevPct, err := rcdesign.NewFloatPrompt("Choose Elevator area % of HS area [25-50]: ").Between(25, 50).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	elevArea, err := rcdesign.ControlSurfaceArea(elevPct/100, hs.Area)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "\nVertical Stabilizer (VS): area is 9-10% of wing area.")
	vsPct, err := rcdesign.NewFloatPrompt("Choose VS area % of wing area [9-10]: ").Between(9, 10).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	vsAR, err := rcdesign.NewFloatPrompt("Enter VS Aspect Ratio [recommended 1.3-2.0]: ").Between(1, 10).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	vsTaper, err := rcdesign.NewFloatPrompt("Enter VS taper ratio [recommended 0.3-0.6]: ").Between(0.05, 1.5).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	vs, err := rcdesign.ComputeTail(vsPct/100, wing.Area, vsAR, vsTaper)
	if err != nil {
		return nil, err
	}
	rudderPct, err := rcdesign.NewFloatPrompt("Choose Rudder area % of VS area [25-50]: ").Between(25, 50).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	rudderArea, err := rcdesign.ControlSurfaceArea(rudderPct/100, vs.Area)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "\n--- Results (Empennage) ---")
	fmt.Fprintln(out, "Horizontal Stabilizer (HS):")
	fmt.Fprintf(out, "  HS Area:    %s   (%s)\n", rcdesign.FmtMM2(hs.Area), rcdesign.FmtM2(hs.Area))
	fmt.Fprintf(out, "  HS Span:    %s\n", rcdesign.FmtMM(hs.Span))
	fmt.Fprintf(out, "  HS Root Cr: %s\n", rcdesign.FmtMM(hs.RootChord))
	fmt.Fprintf(out, "  HS Tip Ct:  %s\n", rcdesign.FmtMM(hs.TipChord))
	fmt.Fprintf(out, "  Elevator:   %s\n", rcdesign.FmtMM2(elevArea))
	fmt.Fprintln(out, "Vertical Stabilizer (VS):")
	fmt.Fprintf(out, "  VS Area:    %s   (%s)\n", rcdesign.FmtMM2(vs.Area), rcdesign.FmtM2(vs.Area))
	fmt.Fprintf(out, "  VS Span:    %s\n", rcdesign.FmtMM(vs.Span))
	fmt.Fprintf(out, "  VS Root Cr: %s\n", rcdesign.FmtMM(vs.RootChord))
	fmt.Fprintf(out, "  VS Tip Ct:  %s\n", rcdesign.FmtMM(vs.TipChord))
	fmt.Fprintf(out, "  Rudder:     %s\n", rcdesign.FmtMM2(rudderArea))

	fmt.Fprintln(out, "\n=== FUSELAGE DESIGN ===")
	fusLenPct, err := rcdesign.NewFloatPrompt("Choose fuselage length % of wingspan [60-75]: ").Between(60, 75).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	fusHPct, err := rcdesign.NewFloatPrompt("Choose fuselage height % of fuselage length [10-15]: ").Between(10, 15).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	fus, err := rcdesign.ComputeFuselage(span, fusLenPct/100, fusHPct/100, 0)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Fuselage length: %s  | Height: %s\n", rcdesign.FmtMM(fus.Length), rcdesign.FmtMM(fus.Height))

	fmt.Fprintln(out, "\n=== CG & STATIC MARGIN ===")
	fmt.Fprintln(out, "Neutral Point typical range: 25-40% MAC (default 30).")
	npPct, err := rcdesign.NewFloatPrompt("Neutral Point %MAC [25-40] (default 30): ").Between(25, 40).WithDefault(30).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	cgPct, err := rcdesign.NewFloatPrompt("CG location %MAC [20-35]: ").Between(0, 100).Ask(sc, out)
	if err != nil {
		return nil, err
	}
	stab, err := rcdesign.ComputeStability(wing.MAC, cgPct, npPct)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Neutral Point (NP): %.2f%% of MAC -> %s\n", npPct, rcdesign.FmtMM(stab.NeutralPoint))
	fmt.Fprintf(out, "CG location:        %.2f%% of MAC -> %s\n", cgPct, rcdesign.FmtMM(stab.CenterOfGravity))
	fmt.Fprintf(out, "Static Margin (NP - CG) = %.2f%% of MAC\n", stab.StaticMargin)
	if class := stab.Classify(); class != rcdesign.Stable {
		fmt.Fprintf(out, "  NOTE: %s\n", class)
	}

	r := rcdesign.NewReport("RC PLANE DESIGN REPORT")
	r.Add("Span (b) mm", wing.Span, 3)
	r.Add("Aspect Ratio (AR)", wing.AspectRatio, 3)
	r.Add("Wing Area (S) mm²", wing.Area, 3)
	r.Add("MAC mm", wing.MAC, 3)
	r.Add("Root Chord (Cr) mm", wing.RootChord, 3)
	r.Add("Tip Chord (Ct) mm", wing.TipChord, 3)
	r.Add("HS Area mm²", hs.Area, 3)
	r.Add("HS Span mm", hs.Span, 3)
	r.Add("HS Root Chord mm", hs.RootChord, 3)
	r.Add("HS Tip Chord mm", hs.TipChord, 3)
	r.Add("Elevator Area mm²", elevArea, 3)
	r.Add("VS Area mm²", vs.Area, 3)
	r.Add("VS Span mm", vs.Span, 3)
	r.Add("VS Root Chord mm", vs.RootChord, 3)
	r.Add("VS Tip Chord mm", vs.TipChord, 3)
	r.Add("Rudder Area mm²", rudderArea, 3)
	r.Add("Fuselage Length mm", fus.Length, 3)
	r.Add("Fuselage Height mm", fus.Height, 3)
	r.Add("Neutral Point %MAC", npPct, 3)
	r.Add("CG %MAC", cgPct, 3)
	r.Add("Static Margin %MAC", stab.StaticMargin, 3)
	r.Add("NP position (mm from MAC LE)", stab.NeutralPoint, 3)
	r.Add("CG position (mm from MAC LE)", stab.CenterOfGravity, 3)
	return r, nil
}
