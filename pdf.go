package rcdesign

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

// KV is one already-formatted input line shown on the PDF title page. Inputs
// keep their original text (the propeller size is a string) so they are not
// forced through the numeric report record.
type KV struct {
	Key   string
	Value string
}

// ExportPDF writes a multi-page report: a title page with the input parameters
// and the tabulated results, then one page per chart image. Missing chart files
// are skipped rather than failing the whole report. Returns the file path.
func ExportPDF(inputs []KV, r *Report, images []string, conf ExportConfig) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, r.Title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, "Input Parameters", "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, in := range inputs {
		keyValRow(pdf, in.Key, in.Value)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, "Design Results", "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range r.Params() {
		keyValRow(pdf, p.Name, formatValue(p.Value))
	}

	for _, img := range images {
		if _, err := os.Stat(img); err != nil {
			continue
		}
		pdf.AddPage()
		pdf.ImageOptions(img, 15, 30, 180, 0, false, fpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
	}

	path := conf.Path("pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("pdf export: %w", err)
	}
	return path, nil
}

func keyValRow(pdf *fpdf.Fpdf, key, value string) {
	pdf.CellFormat(120, 7, key, "", 0, "", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "R", false, 0, "")
}
