package rcdesign

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the report as a workbook with a Summary sheet and a
// Parameters sheet, and returns the file path.
func ExportXLSX(r *Report, conf ExportConfig) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return "", fmt.Errorf("xlsx export: %w", err)
	}
	f.SetCellValue(summary, "A1", "Report")
	f.SetCellValue(summary, "B1", r.Title)
	f.SetCellValue(summary, "A2", "Generated")
	f.SetCellValue(summary, "B2", time.Now().Format(time.RFC3339))
	f.SetCellValue(summary, "A3", "Parameters")
	f.SetCellValue(summary, "B3", r.Len())

	const sheet = "Parameters"
	if _, err := f.NewSheet(sheet); err != nil {
		return "", fmt.Errorf("xlsx export: %w", err)
	}
	f.SetCellValue(sheet, "A1", "Parameter")
	f.SetCellValue(sheet, "B1", "Value")
	for i, p := range r.Params() {
		nameCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("xlsx export: %w", err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return "", fmt.Errorf("xlsx export: %w", err)
		}
		f.SetCellValue(sheet, nameCell, p.Name)
		f.SetCellValue(sheet, valueCell, p.Value)
	}

	path := conf.Path("xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("xlsx export: %w", err)
	}
	return path, nil
}
