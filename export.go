package rcdesign

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ExportConfig configures where export artifacts are written.
type ExportConfig struct {
	Filename  string // base name without extension
	OutputDir string // defaults to the working directory
	Timestamp bool   // append a creation timestamp to the file name
}

// Path returns the full output path for the given extension.
func (c ExportConfig) Path(ext string) string {
	dir := c.OutputDir
	if dir == "" {
		dir = "."
	}
	name := c.Filename
	if c.Timestamp {
		t := time.Now()
		name = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", name, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	return filepath.Join(dir, name+"."+ext)
}

// writeFile writes via a temporary file and renames it into place, so a failed
// export never clobbers a previous successful one.
func writeFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ExportText writes the report as an aligned plain-text listing and returns the
// file path.
func ExportText(r *Report, conf ExportConfig) (string, error) {
	path := conf.Path("txt")
	err := writeFile(path, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", r.Title, strings.Repeat("=", len(r.Title))); err != nil {
			return err
		}
		nameW := 0
		for _, p := range r.Params() {
			if len(p.Name) > nameW {
				nameW = len(p.Name)
			}
		}
		for _, p := range r.Params() {
			if _, err := fmt.Fprintf(w, "%-*s : %s\n", nameW, p.Name, formatValue(p.Value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("text export: %w", err)
	}
	return path, nil
}

// ExportCSV writes the report as Parameter,Value rows and returns the file
// path. Values are rendered with the shortest representation that parses back
// to the identical float, so ReadCSV round-trips exactly.
func ExportCSV(r *Report, conf ExportConfig) (string, error) {
	path := conf.Path("csv")
	err := writeFile(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"Parameter", "Value"}); err != nil {
			return err
		}
		for _, p := range r.Params() {
			if err := cw.Write([]string{p.Name, formatValue(p.Value)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return "", fmt.Errorf("csv export: %w", err)
	}
	return path, nil
}

// ReadCSV parses a file written by ExportCSV back into a report.
func ReadCSV(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv parse: %w", err)
	}
	if len(records) == 0 || records[0][0] != "Parameter" {
		return nil, fmt.Errorf("csv parse: missing Parameter,Value header in %s", path)
	}
	r := NewReport("")
	for _, rec := range records[1:] {
		if len(rec) != 2 {
			return nil, fmt.Errorf("csv parse: expected 2 fields, got %d", len(rec))
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("csv parse: %w", err)
		}
		r.index[rec[0]] = len(r.params)
		r.params = append(r.params, Param{Name: rec[0], Value: v})
	}
	return r, nil
}
