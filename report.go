package rcdesign

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Param is one named, rounded result value. The name carries the unit suffix
// so exporters never need to know about units.
type Param struct {
	Name  string
	Value float64
}

// Report is the flat record handed to every exporter. Parameters keep their
// insertion order, which is also the presentation order.
type Report struct {
	Title  string
	params []Param
	index  map[string]int
}

// NewReport returns an empty report with the given title.
func NewReport(title string) *Report {
	return &Report{Title: title, index: make(map[string]int)}
}

// Add appends a parameter, rounding the value to the given number of decimals.
// Adding a name twice overwrites the first value in place.
func (r *Report) Add(name string, value float64, decimals int) {
	v := Round(value, decimals)
	if i, ok := r.index[name]; ok {
		r.params[i].Value = v
		return
	}
	r.index[name] = len(r.params)
	r.params = append(r.params, Param{Name: name, Value: v})
}

// Params returns the parameters in presentation order.
func (r *Report) Params() []Param {
	return r.params
}

// Value looks a parameter up by name.
func (r *Report) Value(name string) (float64, bool) {
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}
	return r.params[i].Value, true
}

// Len returns the number of parameters.
func (r *Report) Len() int {
	return len(r.params)
}

// formatValue renders a value with no trailing zeros, so a CSV round trip
// parses back to the identical float.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteTable prints the report as a fixed-width bordered table.
func (r *Report) WriteTable(w io.Writer) error {
	nameW, valueW := len("Parameter"), len("Value")
	rows := make([][2]string, len(r.params))
	for i, p := range r.params {
		rows[i] = [2]string{p.Name, formatValue(p.Value)}
		if len(p.Name) > nameW {
			nameW = len(p.Name)
		}
		if len(rows[i][1]) > valueW {
			valueW = len(rows[i][1])
		}
	}
	line := "+" + strings.Repeat("-", nameW+2) + "+" + strings.Repeat("-", valueW+2) + "+\n"
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(r.Title + "\n")
	}
	b.WriteString(line)
	fmt.Fprintf(&b, "| %-*s | %*s |\n", nameW, "Parameter", valueW, "Value")
	b.WriteString(line)
	for _, row := range rows {
		fmt.Fprintf(&b, "| %-*s | %*s |\n", nameW, row[0], valueW, row[1])
	}
	b.WriteString(line)
	_, err := io.WriteString(w, b.String())
	return err
}
