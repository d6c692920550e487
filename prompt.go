package rcdesign

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// FloatPrompt asks for one numeric value with optional bounds and a default
// used when the user just presses enter. NaN bounds mean unbounded; a NaN
// Default means no default.
type FloatPrompt struct {
	Label   string
	Min     float64
	Max     float64
	Default float64
}

// NewFloatPrompt returns an unbounded prompt with no default.
func NewFloatPrompt(label string) FloatPrompt {
	return FloatPrompt{Label: label, Min: math.NaN(), Max: math.NaN(), Default: math.NaN()}
}

// Between bounds the accepted range (inclusive).
func (p FloatPrompt) Between(min, max float64) FloatPrompt {
	p.Min, p.Max = min, max
	return p
}

// AtLeast bounds the prompt from below only.
func (p FloatPrompt) AtLeast(min float64) FloatPrompt {
	p.Min = min
	return p
}

// WithDefault sets the value returned on empty input.
func (p FloatPrompt) WithDefault(d float64) FloatPrompt {
	p.Default = d
	return p
}

// validate checks a parsed value against the bounds and returns the in-place
// correction message shown to the user when it fails.
func (p FloatPrompt) validate(v float64) (string, bool) {
	hasMin, hasMax := !math.IsNaN(p.Min), !math.IsNaN(p.Max)
	switch {
	case hasMin && v < p.Min, hasMax && v > p.Max:
		if hasMin && hasMax {
			return fmt.Sprintf("  -> enter a value between %g and %g", p.Min, p.Max), false
		}
		if hasMin {
			return fmt.Sprintf("  -> enter a value >= %g", p.Min), false
		}
		return fmt.Sprintf("  -> enter a value <= %g", p.Max), false
	}
	return "", true
}

// Ask reads lines until one parses and passes the bounds, re-prompting in
// place on bad input. It returns io.EOF if the input runs out first.
func (p FloatPrompt) Ask(sc *bufio.Scanner, w io.Writer) (float64, error) {
	for {
		fmt.Fprint(w, p.Label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		raw := strings.TrimSpace(sc.Text())
		var v float64
		if raw == "" && !math.IsNaN(p.Default) {
			v = p.Default
		} else {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				fmt.Fprintln(w, "  -> please enter a numeric value")
				continue
			}
			v = parsed
		}
		if msg, ok := p.validate(v); !ok {
			fmt.Fprintln(w, msg)
			continue
		}
		return v, nil
	}
}
