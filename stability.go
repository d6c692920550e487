package rcdesign

import "fmt"

// StabilityClass buckets a static margin for user-facing advisory notes. The
// bands are conventional for small RC aircraft and carry no physical meaning
// beyond that.
type StabilityClass uint8

const (
	// Unstable means the CG sits at or behind the neutral point.
	Unstable StabilityClass = iota
	// LowMargin means less than 5 % MAC of margin; handling will be twitchy.
	LowMargin
	// Stable covers the usual 5–15 % MAC range.
	Stable
	// Sluggish means more than 15 % MAC; very stable but slow to pitch.
	Sluggish
)

func (c StabilityClass) String() string {
	switch c {
	case Unstable:
		return "unstable: move the CG forward or increase tail volume"
	case LowMargin:
		return "low margin: handling may be very sensitive"
	case Stable:
		return "stable"
	case Sluggish:
		return "very stable but potentially sluggish"
	}
	panic("cannot stringify unknown stability class")
}

// StabilityResult holds the longitudinal stability summary. Positions share the
// unit of the MAC input; StaticMargin is a percentage of MAC.
type StabilityResult struct {
	StaticMargin      float64 // % MAC
	AerodynamicCenter float64 // quarter-chord position from the MAC leading edge
	NeutralPoint      float64 // position from the MAC leading edge
	CenterOfGravity   float64 // position from the MAC leading edge
}

// ComputeStability derives the static margin from CG and neutral-point
// locations given as percentages of MAC. The percent-of-MAC convention is used
// throughout: SM = NP% − CG%, so ComputeStability(mac, 25, 30) yields exactly 5.
// The position-difference-over-MAC convention is deliberately not used; see
// DESIGN.md. The aerodynamic center is fixed at the quarter chord.
func ComputeStability(mac, cgPercent, npPercent float64) (StabilityResult, error) {
	if err := requirePositive("MAC", mac); err != nil {
		return StabilityResult{}, err
	}
	if cgPercent < 0 || cgPercent > 100 {
		return StabilityResult{}, errPercent("CG location", cgPercent)
	}
	if npPercent < 0 || npPercent > 100 {
		return StabilityResult{}, errPercent("neutral point", npPercent)
	}
	return StabilityResult{
		StaticMargin:      npPercent - cgPercent,
		AerodynamicCenter: 0.25 * mac,
		NeutralPoint:      npPercent / 100 * mac,
		CenterOfGravity:   cgPercent / 100 * mac,
	}, nil
}

func errPercent(name string, v float64) error {
	return fmt.Errorf("%w: %s must be between 0 and 100 %%MAC, got %g", ErrInvalidInput, name, v)
}

// Classify buckets the static margin into its advisory band.
func (s StabilityResult) Classify() StabilityClass {
	switch sm := s.StaticMargin; {
	case sm <= 0:
		return Unstable
	case sm < 5:
		return LowMargin
	case sm <= 15:
		return Stable
	default:
		return Sluggish
	}
}
