package rcdesign

import "fmt"

// Design collects every record computed for one run. Wing, tail and fuselage
// geometry are kept in meters; the report converts back to millimeters for
// presentation.
type Design struct {
	Input      DesignInput
	Wing       WingSpec
	HTail      TailSpec
	VTail      TailSpec
	Fuselage   FuselageSpec
	Aero       AeroResult
	StallSpeed float64         // m/s
	Stability  StabilityResult // positions in mm
}

// ComputeDesign runs the full sizing pipeline on a validated input: wing
// planform, tail planforms (horizontal tail span imposed as a fraction of the
// wingspan, vertical tail as tall as the fuselage), fuselage chain, cruise
// aerodynamics at CLmax, stall speed and static margin.
func ComputeDesign(in DesignInput) (*Design, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	b := MMToM(in.WingspanMM)

	wing, err := ComputeWing(b, in.AspectRatio, in.TaperRatio)
	if err != nil {
		return nil, fmt.Errorf("wing: %w", err)
	}
	htail, err := TailFromSpan(in.HTAreaFraction*wing.Area, in.HTSpanFraction*b, in.TailTaperH)
	if err != nil {
		return nil, fmt.Errorf("horizontal tail: %w", err)
	}
	fuselage, err := ComputeFuselage(b, in.FuselageLengthFraction, in.FuselageHeightFraction, in.FuselageWidthFraction)
	if err != nil {
		return nil, fmt.Errorf("fuselage: %w", err)
	}
	vtail, err := TailFromSpan(in.VTAreaFraction*wing.Area, fuselage.Height, in.TailTaperV)
	if err != nil {
		return nil, fmt.Errorf("vertical tail: %w", err)
	}
	aero, err := ComputeAero(in.AirDensity, in.Velocity, wing.Area, in.CLMax, in.CD0, in.AspectRatio, in.Oswald)
	if err != nil {
		return nil, fmt.Errorf("aerodynamics: %w", err)
	}
	vstall, err := StallSpeed(KgToN(in.WeightKg), in.AirDensity, wing.Area)
	if err != nil {
		return nil, fmt.Errorf("stall speed: %w", err)
	}
	stab, err := ComputeStability(MToMM(wing.MAC), in.CGPercent, in.NPPercent)
	if err != nil {
		return nil, fmt.Errorf("stability: %w", err)
	}
	return &Design{
		Input:      in,
		Wing:       wing,
		HTail:      htail,
		VTail:      vtail,
		Fuselage:   fuselage,
		Aero:       aero,
		StallSpeed: vstall,
		Stability:  stab,
	}, nil
}

// Report assembles the flat presentation record: lengths in millimeters at one
// decimal, forces and speeds at two, static margin at three.
func (d *Design) Report() *Report {
	r := NewReport("RC Plane Design Report")
	r.Add("Wing Area (S) mm²", M2ToMM2(d.Wing.Area), 1)
	r.Add("MAC mm", MToMM(d.Wing.MAC), 1)
	r.Add("Root Chord mm", MToMM(d.Wing.RootChord), 1)
	r.Add("Tip Chord mm", MToMM(d.Wing.TipChord), 1)
	r.Add("Horizontal Tail Area SH mm²", M2ToMM2(d.HTail.Area), 1)
	r.Add("Horizontal Tail Span mm", MToMM(d.HTail.Span), 1)
	r.Add("Horizontal Tail Root Chord mm", MToMM(d.HTail.RootChord), 1)
	r.Add("Horizontal Tail Tip Chord mm", MToMM(d.HTail.TipChord), 1)
	r.Add("Vertical Tail Area SV mm²", M2ToMM2(d.VTail.Area), 1)
	r.Add("Vertical Tail Span mm", MToMM(d.VTail.Span), 1)
	r.Add("Vertical Tail Root Chord mm", MToMM(d.VTail.RootChord), 1)
	r.Add("Vertical Tail Tip Chord mm", MToMM(d.VTail.TipChord), 1)
	r.Add("Fuselage Length mm", MToMM(d.Fuselage.Length), 1)
	r.Add("Fuselage Height mm", MToMM(d.Fuselage.Height), 1)
	r.Add("Fuselage Width mm", MToMM(d.Fuselage.Width), 1)
	r.Add("Lift L (N)", d.Aero.Lift, 2)
	r.Add("Drag D (N)", d.Aero.Drag, 2)
	r.Add("Stall Speed Vstall (m/s)", d.StallSpeed, 2)
	r.Add("Static Margin (% MAC)", d.Stability.StaticMargin, 3)
	r.Add("Aerodynamic Center x_ac mm", d.Stability.AerodynamicCenter, 1)
	r.Add("CG Position mm", d.Stability.CenterOfGravity, 1)
	r.Add("Neutral Point x_np mm", d.Stability.NeutralPoint, 1)
	return r
}

// InputKVs renders the user-facing input summary for the PDF title page.
func (d *Design) InputKVs() []KV {
	in := d.Input
	return []KV{
		{"Wingspan (mm)", formatValue(in.WingspanMM)},
		{"Aspect Ratio", formatValue(in.AspectRatio)},
		{"Taper Ratio", formatValue(in.TaperRatio)},
		{"Weight (kg)", formatValue(in.WeightKg)},
		{"CL max", formatValue(in.CLMax)},
		{"Air Density (kg/m³)", formatValue(in.AirDensity)},
		{"Velocity (m/s)", formatValue(in.Velocity)},
		{"Motor Kv", formatValue(in.MotorKV)},
		{"Battery Voltage (V)", formatValue(in.BatteryVoltage)},
		{"Propeller", in.Propeller},
	}
}
