package rcdesign

import (
	"fmt"

	"github.com/spf13/viper"
)

// DesignInput is the validated batch configuration. Lengths arrive in
// millimeters and the weight in kilograms; the pipeline converts to SI before
// any aerodynamics.
type DesignInput struct {
	WingspanMM  float64
	AspectRatio float64
	TaperRatio  float64
	WeightKg    float64
	CLMax       float64

	TailTaperH     float64
	TailTaperV     float64
	HTAreaFraction float64
	VTAreaFraction float64
	HTSpanFraction float64

	FuselageLengthFraction float64
	FuselageHeightFraction float64
	FuselageWidthFraction  float64

	AirDensity float64 // kg/m³
	Velocity   float64 // m/s
	CD0        float64
	Oswald     float64
	CGPercent  float64 // % MAC
	NPPercent  float64 // % MAC

	MotorKV        float64
	BatteryVoltage float64
	Propeller      string
}

// setDefaults registers the documented defaults; any key missing from the
// input file is filled from here and is never an error.
func setDefaults(v *viper.Viper) {
	v.SetDefault("weight", 2.0)
	v.SetDefault("cl_max", 1.4)
	v.SetDefault("taper_ratio", 1.0)
	v.SetDefault("tail_taper_h", 1.0)
	v.SetDefault("tail_taper_v", 1.0)
	v.SetDefault("motor_kv", 1200)
	v.SetDefault("battery_voltage", 11.1)
	v.SetDefault("propeller", "9x4.5")

	v.SetDefault("ht_area_fraction", 0.19)
	v.SetDefault("vt_area_fraction", 0.095)
	v.SetDefault("ht_span_fraction", 0.4)
	v.SetDefault("fuselage_length_fraction", 0.675)
	v.SetDefault("fuselage_height_fraction", 0.125)
	v.SetDefault("fuselage_width_fraction", 0.2)

	v.SetDefault("air_density", 1.225)
	v.SetDefault("velocity", 10.0)
	v.SetDefault("cd0", 0.02)
	v.SetDefault("oswald", 0.8)
	v.SetDefault("cg_percent", 30.0)
	v.SetDefault("np_percent", 40.0)
}

// LoadDesignInput reads a JSON design file, fills missing keys from the
// documented defaults and validates the result. Wingspan and aspect ratio have
// no sensible default and must be present.
func LoadDesignInput(path string) (DesignInput, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return DesignInput{}, fmt.Errorf("reading %s: %w", path, err)
	}
	for _, key := range []string{"wingspan", "aspect_ratio"} {
		if !v.IsSet(key) {
			return DesignInput{}, fmt.Errorf("%w: required key %q missing from %s", ErrInvalidInput, key, path)
		}
	}
	in := DesignInput{
		WingspanMM:  v.GetFloat64("wingspan"),
		AspectRatio: v.GetFloat64("aspect_ratio"),
		TaperRatio:  v.GetFloat64("taper_ratio"),
		WeightKg:    v.GetFloat64("weight"),
		CLMax:       v.GetFloat64("cl_max"),

		TailTaperH:     v.GetFloat64("tail_taper_h"),
		TailTaperV:     v.GetFloat64("tail_taper_v"),
		HTAreaFraction: v.GetFloat64("ht_area_fraction"),
		VTAreaFraction: v.GetFloat64("vt_area_fraction"),
		HTSpanFraction: v.GetFloat64("ht_span_fraction"),

		FuselageLengthFraction: v.GetFloat64("fuselage_length_fraction"),
		FuselageHeightFraction: v.GetFloat64("fuselage_height_fraction"),
		FuselageWidthFraction:  v.GetFloat64("fuselage_width_fraction"),

		AirDensity: v.GetFloat64("air_density"),
		Velocity:   v.GetFloat64("velocity"),
		CD0:        v.GetFloat64("cd0"),
		Oswald:     v.GetFloat64("oswald"),
		CGPercent:  v.GetFloat64("cg_percent"),
		NPPercent:  v.GetFloat64("np_percent"),

		MotorKV:        v.GetFloat64("motor_kv"),
		BatteryVoltage: v.GetFloat64("battery_voltage"),
		Propeller:      v.GetString("propeller"),
	}
	return in, in.Validate()
}

// Validate rejects degenerate geometry and out-of-range coefficients before
// anything reaches the formulas.
func (in DesignInput) Validate() error {
	positive := map[string]float64{
		"wingspan":                 in.WingspanMM,
		"aspect_ratio":             in.AspectRatio,
		"taper_ratio":              in.TaperRatio,
		"weight":                   in.WeightKg,
		"cl_max":                   in.CLMax,
		"tail_taper_h":             in.TailTaperH,
		"tail_taper_v":             in.TailTaperV,
		"ht_area_fraction":         in.HTAreaFraction,
		"vt_area_fraction":         in.VTAreaFraction,
		"ht_span_fraction":         in.HTSpanFraction,
		"fuselage_length_fraction": in.FuselageLengthFraction,
		"fuselage_height_fraction": in.FuselageHeightFraction,
		"air_density":              in.AirDensity,
		"velocity":                 in.Velocity,
	}
	for key, val := range positive {
		if err := requirePositive(key, val); err != nil {
			return err
		}
	}
	if in.FuselageWidthFraction < 0 {
		return fmt.Errorf("%w: fuselage_width_fraction must not be negative, got %g", ErrInvalidInput, in.FuselageWidthFraction)
	}
	if in.Oswald <= 0 || in.Oswald > 1 {
		return fmt.Errorf("%w: oswald must be in (0, 1], got %g", ErrInvalidInput, in.Oswald)
	}
	if in.CGPercent < 0 || in.CGPercent > 100 {
		return errPercent("cg_percent", in.CGPercent)
	}
	if in.NPPercent < 0 || in.NPPercent > 100 {
		return errPercent("np_percent", in.NPPercent)
	}
	return nil
}
