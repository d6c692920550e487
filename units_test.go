package rcdesign

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestConversions(t *testing.T) {
	if MMToM(1200) != 1.2 {
		t.Fatal("1200 mm != 1.2 m")
	}
	if MToMM(1.2) != 1200 {
		t.Fatal("1.2 m != 1200 mm")
	}
	if MM2ToM2(180000) != 0.18 {
		t.Fatal("180000 mm² != 0.18 m²")
	}
	if M2ToMM2(0.18) != 180000 {
		t.Fatal("0.18 m² != 180000 mm²")
	}
	for _, x := range []float64{0.001, 1, 153.125, 987654.321} {
		if !scalar.EqualWithinRel(MMToM(MToMM(x)), x, 1e-12) {
			t.Fatalf("mm/m round trip broke for %f", x)
		}
		if !scalar.EqualWithinRel(MM2ToM2(M2ToMM2(x)), x, 1e-12) {
			t.Fatalf("mm²/m² round trip broke for %f", x)
		}
	}
}

func TestKgToN(t *testing.T) {
	if !scalar.EqualWithinAbs(KgToN(2.0), 19.62, 1e-12) {
		t.Fatalf("2 kg = %f N, want 19.62", KgToN(2.0))
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		x        float64
		decimals int
		want     float64
	}{
		{153.1249, 1, 153.1},
		{153.15, 1, 153.2},
		{0.123456, 3, 0.123},
		{-2.5, 0, -3}, // math.Round is half away from zero
		{1234.5678, 2, 1234.57},
	}
	for _, tc := range cases {
		if got := Round(tc.x, tc.decimals); got != tc.want {
			t.Fatalf("Round(%f, %d) = %f, want %f", tc.x, tc.decimals, got, tc.want)
		}
	}
}

func TestFormatting(t *testing.T) {
	if got := FmtMM(1234.5); got != "1,234.5 mm" {
		t.Fatalf("FmtMM = %q", got)
	}
	if got := FmtM(1200); got != "1.200 m" {
		t.Fatalf("FmtM = %q", got)
	}
	if got := FmtMM2(180000); got != "180,000 mm²" {
		t.Fatalf("FmtMM2 = %q", got)
	}
	if got := FmtM2(180000); got != "0.1800 m²" {
		t.Fatalf("FmtM2 = %q", got)
	}
}
