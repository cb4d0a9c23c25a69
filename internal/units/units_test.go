package units

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want System
	}{
		{"", Metric},
		{"metric", Metric},
		{"si", Metric},
		{"imperial", Imperial},
		{"us", Imperial},
		{"Imperial", Imperial},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := Parse("furlongs"); err == nil {
		t.Error("Parse accepted an unknown system")
	}
}

func TestConversionsRoundTrip(t *testing.T) {
	for _, v := range []float64{0.001, 1, 150, 35000} {
		if got := LengthFromMM(LengthToMM(v, Imperial), Imperial); math.Abs(got-v) > 1e-9*v {
			t.Errorf("length round trip %g -> %g", v, got)
		}
		if got := ForceFromN(ForceToN(v, Imperial), Imperial); math.Abs(got-v) > 1e-9*v {
			t.Errorf("force round trip %g -> %g", v, got)
		}
		if got := StressFromMPa(StressToMPa(v, Imperial), Imperial); math.Abs(got-v) > 1e-9*v {
			t.Errorf("stress round trip %g -> %g", v, got)
		}
	}
}

func TestMetricIsIdentity(t *testing.T) {
	if got := LengthToMM(150, Metric); got != 150 {
		t.Errorf("LengthToMM metric = %g", got)
	}
	if got := ForceToN(35000, Metric); got != 35000 {
		t.Errorf("ForceToN metric = %g", got)
	}
	if got := StressToMPa(275, Metric); got != 275 {
		t.Errorf("StressToMPa metric = %g", got)
	}
}

func TestImperialFactors(t *testing.T) {
	if got, want := LengthToMM(1, Imperial), 25.4; math.Abs(got-want) > 1e-12 {
		t.Errorf("1 in = %g mm, want %g", got, want)
	}
	if got, want := ForceToN(1, Imperial), 4.44822; math.Abs(got-want) > 1e-9 {
		t.Errorf("1 lbf = %g N, want %g", got, want)
	}
	if got, want := StressToMPa(40, Imperial), 40*6.89476; math.Abs(got-want) > 1e-9 {
		t.Errorf("40 ksi = %g MPa, want %g", got, want)
	}
}
