package numeral_test

import (
	"testing"

	"chinese-numeral-converter/pkg/numeral"
)

func TestParseUnsignedWorkedExamples(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		convention numeral.Convention
		want       string
	}{
		{"zero", "零", numeral.TenThousand, "0"},
		{"leading_ten", "十二", numeral.TenThousand, "12"},
		{"leading_ten_formal", "壹拾貳", numeral.TenThousand, "12"},
		{"hundred_one", "一百零一", numeral.TenThousand, "101"},
		{"nine_thousand_twelve", "九千零一十二", numeral.TenThousand, "9012"},
		{"ten_thousand", "一萬", numeral.TenThousand, "10000"},
		{"ten_thousand_five", "一萬零五", numeral.TenThousand, "10005"},
		{"ten_thousand_two_thousand_three", "一萬二千三百", numeral.TenThousand, "12300"},
		{"simplified_ten_thousand", "一万", numeral.TenThousand, "10000"},
		{"hundred_million_ten_thousand_convention", "一億", numeral.TenThousand, "100000000"},
		{"hundred_million_low_convention", "一垓", numeral.Low, "100000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := numeral.ParseUnsigned(tc.input, tc.convention)
			if err != nil {
				t.Fatalf("ParseUnsigned(%q) returned error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseUnsigned(%q) = %s, want %s", tc.input, got.String(), tc.want)
			}
		})
	}
}

func TestParseUnsignedRejectsSign(t *testing.T) {
	_, err := numeral.ParseUnsigned("負十二", numeral.TenThousand)
	if err == nil {
		t.Fatal("expected an error parsing a signed numeral as unsigned")
	}
	if err.Kind != numeral.ErrCharIncorrect {
		t.Errorf("got error kind %v, want ErrCharIncorrect", err.Kind)
	}
}

func TestParseSignedNegative(t *testing.T) {
	got, err := numeral.ParseSigned("負十二", numeral.TenThousand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "-12" {
		t.Errorf("ParseSigned(負十二) = %s, want -12", got.String())
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := numeral.ParseUnsigned("", numeral.TenThousand)
	if err == nil || err.Kind != numeral.ErrEmpty {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestParseUnrecognisedCharacter(t *testing.T) {
	_, err := numeral.ParseUnsigned("一x二", numeral.TenThousand)
	if err == nil || err.Kind != numeral.ErrCharIncorrect {
		t.Fatalf("expected ErrCharIncorrect, got %v", err)
	}
	if err.CharIndex != 1 {
		t.Errorf("got CharIndex %d, want 1", err.CharIndex)
	}
}

func TestParseLargeUnitsMustStrictlyDecrease(t *testing.T) {
	// 萬 repeated without an intervening larger unit is malformed.
	_, err := numeral.ParseUnsigned("一萬二萬", numeral.TenThousand)
	if err == nil || err.Kind != numeral.ErrCharIncorrect {
		t.Fatalf("expected ErrCharIncorrect for out-of-order large units, got %v", err)
	}
}

func TestParseBareLargeUnitWithNoCoefficient(t *testing.T) {
	_, err := numeral.ParseUnsigned("萬二千", numeral.TenThousand)
	if err == nil || err.Kind != numeral.ErrCharIncorrect {
		t.Fatalf("expected ErrCharIncorrect for a large unit with no coefficient, got %v", err)
	}
}

func TestParseConventionConfusion(t *testing.T) {
	// The same literal string denotes two different magnitudes depending
	// on which counting convention is in force.
	tenThousandVal, err := numeral.ParseUnsigned("一兆", numeral.TenThousand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lowVal, err := numeral.ParseUnsigned("一兆", numeral.Low)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenThousandVal.Cmp(lowVal) == 0 {
		t.Errorf("expected 一兆 to mean different magnitudes under TenThousand vs Low, got same value %s", tenThousandVal)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	values := []string{"0", "1", "9", "10", "19", "20", "99", "100", "101", "1001", "9999", "10000", "10001", "99999999", "123456789"}
	conventions := []numeral.Convention{numeral.Low, numeral.TenThousand, numeral.Middle, numeral.High}
	variants := []numeral.Variant{numeral.Traditional, numeral.Simplified}
	cases := []numeral.Case{numeral.Informal, numeral.Formal}

	for _, s := range values {
		v := bigFromString(t, s)
		for _, conv := range conventions {
			for _, variant := range variants {
				for _, c := range cases {
					rendered := numeral.FormatUnsigned(v, variant, c, conv)
					parsed, err := numeral.ParseUnsigned(rendered, conv)
					if err != nil {
						t.Fatalf("round trip failed for %s (%v/%v/%v): render %q, parse error %v", s, variant, c, conv, rendered, err)
					}
					if parsed.Cmp(v) != 0 {
						t.Errorf("round trip mismatch for %s (%v/%v/%v): rendered %q parsed back as %s", s, variant, c, conv, rendered, parsed)
					}
				}
			}
		}
	}
}

func TestParseFloat(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"一角二分", 0.12},
		{"五角", 0.5},
		{"三四角五分", 3.45},
		{"零", 0},
	}
	for _, tc := range cases {
		got, err := numeral.ParseFloat(tc.input, numeral.TenThousand)
		if err != nil {
			t.Fatalf("ParseFloat(%q) returned error: %v", tc.input, err)
		}
		diff := got - tc.want
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-9 {
			t.Errorf("ParseFloat(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseFloatNegative(t *testing.T) {
	got, err := numeral.ParseFloat("負五角", numeral.TenThousand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -0.5 {
		t.Errorf("ParseFloat(負五角) = %v, want -0.5", got)
	}
}
