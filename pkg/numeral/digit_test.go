package numeral

import (
	"strings"
	"testing"
)

func TestEmitGroup(t *testing.T) {
	const trad = 0   // Traditional, Informal styling index
	const formal = 1 // Traditional, Formal styling index

	cases := []struct {
		name     string
		v        int64
		styling  int
		suppress bool
		want     string
	}{
		{"zero", 0, trad, false, ""},
		{"solitary_one", 1, trad, false, "一"},
		{"nine", 9, trad, false, "九"},
		{"ten_whole_number", 10, trad, true, "十"},
		{"nineteen_whole_number", 19, trad, true, "十九"},
		{"twelve_as_leading_group", 12, trad, true, "十二"},
		{"twelve_formal_never_suppresses", 12, formal, false, "壹拾貳"},
		{"one_hundred", 100, trad, false, "一百"},
		{"one_hundred_one", 101, trad, false, "一百零一"},
		{"one_hundred_ten", 110, trad, false, "一百一十"},
		{"one_hundred_twenty", 120, trad, false, "一百二十"},
		{"nine_thousand_twelve", 9012, trad, false, "九千零一十二"},
		{"three_thousand_four_fifty_six", 3456, trad, false, "三千四百五十六"},
		{"seven_eight_nine_zero", 7890, trad, false, "七千八百九十"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b strings.Builder
			emitGroup(&b, tc.v, tc.styling, tc.suppress)
			if got := b.String(); got != tc.want {
				t.Errorf("emitGroup(%d, styling=%d, suppress=%v) = %q, want %q", tc.v, tc.styling, tc.suppress, got, tc.want)
			}
		})
	}
}

func TestEmitGroupSuppressOnlyAppliesToSolitaryLeadingTen(t *testing.T) {
	// A non-leading ten's digit is never suppressed even when the caller
	// passes suppressLeadingOne=true, since something has already been
	// emitted (the hundreds digit) by the time position 2 is reached.
	var b strings.Builder
	emitGroup(&b, 110, 0, true)
	if got := b.String(); got != "一百一十" {
		t.Errorf("got %q, want %q", got, "一百一十")
	}
}
