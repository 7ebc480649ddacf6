package numeral

import "strings"

// emitGroup renders v (must be in [0, 10000)) as digits and the small-unit
// glyphs 千/百/十, honouring the zero-connector rule. suppressLeadingOne
// omits the leading "1" before a solitary 十 at the tens position — callers
// pass true only for the most-significant group of the whole number in
// Informal case, and only when that suppresses a bare "1" (i.e. nothing
// was emitted yet in this group when the tens position is reached).
func emitGroup(b *strings.Builder, v int64, styling int, suppressLeadingOne bool) {
	if v == 0 {
		return
	}

	thousands := (v / 1000) % 10
	hundreds := (v / 100) % 10
	tens := (v / 10) % 10
	ones := v % 10

	digits := [4]int64{thousands, hundreds, tens, ones}
	// unit glyph to emit right after each digit; empty for the ones position.
	unitAt := func(pos int) (rune, bool) {
		switch pos {
		case 0:
			return smallUnitGlyphs[styling][2], true // 千
		case 1:
			return smallUnitGlyphs[styling][1], true // 百
		case 2:
			return smallUnitGlyphs[styling][0], true // 十
		default:
			return 0, false
		}
	}

	started := false
	zeroPending := false

	for pos := 0; pos < 4; pos++ {
		d := digits[pos]
		if d == 0 {
			if started {
				zeroPending = true
			}
			continue
		}

		if zeroPending && started {
			b.WriteRune(digitGlyphs[styling][0])
		}
		zeroPending = false

		omitDigit := pos == 2 && d == 1 && !started && suppressLeadingOne
		if !omitDigit {
			b.WriteRune(digitGlyphs[styling][d])
		}
		if u, ok := unitAt(pos); ok {
			b.WriteRune(u)
		}
		started = true
	}
}
