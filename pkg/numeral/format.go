package numeral

import (
	"math"
	"math/big"
	"strings"
)

var (
	big10000    = big.NewInt(10000)
	bigThousand = big.NewInt(1000)
	// lowCeiling is the first value the Low convention cannot represent
	// (每 unit above 萬 adds exactly one decade; 極 tops out at 10^15).
	lowCeiling = new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil)
)

// magnitudeExponent returns the power of ten the large-unit glyph at
// unitIndex (0=萬 .. 11=極) carries under convention. See DESIGN.md's Open
// Question decision 4 for why TenThousand's
// literal "極=10^52" aside in spec.md is not followed (it is inconsistent
// with the stated generation rule and with the worked examples).
func magnitudeExponent(unitIndex int, convention Convention) int64 {
	switch convention {
	case Low:
		// 萬=10^4, each successive unit one decade higher.
		return 4 + int64(unitIndex)
	case TenThousand:
		// 萬=10^4, each successive unit ×10^4 over the last.
		return 4 * int64(unitIndex+1)
	case Middle:
		// 萬=10^4, 億=10^8, each successive unit past 億 ×10^8 over the last.
		if unitIndex == 0 {
			return 4
		}
		return 8 * int64(unitIndex)
	case High:
		// 萬=10^4, each successive unit squares the last: 4*2^i.
		return 4 * (int64(1) << uint(unitIndex))
	default:
		return 4 * int64(unitIndex+1)
	}
}

func magnitudeFor(unitIndex int, convention Convention) *big.Int {
	exp := magnitudeExponent(unitIndex, convention)
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
}

// formatMagnitude renders a non-negative value via the recursive cascade
// described in SPEC_FULL.md §2.3: find the highest large unit that fits,
// recursively render its coefficient and the remainder, inserting a
// zero-connector whenever the position immediately below the unit just
// emitted is empty. isFirst marks whether this call renders the
// most-significant segment of the whole number (the only place Informal
// case ever suppresses a leading "1" before a solitary 十).
func formatMagnitude(b *strings.Builder, v *big.Int, styling int, convention Convention, isFirst bool) {
	if v.Sign() == 0 {
		return
	}
	if v.Cmp(big10000) < 0 {
		emitGroup(b, v.Int64(), styling, isFirst)
		return
	}

	digitCount := int64(len(v.String()))
	k := -1
	for idx := numLargeUnits - 1; idx >= 0; idx-- {
		exp := magnitudeExponent(idx, convention)
		if exp+1 > digitCount {
			continue
		}
		if magnitudeFor(idx, convention).Cmp(v) <= 0 {
			k = idx
			break
		}
	}
	if k < 0 {
		// magnitude(0) = 10^4 always fits once v >= 10000, so this is unreachable.
		emitGroup(b, v.Int64(), styling, isFirst)
		return
	}

	mag := magnitudeFor(k, convention)
	coeff, remainder := new(big.Int), new(big.Int)
	coeff.DivMod(v, mag, remainder)

	formatMagnitude(b, coeff, styling, convention, isFirst)
	b.WriteRune(largeUnitGlyphs[styling/2][k])

	if remainder.Sign() == 0 {
		return
	}

	var threshold *big.Int
	if k > 0 {
		threshold = new(big.Int).Quo(mag, big.NewInt(10))
	} else {
		threshold = bigThousand
	}
	if remainder.Cmp(threshold) < 0 {
		b.WriteRune(digitGlyphs[styling][0])
	}
	formatMagnitude(b, remainder, styling, convention, false)
}

// FormatUnsignedInto appends the Chinese-numeral rendering of a
// non-negative value to buf. Panics if convention is Low and v >= 10^16: Low has no large-unit glyph
// above 極=10^15 and cannot represent such a value, which is a programmer
// error per SPEC_FULL.md rather than a recoverable one.
func FormatUnsignedInto(buf *strings.Builder, v *big.Int, variant Variant, c Case, convention Convention) {
	if v.Sign() < 0 {
		panic("numeral: FormatUnsignedInto called with a negative value")
	}
	if convention == Low && v.Cmp(lowCeiling) >= 0 {
		panic("numeral: value too large for the Low (下數) counting convention")
	}

	styling := stylingIndex(variant, c)
	if v.Sign() == 0 {
		buf.WriteRune(digitGlyphs[styling][0])
		return
	}
	// Leading-"1" suppression before a solitary 十 is an Informal-case
	// convention only; Formal numerals always spell out 壹拾.
	formatMagnitude(buf, v, styling, convention, c == Informal)
}

// FormatUnsigned renders a non-negative value as an owning string.
func FormatUnsigned(v *big.Int, variant Variant, c Case, convention Convention) string {
	var b strings.Builder
	FormatUnsignedInto(&b, v, variant, c, convention)
	return b.String()
}

// FormatSignedInto appends the Chinese-numeral rendering of a (possibly
// negative) value to buf, prepending 負/负 for negative values. v's
// magnitude must already be promoted to a width wide enough to hold
// |math.MinInt| without overflow — dispatch.go handles that promotion for
// each fixed-width signed entry point.
func FormatSignedInto(buf *strings.Builder, v *big.Int, variant Variant, c Case, convention Convention) {
	if v.Sign() < 0 {
		buf.WriteRune(negativeGlyph[int(variant)])
		mag := new(big.Int).Neg(v)
		FormatUnsignedInto(buf, mag, variant, c, convention)
		return
	}
	FormatUnsignedInto(buf, v, variant, c, convention)
}

// FormatSigned renders a (possibly negative) value as an owning string.
func FormatSigned(v *big.Int, variant Variant, c Case, convention Convention) string {
	var b strings.Builder
	FormatSignedInto(&b, v, variant, c, convention)
	return b.String()
}

// FormatFloatInto appends the Chinese-numeral rendering of a float to buf:
// the integer part via the unsigned path, then a 角 (tenths) digit if
// nonzero, then a 分 (hundredths) digit if nonzero. Both fraction digits
// are obtained by truncating value*100 (see SPEC_FULL.md §7's Open
// Question decision) rather than rounding, so formatting and parsing stay
// exact inverses of each other.
func FormatFloatInto(buf *strings.Builder, value float64, variant Variant, c Case, convention Convention) {
	styling := stylingIndex(variant, c)

	if value < 0 {
		buf.WriteRune(negativeGlyph[int(variant)])
		value = -value
	}

	intPart, frac := splitFraction(value)

	// binary64 can't represent most decimal fractions exactly (0.12 lands
	// a hair under or over its true value), so nudge before truncating.
	scaled := int64(frac*100 + 1e-9)
	t := (scaled / 10) % 10
	h := scaled % 10

	intBig, _ := big.NewFloat(intPart).Int(nil)

	if intBig.Sign() == 0 && t == 0 && h == 0 {
		buf.WriteRune(digitGlyphs[styling][0])
		return
	}

	if intBig.Sign() != 0 {
		FormatUnsignedInto(buf, intBig, variant, c, convention)
	}
	if t > 0 {
		buf.WriteRune(digitGlyphs[styling][t])
		buf.WriteRune(fractionGlyphs[0])
	}
	if h > 0 {
		buf.WriteRune(digitGlyphs[styling][h])
		buf.WriteRune(fractionGlyphs[1])
	}
}

// FormatFloat renders a float as an owning string.
func FormatFloat(value float64, variant Variant, c Case, convention Convention) string {
	var b strings.Builder
	FormatFloatInto(&b, value, variant, c, convention)
	return b.String()
}

// splitFraction separates value (>= 0) into its truncated integer part and
// its fractional remainder, computed via math.Trunc's integer/float split
// so that values past float64's exact-integer range (2^53) still yield a
// sane (if imprecise, as binary64 itself is) fractional remainder.
func splitFraction(value float64) (intPart, frac float64) {
	intPart = math.Trunc(value)
	frac = value - intPart
	if frac < 0 {
		frac = 0
	}
	return intPart, frac
}
