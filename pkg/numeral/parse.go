package numeral

import "math/big"

// token is one classified rune from the input, carrying its rune index
// (not byte index) for error reporting, matching the char-index contract
// documented on ParseError.
type token struct {
	kind  glyphKind
	value int
	idx   int
}

// tokenize classifies every rune of s via reverseLookup. An unrecognised
// rune is reported at its rune position.
func tokenize(s string) ([]token, *ParseError) {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil, errEmpty()
	}
	tokens := make([]token, 0, len(runes))
	for i, r := range runes {
		info, ok := reverseLookup[r]
		if !ok {
			return nil, errCharIncorrect(i)
		}
		tokens = append(tokens, token{kind: info.kind, value: info.value, idx: i})
	}
	return tokens, nil
}

// readGroup consumes one run of digit/small-unit tokens starting at
// tokens[start] — a single 4-digit group such as "三千零一十二" — and
// returns its numeric value together with the index just past it. A bare
// 十 with no preceding digit (the Informal leading-one suppression) is
// only legal as the very first token of the group (i == start); next ==
// start unambiguously tells the caller "there was no coefficient here at
// all" (e.g. tokens[start] is already a large-unit glyph).
func readGroup(tokens []token, start int) (value int64, next int, err *ParseError) {
	i := start
	for i < len(tokens) {
		tk := tokens[i]
		switch tk.kind {
		case glyphDigit:
			d := int64(tk.value)
			i++
			if i < len(tokens) && tokens[i].kind == glyphSmallUnit {
				value += d * int64(tokens[i].value)
				i++
				continue
			}
			if d == 0 {
				// zero connector (or a trailing standalone zero): consumed,
				// contributes nothing, group continues past it.
				continue
			}
			// bare non-zero digit with no following unit: this is the
			// group's ones digit, the group ends here.
			return value + d, i, nil
		case glyphSmallUnit:
			if tk.value == 10 && i == start {
				value += 10
				i++
				continue
			}
			return value, i, errCharIncorrect(tk.idx)
		default:
			return value, i, nil
		}
	}
	return value, i, nil
}

// parseMagnitude reads the integer portion of a numeral starting at
// tokens[start] (after any leading sign has already been stripped by the
// caller): a sequence of groups, each optionally followed by a large-unit
// glyph, with the final group (if any) contributing directly with no unit.
// A large unit may follow smaller ones, which then form part of its
// coefficient; repeating the unit that closed the preceding term at the
// same level (一萬二萬) is rejected. It stops at the first fraction-unit
// token or at the end of the token stream, returning how far it got so the
// caller can continue into 角/分 or detect trailing garbage.
func parseMagnitude(tokens []token, start int, convention Convention) (*big.Int, int, *ParseError) {
	if start >= len(tokens) {
		return nil, start, errEmpty()
	}

	i := start
	total := new(big.Int)
	// units/terms record each large unit read so far and the term it closed
	// (already in total); a later, larger unit takes back the trailing
	// smaller terms as its own coefficient, as in 三百四十萬二千八百二十三京.
	var units []int
	var terms []*big.Int

	for i < len(tokens) && tokens[i].kind != glyphFractionUnit {
		groupVal, next, err := readGroup(tokens, i)
		if err != nil {
			return nil, i, err
		}
		if next == i {
			return nil, i, errCharIncorrect(tokens[i].idx)
		}
		i = next

		if i < len(tokens) && tokens[i].kind == glyphLargeUnit {
			unitIdx := tokens[i].value
			coeff := big.NewInt(groupVal)
			for n := len(units); n > 0 && units[n-1] < unitIdx; n = len(units) {
				coeff.Add(coeff, terms[n-1])
				total.Sub(total, terms[n-1])
				units, terms = units[:n-1], terms[:n-1]
			}
			if n := len(units); n > 0 && units[n-1] == unitIdx {
				return nil, i, errCharIncorrect(tokens[i].idx)
			}
			term := coeff.Mul(coeff, magnitudeFor(unitIdx, convention))
			total.Add(total, term)
			units, terms = append(units, unitIdx), append(terms, term)
			i++
			continue
		}

		total.Add(total, big.NewInt(groupVal))
		break
	}

	return total, i, nil
}

// parseFraction reads a trailing 角 and/or 分 pair starting at tokens[i]
// and returns their combined decimal value plus the index just past them.
func parseFraction(tokens []token, i int) (float64, int, *ParseError) {
	if i+1 >= len(tokens) || tokens[i].kind != glyphDigit || tokens[i+1].kind != glyphFractionUnit {
		return 0, i, errCharIncorrect(tokens[i].idx)
	}

	var total float64
	d := tokens[i].value
	unit := tokens[i+1].value // 0 = 角, 1 = 分
	if unit == 0 {
		total += float64(d) / 10
	} else {
		total += float64(d) / 100
	}
	i += 2

	if unit == 0 && i+1 < len(tokens) && tokens[i].kind == glyphDigit && tokens[i+1].kind == glyphFractionUnit && tokens[i+1].value == 1 {
		total += float64(tokens[i].value) / 100
		i += 2
	}

	return total, i, nil
}

// ParseUnsigned parses s, which must carry no sign, as a non-negative
// value under convention.
func ParseUnsigned(s string, convention Convention) (*big.Int, *ParseError) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	if tokens[0].kind == glyphNegative {
		return nil, errCharIncorrect(0)
	}

	value, consumed, err := parseMagnitude(tokens, 0, convention)
	if err != nil {
		return nil, err
	}
	if consumed != len(tokens) {
		return nil, errCharIncorrect(tokens[consumed].idx)
	}
	return value, nil
}

// ParseSigned parses s, which may carry a leading 負/负, as a value under
// convention. The returned big.Int may be negative.
func ParseSigned(s string, convention Convention) (*big.Int, *ParseError) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	negative := false
	start := 0
	if tokens[0].kind == glyphNegative {
		negative = true
		start = 1
		if start >= len(tokens) {
			return nil, errCharIncorrect(1)
		}
	}

	value, consumed, err := parseMagnitude(tokens, start, convention)
	if err != nil {
		return nil, err
	}
	if consumed != len(tokens) {
		return nil, errCharIncorrect(tokens[consumed].idx)
	}
	if negative {
		value.Neg(value)
	}
	return value, nil
}

// ParseFloat parses s, which may carry a leading sign and a trailing
// 角/分 fraction, under convention.
func ParseFloat(s string, convention Convention) (float64, *ParseError) {
	tokens, err := tokenize(s)
	if err != nil {
		return 0, err
	}

	negative := false
	start := 0
	if tokens[0].kind == glyphNegative {
		negative = true
		start = 1
		if start >= len(tokens) {
			return 0, errCharIncorrect(1)
		}
	}

	// The digit right before the first 角/分 belongs to the fraction, so the
	// integer part ends one token earlier (一角二分 has no integer part).
	end := len(tokens)
	for j := start; j < len(tokens); j++ {
		if tokens[j].kind == glyphFractionUnit {
			end = j - 1
			break
		}
	}

	intVal, consumed := new(big.Int), start
	if end > start {
		intVal, consumed, err = parseMagnitude(tokens[:end], start, convention)
		if err != nil {
			return 0, err
		}
	}

	f, _ := new(big.Float).SetInt(intVal).Float64()
	i := consumed

	if i < len(tokens) {
		frac, nextI, err := parseFraction(tokens, i)
		if err != nil {
			return 0, err
		}
		f += frac
		i = nextI
	}

	if i != len(tokens) {
		return 0, errCharIncorrect(tokens[i].idx)
	}

	if negative {
		f = -f
	}
	return f, nil
}
