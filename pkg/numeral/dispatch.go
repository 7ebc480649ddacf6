package numeral

import (
	"math"
	"math/big"
)

// defaultSmallConvention is used by the 8/16-bit entry points, which take
// no Convention parameter per the upstream API being mirrored (see
// DESIGN.md's dispatch.go section): every convention agrees on 萬=10^4, and no value under
// 2^16 reaches the next large unit, so the choice is immaterial.
const defaultSmallConvention = TenThousand

func maxUnsigned(bits uint) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))
}

func maxSigned(bits uint) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits-1), big.NewInt(1))
}

func minSigned(bits uint) *big.Int {
	return new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), bits-1))
}

func checkUnsignedRange(v *big.Int, bits uint) *ParseError {
	if v.Sign() < 0 {
		return errUnderflow()
	}
	if v.Cmp(maxUnsigned(bits)) > 0 {
		return errOverflow()
	}
	return nil
}

func checkSignedRange(v *big.Int, bits uint) *ParseError {
	if v.Cmp(minSigned(bits)) < 0 {
		return errUnderflow()
	}
	if v.Cmp(maxSigned(bits)) > 0 {
		return errOverflow()
	}
	return nil
}

// --- unsigned formatting -----------------------------------------------

func FormatU8(v uint8, variant Variant, c Case) string {
	return FormatUnsigned(big.NewInt(int64(v)), variant, c, defaultSmallConvention)
}

func FormatU16(v uint16, variant Variant, c Case) string {
	return FormatUnsigned(big.NewInt(int64(v)), variant, c, defaultSmallConvention)
}

func FormatU32(v uint32, variant Variant, c Case, convention Convention) string {
	return FormatUnsigned(new(big.Int).SetUint64(uint64(v)), variant, c, convention)
}

func FormatU64(v uint64, variant Variant, c Case, convention Convention) string {
	return FormatUnsigned(new(big.Int).SetUint64(v), variant, c, convention)
}

// FormatU128 renders v, which must satisfy 0 <= v < 2^128; there is no
// native 128-bit unsigned type in Go so callers carry the value as a
// big.Int directly.
func FormatU128(v *big.Int, variant Variant, c Case, convention Convention) string {
	return FormatUnsigned(v, variant, c, convention)
}

// --- signed formatting ---------------------------------------------------

func FormatI8(v int8, variant Variant, c Case) string {
	return FormatSigned(big.NewInt(int64(v)), variant, c, defaultSmallConvention)
}

func FormatI16(v int16, variant Variant, c Case) string {
	return FormatSigned(big.NewInt(int64(v)), variant, c, defaultSmallConvention)
}

func FormatI32(v int32, variant Variant, c Case, convention Convention) string {
	return FormatSigned(big.NewInt(int64(v)), variant, c, convention)
}

func FormatI64(v int64, variant Variant, c Case, convention Convention) string {
	return FormatSigned(big.NewInt(v), variant, c, convention)
}

// FormatI128 renders v, which must satisfy -2^127 <= v < 2^127.
func FormatI128(v *big.Int, variant Variant, c Case, convention Convention) string {
	return FormatSigned(v, variant, c, convention)
}

// --- float formatting -----------------------------------------------------

func FormatF32(v float32, variant Variant, c Case, convention Convention) string {
	return FormatFloat(float64(v), variant, c, convention)
}

func FormatF64(v float64, variant Variant, c Case, convention Convention) string {
	return FormatFloat(v, variant, c, convention)
}

// --- unsigned parsing -----------------------------------------------------

func ParseU8(s string) (uint8, *ParseError) {
	v, err := ParseUnsigned(s, defaultSmallConvention)
	if err != nil {
		return 0, err
	}
	if err := checkUnsignedRange(v, 8); err != nil {
		return 0, err
	}
	return uint8(v.Uint64()), nil
}

func ParseU16(s string) (uint16, *ParseError) {
	v, err := ParseUnsigned(s, defaultSmallConvention)
	if err != nil {
		return 0, err
	}
	if err := checkUnsignedRange(v, 16); err != nil {
		return 0, err
	}
	return uint16(v.Uint64()), nil
}

func ParseU32(s string, convention Convention) (uint32, *ParseError) {
	v, err := ParseUnsigned(s, convention)
	if err != nil {
		return 0, err
	}
	if err := checkUnsignedRange(v, 32); err != nil {
		return 0, err
	}
	return uint32(v.Uint64()), nil
}

func ParseU64(s string, convention Convention) (uint64, *ParseError) {
	v, err := ParseUnsigned(s, convention)
	if err != nil {
		return 0, err
	}
	if err := checkUnsignedRange(v, 64); err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

// ParseU128 returns the parsed value as a big.Int, bounded to [0, 2^128).
func ParseU128(s string, convention Convention) (*big.Int, *ParseError) {
	v, err := ParseUnsigned(s, convention)
	if err != nil {
		return nil, err
	}
	if err := checkUnsignedRange(v, 128); err != nil {
		return nil, err
	}
	return v, nil
}

// --- signed parsing ---------------------------------------------------

func ParseI8(s string) (int8, *ParseError) {
	v, err := ParseSigned(s, defaultSmallConvention)
	if err != nil {
		return 0, err
	}
	if err := checkSignedRange(v, 8); err != nil {
		return 0, err
	}
	return int8(v.Int64()), nil
}

func ParseI16(s string) (int16, *ParseError) {
	v, err := ParseSigned(s, defaultSmallConvention)
	if err != nil {
		return 0, err
	}
	if err := checkSignedRange(v, 16); err != nil {
		return 0, err
	}
	return int16(v.Int64()), nil
}

func ParseI32(s string, convention Convention) (int32, *ParseError) {
	v, err := ParseSigned(s, convention)
	if err != nil {
		return 0, err
	}
	if err := checkSignedRange(v, 32); err != nil {
		return 0, err
	}
	return int32(v.Int64()), nil
}

func ParseI64(s string, convention Convention) (int64, *ParseError) {
	v, err := ParseSigned(s, convention)
	if err != nil {
		return 0, err
	}
	if err := checkSignedRange(v, 64); err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// ParseI128 returns the parsed value as a big.Int, bounded to
// [-2^127, 2^127).
func ParseI128(s string, convention Convention) (*big.Int, *ParseError) {
	v, err := ParseSigned(s, convention)
	if err != nil {
		return nil, err
	}
	if err := checkSignedRange(v, 128); err != nil {
		return nil, err
	}
	return v, nil
}

// --- float parsing ---------------------------------------------------

func ParseF64(s string, convention Convention) (float64, *ParseError) {
	return ParseFloat(s, convention)
}

func ParseF32(s string, convention Convention) (float32, *ParseError) {
	v, err := ParseFloat(s, convention)
	if err != nil {
		return 0, err
	}
	if math.Abs(v) > math.MaxFloat32 {
		return 0, errOverflow()
	}
	return float32(v), nil
}
