package numeral_test

import (
	"math/big"
	"testing"

	"chinese-numeral-converter/pkg/numeral"
)

func TestFixedWidthRoundTrips(t *testing.T) {
	if got := numeral.FormatU8(200, numeral.Traditional, numeral.Informal); got == "" {
		t.Fatal("FormatU8 returned empty string")
	}
	u8, err := numeral.ParseU8(numeral.FormatU8(200, numeral.Traditional, numeral.Informal))
	if err != nil || u8 != 200 {
		t.Errorf("ParseU8 round trip: got (%d, %v), want (200, nil)", u8, err)
	}

	i8, err := numeral.ParseI8(numeral.FormatI8(-100, numeral.Traditional, numeral.Informal))
	if err != nil || i8 != -100 {
		t.Errorf("ParseI8 round trip: got (%d, %v), want (-100, nil)", i8, err)
	}

	u64, err := numeral.ParseU64(numeral.FormatU64(123456789, numeral.Traditional, numeral.Informal, numeral.TenThousand), numeral.TenThousand)
	if err != nil || u64 != 123456789 {
		t.Errorf("ParseU64 round trip: got (%d, %v), want (123456789, nil)", u64, err)
	}

	i64, err := numeral.ParseI64(numeral.FormatI64(-123456789, numeral.Traditional, numeral.Informal, numeral.TenThousand), numeral.TenThousand)
	if err != nil || i64 != -123456789 {
		t.Errorf("ParseI64 round trip: got (%d, %v), want (-123456789, nil)", i64, err)
	}
}

func TestParseU8Overflow(t *testing.T) {
	s := numeral.FormatU16(300, numeral.Traditional, numeral.Informal)
	_, err := numeral.ParseU8(s)
	if err == nil || err.Kind != numeral.ErrOverflow {
		t.Fatalf("expected ErrOverflow parsing 300 as u8, got %v", err)
	}
}

func TestParseI8Underflow(t *testing.T) {
	s := numeral.FormatI16(-200, numeral.Traditional, numeral.Informal)
	_, err := numeral.ParseI8(s)
	if err == nil || err.Kind != numeral.ErrUnderflow {
		t.Fatalf("expected ErrUnderflow parsing -200 as i8, got %v", err)
	}
}

func TestU128RoundTrip(t *testing.T) {
	v, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10) // 2^128 - 1
	rendered := numeral.FormatU128(v, numeral.Traditional, numeral.Informal, numeral.High)
	parsed, err := numeral.ParseU128(rendered, numeral.High)
	if err != nil {
		t.Fatalf("ParseU128 round trip failed: %v", err)
	}
	if parsed.Cmp(v) != 0 {
		t.Errorf("U128 round trip mismatch: got %s, want %s", parsed, v)
	}
}

func TestU128Overflow(t *testing.T) {
	v, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10) // 2^128
	_, err := numeral.ParseU128(numeral.FormatUnsigned(v, numeral.Traditional, numeral.Informal, numeral.High), numeral.High)
	if err == nil || err.Kind != numeral.ErrOverflow {
		t.Fatalf("expected ErrOverflow for 2^128, got %v", err)
	}
}

func TestI128SignedMinimum(t *testing.T) {
	min, _ := new(big.Int).SetString("-170141183460469231731687303715884105728", 10) // -2^127
	rendered := numeral.FormatI128(min, numeral.Traditional, numeral.Informal, numeral.High)
	parsed, err := numeral.ParseI128(rendered, numeral.High)
	if err != nil {
		t.Fatalf("ParseI128 round trip failed for signed minimum: %v", err)
	}
	if parsed.Cmp(min) != 0 {
		t.Errorf("I128 signed minimum mismatch: got %s, want %s", parsed, min)
	}
}

func TestParseF32Overflow(t *testing.T) {
	v, _ := new(big.Int).SetString("340282366920938463463374607431768211455", 10) // 2^128 - 1, just above math.MaxFloat32
	huge := numeral.FormatU128(v, numeral.Traditional, numeral.Informal, numeral.High)
	_, err := numeral.ParseF32(huge, numeral.High)
	if err == nil || err.Kind != numeral.ErrOverflow {
		t.Fatalf("expected ErrOverflow parsing 2^128-1 as f32, got %v", err)
	}
}

func TestFormatF64(t *testing.T) {
	got := numeral.FormatF64(0.5, numeral.Traditional, numeral.Informal, numeral.TenThousand)
	want := "五角"
	if got != want {
		t.Errorf("FormatF64(0.5) = %q, want %q", got, want)
	}
}
