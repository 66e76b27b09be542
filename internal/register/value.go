package register

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Value is one decoded register reading or one value to be written.
// Integer values carry the raw composed integer; FixedPoint values carry
// an exact base-10 decimal. Scaling never goes through binary floats.
type Value struct {
	kind ValueKind
	dec  decimal.Decimal
}

// IntValue builds an Integer value.
func IntValue(n int64) Value {
	return Value{kind: Integer, dec: decimal.NewFromInt(n)}
}

// DecimalValue builds a FixedPoint value.
func DecimalValue(d decimal.Decimal) Value {
	return Value{kind: FixedPoint, dec: d}
}

// decodeRaw scales a composed raw integer per the spec.
func decodeRaw(spec RegisterSpec, raw uint64) Value {
	exp := int32(0)
	if spec.Kind == FixedPoint {
		exp = -int32(spec.Decimals)
	}
	return Value{
		kind: spec.Kind,
		dec:  decimal.NewFromBigInt(new(big.Int).SetUint64(raw), exp),
	}
}

// Kind reports the value's representation.
func (v Value) Kind() ValueKind { return v.kind }

// Decimal returns the value as an exact decimal.
func (v Value) Decimal() decimal.Decimal { return v.dec }

// Int64 returns the integer part of the value. ok is false when it does
// not fit in an int64, which only 4-word registers can produce; use
// Decimal for those.
func (v Value) Int64() (n int64, ok bool) {
	bi := v.dec.BigInt()
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}

// String renders the value, keeping the decimal places implied by its
// exponent so a 2-decimal reading of 1000 prints as "1000.00".
func (v Value) String() string {
	if e := v.dec.Exponent(); e < 0 {
		return v.dec.StringFixed(-e)
	}
	return v.dec.String()
}
