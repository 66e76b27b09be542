package register

import "fmt"

// Bank selects the register table a spec addresses. Input registers are
// read-only at the protocol level; holding registers may be written.
type Bank uint8

const (
	Input Bank = iota
	Holding
)

func (b Bank) String() string {
	switch b {
	case Input:
		return "input"
	case Holding:
		return "holding"
	default:
		return fmt.Sprintf("bank(%d)", uint8(b))
	}
}

// ValueKind selects the decoded representation of a register.
type ValueKind uint8

const (
	// Integer decodes to the raw composed integer.
	Integer ValueKind = iota
	// FixedPoint decodes to raw * 10^-Decimals, exactly.
	FixedPoint
)

func (k ValueKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case FixedPoint:
		return "fixed-point"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// maxWords caps the composed value at one uint64.
const maxWords = 4

// RegisterSpec describes one logical register: where it lives on the wire,
// how many 16-bit words compose it, how the raw integer is scaled and which
// raw values are acceptable. Specs are plain immutable data; validate once
// with Validate before use.
type RegisterSpec struct {
	// Address is the wire offset of the first word, in register units.
	Address uint16
	// Count is the number of consecutive words composing one value,
	// most-significant word first.
	Count uint16
	// Bank is the register table the spec addresses.
	Bank Bank
	// Decimals scales the raw integer by 10^-Decimals for FixedPoint specs.
	Decimals uint8
	// Range enables raw bounds checking against Min and Max. When false,
	// the full representable span of Count words applies.
	Range    bool
	Min, Max uint64
	// Writable permits writes; requires Bank == Holding.
	Writable bool
	// Kind selects the decoded representation.
	Kind ValueKind
}

// Validate checks the spec's construction invariants.
func (s RegisterSpec) Validate() error {
	if s.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidSpec, s.Count)
	}
	if s.Count > maxWords {
		return fmt.Errorf("%w: count %d exceeds %d words", ErrInvalidSpec, s.Count, maxWords)
	}
	if s.Range {
		if s.Min > s.Max {
			return fmt.Errorf("%w: min %d greater than max %d", ErrInvalidSpec, s.Min, s.Max)
		}
		if s.Max > MaxRaw(s.Count) {
			return fmt.Errorf("%w: max %d not representable in %d words", ErrInvalidSpec, s.Max, s.Count)
		}
	}
	if s.Writable && s.Bank != Holding {
		return fmt.Errorf("%w: writable register must be in the holding bank", ErrInvalidSpec)
	}
	if s.Decimals > 0 && s.Kind != FixedPoint {
		return fmt.Errorf("%w: decimals require a fixed-point kind", ErrInvalidSpec)
	}
	return nil
}

// RawBounds returns the acceptable raw span: the declared range when set,
// otherwise the full unsigned span of Count words.
func (s RegisterSpec) RawBounds() (min, max uint64) {
	if s.Range {
		return s.Min, s.Max
	}
	return 0, MaxRaw(s.Count)
}

// MaxRaw returns the largest unsigned integer representable in count
// 16-bit words.
func MaxRaw(count uint16) uint64 {
	if count >= maxWords {
		return 1<<64 - 1
	}
	return 1<<(16*count) - 1
}
