package register

import "fmt"

// Transport issues raw word-level requests against the device. The wire
// protocol is half-duplex request/response: implementations block until the
// response (or a timeout) arrives, and callers sharing one Transport must
// serialize access themselves. Retries and timeouts live behind this
// interface, never in the engine.
type Transport interface {
	ReadWords(bank Bank, address, count uint16) ([]uint16, error)
	WriteWords(address uint16, words []uint16) error
}

// Engine reads and writes typed values through a Transport according to a
// RegisterSpec. It is stateless per call and performs no locking.
type Engine struct {
	t Transport
}

func NewEngine(t Transport) *Engine {
	return &Engine{t: t}
}

// ReadValue reads spec.Count words, composes them most-significant word
// first and returns the decoded value. Raw values outside the spec's range
// fail with ErrOutOfRange rather than being clamped: a reading past its
// declared bounds means a device fault or a wrong spec.
func (e *Engine) ReadValue(spec RegisterSpec) (Value, error) {
	words, err := e.t.ReadWords(spec.Bank, spec.Address, spec.Count)
	if err != nil {
		return Value{}, fmt.Errorf("%w: read %s register 0x%04X: %w", ErrTransport, spec.Bank, spec.Address, err)
	}
	if len(words) < int(spec.Count) {
		return Value{}, fmt.Errorf("%w: short response for register 0x%04X: got %d words, want %d",
			ErrTransport, spec.Address, len(words), spec.Count)
	}
	raw := composeWords(words[:spec.Count])
	if min, max := spec.RawBounds(); raw < min || raw > max {
		return Value{}, fmt.Errorf("%w: register 0x%04X raw value %d outside [%d, %d]",
			ErrOutOfRange, spec.Address, raw, min, max)
	}
	return decodeRaw(spec, raw), nil
}

// WriteValue validates and writes a value as one multi-word request.
// Nothing touches the Transport until every check has passed.
func (e *Engine) WriteValue(spec RegisterSpec, v Value) error {
	if !spec.Writable {
		return fmt.Errorf("%w: register 0x%04X", ErrNotWritable, spec.Address)
	}
	raw, err := encodeRaw(spec, v)
	if err != nil {
		return err
	}
	words := decomposeWords(raw, spec.Count)
	if err := e.t.WriteWords(spec.Address, words); err != nil {
		return fmt.Errorf("%w: write register 0x%04X: %w", ErrTransport, spec.Address, err)
	}
	return nil
}

// InvokeCommand writes a fixed code to a command register to trigger a
// device-side action. No read-back is performed.
func (e *Engine) InvokeCommand(spec RegisterSpec, code uint16) error {
	return e.WriteValue(spec, IntValue(int64(code)))
}

// encodeRaw converts a value to its raw integer, enforcing exactness and
// the spec's raw bounds.
func encodeRaw(spec RegisterSpec, v Value) (uint64, error) {
	scaled := v.Decimal().Shift(int32(spec.Decimals))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%w: %s does not scale to an integer with %d decimals",
			ErrPrecision, v, spec.Decimals)
	}
	min, max := spec.RawBounds()
	bi := scaled.BigInt()
	if bi.Sign() < 0 || !bi.IsUint64() {
		return 0, fmt.Errorf("%w: register 0x%04X raw value %s outside [%d, %d]",
			ErrOutOfRange, spec.Address, bi, min, max)
	}
	raw := bi.Uint64()
	if raw < min || raw > max {
		return 0, fmt.Errorf("%w: register 0x%04X raw value %d outside [%d, %d]",
			ErrOutOfRange, spec.Address, raw, min, max)
	}
	return raw, nil
}

// composeWords folds words into one unsigned integer, first word
// most-significant.
func composeWords(words []uint16) uint64 {
	var raw uint64
	for _, w := range words {
		raw = raw<<16 | uint64(w)
	}
	return raw
}

// decomposeWords splits a raw integer into count words, most-significant
// first. The inverse of composeWords for in-range values.
func decomposeWords(raw uint64, count uint16) []uint16 {
	words := make([]uint16, count)
	for i := int(count) - 1; i >= 0; i-- {
		words[i] = uint16(raw & 0xFFFF)
		raw >>= 16
	}
	return words
}
