package register

import "errors"

// Errors returned by spec validation, the engine and the registry.
// Check with errors.Is(); transport failures wrap ErrTransport and keep
// the underlying error text.
var (
	// ErrInvalidSpec is returned when a RegisterSpec violates one of its
	// construction invariants.
	ErrInvalidSpec = errors.New("register: invalid spec")

	// ErrTransport is returned when the word-level read or write fails,
	// including short responses.
	ErrTransport = errors.New("register: transport failure")

	// ErrOutOfRange is returned when a raw value falls outside the spec's
	// declared range, on read or on write. Values are never clamped.
	ErrOutOfRange = errors.New("register: value out of range")

	// ErrNotWritable is returned when writing to a read-only register.
	ErrNotWritable = errors.New("register: register not writable")

	// ErrPrecision is returned when a fixed-point write does not scale to
	// an exact integer.
	ErrPrecision = errors.New("register: value loses precision")

	// ErrUnknownRegister is returned by Registry.Lookup for unmapped names.
	ErrUnknownRegister = errors.New("register: unknown register")
)
