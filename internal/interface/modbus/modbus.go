package modbus

import "github.com/tetragramaton/dcm230-go/internal/register"

// API is the slice of the goburrow/modbus client surface the transport
// consumes.
type API interface {
	ReadHoldingRegisters(address, quantity uint16) (results []byte, err error)
	ReadInputRegisters(address, quantity uint16) (results []byte, err error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) (results []byte, err error)
}

// Client is a word-level transport with a lifecycle. One Client owns one
// half-duplex serial or TCP connection; callers sharing it must serialize
// access.
type Client interface {
	register.Transport
	Close() error
}
