// Package dcm230 holds the register table for Eastron DCM230 series energy
// meters. The table is plain data: addressing, scaling and bounds for each
// quantity the meter exposes, fed into a register.Registry at startup.
package dcm230

import "github.com/tetragramaton/dcm230-go/internal/register"

// Logical register names.
const (
	Voltage       = "voltage"
	Current       = "current"
	Power         = "power"
	ApparentPower = "apparent_power"
	ReactivePower = "reactive_power"
	PowerFactor   = "power_factor"
	Frequency     = "frequency"
	ImportEnergy  = "import_energy"
	ExportEnergy  = "export_energy"
	TotalEnergy   = "total_energy"
	BacklitTime   = "backlit_time"
	DemandPeriod  = "demand_period"
	Reset         = "reset"
)

// Codes accepted by the reset command register.
const (
	CodeResetMaxDemand     uint16 = 0x0001
	CodeResetPartialEnergy uint16 = 0x0002
)

// Polled lists the telemetry registers the adapter reads each interval.
var Polled = []string{
	Voltage,
	Current,
	Power,
	Frequency,
	TotalEnergy,
}

var units = map[string]string{
	Voltage:       "V",
	Current:       "A",
	Power:         "W",
	ApparentPower: "VA",
	ReactivePower: "var",
	Frequency:     "Hz",
	ImportEnergy:  "kWh",
	ExportEnergy:  "kWh",
	TotalEnergy:   "kWh",
	BacklitTime:   "min",
	DemandPeriod:  "min",
}

// Unit returns the unit of measurement for a register name, or "".
func Unit(name string) string { return units[name] }

// Specs returns a fresh copy of the DCM230 register table.
func Specs() map[string]register.RegisterSpec {
	input := func(addr uint16, decimals uint8) register.RegisterSpec {
		return register.RegisterSpec{
			Address:  addr,
			Count:    2,
			Bank:     register.Input,
			Decimals: decimals,
			Kind:     register.FixedPoint,
		}
	}
	return map[string]register.RegisterSpec{
		Voltage:       input(0x0000, 1),
		Current:       input(0x0006, 3),
		Power:         input(0x000C, 1),
		ApparentPower: input(0x0012, 1),
		ReactivePower: input(0x0018, 1),
		PowerFactor:   input(0x0024, 3),
		Frequency:     input(0x0046, 2),
		ImportEnergy:  input(0x0048, 3),
		ExportEnergy:  input(0x004A, 3),
		TotalEnergy:   input(0x0156, 3),

		// Display backlight on-time in minutes; 0 means always on.
		BacklitTime: {
			Address:  0x001E,
			Count:    1,
			Bank:     register.Holding,
			Range:    true,
			Min:      0,
			Max:      60,
			Writable: true,
			Kind:     register.Integer,
		},
		// Demand integration period in minutes.
		DemandPeriod: {
			Address:  0x0002,
			Count:    1,
			Bank:     register.Holding,
			Range:    true,
			Min:      0,
			Max:      60,
			Writable: true,
			Kind:     register.Integer,
		},
		// Command register: writing a code clears max demand or the
		// partial energy accumulator.
		Reset: {
			Address:  0xF010,
			Count:    1,
			Bank:     register.Holding,
			Range:    true,
			Min:      uint64(CodeResetMaxDemand),
			Max:      uint64(CodeResetPartialEnergy),
			Writable: true,
			Kind:     register.Integer,
		},
	}
}

// NewRegistry builds a validated registry from the builtin table.
func NewRegistry() (*register.Registry, error) {
	return register.NewRegistry(Specs())
}
