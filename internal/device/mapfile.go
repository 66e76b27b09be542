// Package device loads optional register-map overrides. A map file lets a
// deployment extend or correct a builtin device table (meter firmware
// revisions move registers around) without rebuilding the adapter.
package device

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tetragramaton/dcm230-go/internal/register"
)

// mapFile is the on-disk layout:
//
//	registers:
//	  voltage:
//	    address: 0x0000
//	    count: 2
//	    bank: input
//	    decimals: 1
type mapFile struct {
	Registers map[string]specDef `yaml:"registers"`
}

type specDef struct {
	Address  uint16  `yaml:"address"`
	Count    uint16  `yaml:"count"`
	Bank     string  `yaml:"bank"`
	Decimals uint8   `yaml:"decimals"`
	Min      *uint64 `yaml:"min"`
	Max      *uint64 `yaml:"max"`
	Writable bool    `yaml:"writable"`
}

// LoadMapFile parses a YAML register map. Specs are converted but not
// validated here; registry construction validates the merged table.
func LoadMapFile(path string) (map[string]register.RegisterSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read register map: %w", err)
	}
	var f mapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse register map: %w", err)
	}
	specs := make(map[string]register.RegisterSpec, len(f.Registers))
	for name, def := range f.Registers {
		spec, err := def.toSpec()
		if err != nil {
			return nil, fmt.Errorf("register %q: %w", name, err)
		}
		specs[name] = spec
	}
	return specs, nil
}

// Merge overlays overrides onto base, overrides winning per name.
func Merge(base, overrides map[string]register.RegisterSpec) map[string]register.RegisterSpec {
	out := make(map[string]register.RegisterSpec, len(base)+len(overrides))
	for name, spec := range base {
		out[name] = spec
	}
	for name, spec := range overrides {
		out[name] = spec
	}
	return out
}

func (d specDef) toSpec() (register.RegisterSpec, error) {
	spec := register.RegisterSpec{
		Address:  d.Address,
		Count:    d.Count,
		Decimals: d.Decimals,
		Writable: d.Writable,
	}
	if spec.Count == 0 {
		spec.Count = 1
	}
	switch d.Bank {
	case "", "input":
		spec.Bank = register.Input
	case "holding":
		spec.Bank = register.Holding
	default:
		return register.RegisterSpec{}, fmt.Errorf("unknown bank %q", d.Bank)
	}
	if d.Decimals > 0 {
		spec.Kind = register.FixedPoint
	}
	if d.Min != nil || d.Max != nil {
		spec.Range = true
		if d.Min != nil {
			spec.Min = *d.Min
		}
		if d.Max != nil {
			spec.Max = *d.Max
		} else {
			spec.Max = register.MaxRaw(spec.Count)
		}
	}
	return spec, nil
}
