package device_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tetragramaton/dcm230-go/internal/device"
	"github.com/tetragramaton/dcm230-go/internal/register"
)

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registers.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMapFile(t *testing.T) {
	path := writeMap(t, `
registers:
  voltage:
    address: 0x0000
    count: 2
    bank: input
    decimals: 1
  relay_pulse:
    address: 0x000C
    bank: holding
    writable: true
    min: 60
    max: 200
`)
	specs, err := device.LoadMapFile(path)
	if err != nil {
		t.Fatalf("LoadMapFile: %v", err)
	}

	v := specs["voltage"]
	if v.Address != 0x0000 || v.Count != 2 || v.Bank != register.Input {
		t.Fatalf("voltage: %+v", v)
	}
	if v.Kind != register.FixedPoint || v.Decimals != 1 {
		t.Fatalf("voltage should infer fixed-point: %+v", v)
	}

	r := specs["relay_pulse"]
	if r.Count != 1 {
		t.Fatalf("count should default to 1: %+v", r)
	}
	if r.Bank != register.Holding || !r.Writable {
		t.Fatalf("relay_pulse: %+v", r)
	}
	if !r.Range || r.Min != 60 || r.Max != 200 {
		t.Fatalf("relay_pulse range: %+v", r)
	}
}

func TestLoadMapFileDefaultsMaxToSpan(t *testing.T) {
	path := writeMap(t, `
registers:
  counter:
    address: 0x0010
    count: 2
    bank: holding
    writable: true
    min: 1
`)
	specs, err := device.LoadMapFile(path)
	if err != nil {
		t.Fatalf("LoadMapFile: %v", err)
	}
	c := specs["counter"]
	if !c.Range || c.Min != 1 || c.Max != register.MaxRaw(2) {
		t.Fatalf("counter range: %+v", c)
	}
}

func TestLoadMapFileRejectsUnknownBank(t *testing.T) {
	path := writeMap(t, `
registers:
  bogus:
    address: 0x0000
    bank: coil
`)
	if _, err := device.LoadMapFile(path); err == nil {
		t.Fatal("want error for unknown bank")
	}
}

func TestMergeOverridesWin(t *testing.T) {
	base := map[string]register.RegisterSpec{
		"voltage": {Address: 0x0000, Count: 2},
		"current": {Address: 0x0006, Count: 2},
	}
	overrides := map[string]register.RegisterSpec{
		"voltage": {Address: 0x1000, Count: 2},
		"extra":   {Address: 0x2000, Count: 1},
	}
	merged := device.Merge(base, overrides)
	if len(merged) != 3 {
		t.Fatalf("got %d specs, want 3", len(merged))
	}
	if merged["voltage"].Address != 0x1000 {
		t.Fatalf("override lost: %+v", merged["voltage"])
	}
	if merged["current"].Address != 0x0006 {
		t.Fatalf("base entry lost: %+v", merged["current"])
	}
}
