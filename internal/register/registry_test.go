package register_test

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/tetragramaton/dcm230-go/internal/register"
)

func testSpecs() map[string]register.RegisterSpec {
	return map[string]register.RegisterSpec{
		"voltage": {
			Address:  0x0000,
			Count:    2,
			Bank:     register.Input,
			Decimals: 1,
			Kind:     register.FixedPoint,
		},
		"backlit_time": {
			Address:  0x001E,
			Count:    1,
			Bank:     register.Holding,
			Range:    true,
			Max:      60,
			Writable: true,
		},
	}
}

func TestRegistryLookup(t *testing.T) {
	reg, err := register.NewRegistry(testSpecs())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	spec, err := reg.Lookup("voltage")
	if err != nil {
		t.Fatalf("Lookup(voltage): %v", err)
	}
	if spec.Address != 0x0000 || spec.Count != 2 {
		t.Fatalf("unexpected spec: %+v", spec)
	}

	_, err = reg.Lookup("no_such_register")
	if !errors.Is(err, register.ErrUnknownRegister) {
		t.Fatalf("want ErrUnknownRegister, got %v", err)
	}
}

func TestRegistryRejectsInvalidSpec(t *testing.T) {
	specs := testSpecs()
	specs["broken"] = register.RegisterSpec{Address: 0x0010, Count: 0}

	_, err := register.NewRegistry(specs)
	if !errors.Is(err, register.ErrInvalidSpec) {
		t.Fatalf("want ErrInvalidSpec, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Fatalf("error should name the register: %v", err)
	}
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	specs := map[string]register.RegisterSpec{
		"": {Address: 0, Count: 1},
	}
	if _, err := register.NewRegistry(specs); !errors.Is(err, register.ErrInvalidSpec) {
		t.Fatalf("want ErrInvalidSpec, got %v", err)
	}
}

func TestRegistryNames(t *testing.T) {
	reg, err := register.NewRegistry(testSpecs())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	names := reg.Names()
	if len(names) != 2 || reg.Len() != 2 {
		t.Fatalf("got %d names, want 2", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}

	// Mutating the returned slice must not affect the registry.
	names[0] = "mutated"
	if reg.Names()[0] == "mutated" {
		t.Fatal("Names() leaked internal state")
	}
}
