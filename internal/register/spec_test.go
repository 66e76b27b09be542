package register_test

import (
	"errors"
	"testing"

	"github.com/tetragramaton/dcm230-go/internal/register"
)

func TestSpecValidate(t *testing.T) {
	valid := register.RegisterSpec{
		Address:  0x0000,
		Count:    2,
		Bank:     register.Input,
		Decimals: 1,
		Kind:     register.FixedPoint,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*register.RegisterSpec)
	}{
		{"zero count", func(s *register.RegisterSpec) { s.Count = 0 }},
		{"count too large", func(s *register.RegisterSpec) { s.Count = 5 }},
		{"min above max", func(s *register.RegisterSpec) {
			s.Range = true
			s.Min = 10
			s.Max = 5
		}},
		{"max not representable", func(s *register.RegisterSpec) {
			s.Count = 1
			s.Range = true
			s.Max = 0x10000
		}},
		{"writable input register", func(s *register.RegisterSpec) {
			s.Bank = register.Input
			s.Writable = true
		}},
		{"decimals on integer kind", func(s *register.RegisterSpec) {
			s.Kind = register.Integer
			s.Decimals = 2
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := valid
			tc.mutate(&spec)
			err := spec.Validate()
			if !errors.Is(err, register.ErrInvalidSpec) {
				t.Fatalf("want ErrInvalidSpec, got %v", err)
			}
		})
	}
}

func TestRawBoundsDefaultsToFullSpan(t *testing.T) {
	spec := register.RegisterSpec{Count: 2, Bank: register.Input}
	min, max := spec.RawBounds()
	if min != 0 || max != 0xFFFFFFFF {
		t.Fatalf("got [%d, %d], want [0, 4294967295]", min, max)
	}

	spec = register.RegisterSpec{Count: 1, Bank: register.Holding, Range: true, Min: 5, Max: 60}
	min, max = spec.RawBounds()
	if min != 5 || max != 60 {
		t.Fatalf("got [%d, %d], want [5, 60]", min, max)
	}
}

func TestMaxRaw(t *testing.T) {
	cases := []struct {
		count uint16
		want  uint64
	}{
		{1, 0xFFFF},
		{2, 0xFFFFFFFF},
		{3, 0xFFFFFFFFFFFF},
		{4, 0xFFFFFFFFFFFFFFFF},
	}
	for _, tc := range cases {
		if got := register.MaxRaw(tc.count); got != tc.want {
			t.Errorf("MaxRaw(%d) = %d, want %d", tc.count, got, tc.want)
		}
	}
}
