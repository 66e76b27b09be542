package register

import (
	"fmt"
	"sort"
)

// Registry maps logical names to register specs for one device model.
// It is built once at startup and never mutated afterwards.
type Registry struct {
	specs map[string]RegisterSpec
	names []string
}

// NewRegistry validates every spec and builds the lookup table. A spec
// failing validation surfaces as ErrInvalidSpec tagged with its name.
func NewRegistry(specs map[string]RegisterSpec) (*Registry, error) {
	table := make(map[string]RegisterSpec, len(specs))
	names := make([]string, 0, len(specs))
	for name, spec := range specs {
		if name == "" {
			return nil, fmt.Errorf("%w: empty register name", ErrInvalidSpec)
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("register %q: %w", name, err)
		}
		table[name] = spec
		names = append(names, name)
	}
	sort.Strings(names)
	return &Registry{specs: table, names: names}, nil
}

// Lookup resolves a logical name to its spec.
func (r *Registry) Lookup(name string) (RegisterSpec, error) {
	spec, ok := r.specs[name]
	if !ok {
		return RegisterSpec{}, fmt.Errorf("%w: %q", ErrUnknownRegister, name)
	}
	return spec, nil
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered specs.
func (r *Registry) Len() int { return len(r.specs) }
