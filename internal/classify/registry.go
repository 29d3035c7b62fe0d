package classify

import (
	"fmt"

	"github.com/born-ml/opcoverage/internal/catalog"
)

// BuildFunc scans name-sorted operators and returns the members of the classes it owns.
// Members must keep the traversal order of defs; Classify rejects unsorted or
// repeated names.
type BuildFunc func(traits TraitNames, defs []catalog.OperatorDef) (Memberships, error)

// Registry maps builder names to build functions and remembers registration order.
type Registry struct {
	builders map[string]BuildFunc
	order    []string
}

// NewRegistry creates a registry with the builders for every capability class.
func NewRegistry() *Registry {
	r := &Registry{
		builders: make(map[string]BuildFunc),
	}

	r.Register("dynamic_range", buildDynamicRange)
	r.Register("sparsity", buildSparsity)
	r.Register("static_int8_per_axis", staticQuantBuilder(staticVariants[0]))
	r.Register("static_int8_per_tensor", staticQuantBuilder(staticVariants[1]))
	r.Register("static_uint8_per_axis", staticQuantBuilder(staticVariants[2]))
	r.Register("static_uint8_per_tensor", staticQuantBuilder(staticVariants[3]))

	return r
}

// Register adds a builder. Re-registering a name replaces the builder in place.
func (r *Registry) Register(name string, b BuildFunc) {
	if _, ok := r.builders[name]; !ok {
		r.order = append(r.order, name)
	}
	r.builders[name] = b
}

// Get returns the builder registered under name.
func (r *Registry) Get(name string) (BuildFunc, bool) {
	b, ok := r.builders[name]
	return b, ok
}

// Builders returns builder names in registration order.
func (r *Registry) Builders() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Run invokes every builder against defs and merges their memberships.
// Two builders claiming the same class is an error.
func (r *Registry) Run(traits TraitNames, defs []catalog.OperatorDef) (Memberships, error) {
	merged := make(Memberships)
	owner := make(map[Class]string)

	for _, name := range r.order {
		build, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("builder %s not registered", name)
		}
		got, err := build(traits, defs)
		if err != nil {
			return nil, fmt.Errorf("builder %s: %w", name, err)
		}
		for class, ops := range got {
			if prev, dup := owner[class]; dup {
				return nil, fmt.Errorf("class %s produced by both %s and %s", class, prev, name)
			}
			owner[class] = name
			merged[class] = ops
		}
	}

	return merged, nil
}
