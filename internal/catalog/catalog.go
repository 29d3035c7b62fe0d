// Package catalog holds the read-only operator catalog consumed by the classifier.
//
// An operator definition carries the data produced by the upstream operator
// definition source: the operator name, its declared traits, the free-form
// extra class declaration text, and its argument list. Each argument may point
// at a type-constraint record describing the runtime types it accepts.
//
// A Catalog is an immutable snapshot. It is built once per run, never mutated,
// and discarded after classification.
package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// TypeConstraint is the type-constraint record attached to an argument.
type TypeConstraint struct {
	// Name is the constraint record name (e.g., "TFL_TensorOf<[F32, QI8]>").
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// RuntimeTypes is the "supported runtime types" description.
	// Nil means the constraint declares no runtime type predicate.
	RuntimeTypes *string `yaml:"runtime_types,omitempty" json:"runtime_types,omitempty"`
}

// Argument is one named entry of an operator's argument list.
type Argument struct {
	Name string `yaml:"name" json:"name"`

	// Constraint is nil when the argument is not backed by a constraint record.
	// Classifying such an input argument fails with ErrMalformedArgument; a
	// record whose RuntimeTypes is nil is valid and accepts any tensor.
	Constraint *TypeConstraint `yaml:"constraint,omitempty" json:"constraint,omitempty"`
}

// OperatorDef describes a single operator.
type OperatorDef struct {
	Name             string     `yaml:"name" json:"name"`
	BaseClasses      []string   `yaml:"base_classes,omitempty" json:"base_classes,omitempty"`
	Traits           []string   `yaml:"traits,omitempty" json:"traits,omitempty"`
	ExtraDeclaration string     `yaml:"extra_declaration,omitempty" json:"extra_declaration,omitempty"`
	Arguments        []Argument `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// HasBaseClass reports whether the operator derives from base.
func (d *OperatorDef) HasBaseClass(base string) bool {
	return slices.Contains(d.BaseClasses, base)
}

func (d *OperatorDef) clone() OperatorDef {
	out := OperatorDef{
		Name:             d.Name,
		BaseClasses:      slices.Clone(d.BaseClasses),
		Traits:           slices.Clone(d.Traits),
		ExtraDeclaration: d.ExtraDeclaration,
	}
	if d.Arguments != nil {
		out.Arguments = make([]Argument, len(d.Arguments))
		for i, arg := range d.Arguments {
			out.Arguments[i] = Argument{Name: arg.Name}
			if arg.Constraint != nil {
				c := *arg.Constraint
				if c.RuntimeTypes != nil {
					rt := *c.RuntimeTypes
					c.RuntimeTypes = &rt
				}
				out.Arguments[i].Constraint = &c
			}
		}
	}
	return out
}

// Catalog is an immutable collection of operator definitions keyed by name.
type Catalog struct {
	defs  []OperatorDef
	index map[string]int
}

// New validates defs and returns a catalog holding a private copy of them.
// Operator names must be non-empty and unique.
func New(defs []OperatorDef) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]OperatorDef, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}

	for i := range defs {
		d := &defs[i]
		if d.Name == "" {
			return nil, &ValidationError{
				Type:    "empty_name",
				Details: fmt.Sprintf("entry %d has no name", i),
				Err:     ErrEmptyName,
			}
		}
		if _, dup := c.index[d.Name]; dup {
			return nil, &ValidationError{
				Type:     "duplicate_operator",
				Operator: d.Name,
				Details:  fmt.Sprintf("entry %d repeats an earlier name", i),
				Err:      ErrDuplicateOperator,
			}
		}
		c.index[d.Name] = len(c.defs)
		c.defs = append(c.defs, d.clone())
	}

	return c, nil
}

// Len returns the number of operators.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Defs returns a copy of the definitions in input order.
func (c *Catalog) Defs() []OperatorDef {
	out := make([]OperatorDef, len(c.defs))
	for i := range c.defs {
		out[i] = c.defs[i].clone()
	}
	return out
}

// Sorted returns a copy of the definitions ordered by name (byte-wise ascending).
func (c *Catalog) Sorted() []OperatorDef {
	out := c.Defs()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup returns the definition with the given name.
func (c *Catalog) Lookup(name string) (OperatorDef, bool) {
	i, ok := c.index[name]
	if !ok {
		return OperatorDef{}, false
	}
	return c.defs[i].clone(), true
}

// FilterByBaseClass returns the sub-catalog of operators deriving from base.
// An empty base returns the catalog itself.
func (c *Catalog) FilterByBaseClass(base string) *Catalog {
	if base == "" {
		return c
	}

	out := &Catalog{index: make(map[string]int)}
	for i := range c.defs {
		if !c.defs[i].HasBaseClass(base) {
			continue
		}
		out.index[c.defs[i].Name] = len(out.defs)
		out.defs = append(out.defs, c.defs[i])
	}
	return out
}
