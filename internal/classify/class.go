package classify

import (
	"fmt"
)

// Class identifies one output capability class.
type Class int

// Capability classes, in emission order.
const (
	DynamicRange Class = iota
	DynamicRangeWeightOnly
	Sparsity
	StaticInt8PerAxis
	StaticInt8PerTensor
	StaticUInt8PerAxis
	StaticUInt8PerTensor
)

var classNames = [...]string{
	DynamicRange:           "ExportDynamicRangeSpec",
	DynamicRangeWeightOnly: "ExportDynamicRangeWeightOnlySpec",
	Sparsity:               "ExportSparsitySpec",
	StaticInt8PerAxis:      "ExportStaticInt8PerAxisSpec",
	StaticInt8PerTensor:    "ExportStaticInt8PerTensorSpec",
	StaticUInt8PerAxis:     "ExportStaticUInt8PerAxisSpec",
	StaticUInt8PerTensor:   "ExportStaticUInt8PerTensorSpec",
}

// String returns the accessor name of the class.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Classes returns every class in emission order.
func Classes() []Class {
	out := make([]Class, len(classNames))
	for i := range classNames {
		out[i] = Class(i)
	}
	return out
}

// ParseClass resolves an accessor name back to its class.
func ParseClass(name string) (Class, error) {
	for i, n := range classNames {
		if n == name {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("unknown class %q", name)
}

// staticVariant describes one signedness/granularity combination.
type staticVariant struct {
	class   Class
	signed  bool
	perAxis bool
}

var staticVariants = []staticVariant{
	{class: StaticInt8PerAxis, signed: true, perAxis: true},
	{class: StaticInt8PerTensor, signed: true, perAxis: false},
	{class: StaticUInt8PerAxis, signed: false, perAxis: true},
	{class: StaticUInt8PerTensor, signed: false, perAxis: false},
}
