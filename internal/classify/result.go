package classify

import (
	"sort"
)

// ClassSet is one class with its sorted members.
type ClassSet struct {
	Class Class
	Ops   []string
}

// Result holds the members of every capability class for one catalog snapshot.
// Accessors return fresh copies, so repeated calls observe the same sets.
type Result struct {
	sets map[Class][]string
}

// Members returns the sorted operator names of class.
func (r *Result) Members(class Class) []string {
	ops := r.sets[class]
	out := make([]string, len(ops))
	copy(out, ops)
	return out
}

// Classes returns every class with its members, in emission order.
func (r *Result) Classes() []ClassSet {
	out := make([]ClassSet, 0, len(classNames))
	for _, class := range Classes() {
		out = append(out, ClassSet{Class: class, Ops: r.Members(class)})
	}
	return out
}

// Contains reports whether op is a member of class.
func (r *Result) Contains(class Class, op string) bool {
	ops := r.sets[class]
	i := sort.SearchStrings(ops, op)
	return i < len(ops) && ops[i] == op
}

// ClassesOf returns the classes op belongs to, in emission order.
func (r *Result) ClassesOf(op string) []Class {
	var out []Class
	for _, class := range Classes() {
		if r.Contains(class, op) {
			out = append(out, class)
		}
	}
	return out
}

// ExportDynamicRangeSpec returns operators with dynamic-range kernel support.
func (r *Result) ExportDynamicRangeSpec() []string { return r.Members(DynamicRange) }

// ExportDynamicRangeWeightOnlySpec returns dynamic-range operators that fall back to weight-only quantization.
func (r *Result) ExportDynamicRangeWeightOnlySpec() []string {
	return r.Members(DynamicRangeWeightOnly)
}

// ExportSparsitySpec returns operators with sparse kernels.
func (r *Result) ExportSparsitySpec() []string { return r.Members(Sparsity) }

// ExportStaticInt8PerAxisSpec returns operators supporting per-axis int8 static quantization.
func (r *Result) ExportStaticInt8PerAxisSpec() []string { return r.Members(StaticInt8PerAxis) }

// ExportStaticInt8PerTensorSpec returns operators supporting per-tensor int8 static quantization.
func (r *Result) ExportStaticInt8PerTensorSpec() []string { return r.Members(StaticInt8PerTensor) }

// ExportStaticUInt8PerAxisSpec returns operators supporting per-axis uint8 static quantization.
func (r *Result) ExportStaticUInt8PerAxisSpec() []string { return r.Members(StaticUInt8PerAxis) }

// ExportStaticUInt8PerTensorSpec returns operators supporting per-tensor uint8 static quantization.
func (r *Result) ExportStaticUInt8PerTensorSpec() []string {
	return r.Members(StaticUInt8PerTensor)
}
