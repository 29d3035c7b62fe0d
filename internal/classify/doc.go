// Package classify partitions an operator catalog into quantization capability classes.
//
// The classes, in emission order:
//   - ExportDynamicRangeSpec: dynamic-range operators with runtime kernel support
//   - ExportDynamicRangeWeightOnlySpec: dynamic-range operators without it (weight-only fallback)
//   - ExportSparsitySpec: operators with sparse kernels
//   - ExportStaticInt8PerAxisSpec, ExportStaticInt8PerTensorSpec
//   - ExportStaticUInt8PerAxisSpec, ExportStaticUInt8PerTensorSpec
//
// The catalog is sorted by operator name once and every builder walks that
// ordering, so each class is emitted in ascending order without further sorting.
// The weight-only class is the complement of the kernel class within the
// dynamic-range operators, decided in the same pass.
//
// Example:
//
//	cat, err := catalog.Load("tfl_ops.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := classify.Classify(cat)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, set := range res.Classes() {
//	    fmt.Println(set.Class, set.Ops)
//	}
package classify
