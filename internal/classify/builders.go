package classify

import (
	"fmt"

	"github.com/born-ml/opcoverage/internal/catalog"
	"github.com/born-ml/opcoverage/internal/predicate"
	"github.com/born-ml/opcoverage/internal/typevocab"
)

// Memberships maps each produced class to its members in traversal order.
type Memberships map[Class][]string

// buildDynamicRange splits dynamic-range operators by kernel support.
// Operators without the marker fall back to weight-only quantization; the two
// classes are decided by a single test so they never overlap.
func buildDynamicRange(traits TraitNames, defs []catalog.OperatorDef) (Memberships, error) {
	kernel := make([]string, 0)
	weightOnly := make([]string, 0)

	for i := range defs {
		op := &defs[i]
		if !predicate.TraitPresence(op, traits.DynamicRange) {
			continue
		}
		if predicate.DeclarationContains(op, predicate.DynamicRangeKernelMarker) {
			kernel = append(kernel, op.Name)
		} else {
			weightOnly = append(weightOnly, op.Name)
		}
	}

	return Memberships{
		DynamicRange:           kernel,
		DynamicRangeWeightOnly: weightOnly,
	}, nil
}

func buildSparsity(traits TraitNames, defs []catalog.OperatorDef) (Memberships, error) {
	ops := make([]string, 0)
	for i := range defs {
		if predicate.TraitPresence(&defs[i], traits.Sparse) {
			ops = append(ops, defs[i].Name)
		}
	}
	return Memberships{Sparsity: ops}, nil
}

// requiredTypes returns the descriptions an input must accept for static quantization.
func requiredTypes(signed bool) []string {
	quant := typevocab.QUI8
	if signed {
		quant = typevocab.QI8
	}
	return []string{typevocab.MustLookup(typevocab.F32), typevocab.MustLookup(quant)}
}

// staticQuantBuilder returns the builder for one static quantization variant.
func staticQuantBuilder(v staticVariant) BuildFunc {
	return func(traits TraitNames, defs []catalog.OperatorDef) (Memberships, error) {
		required := requiredTypes(v.signed)

		ops := make([]string, 0)
		for i := range defs {
			op := &defs[i]
			if !predicate.TraitPresence(op, traits.QuantizableResult) {
				continue
			}

			input := predicate.LocateInputArgument(op)
			ok, err := predicate.RequiredTypesSupported(op, input, required, v.perAxis)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", v.class, err)
			}
			if !ok {
				continue
			}
			if v.perAxis && !predicate.HasPerChannelDim(op) {
				continue
			}
			ops = append(ops, op.Name)
		}

		return Memberships{v.class: ops}, nil
	}
}
