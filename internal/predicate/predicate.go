// Package predicate implements the stateless per-operator tests used by the
// capability classifier.
//
// Declaration predicates operate on the extra class declaration text after
// flattening newlines to spaces. The text is semi-structured source, so the
// marker literal and the per-channel pattern below are matched verbatim.
package predicate

import (
	"regexp"
	"slices"
	"strings"

	"github.com/born-ml/opcoverage/internal/catalog"
)

// DynamicRangeKernelMarker signals runtime kernel support for dynamic-range quantization.
const DynamicRangeKernelMarker = "bool GetDynamicRangeQuantKernelSupport() { return true; }"

// PerChannelDimPattern recognizes a quantization-dimension accessor returning a
// literal non-negative integer. A return value of -1 (per-channel unsupported)
// does not match.
const PerChannelDimPattern = `(.*)(int GetQuantizationDimIndex\(\) \{ return (\d*); \})(.*)`

// InputArgumentName is the conventional name of an operator's activation input.
const InputArgumentName = "input"

// perChannelDim must match the whole flattened text.
var perChannelDim = regexp.MustCompile(`^(?:` + PerChannelDimPattern + `)$`)

// FlattenDeclaration replaces every newline with a single space.
func FlattenDeclaration(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}

// TraitPresence reports whether op declares trait. Matching is exact and case-sensitive.
func TraitPresence(op *catalog.OperatorDef, trait string) bool {
	return slices.Contains(op.Traits, trait)
}

// DeclarationContains reports whether the flattened declaration contains literal.
func DeclarationContains(op *catalog.OperatorDef, literal string) bool {
	return strings.Contains(FlattenDeclaration(op.ExtraDeclaration), literal)
}

// DeclarationMatchesPattern reports whether the flattened declaration matches re.
// Anchor re with ^ and $ to require a full match.
func DeclarationMatchesPattern(op *catalog.OperatorDef, re *regexp.Regexp) bool {
	return re.MatchString(FlattenDeclaration(op.ExtraDeclaration))
}

// HasPerChannelDim reports whether op declares a per-channel quantization dimension.
func HasPerChannelDim(op *catalog.OperatorDef) bool {
	return DeclarationMatchesPattern(op, perChannelDim)
}

// LocateInputArgument returns the index of the argument named "input".
// If several arguments carry that name the last one wins; if none does,
// index 0 is returned.
func LocateInputArgument(op *catalog.OperatorDef) int {
	idx := 0
	for i := range op.Arguments {
		if op.Arguments[i].Name == InputArgumentName {
			idx = i
		}
	}
	return idx
}

// RequiredTypesSupported checks the runtime type description of the argument at
// argIdx against requiredTypes using substring containment.
//
// An argument whose constraint declares no runtime types accepts any tensor,
// which only counts as support when perAxis is false. An argument with no
// constraint record at all, or an index outside the argument list, is fatal:
// the error wraps catalog.ErrMalformedArgument.
func RequiredTypesSupported(op *catalog.OperatorDef, argIdx int, requiredTypes []string, perAxis bool) (bool, error) {
	if argIdx < 0 || argIdx >= len(op.Arguments) {
		return false, catalog.MalformedArgument(op.Name,
			"argument index %d out of range (%d arguments)", argIdx, len(op.Arguments))
	}

	constraint := op.Arguments[argIdx].Constraint
	if constraint == nil {
		return false, catalog.MalformedArgument(op.Name,
			"argument %q has no type constraint record", op.Arguments[argIdx].Name)
	}

	if constraint.RuntimeTypes == nil {
		return !perAxis, nil
	}

	for _, typ := range requiredTypes {
		if !strings.Contains(*constraint.RuntimeTypes, typ) {
			return false, nil
		}
	}
	return true, nil
}
