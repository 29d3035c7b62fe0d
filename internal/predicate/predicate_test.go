package predicate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/opcoverage/internal/catalog"
)

func strPtr(s string) *string { return &s }

func constrained(name, runtime string) catalog.Argument {
	return catalog.Argument{
		Name:       name,
		Constraint: &catalog.TypeConstraint{Name: "TFL_TensorOf", RuntimeTypes: strPtr(runtime)},
	}
}

func TestFlattenDeclaration(t *testing.T) {
	assert.Equal(t, "a b  c ", FlattenDeclaration("a\nb\n\nc\n"))
	assert.Equal(t, "", FlattenDeclaration(""))
}

func TestTraitPresence(t *testing.T) {
	op := &catalog.OperatorDef{Name: "Op", Traits: []string{"SparseOpInterface::Trait", "Pure"}}

	assert.True(t, TraitPresence(op, "SparseOpInterface::Trait"))
	assert.False(t, TraitPresence(op, "sparseopinterface::trait"))
	assert.False(t, TraitPresence(op, "SparseOpInterface"))
	assert.False(t, TraitPresence(&catalog.OperatorDef{Name: "Bare"}, "Pure"))
}

func TestDeclarationContains(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want bool
	}{
		{"single line", "bool GetDynamicRangeQuantKernelSupport() { return true; }", true},
		{"embedded", "int x();\nbool GetDynamicRangeQuantKernelSupport() { return true; }\nint y();", true},
		{"split by newline", "bool GetDynamicRangeQuantKernelSupport() {\nreturn true; }", true},
		{"returns false", "bool GetDynamicRangeQuantKernelSupport() { return false; }", false},
		{"extra whitespace", "bool GetDynamicRangeQuantKernelSupport() {  return true; }", false},
		{"indented continuation", "bool GetDynamicRangeQuantKernelSupport() {\n  return true; }", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &catalog.OperatorDef{Name: "Op", ExtraDeclaration: tt.decl}
			assert.Equal(t, tt.want, DeclarationContains(op, DynamicRangeKernelMarker))
		})
	}
}

func TestHasPerChannelDim(t *testing.T) {
	tests := []struct {
		name string
		decl string
		want bool
	}{
		{"zero", "int GetQuantizationDimIndex() { return 0; }", true},
		{"multi digit", "int GetQuantizationDimIndex() { return 13; }", true},
		{"surrounded", "// Affine:\nint GetChannelDimIndex() { return 0; }\nint GetQuantizationDimIndex() { return 3; }\n", true},
		{"no digits", "int GetQuantizationDimIndex() { return ; }", true},
		{"negative", "int GetQuantizationDimIndex() { return -1; }", false},
		{"expression", "int GetQuantizationDimIndex() { return dim(); }", false},
		{"multiline body", "int GetQuantizationDimIndex() {\n  return 3;\n}", false},
		{"absent", "int GetChannelDimIndex() { return 0; }", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &catalog.OperatorDef{Name: "Op", ExtraDeclaration: tt.decl}
			assert.Equal(t, tt.want, HasPerChannelDim(op))
		})
	}
}

func TestDeclarationMatchesPatternAnchoring(t *testing.T) {
	op := &catalog.OperatorDef{Name: "Op", ExtraDeclaration: "prefix marker suffix"}

	assert.False(t, DeclarationMatchesPattern(op, regexp.MustCompile(`^marker$`)))
	assert.True(t, DeclarationMatchesPattern(op, regexp.MustCompile(`^prefix .* suffix$`)))
}

func TestLocateInputArgument(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"named input first", []string{"input", "filter"}, 0},
		{"named input later", []string{"filter", "bias", "input"}, 2},
		{"no input falls back to zero", []string{"a", "b"}, 0},
		{"case sensitive", []string{"x", "Input"}, 0},
		{"last of duplicates", []string{"input", "w", "input"}, 2},
		{"no arguments", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &catalog.OperatorDef{Name: "Op"}
			for _, n := range tt.args {
				op.Arguments = append(op.Arguments, catalog.Argument{Name: n})
			}
			assert.Equal(t, tt.want, LocateInputArgument(op))
		})
	}
}

func TestRequiredTypesSupported(t *testing.T) {
	signed := []string{"32-bit float", "QI8 type"}
	unsigned := []string{"32-bit float", "QUI8 type"}

	op := &catalog.OperatorDef{
		Name: "Op",
		Arguments: []catalog.Argument{
			constrained("a", "tensor of 32-bit float or QI8 type values"),
			constrained("b", "tensor of 32-bit float or QUI8 type values"),
			{Name: "c", Constraint: &catalog.TypeConstraint{Name: "AnyTensor"}},
			{Name: "d"},
		},
	}

	ok, err := RequiredTypesSupported(op, 0, signed, false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = RequiredTypesSupported(op, 0, unsigned, false)
	require.NoError(t, err)
	assert.False(t, ok)

	// "QUI8 type" does not contain "QI8 type".
	ok, err = RequiredTypesSupported(op, 1, signed, true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = RequiredTypesSupported(op, 1, unsigned, true)
	require.NoError(t, err)
	assert.True(t, ok)

	// No runtime description: accepted per-tensor only.
	ok, err = RequiredTypesSupported(op, 2, signed, false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = RequiredTypesSupported(op, 2, signed, true)
	require.NoError(t, err)
	assert.False(t, ok)

	// Empty requirement list passes whenever a description exists.
	ok, err = RequiredTypesSupported(op, 0, nil, true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRequiredTypesSupportedMalformed(t *testing.T) {
	op := &catalog.OperatorDef{Name: "Op", Arguments: []catalog.Argument{{Name: "input"}}}

	_, err := RequiredTypesSupported(op, 0, []string{"32-bit float"}, false)
	assert.ErrorIs(t, err, catalog.ErrMalformedArgument)

	_, err = RequiredTypesSupported(op, 1, []string{"32-bit float"}, false)
	assert.ErrorIs(t, err, catalog.ErrMalformedArgument)

	_, err = RequiredTypesSupported(&catalog.OperatorDef{Name: "Empty"}, 0, nil, false)
	assert.ErrorIs(t, err, catalog.ErrMalformedArgument)
}
