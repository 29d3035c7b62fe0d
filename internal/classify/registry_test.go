package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/opcoverage/internal/catalog"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, []string{
		"dynamic_range",
		"sparsity",
		"static_int8_per_axis",
		"static_int8_per_tensor",
		"static_uint8_per_axis",
		"static_uint8_per_tensor",
	}, r.Builders())

	_, ok := r.Get("sparsity")
	assert.True(t, ok)
	_, ok = r.Get("UnknownBuilder")
	assert.False(t, ok)
}

func TestRegistryReplaceKeepsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("sparsity", func(_ TraitNames, _ []catalog.OperatorDef) (Memberships, error) {
		return Memberships{Sparsity: []string{"Forced"}}, nil
	})

	assert.Equal(t, "sparsity", r.Builders()[1])

	res, err := New(Config{Registry: r}).Classify(mustCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"Forced"}, res.ExportSparsitySpec())
}

func TestRegistryDuplicateClass(t *testing.T) {
	r := NewRegistry()
	r.Register("second_sparsity", buildSparsity)

	_, err := New(Config{Registry: r}).Classify(mustCatalog(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "produced by both sparsity and second_sparsity")
}

func TestRegistryMissingClass(t *testing.T) {
	r := &Registry{builders: make(map[string]BuildFunc)}
	r.Register("dynamic_range", buildDynamicRange)

	_, err := New(Config{Registry: r}).Classify(mustCatalog(t))
	assert.ErrorIs(t, err, ErrMissingClass)
	assert.Contains(t, err.Error(), "ExportSparsitySpec")
}

func TestRegistryBuilderError(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	r.Register("dynamic_range", func(_ TraitNames, _ []catalog.OperatorDef) (Memberships, error) {
		return nil, boom
	})

	res, err := New(Config{Registry: r}).Classify(mustCatalog(t))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "builder dynamic_range")
}

func TestClassNames(t *testing.T) {
	want := []string{
		"ExportDynamicRangeSpec",
		"ExportDynamicRangeWeightOnlySpec",
		"ExportSparsitySpec",
		"ExportStaticInt8PerAxisSpec",
		"ExportStaticInt8PerTensorSpec",
		"ExportStaticUInt8PerAxisSpec",
		"ExportStaticUInt8PerTensorSpec",
	}

	classes := Classes()
	require.Len(t, classes, len(want))
	for i, c := range classes {
		assert.Equal(t, want[i], c.String())

		parsed, err := ParseClass(want[i])
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	assert.Equal(t, "Class(42)", Class(42).String())
	_, err := ParseClass("ExportEverythingSpec")
	assert.Error(t, err)
}

func TestRequiredTypes(t *testing.T) {
	assert.Equal(t, []string{"32-bit float", "QI8 type"}, requiredTypes(true))
	assert.Equal(t, []string{"32-bit float", "QUI8 type"}, requiredTypes(false))
}

func TestRegistryRejectsUnsortedBuilder(t *testing.T) {
	tests := []struct {
		name string
		ops  []string
	}{
		{"descending", []string{"TFL_SubOp", "TFL_AddOp"}},
		{"repeated", []string{"TFL_AddOp", "TFL_AddOp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.Register("sparsity", func(_ TraitNames, _ []catalog.OperatorDef) (Memberships, error) {
				return Memberships{Sparsity: tt.ops}, nil
			})

			res, err := New(Config{Registry: r}).Classify(mustCatalog(t))
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrUnsortedClass)
			assert.Contains(t, err.Error(), "ExportSparsitySpec")
		})
	}
}

func TestRegistryRunUsesRegisteredBuilders(t *testing.T) {
	r := NewRegistry()
	build, ok := r.Get("dynamic_range")
	require.True(t, ok)

	direct, err := build(DefaultTraitNames(), nil)
	require.NoError(t, err)

	merged, err := r.Run(DefaultTraitNames(), nil)
	require.NoError(t, err)
	assert.Equal(t, direct[DynamicRange], merged[DynamicRange])
	assert.Len(t, merged, len(Classes()))
}
