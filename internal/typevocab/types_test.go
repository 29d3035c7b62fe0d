package typevocab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{F32, "32-bit float"},
		{QI8, "QI8 type"},
		{QUI8, "QUI8 type"},
		{UI8, "8-bit unsigned integer"},
		{TFLQuint8, "TFLite quint8 type"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Lookup(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("F16")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTypeCode))
	assert.Contains(t, err.Error(), `"F16"`)

	// Codes are case-sensitive.
	_, err = Lookup("f32")
	assert.ErrorIs(t, err, ErrUnknownTypeCode)
}

func TestMustLookup(t *testing.T) {
	assert.Equal(t, "QUI8 type", MustLookup(QUI8))
	assert.PanicsWithError(t, `unknown type code: "BF16"`, func() { MustLookup("BF16") })
}

func TestCodesSorted(t *testing.T) {
	codes := Codes()
	require.Len(t, codes, 9)
	assert.IsIncreasing(t, codes)

	// Callers get their own copy.
	codes[0] = "mutated"
	assert.NotEqual(t, "mutated", Codes()[0])
}
