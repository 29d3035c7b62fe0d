// Package typevocab maps short type codes used in operator definitions to the
// human-readable descriptions that appear in generated type-constraint text.
//
// The descriptions are what the classifier searches for, so they must match the
// spelling emitted by the operator definition source exactly.
package typevocab

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTypeCode is returned when a type code is absent from the vocabulary.
var ErrUnknownTypeCode = errors.New("unknown type code")

// Type codes referenced by the classifier.
const (
	F32       = "F32"
	I32       = "I32"
	I64       = "I64"
	QI16      = "QI16"
	I8        = "I8"
	UI8       = "UI8"
	QI8       = "QI8"
	QUI8      = "QUI8"
	TFLQuint8 = "TFL_Quint8"
)

// descriptions is never mutated after initialization.
var descriptions = map[string]string{
	F32:       "32-bit float",
	I32:       "32-bit signless integer",
	I64:       "64-bit signless integer",
	QI16:      "QI16 type",
	I8:        "8-bit signless integer",
	UI8:       "8-bit unsigned integer",
	QI8:       "QI8 type",
	QUI8:      "QUI8 type",
	TFLQuint8: "TFLite quint8 type",
}

// Lookup returns the canonical description for a type code.
func Lookup(code string) (string, error) {
	desc, ok := descriptions[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTypeCode, code)
	}
	return desc, nil
}

// MustLookup is like Lookup but panics on unknown codes.
// A missing code is a vocabulary omission, not a runtime condition.
func MustLookup(code string) string {
	desc, err := Lookup(code)
	if err != nil {
		panic(err)
	}
	return desc
}

// Codes returns all known type codes in ascending order.
func Codes() []string {
	codes := make([]string, 0, len(descriptions))
	for code := range descriptions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
