// Package coverage exposes the operator-capability classifier.
//
// This package wraps the internal catalog, classify and emit implementations
// and exports a small public API for build tooling.
//
// Example usage:
//
//	import "github.com/born-ml/opcoverage/coverage"
//
//	cat, err := coverage.LoadCatalog("tfl_ops.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := coverage.Classify(cat)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.ExportStaticInt8PerAxisSpec())
//
//	// Render C++ getters for the quantizer.
//	if err := coverage.Write(os.Stdout, res, coverage.Options{Format: coverage.FormatCPP}); err != nil {
//	    log.Fatal(err)
//	}
package coverage

import (
	"io"

	"github.com/born-ml/opcoverage/internal/catalog"
	"github.com/born-ml/opcoverage/internal/classify"
	"github.com/born-ml/opcoverage/internal/emit"
	"github.com/born-ml/opcoverage/internal/typevocab"
)

// Catalog is an immutable snapshot of operator definitions.
type Catalog = catalog.Catalog

// OperatorDef describes a single operator.
type OperatorDef = catalog.OperatorDef

// Argument is one named entry of an operator's argument list.
type Argument = catalog.Argument

// TypeConstraint is the type-constraint record attached to an argument.
type TypeConstraint = catalog.TypeConstraint

// Class identifies one capability class.
type Class = classify.Class

// Capability classes, in emission order.
const (
	DynamicRange           = classify.DynamicRange
	DynamicRangeWeightOnly = classify.DynamicRangeWeightOnly
	Sparsity               = classify.Sparsity
	StaticInt8PerAxis      = classify.StaticInt8PerAxis
	StaticInt8PerTensor    = classify.StaticInt8PerTensor
	StaticUInt8PerAxis     = classify.StaticUInt8PerAxis
	StaticUInt8PerTensor   = classify.StaticUInt8PerTensor
)

// Result holds the members of every capability class.
type Result = classify.Result

// Config controls classification.
type Config = classify.Config

// TraitNames holds the trait identifiers the classifier tests for.
type TraitNames = classify.TraitNames

// Options controls rendering.
type Options = emit.Options

// Format selects the output language.
type Format = emit.Format

// Output formats.
const (
	FormatCPP  = emit.FormatCPP
	FormatGo   = emit.FormatGo
	FormatYAML = emit.FormatYAML
)

// Sentinel errors.
var (
	ErrUnknownTypeCode   = typevocab.ErrUnknownTypeCode
	ErrMalformedArgument = catalog.ErrMalformedArgument
	ErrDuplicateOperator = catalog.ErrDuplicateOperator
)

// NewCatalog validates defs and returns an immutable catalog.
func NewCatalog(defs []OperatorDef) (*Catalog, error) {
	return catalog.New(defs)
}

// LoadCatalog reads a YAML or JSON catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	return catalog.Load(path)
}

// Classify partitions cat using the default trait spellings.
func Classify(cat *Catalog) (*Result, error) {
	return classify.Classify(cat)
}

// ClassifyWithConfig partitions cat using cfg.
func ClassifyWithConfig(cat *Catalog, cfg Config) (*Result, error) {
	return classify.New(cfg).Classify(cat)
}

// Write renders res to w.
func Write(w io.Writer, res *Result, opts Options) error {
	return emit.Write(w, res, opts)
}

// TypeDescription returns the canonical description of a type code.
func TypeDescription(code string) (string, error) {
	return typevocab.Lookup(code)
}
