// Package emit renders a classification result as source text.
//
// Three formats are supported:
//   - cpp: std::set getters in the layout consumed by the TFLite quantizer
//   - go: a gofmt'ed Go file with one accessor per class
//   - yaml: an ordered list of classes and their operators
//
// Output is fully rendered in memory before anything is written, so a failure
// never leaves a truncated artifact behind.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/opcoverage/internal/classify"
)

// ErrUnknownFormat is returned for an unrecognized output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the output language.
type Format int

// Supported formats.
const (
	FormatCPP Format = iota
	FormatGo
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatCPP:
		return "cpp"
	case FormatGo:
		return "go"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "cpp", "c++", "cc":
		return FormatCPP, nil
	case "go":
		return FormatGo, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DefaultPackage is the package clause used for Go output when none is given.
const DefaultPackage = "opcoverage"

// Options controls rendering.
type Options struct {
	Format  Format
	Package string // Go package name (FormatGo only)
}

// Render returns the rendered result.
func Render(res *classify.Result, opts Options) ([]byte, error) {
	sets := res.Classes()

	switch opts.Format {
	case FormatCPP:
		return renderCPP(sets), nil
	case FormatGo:
		pkg := opts.Package
		if pkg == "" {
			pkg = DefaultPackage
		}
		return renderGo(sets, pkg)
	case FormatYAML:
		return renderYAML(sets)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(opts.Format))
	}
}

// Write renders res and writes it to w in one call.
func Write(w io.Writer, res *classify.Result, opts Options) error {
	out, err := Render(res, opts)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, bytes.NewReader(out)); err != nil {
		return fmt.Errorf("failed to write %s output: %w", opts.Format, err)
	}
	return nil
}
