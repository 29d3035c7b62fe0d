package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"

	"github.com/born-ml/opcoverage/internal/classify"
)

func renderGo(sets []classify.ClassSet, pkg string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid Go package name %q", pkg)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by opcoverage. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"slices\"\n")

	for _, set := range sets {
		name := set.Class.String()
		varName := strings.ToLower(name[:1]) + name[1:]

		fmt.Fprintf(&buf, "\nvar %s = []string{\n", varName)
		for _, op := range set.Ops {
			fmt.Fprintf(&buf, "\t%s,\n", strconv.Quote(op))
		}
		fmt.Fprintf(&buf, "}\n")

		fmt.Fprintf(&buf, "\n// %s returns the sorted operator names of this class.\n", name)
		fmt.Fprintf(&buf, "func %s() []string { return slices.Clone(%s) }\n", name, varName)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated Go source: %w", err)
	}
	return formatted, nil
}
