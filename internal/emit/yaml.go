package emit

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/opcoverage/internal/classify"
)

// yamlClass is the YAML shape of one class.
type yamlClass struct {
	Class string   `yaml:"class"`
	Ops   []string `yaml:"ops"`
}

func renderYAML(sets []classify.ClassSet) ([]byte, error) {
	doc := make([]yamlClass, 0, len(sets))
	for _, set := range sets {
		doc = append(doc, yamlClass{Class: set.Class.String(), Ops: set.Ops})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}
