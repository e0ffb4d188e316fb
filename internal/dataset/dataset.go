// Package dataset loads the option datasets the demo host searches over.
// A dataset file is YAML: a name plus an ordered list of label/value entries.
package dataset

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/selx/pkg/selx"
)

//go:embed cities.yaml
var citiesYAML []byte

// Entry is one dataset row. Value may be any YAML value (scalar, list, map);
// it crosses into the form serialized as JSON when chosen.
type Entry struct {
	Label string `yaml:"label"`
	Value any    `yaml:"value"`
}

// Dataset is a named, ordered collection of candidate options.
type Dataset struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Load reads a dataset from a YAML file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	return parse(data, path)
}

// Builtin returns the embedded demo dataset (European capitals with
// coordinates).
func Builtin() *Dataset {
	d, err := parse(citiesYAML, "embedded cities.yaml")
	if err != nil {
		// The embedded file is validated by tests; reaching this is a
		// build defect.
		panic(err)
	}
	return d
}

func parse(data []byte, source string) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", source, err)
	}
	if len(d.Entries) == 0 {
		return nil, fmt.Errorf("dataset: %s has no entries", source)
	}
	for i, e := range d.Entries {
		if e.Label == "" {
			return nil, fmt.Errorf("dataset: %s entry %d has no label", source, i)
		}
	}
	return &d, nil
}

// Options converts the dataset to the canonical option list, preserving file
// order.
func (d *Dataset) Options() []selx.Option {
	out := make([]selx.Option, 0, len(d.Entries))
	for _, e := range d.Entries {
		out = append(out, selx.Option{Label: e.Label, Value: e.Value})
	}
	return out
}
