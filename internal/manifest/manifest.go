// Package manifest loads a YAML description of an extraction run: the record
// format, the input, and the name-list → output pairs.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"mfqe/internal/seqio"
)

// Destination pairs one name list with one output file.
type Destination struct {
	Names  string `yaml:"names"`
	Output string `yaml:"output"`
}

// Manifest mirrors the command-line options. Unset scalars leave the
// corresponding flag in charge.
type Manifest struct {
	Format         string        `yaml:"format"`
	Input          string        `yaml:"input"`
	Uncompressed   *bool         `yaml:"uncompressed"`
	Append         *bool         `yaml:"append"`
	SequencePrefix *string       `yaml:"sequence_prefix"`
	Destinations   []Destination `yaml:"destinations"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	m, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(b []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalStrict(b, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the fields that can be checked without touching files.
func (m *Manifest) Validate() error {
	if m.Format != "" {
		if _, err := seqio.ParseFormat(m.Format); err != nil {
			return err
		}
	}
	if len(m.Destinations) == 0 {
		return errors.New("no destinations")
	}
	for i, d := range m.Destinations {
		if d.Names == "" || d.Output == "" {
			return fmt.Errorf("destination %d: both names and output are required", i)
		}
	}
	return nil
}

// SeqFormat is the parsed format; ok is false when the manifest leaves it unset.
func (m *Manifest) SeqFormat() (f seqio.Format, ok bool) {
	if m.Format == "" {
		return 0, false
	}
	f, err := seqio.ParseFormat(m.Format)
	return f, err == nil
}

// Lists returns the name-list paths in destination order.
func (m *Manifest) Lists() []string {
	out := make([]string, len(m.Destinations))
	for i, d := range m.Destinations {
		out[i] = d.Names
	}
	return out
}

// Outputs returns the output paths in destination order.
func (m *Manifest) Outputs() []string {
	out := make([]string, len(m.Destinations))
	for i, d := range m.Destinations {
		out[i] = d.Output
	}
	return out
}
