// Package report writes the YAML summary of a naming run.
package report

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/lakenames/pkg/lakenames"
)

// Report describes one run: what was read, what was written and the
// pipeline counters.
type Report struct {
	Started  time.Time     `yaml:"started"`
	Duration time.Duration `yaml:"duration"`

	Inputs Inputs `yaml:"inputs"`
	Output Output `yaml:"output"`

	Stats lakenames.Stats `yaml:"stats"`
}

// Inputs names the sources of a run.
type Inputs struct {
	Points   string `yaml:"points"`
	Polygons string `yaml:"polygons"`
}

// Output describes the written collection.
type Output struct {
	Path   string `yaml:"path"`
	Bytes  int    `yaml:"bytes"`
	Digest string `yaml:"digest,omitempty"`
}

// Marshal encodes the report as YAML.
func (r *Report) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return data, nil
}

// Parse decodes a report previously written by Marshal.
func Parse(data []byte) (*Report, error) {
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &r, nil
}
