// internal/config/profile.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"msat/internal/cli"
)

// Profile is an optional YAML run profile. Every key is optional, and a
// profile value applies only where the command line left the matching
// flag untouched.
type Profile struct {
	Input       *string   `yaml:"input"`
	Ancestral   *int      `yaml:"ancestral"`
	Loci        *int      `yaml:"loci"`
	Thetas      []float64 `yaml:"thetas"`
	Individuals *bool     `yaml:"individuals"`
	Seed        *int64    `yaml:"seed"`
}

// Load reads and strictly decodes a profile. Unknown keys are rejected
// so a typoed key fails loudly instead of silently doing nothing.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

// Apply copies profile values onto opts for every flag the command line
// did not set explicitly. A positional input path always beats the
// profile's input.
func (p *Profile) Apply(o *cli.Options) {
	if p.Input != nil && !o.InputFromArgs() {
		o.Input = *p.Input
	}
	if p.Ancestral != nil && !o.Changed("ancestral") {
		o.Ancestral = *p.Ancestral
	}
	if p.Loci != nil && !o.Changed("loci") {
		o.Loci = *p.Loci
	}
	if len(p.Thetas) > 0 && !o.Changed("theta") {
		o.Thetas = append([]float64(nil), p.Thetas...)
	}
	if p.Individuals != nil && !o.Changed("individuals") {
		o.Individuals = *p.Individuals
	}
	if p.Seed != nil && !o.Changed("seed") {
		o.Seed = *p.Seed
	}
}
