package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	sim "github.com/pumpsim/pumpsim/sim"
)

// Scenario is one named parameter set in defaults.yaml.
type Scenario struct {
	Description string `yaml:"description"`
	sim.Config  `yaml:",inline"`
}

// Catalogue represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Catalogue struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// LoadCatalogue parses a scenario catalogue with strict field checking:
// unknown keys (typos) are rejected.
func LoadCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario catalogue: %w", err)
	}
	var cat Catalogue
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cat); err != nil {
		return nil, fmt.Errorf("parsing scenario catalogue %s: %w", path, err)
	}
	return &cat, nil
}

// Lookup returns the validated configuration of the named scenario.
func (c *Catalogue) Lookup(name string) (sim.Config, error) {
	sc, ok := c.Scenarios[name]
	if !ok {
		return sim.Config{}, fmt.Errorf("unknown scenario %q; available: %v", name, c.Names())
	}
	if err := sc.Config.Validate(); err != nil {
		return sim.Config{}, fmt.Errorf("scenario %q: %w", name, err)
	}
	return sc.Config, nil
}

// Names returns the scenario names in sorted order.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.Scenarios))
	for name := range c.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
