// Package config decodes and validates a run's YAML configuration, grounded
// on the teacher's ReadNodeConfiguration: read everything first, then
// validate as a distinct step. A validation failure is an
// ErrInvalidConfiguration naming the offending field; a decode failure is
// returned as the YAML parser's error wrapped with %w.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the decoded shape of a run's YAML configuration file.
type Config struct {
	N         int    `yaml:"n"`
	Topology  string `yaml:"topology"`
	IDType    string `yaml:"id_type"`
	Root      string `yaml:"root"`
	Delay     string `yaml:"delay"`
	Display   string `yaml:"display"`
	Logging   string `yaml:"logging"`
	MaxDepth  int    `yaml:"max_depth"`
	Algorithm string `yaml:"algorithm"`
	Seed      int64  `yaml:"seed"`
}

// ErrInvalidConfiguration reports a config value Validate rejected.
type ErrInvalidConfiguration struct {
	Field  string
	Reason string
}

func (e *ErrInvalidConfiguration) Error() string {
	return fmt.Sprintf("invalid configuration: field %q: %s", e.Field, e.Reason)
}

var validTopologies = map[string]bool{"Line": true, "Clique": true, "Random": true, "Tree": true, "Star": true}
var validIDTypes = map[string]bool{"Sequential": true, "Random": true}
var validRoots = map[string]bool{"NoRoot": true, "Random": true, "MinID": true}
var validDelays = map[string]bool{"Constant": true, "Random": true}
var validDisplays = map[string]bool{"Graph": true, "Text": true}
var validLoggingLevels = map[string]bool{"Short": true, "Medium": true, "Long": true}

// applyDefaults fills in zero-valued fields, matching the per-field defaults
// this module documents for an omitted key: N=10, Topology=Line,
// ID Type=Sequential, Display=Text, Root=Random, Delay=Random, Logging=Short.
// N uses 0 as its "omitted" sentinel since N must be positive anyway.
func (c *Config) applyDefaults() {
	if c.N == 0 {
		c.N = 10
	}
	if c.Topology == "" {
		c.Topology = "Line"
	}
	if c.IDType == "" {
		c.IDType = "Sequential"
	}
	if c.Root == "" {
		c.Root = "Random"
	}
	if c.Delay == "" {
		c.Delay = "Random"
	}
	if c.Display == "" {
		c.Display = "Text"
	}
	if c.Logging == "" {
		c.Logging = "Short"
	}
}

// Validate checks that every field holds a value this module understands,
// returning the first violation it finds.
func (c *Config) Validate() error {
	if c.N < 1 {
		return &ErrInvalidConfiguration{Field: "n", Reason: "must be at least 1"}
	}
	if !validTopologies[c.Topology] {
		return &ErrInvalidConfiguration{Field: "topology", Reason: "must be one of Line, Clique, Random, Tree, Star"}
	}
	if !validIDTypes[c.IDType] {
		return &ErrInvalidConfiguration{Field: "id_type", Reason: "must be one of Sequential, Random"}
	}
	if !validRoots[c.Root] {
		return &ErrInvalidConfiguration{Field: "root", Reason: "must be one of NoRoot, Random, MinID"}
	}
	if !validDelays[c.Delay] {
		return &ErrInvalidConfiguration{Field: "delay", Reason: "must be one of Constant, Random"}
	}
	if !validDisplays[c.Display] {
		return &ErrInvalidConfiguration{Field: "display", Reason: "must be one of Graph, Text"}
	}
	if !validLoggingLevels[c.Logging] {
		return &ErrInvalidConfiguration{Field: "logging", Reason: "must be one of Short, Medium, Long"}
	}
	if c.Algorithm == "" {
		return &ErrInvalidConfiguration{Field: "algorithm", Reason: "must name a registered algorithm"}
	}
	if c.MaxDepth < 0 {
		return &ErrInvalidConfiguration{Field: "max_depth", Reason: "must not be negative"}
	}
	if c.Root == "NoRoot" && (c.Topology == "Tree" || c.Topology == "Star") {
		return &ErrInvalidConfiguration{Field: "root", Reason: "Tree and Star topologies require a root (Random or MinID)"}
	}
	return nil
}

// Load decodes a YAML configuration from r, applies defaults for omitted
// optional fields, validates the result, and returns it.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
