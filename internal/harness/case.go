package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/numx/foundation/core/errors"
)

// Case is one named assertion against a numx operation
type Case struct {
	Name        string   `yaml:"name" toml:"name"`
	Op          string   `yaml:"op" toml:"op"`
	Input       float64  `yaml:"input" toml:"input"`
	Arg         float64  `yaml:"arg" toml:"arg"`
	Want        *float64 `yaml:"want" toml:"want"`
	WantCalls   *int     `yaml:"want_calls" toml:"want_calls"`
	WantErr     string   `yaml:"want_err" toml:"want_err"`
	Description string   `yaml:"description" toml:"description"`
}

// Suite is a named list of cases, usually loaded from a file
type Suite struct {
	Name  string `yaml:"name" toml:"name"`
	Cases []Case `yaml:"cases" toml:"cases"`
}

// Validate checks that every case names a known operation and has an expectation
func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return mdwerrors.InvalidInput(mdwerrors.ModuleHarness, "validate", s.Name, "at least one case")
	}
	for i, c := range s.Cases {
		if c.Name == "" {
			return mdwerrors.InvalidInput(mdwerrors.ModuleHarness, "validate", i, "case name")
		}
		if _, err := Lookup(c.Op); err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		if c.Want == nil && c.WantErr == "" && c.WantCalls == nil {
			return mdwerrors.InvalidInput(mdwerrors.ModuleHarness, "validate", c.Name, "want, want_calls or want_err")
		}
	}
	return nil
}

// LoadFile reads a suite from a .yaml, .yml or .toml file. A suite without a
// name is named after the file.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	suite, err := Decode(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := suite.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suite, nil
}

// Decode parses a suite in the format named by ext (".yaml", ".yml", ".toml")
func Decode(data []byte, ext string) (*Suite, error) {
	var suite Suite

	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&suite); err != nil {
			return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleHarness, err.Error(), "yaml suite")
		}
	case ".toml":
		md, err := toml.Decode(string(data), &suite)
		if err != nil {
			return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleHarness, err.Error(), "toml suite")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleHarness, undecoded[0].String(), "known toml keys")
		}
	default:
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleHarness, ext, ".yaml, .yml or .toml")
	}

	return &suite, nil
}
