package decl

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a declaration file. Files ending in .hcl are
// read as HCL, everything else as YAML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return ParseHCL(filepath.Base(path), data)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&f)
	Normalize(&f)

	return &f, nil
}

// ParseHCL parses HCL data into a File. The filename is only used in error
// messages and must end in .hcl.
func ParseHCL(filename string, data []byte) (*File, error) {
	var f File

	err := hclsimple.Decode(filename, data, nil, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration HCL: %w", err)
	}

	applyDefaults(&f)
	Normalize(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}
}

// Normalize expands the kinds shorthand into Rules. Shorthand entries go
// first, sorted by type, so output is deterministic.
func Normalize(f *File) {
	if len(f.Kinds) == 0 {
		return
	}

	types := make([]string, 0, len(f.Kinds))
	for typ := range f.Kinds {
		types = append(types, typ)
	}

	sort.Strings(types)

	expanded := make([]Rule, 0, len(types))
	for _, typ := range types {
		expanded = append(expanded, Rule{Type: typ, Wire: f.Kinds[typ]})
	}

	f.Rules = append(expanded, f.Rules...)
	f.Kinds = nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path as YAML.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal declarations: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}
