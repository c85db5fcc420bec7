package layout

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default layout document.
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}

// Default returns the embedded default layout.
func Default() Layout {
	l, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded layout: %v", err))
	}
	return l
}

// Parse decodes and validates a layout document. Unknown fields are rejected
// so typos do not silently drop a setting.
func Parse(data []byte) (Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Encode renders l as YAML.
func Encode(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads a layout from disk. Missing files return the default layout.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Layout{}, err
	}
	l, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Save validates l and writes it to disk, creating parent directories as needed.
func Save(path string, l Layout) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := Encode(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
