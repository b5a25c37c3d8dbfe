package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	GruvboxMaterial Options `yaml:"gruvboxMaterial"`
}

// MarshalYAML renders opts as a config file Load can read back.
func MarshalYAML(opts Options) ([]byte, error) {
	data, err := yaml.Marshal(yamlFile{GruvboxMaterial: opts})
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}
	return data, nil
}

// WriteFile writes opts as YAML to path, creating parent directories.
func WriteFile(fs afero.Fs, path string, opts Options) error {
	data, err := MarshalYAML(opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
