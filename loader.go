package stagekit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes a raw library configuration from YAML bytes. JSON
// input works too, since YAML is a superset. The result is untrusted:
// pass it to Validate or ProduceLayers, which perform all semantic
// checks.
func ParseConfig(data []byte) (LibraryConfig, error) {
	var cfg LibraryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LibraryConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a config file. This is the only place
// the package touches the filesystem; the validation and composition core
// never does.
func LoadConfigFile(path string) (LibraryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LibraryConfig{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}
