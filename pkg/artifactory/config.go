package artifactory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a Config from a YAML file. Fields absent from the file
// keep the DefaultConfig values, so TLS verification stays on unless the
// file disables it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := DefaultConfig()

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	return config, nil
}
