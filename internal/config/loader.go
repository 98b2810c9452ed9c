package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadMaps reads and validates the map catalog.
func LoadMaps(path string) (*Catalog, error) {
	var c Catalog
	if err := loadYAML(path, &c); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
