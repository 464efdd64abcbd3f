package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"service-menu/internal/logger"
)

// Load reads the service catalog from the given YAML file. A missing file is
// not an error: the built-in catalog is returned instead. A file that exists
// but cannot be read, parsed, or validated is an error.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("[DEBUG] No catalog file at %s, using built-in services\n", path)
			return Defaults(), nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	// The file replaces the whole catalog: services listed here are shown
	// in file order, exactly as the built-ins would be.
	var wrapper struct {
		Services []Service `yaml:"services"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(wrapper.Services) == 0 {
		return Config{}, fmt.Errorf("no services defined in %s", path)
	}
	for i, svc := range wrapper.Services {
		if svc.Name == "" || svc.Label == "" || len(svc.Command) == 0 {
			return Config{}, fmt.Errorf("service %d in %s is missing a name, label, or command", i, path)
		}
	}

	logger.Debug("[DEBUG] Loaded %d services from %s\n", len(wrapper.Services), path)
	return Config{Services: wrapper.Services}, nil
}
