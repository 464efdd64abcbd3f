package services

import (
	"fmt"
	"strings"

	"service-menu/internal/config"
	"service-menu/internal/logger"
	"service-menu/internal/menu"
	"service-menu/internal/runner"
)

// Registry binds the loaded catalog to a Runner and answers both menu and
// headless lookups. The Exit entry is appended here and is never read from
// the catalog.
type Registry struct {
	services []config.Service
	runner   runner.Runner
}

// NewRegistry builds a registry over the catalog in cfg, dispatching every
// service command through r.
func NewRegistry(cfg config.Config, r runner.Runner) *Registry {
	return &Registry{services: cfg.Services, runner: r}
}

// Services returns the catalog entries in display order. Exit is not a
// catalog entry and is not included.
func (reg *Registry) Services() []config.Service {
	return reg.services
}

// Names returns the service identifiers in display order.
func (reg *Registry) Names() []string {
	names := make([]string, len(reg.services))
	for i, svc := range reg.services {
		names[i] = svc.Name
	}
	return names
}

// Lookup resolves a service by name (case-insensitive) or by exact label.
func (reg *Registry) Lookup(key string) (config.Service, error) {
	for _, svc := range reg.services {
		if strings.EqualFold(svc.Name, key) || svc.Label == key {
			return svc, nil
		}
	}
	return config.Service{}, fmt.Errorf("unknown service %q (choose one of: %s)", key, strings.Join(reg.Names(), ", "))
}

// Start dispatches the named service's command through the runner and blocks
// until it finishes. A failing command is reported by the runner itself and
// not returned; only an unknown name is an error.
func (reg *Registry) Start(name string) error {
	svc, err := reg.Lookup(name)
	if err != nil {
		return err
	}
	logger.Info("[INFO] Running %s\n", svc.Label)
	logger.Debug("[DEBUG] Dispatching %s: %s\n", svc.Name, strings.Join(svc.Command, " "))
	reg.runner.Run(svc.Command)
	return nil
}

// MenuItems returns the catalog as menu rows, one per service in display
// order, with the Exit entry appended last.
func (reg *Registry) MenuItems() []menu.Item {
	items := make([]menu.Item, 0, len(reg.services)+1)
	for _, svc := range reg.services {
		svc := svc // pin per-iteration under the Go 1.21 language version
		items = append(items, menu.Item{
			Label:  svc.Label,
			Action: func() { reg.runner.Run(svc.Command) },
		})
	}
	items = append(items, menu.Item{Label: "Exit", Exit: true})
	return items
}
