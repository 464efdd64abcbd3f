package services

import (
	"os/exec"

	"service-menu/internal/logger"
)

// RequiredTools lists the external commands the service actions lean on once
// the echo placeholders are replaced with the real scripts: docker for the
// container entries, caddy for the TLS setup, ssh for remote provisioning.
var RequiredTools = []string{"docker", "caddy", "ssh"}

// CheckTools probes PATH for each named tool and logs what it finds.
// It returns the names that are missing.
func CheckTools(names []string) []string {
	var missing []string
	for _, name := range names {
		path, err := exec.LookPath(name)
		if err != nil {
			logger.Warn("[WARN] %s not found in PATH\n", name)
			missing = append(missing, name)
			continue
		}
		logger.Info("[INFO] %s found at %s\n", name, path)
	}
	return missing
}
