package cmd

import (
	"github.com/spf13/cobra"

	"service-menu/internal/logger"
	"service-menu/internal/services"
)

// doctorCmd checks the environment for the external tools the service
// commands will need once the echo placeholders are replaced. The check is
// informational and always exits zero.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for the external tools the services rely on",
	Run: func(cmd *cobra.Command, args []string) {
		missing := services.CheckTools(services.RequiredTools)
		if len(missing) == 0 {
			logger.Info("[INFO] All required tools are available\n")
			return
		}
		logger.Warn("[WARN] %d tool(s) missing; the placeholder commands will still run\n", len(missing))
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
