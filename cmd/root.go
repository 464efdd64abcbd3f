package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"service-menu/internal/config"
	"service-menu/internal/logger"
	"service-menu/internal/menu"
	"service-menu/internal/runner"
	"service-menu/internal/services"
)

// debug indicates whether debug logging should be enabled. It can be
// toggled via the `--debug` flag or by setting DEBUG=1 in the environment.
var debug bool

// configPath points at the optional services catalog file. When the file
// does not exist the built-in catalog is used.
var configPath string

// rootCmd is the base command for the CLI tool `service-menu`.
// Run without a subcommand it opens the interactive menu.
var rootCmd = &cobra.Command{
	Use:   "service-menu",
	Short: "Interactive menu for development service shortcuts",

	// PersistentPreRun is a hook that runs before any subcommand: pull in
	// .env, resolve environment overrides, then set up logging.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if !debug && os.Getenv("DEBUG") == "1" {
			debug = true
		}
		logger.Init(debug)

		if v := os.Getenv("SERVICE_MENU_CONFIG"); v != "" && !cmd.Root().PersistentFlags().Changed("config") {
			configPath = v
		}
		logger.Debug("[DEBUG] Using catalog file %s\n", configPath)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		return menu.Run(reg.MenuItems())
	},
}

// newRunner builds the runner the commands dispatch through. Declared as a
// variable so tests can substitute a recording implementation.
var newRunner = func() runner.Runner { return runner.New() }

// loadRegistry loads the catalog and binds it to a runner.
func loadRegistry() (*services.Registry, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return services.NewRegistry(cfg, newRunner()), nil
}

// Execute registers the global flags and starts command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "services.yaml", "Path to the services catalog file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
