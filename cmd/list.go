package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"service-menu/internal/logger"
)

// listCmd prints the catalog without entering the menu.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the services in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		logger.Debug("[DEBUG] Listing %d services\n", len(reg.Services()))
		for _, svc := range reg.Services() {
			fmt.Printf("%-16s  %-28s  %s\n", svc.Name, svc.Label, strings.Join(svc.Command, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
