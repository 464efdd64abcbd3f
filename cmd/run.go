package cmd

import (
	"github.com/spf13/cobra"
)

// runCmd dispatches a single service without entering the menu. A failing
// service command is reported on stderr but does not fail the invocation;
// only an unknown service name does.
var runCmd = &cobra.Command{
	Use:   "run <service>",
	Short: "Run one service command directly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		return reg.Start(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
