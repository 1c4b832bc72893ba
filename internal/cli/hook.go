package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vrslev/pi-guard/internal/gateservice"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run as a PermissionRequest hook, reading one request from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gateservice.RunHook(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
