// Package cli wires the pi-guard binary's cobra command tree (SPEC_FULL.md
// §6): serve, status, stop, restart, level get/set, eval, and hook.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pi-guard",
	Short: "Autonomy-level permission gate for coding agents",
	Long: `pi-guard classifies shell commands and file writes against a
configurable autonomy level, and prompts for anything it cannot
auto-allow or auto-block.`,
}

// Execute is the CLI's entry point, called from cmd/pi-guard/main.go.
func Execute() error {
	return rootCmd.Execute()
}
