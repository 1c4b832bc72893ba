package cli

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/cobra"

	"github.com/vrslev/pi-guard/internal/gateservice"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the gate daemon's PID and socket health",
	RunE: func(cmd *cobra.Command, args []string) error {
		running, _, message := gateservice.Status()
		fmt.Fprintln(cmd.OutOrStdout(), message)
		if !running {
			os.Exit(1)
		}
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the gate daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), gateservice.Stop())
		return nil
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the gate daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, gateservice.Stop())
		time.Sleep(200 * time.Millisecond)

		exePath, err := os.Executable()
		if err != nil {
			return err
		}
		proc := exec.Command(exePath, "serve")
		proc.Stdout = nil
		proc.Stderr = nil
		proc.Stdin = nil
		if err := proc.Start(); err != nil {
			return fmt.Errorf("failed to start: %w", err)
		}

		for i := 0; i < 20; i++ {
			time.Sleep(100 * time.Millisecond)
			if running, _, _ := gateservice.Status(); running {
				fmt.Fprintln(out, "restarted")
				return nil
			}
		}
		fmt.Fprintln(out, "started but not yet accepting connections")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd, stopCmd, restartCmd)
}
