package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/vrslev/pi-guard/internal/autonomy"
	"github.com/vrslev/pi-guard/internal/decisionlog"
	"github.com/vrslev/pi-guard/internal/engine"
	"github.com/vrslev/pi-guard/internal/gateservice"
	"github.com/vrslev/pi-guard/internal/oracle"
	"github.com/vrslev/pi-guard/internal/schedule"
	"github.com/vrslev/pi-guard/internal/settings"
)

var (
	serveWindowCron    string
	serveWindowCeiling string
	serveMCP           bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the long-running gate daemon",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveWindowCron, "window-cron", "", "cron expression for the schedule window (SPEC_FULL.md §4.9)")
	serveCmd.Flags().StringVar(&serveWindowCeiling, "window-ceiling", "low", "autonomy ceiling outside the schedule window")
	serveCmd.Flags().BoolVar(&serveMCP, "mcp", false, "also serve the same engine as an MCP tool over stdio")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	var window schedule.Window
	if serveWindowCron != "" {
		ceiling, err := autonomy.ParseLevel(serveWindowCeiling)
		if err != nil {
			return err
		}
		window = schedule.Window{Cron: serveWindowCron, Ceiling: ceiling}
	}

	logger := decisionlog.New()
	defer logger.Close()

	ui := oracle.New()
	eng, err := engine.New(cwd, settings.GitScopeProbe{}, ui, engine.WithWindow(window), engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("initialize engine: %w", err)
	}

	watcher, err := gateservice.WatchSettings(eng)
	if err == nil {
		defer watcher.Close()
	}

	if serveMCP {
		mcpServer := gateservice.NewMCPServer(eng)
		go func() {
			_ = server.ServeStdio(mcpServer)
		}()
	}

	d := gateservice.NewDaemon(eng, gateservice.DaemonConfig{IdleTimeout: 5 * time.Minute})
	return d.Run()
}
