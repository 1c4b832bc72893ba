package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vrslev/pi-guard/internal/gateservice"
)

var (
	evalTool  string
	evalInput string
	evalCwd   string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate one tool call against the gate daemon (auto-starts it if needed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if evalTool == "" || evalInput == "" {
			return fmt.Errorf("--tool and --input are required")
		}
		var probe json.RawMessage
		if err := json.Unmarshal([]byte(evalInput), &probe); err != nil {
			return fmt.Errorf("--input must be valid JSON: %w", err)
		}

		cwd := evalCwd
		if cwd == "" {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cwd = wd
		}

		resp, err := gateservice.Query(evalTool, evalInput, cwd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", resp.Decision, resp.Reason)
		if resp.Decision != "ALLOW" {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&evalTool, "tool", "", "tool name, e.g. Bash")
	evalCmd.Flags().StringVar(&evalInput, "input", "", "the tool's tool_input, as a JSON string")
	evalCmd.Flags().StringVar(&evalCwd, "cwd", "", "working directory (default: current directory)")
	rootCmd.AddCommand(evalCmd)
}
