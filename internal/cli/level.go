package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vrslev/pi-guard/internal/autonomy"
	"github.com/vrslev/pi-guard/internal/settings"
)

var levelScopeFlag string

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Get or set the autonomy level",
}

var levelGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current autonomy level",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := levelSettingsPath()
		if err != nil {
			return err
		}
		rec, _, err := settings.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rec.Level)
		if rec.Overridden {
			fmt.Fprintf(cmd.ErrOrStderr(), "(overridden by %s; persisted value is %s)\n", settings.EnvOverride, rec.Persisted)
		}
		return nil
	},
}

var levelSetCmd = &cobra.Command{
	Use:   "set <level>",
	Short: "Persist an explicit autonomy level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := autonomy.ParseLevel(args[0])
		if err != nil {
			return err
		}
		path, err := levelSettingsPath()
		if err != nil {
			return err
		}
		rec, _, err := settings.Load(path)
		if err != nil {
			return err
		}
		rec = rec.Set(lvl)
		if err := rec.Save(path); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "set autonomy level to %s\n", lvl)
		return nil
	},
}

func levelSettingsPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	switch levelScopeFlag {
	case "global":
		return settings.Global.Path("")
	case "project":
		if root, ok := (settings.GitScopeProbe{}).IsGitRepo(cwd); ok {
			return settings.Project.Path(root)
		}
		return settings.Project.Path(cwd)
	case "":
		_, path := settings.Resolve(cwd, settings.GitScopeProbe{})
		return path, nil
	default:
		return "", fmt.Errorf("unknown scope %q (want project or global)", levelScopeFlag)
	}
}

func init() {
	levelCmd.PersistentFlags().StringVar(&levelScopeFlag, "scope", "", "project or global (default: auto-detect)")
	levelCmd.AddCommand(levelGetCmd, levelSetCmd)
	rootCmd.AddCommand(levelCmd)
}
