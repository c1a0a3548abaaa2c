package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/venman-dev/venman/internal/config"
	"github.com/venman-dev/venman/internal/logger"

	// Register environment backends
	_ "github.com/venman-dev/venman/internal/pkgmgr/uv"
	_ "github.com/venman-dev/venman/internal/pkgmgr/venv"
)

// Version is set via ldflags at build time
var Version = "dev"

var (
	logLevel  string
	logFormat string

	// cfg is loaded once per invocation, before any command runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "venman",
	Short: "venman - manage named Python virtual environments",
	Long: `venman creates, lists, activates and deletes named Python virtual
environments kept under ~/venman/venvs, with a description and package list
for each one recorded in ~/venman/venvs.toml.

Run without a command to use the interactive menu.`,
	Example: `  # Interactive menu
  venman

  # Create an environment with packages
  venman create data -d "notebooks" numpy pandas

  # Enter it, then list everything
  venman enter data
  venman ls --size`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "env", Title: "Environment Commands:"},
		&cobra.Group{ID: "maintenance", Title: "Maintenance Commands:"},
	)

	createCmd.GroupID = "env"
	listCmd.GroupID = "env"
	activateCmd.GroupID = "env"
	deleteCmd.GroupID = "env"

	repairCmd.GroupID = "maintenance"

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads config.yaml and VENMAN_* variables, applies flag
// overrides, and initializes logging.
func loadSettings(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if logFormat != "" {
		c.Log.Format = logFormat
	}
	logger.Init(c.Log.Format, c.Log.Level, cmd.ErrOrStderr())
	cfg = c
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
