// Package cmd implements the protoir CLI: a thin, separately-packaged
// consumer of the core library (spec §1's framing of external
// collaborators), built with Cobra the way the invowk-invowk pack's CLI
// tooling is.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/protoir/protoir/cmd/protoir/cmdconfig"
)

var (
	logLevel   string
	strictFlag bool
	logger     *log.Logger

	// strictContextAccess is the resolved strict-mode setting (--strict
	// flag, falling back to ~/.protoir.toml's strict_mode) that every
	// subcommand threads into protoir.Load via WithStrictContextAccess.
	strictContextAccess bool
)

var rootCmd = &cobra.Command{
	Use:   "protoir",
	Short: "Load, validate, and inspect protocol IR documents",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		fileCfg, err := cmdconfig.Load()
		if err != nil {
			return err
		}
		level := logLevel
		if level == "" {
			level = fileCfg.LogLevel
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
		if parsed, err := log.ParseLevel(level); err == nil {
			logger.SetLevel(parsed)
		}

		strictContextAccess = fileCfg.StrictMode
		if c.Flags().Changed("strict") {
			strictContextAccess = strictFlag
		}
		return nil
	},
}

// Execute runs the protoir CLI, returning an error if the invoked
// command failed.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to the config file's value, then info")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "strict context access; defaults to the config file's strict_mode")
	rootCmd.AddCommand(validateCmd, describeCmd, diffCmd)
}
