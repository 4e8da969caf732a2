// Package cmd implements the CLI commands for docscraper using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger is configured from --verbose before any command runs.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "docscraper",
	Short: "docscraper — turn documentation pages into clean Markdown",
	Long: `docscraper fetches a documentation page (URL or saved HTML file), strips
navigation and chrome, converts it to Markdown and normalizes the result:
fenced shell commands, rebuilt tables, re-indented YAML and tidy headers.

Usage:
  docscraper convert <url-or-file> [flags]
  docscraper clean [file]
  docscraper split <pdf> [flags]
  docscraper images <pdf> [flags]`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if configErr != nil {
			return configErr
		}
		logger = newLogger(viper.GetBool(keyVerbose), cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docscraper.yaml or ~/.config/docscraper/docscraper.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	_ = viper.BindPFlag(keyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
