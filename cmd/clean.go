// Package cmd — clean command.
// Runs only the Markdown cleanup stage over a file or stdin.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/docscraper/core/cleanup"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Normalize raw converter Markdown",
	Long: `Clean reads Markdown produced by an HTML-to-Markdown converter (from a file,
or stdin when no file is given) and prints the normalized document.

Examples:
  docscraper clean raw.md > clean.md
  pandoc -t gfm page.html | docscraper clean`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringSlice("commands", nil, "Command vocabulary (overrides config)")
	_ = viper.BindPFlag(keyCommands, cleanCmd.Flags().Lookup("commands"))
}

func runClean(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	cfg := loadConfig(viper.GetViper())
	res := cleanup.New(cfg.Vocabulary()).Process(string(raw))
	logger.Debug("cleaned markdown", "tables", res.Stats.Tables, "commands", res.Stats.Commands)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Markdown)
	return err
}
