// Package cmd — configuration.
// Settings come from flags, DOCSCRAPER_* environment variables and an
// optional docscraper.yaml, in that order of precedence.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/docscraper/core/cleanup"
	"github.com/gaurav-prasanna/docscraper/core/fetch"
	"github.com/gaurav-prasanna/docscraper/core/output"
)

const (
	keyOutputDir = "output_dir"
	keyUserAgent = "user_agent"
	keyTimeout   = "timeout"
	keyVerifySSL = "verify_ssl"
	keyRetries   = "retries"
	keyCommands  = "commands"
	keyVerbose   = "verbose"
)

// configErr holds a failure to read an explicitly requested config file.
var configErr error

// Config is the resolved runtime configuration.
type Config struct {
	OutputDir string
	UserAgent string
	Timeout   time.Duration
	VerifySSL bool
	Retries   int
	Commands  []string
	Verbose   bool
}

// Vocabulary returns the command vocabulary for the cleanup stage.
func (c Config) Vocabulary() cleanup.Vocabulary {
	return cleanup.NewVocabulary(c.Commands)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyOutputDir, output.DefaultDir)
	v.SetDefault(keyUserAgent, fetch.DefaultUserAgent)
	v.SetDefault(keyTimeout, fetch.DefaultTimeout)
	v.SetDefault(keyVerifySSL, true)
	v.SetDefault(keyRetries, fetch.DefaultRetries)
	v.SetDefault(keyCommands, []string(cleanup.DefaultVocabulary()))
	v.SetDefault(keyVerbose, false)
}

// loadConfig resolves Config from v.
func loadConfig(v *viper.Viper) Config {
	return Config{
		OutputDir: v.GetString(keyOutputDir),
		UserAgent: v.GetString(keyUserAgent),
		Timeout:   v.GetDuration(keyTimeout),
		VerifySSL: v.GetBool(keyVerifySSL),
		Retries:   v.GetInt(keyRetries),
		Commands:  v.GetStringSlice(keyCommands),
		Verbose:   v.GetBool(keyVerbose),
	}
}

func initConfig() {
	configErr = readConfig(viper.GetViper(), configFlag())
}

func configFlag() string {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	return cfgFile
}

// readConfig sets defaults, wires the environment and reads the config
// file. A missing file is only an error when cfgFile names it explicitly.
func readConfig(v *viper.Viper, cfgFile string) error {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("docscraper")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "docscraper"))
		}
	}

	v.SetEnvPrefix("DOCSCRAPER")
	v.AutomaticEnv()

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	case errors.As(err, &notFound) && cfgFile == "":
	default:
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
