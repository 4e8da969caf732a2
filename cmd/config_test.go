package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docscraper/core/cleanup"
	"github.com/gaurav-prasanna/docscraper/core/fetch"
	"github.com/gaurav-prasanna/docscraper/core/output"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docscraper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := loadConfig(v)

	assert.Equal(t, output.DefaultDir, cfg.OutputDir)
	assert.Equal(t, fetch.DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, fetch.DefaultTimeout, cfg.Timeout)
	assert.True(t, cfg.VerifySSL)
	assert.Equal(t, fetch.DefaultRetries, cfg.Retries)
	assert.Equal(t, cleanup.DefaultVocabulary(), cfg.Vocabulary())
}

func TestReadConfig_File(t *testing.T) {
	path := writeConfig(t, `
output_dir: out
timeout: 5s
verify_ssl: false
commands:
  - terraform
  - kubectl
`)
	v := viper.New()
	require.NoError(t, readConfig(v, path))

	cfg := loadConfig(v)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.VerifySSL)
	assert.Equal(t, cleanup.Vocabulary{"terraform", "kubectl"}, cfg.Vocabulary())
}

func TestReadConfig_Env(t *testing.T) {
	t.Setenv("DOCSCRAPER_RETRIES", "7")
	t.Setenv("DOCSCRAPER_COMMANDS", "terraform packer")

	v := viper.New()
	require.NoError(t, readConfig(v, writeConfig(t, "verbose: true\n")))

	cfg := loadConfig(v)
	assert.Equal(t, 7, cfg.Retries)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, cleanup.Vocabulary{"terraform", "packer"}, cfg.Vocabulary())
}

func TestReadConfig_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	err := readConfig(v, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
