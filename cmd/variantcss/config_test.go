package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".variantcss.yaml")
	configContent := `
verbose: true

breakpoints:
  phone: 480
  tablet: 900

variants:
  - name: group-open
    selector: ".group--open &"
  - name: aria-busy
    selector: '&[aria-busy="true"]'
    specificity: 70
    combinable: false

check:
  strict: true
  format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, 480, k.Int("breakpoints.phone"))
	assert.True(t, k.Bool("check.strict"))
	assert.Equal(t, "json", k.String("check.format"))
}

func TestConfigFileNotFound_NoError(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadConfigFromPath("/nonexistent/.variantcss.yaml"))

	// Registry still builds, with default breakpoints and no customs.
	registry, err := buildRegistry()
	require.NoError(t, err)
	width, ok := registry.Breakpoint("sm")
	require.True(t, ok)
	assert.Equal(t, 640, width)
	assert.Empty(t, registry.CustomNames())
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".variantcss.yaml")
	configContent := `
check:
  strict: false
  format: text
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("VARIANTCSS_CHECK_STRICT", "true")
	t.Setenv("VARIANTCSS_CHECK_FORMAT", "json")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("check.strict"))
	assert.Equal(t, "json", k.String("check.format"))
}

func TestBuildRegistryFromConfig(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".variantcss.yaml")
	configContent := `
breakpoints:
  tablet: 900

variants:
  - name: group-open
    selector: ".group--open &"
  - name: aria-busy
    selector: '&[aria-busy="true"]'
    specificity: 70
    combinable: false
    requires:
      - group-open
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	registry, err := buildRegistry()
	require.NoError(t, err)

	width, ok := registry.Breakpoint("tablet")
	require.True(t, ok)
	assert.Equal(t, 900, width)

	assert.Equal(t, []string{"aria-busy", "group-open"}, registry.CustomNames())
}

func TestBuildRegistryRejectsBadVariant(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".variantcss.yaml")
	configContent := `
variants:
  - name: Bad_Name
    selector: ":x"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	_, err := buildRegistry()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad_Name")
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}
