package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/variantcss"
)

var k = koanf.New(".")

// customVariantConfig is the YAML shape of one custom-variant entry under
// the top-level "variants" key.
type customVariantConfig struct {
	Name        string   `koanf:"name"`
	Selector    string   `koanf:"selector"`
	Media       string   `koanf:"media"`
	Specificity int      `koanf:"specificity"`
	Combinable  *bool    `koanf:"combinable"` // defaults to true when omitted
	Requires    []string `koanf:"requires"`
}

// loadConfig loads configuration with precedence: flags > env > file.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".variantcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Environment variables (VARIANTCSS_* prefix)
	// VARIANTCSS_CHECK_STRICT -> check.strict
	// VARIANTCSS_VERBOSE -> verbose
	if err := k.Load(env.Provider("VARIANTCSS_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "VARIANTCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildRegistry constructs the variant registry from koanf state:
// the "breakpoints" map and the "variants" list.
func buildRegistry() (*variantcss.Registry, error) {
	var breakpoints map[string]int
	if k.Exists("breakpoints") {
		breakpoints = k.IntMap("breakpoints")
	}

	registry := variantcss.NewRegistry(breakpoints)

	var customs []customVariantConfig
	if err := k.Unmarshal("variants", &customs); err != nil {
		return nil, fmt.Errorf("parsing custom variants: %w", err)
	}
	for _, cv := range customs {
		combinable := true
		if cv.Combinable != nil {
			combinable = *cv.Combinable
		}
		if err := registry.Register(variantcss.CustomVariant{
			Name:        cv.Name,
			Selector:    cv.Selector,
			MediaQuery:  cv.Media,
			Specificity: cv.Specificity,
			Combinable:  combinable,
			Requires:    cv.Requires,
		}); err != nil {
			return nil, fmt.Errorf("registering custom variant %q: %w", cv.Name, err)
		}
	}

	return registry, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
