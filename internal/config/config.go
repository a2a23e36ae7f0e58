// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigFile is looked up in the project root.
const DefaultConfigFile = "twtheme.yaml"

// DefaultOutputPath is where build start writes the framework stylesheet.
const DefaultOutputPath = "node_modules/tailwind-color-theme-plugin/theme.css"

// DefaultAllowedCIDRs admits loopback and private networks to the dev server.
var DefaultAllowedCIDRs = []string{
	"127.0.0.0/8",
	"::1/128",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"fc00::/7",
}

var v *viper.Viper

// InitConfig initializes the configuration system. A missing file is not an
// error; defaults and TWTHEME_* environment variables still apply.
func InitConfig(configPath string) error {
	v = viper.New()

	// .env is optional
	_ = godotenv.Load()

	// Set defaults
	setDefaults()

	v.SetEnvPrefix("TWTHEME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

// WriteDefaults writes a config file holding the defaults to configPath.
// An existing file is left alone.
func WriteDefaults(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Plugin defaults
	v.SetDefault("inject_colors", true)
	v.SetDefault("prefix", "ui")
	v.SetDefault("extend_tailwind_theme", true)
	v.SetDefault("include_semantic_colors", true)
	v.SetDefault("adaptive_shades", true)
	v.SetDefault("override_files", []string{})
	v.SetDefault("output_path", DefaultOutputPath)

	// Dev server defaults
	v.SetDefault("server.addr", ":5174")
	v.SetDefault("server.allow_origin", "*")
	v.SetDefault("server.allowed_cidrs", DefaultAllowedCIDRs)

	// Build ledger defaults
	v.SetDefault("database.enabled", true)
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", ".twtheme/builds.db")
}

// defaultConfigYAML keeps colors in the order they are emitted.
const defaultConfigYAML = `# twtheme configuration
colors:
  primary: green
  secondary: blue
  success: green
  info: blue
  warning: yellow
  error: red
  neutral: slate
custom_variables: {}
inject_colors: true
prefix: ui
extend_tailwind_theme: true
include_semantic_colors: true
adaptive_shades: true
override_files: []
output_path: node_modules/tailwind-color-theme-plugin/theme.css
server:
  addr: ":5174"
  allow_origin: "*"
  # allowed_cidrs defaults to loopback and private networks
database:
  enabled: true
  type: sqlite
  path: .twtheme/builds.db
`

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetStringSlice returns a config value as a string slice
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// Set sets a config value and saves to file. The file is edited in place so
// roles and custom variables keep their case and order.
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}
	path := v.ConfigFileUsed()
	if path == "" {
		return fmt.Errorf("no config file in use")
	}

	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	if err := writeDocument(path, setPath(doc, strings.Split(key, "."), value)); err != nil {
		return err
	}

	v.Set(key, value)
	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
