// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/thatcatcamp/twtheme/internal/themes"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twtheme.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestInitConfigMissingFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "twtheme.yaml")

	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if got := GetString("prefix"); got != "ui" {
		t.Errorf("Expected default prefix ui, got %s", got)
	}
	if got := GetString("server.addr"); got != ":5174" {
		t.Errorf("Expected default server addr :5174, got %s", got)
	}
}

func TestInitConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "colors: [unterminated\n")
	if err := InitConfig(path); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}

func TestWriteDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "twtheme.yaml")

	if err := WriteDefaults(configPath); err != nil {
		t.Fatalf("WriteDefaults failed: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}
	if err := WriteDefaults(configPath); err == nil {
		t.Error("expected an error when the file already exists")
	}

	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if diff := cmp.Diff(DefaultOptions().Colors, opts.Colors); diff != "" {
		t.Errorf("default file should yield default colors (-want +got):\n%s", diff)
	}
}

func TestSetConfig(t *testing.T) {
	path := writeConfig(t, "prefix: ui\n")
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if err := Set("prefix", "brand"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := GetString("prefix"); got != "brand" {
		t.Errorf("Expected prefix brand, got %s", got)
	}

	// persisted
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if got := GetString("prefix"); got != "brand" {
		t.Errorf("Expected persisted prefix brand, got %s", got)
	}
}

func TestSetKeepsRoleAndVariableNames(t *testing.T) {
	path := writeConfig(t, `colors:
  zeta: pink
  Accent: purple
custom_variables:
  radius: 4px
  fontSize: 1rem
prefix: ui
`)
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if err := Set("prefix", "app"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := Set("server.allow_origin", "http://localhost:5173"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}

	keys := opts.Colors.Keys()
	if diff := cmp.Diff([]string{"zeta", "Accent"}, keys[len(keys)-2:]); diff != "" {
		t.Errorf("roles renamed or reordered (-want +got):\n%s", diff)
	}
	wantVars := themes.Variables{{Key: "radius", Value: "4px"}, {Key: "fontSize", Value: "1rem"}}
	if diff := cmp.Diff(wantVars, opts.CustomVariables); diff != "" {
		t.Errorf("custom variables mismatch (-want +got):\n%s", diff)
	}
	if opts.Prefix != "app" {
		t.Errorf("Expected prefix app, got %s", opts.Prefix)
	}
	if got := GetString("server.allow_origin"); got != "http://localhost:5173" {
		t.Errorf("Expected nested key to persist, got %s", got)
	}
}

func TestSetUpdatesExistingRole(t *testing.T) {
	path := writeConfig(t, "colors:\n  Accent: purple\n  zeta: pink\n")
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if err := Set("colors.accent", "teal"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if c, ok := opts.Colors.Get("Accent"); !ok || c != "teal" {
		t.Errorf("expected Accent=teal, got %q (%v)", c, ok)
	}
	if _, ok := opts.Colors.Get("accent"); ok {
		t.Error("a lowercase duplicate should not be added")
	}
}

func TestSetCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twtheme.yaml")
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if err := Set("prefix", "brand"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if got := GetString("prefix"); got != "brand" {
		t.Errorf("Expected persisted prefix brand, got %s", got)
	}
}

func TestLoadOptionsDefaults(t *testing.T) {
	if err := InitConfig(filepath.Join(t.TempDir(), "twtheme.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if diff := cmp.Diff(DefaultOptions(), opts, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptionsMergesColorsInOrder(t *testing.T) {
	path := writeConfig(t, `colors:
  primary: indigo
  brand: rose
  accent: teal
custom_variables:
  radius: 6px
  font-sans: Inter
prefix: app
adaptive_shades: false
include_semantic_colors: false
override_files:
  - theme/custom.css
`)
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}

	wantColors := themes.ColorMap{
		{Key: "primary", Color: "indigo"},
		{Key: "secondary", Color: "blue"},
		{Key: "success", Color: "green"},
		{Key: "info", Color: "blue"},
		{Key: "warning", Color: "yellow"},
		{Key: "error", Color: "red"},
		{Key: "neutral", Color: "slate"},
		{Key: "brand", Color: "rose"},
		{Key: "accent", Color: "teal"},
	}
	if diff := cmp.Diff(wantColors, opts.Colors); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}

	wantVars := themes.Variables{{Key: "radius", Value: "6px"}, {Key: "font-sans", Value: "Inter"}}
	if diff := cmp.Diff(wantVars, opts.CustomVariables); diff != "" {
		t.Errorf("custom variables mismatch (-want +got):\n%s", diff)
	}

	if opts.Prefix != "app" {
		t.Errorf("Expected prefix app, got %s", opts.Prefix)
	}
	if opts.AdaptiveShades || opts.IncludeSemanticColors {
		t.Error("explicit false flags should be honored")
	}
	if !opts.InjectColors || !opts.ExtendTailwindTheme {
		t.Error("unset flags should keep their defaults")
	}
	if diff := cmp.Diff([]string{"theme/custom.css"}, opts.OverrideFiles); diff != "" {
		t.Errorf("override files mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOptionsEnvironment(t *testing.T) {
	t.Setenv("TWTHEME_PREFIX", "env")
	t.Setenv("TWTHEME_INJECT_COLORS", "false")

	if err := InitConfig(writeConfig(t, "prefix: file\n")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if opts.Prefix != "env" {
		t.Errorf("environment should win, got prefix %s", opts.Prefix)
	}
	if opts.InjectColors {
		t.Error("TWTHEME_INJECT_COLORS=false should disable injection")
	}
}

func TestLoadOptionsKeepsNeutral(t *testing.T) {
	if err := InitConfig(writeConfig(t, "colors:\n  primary: sky\n")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions failed: %v", err)
	}
	if c, ok := opts.Colors.Get(themes.NeutralRole); !ok || c != "slate" {
		t.Errorf("neutral should survive the merge, got %q (%v)", c, ok)
	}
}
