// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/thatcatcamp/twtheme/internal/themes"
)

// Options is the resolved plugin configuration.
type Options struct {
	Colors                themes.ColorMap
	CustomVariables       themes.Variables
	InjectColors          bool
	Prefix                string
	ExtendTailwindTheme   bool
	IncludeSemanticColors bool
	AdaptiveShades        bool
	OverrideFiles         []string
	OutputPath            string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Colors:                themes.DefaultColors(),
		CustomVariables:       themes.Variables{},
		InjectColors:          true,
		Prefix:                themes.DefaultPrefix,
		ExtendTailwindTheme:   true,
		IncludeSemanticColors: true,
		AdaptiveShades:        true,
		OutputPath:            DefaultOutputPath,
	}
}

// orderedMaps holds the keys viper would flatten and reorder.
type orderedMaps struct {
	Colors          yaml.MapSlice `yaml:"colors"`
	CustomVariables yaml.MapSlice `yaml:"custom_variables"`
}

// LoadOptions resolves Options from the initialized config. Colors and
// custom variables are merged over the defaults in file order.
func LoadOptions() (Options, error) {
	opts := DefaultOptions()
	if v == nil {
		return opts, fmt.Errorf("config not initialized")
	}

	opts.InjectColors = v.GetBool("inject_colors")
	opts.ExtendTailwindTheme = v.GetBool("extend_tailwind_theme")
	opts.IncludeSemanticColors = v.GetBool("include_semantic_colors")
	opts.AdaptiveShades = v.GetBool("adaptive_shades")
	opts.OverrideFiles = v.GetStringSlice("override_files")
	if p := v.GetString("prefix"); p != "" {
		opts.Prefix = p
	}
	if out := v.GetString("output_path"); out != "" {
		opts.OutputPath = out
	}

	om, err := readOrderedMaps(v.ConfigFileUsed())
	if err != nil {
		return opts, err
	}
	opts.Colors = opts.Colors.Merge(colorMapFrom(om.Colors))
	for _, item := range om.CustomVariables {
		opts.CustomVariables = opts.CustomVariables.Set(fmt.Sprint(item.Key), fmt.Sprint(item.Value))
	}

	return opts, nil
}

func readOrderedMaps(path string) (orderedMaps, error) {
	var om orderedMaps
	if path == "" {
		return om, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return om, nil
		}
		return om, fmt.Errorf("failed to read config: %w", err)
	}
	if err := parseOrdered(data, &om); err != nil {
		return om, err
	}
	return om, nil
}

func parseOrdered(data []byte, om *orderedMaps) error {
	if err := yaml.Unmarshal(data, om); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func colorMapFrom(ms yaml.MapSlice) themes.ColorMap {
	out := make(themes.ColorMap, 0, len(ms))
	for _, item := range ms {
		out = out.Set(fmt.Sprint(item.Key), fmt.Sprint(item.Value))
	}
	return out
}
