// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// readDocument loads the config file as ordered maps at every level so
// role names and custom variables keep their case and position. A missing
// file yields an empty document.
func readDocument(path string) (yaml.MapSlice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return yaml.MapSlice{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return doc, nil
}

func writeDocument(path string, doc yaml.MapSlice) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// setPath sets a dotted key inside doc, descending into nested maps and
// creating them as needed. Existing keys keep their place; new keys are
// appended. A scalar in the way of the path is replaced by a map.
func setPath(doc yaml.MapSlice, path []string, value interface{}) yaml.MapSlice {
	for i, item := range doc {
		if !strings.EqualFold(fmt.Sprint(item.Key), path[0]) {
			continue
		}
		if len(path) == 1 {
			doc[i].Value = value
			return doc
		}
		child, _ := item.Value.(yaml.MapSlice)
		doc[i].Value = setPath(child, path[1:], value)
		return doc
	}

	if len(path) == 1 {
		return append(doc, yaml.MapItem{Key: path[0], Value: value})
	}
	return append(doc, yaml.MapItem{Key: path[0], Value: setPath(nil, path[1:], value)})
}
