// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrefix namespaces every generated variable.
const DefaultPrefix = "ui"

// uiToken aliases a neutral shade in light and dark mode. A zero shade means
// the light value is the literal in lightLiteral.
type uiToken struct {
	name         string
	light        int
	lightLiteral string
	dark         int
}

var uiTokens = []uiToken{
	{name: "text", light: 900, dark: 100},
	{name: "text-dimmed", light: 400, dark: 500},
	{name: "text-muted", light: 600, dark: 400},
	{name: "text-toned", light: 700, dark: 300},
	{name: "text-highlighted", light: 950, dark: 50},
	{name: "text-inverted", light: 50, dark: 900},
	{name: "bg", light: 50, dark: 900},
	{name: "bg-muted", light: 100, dark: 800},
	{name: "bg-elevated", lightLiteral: "white", dark: 800},
	{name: "bg-accented", light: 200, dark: 700},
	{name: "bg-inverted", light: 900, dark: 100},
	{name: "border", light: 200, dark: 700},
	{name: "border-muted", light: 100, dark: 800},
	{name: "border-accented", light: 300, dark: 600},
	{name: "border-inverted", light: 700, dark: 300},
}

// semanticAlias points a framework utility variable at a UI token. Core
// aliases are the text/background/border set registered with the framework.
type semanticAlias struct {
	name  string
	token string
	core  bool
}

var semanticAliases = []semanticAlias{
	{"text-color-dimmed", "text-dimmed", true},
	{"text-color-muted", "text-muted", true},
	{"text-color-toned", "text-toned", true},
	{"text-color-default", "text", true},
	{"text-color-highlighted", "text-highlighted", true},
	{"text-color-inverted", "text-inverted", true},
	{"background-color-default", "bg", true},
	{"background-color-muted", "bg-muted", true},
	{"background-color-elevated", "bg-elevated", true},
	{"background-color-accented", "bg-accented", true},
	{"background-color-inverted", "bg-inverted", true},
	{"background-color-border", "border", false},
	{"border-color-default", "border", true},
	{"border-color-muted", "border-muted", true},
	{"border-color-accented", "border-accented", true},
	{"border-color-inverted", "border-inverted", true},
	{"border-color-bg", "bg", false},
	{"ring-color-default", "border", false},
	{"ring-color-muted", "border-muted", false},
	{"ring-color-accented", "border-accented", false},
	{"ring-color-inverted", "border-inverted", false},
	{"ring-color-bg", "bg", false},
	{"ring-offset-color-default", "border", false},
	{"ring-offset-color-muted", "border-muted", false},
	{"ring-offset-color-accented", "border-accented", false},
	{"ring-offset-color-inverted", "border-inverted", false},
	{"ring-offset-color-bg", "bg", false},
	{"divide-color-default", "border", false},
	{"divide-color-muted", "border-muted", false},
	{"divide-color-accented", "border-accented", false},
	{"divide-color-inverted", "border-inverted", false},
	{"divide-color-bg", "bg", false},
	{"outline-color-default", "border", false},
	{"outline-color-inverted", "border-inverted", false},
	{"stroke-color-default", "border", false},
	{"stroke-color-inverted", "border-inverted", false},
	{"fill-color-default", "border", false},
	{"fill-color-inverted", "border-inverted", false},
}

// paletteRef is the framework palette variable a role's color reads from.
// "neutral" points at "old-neutral" so the neutral ramp can be swapped.
func paletteRef(color string) string {
	if color == NeutralRole {
		return "old-neutral"
	}
	return color
}

// GenerateShades emits the eleven --{prefix}-color-{key}-{shade} declarations
// for one role. Unless skipDefaults is set, each reference carries the palette
// value as a fallback when the palette knows it.
func GenerateShades(key, color, prefix string, skipDefaults bool) string {
	lines := make([]string, 0, len(Shades))
	ref := paletteRef(color)
	for _, shade := range Shades {
		colorVar := "--color-" + ref + "-" + strconv.Itoa(shade)
		fallback := ""
		if !skipDefaults {
			if value := GetColor(color, shade); value != "" {
				fallback = ", " + value
			}
		}
		lines = append(lines, fmt.Sprintf("--%s-color-%s-%d: var(%s%s);", prefix, key, shade, colorVar, fallback))
	}
	return strings.Join(lines, "\n  ")
}

// GenerateColor emits the adaptive alias for key at shade.
func GenerateColor(key string, shade int, prefix string) string {
	return fmt.Sprintf("--%s-%s: var(--%s-color-%s-%d);", prefix, key, prefix, key, shade)
}

// GenerateUIVariables emits the light-mode text/background/border tokens.
func GenerateUIVariables(prefix string) string {
	return renderUITokens(prefix, false)
}

// GenerateUIVariablesDark emits the dark-mode text/background/border tokens.
func GenerateUIVariablesDark(prefix string) string {
	return renderUITokens(prefix, true)
}

func renderUITokens(prefix string, dark bool) string {
	lines := make([]string, 0, len(uiTokens))
	for _, tok := range uiTokens {
		value := tok.lightLiteral
		shade := tok.light
		if dark {
			value, shade = "", tok.dark
		}
		if value == "" {
			value = fmt.Sprintf("var(--%s-color-neutral-%d)", prefix, shade)
		}
		lines = append(lines, fmt.Sprintf("  --%s-%s: %s;", prefix, tok.name, value))
	}
	return strings.Join(lines, "\n")
}

// GenerateSemanticColorMappings emits every cross-framework alias
// (text, background, border, ring, ring-offset, divide, outline, stroke, fill).
func GenerateSemanticColorMappings(prefix string) string {
	return renderSemanticAliases(prefix, "  ", false)
}

func renderSemanticAliases(prefix, indent string, coreOnly bool) string {
	lines := make([]string, 0, len(semanticAliases))
	for _, a := range semanticAliases {
		if coreOnly && !a.core {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s--%s: var(--%s-%s);", indent, a.name, prefix, a.token))
	}
	return strings.Join(lines, "\n")
}

// intelliSenseAliases lists the core aliases by family in the order the
// editor hint stylesheet declares them.
var intelliSenseAliases = [][]string{
	{"text-color-default", "text-color-muted", "text-color-toned", "text-color-dimmed", "text-color-highlighted", "text-color-inverted"},
	{"background-color-default", "background-color-muted", "background-color-elevated", "background-color-accented", "background-color-inverted"},
	{"border-color-default", "border-color-muted", "border-color-accented", "border-color-inverted"},
}

// intelliSenseAliasGroups resolves intelliSenseAliases against the alias table.
func intelliSenseAliasGroups() [][]semanticAlias {
	byName := make(map[string]semanticAlias, len(semanticAliases))
	for _, a := range semanticAliases {
		byName[a.name] = a
	}

	groups := make([][]semanticAlias, 0, len(intelliSenseAliases))
	for _, names := range intelliSenseAliases {
		group := make([]semanticAlias, 0, len(names))
		for _, name := range names {
			group = append(group, byName[name])
		}
		groups = append(groups, group)
	}
	return groups
}
