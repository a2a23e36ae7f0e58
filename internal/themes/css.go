// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// IntelliSenseHeader marks the editor hint stylesheet as generated.
const IntelliSenseHeader = `/*
 * IntelliSense helper for Tailwind Color Theme Plugin
 * This file helps VS Code provide autocomplete for theme utilities
 * Generated automatically - do not edit manually
 */`

// shadeLadders renders GenerateShades for every role, consulting overrides
// for skipDefaults. A nil set skips nothing.
func shadeLadders(colors ColorMap, prefix string, overrides OverrideSet) string {
	ladders := make([]string, 0, len(colors))
	for _, r := range colors {
		ladders = append(ladders, GenerateShades(r.Key, r.Color, prefix, overrides.Has(r.Color)))
	}
	return strings.Join(ladders, "\n  ")
}

func adaptiveAliases(colors ColorMap, shade int, prefix string) string {
	lines := make([]string, 0, len(colors))
	for _, r := range colors.WithoutNeutral() {
		lines = append(lines, GenerateColor(r.Key, shade, prefix))
	}
	return strings.Join(lines, "\n  ")
}

// layerBase assembles the shared `@layer base` block. rootExtra is placed
// after the shade ladders inside :root.
func layerBase(colors ColorMap, prefix string, overrides OverrideSet, rootExtra string, darkShade int) string {
	var b strings.Builder
	b.WriteString("@layer base {\n  :root {\n  ")
	b.WriteString(shadeLadders(colors, prefix, overrides))
	b.WriteString("\n")
	b.WriteString(rootExtra)
	b.WriteString("\n")
	b.WriteString(GenerateUIVariables(prefix))
	b.WriteString("\n  }\n  :root, .light {\n  ")
	b.WriteString(adaptiveAliases(colors, 500, prefix))
	b.WriteString("\n  }\n  .dark {\n  ")
	b.WriteString(adaptiveAliases(colors, darkShade, prefix))
	b.WriteString("\n")
	b.WriteString(GenerateUIVariablesDark(prefix))
	b.WriteString("\n  }\n}")
	return b.String()
}

// GenerateThemeCSS builds the plain `@layer base` stylesheet: shade ladders,
// custom variables and light tokens on :root, adaptive aliases at 500 for
// :root/.light and at 400 plus dark tokens for .dark. Fallbacks are always
// included.
func GenerateThemeCSS(colors ColorMap, vars Variables, prefix string) string {
	custom := make([]string, 0, len(vars))
	for _, v := range vars {
		custom = append(custom, fmt.Sprintf("  --%s-%s: %s;", prefix, v.Key, v.Value))
	}
	return layerBase(colors, prefix, nil, strings.Join(custom, "\n"), 400)
}

// GenerateTailwindThemeCSS builds the framework-native stylesheet: an
// `@theme default inline` registration block followed by `@layer base`.
// Roles whose color is in overrides drop their palette fallbacks, and every
// palette ramp that is neither configured, overridden nor used is emitted
// with literal values so it stays available as static utilities.
func GenerateTailwindThemeCSS(colors ColorMap, prefix string, includeSemantics, adaptiveShades bool, overrides OverrideSet) string {
	adaptive := colors.WithoutNeutral()

	shadeVars := make([]string, 0, len(colors)*len(Shades))
	for _, r := range colors {
		for _, shade := range Shades {
			shadeVars = append(shadeVars, fmt.Sprintf("\t--color-%s-%d: var(--%s-color-%s-%d);", r.Key, shade, prefix, r.Key, shade))
		}
	}

	semanticVars := make([]string, 0, len(adaptive))
	defaultVars := make([]string, 0, len(adaptive))
	for _, r := range adaptive {
		semanticVars = append(semanticVars, fmt.Sprintf("\t--color-%s: var(--%s-%s);", r.Key, prefix, r.Key))
		defaultVars = append(defaultVars, fmt.Sprintf("\t--color-%s-DEFAULT: var(--%s-%s);", r.Key, prefix, r.Key))
	}

	semanticMappings := ""
	if includeSemantics {
		semanticMappings = renderSemanticAliases(prefix, "\t", true)
	}

	darkShade := 500
	if adaptiveShades {
		darkShade = 400
	}

	var b strings.Builder
	b.WriteString("\n@theme default inline {\n")
	b.WriteString(strings.Join(shadeVars, "\n"))
	b.WriteString("\n")
	b.WriteString(strings.Join(semanticVars, "\n"))
	b.WriteString("\n")
	b.WriteString(strings.Join(defaultVars, "\n"))
	b.WriteString("\n")
	b.WriteString(semanticMappings)
	b.WriteString("\n}\n\n")
	b.WriteString(layerBase(colors, prefix, overrides, "  "+paletteFallbacks(colors, overrides), darkShade))
	b.WriteString("\n\n")
	return b.String()
}

// paletteFallbacks emits literal --color-{name}-{shade} values for every ramp
// the theme does not otherwise provide.
func paletteFallbacks(colors ColorMap, overrides OverrideSet) string {
	used := colors.Used()
	var ramps []string
	for _, name := range Tailwind.Ramps() {
		if overrides.Has(name) || used[name] {
			continue
		}
		lines := make([]string, 0, len(Shades))
		for _, shade := range Shades {
			if value := GetColor(name, shade); value != "" {
				lines = append(lines, fmt.Sprintf("--color-%s-%d: %s;", name, shade, value))
			}
		}
		ramps = append(ramps, strings.Join(lines, "\n  "))
	}
	return strings.Join(ramps, "\n  ")
}

// GenerateIntelliSenseCSS builds the editor hint stylesheet. It is never fed
// to the build; tooling reads its `@theme default` declarations.
func GenerateIntelliSenseCSS(colors ColorMap, prefix string, includeSemantics bool) string {
	entries := make([]string, 0, len(colors))
	for _, r := range colors {
		var b strings.Builder
		fmt.Fprintf(&b, "  --color-%s: var(--%s-%s);\n", r.Key, prefix, r.Key)
		fmt.Fprintf(&b, "  --color-%s-DEFAULT: var(--%s-%s);\n", r.Key, prefix, r.Key)
		shades := make([]string, 0, len(Shades))
		for _, shade := range Shades {
			shades = append(shades, fmt.Sprintf("  --color-%s-%d: var(--%s-color-%s-%d);", r.Key, shade, prefix, r.Key, shade))
		}
		b.WriteString(strings.Join(shades, "\n"))
		entries = append(entries, b.String())
	}

	semantic := ""
	if includeSemantics {
		var b strings.Builder
		for i, group := range intelliSenseAliasGroups() {
			if i > 0 {
				b.WriteString("\n")
			}
			family := group[0].name[:strings.Index(group[0].name, "-color-")]
			fmt.Fprintf(&b, "\n  /* Semantic %s colors */", family)
			for _, a := range group {
				fmt.Fprintf(&b, "\n  --%s: var(--%s-%s);", a.name, prefix, a.token)
			}
		}
		semantic = b.String()
	}

	return IntelliSenseHeader + "\n\n@theme default {\n" + strings.Join(entries, "\n\n") + semantic + "\n}"
}
