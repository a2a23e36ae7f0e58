// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

func TestGenerateShadesAllSteps(t *testing.T) {
	result := GenerateShades("primary", "green", "ui", false)
	for _, shade := range Shades {
		if !strings.Contains(result, fmt.Sprintf("--ui-color-primary-%d:", shade)) {
			t.Errorf("missing shade %d", shade)
		}
	}
	if n := strings.Count(result, "\n  "); n != len(Shades)-1 {
		t.Errorf("expected %d separators, got %d", len(Shades)-1, n)
	}
}

func TestGenerateShadesFallbacks(t *testing.T) {
	result := GenerateShades("primary", "green", "ui", false)
	want := fmt.Sprintf("--ui-color-primary-500: var(--color-green-500, %s);", GetColor("green", 500))
	if !strings.Contains(result, want) {
		t.Errorf("expected %q in:\n%s", want, result)
	}
}

func TestGenerateShadesSkipDefaults(t *testing.T) {
	result := GenerateShades("primary", "green", "ui", true)
	if strings.Contains(result, "oklch(") {
		t.Error("skipDefaults should omit palette fallbacks")
	}
	if !regexp.MustCompile(`var\(--color-green-\d+\)`).MatchString(result) {
		t.Errorf("expected bare palette references, got:\n%s", result)
	}
}

func TestGenerateShadesUnknownColorHasNoFallback(t *testing.T) {
	result := GenerateShades("brand", "company-teal", "ui", false)
	if !strings.Contains(result, "--ui-color-brand-500: var(--color-company-teal-500);") {
		t.Errorf("unexpected output:\n%s", result)
	}
}

func TestGenerateShadesNeutralRedirect(t *testing.T) {
	result := GenerateShades("neutral", "neutral", "ui", false)
	if !strings.Contains(result, "--color-old-neutral-") {
		t.Error("neutral color should reference old-neutral")
	}
	if strings.Contains(result, "var(--color-neutral-") {
		t.Error("neutral color must not reference --color-neutral-*")
	}

	slate := GenerateShades("neutral", "slate", "ui", false)
	if strings.Contains(slate, "old-neutral") {
		t.Error("only the neutral color value is redirected")
	}
}

func TestGenerateShadesPrefix(t *testing.T) {
	result := GenerateShades("primary", "green", "theme", false)
	if !strings.Contains(result, "--theme-color-primary-") {
		t.Error("expected theme prefix")
	}
	if strings.Contains(result, "--ui-color-primary-") {
		t.Error("default prefix leaked")
	}
}

func TestGenerateColor(t *testing.T) {
	tests := []struct {
		key    string
		shade  int
		prefix string
		want   string
	}{
		{"primary", 500, "ui", "--ui-primary: var(--ui-color-primary-500);"},
		{"primary", 400, "ui", "--ui-primary: var(--ui-color-primary-400);"},
		{"primary", 500, "theme", "--theme-primary: var(--theme-color-primary-500);"},
	}

	for _, tt := range tests {
		if got := GenerateColor(tt.key, tt.shade, tt.prefix); got != tt.want {
			t.Errorf("GenerateColor(%q, %d, %q) = %q, want %q", tt.key, tt.shade, tt.prefix, got, tt.want)
		}
	}
}

func TestGenerateUIVariablesLight(t *testing.T) {
	result := GenerateUIVariables("ui")
	expected := []string{
		"  --ui-text: var(--ui-color-neutral-900);",
		"  --ui-text-dimmed: var(--ui-color-neutral-400);",
		"  --ui-text-muted: var(--ui-color-neutral-600);",
		"  --ui-text-toned: var(--ui-color-neutral-700);",
		"  --ui-text-highlighted: var(--ui-color-neutral-950);",
		"  --ui-text-inverted: var(--ui-color-neutral-50);",
		"  --ui-bg: var(--ui-color-neutral-50);",
		"  --ui-bg-muted: var(--ui-color-neutral-100);",
		"  --ui-bg-elevated: white;",
		"  --ui-bg-accented: var(--ui-color-neutral-200);",
		"  --ui-bg-inverted: var(--ui-color-neutral-900);",
		"  --ui-border: var(--ui-color-neutral-200);",
		"  --ui-border-muted: var(--ui-color-neutral-100);",
		"  --ui-border-accented: var(--ui-color-neutral-300);",
		"  --ui-border-inverted: var(--ui-color-neutral-700);",
	}
	if result != strings.Join(expected, "\n") {
		t.Errorf("unexpected light tokens:\n%s", result)
	}
}

func TestGenerateUIVariablesDark(t *testing.T) {
	result := GenerateUIVariablesDark("ui")
	for _, want := range []string{
		"--ui-text: var(--ui-color-neutral-100)",
		"--ui-bg: var(--ui-color-neutral-900)",
		"--ui-bg-muted: var(--ui-color-neutral-800)",
		"--ui-bg-elevated: var(--ui-color-neutral-800)",
		"--ui-border-inverted: var(--ui-color-neutral-300)",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("missing %q", want)
		}
	}
	if strings.Contains(result, "white") {
		t.Error("bg-elevated must not be white in dark mode")
	}
	if strings.Count(result, "\n")+1 != len(uiTokens) {
		t.Errorf("expected %d tokens", len(uiTokens))
	}
}

func TestGenerateUIVariablesPrefix(t *testing.T) {
	for _, result := range []string{GenerateUIVariables("theme"), GenerateUIVariablesDark("theme")} {
		if !strings.Contains(result, "--theme-text:") {
			t.Error("expected theme prefix")
		}
		if strings.Contains(result, "--ui-") {
			t.Error("default prefix leaked")
		}
	}
}

func TestGenerateSemanticColorMappings(t *testing.T) {
	result := GenerateSemanticColorMappings("ui")
	for _, want := range []string{
		"--text-color-dimmed: var(--ui-text-dimmed);",
		"--text-color-default: var(--ui-text);",
		"--background-color-default: var(--ui-bg);",
		"--background-color-border: var(--ui-border);",
		"--border-color-bg: var(--ui-bg);",
		"--ring-color-default: var(--ui-border);",
		"--ring-offset-color-default: var(--ui-border);",
		"--divide-color-default: var(--ui-border);",
		"--outline-color-default: var(--ui-border);",
		"--stroke-color-default: var(--ui-border);",
		"--fill-color-inverted: var(--ui-border-inverted);",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("missing %q", want)
		}
	}
	if n := strings.Count(result, "\n") + 1; n != 38 {
		t.Errorf("expected 38 aliases, got %d", n)
	}
}

func TestGenerateSemanticColorMappingsPrefix(t *testing.T) {
	result := GenerateSemanticColorMappings("theme")
	if !strings.Contains(result, "var(--theme-bg)") {
		t.Error("expected theme prefix")
	}
	if strings.Contains(result, "var(--ui-") {
		t.Error("default prefix leaked")
	}
}

func TestSemanticAliasesReferenceKnownTokens(t *testing.T) {
	known := make(map[string]bool, len(uiTokens))
	for _, tok := range uiTokens {
		known[tok.name] = true
	}
	for _, a := range semanticAliases {
		if !known[a.token] {
			t.Errorf("%s points at unknown token %s", a.name, a.token)
		}
	}
}

func TestIntelliSenseAliasGroups(t *testing.T) {
	groups := intelliSenseAliasGroups()
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	core := 0
	for _, a := range semanticAliases {
		if a.core {
			core++
		}
	}
	total := 0
	for i, g := range groups {
		for _, a := range g {
			if !a.core || a.token == "" {
				t.Errorf("group %d: %q is not a core alias", i, a.name)
			}
		}
		total += len(g)
	}
	if total != core {
		t.Errorf("expected every core alias once, got %d of %d", total, core)
	}
}
