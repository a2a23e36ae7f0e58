// SPDX-License-Identifier: MIT
package plugin

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/thatcatcamp/twtheme/internal/config"
	"github.com/thatcatcamp/twtheme/internal/metrics"
	"github.com/thatcatcamp/twtheme/internal/models"
	"github.com/thatcatcamp/twtheme/internal/themes"
)

const (
	// VirtualModuleID is the importable module that injects the plain theme.
	VirtualModuleID = "virtual:tailwind-theme-colors"

	// ThemeImportPath is the specifier a stylesheet imports to pull in the theme.
	ThemeImportPath = "tailwind-color-theme-plugin/theme.css"

	themeImport = `@import "` + ThemeImportPath + `";`
)

// Recorder receives every emitted artifact. A nil Recorder is allowed.
type Recorder func(kind, path string, overrides themes.OverrideSet, css string)

// Plugin generates theme stylesheets for a bundler session. Options are fixed
// for its lifetime; overrides are rescanned on every generation.
type Plugin struct {
	opts     config.Options
	fs       afero.Fs
	Recorder Recorder
}

// New creates a plugin over fsys. Missing option fields fall back to defaults.
func New(opts config.Options, fsys afero.Fs) *Plugin {
	def := config.DefaultOptions()
	if len(opts.Colors) == 0 {
		opts.Colors = def.Colors
	}
	if opts.Prefix == "" {
		opts.Prefix = def.Prefix
	}
	if opts.OutputPath == "" {
		opts.OutputPath = def.OutputPath
	}
	return &Plugin{opts: opts, fs: fsys}
}

// Options returns the resolved options.
func (p *Plugin) Options() config.Options {
	return p.opts
}

// Overrides scans the configured stylesheets for static theme overrides.
func (p *Plugin) Overrides() themes.OverrideSet {
	start := time.Now()
	found := themes.UserOverriddenColors(p.fs, p.opts.OverrideFiles)
	metrics.ObserveScan(start, found.Len())
	return found
}

// ThemeCSS returns the framework-native stylesheet.
func (p *Plugin) ThemeCSS() string {
	css, _ := p.RenderTheme()
	return css
}

// RenderTheme returns the framework-native stylesheet together with the
// override set it was generated against.
func (p *Plugin) RenderTheme() (string, themes.OverrideSet) {
	overrides := p.Overrides()
	css := themes.GenerateTailwindThemeCSS(p.opts.Colors, p.opts.Prefix, p.opts.IncludeSemanticColors, p.opts.AdaptiveShades, overrides)
	metrics.ObserveGeneration(models.KindTailwind, css)
	return css, overrides
}

// PlainCSS returns the injected `@layer base` stylesheet.
func (p *Plugin) PlainCSS() string {
	css := themes.GenerateThemeCSS(p.opts.Colors, p.opts.CustomVariables, p.opts.Prefix)
	metrics.ObserveGeneration(models.KindPlain, css)
	return css
}

// IntelliSenseCSS returns the editor hint stylesheet.
func (p *Plugin) IntelliSenseCSS() string {
	css := themes.GenerateIntelliSenseCSS(p.opts.Colors, p.opts.Prefix, p.opts.IncludeSemanticColors)
	metrics.ObserveGeneration(models.KindIntelliSense, css)
	return css
}

// BuildStart writes the framework-native stylesheet to the output path so
// imports of the theme resolve. It does nothing unless the theme extends
// the framework.
func (p *Plugin) BuildStart() error {
	if !p.opts.ExtendTailwindTheme {
		return nil
	}

	css, overrides := p.RenderTheme()
	if err := p.WriteFile(p.opts.OutputPath, css); err != nil {
		return err
	}
	p.record(models.KindTailwind, p.opts.OutputPath, overrides, css)
	return nil
}

// WriteFile validates css and writes it to path, creating parent directories.
func (p *Plugin) WriteFile(path, css string) error {
	if err := themes.Validate(css); err != nil {
		metrics.ErrorsTotal.WithLabelValues("validate").Inc()
		return fmt.Errorf("generated CSS is malformed: %w", err)
	}
	if err := p.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		metrics.ErrorsTotal.WithLabelValues("write").Inc()
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := afero.WriteFile(p.fs, path, []byte(css), 0644); err != nil {
		metrics.ErrorsTotal.WithLabelValues("write").Inc()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Transform replaces the first theme import in a stylesheet with the
// generated theme. ok is false when id is left alone.
func (p *Plugin) Transform(code, id string) (string, bool) {
	if !p.opts.ExtendTailwindTheme {
		return "", false
	}
	if !strings.HasSuffix(id, ".css") || !strings.Contains(code, ThemeImportPath) {
		return "", false
	}

	css, overrides := p.RenderTheme()
	metrics.TransformsTotal.Inc()
	p.record(models.KindTransform, id, overrides, css)
	return strings.Replace(code, themeImport, css, 1), true
}

// ResolveID claims the virtual module id.
func (p *Plugin) ResolveID(id string) (string, bool) {
	if p.opts.InjectColors && id == VirtualModuleID {
		return id, true
	}
	return "", false
}

// Load returns the source of the virtual module.
func (p *Plugin) Load(id string) (string, bool) {
	if !p.opts.InjectColors || id != VirtualModuleID {
		return "", false
	}
	return p.VirtualModule(), true
}

// VirtualModule renders the module that exports the plain theme and injects
// it into the document as <style data-tailwind-theme>.
func (p *Plugin) VirtualModule() string {
	css := p.PlainCSS()
	p.record(models.KindPlain, VirtualModuleID, nil, css)
	return fmt.Sprintf(`
const css = %s;

if (typeof document !== 'undefined') {
  const style = document.createElement('style');
  style.textContent = css;
  style.setAttribute('data-tailwind-theme', '');
  document.head.appendChild(style);
}

export default css;
`, jsString(css))
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	return strings.TrimSuffix(b.String(), "\n")
}

func (p *Plugin) record(kind, path string, overrides themes.OverrideSet, css string) {
	if p.Recorder != nil {
		p.Recorder(kind, path, overrides, css)
	}
}
