package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/twtheme/internal/models"
	"github.com/thatcatcamp/twtheme/internal/plugin"
	"github.com/thatcatcamp/twtheme/internal/themes"
	"github.com/thatcatcamp/twtheme/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print or write a theme stylesheet",
	Long: `Generate one of the theme stylesheets:

  plain         @layer base theme, as injected by the virtual module
  tailwind      @theme registration plus @layer base, as written at build start
  intellisense  editor hint file for Tailwind IntelliSense`,
	Run: func(cmd *cobra.Command, args []string) {
		shape, _ := cmd.Flags().GetString("shape")
		out, _ := cmd.Flags().GetString("output")

		p, err := loadPlugin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		css, overrides, err := render(p, shape)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if out == "" {
			fmt.Print(css)
			return
		}

		if err := p.WriteFile(out, css); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		recordBuild(p.Options())(shape, out, overrides, css)
		ui.LogStatus("success", fmt.Sprintf("wrote %s (%d bytes)", out, len(css)))
	},
}

// render produces the stylesheet for shape and the overrides it honored.
// Only the framework-native shape consults overrides.
func render(p *plugin.Plugin, shape string) (string, themes.OverrideSet, error) {
	switch shape {
	case models.KindPlain:
		return p.PlainCSS(), nil, nil
	case models.KindTailwind:
		css, overrides := p.RenderTheme()
		return css, overrides, nil
	case models.KindIntelliSense:
		return p.IntelliSenseCSS(), nil, nil
	default:
		return "", nil, fmt.Errorf("unknown shape %q (want plain, tailwind or intellisense)", shape)
	}
}

func init() {
	generateCmd.Flags().String("shape", models.KindTailwind, "output shape: plain, tailwind or intellisense")
	generateCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(generateCmd)
}
