package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/twtheme/internal/config"
	"github.com/thatcatcamp/twtheme/internal/themes"
	"github.com/thatcatcamp/twtheme/internal/ui"
)

var paletteCmd = &cobra.Command{
	Use:   "palette [COLOR|ROLE]",
	Short: "Show the built-in Tailwind palette",
	Long: `Without arguments, list the palette ramps and the configured roles.
With a color name, print its shades. A configured role name resolves to the
color it is mapped to.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		colors := configuredColors()

		if len(args) == 0 {
			for _, name := range themes.Tailwind.Ramps() {
				fmt.Println(name)
			}
			ui.LogItem("roles", strings.Join(colors.Keys(), ", "))
			return
		}

		name := args[0]
		if color, ok := colors.Get(name); ok {
			ui.LogItem(name, color)
			name = color
		}
		if value, ok := themes.Tailwind.Single(name); ok {
			fmt.Printf("%s: %s\n", name, value)
			return
		}

		found := false
		for _, shade := range themes.Shades {
			value := themes.GetColor(name, shade)
			if value == "" {
				continue
			}
			found = true
			ui.LogSwatch(name, shade, value)
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: unknown color %q\n", name)
			os.Exit(1)
		}
	},
}

// configuredColors returns the configured roles, or the defaults when the
// config cannot be read.
func configuredColors() themes.ColorMap {
	if err := initConfig(); err != nil {
		return themes.DefaultColors()
	}
	opts, err := config.LoadOptions()
	if err != nil {
		return themes.DefaultColors()
	}
	return opts.Colors
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
