package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/twtheme/internal/config"
	"github.com/thatcatcamp/twtheme/internal/themes"
	"github.com/thatcatcamp/twtheme/internal/ui"
)

var overridesCmd = &cobra.Command{
	Use:   "overrides [FILE...]",
	Short: "List palette colors overridden in @theme static blocks",
	Long: `Scan stylesheets for @theme static blocks and list the palette colors
they redefine. Without arguments the configured override files are scanned,
falling back to the conventional stylesheet locations.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		files := args
		if len(files) == 0 {
			files = config.GetStringSlice("override_files")
		}

		found := themes.UserOverriddenColors(afero.NewOsFs(), files)
		if found.Len() == 0 {
			ui.LogStatus("info", "no overridden colors")
			return
		}
		for _, name := range found.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(overridesCmd)
}
