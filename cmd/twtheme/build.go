package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/twtheme/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [CSS_FILE...]",
	Short: "Write the theme stylesheet and expand theme imports",
	Long: `Write the framework theme to the configured output path, then replace
the theme import in each given stylesheet with the generated theme.

Rewritten stylesheets go to --out-dir, or replace the originals when it is empty.`,
	Run: func(cmd *cobra.Command, args []string) {
		outDir, _ := cmd.Flags().GetString("out-dir")

		p, err := loadPlugin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// a failed theme write does not stop the build
		if err := p.BuildStart(); err != nil {
			ui.LogStatus("warning", fmt.Sprintf("failed to write theme.css: %v", err))
		} else if p.Options().ExtendTailwindTheme {
			ui.LogStatus("success", "wrote "+p.Options().OutputPath)
		}

		failed := false
		for _, file := range args {
			code, err := os.ReadFile(file)
			if err != nil {
				ui.LogStatus("error", fmt.Sprintf("%s: %v", file, err))
				failed = true
				continue
			}

			out, ok := p.Transform(string(code), file)
			if !ok {
				ui.LogStatus("info", file+": no theme import")
				continue
			}

			dest := file
			if outDir != "" {
				dest = filepath.Join(outDir, filepath.Base(file))
				if err := os.MkdirAll(outDir, 0755); err != nil {
					ui.LogStatus("error", err.Error())
					failed = true
					continue
				}
			}
			if err := os.WriteFile(dest, []byte(out), 0644); err != nil {
				ui.LogStatus("error", fmt.Sprintf("%s: %v", dest, err))
				failed = true
				continue
			}
			ui.LogStatus("success", fmt.Sprintf("%s -> %s", file, dest))
		}

		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	buildCmd.Flags().String("out-dir", "", "directory for rewritten stylesheets")
	rootCmd.AddCommand(buildCmd)
}
