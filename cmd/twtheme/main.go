// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "twtheme",
	Short: "twtheme - semantic color themes for Tailwind CSS",
	Long: `twtheme generates CSS custom properties for a semantic color theme
(light/dark, adaptive shades, semantic aliases) on top of the Tailwind palette.

It writes the theme stylesheet a bundler imports, rewrites stylesheets that
import it, and serves everything from a development server with live reload.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $TWTHEME_CONFIG or ./twtheme.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
