package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/twtheme/internal/config"
	"github.com/thatcatcamp/twtheme/internal/db"
	"github.com/thatcatcamp/twtheme/internal/plugin"
	"github.com/thatcatcamp/twtheme/internal/themes"
	"github.com/thatcatcamp/twtheme/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage twtheme configuration",
	Long:  "View and modify twtheme configuration values",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default theme",
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath()
		if err := config.WriteDefaults(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ui.LogStatus("success", "wrote "+path)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		value := config.GetString(args[0])
		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		all := config.GetAll()
		keys := make([]string, 0, len(all))
		for key := range all {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s: %v\n", key, all[key])
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// configPath resolves the config file from --config, TWTHEME_CONFIG or the project default
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if env := os.Getenv("TWTHEME_CONFIG"); env != "" {
		return env
	}
	return config.DefaultConfigFile
}

// initConfig initializes the configuration system
func initConfig() error {
	return config.InitConfig(configPath())
}

// initLedger opens the build ledger when it is enabled
func initLedger() error {
	if !config.GetBool("database.enabled") {
		return nil
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}

// loadPlugin reads the config and builds a plugin over the working directory
func loadPlugin() (*plugin.Plugin, error) {
	if err := initConfig(); err != nil {
		return nil, err
	}
	if db.GetDB() == nil {
		if err := initLedger(); err != nil {
			ui.LogStatus("warning", fmt.Sprintf("build ledger disabled: %v", err))
		}
	}

	opts, err := config.LoadOptions()
	if err != nil {
		return nil, err
	}

	p := plugin.New(opts, afero.NewOsFs())
	p.Recorder = recordBuild(opts)
	return p, nil
}

func recordBuild(opts config.Options) plugin.Recorder {
	return func(kind, path string, overrides themes.OverrideSet, css string) {
		b := db.NewBuild(kind, path, opts.Prefix, opts.Colors, overrides, css)
		if err := db.RecordBuild(b); err != nil {
			ui.LogStatus("warning", err.Error())
		}
	}
}
