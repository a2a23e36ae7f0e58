package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/twtheme/internal/db"
	"github.com/thatcatcamp/twtheme/internal/models"
)

var buildsCmd = &cobra.Command{
	Use:   "builds",
	Short: "Inspect the build ledger",
}

var buildsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently emitted theme artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := initLedger(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		builds, err := db.ListBuilds(limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(builds) == 0 {
			fmt.Println("No builds recorded")
			return
		}
		printBuilds(builds)
	},
}

var buildsLatestCmd = &cobra.Command{
	Use:   "latest <kind>",
	Short: "Show the newest build of a kind (tailwind, plain, intellisense, transform)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := initLedger(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		b, err := db.LatestBuild(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: no %s build recorded: %v\n", args[0], err)
			os.Exit(1)
		}
		printBuilds([]models.Build{*b})
		fmt.Printf("\nRoles:     %s\n", b.Roles)
		if b.Overrides != "" {
			fmt.Printf("Overrides: %s\n", b.Overrides)
		}
	},
}

func printBuilds(builds []models.Build) {
	fmt.Printf("%-5s %-20s %-13s %-8s %-12s %s\n", "ID", "CREATED", "KIND", "BYTES", "SHA256", "PATH")
	for _, b := range builds {
		sum := b.Checksum
		if len(sum) > 12 {
			sum = sum[:12]
		}
		fmt.Printf("%-5d %-20s %-13s %-8d %-12s %s\n",
			b.ID, b.CreatedAt.Format("2006-01-02 15:04:05"), b.Kind, b.Bytes, sum, b.Path)
	}
}

func init() {
	buildsListCmd.Flags().Int("limit", 20, "number of builds to show (0 for all)")
	buildsCmd.AddCommand(buildsListCmd)
	buildsCmd.AddCommand(buildsLatestCmd)
	rootCmd.AddCommand(buildsCmd)
}
