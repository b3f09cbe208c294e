package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "repoman",
	Short: "A CLI tool to manage the lifecycle of your GitHub repositories",
	Long: `Repoman is a command-line tool for GitHub repository housekeeping.
It lists, searches and inspects the repositories visible to you, and changes
their visibility, archives, unarchives or deletes them, one at a time or in
bulk with per-repository failure isolation.

Credentials come from the GITHUB_TOKEN environment variable or from
~/.repoman/config.yaml; run 'repoman init' to create the config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Classified operation failures are rendered
// by the commands themselves and exit zero; only startup failures, unknown
// commands and unclassified errors reach this point and exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(visibilityCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(unarchiveCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(bulkDeleteCmd)
	rootCmd.AddCommand(bulkArchiveCmd)
	rootCmd.AddCommand(bulkVisibilityCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(initCmd)
}
