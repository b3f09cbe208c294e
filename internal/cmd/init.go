package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repoman/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the repoman configuration file",
	Long: `Init creates ~/.repoman/config.yaml with a placeholder token. The file is
created with owner-only permissions; the GITHUB_TOKEN environment variable
takes precedence over it when both are set.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("⚠️  Configuration file already exists at: %s\n", configPath)
		if !confirmPrompt(promptInput, "Do you want to overwrite it? (y/N): ") {
			fmt.Println("Configuration initialization cancelled.")
			return nil
		}
	}

	defaultConfig := &config.Config{
		GitHub: config.GitHubConfig{
			Token: "ghp_your-token-here",
		},
	}

	if err := defaultConfig.SaveConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("✅ Configuration file created at: %s\n", configPath)
	fmt.Println("📝 Please edit the file and paste a token with the repo and delete_repo scopes.")

	return nil
}
