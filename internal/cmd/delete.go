package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"repoman/pkg/github"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Permanently delete a repository",
	Long: `Delete removes a repository permanently. There is no undo: code, issues,
stars and fork links are gone once the deletion goes through, so the
repository is shown in full and the deletion must be confirmed.

With no argument the repository is picked interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}

		repo, err := resolveOrSelect(sess, args, github.ListFilter{}, "Repository>")
		if err != nil {
			return reportError(err)
		}
		if repo == nil {
			return nil
		}

		fmt.Println("You are about to permanently delete:")
		fmt.Println()
		renderRepositoryDetails(repo)
		fmt.Println()

		prompt := fmt.Sprintf("⚠️  Delete %s forever? This cannot be undone. (y/N): ", repo.FullName)
		if !confirmPrompt(promptInput, prompt) {
			fmt.Println("Cancelled. Nothing was deleted.")
			return nil
		}

		if err := sess.Client().DeleteRepository(repo.Owner(), repo.Name); err != nil {
			return reportError(err)
		}

		fmt.Printf("✅ Deleted %s.\n", repo.FullName)
		return nil
	},
}
