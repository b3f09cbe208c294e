package cmd

import (
	"github.com/spf13/cobra"

	"repoman/pkg/github"
)

var statsCmd = &cobra.Command{
	Use:   "stats [name]",
	Short: "Show contributor, language and commit statistics for a repository",
	Long: `Stats fetches contributor count, language byte counts and the most recent
commit for one repository. The three lookups run concurrently and degrade
independently: a failed lookup shows as empty rather than aborting the rest.
A repository with no commits reports an empty history, not an error.

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

		stats, err := sess.Client().GetRepositoryStatistics(repo.Owner(), repo.Name)
		if err != nil {
			return reportError(err)
		}

		renderRepositoryDetails(repo)
		renderStats(repo.FullName, stats)
		return nil
	},
}
