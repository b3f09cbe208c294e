package cmd

import (
	"github.com/spf13/cobra"

	"repoman/pkg/github"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show aggregate counts over all repositories",
	Long: `Info fetches the complete repository listing and prints the account level
counts: total, active, archived, public, private, forks and stars earned.
Active plus archived always equals the total, as does public plus private.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}

		user, err := sess.ResolveUsername()
		if err != nil {
			return reportError(err)
		}

		repos, err := sess.Client().ListRepositories(github.ListFilter{})
		if err != nil {
			return reportError(err)
		}

		renderAccountSummary(user, github.Summarize(repos))
		return nil
	},
}
