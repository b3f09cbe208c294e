package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"repoman/pkg/github"
)

var bulkArchiveCmd = &cobra.Command{
	Use:   "bulk-archive",
	Short: "Archive several repositories in one pass",
	Long: `Bulk-archive offers the active repositories for selection, shows the
selection for review and asks for one confirmation. The archives then run
one after another in selection order; a failure on one repository never
stops the others. Archiving is reversible with 'repoman unarchive'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}

		filter := github.ListFilter{Lifecycle: github.LifecycleActive}
		repos, err := multiSelectRepositories(sess, filter, "Archive>")
		if err != nil {
			return reportError(err)
		}
		if len(repos) == 0 {
			return nil
		}

		runBulk("archive", fullNames(repos), false, describeByName(repos), func(name string) error {
			owner, repo, _ := strings.Cut(name, "/")
			_, err := sess.Client().SetArchived(owner, repo, true)
			return err
		})
		return nil
	},
}
