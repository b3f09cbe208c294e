package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"repoman/pkg/github"
)

var bulkDeleteCmd = &cobra.Command{
	Use:   "bulk-delete",
	Short: "Permanently delete several repositories in one pass",
	Long: `Bulk-delete walks through selecting repositories, reviewing the selection
and confirming twice; the second confirmation requires typing the word
"delete". The deletions then run one after another in selection order. A
failure on one repository never stops the others, and the final report
lists the outcome for every selected repository.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}

		repos, err := multiSelectRepositories(sess, github.ListFilter{}, "Delete>")
		if err != nil {
			return reportError(err)
		}
		if len(repos) == 0 {
			return nil
		}

		runBulk("delete", fullNames(repos), true, describeByName(repos), func(name string) error {
			owner, repo, _ := strings.Cut(name, "/")
			return sess.Client().DeleteRepository(owner, repo)
		})
		return nil
	},
}
