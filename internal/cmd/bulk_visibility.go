package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"repoman/pkg/fuzzy"
	"repoman/pkg/github"
)

var bulkVisibilityTo string

var bulkVisibilityCmd = &cobra.Command{
	Use:   "bulk-visibility",
	Short: "Change the visibility of several repositories in one pass",
	Long: `Bulk-visibility changes several repositories to public or to private in
one pass. The direction comes from --to or an interactive pick, and the
candidate listing is filtered by the server so only repositories the change
would affect are offered. One confirmation guards the run; failures on
individual repositories never stop the others.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, explicit, err := parseVisibilityTarget(bulkVisibilityTo)
		if err != nil {
			return reportError(err)
		}

		sess, err := openSession()
		if err != nil {
			return err
		}

		if !explicit {
			target, err = pickVisibilityDirection()
			if err != nil {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		// Only repositories on the other side of the change are candidates;
		// the server applies this filter, not the client.
		filter := github.ListFilter{Visibility: github.VisibilityPublic}
		action := "make private"
		if !target {
			filter.Visibility = github.VisibilityPrivate
			action = "make public"
		}

		repos, err := multiSelectRepositories(sess, filter, "Visibility>")
		if err != nil {
			return reportError(err)
		}
		if len(repos) == 0 {
			return nil
		}

		runBulk(action, fullNames(repos), false, describeByName(repos), func(name string) error {
			owner, repo, _ := strings.Cut(name, "/")
			_, err := sess.Client().UpdateVisibility(owner, repo, target)
			return err
		})
		return nil
	},
}

// newDirectionFinder is swapped in tests to script the direction pick.
var newDirectionFinder = func(prompt string) fuzzy.InteractiveFinder {
	return fuzzy.NewInteractive(prompt)
}

// pickVisibilityDirection asks which way the change goes. The returned
// boolean is the target value of the private flag.
func pickVisibilityDirection() (bool, error) {
	finder := newDirectionFinder("Direction>")
	err := finder.SetOptions([]fuzzy.Option{
		{Value: "make-private", Description: "Hide repositories that are currently public"},
		{Value: "make-public", Description: "Expose repositories that are currently private"},
	})
	if err != nil {
		return false, err
	}

	choice, err := finder.Select()
	if err != nil {
		return false, err
	}
	return choice == "make-private", nil
}

func init() {
	bulkVisibilityCmd.Flags().StringVar(&bulkVisibilityTo, "to", "", "Target visibility (public or private); default asks interactively")
}
