package cmd

import (
	"github.com/spf13/cobra"

	"repoman/pkg/github"
)

var (
	listDetails    bool
	listVisibility string
	listState      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the repositories of the authenticated account",
	Long: `List walks the repository listing to the last page, so the output always
covers the complete set. Each repository prints on one line; pass --details
for the extended per-repository fields.

The --visibility filter is applied by the server, the --state filter is
applied after the fetch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := parseListFilter(listVisibility, listState)
		if err != nil {
			return reportError(err)
		}

		sess, err := openSession()
		if err != nil {
			return err
		}

		repos, err := sess.Client().ListRepositories(filter)
		if err != nil {
			return reportError(err)
		}

		renderRepositoryList(repos, listDetails)
		return nil
	},
}

// parseListFilter validates the flag values before any session is opened
func parseListFilter(visibility, state string) (github.ListFilter, error) {
	var filter github.ListFilter

	switch v := github.VisibilityFilter(visibility); v {
	case github.VisibilityAll, github.VisibilityPublic, github.VisibilityPrivate:
		filter.Visibility = v
	default:
		return filter, github.NewValidationError("visibility", "must be one of: all, public, private")
	}

	switch l := github.LifecycleFilter(state); l {
	case github.LifecycleAll, github.LifecycleActive, github.LifecycleArchived:
		filter.Lifecycle = l
	default:
		return filter, github.NewValidationError("state", "must be one of: all, active, archived")
	}

	return filter, nil
}

func init() {
	listCmd.Flags().BoolVar(&listDetails, "details", false, "Show the extended fields for every repository")
	listCmd.Flags().StringVar(&listVisibility, "visibility", "all", "Filter by visibility (all, public, private)")
	listCmd.Flags().StringVar(&listState, "state", "all", "Filter by lifecycle state (all, active, archived)")
}
