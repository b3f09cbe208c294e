package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"repoman/pkg/github"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [name]",
	Short: "Archive a repository (make it read-only)",
	Long: `Archive marks a repository read-only. Archiving a repository that is
already archived succeeds without changing anything; use 'repoman unarchive'
to reverse it.

With no argument the repository is picked from the active set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetArchived(args, true)
	},
}

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive [name]",
	Short: "Unarchive a repository (make it writable again)",
	Long: `Unarchive restores a read-only repository to its writable state.
Unarchiving a repository that is not archived succeeds without changing
anything.

With no argument the repository is picked from the archived set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetArchived(args, false)
	},
}

// runSetArchived drives both directions of the archived flag. Targets
// already in the requested state succeed as no-ops without a request.
func runSetArchived(args []string, archived bool) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	// When picking interactively, only offer repositories the operation
	// would actually change.
	filter := github.ListFilter{Lifecycle: github.LifecycleActive}
	if !archived {
		filter.Lifecycle = github.LifecycleArchived
	}

	repo, err := resolveOrSelect(sess, args, filter, "Repository>")
	if err != nil {
		return reportError(err)
	}
	if repo == nil {
		return nil
	}

	if repo.Archived == archived {
		fmt.Printf("✅ %s is already %s; nothing to do.\n", repo.FullName, lifecycleWord(repo))
		return nil
	}

	updated, err := sess.Client().SetArchived(repo.Owner(), repo.Name, archived)
	if err != nil {
		return reportError(err)
	}

	if updated.Archived {
		fmt.Printf("✅ Archived %s. It is now read-only.\n", updated.FullName)
	} else {
		fmt.Printf("✅ Unarchived %s. It is writable again.\n", updated.FullName)
	}
	return nil
}
