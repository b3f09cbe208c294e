package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"repoman/pkg/github"
)

var visibilityTo string

var visibilityCmd = &cobra.Command{
	Use:   "visibility [name]",
	Short: "Change a repository between private and public",
	Long: `Visibility toggles a repository's private flag, or sets it explicitly
with --to. Setting the visibility a repository already has succeeds without
changing anything. Making a private repository public asks for confirmation
first, because it exposes the code to everyone.

With no argument the repository is picked interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, explicit, err := parseVisibilityTarget(visibilityTo)
		if err != nil {
			return reportError(err)
		}

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

		if !explicit {
			target = !repo.Private
		}

		fmt.Printf("📦 %s is %s.\n", repo.FullName, visibilityWord(repo))

		if repo.Private == target {
			fmt.Printf("✅ Already %s; nothing to do.\n", visibilityWord(repo))
			return nil
		}

		if !target {
			prompt := fmt.Sprintf("Make %s public? Everyone will be able to see it. (y/N): ", repo.FullName)
			if !confirmPrompt(promptInput, prompt) {
				fmt.Println("Cancelled. Visibility unchanged.")
				return nil
			}
		}

		updated, err := sess.Client().UpdateVisibility(repo.Owner(), repo.Name, target)
		if err != nil {
			return reportError(err)
		}

		fmt.Printf("✅ %s is now %s.\n", updated.FullName, visibilityWord(updated))
		return nil
	},
}

// parseVisibilityTarget maps the --to flag onto the private flag. The
// boolean result is the target value of Private, so "private" means true.
func parseVisibilityTarget(to string) (private bool, explicit bool, err error) {
	switch to {
	case "":
		return false, false, nil
	case "private":
		return true, true, nil
	case "public":
		return false, true, nil
	default:
		return false, false, github.NewValidationError("to", "must be public or private")
	}
}

func init() {
	visibilityCmd.Flags().StringVar(&visibilityTo, "to", "", "Target visibility (public or private); default toggles")
}
