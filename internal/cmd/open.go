package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"repoman/internal/browser"
	"repoman/pkg/github"
)

// browserOpener is swapped in tests to avoid launching a real browser.
var browserOpener browser.Opener = browser.NewOpener()

var openCmd = &cobra.Command{
	Use:   "open [name]",
	Short: "Open a repository's page in the browser",
	Long: `Open launches the system browser on the repository's web page. With no
argument the repository is picked interactively.`,
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
		if repo.HTMLURL == "" {
			return reportError(github.NewValidationError("url", fmt.Sprintf("%s has no web URL", repo.FullName)))
		}

		fmt.Printf("🌐 Opening %s\n", repo.HTMLURL)
		if err := browserOpener.Open(repo.HTMLURL); err != nil {
			fmt.Printf("Could not launch a browser: %v\n", err)
			fmt.Printf("Open the page manually: %s\n", repo.HTMLURL)
		}
		return nil
	},
}
