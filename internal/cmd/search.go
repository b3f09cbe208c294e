package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchDetails bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search repositories owned by the authenticated account",
	Long: `Search matches the query against name, description and topics of the
repositories you own. Results from other accounts never appear.

A query that is empty after trimming whitespace is rejected before any
request is made.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}

		repos, err := sess.SearchOwned(args[0])
		if err != nil {
			return reportError(err)
		}

		if len(repos) == 0 {
			fmt.Printf("No repositories match %q.\n", args[0])
			return nil
		}

		renderRepositoryList(repos, searchDetails)
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchDetails, "details", false, "Show the extended fields for every match")
}
