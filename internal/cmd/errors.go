package cmd

import (
	"fmt"
	"os"

	"repoman/pkg/github"
)

// reportError is the command-level error boundary. Classified operation
// failures (validation, not found, permission, rate limit, network) are
// rendered as user-facing messages and swallowed so the process exits zero.
// Authentication failures and unclassified errors propagate and terminate
// the process with a non-zero exit code.
func reportError(err error) error {
	if err == nil {
		return nil
	}

	if github.IsAuthentication(err) {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n\n%s\n", err, github.GetAuthInstructions())
		return err
	}

	if github.IsClassified(err) {
		fmt.Printf("❌ %v\n", err)
		return nil
	}

	return err
}
