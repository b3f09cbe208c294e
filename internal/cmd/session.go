package cmd

import (
	"fmt"
	"os"

	"repoman/pkg/config"
	"repoman/pkg/github"
)

// newAPIClient builds the real client; tests swap this out to inject mocks
var newAPIClient = func(token string) github.APIClient {
	return github.NewClient(token)
}

// openSession loads the configuration, resolves the token and builds the
// session every credentialed command runs against. A missing or malformed
// credential is an unrecoverable startup error.
func openSession() (*github.Session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	token, err := github.ResolveToken(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n\n%s\n", err, github.GetAuthInstructions())
		return nil, err
	}

	client := newAPIClient(token)
	if cfg.GitHub.Owner != "" {
		return github.NewSessionWithUsername(client, cfg.GitHub.Owner), nil
	}
	return github.NewSession(client), nil
}
