package github

import (
	"os"
	"strings"

	"repoman/pkg/config"
)

// TokenEnvVar is the environment variable consulted before the config file
const TokenEnvVar = "GITHUB_TOKEN"

// ResolveToken returns the access token from the environment or the config
// file, in that order. A missing token is an authentication error: the tool
// cannot start without a credential.
func ResolveToken(cfg *config.Config) (string, error) {
	if token := strings.TrimSpace(os.Getenv(TokenEnvVar)); token != "" {
		return token, nil
	}

	if cfg != nil && strings.TrimSpace(cfg.GitHub.Token) != "" {
		return strings.TrimSpace(cfg.GitHub.Token), nil
	}

	return "", &GitHubError{
		Type:    ErrorTypeAuth,
		Message: "no GitHub token found: set " + TokenEnvVar + " or add github.token to " + config.DefaultPathHint,
	}
}

// GetAuthInstructions returns setup guidance printed alongside fatal
// authentication failures.
func GetAuthInstructions() string {
	return `GitHub authentication is required. Set it up with one of:

1. Environment variable:
   export GITHUB_TOKEN="your_personal_access_token"

2. Configuration file (` + config.DefaultPathHint + `):
   github:
     token: "your_personal_access_token"

To create a personal access token:
1. Go to GitHub Settings > Developer settings > Personal access tokens
2. Generate a new token (classic)
3. Select the repo scope; add delete_repo if you want to delete repositories
4. Copy the token into one of the locations above`
}
