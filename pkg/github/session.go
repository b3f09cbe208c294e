package github

import "strings"

// Session carries the API client and the lazily-cached username for one
// process invocation. The username is fetched at most once and is
// write-once-then-read-only; the session holds no external resource handle,
// so there is no teardown.
type Session struct {
	client   APIClient
	username string
}

// NewSession creates a session around an API client
func NewSession(client APIClient) *Session {
	return &Session{client: client}
}

// NewSessionWithUsername creates a session with the username pre-resolved,
// for configurations that pin the account name explicitly.
func NewSessionWithUsername(client APIClient, username string) *Session {
	return &Session{client: client, username: strings.TrimSpace(username)}
}

// Client returns the underlying API client
func (s *Session) Client() APIClient {
	return s.client
}

// ResolveUsername returns the cached username, querying the authenticated
// identity endpoint on first use. A bad credential surfaces here as an
// authentication error.
func (s *Session) ResolveUsername() (string, error) {
	if s.username != "" {
		return s.username, nil
	}

	login, err := s.client.GetAuthenticatedUser()
	if err != nil {
		return "", err
	}
	if login == "" {
		return "", &GitHubError{
			Type:    ErrorTypeAuth,
			Message: "identity endpoint returned an empty login",
		}
	}

	s.username = login
	return s.username, nil
}

// QualifyName resolves a repository argument to (owner, name). Bare names
// resolve against the session's username; "owner/name" forms pass through.
func (s *Session) QualifyName(arg string) (owner, name string, err error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", "", NewValidationError("name", "repository name must not be empty")
	}

	if i := strings.IndexByte(arg, '/'); i >= 0 {
		owner, name = arg[:i], arg[i+1:]
		if owner == "" || name == "" || strings.ContainsRune(name, '/') {
			return "", "", NewValidationError("name", "expected NAME or OWNER/NAME")
		}
		return owner, name, nil
	}

	owner, err = s.ResolveUsername()
	if err != nil {
		return "", "", err
	}
	return owner, arg, nil
}

// SearchOwned searches repositories owned by the session identity. The
// empty-query check runs before the username resolution so no network
// traffic happens for rejected input.
func (s *Session) SearchOwned(query string) ([]*Repository, error) {
	if strings.TrimSpace(query) == "" {
		return nil, NewValidationError("query", "search query must not be empty")
	}

	owner, err := s.ResolveUsername()
	if err != nil {
		return nil, err
	}
	return s.client.SearchRepositories(owner, query)
}
