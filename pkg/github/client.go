package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// Client implements the APIClient interface using the GitHub REST API.
// Every operation issues exactly one attempt per call; failures are
// classified into GitHubError at this boundary and never retried.
type Client struct {
	client *github.Client
	ctx    context.Context
}

// NewClient creates a new GitHub API client with the provided token
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
		ctx:    ctx,
	}
}

// NewClientWithBaseURL creates a client pointed at an alternate API base URL.
// Used by tests to target a local stub server.
func NewClientWithBaseURL(token, baseURL string) (*Client, error) {
	c := NewClient(token)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	c.client.BaseURL = u

	return c, nil
}

// GetAuthenticatedUser returns the login of the identity the token belongs to
func (c *Client) GetAuthenticatedUser() (string, error) {
	user, _, err := c.client.Users.Get(c.ctx, "")
	if err != nil {
		return "", WrapError(err, "authenticated user")
	}
	return user.GetLogin(), nil
}

// ListRepositories returns every repository visible to the authenticated
// identity, following pagination to completion. The visibility filter is
// pushed down to the provider; the lifecycle filter is applied client-side
// because the list endpoint has no archived parameter.
func (c *Client) ListRepositories(filter ListFilter) ([]*Repository, error) {
	filter = filter.Normalize()

	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Visibility:  string(filter.Visibility),
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []*Repository
	for {
		repos, resp, err := c.client.Repositories.ListByAuthenticatedUser(c.ctx, opts)
		if err != nil {
			return nil, WrapError(err, "repository listing")
		}

		for _, repo := range repos {
			all = append(all, convertRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	switch filter.Lifecycle {
	case LifecycleActive:
		return Filter(all, IsActive), nil
	case LifecycleArchived:
		return Filter(all, IsArchived), nil
	default:
		return all, nil
	}
}

// SearchRepositories searches repositories owned by the given user. An empty
// query (after trimming) is rejected before any request is issued.
func (c *Client) SearchRepositories(owner, query string) ([]*Repository, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("query", "search query must not be empty")
	}
	if strings.TrimSpace(owner) == "" {
		return nil, NewValidationError("owner", "owner must not be empty")
	}

	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	scoped := fmt.Sprintf("%s user:%s", query, owner)

	var all []*Repository
	for {
		result, resp, err := c.client.Search.Repositories(c.ctx, scoped, opts)
		if err != nil {
			return nil, WrapError(err, fmt.Sprintf("repository search %q", query))
		}

		for _, repo := range result.Repositories {
			all = append(all, convertRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// GetRepository fetches one repository with its full detail fields
func (c *Client) GetRepository(owner, name string) (*Repository, error) {
	if err := validateTarget(owner, name); err != nil {
		return nil, err
	}

	repo, _, err := c.client.Repositories.Get(c.ctx, owner, name)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}

	return convertRepository(repo), nil
}

// DeleteRepository permanently deletes a repository. This is a destructive
// operation that cannot be undone.
func (c *Client) DeleteRepository(owner, name string) error {
	if err := validateTarget(owner, name); err != nil {
		return err
	}

	if _, err := c.client.Repositories.Delete(c.ctx, owner, name); err != nil {
		return WrapError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}
	return nil
}

// UpdateVisibility sets the private flag on a repository. Setting the
// current value is a remote no-op but still round-trips.
func (c *Client) UpdateVisibility(owner, name string, private bool) (*Repository, error) {
	if err := validateTarget(owner, name); err != nil {
		return nil, err
	}

	edit := &github.Repository{Private: github.Bool(private)}
	updated, _, err := c.client.Repositories.Edit(c.ctx, owner, name, edit)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}

	return convertRepository(updated), nil
}

// SetArchived sets the archived flag on a repository, with the same
// idempotence contract as UpdateVisibility.
func (c *Client) SetArchived(owner, name string, archived bool) (*Repository, error) {
	if err := validateTarget(owner, name); err != nil {
		return nil, err
	}

	edit := &github.Repository{Archived: github.Bool(archived)}
	updated, _, err := c.client.Repositories.Edit(c.ctx, owner, name, edit)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}

	return convertRepository(updated), nil
}

// GetRepositoryStatistics aggregates contributor count, language byte counts
// and the latest commit via three independent sub-fetches. The sub-fetches
// run concurrently and each degrades to a zero value on failure; an empty
// repository yields a nil LastCommit rather than an error.
func (c *Client) GetRepositoryStatistics(owner, name string) (*RepositoryStats, error) {
	if err := validateTarget(owner, name); err != nil {
		return nil, err
	}

	stats := &RepositoryStats{}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		stats.Contributors = c.countContributors(owner, name)
	}()
	go func() {
		defer wg.Done()
		stats.Languages = c.fetchLanguages(owner, name)
	}()
	go func() {
		defer wg.Done()
		stats.LastCommit = c.fetchLastCommit(owner, name)
	}()

	wg.Wait()
	return stats, nil
}

// countContributors counts contributors across all pages, 0 on failure
func (c *Client) countContributors(owner, name string) int {
	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	count := 0
	for {
		contributors, resp, err := c.client.Repositories.ListContributors(c.ctx, owner, name, opts)
		if err != nil {
			return 0
		}
		count += len(contributors)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return count
}

// fetchLanguages returns bytes of code per language, nil on failure
func (c *Client) fetchLanguages(owner, name string) map[string]int {
	languages, _, err := c.client.Repositories.ListLanguages(c.ctx, owner, name)
	if err != nil {
		return nil
	}
	return languages
}

// fetchLastCommit returns the most recent commit, nil when the history is
// empty or unreadable. GitHub answers 409 for commit listings on empty
// repositories; that case degrades like any other.
func (c *Client) fetchLastCommit(owner, name string) *CommitSummary {
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}

	commits, _, err := c.client.Repositories.ListCommits(c.ctx, owner, name, opts)
	if err != nil || len(commits) == 0 {
		return nil
	}

	latest := commits[0]
	summary := &CommitSummary{
		SHA:     latest.GetSHA(),
		Message: firstLine(latest.GetCommit().GetMessage()),
	}
	if commit := latest.GetCommit(); commit != nil && commit.GetAuthor() != nil {
		summary.Author = commit.GetAuthor().GetName()
		summary.When = commit.GetAuthor().GetDate().Time
	}
	if summary.Author == "" {
		summary.Author = latest.GetAuthor().GetLogin()
	}

	return summary
}

// validateTarget rejects empty owner or name before any request is issued
func validateTarget(owner, name string) error {
	if strings.TrimSpace(owner) == "" {
		return NewValidationError("owner", "owner must not be empty")
	}
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "repository name must not be empty")
	}
	return nil
}

// convertRepository maps a provider repository onto the internal schema.
// Absent fields default to zero values; nothing downstream touches the
// provider's types.
func convertRepository(repo *github.Repository) *Repository {
	return &Repository{
		ID:            repo.GetID(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Private:       repo.GetPrivate(),
		Archived:      repo.GetArchived(),
		Fork:          repo.GetFork(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		Language:      repo.GetLanguage(),
		Topics:        repo.Topics,
		HTMLURL:       repo.GetHTMLURL(),
		CloneURL:      repo.GetCloneURL(),
		CreatedAt:     repo.GetCreatedAt().Time,
		UpdatedAt:     repo.GetUpdatedAt().Time,
		DefaultBranch: repo.GetDefaultBranch(),
		SizeKB:        repo.GetSize(),
		OpenIssues:    repo.GetOpenIssuesCount(),
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
