package github

import "time"

// Repository represents a GitHub repository as seen by this tool. Provider
// responses are mapped into this shape at the client boundary; fields the
// provider omits stay at their zero values.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	Private     bool      `json:"private"`
	Archived    bool      `json:"archived"`
	Fork        bool      `json:"fork"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Language    string    `json:"language,omitempty"`
	Topics      []string  `json:"topics,omitempty"`
	HTMLURL     string    `json:"html_url"`
	CloneURL    string    `json:"clone_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Detail fields, populated only by single-repository fetches.
	DefaultBranch string `json:"default_branch,omitempty"`
	SizeKB        int    `json:"size_kb,omitempty"`
	OpenIssues    int    `json:"open_issues,omitempty"`
}

// Owner returns the owner half of the repository's full name.
func (r *Repository) Owner() string {
	for i := 0; i < len(r.FullName); i++ {
		if r.FullName[i] == '/' {
			return r.FullName[:i]
		}
	}
	return ""
}

// CommitSummary describes the most recent commit on a repository's default branch.
type CommitSummary struct {
	SHA     string    `json:"sha"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	When    time.Time `json:"when"`
}

// RepositoryStats aggregates the per-repository statistics sub-fetches.
// Each field degrades independently: a failed sub-fetch leaves its field
// zero/empty/nil rather than failing the aggregate.
type RepositoryStats struct {
	Contributors int            `json:"contributors"`
	Languages    map[string]int `json:"languages,omitempty"` // bytes of code per language
	LastCommit   *CommitSummary `json:"last_commit,omitempty"`
}

// VisibilityFilter narrows a listing by the private/public flag.
type VisibilityFilter string

const (
	VisibilityAll     VisibilityFilter = "all"
	VisibilityPublic  VisibilityFilter = "public"
	VisibilityPrivate VisibilityFilter = "private"
)

// LifecycleFilter narrows a listing by the archived flag.
type LifecycleFilter string

const (
	LifecycleAll      LifecycleFilter = "all"
	LifecycleActive   LifecycleFilter = "active"
	LifecycleArchived LifecycleFilter = "archived"
)

// ListFilter narrows ListRepositories results. Visibility is pushed down to
// the provider's list endpoint; the provider exposes no archived parameter,
// so Lifecycle is applied client-side after the full fetch.
type ListFilter struct {
	Visibility VisibilityFilter
	Lifecycle  LifecycleFilter
}

// Normalize maps zero values onto the "all" filters so callers can use the
// struct literal without spelling every field out.
func (f ListFilter) Normalize() ListFilter {
	if f.Visibility == "" {
		f.Visibility = VisibilityAll
	}
	if f.Lifecycle == "" {
		f.Lifecycle = LifecycleAll
	}
	return f
}

// AccountSummary holds aggregate counts over a full repository listing.
type AccountSummary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Archived int `json:"archived"`
	Public   int `json:"public"`
	Private  int `json:"private"`
	Forks    int `json:"forks"`
	Stars    int `json:"stars"`
}
