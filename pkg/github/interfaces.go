package github

// APIClient defines the interface for the repository lifecycle operations.
// Commands consume this interface rather than the concrete Client so tests
// can substitute a mock.
type APIClient interface {
	// Identity
	GetAuthenticatedUser() (string, error)

	// Listing and lookup
	ListRepositories(filter ListFilter) ([]*Repository, error)
	SearchRepositories(owner, query string) ([]*Repository, error)
	GetRepository(owner, name string) (*Repository, error)
	GetRepositoryStatistics(owner, name string) (*RepositoryStats, error)

	// Mutation
	UpdateVisibility(owner, name string, private bool) (*Repository, error)
	SetArchived(owner, name string, archived bool) (*Repository, error)
	DeleteRepository(owner, name string) error
}

// Ensure the concrete client satisfies the interface
var _ APIClient = (*Client)(nil)
