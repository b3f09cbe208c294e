package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repoman/pkg/github"
)

func TestBulkVisibilityExplicitPrivate(t *testing.T) {
	bulkVisibilityTo = "private"
	t.Cleanup(func() { bulkVisibilityTo = "" })
	scriptAnswers(t, "y\n")

	// Only public repositories are candidates for going private
	public := []*github.Repository{
		testRepo("octocat/tools", false, false),
		testRepo("octocat/website", false, false),
	}

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Visibility: github.VisibilityPublic}).Return(public, nil)
	client.On("UpdateVisibility", "octocat", "tools", true).Return(testRepo("octocat/tools", true, false), nil)
	client.On("UpdateVisibility", "octocat", "website", true).Return(testRepo("octocat/website", true, false), nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{multi: []string{"octocat/tools", "octocat/website"}})

	output, err := captureOutput(t, func() error {
		return bulkVisibilityCmd.RunE(bulkVisibilityCmd, nil)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Selected 2 repositories to make private:")
	assert.Contains(t, output, "✅ Make private succeeded for 2 repositories:")
	assert.Contains(t, output, "📊 Summary: 2 succeeded, 0 failed")
	client.AssertExpectations(t)
}

func TestBulkVisibilityExplicitPublic(t *testing.T) {
	bulkVisibilityTo = "public"
	t.Cleanup(func() { bulkVisibilityTo = "" })
	scriptAnswers(t, "y\n")

	private := []*github.Repository{testRepo("octocat/secrets", true, false)}

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Visibility: github.VisibilityPrivate}).Return(private, nil)
	client.On("UpdateVisibility", "octocat", "secrets", false).Return(testRepo("octocat/secrets", false, false), nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{multi: []string{"octocat/secrets"}})

	output, err := captureOutput(t, func() error {
		return bulkVisibilityCmd.RunE(bulkVisibilityCmd, nil)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "✅ Make public succeeded for 1 repository:")
	client.AssertExpectations(t)
}

func TestBulkVisibilityInteractiveDirection(t *testing.T) {
	bulkVisibilityTo = ""
	scriptAnswers(t, "y\n")
	withStubDirectionFinder(t, &stubDirectionFinder{choice: "make-public"})

	private := []*github.Repository{testRepo("octocat/secrets", true, false)}

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Visibility: github.VisibilityPrivate}).Return(private, nil)
	client.On("UpdateVisibility", "octocat", "secrets", false).Return(testRepo("octocat/secrets", false, false), nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{multi: []string{"octocat/secrets"}})

	_, err := captureOutput(t, func() error {
		return bulkVisibilityCmd.RunE(bulkVisibilityCmd, nil)
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestBulkVisibilityDirectionCancelled(t *testing.T) {
	bulkVisibilityTo = ""
	withStubDirectionFinder(t, &stubDirectionFinder{err: assert.AnError})

	client := &MockAPIClient{}
	withStubSession(t, client)

	output, err := captureOutput(t, func() error {
		return bulkVisibilityCmd.RunE(bulkVisibilityCmd, nil)
	})

	require.NoError(t, err, "cancelling the direction pick is a clean no-op")
	assert.Contains(t, output, "Cancelled.")
	client.AssertNotCalled(t, "ListRepositories")
	client.AssertNotCalled(t, "UpdateVisibility")
}

func TestBulkVisibilityFailureIsolation(t *testing.T) {
	bulkVisibilityTo = "private"
	t.Cleanup(func() { bulkVisibilityTo = "" })
	scriptAnswers(t, "y\n")

	public := []*github.Repository{
		testRepo("octocat/tools", false, false),
		testRepo("octocat/website", false, false),
	}

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Visibility: github.VisibilityPublic}).Return(public, nil)
	client.On("UpdateVisibility", "octocat", "tools", true).Return(nil, &github.GitHubError{
		Type:    github.ErrorTypeNetwork,
		Message: "GitHub API is unavailable",
	})
	client.On("UpdateVisibility", "octocat", "website", true).Return(testRepo("octocat/website", true, false), nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{multi: []string{"octocat/tools", "octocat/website"}})

	output, err := captureOutput(t, func() error {
		return bulkVisibilityCmd.RunE(bulkVisibilityCmd, nil)
	})

	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "UpdateVisibility", 2)
	assert.Contains(t, output, "• octocat/tools: GitHub API is unavailable")
	assert.Contains(t, output, "📊 Summary: 1 succeeded, 1 failed")
}

func TestBulkVisibilityBadToFlag(t *testing.T) {
	bulkVisibilityTo = "internal"
	t.Cleanup(func() { bulkVisibilityTo = "" })

	client := &MockAPIClient{}
	withStubSession(t, client)

	output, err := captureOutput(t, func() error {
		return bulkVisibilityCmd.RunE(bulkVisibilityCmd, nil)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "❌")
	assert.Contains(t, output, "must be public or private")
	client.AssertNotCalled(t, "ListRepositories")
}
