package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repoman/pkg/github"
)

func TestBulkArchiveCommand(t *testing.T) {
	scriptAnswers(t, "y\n")

	active := []*github.Repository{
		testRepo("octocat/tools", false, false),
		testRepo("octocat/playground", true, false),
	}

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Lifecycle: github.LifecycleActive}).Return(active, nil)
	client.On("SetArchived", "octocat", "tools", true).Return(testRepo("octocat/tools", false, true), nil)
	client.On("SetArchived", "octocat", "playground", true).Return(testRepo("octocat/playground", true, true), nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{multi: []string{"octocat/tools", "octocat/playground"}})

	output, err := captureOutput(t, func() error {
		return bulkArchiveCmd.RunE(bulkArchiveCmd, nil)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Selected 2 repositories to archive:")
	assert.Contains(t, output, "✅ Archive succeeded for 2 repositories:")
	assert.Contains(t, output, "📊 Summary: 2 succeeded, 0 failed")
	assert.NotContains(t, output, "This cannot be undone", "archiving is reversible, one confirmation is enough")
	client.AssertExpectations(t)
}

func TestBulkArchiveOnlyOffersActiveRepositories(t *testing.T) {
	scriptAnswers(t, "n\n")

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Lifecycle: github.LifecycleActive}).
		Return([]*github.Repository{testRepo("octocat/tools", false, false)}, nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{multi: []string{"octocat/tools"}})

	_, err := captureOutput(t, func() error {
		return bulkArchiveCmd.RunE(bulkArchiveCmd, nil)
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestBulkArchiveFailureIsolation(t *testing.T) {
	scriptAnswers(t, "y\n")

	active := []*github.Repository{
		testRepo("octocat/tools", false, false),
		testRepo("octocat/website", false, false),
	}

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Lifecycle: github.LifecycleActive}).Return(active, nil)
	client.On("SetArchived", "octocat", "tools", true).Return(nil, &github.GitHubError{
		Type:    github.ErrorTypePermission,
		Message: "Must have admin rights to Repository.",
	})
	client.On("SetArchived", "octocat", "website", true).Return(testRepo("octocat/website", false, true), nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{multi: []string{"octocat/tools", "octocat/website"}})

	output, err := captureOutput(t, func() error {
		return bulkArchiveCmd.RunE(bulkArchiveCmd, nil)
	})

	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "SetArchived", 2)
	assert.Contains(t, output, "• octocat/tools: Must have admin rights to Repository.")
	assert.Contains(t, output, "📊 Summary: 1 succeeded, 1 failed")
}

func TestBulkArchiveDeclined(t *testing.T) {
	scriptAnswers(t, "n\n")

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Lifecycle: github.LifecycleActive}).
		Return([]*github.Repository{testRepo("octocat/tools", false, false)}, nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{multi: []string{"octocat/tools"}})

	output, err := captureOutput(t, func() error {
		return bulkArchiveCmd.RunE(bulkArchiveCmd, nil)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled. No repositories were modified.")
	client.AssertNotCalled(t, "SetArchived")
}
