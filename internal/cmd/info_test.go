package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repoman/pkg/github"
)

func TestInfoCommand(t *testing.T) {
	// 15 repositories, 3 archived, 5 private
	repos := make([]*github.Repository, 0, 15)
	for i := 0; i < 15; i++ {
		repos = append(repos, &github.Repository{
			ID:       int64(i + 1),
			Name:     fmt.Sprintf("repo-%02d", i+1),
			FullName: fmt.Sprintf("octocat/repo-%02d", i+1),
			Archived: i < 3,
			Private:  i < 5,
		})
	}

	client := &MockAPIClient{}
	client.On("GetAuthenticatedUser").Return("octocat", nil).Once()
	client.On("ListRepositories", github.ListFilter{}).Return(repos, nil)
	withStubSession(t, client)

	output, err := captureOutput(t, func() error {
		return infoCmd.RunE(infoCmd, nil)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "📊 Account summary for octocat:")
	assert.Contains(t, output, "• Total repositories: 15")
	assert.Contains(t, output, "• Active: 12")
	assert.Contains(t, output, "• Archived: 3")
	assert.Contains(t, output, "• Public: 10")
	assert.Contains(t, output, "• Private: 5")
	client.AssertExpectations(t)
}

func TestInfoCommandEmptyAccount(t *testing.T) {
	client := &MockAPIClient{}
	client.On("GetAuthenticatedUser").Return("octocat", nil).Once()
	client.On("ListRepositories", github.ListFilter{}).Return([]*github.Repository{}, nil)
	withStubSession(t, client)

	output, err := captureOutput(t, func() error {
		return infoCmd.RunE(infoCmd, nil)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "• Total repositories: 0")
}

func TestInfoCommandIdentityFailure(t *testing.T) {
	client := &MockAPIClient{}
	client.On("GetAuthenticatedUser").Return("", &github.GitHubError{
		Type:    github.ErrorTypeAuth,
		Message: "Bad credentials",
	})
	withStubSession(t, client)

	_, err := captureOutput(t, func() error {
		return infoCmd.RunE(infoCmd, nil)
	})

	require.Error(t, err, "an authentication failure terminates the command")
	assert.True(t, github.IsAuthentication(err))
	client.AssertNotCalled(t, "ListRepositories")
}
