package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repoman/pkg/github"
)

func TestArchiveCommand(t *testing.T) {
	active := testRepo("octocat/tools", false, false)
	archived := testRepo("octocat/tools", false, true)

	client := &MockAPIClient{}
	client.On("GetRepository", "octocat", "tools").Return(active, nil)
	client.On("SetArchived", "octocat", "tools", true).Return(archived, nil)
	withStubSession(t, client)

	output, err := captureOutput(t, func() error {
		return archiveCmd.RunE(archiveCmd, []string{"octocat/tools"})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "✅ Archived octocat/tools. It is now read-only.")
	client.AssertExpectations(t)
}

func TestArchiveAlreadyArchived(t *testing.T) {
	client := &MockAPIClient{}
	client.On("GetRepository", "octocat", "tools").Return(testRepo("octocat/tools", false, true), nil)
	withStubSession(t, client)

	output, err := captureOutput(t, func() error {
		return archiveCmd.RunE(archiveCmd, []string{"octocat/tools"})
	})

	require.NoError(t, err, "archiving an archived repository succeeds as a no-op")
	assert.Contains(t, output, "✅ octocat/tools is already archived; nothing to do.")
	client.AssertNotCalled(t, "SetArchived")
}

func TestUnarchiveCommand(t *testing.T) {
	archived := testRepo("octocat/legacy-api", false, true)
	active := testRepo("octocat/legacy-api", false, false)

	client := &MockAPIClient{}
	client.On("GetRepository", "octocat", "legacy-api").Return(archived, nil)
	client.On("SetArchived", "octocat", "legacy-api", false).Return(active, nil)
	withStubSession(t, client)

	output, err := captureOutput(t, func() error {
		return unarchiveCmd.RunE(unarchiveCmd, []string{"octocat/legacy-api"})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "✅ Unarchived octocat/legacy-api. It is writable again.")
	client.AssertExpectations(t)
}

func TestUnarchiveNotArchived(t *testing.T) {
	client := &MockAPIClient{}
	client.On("GetRepository", "octocat", "tools").Return(testRepo("octocat/tools", false, false), nil)
	withStubSession(t, client)

	output, err := captureOutput(t, func() error {
		return unarchiveCmd.RunE(unarchiveCmd, []string{"octocat/tools"})
	})

	require.NoError(t, err, "unarchiving an active repository succeeds as a no-op")
	assert.Contains(t, output, "✅ octocat/tools is already active; nothing to do.")
	client.AssertNotCalled(t, "SetArchived")
}

func TestArchivePickerOffersOnlyActiveRepositories(t *testing.T) {
	active := testRepo("octocat/tools", false, false)
	archived := testRepo("octocat/tools", false, true)

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Lifecycle: github.LifecycleActive}).
		Return([]*github.Repository{active}, nil)
	client.On("SetArchived", "octocat", "tools", true).Return(archived, nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{selection: "octocat/tools"})

	_, err := captureOutput(t, func() error {
		return archiveCmd.RunE(archiveCmd, nil)
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestUnarchivePickerOffersOnlyArchivedRepositories(t *testing.T) {
	archived := testRepo("octocat/legacy-api", false, true)
	active := testRepo("octocat/legacy-api", false, false)

	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Lifecycle: github.LifecycleArchived}).
		Return([]*github.Repository{archived}, nil)
	client.On("SetArchived", "octocat", "legacy-api", false).Return(active, nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{selection: "octocat/legacy-api"})

	_, err := captureOutput(t, func() error {
		return unarchiveCmd.RunE(unarchiveCmd, nil)
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestArchivePickerCancelled(t *testing.T) {
	client := &MockAPIClient{}
	client.On("ListRepositories", github.ListFilter{Lifecycle: github.LifecycleActive}).
		Return([]*github.Repository{testRepo("octocat/tools", false, false)}, nil)
	withStubSession(t, client)
	withStubFinder(t, &stubFinder{err: assert.AnError})

	output, err := captureOutput(t, func() error {
		return archiveCmd.RunE(archiveCmd, nil)
	})

	require.NoError(t, err, "an abandoned picker is a clean no-op")
	assert.Contains(t, output, "Cancelled.")
	client.AssertNotCalled(t, "SetArchived")
}
