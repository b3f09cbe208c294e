package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"repoman/pkg/fuzzy"
	"repoman/pkg/github"
)

// MockAPIClient is a mock implementation of github.APIClient for testing
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) GetAuthenticatedUser() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockAPIClient) ListRepositories(filter github.ListFilter) ([]*github.Repository, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*github.Repository), args.Error(1)
}

func (m *MockAPIClient) SearchRepositories(owner, query string) ([]*github.Repository, error) {
	args := m.Called(owner, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*github.Repository), args.Error(1)
}

func (m *MockAPIClient) GetRepository(owner, name string) (*github.Repository, error) {
	args := m.Called(owner, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.Repository), args.Error(1)
}

func (m *MockAPIClient) GetRepositoryStatistics(owner, name string) (*github.RepositoryStats, error) {
	args := m.Called(owner, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.RepositoryStats), args.Error(1)
}

func (m *MockAPIClient) UpdateVisibility(owner, name string, private bool) (*github.Repository, error) {
	args := m.Called(owner, name, private)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.Repository), args.Error(1)
}

func (m *MockAPIClient) SetArchived(owner, name string, archived bool) (*github.Repository, error) {
	args := m.Called(owner, name, archived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.Repository), args.Error(1)
}

func (m *MockAPIClient) DeleteRepository(owner, name string) error {
	args := m.Called(owner, name)
	return args.Error(0)
}

// withStubSession makes openSession build its session around the given
// client, with a hermetic home directory and a token in the environment.
func withStubSession(t *testing.T, client github.APIClient) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv(github.TokenEnvVar, "ghp_test_token")

	orig := newAPIClient
	newAPIClient = func(string) github.APIClient { return client }
	t.Cleanup(func() { newAPIClient = orig })
}

// scriptAnswers feeds canned confirmation answers to the prompts.
func scriptAnswers(t *testing.T, answers string) {
	t.Helper()

	orig := promptInput
	promptInput = strings.NewReader(answers)
	t.Cleanup(func() { promptInput = orig })
}

// stubFinder replaces the fzf-backed picker with a scripted selection.
type stubFinder struct {
	options   []fuzzy.Option
	selection string
	multi     []string
	err       error
}

func (s *stubFinder) SetOptions(options []fuzzy.Option) error {
	s.options = options
	return nil
}
func (s *stubFinder) SetPrompt(string) {}

func (s *stubFinder) Select() (string, error) { return s.selection, s.err }

func (s *stubFinder) MultiSelect() ([]string, error) { return s.multi, s.err }

func withStubFinder(t *testing.T, finder *stubFinder) {
	t.Helper()

	orig := newFinder
	newFinder = func(string) fuzzy.FzfFinderInterface { return finder }
	t.Cleanup(func() { newFinder = orig })
}

// stubDirectionFinder scripts the bulk-visibility direction pick.
type stubDirectionFinder struct {
	choice string
	err    error
}

func (s *stubDirectionFinder) SetOptions([]fuzzy.Option) error { return nil }

func (s *stubDirectionFinder) SetPrompt(string) {}

func (s *stubDirectionFinder) Select() (string, error) { return s.choice, s.err }

func (s *stubDirectionFinder) SetKeyBindings(fuzzy.KeyBindings) {}

func withStubDirectionFinder(t *testing.T, finder *stubDirectionFinder) {
	t.Helper()

	orig := newDirectionFinder
	newDirectionFinder = func(string) fuzzy.InteractiveFinder { return finder }
	t.Cleanup(func() { newDirectionFinder = orig })
}

// stubOpener records the URLs the open command hands to the browser.
type stubOpener struct {
	opened []string
	err    error
}

func (s *stubOpener) Open(url string) error {
	s.opened = append(s.opened, url)
	return s.err
}

func withStubOpener(t *testing.T, opener *stubOpener) {
	t.Helper()

	orig := browserOpener
	browserOpener = opener
	t.Cleanup(func() { browserOpener = orig })
}

// captureOutput records everything fn prints to stdout.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	fnErr := fn()

	_ = w.Close()
	os.Stdout = oldStdout
	<-done

	return buf.String(), fnErr
}

// testRepo builds a repository fixture with sensible defaults.
func testRepo(fullName string, private, archived bool) *github.Repository {
	name := fullName
	if i := strings.IndexByte(fullName, '/'); i >= 0 {
		name = fullName[i+1:]
	}
	return &github.Repository{
		ID:       1,
		Name:     name,
		FullName: fullName,
		Private:  private,
		Archived: archived,
		HTMLURL:  "https://github.com/" + fullName,
	}
}
