package fuzzy

import (
	"fmt"
	"io"
	"os"
	"strings"

	fzf "github.com/junegunn/fzf/src"
)

// FzfRunner defines the interface for running fzf
type FzfRunner interface {
	Run(opts *fzf.Options) (int, error)
}

// DefaultFzfRunner implements the FzfRunner interface using the real fzf library
type DefaultFzfRunner struct{}

// Run executes fzf with the given options
func (r *DefaultFzfRunner) Run(opts *fzf.Options) (int, error) {
	return fzf.Run(opts)
}

// FzfFinder implements fuzzy finding using the fzf library
type FzfFinder struct {
	options []Option
	prompt  string
	runner  FzfRunner
}

// NewFzf creates a new fzf-style fuzzy finder
func NewFzf(prompt string) *FzfFinder {
	return &FzfFinder{
		prompt:  prompt,
		options: make([]Option, 0),
		runner:  &DefaultFzfRunner{},
	}
}

// NewFzfWithRunner creates a new fzf-style fuzzy finder with a custom runner (for testing)
func NewFzfWithRunner(prompt string, runner FzfRunner) *FzfFinder {
	return &FzfFinder{
		prompt:  prompt,
		options: make([]Option, 0),
		runner:  runner,
	}
}

// SetOptions sets the available options for selection
func (f *FzfFinder) SetOptions(options []Option) error {
	if options == nil {
		return fmt.Errorf("options cannot be nil")
	}

	f.options = make([]Option, len(options))
	copy(f.options, options)
	return nil
}

// SetPrompt sets the display prompt
func (f *FzfFinder) SetPrompt(prompt string) {
	f.prompt = prompt
}

// Select starts the fuzzy selection process and returns the chosen value
func (f *FzfFinder) Select() (string, error) {
	lines, err := f.run(false)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("no selection made")
	}
	return lines[0], nil
}

// MultiSelect starts the fuzzy selection process with multi-select enabled
// (tab to toggle) and returns the chosen values in listing order.
func (f *FzfFinder) MultiSelect() ([]string, error) {
	return f.run(true)
}

// run executes fzf against the option list, redirecting stdin/stdout around
// the embedded library, and maps the selected display lines back to values.
// Falls back to the plain numbered finder when fzf itself errors out.
func (f *FzfFinder) run(multi bool) ([]string, error) {
	if len(f.options) == 0 {
		return nil, fmt.Errorf("no options available")
	}

	// fzf reads candidates from stdin; stage them in a temp file
	tmpFile, err := os.CreateTemp("", "fzf-options-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmpFile.Name())
	}()
	defer func() {
		_ = tmpFile.Close()
	}()

	for _, option := range f.options {
		if _, err := fmt.Fprintln(tmpFile, displayLine(option)); err != nil {
			return nil, fmt.Errorf("failed to write option to file: %w", err)
		}
	}

	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %w", err)
	}

	args := []string{
		"--prompt=" + f.prompt + " ",
		"--height=10",
		"--layout=default",
		"--cycle",
		"--hscroll",
		"--hscroll-off=10",
		"--tabstop=8",
		"--clear",
		"--extended",
		"--algo=v2",
		"--tiebreak=length",
		"--sort=1000",
		"--no-mouse",
		"--no-reverse",
		"--border=none",
	}
	if multi {
		args = append(args, "--multi")
	} else {
		args = append(args, "--no-multi")
	}

	opts, err := fzf.ParseOptions(true, args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fzf options: %w", err)
	}

	originalStdin := os.Stdin
	defer func() { os.Stdin = originalStdin }()

	tmpFileForReading, err := os.Open(tmpFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to open temporary file for reading: %w", err)
	}
	defer func() {
		_ = tmpFileForReading.Close()
	}()

	os.Stdin = tmpFileForReading

	originalStdout := os.Stdout
	defer func() { os.Stdout = originalStdout }()

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create pipe: %w", err)
	}
	defer func() {
		_ = r.Close()
	}()
	defer func() {
		_ = w.Close()
	}()

	os.Stdout = w

	exitCode, err := f.runner.Run(opts)

	// Restore stdout before reading the result
	_ = w.Close()
	os.Stdout = originalStdout

	if err != nil {
		return f.fallbackSelect(multi)
	}

	if exitCode != fzf.ExitOk {
		return nil, fmt.Errorf("fzf selection cancelled or failed")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read fzf result: %w", err)
	}

	var values []string
	for _, line := range strings.Split(strings.TrimSpace(string(raw)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		values = append(values, f.matchValue(line))
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no selection made")
	}
	return values, nil
}

// displayLine renders an option the way fzf shows it
func displayLine(option Option) string {
	if option.Description != "" {
		return fmt.Sprintf("%s  │  %s", option.Value, option.Description)
	}
	return option.Value
}

// matchValue maps a selected display line back to the original option value
func (f *FzfFinder) matchValue(line string) string {
	parts := strings.Split(line, "  │  ")
	selected := strings.TrimSpace(parts[0])

	for _, option := range f.options {
		if option.Value == selected {
			return option.Value
		}
	}
	return selected
}

// fallbackSelect degrades to the plain numbered finder when fzf fails
func (f *FzfFinder) fallbackSelect(multi bool) ([]string, error) {
	finder := New(f.prompt)
	finder.SetOptions(f.options)

	if multi {
		return finder.MultiSelect()
	}

	value, err := finder.SelectWithFilter()
	if err != nil {
		return nil, err
	}
	return []string{value}, nil
}

// FzfFinderInterface defines the interface for fzf-based fuzzy finding
type FzfFinderInterface interface {
	SetOptions(options []Option) error
	SetPrompt(prompt string)
	Select() (string, error)
	MultiSelect() ([]string, error)
}

// Ensure FzfFinder implements the interface
var _ FzfFinderInterface = (*FzfFinder)(nil)
