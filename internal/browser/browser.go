// Package browser opens URLs in the user's default web browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener defines the interface for opening URLs in the default browser
type Opener interface {
	Open(url string) error
}

// DefaultOpener implements cross-platform browser opening
type DefaultOpener struct{}

// NewOpener creates a new browser opener instance
func NewOpener() *DefaultOpener {
	return &DefaultOpener{}
}

// Open opens the specified URL in the default browser
func (b *DefaultOpener) Open(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin": // macOS
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
