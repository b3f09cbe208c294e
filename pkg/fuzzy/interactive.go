package fuzzy

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// InteractiveFinder is a raw-mode terminal picker: type to narrow the
// candidate list, arrows or j/k to move, Enter to select.
type InteractiveFinder interface {
	// SetOptions sets the available options for selection
	SetOptions(options []Option) error

	// SetPrompt sets the display prompt
	SetPrompt(prompt string)

	// Select starts the interactive selection process
	Select() (string, error)

	// SetKeyBindings allows customization of key bindings
	SetKeyBindings(bindings KeyBindings)
}

// KeyBindings maps raw input sequences onto finder actions
type KeyBindings struct {
	Up     []string
	Down   []string
	Select []string
	Cancel []string
}

// DefaultKeyBindings binds arrows plus vim-style j/k for navigation,
// Enter for selection and Escape or Ctrl+C for cancel.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:     []string{"\x1b[A", "k"},
		Down:   []string{"\x1b[B", "j"},
		Select: []string{"\r", "\n"},
		Cancel: []string{"\x1b", "\x03"},
	}
}

// InteractiveFinderImpl implements InteractiveFinder
type InteractiveFinderImpl struct {
	options         []Option
	filteredOptions []Option
	selectedIndex   int
	filterText      string
	displayOffset   int
	prompt          string
	keyBindings     KeyBindings
	maxDisplayRows  int
	terminalWidth   int
}

// NewInteractive creates an interactive finder sized to the current terminal
func NewInteractive(prompt string) InteractiveFinder {
	f := &InteractiveFinderImpl{
		prompt:      prompt,
		keyBindings: DefaultKeyBindings(),
	}
	f.sizeToTerminal()
	return f
}

// sizeToTerminal derives the window dimensions, falling back to an 80x24
// layout when stdin is not a terminal. Five rows stay reserved for the
// prompt, filter line, separator and help text.
func (f *InteractiveFinderImpl) sizeToTerminal() {
	width, height, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		width, height = 80, 24
	}

	f.terminalWidth = width
	f.maxDisplayRows = height - 6
	if f.maxDisplayRows < 3 {
		f.maxDisplayRows = 3
	}
}

// SetOptions replaces the candidate list and resets the filter and cursor
func (f *InteractiveFinderImpl) SetOptions(options []Option) error {
	if options == nil {
		return fmt.Errorf("options cannot be nil")
	}

	f.options = make([]Option, len(options))
	copy(f.options, options)
	f.filteredOptions = make([]Option, len(options))
	copy(f.filteredOptions, options)
	f.selectedIndex = 0
	f.displayOffset = 0
	f.filterText = ""

	return nil
}

// SetPrompt sets the display prompt
func (f *InteractiveFinderImpl) SetPrompt(prompt string) {
	f.prompt = prompt
}

// SetKeyBindings replaces the default key bindings
func (f *InteractiveFinderImpl) SetKeyBindings(bindings KeyBindings) {
	f.keyBindings = bindings
}

// Select runs the raw-mode input loop until a candidate is chosen or the
// picker is cancelled. Terminals without raw-mode support get the numbered
// fallback instead.
func (f *InteractiveFinderImpl) Select() (string, error) {
	if len(f.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	if !interactiveTerminal() {
		return f.fallbackSelect()
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return f.fallbackSelect()
	}
	defer func() {
		if err := term.Restore(int(os.Stdin.Fd()), oldState); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
		}
	}()

	// Hide the cursor for the duration of the picker
	fmt.Print("\x1b[?25l\x1b[2J\x1b[H")
	defer fmt.Print("\x1b[?25h")

	f.render()

	buffer := make([]byte, 4)
	for {
		n, err := os.Stdin.Read(buffer)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		switch f.handleInput(string(buffer[:n])) {
		case "select":
			if len(f.filteredOptions) > 0 && f.selectedIndex < len(f.filteredOptions) {
				return f.filteredOptions[f.selectedIndex].Value, nil
			}
		case "cancel":
			return "", fmt.Errorf("selection cancelled")
		case "update":
			f.render()
		}
	}
}

// interactiveTerminal reports whether both ends of the session are real
// terminals with a capable TERM.
func interactiveTerminal() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	termType := os.Getenv("TERM")
	return termType != "" && termType != "dumb"
}

// fallbackSelect runs the plain numbered finder for dumb terminals
func (f *InteractiveFinderImpl) fallbackSelect() (string, error) {
	finder := New(f.prompt)
	finder.SetOptions(f.options)
	return finder.SelectWithFilter()
}

// handleInput classifies one raw input chunk into the action it triggers:
// "update" redraws, "select" and "cancel" end the loop, "" is ignored.
func (f *InteractiveFinderImpl) handleInput(input string) string {
	switch {
	case keyMatches(f.keyBindings.Up, input):
		f.moveUp()
		return "update"
	case keyMatches(f.keyBindings.Down, input):
		f.moveDown()
		return "update"
	case keyMatches(f.keyBindings.Select, input):
		return "select"
	case keyMatches(f.keyBindings.Cancel, input):
		return "cancel"
	}

	// Backspace shortens the filter; on an empty filter it does nothing
	if input == "\x7f" || input == "\b" {
		if len(f.filterText) == 0 {
			return ""
		}
		f.filterText = f.filterText[:len(f.filterText)-1]
		f.updateFilter()
		return "update"
	}

	// Printable ASCII extends the filter
	if len(input) == 1 && input[0] >= 32 && input[0] <= 126 {
		f.filterText += input
		f.updateFilter()
		return "update"
	}

	return ""
}

func keyMatches(keys []string, input string) bool {
	for _, key := range keys {
		if input == key {
			return true
		}
	}
	return false
}

// moveUp moves the cursor one row up, clamped at the first candidate
func (f *InteractiveFinderImpl) moveUp() {
	if f.selectedIndex > 0 {
		f.selectedIndex--
		f.updateDisplayOffset()
	}
}

// moveDown moves the cursor one row down, clamped at the last candidate
func (f *InteractiveFinderImpl) moveDown() {
	if f.selectedIndex < len(f.filteredOptions)-1 {
		f.selectedIndex++
		f.updateDisplayOffset()
	}
}

// updateDisplayOffset scrolls the visible window so the cursor stays inside it
func (f *InteractiveFinderImpl) updateDisplayOffset() {
	if f.selectedIndex < f.displayOffset {
		f.displayOffset = f.selectedIndex
	} else if f.selectedIndex >= f.displayOffset+f.maxDisplayRows {
		f.displayOffset = f.selectedIndex - f.maxDisplayRows + 1
	}
}

// updateFilter recomputes the candidate list and parks the cursor on the
// first match
func (f *InteractiveFinderImpl) updateFilter() {
	if f.filterText == "" {
		f.filteredOptions = make([]Option, len(f.options))
		copy(f.filteredOptions, f.options)
	} else {
		f.filteredOptions = f.filterOptions(f.filterText)
	}

	f.selectedIndex = 0
	f.displayOffset = 0
}

// filterOptions matches the filter case-insensitively against value and
// description
func (f *InteractiveFinderImpl) filterOptions(filter string) []Option {
	filter = strings.ToLower(filter)
	var filtered []Option
	for _, option := range f.options {
		if strings.Contains(strings.ToLower(option.Value), filter) ||
			strings.Contains(strings.ToLower(option.Description), filter) {
			filtered = append(filtered, option)
		}
	}
	return filtered
}

// render redraws the whole picker: prompt, filter line, the visible window
// of candidates with the cursor marker, and the help line.
func (f *InteractiveFinderImpl) render() {
	fmt.Print("\x1b[2J\x1b[H")
	fmt.Printf("%s\n", f.prompt)
	fmt.Printf("Filter: %s\n", f.filterText)
	fmt.Println(strings.Repeat("-", f.terminalWidth))

	if len(f.filteredOptions) == 0 {
		if f.filterText == "" {
			fmt.Println("No options available")
		} else {
			fmt.Println("No matches found")
		}
		return
	}

	start := f.displayOffset
	end := start + f.maxDisplayRows
	if end > len(f.filteredOptions) {
		end = len(f.filteredOptions)
	}

	nameWidth := 0
	for _, option := range f.filteredOptions[start:end] {
		if len(option.Value) > nameWidth {
			nameWidth = len(option.Value)
		}
	}

	for i := start; i < end; i++ {
		option := f.filteredOptions[i]
		marker := "  "
		if i == f.selectedIndex {
			marker = "> "
		}

		fmt.Printf("%s%-*s", marker, nameWidth, option.Value)
		if option.Description != "" {
			fmt.Printf("  │  %s", option.Description)
		}
		if option.Metadata["current"] == "true" {
			fmt.Print(" (current)")
		}
		fmt.Println()
	}

	if len(f.filteredOptions) > f.maxDisplayRows {
		fmt.Printf("\n[%d/%d] Use ↑↓ or j/k to navigate", f.selectedIndex+1, len(f.filteredOptions))
	}

	fmt.Println("\nPress Enter to select, Escape to cancel, ↑↓ or j/k to navigate")
}
