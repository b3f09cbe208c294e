package fuzzy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Option represents a selectable option in the fuzzy finder
type Option struct {
	Value       string
	Description string
	Metadata    map[string]string
}

// Finder presents numbered options on a plain terminal. It is the fallback
// for environments where the fzf or raw-mode finders cannot run, and the
// primary vehicle for multi-select.
type Finder struct {
	prompt  string
	options []Option
	input   io.Reader
}

// New creates a new finder with the given prompt, reading selections from stdin
func New(prompt string) *Finder {
	return &Finder{
		prompt:  prompt,
		options: make([]Option, 0),
		input:   os.Stdin,
	}
}

// NewWithInput creates a finder reading selections from the given reader.
// Tests use this to drive selections without a terminal.
func NewWithInput(prompt string, input io.Reader) *Finder {
	f := New(prompt)
	f.input = input
	return f
}

// AddOption adds an option to the finder
func (f *Finder) AddOption(value, description string) {
	f.options = append(f.options, Option{
		Value:       value,
		Description: description,
	})
}

// AddOptionWithMetadata adds an option carrying extra key/value context
func (f *Finder) AddOptionWithMetadata(value, description string, metadata map[string]string) {
	f.options = append(f.options, Option{
		Value:       value,
		Description: description,
		Metadata:    metadata,
	})
}

// SetOptions replaces the option list
func (f *Finder) SetOptions(options []Option) {
	f.options = make([]Option, len(options))
	copy(f.options, options)
}

// Select displays options and allows the user to select one by number
func (f *Finder) Select() (string, error) {
	if len(f.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	f.printOptions()
	fmt.Printf("\nSelect option (1-%d): ", len(f.options))

	reader := bufio.NewReader(f.input)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	selection, err := strconv.Atoi(input)
	if err != nil {
		return "", fmt.Errorf("invalid selection: %s", input)
	}

	if selection < 1 || selection > len(f.options) {
		return "", fmt.Errorf("selection out of range: %d", selection)
	}

	return f.options[selection-1].Value, nil
}

// MultiSelect displays options and allows the user to select several at
// once. The input accepts comma-separated numbers and ranges ("1,3,5-7")
// or the word "all". The returned values follow the listed order with
// duplicates removed; an empty input selects nothing.
func (f *Finder) MultiSelect() ([]string, error) {
	if len(f.options) == 0 {
		return nil, fmt.Errorf("no options available")
	}

	f.printOptions()
	fmt.Printf("\nSelect options (e.g. 1,3,5-7 or 'all', empty to cancel): ")

	reader := bufio.NewReader(f.input)
	input, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	indexes, err := parseMultiSelection(strings.TrimSpace(input), len(f.options))
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(indexes))
	for _, i := range indexes {
		values = append(values, f.options[i].Value)
	}
	return values, nil
}

// parseMultiSelection expands a multi-select expression into zero-based
// indexes, deduplicated and sorted into listing order.
func parseMultiSelection(input string, count int) ([]int, error) {
	if input == "" {
		return nil, nil
	}

	if strings.EqualFold(input, "all") {
		all := make([]int, count)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	seen := make(map[int]bool)
	var indexes []int

	add := func(n int) error {
		if n < 1 || n > count {
			return fmt.Errorf("selection out of range: %d", n)
		}
		if !seen[n-1] {
			seen[n-1] = true
			indexes = append(indexes, n-1)
		}
		return nil
	}

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err1 := strconv.Atoi(strings.TrimSpace(lo))
			end, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil || start > end {
				return nil, fmt.Errorf("invalid range: %s", part)
			}
			for n := start; n <= end; n++ {
				if err := add(n); err != nil {
					return nil, err
				}
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid selection: %s", part)
		}
		if err := add(n); err != nil {
			return nil, err
		}
	}

	sort.Ints(indexes)
	return indexes, nil
}

// SelectWithFilter provides selection with iterative substring filtering
func (f *Finder) SelectWithFilter() (string, error) {
	if len(f.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	reader := bufio.NewReader(f.input)

	for {
		fmt.Println(f.prompt)
		fmt.Println("Type to filter options, or enter a number to select:")
		fmt.Println(strings.Repeat("-", 50))

		fmt.Print("Filter/Select: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// Number first, filter second
		if selection, err := strconv.Atoi(input); err == nil {
			if selection >= 1 && selection <= len(f.options) {
				return f.options[selection-1].Value, nil
			}
			fmt.Printf("Selection %d is out of range (1-%d)\n\n", selection, len(f.options))
			continue
		}

		filtered := f.filterOptions(input)
		if len(filtered) == 0 {
			fmt.Printf("No options match filter: %s\n\n", input)
			continue
		}

		fmt.Printf("\nFiltered options (matching '%s'):\n", input)
		for i, option := range filtered {
			fmt.Printf("%d. %s", i+1, option.Value)
			if option.Description != "" {
				fmt.Printf(" - %s", option.Description)
			}
			fmt.Println()
		}

		if len(filtered) == 1 {
			fmt.Printf("\nAuto-selecting: %s\n", filtered[0].Value)
			return filtered[0].Value, nil
		}

		fmt.Printf("\nSelect from filtered options (1-%d), or press Enter to filter again: ", len(filtered))
		selectionInput, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read selection: %w", err)
		}

		selectionInput = strings.TrimSpace(selectionInput)
		if selectionInput == "" {
			fmt.Println()
			continue
		}

		selection, err := strconv.Atoi(selectionInput)
		if err != nil {
			fmt.Printf("Invalid selection: %s\n\n", selectionInput)
			continue
		}

		if selection < 1 || selection > len(filtered) {
			fmt.Printf("Selection %d is out of range (1-%d)\n\n", selection, len(filtered))
			continue
		}

		return filtered[selection-1].Value, nil
	}
}

// printOptions renders the prompt and the numbered option list
func (f *Finder) printOptions() {
	fmt.Println(f.prompt)
	fmt.Println(strings.Repeat("-", len(f.prompt)))

	for i, option := range f.options {
		fmt.Printf("%d. %s", i+1, option.Value)
		if option.Description != "" {
			fmt.Printf(" - %s", option.Description)
		}
		fmt.Println()
	}
}

// filterOptions filters options by case-insensitive substring match on the
// value or description
func (f *Finder) filterOptions(filter string) []Option {
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

// GetOptions returns all available options
func (f *Finder) GetOptions() []Option {
	return f.options
}

// Clear removes all options from the finder
func (f *Finder) Clear() {
	f.options = make([]Option, 0)
}

// SetPrompt updates the prompt message
func (f *Finder) SetPrompt(prompt string) {
	f.prompt = prompt
}
