package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"repoman/pkg/github"
)

// bulkStage tracks progress through the destructive bulk pipeline. Stages
// only move forward; a declined confirmation parks the flow in
// stageCancelled, and nothing leaves that stage.
type bulkStage int

const (
	stageSelected bulkStage = iota
	stageReviewed
	stageConfirmedOnce
	stageConfirmedTwice
	stageExecuting
	stageReported
	stageCancelled
)

// promptInput is swapped in tests to script confirmation answers.
var promptInput io.Reader = os.Stdin

// bulkFlow walks a set of selected repositories through review,
// confirmation, execution and reporting. Flows created with double set
// require a second confirmation where the operator types the action word.
type bulkFlow struct {
	stage  bulkStage
	action string
	names  []string
	double bool
	in     *bufio.Reader
}

func newBulkFlow(action string, names []string, double bool, in io.Reader) *bulkFlow {
	return &bulkFlow{
		stage:  stageSelected,
		action: action,
		names:  names,
		double: double,
		in:     bufio.NewReader(in),
	}
}

func (f *bulkFlow) cancelled() bool { return f.stage == stageCancelled }

// Review shows every selected repository so the operator sees the full
// set before any confirmation is requested.
func (f *bulkFlow) Review(describe func(name string) string) {
	if f.stage != stageSelected {
		return
	}
	fmt.Printf("\nSelected %s to %s:\n", pluralize(len(f.names), "repository", "repositories"), f.action)
	for _, name := range f.names {
		if describe != nil && describe(name) != "" {
			fmt.Printf("  • %s  (%s)\n", name, describe(name))
		} else {
			fmt.Printf("  • %s\n", name)
		}
	}
	f.stage = stageReviewed
}

// Confirm runs the confirmation gates. It returns false when the operator
// declines at any prompt, leaving the flow cancelled.
func (f *bulkFlow) Confirm() bool {
	if f.stage != stageReviewed {
		f.stage = stageCancelled
		return false
	}

	fmt.Printf("\nProceed to %s %s? (y/N): ", f.action, pluralize(len(f.names), "repository", "repositories"))
	answer, _ := f.in.ReadString('\n')
	if !isYes(answer) {
		f.stage = stageCancelled
		return false
	}
	f.stage = stageConfirmedOnce

	if !f.double {
		return true
	}

	fmt.Printf("⚠️  This cannot be undone. Type %q to confirm: ", f.action)
	answer, _ = f.in.ReadString('\n')
	if strings.TrimSpace(answer) != f.action {
		f.stage = stageCancelled
		return false
	}
	f.stage = stageConfirmedTwice
	return true
}

// Execute applies op to every selected repository in order. It refuses to
// run unless every required confirmation was given.
func (f *bulkFlow) Execute(op func(name string) error) *github.BulkResult {
	confirmed := (f.stage == stageConfirmedOnce && !f.double) ||
		(f.stage == stageConfirmedTwice && f.double)
	if !confirmed {
		f.stage = stageCancelled
		return nil
	}
	f.stage = stageExecuting
	return github.ApplyToAll(f.names, op)
}

// Report prints the outcome and closes the flow.
func (f *bulkFlow) Report(result *github.BulkResult) {
	if f.stage != stageExecuting || result == nil {
		return
	}
	renderBulkResult(titleWord(f.action), result)
	f.stage = stageReported
}

// runBulk drives a complete flow from review to report. A declined
// confirmation prints the cancellation notice and leaves every repository
// untouched.
func runBulk(action string, names []string, double bool, describe func(string) string, op func(string) error) {
	flow := newBulkFlow(action, names, double, promptInput)
	flow.Review(describe)
	if !flow.Confirm() {
		fmt.Println("Cancelled. No repositories were modified.")
		return
	}
	flow.Report(flow.Execute(op))
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func titleWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// confirmPrompt asks a single y/N question on the given reader.
func confirmPrompt(in io.Reader, prompt string) bool {
	fmt.Print(prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	return isYes(answer)
}
