package github

import "fmt"

// BulkFailure records one failed target of a bulk operation. Err is always
// the classified GitHubError for the single attempt the target received.
type BulkFailure struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

// Reason returns the human-readable message for the failure without the
// transport-level details of the underlying cause.
func (f BulkFailure) Reason() string {
	if ghErr, ok := f.Err.(*GitHubError); ok {
		return ghErr.Message
	}
	if f.Err != nil {
		return f.Err.Error()
	}
	return "unknown failure"
}

// BulkResult partitions the targets of a bulk operation into successes and
// failures. Both slices preserve the input order; together they account for
// every target exactly once.
type BulkResult struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

// Total returns the number of outcomes recorded
func (r *BulkResult) Total() int {
	return len(r.Succeeded) + len(r.Failed)
}

// AllSucceeded reports whether no target failed
func (r *BulkResult) AllSucceeded() bool {
	return len(r.Failed) == 0
}

// Summary renders the one-line outcome count
func (r *BulkResult) Summary() string {
	return fmt.Sprintf("%d succeeded, %d failed", len(r.Succeeded), len(r.Failed))
}

// ApplyToAll applies op to every name in order, strictly sequentially, one
// attempt per name. A failure on one name never stops the names after it;
// the result holds exactly len(names) outcomes. No retry happens here or
// anywhere below: op is called once per name per invocation.
func ApplyToAll(names []string, op func(name string) error) *BulkResult {
	result := &BulkResult{}

	for _, name := range names {
		if err := op(name); err != nil {
			result.Failed = append(result.Failed, BulkFailure{Name: name, Err: err})
			continue
		}
		result.Succeeded = append(result.Succeeded, name)
	}

	return result
}
