package github

// Predicate selects repositories out of a listing
type Predicate func(*Repository) bool

// IsArchived matches repositories in the archived lifecycle state
func IsArchived(r *Repository) bool { return r.Archived }

// IsActive matches repositories that are not archived
func IsActive(r *Repository) bool { return !r.Archived }

// IsPrivate matches private repositories
func IsPrivate(r *Repository) bool { return r.Private }

// IsPublic matches public repositories
func IsPublic(r *Repository) bool { return !r.Private }

// IsFork matches repositories forked from another repository
func IsFork(r *Repository) bool { return r.Fork }

// Filter returns the repositories matching the predicate, preserving order
func Filter(repos []*Repository, pred Predicate) []*Repository {
	var out []*Repository
	for _, r := range repos {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Partition splits a listing into the repositories matching the predicate
// and the rest. The two halves are disjoint and together cover the input.
func Partition(repos []*Repository, pred Predicate) (in, out []*Repository) {
	for _, r := range repos {
		if pred(r) {
			in = append(in, r)
		} else {
			out = append(out, r)
		}
	}
	return in, out
}

// Summarize computes the account-level aggregate counts over a full listing
func Summarize(repos []*Repository) AccountSummary {
	summary := AccountSummary{Total: len(repos)}
	for _, r := range repos {
		if r.Archived {
			summary.Archived++
		} else {
			summary.Active++
		}
		if r.Private {
			summary.Private++
		} else {
			summary.Public++
		}
		if r.Fork {
			summary.Forks++
		}
		summary.Stars += r.Stars
	}
	return summary
}
