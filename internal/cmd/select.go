package cmd

import (
	"fmt"

	"repoman/pkg/fuzzy"
	"repoman/pkg/github"
)

// newFinder is swapped in tests to script interactive picks.
var newFinder = func(prompt string) fuzzy.FzfFinderInterface {
	return fuzzy.NewFzf(prompt)
}

// repoOptions converts repositories to finder options keyed by full name
func repoOptions(repos []*github.Repository) []fuzzy.Option {
	options := make([]fuzzy.Option, 0, len(repos))
	for _, r := range repos {
		options = append(options, fuzzy.Option{
			Value:       r.FullName,
			Description: describeRepo(r),
		})
	}
	return options
}

// selectRepository has the operator pick one repository from the filtered
// listing. A nil repository with a nil error means the picker was cancelled
// or nothing matched the filter; callers treat both as a clean no-op.
func selectRepository(sess *github.Session, filter github.ListFilter, prompt string) (*github.Repository, error) {
	repos, err := sess.Client().ListRepositories(filter)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		fmt.Println("No matching repositories found.")
		return nil, nil
	}

	finder := newFinder(prompt)
	if err := finder.SetOptions(repoOptions(repos)); err != nil {
		return nil, err
	}

	value, err := finder.Select()
	if err != nil {
		// An abandoned picker is a cancel, not a failure
		fmt.Println("Cancelled.")
		return nil, nil
	}

	for _, r := range repos {
		if r.FullName == value {
			return r, nil
		}
	}
	return nil, nil
}

// multiSelectRepositories has the operator pick any number of repositories
// from the filtered listing. An empty slice with a nil error means the
// picker was cancelled or nothing matched.
func multiSelectRepositories(sess *github.Session, filter github.ListFilter, prompt string) ([]*github.Repository, error) {
	repos, err := sess.Client().ListRepositories(filter)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		fmt.Println("No matching repositories found.")
		return nil, nil
	}

	finder := newFinder(prompt)
	if err := finder.SetOptions(repoOptions(repos)); err != nil {
		return nil, err
	}

	values, err := finder.MultiSelect()
	if err != nil {
		fmt.Println("Cancelled.")
		return nil, nil
	}

	byName := make(map[string]*github.Repository, len(repos))
	for _, r := range repos {
		byName[r.FullName] = r
	}

	selected := make([]*github.Repository, 0, len(values))
	for _, v := range values {
		if r, ok := byName[v]; ok {
			selected = append(selected, r)
		}
	}
	if len(selected) == 0 {
		fmt.Println("Nothing selected.")
	}
	return selected, nil
}

// describeByName indexes one-line descriptions for review lists
func describeByName(repos []*github.Repository) func(string) string {
	index := make(map[string]string, len(repos))
	for _, r := range repos {
		index[r.FullName] = describeRepo(r)
	}
	return func(name string) string { return index[name] }
}

// resolveOrSelect fetches the repository named by the first argument, or
// runs the interactive picker when no argument was given. A nil repository
// with a nil error means the picker was cancelled.
func resolveOrSelect(sess *github.Session, args []string, filter github.ListFilter, prompt string) (*github.Repository, error) {
	if len(args) > 0 {
		owner, name, err := sess.QualifyName(args[0])
		if err != nil {
			return nil, err
		}
		return sess.Client().GetRepository(owner, name)
	}
	return selectRepository(sess, filter, prompt)
}

// fullNames projects the selected repositories to their owner/name keys,
// preserving order.
func fullNames(repos []*github.Repository) []string {
	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.FullName)
	}
	return names
}
