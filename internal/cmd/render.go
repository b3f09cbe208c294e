package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"repoman/pkg/github"
)

const dateFormat = "2006-01-02"

// colorizeVisibility renders the private/public flag in its semantic color
func colorizeVisibility(private bool) string {
	if private {
		return color.New(color.FgHiYellow).Sprint("private")
	}
	return color.New(color.FgHiGreen).Sprint("public")
}

// colorizeLifecycle renders the archived flag in its semantic color
func colorizeLifecycle(archived bool) string {
	if archived {
		return color.New(color.FgHiRed).Sprint("archived")
	}
	return color.New(color.FgHiCyan).Sprint("active")
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// describeRepo builds the one-line description used in selection lists
func describeRepo(r *github.Repository) string {
	parts := []string{
		fmt.Sprintf("%s, %s", visibilityWord(r), lifecycleWord(r)),
	}
	if r.Language != "" {
		parts = append(parts, r.Language)
	}
	if r.Description != "" {
		parts = append(parts, r.Description)
	}
	return strings.Join(parts, " · ")
}

func visibilityWord(r *github.Repository) string {
	if r.Private {
		return "private"
	}
	return "public"
}

func lifecycleWord(r *github.Repository) string {
	if r.Archived {
		return "archived"
	}
	return "active"
}

// renderRepositoryLine prints the compact one-line form
func renderRepositoryLine(r *github.Repository, nameWidth int) {
	fmt.Printf("  %-*s  %s  %s  ★ %d\n",
		nameWidth, r.FullName,
		colorizeVisibility(r.Private),
		colorizeLifecycle(r.Archived),
		r.Stars)
}

// renderRepositoryList prints a listing, one line per repository, or an
// extended block per repository when details is set.
func renderRepositoryList(repos []*github.Repository, details bool) {
	if len(repos) == 0 {
		fmt.Println("No repositories found.")
		return
	}

	fmt.Printf("📦 %s\n\n", pluralize(len(repos), "repository", "repositories"))

	if !details {
		nameWidth := 0
		for _, r := range repos {
			if len(r.FullName) > nameWidth {
				nameWidth = len(r.FullName)
			}
		}
		for _, r := range repos {
			renderRepositoryLine(r, nameWidth)
		}
		return
	}

	for i, r := range repos {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("📦 %s  %s  %s\n", r.FullName, colorizeVisibility(r.Private), colorizeLifecycle(r.Archived))
		if r.Description != "" {
			fmt.Printf("   %s\n", r.Description)
		}
		attrs := []string{fmt.Sprintf("★ %d", r.Stars), fmt.Sprintf("⑂ %d", r.Forks)}
		if r.Language != "" {
			attrs = append(attrs, r.Language)
		}
		if r.Fork {
			attrs = append(attrs, "fork")
		}
		attrs = append(attrs, "updated "+r.UpdatedAt.Format(dateFormat))
		fmt.Printf("   %s\n", strings.Join(attrs, "   "))
		if len(r.Topics) > 0 {
			fmt.Printf("   Topics: %s\n", strings.Join(r.Topics, ", "))
		}
		fmt.Printf("   %s\n", r.HTMLURL)
	}
}

// renderRepositoryDetails prints the full field list of a single repository
func renderRepositoryDetails(r *github.Repository) {
	fmt.Printf("📦 %s\n", r.FullName)
	fmt.Printf("  - Visibility: %s\n", colorizeVisibility(r.Private))
	fmt.Printf("  - State: %s\n", colorizeLifecycle(r.Archived))
	if r.Description != "" {
		fmt.Printf("  - Description: %s\n", r.Description)
	}
	if r.Language != "" {
		fmt.Printf("  - Language: %s\n", r.Language)
	}
	fmt.Printf("  - Stars: %d\n", r.Stars)
	fmt.Printf("  - Forks: %d\n", r.Forks)
	if r.Fork {
		fmt.Printf("  - Forked from another repository\n")
	}
	if r.DefaultBranch != "" {
		fmt.Printf("  - Default branch: %s\n", r.DefaultBranch)
	}
	if r.SizeKB > 0 {
		fmt.Printf("  - Size: %d KB\n", r.SizeKB)
	}
	fmt.Printf("  - Open issues: %d\n", r.OpenIssues)
	if len(r.Topics) > 0 {
		fmt.Printf("  - Topics: %s\n", strings.Join(r.Topics, ", "))
	}
	fmt.Printf("  - Created: %s\n", r.CreatedAt.Format(dateFormat))
	fmt.Printf("  - Updated: %s\n", r.UpdatedAt.Format(dateFormat))
	fmt.Printf("  - URL: %s\n", r.HTMLURL)
	if r.CloneURL != "" {
		fmt.Printf("  - Clone: %s\n", r.CloneURL)
	}
}

// renderStats prints the aggregated per-repository statistics. Sub-fetches
// that degraded show up as empty sections, never as errors.
func renderStats(fullName string, stats *github.RepositoryStats) {
	fmt.Printf("\n📊 Statistics for %s\n", fullName)
	fmt.Printf("  - Contributors: %d\n", stats.Contributors)

	if len(stats.Languages) == 0 {
		fmt.Printf("  - Languages: none detected\n")
	} else {
		total := 0
		names := make([]string, 0, len(stats.Languages))
		for name, bytes := range stats.Languages {
			total += bytes
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if stats.Languages[names[i]] != stats.Languages[names[j]] {
				return stats.Languages[names[i]] > stats.Languages[names[j]]
			}
			return names[i] < names[j]
		})

		var parts []string
		for _, name := range names {
			share := float64(stats.Languages[name]) / float64(total) * 100
			parts = append(parts, fmt.Sprintf("%s %.1f%%", name, share))
		}
		fmt.Printf("  - Languages: %s\n", strings.Join(parts, ", "))
	}

	if stats.LastCommit == nil {
		fmt.Printf("  - Last commit: none (empty history)\n")
	} else {
		c := stats.LastCommit
		line := fmt.Sprintf("%s %q", shortSHA(c.SHA), c.Message)
		if c.Author != "" {
			line += " by " + c.Author
		}
		if !c.When.IsZero() {
			line += " on " + c.When.Format(dateFormat)
		}
		fmt.Printf("  - Last commit: %s\n", line)
	}
}

// renderBulkResult prints the outcome of a bulk operation, succeeded and
// failed sections in processing order, then the summary line.
func renderBulkResult(action string, result *github.BulkResult) {
	if len(result.Succeeded) > 0 {
		fmt.Printf("\n✅ %s succeeded for %s:\n", action, pluralize(len(result.Succeeded), "repository", "repositories"))
		for _, name := range result.Succeeded {
			fmt.Printf("  • %s\n", name)
		}
	}

	if len(result.Failed) > 0 {
		fmt.Printf("\n❌ %s failed for %s:\n", action, pluralize(len(result.Failed), "repository", "repositories"))
		for _, failure := range result.Failed {
			fmt.Printf("  • %s: %s\n", failure.Name, failure.Reason())
		}
	}

	fmt.Printf("\n📊 Summary: %s\n", result.Summary())
}

// renderAccountSummary prints the info command's aggregate counts
func renderAccountSummary(user string, s github.AccountSummary) {
	fmt.Printf("\n📊 Account summary for %s:\n", color.New(color.Bold).Sprint(user))
	fmt.Printf("  • Total repositories: %d\n", s.Total)
	fmt.Printf("  • Active: %d\n", s.Active)
	fmt.Printf("  • Archived: %d\n", s.Archived)
	fmt.Printf("  • Public: %d\n", s.Public)
	fmt.Printf("  • Private: %d\n", s.Private)
	fmt.Printf("  • Forks: %d\n", s.Forks)
	fmt.Printf("  • Stars earned: %d\n", s.Stars)
}
