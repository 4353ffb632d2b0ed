// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"time"
	"unicode/utf8"
)

// Repository identifies a single repository on a GitHub host.
type Repository struct {
	Host  string
	Owner string
	Name  string
}

// FullName returns the "owner/name" form used in report headers.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Period is the analysis window. Start and End keep the exact strings the user
// passed (or the defaults) because the report headers print them verbatim.
type Period struct {
	Start    time.Time
	End      time.Time
	StartRaw string
	EndRaw   string
}

// Contains reports whether t lies strictly inside the window.
func (p Period) Contains(t time.Time) bool {
	return t.After(p.Start) && t.Before(p.End)
}

// Request describes one run of both reports.
type Request struct {
	Repository Repository
	Branch     string
	Period     Period
}

// Contributor is a single row of the contributor report.
type Contributor struct {
	Login   string
	Commits int
}

// ContributorStats holds the full tally sorted by commit count, highest first.
type ContributorStats struct {
	Contributors []Contributor
}

// Top returns at most n contributors from the head of the tally.
func (s ContributorStats) Top(n int) []Contributor {
	if n < 0 || n >= len(s.Contributors) {
		return s.Contributors
	}
	return s.Contributors[:n]
}

// LoginWidth is the length in characters of the longest login in the full tally.
func (s ContributorStats) LoginWidth() int {
	width := 0
	for _, c := range s.Contributors {
		if n := utf8.RuneCountInString(c.Login); n > width {
			width = n
		}
	}
	return width
}

// StatusCounters counts items by state. Old items are also counted as open.
type StatusCounters struct {
	Open   int
	Closed int
	Old    int
}

// IssueStats holds the counters for both item kinds.
type IssueStats struct {
	PullRequests StatusCounters
	Issues       StatusCounters
}
