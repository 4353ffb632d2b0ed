package usecase

import (
	"time"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

// Open items older than these thresholds, in whole days, are counted as old.
const (
	OldPullRequestDays = 30
	OldIssueDays       = 14
)

// ComputeStats counts open, closed and old issues and pull requests created
// strictly inside period. Age is measured from creation to the period end.
func ComputeStats(items []domain.Item, period domain.Period) domain.IssueStats {
	var stats domain.IssueStats
	for _, item := range items {
		if !period.Contains(item.CreatedAt) {
			continue
		}

		counters, threshold := &stats.Issues, OldIssueDays
		if item.Kind == domain.KindPullRequest {
			counters, threshold = &stats.PullRequests, OldPullRequestDays
		}

		switch item.State {
		case domain.StateOpen:
			counters.Open++
			if ageInDays(item.CreatedAt, period.End) > threshold {
				counters.Old++
			}
		case domain.StateClosed:
			counters.Closed++
		}
	}
	return stats
}

func ageInDays(created, end time.Time) int {
	return int(end.Sub(created) / (24 * time.Hour))
}
