package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

var (
	periodStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	testPeriod  = domain.Period{
		Start:    periodStart,
		End:      periodEnd,
		StartRaw: "2024-01-01T00:00:00Z",
		EndRaw:   "2024-06-01T00:00:00Z",
	}
)

func daysBeforeEnd(days int) time.Time {
	return periodEnd.Add(-time.Duration(days) * 24 * time.Hour)
}

func TestComputeStats(t *testing.T) {
	testCases := []struct {
		name     string
		items    []domain.Item
		expected domain.IssueStats
	}{
		{
			name: "mixed issues and pull requests",
			items: []domain.Item{
				{Kind: domain.KindIssue, State: domain.StateOpen, CreatedAt: daysBeforeEnd(20)},
				{Kind: domain.KindIssue, State: domain.StateClosed, CreatedAt: daysBeforeEnd(3)},
				{Kind: domain.KindPullRequest, State: domain.StateOpen, CreatedAt: daysBeforeEnd(40)},
				{Kind: domain.KindPullRequest, State: domain.StateOpen, CreatedAt: daysBeforeEnd(5)},
			},
			expected: domain.IssueStats{
				PullRequests: domain.StatusCounters{Open: 2, Closed: 0, Old: 1},
				Issues:       domain.StatusCounters{Open: 1, Closed: 1, Old: 1},
			},
		},
		{
			name: "window boundaries are excluded",
			items: []domain.Item{
				{Kind: domain.KindIssue, State: domain.StateOpen, CreatedAt: periodStart},
				{Kind: domain.KindPullRequest, State: domain.StateClosed, CreatedAt: periodEnd},
				{Kind: domain.KindIssue, State: domain.StateClosed, CreatedAt: periodStart.Add(time.Second)},
				{Kind: domain.KindIssue, State: domain.StateClosed, CreatedAt: periodEnd.Add(-time.Second)},
			},
			expected: domain.IssueStats{
				Issues: domain.StatusCounters{Closed: 2},
			},
		},
		{
			name: "items outside the window are ignored",
			items: []domain.Item{
				{Kind: domain.KindIssue, State: domain.StateOpen, CreatedAt: periodStart.Add(-time.Hour)},
				{Kind: domain.KindPullRequest, State: domain.StateOpen, CreatedAt: periodEnd.Add(time.Hour)},
			},
			expected: domain.IssueStats{},
		},
		{
			name: "age must exceed the threshold in whole days",
			items: []domain.Item{
				{Kind: domain.KindIssue, State: domain.StateOpen, CreatedAt: daysBeforeEnd(14)},
				{Kind: domain.KindIssue, State: domain.StateOpen, CreatedAt: daysBeforeEnd(15).Add(time.Hour)},
				{Kind: domain.KindIssue, State: domain.StateOpen, CreatedAt: daysBeforeEnd(15)},
				{Kind: domain.KindPullRequest, State: domain.StateOpen, CreatedAt: daysBeforeEnd(30)},
				{Kind: domain.KindPullRequest, State: domain.StateOpen, CreatedAt: daysBeforeEnd(31)},
			},
			expected: domain.IssueStats{
				PullRequests: domain.StatusCounters{Open: 2, Old: 1},
				Issues:       domain.StatusCounters{Open: 3, Old: 1},
			},
		},
		{
			name: "closed items are never old",
			items: []domain.Item{
				{Kind: domain.KindPullRequest, State: domain.StateClosed, CreatedAt: daysBeforeEnd(100)},
			},
			expected: domain.IssueStats{
				PullRequests: domain.StatusCounters{Closed: 1},
			},
		},
		{
			name: "unknown state counts nowhere",
			items: []domain.Item{
				{Kind: domain.KindIssue, State: domain.StateUnknown, CreatedAt: daysBeforeEnd(100)},
			},
			expected: domain.IssueStats{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeStats(tc.items, testPeriod))
		})
	}
}
