package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

func commitBy(login, message string) domain.Commit {
	return domain.Commit{Author: &domain.AuthorInfo{Login: login}, Message: message}
}

func TestTallyContributors(t *testing.T) {
	testCases := []struct {
		name     string
		commits  []domain.Commit
		expected []domain.Contributor
	}{
		{
			name: "merge commits register the author without counting",
			commits: []domain.Commit{
				commitBy("A", "Merge pull request #1 from x/y"),
				commitBy("A", "fix bug"),
				commitBy("B", "feat"),
				{Message: "no author"},
			},
			expected: []domain.Contributor{{Login: "A", Commits: 1}, {Login: "B", Commits: 1}},
		},
		{
			name: "merge-only author appears with zero",
			commits: []domain.Commit{
				commitBy("merger", "Merge branch 'main'"),
				commitBy("dev", "add tests"),
			},
			expected: []domain.Contributor{{Login: "dev", Commits: 1}, {Login: "merger", Commits: 0}},
		},
		{
			name: "sorted by count descending",
			commits: []domain.Commit{
				commitBy("low", "one"),
				commitBy("high", "one"),
				commitBy("high", "two"),
				commitBy("high", "three"),
				commitBy("mid", "one"),
				commitBy("mid", "two"),
			},
			expected: []domain.Contributor{
				{Login: "high", Commits: 3},
				{Login: "mid", Commits: 2},
				{Login: "low", Commits: 1},
			},
		},
		{
			name: "prefix match is case sensitive",
			commits: []domain.Commit{
				commitBy("A", "merge conflicts resolved"),
				commitBy("A", "Merged upstream"),
			},
			expected: []domain.Contributor{{Login: "A", Commits: 1}},
		},
		{
			name:     "no commits",
			commits:  nil,
			expected: nil,
		},
		{
			name:     "only authorless commits",
			commits:  []domain.Commit{{Message: "x"}, {Message: "y"}},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := TallyContributors(tc.commits)
			assert.Equal(t, tc.expected, stats.Contributors)
		})
	}
}

func TestTallyContributors_TiesKeepFirstSeenOrder(t *testing.T) {
	commits := []domain.Commit{
		commitBy("zed", "a"),
		commitBy("amy", "b"),
		commitBy("bob", "c"),
	}
	stats := TallyContributors(commits)
	logins := make([]string, 0, len(stats.Contributors))
	for _, c := range stats.Contributors {
		logins = append(logins, c.Login)
	}
	assert.Equal(t, []string{"zed", "amy", "bob"}, logins)
}

func TestTopContributors(t *testing.T) {
	var commits []domain.Commit
	for i := 0; i < 40; i++ {
		login := fmt.Sprintf("user-%02d", i)
		for j := 0; j <= i; j++ {
			commits = append(commits, commitBy(login, "work"))
		}
	}

	top := TopContributors(commits, TopContributorsLimit)
	require.Len(t, top, TopContributorsLimit)
	assert.Equal(t, domain.Contributor{Login: "user-39", Commits: 40}, top[0])
	assert.Equal(t, domain.Contributor{Login: "user-10", Commits: 11}, top[TopContributorsLimit-1])

	short := TopContributors(commits[:3], TopContributorsLimit)
	assert.Len(t, short, 2)
}
