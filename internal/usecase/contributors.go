package usecase

import (
	"sort"
	"strings"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

// TopContributorsLimit is how many contributors the report prints.
const TopContributorsLimit = 30

// mergePrefix marks merge commits. Any commit whose message happens to start
// with "Merge" is treated the same way.
const mergePrefix = "Merge"

// TallyContributors counts non-merge commits per author login and returns the
// full tally sorted by count, highest first. Commits without a linked author
// are ignored. Authors seen only on merge commits are kept with zero commits.
// Equal counts keep the order in which the logins were first seen.
func TallyContributors(commits []domain.Commit) domain.ContributorStats {
	index := make(map[string]int)
	var tally []domain.Contributor

	for _, c := range commits {
		if c.Author == nil {
			continue
		}
		login := c.Author.Login
		i, ok := index[login]
		if !ok {
			i = len(tally)
			index[login] = i
			tally = append(tally, domain.Contributor{Login: login})
		}
		if !strings.HasPrefix(c.Message, mergePrefix) {
			tally[i].Commits++
		}
	}

	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].Commits > tally[j].Commits
	})
	return domain.ContributorStats{Contributors: tally}
}

// TopContributors returns at most limit entries from the head of the tally.
func TopContributors(commits []domain.Commit, limit int) []domain.Contributor {
	return TallyContributors(commits).Top(limit)
}
