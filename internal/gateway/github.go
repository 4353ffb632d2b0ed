// Package gateway provides a gateway to the GitHub REST API,
// abstracting away pagination, authentication and error mapping.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

const (
	publicHost = "github.com"
	perPage    = 100
)

// Credentials authenticate API requests. Token takes precedence; otherwise
// Login and Password are sent as Basic auth even when both are empty, which
// the platform treats as an anonymous request.
type Credentials struct {
	Login    string
	Password string
	Token    string
}

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchCommits(ctx context.Context, req domain.Request) ([]domain.Commit, error)
	FetchItems(ctx context.Context, req domain.Request) ([]domain.Item, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *zap.Logger
}

// Option customizes a GitHubGateway after its client is built.
type Option func(*GitHubGateway) error

// WithBaseURL sends every API request to rawURL instead of the url derived
// from the repository host.
func WithBaseURL(rawURL string) Option {
	return func(g *GitHubGateway) error {
		u, err := url.Parse(strings.TrimSuffix(rawURL, "/") + "/")
		if err != nil {
			return fmt.Errorf("invalid api url %q: %w", rawURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid api url %q: scheme must be http or https", rawURL)
		}
		g.restClient.BaseURL = u
		return nil
	}
}

// NewGitHubGateway creates a gateway for the given host. Hosts other than
// github.com are treated as GitHub Enterprise Server installations.
func NewGitHubGateway(host string, creds Credentials, logger *zap.Logger, opts ...Option) (*GitHubGateway, error) {
	client := github.NewClient(newHTTPClient(creds))
	if host != "" && host != publicHost {
		var err error
		client, err = client.WithEnterpriseURLs(
			fmt.Sprintf("https://%s/api/v3/", host),
			fmt.Sprintf("https://%s/api/uploads/", host),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to configure enterprise urls for %s: %w", host, err)
		}
	}
	g := &GitHubGateway{
		restClient: client,
		logger:     logger,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func newHTTPClient(creds Credentials) *http.Client {
	if creds.Token != "" {
		return &http.Client{
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.Token}),
			},
		}
	}
	transport := &github.BasicAuthTransport{
		Username: creds.Login,
		Password: creds.Password,
	}
	return transport.Client()
}

// FetchCommits lists every commit on the request's branch inside its period.
func (g *GitHubGateway) FetchCommits(ctx context.Context, req domain.Request) ([]domain.Commit, error) {
	g.logger.Debug("fetching commits",
		zap.String("repo", req.Repository.FullName()),
		zap.String("branch", req.Branch),
	)
	owner, name := req.Repository.Owner, req.Repository.Name
	raw, err := fetchAll(ctx, g, "commits", func(ctx context.Context, page github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
		return g.restClient.Repositories.ListCommits(ctx, owner, name, &github.CommitsListOptions{
			SHA:         req.Branch,
			Since:       req.Period.Start,
			Until:       req.Period.End,
			ListOptions: page,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}

	commits := make([]domain.Commit, 0, len(raw))
	for _, rc := range raw {
		commits = append(commits, toCommit(rc))
	}
	g.logger.Debug("completed fetching commits", zap.Int("count", len(commits)))
	return commits, nil
}

// FetchItems lists every issue and pull request of the repository in any state.
func (g *GitHubGateway) FetchItems(ctx context.Context, req domain.Request) ([]domain.Item, error) {
	g.logger.Debug("fetching issues and pull requests",
		zap.String("repo", req.Repository.FullName()),
	)
	owner, name := req.Repository.Owner, req.Repository.Name
	raw, err := fetchAll(ctx, g, "issues", func(ctx context.Context, page github.ListOptions) ([]*github.Issue, *github.Response, error) {
		// The issues endpoint returns pull requests as well.
		return g.restClient.Issues.ListByRepo(ctx, owner, name, &github.IssueListByRepoOptions{
			State:       "all",
			Since:       req.Period.Start,
			ListOptions: page,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issues: %w", err)
	}

	items := make([]domain.Item, 0, len(raw))
	for _, issue := range raw {
		items = append(items, toItem(issue))
	}
	g.logger.Debug("completed fetching issues and pull requests", zap.Int("count", len(items)))
	return items, nil
}

func toCommit(rc *github.RepositoryCommit) domain.Commit {
	c := domain.Commit{
		Message:   rc.GetCommit().GetMessage(),
		CreatedAt: rc.GetCommit().GetAuthor().GetDate().Time,
	}
	if rc.Author != nil {
		c.Author = &domain.AuthorInfo{Login: rc.Author.GetLogin()}
	}
	return c
}

func toItem(issue *github.Issue) domain.Item {
	kind := domain.KindIssue
	if issue.IsPullRequest() {
		kind = domain.KindPullRequest
	}
	return domain.Item{
		Kind:      kind,
		State:     domain.ParseItemState(issue.GetState()),
		CreatedAt: issue.GetCreatedAt().Time,
	}
}
