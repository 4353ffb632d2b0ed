package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
	"go.uber.org/zap"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

// listPage calls a typed go-github list method for one page of results.
type listPage[T any] func(ctx context.Context, opts github.ListOptions) ([]T, *github.Response, error)

// fetchAll requests page by page, following the "next" relation of the Link
// header until the last page, and returns every decoded element. Pagination
// stops at the first failed page.
func fetchAll[T any](ctx context.Context, g *GitHubGateway, name string, list listPage[T]) ([]T, error) {
	var all []T
	opts := github.ListOptions{PerPage: perPage}
	for {
		items, resp, err := list(ctx, opts)
		if err != nil {
			return nil, classifyError(resp, err)
		}
		all = append(all, items...)
		g.logger.Debug("fetched page",
			zap.String("list", name),
			zap.Int("page", max(opts.Page, 1)),
			zap.Int("items", len(items)),
		)

		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// classifyError maps a failed call onto the domain error kinds.
func classifyError(resp *github.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return fmt.Errorf("request failed: %w", err)
	}
	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrBranchNotFound, err)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrRateLimit, err)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", domain.ErrAuth, err)
	case code < 200 || code > 299:
		return fmt.Errorf("%w %d: %w", domain.ErrUnexpectedStatus, code, err)
	}
	return fmt.Errorf("failed to decode response: %w", err)
}
