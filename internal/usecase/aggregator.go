// Package usecase contains the business logic of the application.
package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/repo-stats/internal/domain"
	"github.com/naka-gawa/repo-stats/internal/gateway"
)

// Presenter renders the two reports. Contributors are always presented first.
type Presenter interface {
	PresentContributors(req domain.Request, stats domain.ContributorStats) error
	PresentIssueStats(req domain.Request, stats domain.IssueStats) error
}

// Aggregator is the use case for building the repository reports.
// It orchestrates the fetching, counting and presenting of data.
type Aggregator struct {
	fetcher gateway.Fetcher
	logger  *zap.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Run fetches commits and issues concurrently, then presents the contributor
// report followed by the issue report. A failed commit fetch cancels the issue
// fetch. If only the issue fetch fails, the contributor report is still
// presented before the error is returned.
func (a *Aggregator) Run(ctx context.Context, req domain.Request, presenter Presenter) error {
	a.logger.Info("starting aggregation",
		zap.String("repo", req.Repository.FullName()),
		zap.String("branch", req.Branch),
		zap.String("start", req.Period.StartRaw),
		zap.String("end", req.Period.EndRaw),
	)

	var (
		commits    []domain.Commit
		items      []domain.Item
		commitsErr error
	)

	// Cancellation is one-directional: a failed commit fetch aborts the issue
	// fetch, but a failed issue fetch must not cancel the commit fetch.
	itemsCtx, cancelItems := context.WithCancel(ctx)
	defer cancelItems()

	var eg errgroup.Group
	eg.Go(func() error {
		commits, commitsErr = a.fetcher.FetchCommits(ctx, req)
		if commitsErr != nil {
			cancelItems()
		}
		return commitsErr
	})
	eg.Go(func() error {
		var err error
		items, err = a.fetcher.FetchItems(itemsCtx, req)
		return err
	})
	waitErr := eg.Wait()

	if commitsErr != nil {
		return commitsErr
	}
	contributors := TallyContributors(commits)
	a.logger.Debug("contributors tallied", zap.Int("contributors", len(contributors.Contributors)))
	if err := presenter.PresentContributors(req, contributors); err != nil {
		return err
	}

	if waitErr != nil {
		return waitErr
	}
	stats := ComputeStats(items, req.Period)
	if err := presenter.PresentIssueStats(req, stats); err != nil {
		return err
	}

	a.logger.Info("aggregation complete")
	return nil
}
