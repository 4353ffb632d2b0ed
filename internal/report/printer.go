// Package report renders the contributor and issue reports as fixed-width text.
package report

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/repo-stats/internal/domain"
	"github.com/naka-gawa/repo-stats/internal/usecase"
)

const (
	loginPadding = 2
	counterWidth = 8
)

// TextPrinter writes both reports to w. It implements usecase.Presenter.
type TextPrinter struct {
	w       io.Writer
	summary bool
}

// NewTextPrinter creates a printer. With summary set, a line with
// per-contributor commit statistics follows the contributor table.
func NewTextPrinter(w io.Writer, summary bool) *TextPrinter {
	return &TextPrinter{w: w, summary: summary}
}

var _ usecase.Presenter = (*TextPrinter)(nil)

// PresentContributors prints the top contributors table.
func (p *TextPrinter) PresentContributors(req domain.Request, s domain.ContributorStats) error {
	width := s.LoginWidth() + loginPadding
	ew := &errWriter{w: p.w}

	ew.printf("Top contributors for %s branch in %s repository.\n", req.Branch, req.Repository.FullName())
	p.printPeriod(ew, req.Period)
	ew.printf("%-*s%s\n", width, "User login", "Number of commits")
	for _, c := range s.Top(usecase.TopContributorsLimit) {
		ew.printf("%-*s%d\n", width, c.Login, c.Commits)
	}
	if p.summary {
		p.printSummary(ew, s)
	}
	return ew.err
}

// PresentIssueStats prints the pull request counters, then the issue counters.
func (p *TextPrinter) PresentIssueStats(req domain.Request, s domain.IssueStats) error {
	ew := &errWriter{w: p.w}
	p.printCounters(ew, req, "pull requests", s.PullRequests)
	p.printCounters(ew, req, "issues", s.Issues)
	return ew.err
}

func (p *TextPrinter) printCounters(ew *errWriter, req domain.Request, what string, c domain.StatusCounters) {
	ew.printf("Amount of open/closed/old %s for %s branch in %s repository.\n", what, req.Branch, req.Repository.FullName())
	p.printPeriod(ew, req.Period)
	ew.printf("%-*s%d\n", counterWidth, "open", c.Open)
	ew.printf("%-*s%d\n", counterWidth, "closed", c.Closed)
	ew.printf("%-*s%d\n", counterWidth, "old", c.Old)
}

func (p *TextPrinter) printPeriod(ew *errWriter, period domain.Period) {
	ew.printf("Analysis start date: %s, analysis end date: %s.\n", period.StartRaw, period.EndRaw)
}

func (p *TextPrinter) printSummary(ew *errWriter, s domain.ContributorStats) {
	if len(s.Contributors) == 0 {
		ew.printf("No contributors found.\n")
		return
	}
	data := make(stats.Float64Data, 0, len(s.Contributors))
	for _, c := range s.Contributors {
		data = append(data, float64(c.Commits))
	}
	// Errors only occur on empty input, which is handled above.
	total, _ := data.Sum()
	mean, _ := data.Mean()
	median, _ := data.Median()
	highest, _ := data.Max()
	ew.printf("Commits: %.0f, contributors: %d, mean: %.2f, median: %.1f, max: %.0f\n",
		total, len(s.Contributors), mean, median, highest)
}

// errWriter keeps the first write error so a report can be printed
// line by line and checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
