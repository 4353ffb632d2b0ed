package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/naka-gawa/repo-stats/internal/config"
	"github.com/naka-gawa/repo-stats/internal/gateway"
	"github.com/naka-gawa/repo-stats/internal/report"
	"github.com/naka-gawa/repo-stats/internal/usecase"
)

func runStats(cmd *cobra.Command, args []string) error {
	// The end date default is resolved once, here, and passed down.
	now := time.Now().UTC()

	cfg, err := config.Load(cmd.Flags(), args[0], now)
	if err != nil {
		return err
	}
	// Input is valid from here on; later failures should not print usage.
	cmd.SilenceUsage = true

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Inject dependencies and run the main business logic.
	var opts []gateway.Option
	if cfg.APIURL != "" {
		opts = append(opts, gateway.WithBaseURL(cfg.APIURL))
	}
	githubGateway, err := gateway.NewGitHubGateway(cfg.Request.Repository.Host, cfg.Credentials, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	aggregator := usecase.NewAggregator(githubGateway, logger)
	printer := report.NewTextPrinter(cmd.OutOrStdout(), cfg.Summary)

	return aggregator.Run(cmd.Context(), cfg.Request, printer)
}

// newLogger logs to standard error when verbose and discards everything otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.OutputPaths = []string{"stderr"}
	return loggerConfig.Build()
}
