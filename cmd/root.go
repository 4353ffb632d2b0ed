// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/repo-stats/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "repo-stats <url>",
	Short: "A CLI tool to report contributor and issue statistics for a GitHub repository.",
	Long: `repo-stats reports, for one GitHub repository:

  - the top 30 commit authors of a branch by non-merge commit count
  - the number of open, closed and old pull requests and issues

Both reports cover the period between --start-date and --end-date.
An open pull request is old after 30 days, an open issue after 14 days.

The url must look like https://github.com/<owner>/<repo>. Other hosts are
treated as GitHub Enterprise Server.`,
	Example: `  repo-stats https://github.com/golang/go
  repo-stats https://github.com/golang/go -b master -s 2024-01-01T00:00:00Z -e 2024-07-01T00:00:00Z
  GITHUB_TOKEN=... repo-stats https://github.com/golang/go --summary`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	config.RegisterFlags(rootCmd.Flags())
}
