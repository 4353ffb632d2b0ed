// Package config resolves the run configuration from command-line flags,
// environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/naka-gawa/repo-stats/internal/domain"
	"github.com/naka-gawa/repo-stats/internal/gateway"
	"github.com/naka-gawa/repo-stats/internal/validation"
)

// EnvPrefix prefixes every environment variable the tool reads,
// e.g. REPO_STATS_BRANCH or REPO_STATS_START_DATE.
const EnvPrefix = "REPO_STATS"

const (
	DefaultStartDate = "1970-01-01T00:00:00Z"
	DefaultBranch    = "master"
)

// Flag names.
const (
	FlagStartDate = "start-date"
	FlagEndDate   = "end-date"
	FlagBranch    = "branch"
	FlagLogin     = "login"
	FlagPassword  = "password"
	FlagToken     = "token"
	FlagSummary   = "summary"
	FlagAPIURL    = "api-url"
)

// Config is the fully resolved and validated configuration of one run.
type Config struct {
	Request     domain.Request
	Credentials gateway.Credentials
	Summary     bool
	// APIURL overrides the REST API root derived from the repository host.
	APIURL string
}

// RegisterFlags declares the report flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagStartDate, "s", DefaultStartDate, "Analysis start date in YYYY-MM-DDTHH:MM:SSZ format")
	fs.StringP(FlagEndDate, "e", "", "Analysis end date in YYYY-MM-DDTHH:MM:SSZ format (default: now)")
	fs.StringP(FlagBranch, "b", DefaultBranch, "Branch for analysis")
	fs.StringP(FlagLogin, "l", "", "User login for the GitHub host")
	fs.StringP(FlagPassword, "p", "", "Password for the GitHub host")
	fs.StringP(FlagToken, "t", "", "Access token, used instead of login and password (env: GITHUB_TOKEN)")
	fs.Bool(FlagSummary, false, "Print commit statistics after the contributor table")
	fs.String(FlagAPIURL, "", "REST API root to use instead of the one derived from the url host")
}

// Load builds the Config for rawURL. Values come from flags that were set,
// then REPO_STATS_* environment variables, then flag defaults. now is the
// invocation time and becomes the end date when none is given.
func Load(fs *pflag.FlagSet, rawURL string, now time.Time) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := v.BindEnv(FlagToken, EnvPrefix+"_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind token env: %w", err)
	}

	repo, err := validation.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	startRaw := v.GetString(FlagStartDate)
	start, err := validation.ValidateDate(startRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", FlagStartDate, err)
	}

	endRaw := v.GetString(FlagEndDate)
	if endRaw == "" {
		endRaw = now.UTC().Format(validation.DateLayout)
	}
	end, err := validation.ValidateDate(endRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", FlagEndDate, err)
	}

	return &Config{
		Request: domain.Request{
			Repository: repo,
			Branch:     v.GetString(FlagBranch),
			Period: domain.Period{
				Start:    start,
				End:      end,
				StartRaw: startRaw,
				EndRaw:   endRaw,
			},
		},
		Credentials: gateway.Credentials{
			Login:    v.GetString(FlagLogin),
			Password: v.GetString(FlagPassword),
			Token:    v.GetString(FlagToken),
		},
		Summary: v.GetBool(FlagSummary),
		APIURL:  v.GetString(FlagAPIURL),
	}, nil
}

// loadEnvFiles loads .env files from the working directory. Variables that
// are already set in the environment are not overridden.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}
