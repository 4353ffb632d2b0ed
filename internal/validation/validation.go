// Package validation checks user input before anything touches the network.
package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/naka-gawa/repo-stats/internal/domain"
)

// DateLayout is the only accepted date format, e.g. 2024-01-31T12:00:00Z.
const DateLayout = "2006-01-02T15:04:05Z"

var repoURLPattern = regexp.MustCompile(`^https://([A-Za-z0-9.-]+(?::[0-9]+)?)/([A-Za-z0-9-]+)/([A-Za-z0-9-]+)$`)

// ValidateURL checks that raw has the form https://<host>/<owner>/<repo>
// and splits it into its parts.
func ValidateURL(raw string) (domain.Repository, error) {
	m := repoURLPattern.FindStringSubmatch(raw)
	if m == nil {
		return domain.Repository{}, fmt.Errorf("%w: %q", domain.ErrInvalidURL, raw)
	}
	return domain.Repository{Host: m[1], Owner: m[2], Name: m[3]}, nil
}

// ValidateDate parses s using DateLayout. The value must format back to s,
// which rejects the fractional seconds time.Parse would otherwise accept.
func ValidateDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}
