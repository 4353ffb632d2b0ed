package domain

import "time"

// AuthorInfo is the platform account linked to a commit.
type AuthorInfo struct {
	Login string
}

// Commit is a decoded commit record. Author is nil when the commit is not
// linked to a platform account.
type Commit struct {
	Author    *AuthorInfo
	Message   string
	CreatedAt time.Time
}

// ItemKind distinguishes issues from pull requests on the combined endpoint.
type ItemKind int

const (
	KindIssue ItemKind = iota
	KindPullRequest
)

func (k ItemKind) String() string {
	if k == KindPullRequest {
		return "pull_request"
	}
	return "issue"
}

// ItemState is the state of an issue or pull request.
type ItemState int

const (
	// StateUnknown covers absent or unrecognized states.
	StateUnknown ItemState = iota
	StateOpen
	StateClosed
)

// ParseItemState maps the API's state string onto ItemState.
func ParseItemState(s string) ItemState {
	switch s {
	case "open":
		return StateOpen
	case "closed":
		return StateClosed
	default:
		return StateUnknown
	}
}

// Item is a decoded issue or pull request.
type Item struct {
	Kind      ItemKind
	State     ItemState
	CreatedAt time.Time
}
