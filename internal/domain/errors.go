package domain

import "errors"

// Validation errors, returned before any network call.
var (
	ErrInvalidURL  = errors.New("url should be in https://<host>/<owner>/<repo> format")
	ErrInvalidDate = errors.New("please provide date in YYYY-MM-DDTHH:MM:SSZ format")
)

// Fetch errors, mapped from HTTP status codes.
var (
	ErrBranchNotFound   = errors.New("please make sure that the branch you've chosen exists")
	ErrRateLimit        = errors.New("request limit exceeded")
	ErrAuth             = errors.New("wrong credentials")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
