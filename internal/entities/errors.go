// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRepoURL signals a URL that does not point at a GitHub repository.
	ErrInvalidRepoURL = errors.New("invalid github url")
	// ErrInvalidFrequency signals an unsupported grouping frequency.
	ErrInvalidFrequency = errors.New("invalid frequency")
	// ErrRepoNotFound signals a missing or private repository.
	ErrRepoNotFound = errors.New("repository not found")
	// ErrStatsPending signals GitHub is still generating statistics.
	ErrStatsPending = errors.New("statistics pending")
	// ErrRateLimited signals the GitHub API rate limit was hit.
	ErrRateLimited = errors.New("rate limited")
	// ErrUpstream signals an unexpected GitHub API failure.
	ErrUpstream = errors.New("upstream error")
	// ErrAnalysisNotFound signals a missing analysis record.
	ErrAnalysisNotFound = errors.New("analysis not found")
)
