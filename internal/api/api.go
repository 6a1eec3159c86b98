// Package api defines the HTTP transport models and route registration.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponseErrorCode is a machine-readable error code.
type ErrorResponseErrorCode string

// Error codes returned in ErrorResponse.
const (
	INVALIDURL       ErrorResponseErrorCode = "INVALID_URL"
	INVALIDFREQUENCY ErrorResponseErrorCode = "INVALID_FREQUENCY"
	NOTFOUND         ErrorResponseErrorCode = "NOT_FOUND"
	RATELIMITED      ErrorResponseErrorCode = "RATE_LIMITED"
	STATSPENDING     ErrorResponseErrorCode = "STATS_PENDING"
	UPSTREAM         ErrorResponseErrorCode = "UPSTREAM"
	INTERNAL         ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// RepoRequest carries the repository URL to analyze.
type RepoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// CommitsRequest carries the repository URL and grouping frequency.
type CommitsRequest struct {
	URL       string `json:"url" validate:"required,url"`
	Frequency string `json:"frequency" validate:"omitempty,oneof=day week month"`
}

// ValidateRepoResponse reports repository existence and visibility.
type ValidateRepoResponse struct {
	Valid bool    `json:"valid"`
	Error *string `json:"error,omitempty"`
}

// RepoInfo holds headline repository metrics.
type RepoInfo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Stars       int64  `json:"stars"`
	Forks       int64  `json:"forks"`
	Watchers    int64  `json:"watchers"`
	OpenIssues  int64  `json:"open_issues"`
}

// CommitFrequencyResponse holds commit counts per time bucket.
type CommitFrequencyResponse struct {
	CommitFrequency map[string]int64 `json:"commit_frequency"`
}

// Contributor is a single contributor with its commit count.
type Contributor struct {
	Login   string `json:"login"`
	Commits int64  `json:"commits"`
}

// LanguagesResponse holds byte counts and percentages per language.
type LanguagesResponse struct {
	Bytes       map[string]int64   `json:"bytes"`
	Percentages map[string]float64 `json:"percentages"`
}

// CodeFrequencyEntry is one week of addition/deletion stats. Field names match
// the wire format consumed by existing clients.
type CodeFrequencyEntry struct {
	Date      string `json:"Date"`
	Additions int64  `json:"Code Additions"`
	Deletions int64  `json:"Code Deletions"`
}

// PullRequestCounts splits pull requests by lifecycle outcome.
type PullRequestCounts struct {
	Open           int64 `json:"open"`
	ClosedUnmerged int64 `json:"closed_unmerged"`
	Merged         int64 `json:"merged"`
}

// HeatmapDay is one day of the contribution heatmap.
type HeatmapDay struct {
	Date    string `json:"date"`
	Commits int64  `json:"commits"`
}

// AnalysisRecord is a recorded analysis run.
type AnalysisRecord struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Repo      string    `json:"repo"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse carries an informational message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ServerInterface lists all HTTP handlers of the service.
type ServerInterface interface {
	PostValidateRepo(c *fiber.Ctx) error
	PostRepo(c *fiber.Ctx) error
	PostCommits(c *fiber.Ctx) error
	PostContributors(c *fiber.Ctx) error
	PostLanguages(c *fiber.Ctx) error
	PostCodeFrequency(c *fiber.Ctx) error
	PostPullRequests(c *fiber.Ctx) error
	PostContributionHeatmap(c *fiber.Ctx) error
	GetHistory(c *fiber.Ctx) error
	GetHistoryStats(c *fiber.Ctx) error
}

// RegisterHandlers attaches all routes to the router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Post("/api/validate_repo", si.PostValidateRepo)
	router.Post("/api/repo", si.PostRepo)
	router.Post("/api/commits", si.PostCommits)
	router.Post("/api/contributors", si.PostContributors)
	router.Post("/api/languages", si.PostLanguages)
	router.Post("/api/code_frequency", si.PostCodeFrequency)
	router.Post("/api/pull_requests", si.PostPullRequests)
	router.Post("/api/contribution_heatmap", si.PostContributionHeatmap)
	router.Get("/api/history", si.GetHistory)
	router.Get("/api/history/stats", si.GetHistoryStats)
}
