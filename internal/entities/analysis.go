// Package entities contains core business entities.
package entities

import "time"

// AnalysisKind enumerates recorded analysis types.
type AnalysisKind string

const (
	// KindRepoInfo marks a headline metrics lookup.
	KindRepoInfo AnalysisKind = "repo_info"
	// KindCommitFrequency marks a commit grouping run.
	KindCommitFrequency AnalysisKind = "commit_frequency"
	// KindContributors marks a contributor listing.
	KindContributors AnalysisKind = "contributors"
	// KindLanguages marks a language breakdown.
	KindLanguages AnalysisKind = "languages"
	// KindCodeFrequency marks a weekly code frequency run.
	KindCodeFrequency AnalysisKind = "code_frequency"
	// KindPullRequests marks a pull request count run.
	KindPullRequests AnalysisKind = "pull_requests"
	// KindHeatmap marks a contribution heatmap run.
	KindHeatmap AnalysisKind = "contribution_heatmap"
)

// AnalysisRecord is a persisted record of a single analysis run.
type AnalysisRecord struct {
	ID        string
	Owner     string
	Repo      string
	Kind      AnalysisKind
	CreatedAt time.Time
}

// KindStat counts analysis runs per kind.
type KindStat struct {
	Kind     AnalysisKind `json:"kind"`
	RunCount int64        `json:"run_cnt"`
}

// RepoStat counts analysis runs per repository.
type RepoStat struct {
	FullName string `json:"full_name"`
	RunCount int64  `json:"run_cnt"`
}

// AnalysisStats aggregates counters over recorded analysis runs.
type AnalysisStats struct {
	ByKind   []KindStat `json:"by_kind"`
	TopRepos []RepoStat `json:"top_repos"`
}
