package usecase

import (
	"context"

	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
)

// RepoUsecaseInterface abstracts repository-level lookups for the delivery layer.
type RepoUsecaseInterface interface {
	ValidateRepo(ctx context.Context, url string) (bool, error)
	RepoInfo(ctx context.Context, url string) (*entities.RepoInfo, error)
	Languages(ctx context.Context, url string) (entities.LanguageBreakdown, error)
}

// ActivityUsecaseInterface abstracts commit activity analysis.
type ActivityUsecaseInterface interface {
	CommitFrequency(ctx context.Context, url string, freq entities.Frequency) (entities.CommitFrequency, error)
	CodeFrequency(ctx context.Context, url string) ([]entities.CodeFrequencyWeek, error)
	ContributionHeatmap(ctx context.Context, url string) ([]entities.HeatmapDay, error)
}

// CollabUsecaseInterface abstracts contributor and pull request analysis.
type CollabUsecaseInterface interface {
	Contributors(ctx context.Context, url string) ([]entities.Contributor, error)
	PullRequestCounts(ctx context.Context, url string) (entities.PullRequestCounts, error)
}

// HistoryUsecaseInterface abstracts recorded analysis history.
type HistoryUsecaseInterface interface {
	RecentAnalyses(ctx context.Context, limit int) ([]entities.AnalysisRecord, error)
	AnalysisStats(ctx context.Context) (entities.AnalysisStats, error)
}
