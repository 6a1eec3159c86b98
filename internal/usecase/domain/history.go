// Package domain contains application services orchestrating repository analysis.
package domain

import (
	"context"

	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
)

const defaultHistoryLimit = 20

// RecentAnalyses returns the latest recorded analysis runs.
func (u *Usecase) RecentAnalyses(ctx context.Context, limit int) ([]entities.AnalysisRecord, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return u.repo.RecentAnalyses(ctx, limit)
}

// AnalysisStats returns run counters grouped by kind and repository.
func (u *Usecase) AnalysisStats(ctx context.Context) (entities.AnalysisStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.AnalysisStats(ctx)
}
