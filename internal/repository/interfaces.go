// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// AnalysisInterface exposes analysis history operations.
type AnalysisInterface interface {
	InsertAnalysis(ctx context.Context, record entities.AnalysisRecord) error
	RecentAnalyses(ctx context.Context, limit int) ([]entities.AnalysisRecord, error)
	AnalysisStats(ctx context.Context) (entities.AnalysisStats, error)
}
