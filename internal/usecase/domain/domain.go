// Package domain contains application services orchestrating repository analysis.
package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lohiyakeshav/StrangeMetrics/internal/cache"
	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
	"github.com/lohiyakeshav/StrangeMetrics/internal/github"
	"github.com/lohiyakeshav/StrangeMetrics/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	gh       github.Interface
	cache    cache.Cache
	timeout  time.Duration
	cacheTTL time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	gh github.Interface,
	store cache.Cache,
	timeout time.Duration,
	cacheTTL time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log,
		repo:     repo,
		gh:       gh,
		cache:    store,
		timeout:  timeout,
		cacheTTL: cacheTTL,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// fetchCached serves a value from the cache when present, otherwise fetches and
// stores it. Cache failures are logged and never fail the request.
func fetchCached[T any](ctx context.Context, u *Usecase, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if data, ok, err := u.cache.Get(ctx, key); err != nil {
		u.log.Warnw("cache get failed", "key", key, "error", err)
	} else if ok {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			return v, nil
		}
		u.log.Warnw("cache entry corrupt", "key", key, "error", err)
	}

	v, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if data, err := json.Marshal(v); err != nil {
		u.log.Warnw("cache marshal failed", "key", key, "error", err)
	} else if err := u.cache.Set(ctx, key, data, u.cacheTTL); err != nil {
		u.log.Warnw("cache set failed", "key", key, "error", err)
	}
	return v, nil
}

func (u *Usecase) recordAnalysis(ctx context.Context, ref entities.RepoRef, kind entities.AnalysisKind) {
	record := entities.AnalysisRecord{
		ID:    uuid.NewString(),
		Owner: ref.Owner,
		Repo:  ref.Name,
		Kind:  kind,
	}
	if err := u.repo.InsertAnalysis(ctx, record); err != nil {
		u.log.Warnw("failed to record analysis", "kind", kind, "repo", ref.FullName(), "error", err)
	}
}
