package usecase

import (
	"context"
	"time"

	"github.com/lohiyakeshav/StrangeMetrics/internal/cache"
	"github.com/lohiyakeshav/StrangeMetrics/internal/github"
	"github.com/lohiyakeshav/StrangeMetrics/internal/repository"
	"github.com/lohiyakeshav/StrangeMetrics/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	RepoUsecaseInterface
	ActivityUsecaseInterface
	CollabUsecaseInterface
	HistoryUsecaseInterface
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
) InterfaceUsecase {
	return domain.New(log, ctx, repo, gh, store, timeout, cacheTTL)
}
