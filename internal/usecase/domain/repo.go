// Package domain contains application services orchestrating repository analysis.
package domain

import (
	"context"
	"errors"

	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
)

// ValidateRepo reports whether the URL points at an existing, visible repository.
// A missing or private repository is a negative answer, not an error.
func (u *Usecase) ValidateRepo(ctx context.Context, url string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ref, err := entities.ParseRepoURL(url)
	if err != nil {
		return false, err
	}

	if _, err := u.gh.Repo(ctx, ref); err != nil {
		if errors.Is(err, entities.ErrRepoNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RepoInfo returns headline metrics of a repository.
func (u *Usecase) RepoInfo(ctx context.Context, url string) (*entities.RepoInfo, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ref, err := entities.ParseRepoURL(url)
	if err != nil {
		return nil, err
	}

	info, err := fetchCached(ctx, u, cacheKey(entities.KindRepoInfo, ref), func(ctx context.Context) (*entities.RepoInfo, error) {
		return u.gh.Repo(ctx, ref)
	})
	if err != nil {
		return nil, err
	}

	u.recordAnalysis(ctx, ref, entities.KindRepoInfo)
	return info, nil
}

// Languages returns per-language byte counts with percentages rounded to two decimals.
func (u *Usecase) Languages(ctx context.Context, url string) (entities.LanguageBreakdown, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ref, err := entities.ParseRepoURL(url)
	if err != nil {
		return entities.LanguageBreakdown{}, err
	}

	breakdown, err := fetchCached(ctx, u, cacheKey(entities.KindLanguages, ref), func(ctx context.Context) (entities.LanguageBreakdown, error) {
		langs, err := u.gh.Languages(ctx, ref)
		if err != nil {
			return entities.LanguageBreakdown{}, err
		}
		return entities.LanguageBreakdown{
			Bytes:       langs,
			Percentages: languagePercentages(langs),
		}, nil
	})
	if err != nil {
		return entities.LanguageBreakdown{}, err
	}

	u.recordAnalysis(ctx, ref, entities.KindLanguages)
	return breakdown, nil
}
