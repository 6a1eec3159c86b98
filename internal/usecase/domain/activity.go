// Package domain contains application services orchestrating repository analysis.
package domain

import (
	"context"
	"fmt"

	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
)

// CommitFrequency groups commits of a repository into day, week or month buckets.
// An empty frequency defaults to day.
func (u *Usecase) CommitFrequency(ctx context.Context, url string, freq entities.Frequency) (entities.CommitFrequency, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if freq == "" {
		freq = entities.FrequencyDay
	}
	if !freq.Valid() {
		return entities.CommitFrequency{}, fmt.Errorf("%w: %s", entities.ErrInvalidFrequency, freq)
	}

	ref, err := entities.ParseRepoURL(url)
	if err != nil {
		return entities.CommitFrequency{}, err
	}

	key := cacheKey(entities.KindCommitFrequency, ref) + ":" + string(freq)
	result, err := fetchCached(ctx, u, key, func(ctx context.Context) (entities.CommitFrequency, error) {
		commits, err := u.gh.Commits(ctx, ref)
		if err != nil {
			return entities.CommitFrequency{}, err
		}
		return entities.CommitFrequency{
			Frequency: freq,
			Counts:    groupCommits(commits, freq),
		}, nil
	})
	if err != nil {
		return entities.CommitFrequency{}, err
	}

	u.recordAnalysis(ctx, ref, entities.KindCommitFrequency)
	return result, nil
}

// CodeFrequency returns weekly addition/deletion stats.
func (u *Usecase) CodeFrequency(ctx context.Context, url string) ([]entities.CodeFrequencyWeek, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ref, err := entities.ParseRepoURL(url)
	if err != nil {
		return nil, err
	}

	weeks, err := fetchCached(ctx, u, cacheKey(entities.KindCodeFrequency, ref), func(ctx context.Context) ([]entities.CodeFrequencyWeek, error) {
		return u.gh.CodeFrequency(ctx, ref)
	})
	if err != nil {
		return nil, err
	}

	u.recordAnalysis(ctx, ref, entities.KindCodeFrequency)
	return weeks, nil
}

// ContributionHeatmap returns per-day commit counts with zero-filled gaps
// between the first and last commit day.
func (u *Usecase) ContributionHeatmap(ctx context.Context, url string) ([]entities.HeatmapDay, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ref, err := entities.ParseRepoURL(url)
	if err != nil {
		return nil, err
	}

	days, err := fetchCached(ctx, u, cacheKey(entities.KindHeatmap, ref), func(ctx context.Context) ([]entities.HeatmapDay, error) {
		commits, err := u.gh.Commits(ctx, ref)
		if err != nil {
			return nil, err
		}
		return heatmapDays(commits), nil
	})
	if err != nil {
		return nil, err
	}

	u.recordAnalysis(ctx, ref, entities.KindHeatmap)
	return days, nil
}
