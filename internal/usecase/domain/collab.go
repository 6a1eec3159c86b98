// Package domain contains application services orchestrating repository analysis.
package domain

import (
	"context"

	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
	"github.com/lohiyakeshav/StrangeMetrics/internal/github"
)

// Contributors returns the contributor list with commit counts.
func (u *Usecase) Contributors(ctx context.Context, url string) ([]entities.Contributor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ref, err := entities.ParseRepoURL(url)
	if err != nil {
		return nil, err
	}

	contributors, err := fetchCached(ctx, u, cacheKey(entities.KindContributors, ref), func(ctx context.Context) ([]entities.Contributor, error) {
		return u.gh.Contributors(ctx, ref)
	})
	if err != nil {
		return nil, err
	}

	u.recordAnalysis(ctx, ref, entities.KindContributors)
	return contributors, nil
}

// PullRequestCounts splits pull requests into open, closed-unmerged and merged.
func (u *Usecase) PullRequestCounts(ctx context.Context, url string) (entities.PullRequestCounts, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ref, err := entities.ParseRepoURL(url)
	if err != nil {
		return entities.PullRequestCounts{}, err
	}

	counts, err := fetchCached(ctx, u, cacheKey(entities.KindPullRequests, ref), func(ctx context.Context) (entities.PullRequestCounts, error) {
		open, err := u.gh.Pulls(ctx, ref, github.PullStateOpen)
		if err != nil {
			return entities.PullRequestCounts{}, err
		}
		closed, err := u.gh.Pulls(ctx, ref, github.PullStateClosed)
		if err != nil {
			return entities.PullRequestCounts{}, err
		}
		return countPulls(open, closed), nil
	})
	if err != nil {
		return entities.PullRequestCounts{}, err
	}

	u.recordAnalysis(ctx, ref, entities.KindPullRequests)
	return counts, nil
}
