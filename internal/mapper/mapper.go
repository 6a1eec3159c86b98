// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/lohiyakeshav/StrangeMetrics/internal/api"
	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
)

const dayLayout = "2006-01-02"

// ToAPIRepoInfo maps entities.RepoInfo to transport model.
func ToAPIRepoInfo(info entities.RepoInfo) api.RepoInfo {
	return api.RepoInfo{
		Name:        info.Name,
		FullName:    info.FullName,
		Description: info.Description,
		Stars:       info.Stars,
		Forks:       info.Forks,
		Watchers:    info.Watchers,
		OpenIssues:  info.OpenIssues,
	}
}

// ToAPIContributors maps a contributor slice to transport models.
func ToAPIContributors(list []entities.Contributor) []api.Contributor {
	res := make([]api.Contributor, 0, len(list))
	for _, c := range list {
		res = append(res, api.Contributor{Login: c.Login, Commits: c.Commits})
	}
	return res
}

// ToAPILanguages maps a language breakdown to transport model.
func ToAPILanguages(breakdown entities.LanguageBreakdown) api.LanguagesResponse {
	return api.LanguagesResponse{
		Bytes:       breakdown.Bytes,
		Percentages: breakdown.Percentages,
	}
}

// ToAPICodeFrequency maps weekly stats to transport models with formatted week starts.
func ToAPICodeFrequency(weeks []entities.CodeFrequencyWeek) []api.CodeFrequencyEntry {
	res := make([]api.CodeFrequencyEntry, 0, len(weeks))
	for _, w := range weeks {
		res = append(res, api.CodeFrequencyEntry{
			Date:      w.WeekStart.Format(dayLayout),
			Additions: w.Additions,
			Deletions: w.Deletions,
		})
	}
	return res
}

// ToAPIPullRequestCounts maps PR counters to transport model.
func ToAPIPullRequestCounts(counts entities.PullRequestCounts) api.PullRequestCounts {
	return api.PullRequestCounts{
		Open:           counts.Open,
		ClosedUnmerged: counts.ClosedUnmerged,
		Merged:         counts.Merged,
	}
}

// ToAPIHeatmap maps heatmap days to transport models.
func ToAPIHeatmap(days []entities.HeatmapDay) []api.HeatmapDay {
	res := make([]api.HeatmapDay, 0, len(days))
	for _, d := range days {
		res = append(res, api.HeatmapDay{Date: d.Date, Commits: d.Commits})
	}
	return res
}

// ToAPIAnalysisRecords maps analysis history records to transport models.
func ToAPIAnalysisRecords(records []entities.AnalysisRecord) []api.AnalysisRecord {
	res := make([]api.AnalysisRecord, 0, len(records))
	for _, r := range records {
		res = append(res, api.AnalysisRecord{
			ID:        r.ID,
			Owner:     r.Owner,
			Repo:      r.Repo,
			Kind:      string(r.Kind),
			CreatedAt: r.CreatedAt,
		})
	}
	return res
}
