package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
	"github.com/lohiyakeshav/StrangeMetrics/internal/github"
)

const dayLayout = "2006-01-02"

func cacheKey(kind entities.AnalysisKind, ref entities.RepoRef) string {
	return string(kind) + ":" + ref.FullName()
}

func groupCommits(commits []github.Commit, freq entities.Frequency) map[string]int64 {
	counts := make(map[string]int64, len(commits))
	for _, c := range commits {
		counts[bucketKey(c.AuthoredAt.UTC(), freq)]++
	}
	return counts
}

func bucketKey(t time.Time, freq entities.Frequency) string {
	switch freq {
	case entities.FrequencyWeek:
		return fmt.Sprintf("%04d-%02d", t.Year(), weekOfYear(t))
	case entities.FrequencyMonth:
		return t.Format("2006-01")
	default:
		return t.Format(dayLayout)
	}
}

// weekOfYear numbers weeks Monday-first; days before the year's first Monday
// fall into week zero.
func weekOfYear(t time.Time) int {
	monday := (int(t.Weekday()) + 6) % 7
	return (t.YearDay() - 1 + 7 - monday) / 7
}

func languagePercentages(bytes map[string]int64) map[string]float64 {
	var total int64
	for _, count := range bytes {
		total += count
	}

	percentages := make(map[string]float64, len(bytes))
	for lang, count := range bytes {
		if total == 0 {
			percentages[lang] = 0
			continue
		}
		percentages[lang] = math.Round(float64(count)/float64(total)*100*100) / 100
	}
	return percentages
}

func heatmapDays(commits []github.Commit) []entities.HeatmapDay {
	if len(commits) == 0 {
		return []entities.HeatmapDay{}
	}

	counts := make(map[string]int64, len(commits))
	var first, last time.Time
	for i, c := range commits {
		day := c.AuthoredAt.UTC().Truncate(24 * time.Hour)
		counts[day.Format(dayLayout)]++
		if i == 0 || day.Before(first) {
			first = day
		}
		if i == 0 || day.After(last) {
			last = day
		}
	}

	days := make([]entities.HeatmapDay, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayLayout)
		days = append(days, entities.HeatmapDay{Date: key, Commits: counts[key]})
	}
	return days
}

func countPulls(open, closed []github.Pull) entities.PullRequestCounts {
	var merged int64
	for _, pr := range closed {
		if pr.MergedAt != nil {
			merged++
		}
	}
	return entities.PullRequestCounts{
		Open:           int64(len(open)),
		ClosedUnmerged: int64(len(closed)) - merged,
		Merged:         merged,
	}
}
