// Package entities contains core business entities.
package entities

import "time"

// Frequency enumerates commit grouping granularities.
type Frequency string

const (
	// FrequencyDay groups commits per calendar day.
	FrequencyDay Frequency = "day"
	// FrequencyWeek groups commits per week, Monday-first with a zero-based
	// week before the year's first Monday.
	FrequencyWeek Frequency = "week"
	// FrequencyMonth groups commits per calendar month.
	FrequencyMonth Frequency = "month"
)

// Valid reports whether the frequency is supported.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDay, FrequencyWeek, FrequencyMonth:
		return true
	}
	return false
}

// CommitFrequency holds commit counts grouped by time bucket.
type CommitFrequency struct {
	Frequency Frequency
	Counts    map[string]int64
}

// Contributor holds the commit count of a single contributor.
type Contributor struct {
	Login   string
	Commits int64
}

// CodeFrequencyWeek holds additions and deletions for a single week.
type CodeFrequencyWeek struct {
	WeekStart time.Time
	Additions int64
	Deletions int64
}

// PullRequestCounts splits pull requests by lifecycle outcome.
type PullRequestCounts struct {
	Open           int64
	ClosedUnmerged int64
	Merged         int64
}

// HeatmapDay holds the commit count of a single calendar day.
type HeatmapDay struct {
	Date    string
	Commits int64
}
