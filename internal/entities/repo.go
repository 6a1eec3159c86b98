// Package entities contains core business entities.
package entities

import (
	"fmt"
	"strings"
)

// RepoRef identifies a GitHub repository by owner and name.
type RepoRef struct {
	Owner string
	Name  string
}

// FullName returns the owner/name form used in GitHub API paths.
func (r RepoRef) FullName() string {
	return r.Owner + "/" + r.Name
}

// ParseRepoURL extracts owner and repository name from a GitHub URL.
// Trailing slashes and a ".git" suffix are stripped before parsing.
func ParseRepoURL(url string) (RepoRef, error) {
	clean := strings.TrimRight(strings.TrimSpace(url), "/")
	clean = strings.TrimSuffix(clean, ".git")

	parts := strings.Split(clean, "/")
	if len(parts) < 2 {
		return RepoRef{}, fmt.Errorf("%w: %s", ErrInvalidRepoURL, url)
	}
	owner, name := parts[len(parts)-2], parts[len(parts)-1]
	if owner == "" || name == "" {
		return RepoRef{}, fmt.Errorf("%w: %s", ErrInvalidRepoURL, url)
	}
	return RepoRef{Owner: owner, Name: name}, nil
}

// RepoInfo holds headline metrics of a repository.
type RepoInfo struct {
	Name        string
	FullName    string
	Description string
	Stars       int64
	Forks       int64
	Watchers    int64
	OpenIssues  int64
}

// LanguageBreakdown holds byte counts and percentages per language.
type LanguageBreakdown struct {
	Bytes       map[string]int64
	Percentages map[string]float64
}
