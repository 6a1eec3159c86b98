// Package github implements a client for the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lohiyakeshav/StrangeMetrics/config"
	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// PullState selects which pull requests to list.
type PullState string

const (
	// PullStateOpen lists open pull requests.
	PullStateOpen PullState = "open"
	// PullStateClosed lists closed pull requests, merged or not.
	PullStateClosed PullState = "closed"
)

// Commit is the subset of a GitHub commit used for activity grouping.
type Commit struct {
	SHA        string
	AuthoredAt time.Time
}

// Pull is the subset of a GitHub pull request used for counting.
type Pull struct {
	Number   int64
	MergedAt *time.Time
}

// Interface exposes the GitHub API operations used by the usecase layer.
type Interface interface {
	Repo(ctx context.Context, ref entities.RepoRef) (*entities.RepoInfo, error)
	Commits(ctx context.Context, ref entities.RepoRef) ([]Commit, error)
	Contributors(ctx context.Context, ref entities.RepoRef) ([]entities.Contributor, error)
	Languages(ctx context.Context, ref entities.RepoRef) (map[string]int64, error)
	CodeFrequency(ctx context.Context, ref entities.RepoRef) ([]entities.CodeFrequencyWeek, error)
	Pulls(ctx context.Context, ref entities.RepoRef, state PullState) ([]Pull, error)
}

// Client calls the GitHub REST API over HTTP.
type Client struct {
	log  *zap.SugaredLogger
	http *http.Client
	cfg  config.GitHubConfig
}

var _ Interface = (*Client)(nil)

// New creates a GitHub API client from configuration.
func New(log *zap.SugaredLogger, cfg config.GitHubConfig) *Client {
	return &Client{
		log:  log.Named("github"),
		http: &http.Client{Timeout: cfg.FetchTimeout},
		cfg:  cfg,
	}
}

type repoPayload struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Stars       int64  `json:"stargazers_count"`
	Forks       int64  `json:"forks_count"`
	Watchers    int64  `json:"watchers_count"`
	OpenIssues  int64  `json:"open_issues_count"`
}

// Repo fetches headline metrics of a repository.
func (c *Client) Repo(ctx context.Context, ref entities.RepoRef) (*entities.RepoInfo, error) {
	var payload repoPayload
	if err := c.getJSON(ctx, fmt.Sprintf("/repos/%s/%s", ref.Owner, ref.Name), nil, &payload); err != nil {
		return nil, err
	}
	return &entities.RepoInfo{
		Name:        payload.Name,
		FullName:    payload.FullName,
		Description: payload.Description,
		Stars:       payload.Stars,
		Forks:       payload.Forks,
		Watchers:    payload.Watchers,
		OpenIssues:  payload.OpenIssues,
	}, nil
}

type commitPayload struct {
	SHA    string `json:"sha"`
	Commit struct {
		Author struct {
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// Commits fetches the commit list page by page until a short page or the page cap.
func (c *Client) Commits(ctx context.Context, ref entities.RepoRef) ([]Commit, error) {
	path := fmt.Sprintf("/repos/%s/%s/commits", ref.Owner, ref.Name)

	commits := make([]Commit, 0)
	for page := 1; page <= c.cfg.MaxPages; page++ {
		var payload []commitPayload
		if err := c.getJSON(ctx, path, pageQuery(page, c.cfg.PageSize), &payload); err != nil {
			return nil, err
		}
		for _, p := range payload {
			commits = append(commits, Commit{SHA: p.SHA, AuthoredAt: p.Commit.Author.Date})
		}
		if len(payload) < c.cfg.PageSize {
			break
		}
	}
	return commits, nil
}

type contributorPayload struct {
	Login         string `json:"login"`
	Contributions int64  `json:"contributions"`
}

// Contributors fetches the contributor list with commit counts.
func (c *Client) Contributors(ctx context.Context, ref entities.RepoRef) ([]entities.Contributor, error) {
	var payload []contributorPayload
	if err := c.getJSON(ctx, fmt.Sprintf("/repos/%s/%s/contributors", ref.Owner, ref.Name), nil, &payload); err != nil {
		return nil, err
	}

	contributors := make([]entities.Contributor, 0, len(payload))
	for _, p := range payload {
		contributors = append(contributors, entities.Contributor{Login: p.Login, Commits: p.Contributions})
	}
	return contributors, nil
}

// Languages fetches per-language byte counts.
func (c *Client) Languages(ctx context.Context, ref entities.RepoRef) (map[string]int64, error) {
	langs := make(map[string]int64)
	if err := c.getJSON(ctx, fmt.Sprintf("/repos/%s/%s/languages", ref.Owner, ref.Name), nil, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// CodeFrequency fetches weekly addition/deletion stats. GitHub answers 202 while
// it generates statistics; those responses are retried with constant backoff and
// surface as ErrStatsPending when attempts run out.
func (c *Client) CodeFrequency(ctx context.Context, ref entities.RepoRef) ([]entities.CodeFrequencyWeek, error) {
	path := fmt.Sprintf("/repos/%s/%s/stats/code_frequency", ref.Owner, ref.Name)

	var weeks []entities.CodeFrequencyWeek
	backoff := retry.WithMaxRetries(c.cfg.StatsRetryAttempts, retry.NewConstant(c.cfg.StatsRetryBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var payload [][3]int64
		if err := c.getJSON(ctx, path, nil, &payload); err != nil {
			if errors.Is(err, entities.ErrStatsPending) {
				return retry.RetryableError(err)
			}
			return err
		}

		weeks = make([]entities.CodeFrequencyWeek, 0, len(payload))
		for _, w := range payload {
			weeks = append(weeks, entities.CodeFrequencyWeek{
				WeekStart: time.Unix(w[0], 0).UTC(),
				Additions: w[1],
				Deletions: w[2],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return weeks, nil
}

type pullPayload struct {
	Number   int64      `json:"number"`
	MergedAt *time.Time `json:"merged_at"`
}

// Pulls fetches all pull requests in the given state page by page.
func (c *Client) Pulls(ctx context.Context, ref entities.RepoRef, state PullState) ([]Pull, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls", ref.Owner, ref.Name)

	pulls := make([]Pull, 0)
	for page := 1; page <= c.cfg.MaxPages; page++ {
		query := pageQuery(page, c.cfg.PageSize)
		query.Set("state", string(state))

		var payload []pullPayload
		if err := c.getJSON(ctx, path, query, &payload); err != nil {
			return nil, err
		}
		for _, p := range payload {
			pulls = append(pulls, Pull{Number: p.Number, MergedAt: p.MergedAt})
		}
		if len(payload) < c.cfg.PageSize {
			break
		}
	}
	return pulls, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "token "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := mapStatus(resp.StatusCode); err != nil {
		c.log.Debugw("github request failed", "path", path, "status", resp.StatusCode)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", entities.ErrUpstream, path, err)
	}
	return nil
}

func mapStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusAccepted:
		return entities.ErrStatsPending
	case code == http.StatusNotFound:
		return entities.ErrRepoNotFound
	case code == http.StatusForbidden, code == http.StatusTooManyRequests:
		return entities.ErrRateLimited
	default:
		return fmt.Errorf("%w: status %d", entities.ErrUpstream, code)
	}
}

func pageQuery(page, perPage int) url.Values {
	return url.Values{
		"page":     []string{strconv.Itoa(page)},
		"per_page": []string{strconv.Itoa(perPage)},
	}
}
