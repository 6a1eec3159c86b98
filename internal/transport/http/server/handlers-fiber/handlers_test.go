package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lohiyakeshav/StrangeMetrics/internal/api"
	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"
	"github.com/lohiyakeshav/StrangeMetrics/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usecaseMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*usecaseMock)(nil)

func (m *usecaseMock) ValidateRepo(ctx context.Context, url string) (bool, error) {
	args := m.Called(ctx, url)
	return args.Bool(0), args.Error(1)
}

func (m *usecaseMock) RepoInfo(ctx context.Context, url string) (*entities.RepoInfo, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RepoInfo), args.Error(1)
}

func (m *usecaseMock) Languages(ctx context.Context, url string) (entities.LanguageBreakdown, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return entities.LanguageBreakdown{}, args.Error(1)
	}
	return args.Get(0).(entities.LanguageBreakdown), args.Error(1)
}

func (m *usecaseMock) CommitFrequency(ctx context.Context, url string, freq entities.Frequency) (entities.CommitFrequency, error) {
	args := m.Called(ctx, url, freq)
	if args.Get(0) == nil {
		return entities.CommitFrequency{}, args.Error(1)
	}
	return args.Get(0).(entities.CommitFrequency), args.Error(1)
}

func (m *usecaseMock) CodeFrequency(ctx context.Context, url string) ([]entities.CodeFrequencyWeek, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.CodeFrequencyWeek), args.Error(1)
}

func (m *usecaseMock) ContributionHeatmap(ctx context.Context, url string) ([]entities.HeatmapDay, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.HeatmapDay), args.Error(1)
}

func (m *usecaseMock) Contributors(ctx context.Context, url string) ([]entities.Contributor, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Contributor), args.Error(1)
}

func (m *usecaseMock) PullRequestCounts(ctx context.Context, url string) (entities.PullRequestCounts, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return entities.PullRequestCounts{}, args.Error(1)
	}
	return args.Get(0).(entities.PullRequestCounts), args.Error(1)
}

func (m *usecaseMock) RecentAnalyses(ctx context.Context, limit int) ([]entities.AnalysisRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.AnalysisRecord), args.Error(1)
}

func (m *usecaseMock) AnalysisStats(ctx context.Context) (entities.AnalysisStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return entities.AnalysisStats{}, args.Error(1)
	}
	return args.Get(0).(entities.AnalysisStats), args.Error(1)
}

const repoURL = "https://github.com/golang/go"

func newTestApp(uc *usecaseMock) *fiber.App {
	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), uc)
	api.RegisterHandlers(app, h)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestPostValidateRepoOK(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("ValidateRepo", mock.Anything, repoURL).Return(true, nil)
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/validate_repo", api.RepoRequest{URL: repoURL})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ValidateRepoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Valid)
	require.Nil(t, body.Error)
}

func TestPostValidateRepoNotFound(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("ValidateRepo", mock.Anything, repoURL).Return(false, nil)
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/validate_repo", api.RepoRequest{URL: repoURL})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ValidateRepoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.False(t, body.Valid)
	require.NotNil(t, body.Error)
}

func TestPostValidateRepoMissingURL(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/validate_repo", map[string]string{})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "ValidateRepo", mock.Anything, mock.Anything)
}

func TestPostRepo(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("RepoInfo", mock.Anything, repoURL).Return(&entities.RepoInfo{
		Name:     "go",
		FullName: "golang/go",
		Stars:    120000,
		Forks:    17000,
		Watchers: 120000,
	}, nil)
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/repo", api.RepoRequest{URL: repoURL})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.RepoInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "go", body.Name)
	require.EqualValues(t, 120000, body.Stars)
}

func TestPostRepoNotFound(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("RepoInfo", mock.Anything, repoURL).Return(nil, entities.ErrRepoNotFound)
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/repo", api.RepoRequest{URL: repoURL})
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostCommitsPassesFrequency(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("CommitFrequency", mock.Anything, repoURL, entities.FrequencyWeek).Return(entities.CommitFrequency{
		Frequency: entities.FrequencyWeek,
		Counts:    map[string]int64{"2024-01": 3},
	}, nil)
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/commits", api.CommitsRequest{URL: repoURL, Frequency: "week"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.CommitFrequencyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.EqualValues(t, 3, body.CommitFrequency["2024-01"])
}

func TestPostCommitsRejectsUnknownFrequency(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/commits", map[string]string{"url": repoURL, "frequency": "year"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "CommitFrequency", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostCodeFrequencyPending(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("CodeFrequency", mock.Anything, repoURL).Return(nil, entities.ErrStatsPending)
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/code_frequency", api.RepoRequest{URL: repoURL})
	defer resp.Body.Close()

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestPostCodeFrequencyEmpty(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("CodeFrequency", mock.Anything, repoURL).Return([]entities.CodeFrequencyWeek{}, nil)
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/code_frequency", api.RepoRequest{URL: repoURL})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Message)
}

func TestPostPullRequests(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("PullRequestCounts", mock.Anything, repoURL).Return(entities.PullRequestCounts{
		Open:           4,
		ClosedUnmerged: 2,
		Merged:         9,
	}, nil)
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/pull_requests", api.RepoRequest{URL: repoURL})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.PullRequestCounts
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.PullRequestCounts{Open: 4, ClosedUnmerged: 2, Merged: 9}, body)
}

func TestPostContributionHeatmap(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("ContributionHeatmap", mock.Anything, repoURL).Return([]entities.HeatmapDay{
		{Date: "2024-05-01", Commits: 1},
		{Date: "2024-05-02", Commits: 0},
	}, nil)
	app := newTestApp(uc)

	resp := postJSON(t, app, "/api/contribution_heatmap", api.RepoRequest{URL: repoURL})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []api.HeatmapDay
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
}

func TestGetHistoryPassesLimit(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("RecentAnalyses", mock.Anything, 5).Return([]entities.AnalysisRecord{
		{ID: "id-1", Owner: "golang", Repo: "go", Kind: entities.KindRepoInfo, CreatedAt: time.Now()},
	}, nil)
	app := newTestApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Analyses []api.AnalysisRecord `json:"analyses"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Analyses, 1)
	require.Equal(t, "repo_info", body.Analyses[0].Kind)
}

func TestGetHistoryStats(t *testing.T) {
	uc := &usecaseMock{}
	uc.On("AnalysisStats", mock.Anything).Return(entities.AnalysisStats{
		ByKind:   []entities.KindStat{{Kind: entities.KindLanguages, RunCount: 3}},
		TopRepos: []entities.RepoStat{{FullName: "golang/go", RunCount: 3}},
	}, nil)
	app := newTestApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/history/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body entities.AnalysisStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.ByKind, 1)
	require.EqualValues(t, 3, body.ByKind[0].RunCount)
}
