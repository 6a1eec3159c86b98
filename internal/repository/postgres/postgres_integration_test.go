package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/lohiyakeshav/StrangeMetrics/config"
	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	records := []entities.AnalysisRecord{
		{ID: uuid.NewString(), Owner: "golang", Repo: "go", Kind: entities.KindRepoInfo},
		{ID: uuid.NewString(), Owner: "golang", Repo: "go", Kind: entities.KindLanguages},
		{ID: uuid.NewString(), Owner: "torvalds", Repo: "linux", Kind: entities.KindRepoInfo},
	}
	for _, r := range records {
		require.NoError(t, repo.InsertAnalysis(ctx, r))
	}

	// duplicate id must not fail
	require.NoError(t, repo.InsertAnalysis(ctx, records[0]))

	recent, err := repo.RecentAnalyses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	for _, r := range recent {
		require.NotEmpty(t, r.ID)
		require.False(t, r.CreatedAt.IsZero())
	}

	limited, err := repo.RecentAnalyses(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)

	stats, err := repo.AnalysisStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.ByKind, 2)
	require.Len(t, stats.TopRepos, 2)
	require.Equal(t, "golang/go", stats.TopRepos[0].FullName)
	require.EqualValues(t, 2, stats.TopRepos[0].RunCount)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=strange_metrics_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "strange_metrics_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=strange_metrics_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
