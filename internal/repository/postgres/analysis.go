package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lohiyakeshav/StrangeMetrics/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertAnalysisQuery = `INSERT INTO analyses(id, owner, repo, kind) VALUES ($1,$2,$3,$4)`
	recentAnalysesQuery = `SELECT id, owner, repo, kind, created_at
FROM analyses
ORDER BY created_at DESC
LIMIT $1`
	statsByKindQuery = `SELECT kind, COUNT(*) FROM analyses GROUP BY kind ORDER BY COUNT(*) DESC`
	topReposQuery    = `SELECT owner || '/' || repo AS full_name, COUNT(*)
FROM analyses
GROUP BY owner, repo
ORDER BY COUNT(*) DESC
LIMIT $1`
)

const topReposLimit = 10

// InsertAnalysis records a single analysis run.
func (p *Postgres) InsertAnalysis(ctx context.Context, record entities.AnalysisRecord) error {
	if _, err := p.db.Exec(ctx, insertAnalysisQuery, record.ID, record.Owner, record.Repo, record.Kind); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			p.log.Warnw("duplicate analysis id", "id", record.ID)
			return nil
		}
		p.log.Errorw("failed to insert analysis", "error", err, "id", record.ID)
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

// RecentAnalyses returns the latest recorded runs, newest first.
func (p *Postgres) RecentAnalyses(ctx context.Context, limit int) ([]entities.AnalysisRecord, error) {
	rows, err := p.db.Query(ctx, recentAnalysesQuery, limit)
	if err != nil {
		p.log.Errorw("failed to select recent analyses", "error", err)
		return nil, fmt.Errorf("recent analyses: %w", err)
	}
	defer rows.Close()

	records := make([]entities.AnalysisRecord, 0)
	for rows.Next() {
		var r entities.AnalysisRecord
		if err := rows.Scan(&r.ID, &r.Owner, &r.Repo, &r.Kind, &r.CreatedAt); err != nil {
			p.log.Errorw("failed to scan analysis", "error", err)
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		p.log.Errorw("error iterating analyses", "error", err)
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}
	return records, nil
}

// AnalysisStats returns run counts grouped by kind and the most analyzed repositories.
func (p *Postgres) AnalysisStats(ctx context.Context) (entities.AnalysisStats, error) {
	res := entities.AnalysisStats{}

	rows, err := p.db.Query(ctx, statsByKindQuery)
	if err != nil {
		return res, fmt.Errorf("stats by kind: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entities.KindStat
		if err := rows.Scan(&s.Kind, &s.RunCount); err != nil {
			return res, fmt.Errorf("scan kind stat: %w", err)
		}
		res.ByKind = append(res.ByKind, s)
	}
	if err := rows.Err(); err != nil {
		return res, fmt.Errorf("iterate kind stat: %w", err)
	}

	rows2, err := p.db.Query(ctx, topReposQuery, topReposLimit)
	if err != nil {
		return res, fmt.Errorf("top repos: %w", err)
	}
	defer rows2.Close()
	for rows2.Next() {
		var s entities.RepoStat
		if err := rows2.Scan(&s.FullName, &s.RunCount); err != nil {
			return res, fmt.Errorf("scan repo stat: %w", err)
		}
		res.TopRepos = append(res.TopRepos, s)
	}
	if err := rows2.Err(); err != nil {
		return res, fmt.Errorf("iterate repo stat: %w", err)
	}

	return res, nil
}
