package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/pkg/apperror"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

type postgresRenderLogRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresRenderLogRepo(db *pgxpool.Pool, logger logger.Logger) renderlog.Repository {
	return &postgresRenderLogRepo{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var renderLogColumns = []string{"id", "request_id", "template", "status", "size_bytes", "duration_ms", "occurred_at"}

func scanRenderLogEntry(row pgx.Row) (*renderlog.Entry, error) {
	e := &renderlog.Entry{}
	var status string
	err := row.Scan(&e.ID, &e.RequestID, &e.Template, &status, &e.SizeBytes, &e.DurationMs, &e.OccurredAt)
	if err != nil {
		return nil, apperror.NewInternal("failed to scan render log row", err)
	}
	e.Status = renderlog.Status(status)
	return e, nil
}

func insertRenderLogQuery(e *renderlog.Entry) sq.InsertBuilder {
	return psql.Insert("render_log").
		Columns(renderLogColumns...).
		Values(e.ID, e.RequestID, e.Template, string(e.Status), e.SizeBytes, e.DurationMs, e.OccurredAt).
		Suffix("ON CONFLICT (id) DO NOTHING")
}

func listRecentRenderLogQuery(limit int) sq.SelectBuilder {
	return psql.Select(renderLogColumns...).
		From("render_log").
		OrderBy("occurred_at DESC").
		Limit(uint64(limit))
}

// Save is idempotent on the entry id, so a redelivered event is recorded once.
func (r *postgresRenderLogRepo) Save(ctx context.Context, e *renderlog.Entry) error {
	sql, args, err := insertRenderLogQuery(e).ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build render log insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to insert render log", err)
	}
	return nil
}

func (r *postgresRenderLogRepo) ListRecent(ctx context.Context, limit int) ([]*renderlog.Entry, error) {
	sql, args, err := listRecentRenderLogQuery(limit).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build render log query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query render log", err)
	}
	defer rows.Close()

	entries := make([]*renderlog.Entry, 0, limit)
	for rows.Next() {
		e, err := scanRenderLogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating render log rows", err)
	}
	return entries, nil
}
