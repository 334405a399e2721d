package sqlite

import (
	"context"
	"database/sql"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
)

type objectivesRepo struct {
	db *sql.DB
}

func (r *objectivesRepo) ListObjectives(ctx context.Context) ([]domain.Objective, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, created_at, updated_at FROM objectives ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	objectives := make([]domain.Objective, 0)
	for rows.Next() {
		var o domain.Objective
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		objectives = append(objectives, o)
	}
	return objectives, rows.Err()
}

func (r *objectivesRepo) UpsertObjective(ctx context.Context, o domain.Objective) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO objectives (id, title, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title = excluded.title, description = excluded.description, updated_at = excluded.updated_at`,
		o.ID, o.Title, o.Description, now, now)
	return err
}
