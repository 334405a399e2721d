package sqlite

import (
	"context"
	"database/sql"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
	"github.com/strivehq/goaltrack/internal/goaltrack/store"
)

type tasksRepo struct {
	db *sql.DB
}

const taskColumns = `id, title, description, completed, date, departmental_goal, user_id, created_at, updated_at`

func scanTask(scan func(dest ...any) error) (domain.Task, error) {
	var t domain.Task
	var goal sql.NullString
	err := scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.Date,
		&goal, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	t.DepartmentalGoal = mapNullString(goal)
	return t, nil
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row.Scan)
}

func (r *tasksRepo) ListTasksByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, completed, date, departmental_goal, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.Completed, t.Date,
		mapStringNull(t.DepartmentalGoal), t.UserID, now, now)
	return mapConflict(err)
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, completed = ?, date = ?, departmental_goal = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title, t.Description, t.Completed, t.Date,
		mapStringNull(t.DepartmentalGoal), nowUTC(), t.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *tasksRepo) SetTaskCompleted(ctx context.Context, id string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = ?, updated_at = ? WHERE id = ?`,
		completed, nowUTC(), id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// requireAffected maps "no rows touched" to store.ErrNotFound for updates and
// deletes keyed by id.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
