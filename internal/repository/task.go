package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskboard/taskboard-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

const taskColumns = `id, title, description, due_date, status, user_id, created_at, updated_at`

// TaskRepository handles task persistence operations. Mutating lookups are
// owner-scoped: the query filters by both task id and owner id, so a task
// owned by someone else is indistinguishable from a missing one.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task and re-reads the stored row so generated ID and
// timestamps are populated on the task struct.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (title, description, due_date, status, user_id)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.DueDate, task.Status, task.UserID,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	*task = *stored
	return nil
}

// GetByID retrieves a task by id alone, regardless of owner.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetOwned retrieves a task by id and owner id in one step.
func (r *TaskRepository) GetOwned(ctx context.Context, id, userID int64) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, userID))
}

// Update overwrites the mutable fields of a task, scoped to its owner.
// Existence under that owner is checked by the caller via GetOwned.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, due_date = ?, status = ?
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.DueDate, task.Status, task.ID, task.UserID,
	)
	if err != nil {
		return err
	}

	stored, err := r.GetOwned(ctx, task.ID, task.UserID)
	if err != nil {
		return err
	}
	*task = *stored
	return nil
}

// Delete permanently removes a task, scoped to its owner.
func (r *TaskRepository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// List retrieves every task in the system, ordered by id.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id`
	return r.scanMany(ctx, query)
}

// ListByUser retrieves all tasks owned by the given user, most recently
// updated first.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY updated_at DESC, id DESC`
	return r.scanMany(ctx, query, userID)
}

func (r *TaskRepository) scanOne(row *sql.Row) (*model.Task, error) {
	task := &model.Task{}
	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.DueDate,
		&task.Status, &task.UserID, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) scanMany(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.DueDate,
			&t.Status, &t.UserID, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}
