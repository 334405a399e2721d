package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
	"github.com/strivehq/goaltrack/internal/goaltrack/store"
	"github.com/strivehq/goaltrack/pkg/idx"
	"github.com/strivehq/goaltrack/pkg/slogx"
)

var (
	// ErrEmptyTitle reports a task title that is empty after trimming.
	ErrEmptyTitle = errors.New("empty_title")

	// ErrTaskNotFound reports an unknown task id. A task owned by a
	// different user is reported the same way so ids cannot be probed
	// across accounts.
	ErrTaskNotFound = errors.New("task_not_found")
)

// TaskService implements owner-scoped CRUD over tasks. Every mutating
// operation re-verifies that the task belongs to the caller.
type TaskService struct {
	Store store.Store
}

// List returns the caller's tasks in storage order.
func (s *TaskService) List(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.Store.Tasks().ListTasksByUser(ctx, userID)
}

// Create persists a new task owned by userID. The completion flag always
// starts false.
func (s *TaskService) Create(
	ctx context.Context,
	userID, title, description string,
	date time.Time,
	departmentalGoal string,
) (domain.Task, error) {
	l := slogx.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, ErrEmptyTitle
	}

	task := domain.Task{
		ID:               idx.New().String(),
		Title:            title,
		Description:      description,
		Completed:        false,
		Date:             date,
		DepartmentalGoal: departmentalGoal,
		UserID:           userID,
	}

	if err := s.Store.Tasks().CreateTask(ctx, task); err != nil {
		return domain.Task{}, err
	}

	l.Info("task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// Update replaces the mutable fields of the caller's task.
func (s *TaskService) Update(
	ctx context.Context,
	userID, id, title, description string,
	date time.Time,
	completed bool,
	departmentalGoal string,
) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, ErrEmptyTitle
	}

	task, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return domain.Task{}, err
	}

	task.Title = title
	task.Description = description
	task.Date = date
	task.Completed = completed
	task.DepartmentalGoal = departmentalGoal

	if err := s.Store.Tasks().UpdateTask(ctx, task); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

// Toggle updates only the completion flag of the caller's task.
func (s *TaskService) Toggle(ctx context.Context, userID, id string, completed bool) (domain.Task, error) {
	task, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.Store.Tasks().SetTaskCompleted(ctx, id, completed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	task.Completed = completed
	return task, nil
}

// Delete removes the caller's task by id.
func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	l := slogx.FromContext(ctx)

	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.Store.Tasks().DeleteTask(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	l.Info("task deleted", "task_id", id, "user_id", userID)
	return nil
}

// getOwned loads a task and verifies ownership, folding "exists but owned by
// someone else" into ErrTaskNotFound.
func (s *TaskService) getOwned(ctx context.Context, userID, id string) (domain.Task, error) {
	task, err := s.Store.Tasks().GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	if task.UserID != userID {
		return domain.Task{}, ErrTaskNotFound
	}
	return task, nil
}
