package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
	"github.com/strivehq/goaltrack/internal/goaltrack/service"
	"github.com/strivehq/goaltrack/pkg/goalsdk"
	"github.com/strivehq/goaltrack/pkg/httpx"
	"github.com/strivehq/goaltrack/pkg/slogx"
)

// taskToWire converts a domain task to its API representation.
func taskToWire(t domain.Task) goalsdk.Task {
	return goalsdk.Task{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Completed:        t.Completed,
		Date:             t.Date.UTC().Format(time.RFC3339),
		DepartmentalGoal: t.DepartmentalGoal,
		User:             t.UserID,
	}
}

// parseTaskDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func parseTaskDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

type TaskListHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		List tasks
//	@Description	Returns every task owned by the authenticated user.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		goalsdk.Task
//	@Failure		401	{object}	goalsdk.ErrorResponse	"invalid or missing access token"
//	@Failure		500	{object}	goalsdk.ErrorResponse	"internal server error"
//	@Router			/tasks [get].
func (h *TaskListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		goalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	tasks, err := h.TaskService.List(ctx, userID)
	if err != nil {
		log.Error("failed to list tasks", "user_id", userID, "err", err)
		goalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]goalsdk.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToWire(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type TaskCreateHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Create a task
//	@Description	Creates a task owned by the authenticated user. Completion always starts false.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		goalsdk.CreateTaskRequest	true	"title, description, date, optional departmentalGoal"
//	@Success		201		{object}	goalsdk.Task
//	@Failure		400		{object}	goalsdk.ErrorResponse	"empty title or invalid date"
//	@Failure		401		{object}	goalsdk.ErrorResponse	"invalid or missing access token"
//	@Failure		500		{object}	goalsdk.ErrorResponse	"internal server error"
//	@Router			/tasks [post].
func (h *TaskCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		goalsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req goalsdk.CreateTaskRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		goalsdk.ErrValidation.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	date, err := parseTaskDate(req.Date)
	if err != nil {
		goalsdk.ErrValidation.WithDescription("Task date is required.").WriteError(w)
		return
	}

	task, err := h.TaskService.Create(ctx, userID, req.Title, req.Description, date, req.DepartmentalGoal)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) {
			goalsdk.ErrValidation.WithDescription("Task title is required.").WriteError(w)
			return
		}
		log.Error("failed to create task", "user_id", userID, "err", err)
		goalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, taskToWire(task))
}

type TaskUpdateHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Update a task
//	@Description	Full replacement of a task's mutable fields (title, description, date, completed, departmentalGoal).
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Task ID"
//	@Param			request	body		goalsdk.UpdateTaskRequest	true	"title, description, date, completed"
//	@Success		200		{object}	goalsdk.Task
//	@Failure		400		{object}	goalsdk.ErrorResponse	"empty title or invalid date"
//	@Failure		404		{object}	goalsdk.ErrorResponse	"task not found"
//	@Failure		500		{object}	goalsdk.ErrorResponse	"internal server error"
//	@Router			/tasks/{id} [put].
func (h *TaskUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		goalsdk.ErrInvalidToken.WriteError(w)
		return
	}
	id := r.PathValue("id")

	var req goalsdk.UpdateTaskRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		goalsdk.ErrValidation.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	date, err := parseTaskDate(req.Date)
	if err != nil {
		goalsdk.ErrValidation.WithDescription("Task date is required.").WriteError(w)
		return
	}

	task, err := h.TaskService.Update(ctx, userID, id, req.Title, req.Description, date, req.Completed, req.DepartmentalGoal)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyTitle):
			goalsdk.ErrValidation.WithDescription("Task title is required.").WriteError(w)
		case errors.Is(err, service.ErrTaskNotFound):
			goalsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("failed to update task", "task_id", id, "err", err)
			goalsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskToWire(task))
}

type TaskToggleHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Toggle task completion
//	@Description	Partial update of only the completion flag.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Task ID"
//	@Param			request	body		goalsdk.ToggleTaskRequest	true	"completed"
//	@Success		200		{object}	goalsdk.Task
//	@Failure		404		{object}	goalsdk.ErrorResponse	"task not found"
//	@Failure		500		{object}	goalsdk.ErrorResponse	"internal server error"
//	@Router			/tasks/{id}/toggle [put].
func (h *TaskToggleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		goalsdk.ErrInvalidToken.WriteError(w)
		return
	}
	id := r.PathValue("id")

	var req goalsdk.ToggleTaskRequest
	if err := httpx.ReadJSON(w, r, &req); err != nil {
		goalsdk.ErrValidation.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	task, err := h.TaskService.Toggle(ctx, userID, id, req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			goalsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to toggle task", "task_id", id, "err", err)
		goalsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskToWire(task))
}

type TaskDeleteHandler struct {
	TaskService *service.TaskService
}

// ServeHTTP godoc
//
//	@Summary		Delete a task
//	@Description	Removes a task by id. A repeated delete of the same id answers 404.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Task ID"
//	@Success		204	"deleted"
//	@Failure		404	{object}	goalsdk.ErrorResponse	"task not found"
//	@Failure		500	{object}	goalsdk.ErrorResponse	"internal server error"
//	@Router			/tasks/{id} [delete].
func (h *TaskDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		goalsdk.ErrInvalidToken.WriteError(w)
		return
	}
	id := r.PathValue("id")

	if err := h.TaskService.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			goalsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("failed to delete task", "task_id", id, "err", err)
		goalsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
