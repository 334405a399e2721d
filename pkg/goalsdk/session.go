package goalsdk

import (
	"context"
	"errors"
	"sync"
)

// State is the session lifecycle state.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateRegistering     State = "registering"
	StateAuthenticated   State = "authenticated"
)

var (
	// ErrNotAuthenticated is returned when an operation requires a login.
	ErrNotAuthenticated = errors.New("goalsdk: session is not authenticated")

	// ErrInvalidTransition is returned for state machine misuse, e.g.
	// registering while already logged in.
	ErrInvalidTransition = errors.New("goalsdk: invalid session state transition")

	// ErrDeleteNotConfirmed is returned when the confirmation callback
	// declines a task deletion before any request is made.
	ErrDeleteNotConfirmed = errors.New("goalsdk: task deletion not confirmed")
)

// ConfirmFunc is asked to approve a task deletion before the request is
// issued. Returning false aborts the deletion.
type ConfirmFunc func(task Task) bool

// Session is the stateful client layer: it owns the bearer token and a local
// cache of the user's task list, and moves through the lifecycle
// Unauthenticated -> Registering -> Unauthenticated -> Authenticated.
//
// The token and cache live on the session object itself so callers can hold
// several independent sessions; there is no package-level state.
type Session struct {
	client        *Client
	confirmDelete ConfirmFunc

	mu    sync.Mutex
	state State
	token string
	tasks []Task
}

// NewSession creates an unauthenticated session. confirm guards deletions;
// pass nil to approve every delete.
func NewSession(client *Client, confirm ConfirmFunc) *Session {
	if confirm == nil {
		confirm = func(Task) bool { return true }
	}
	return &Session{
		client:        client,
		confirmDelete: confirm,
		state:         StateUnauthenticated,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the bearer token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// BeginRegistration moves the session into the registration flow.
func (s *Session) BeginRegistration() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateUnauthenticated {
		return ErrInvalidTransition
	}
	s.state = StateRegistering
	return nil
}

// CancelRegistration abandons the registration flow.
func (s *Session) CancelRegistration() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRegistering {
		return ErrInvalidTransition
	}
	s.state = StateUnauthenticated
	return nil
}

// Register creates the account and returns the session to the
// unauthenticated state; the user must then log in.
func (s *Session) Register(ctx context.Context, username, password, email string) error {
	s.mu.Lock()
	if s.state != StateRegistering {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	s.mu.Unlock()

	if err := s.client.Register(ctx, username, password, email); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = StateUnauthenticated
	s.mu.Unlock()
	return nil
}

// Login authenticates, stores the token and loads the task cache.
func (s *Session) Login(ctx context.Context, username, password string) error {
	s.mu.Lock()
	if s.state == StateAuthenticated {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	s.mu.Unlock()

	token, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	tasks, err := s.client.ListTasks(ctx, token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = token
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// Logout discards the token and cached tasks. Purely client-side; the server
// keeps no session state to revoke.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUnauthenticated
	s.token = ""
	s.tasks = nil
}

// Tasks returns a copy of the cached task list.
func (s *Session) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Refresh reloads the task cache from the server.
func (s *Session) Refresh(ctx context.Context) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}

	tasks, err := s.client.ListTasks(ctx, token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// Create adds a task. The cache is updated only after the server confirms.
func (s *Session) Create(ctx context.Context, req CreateTaskRequest) (Task, error) {
	token, err := s.requireToken()
	if err != nil {
		return Task{}, err
	}

	task, err := s.client.CreateTask(ctx, token, req)
	if err != nil {
		return Task{}, err
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	return task, nil
}

// Update replaces a task's mutable fields. The cache is updated only after
// the server confirms.
func (s *Session) Update(ctx context.Context, id string, req UpdateTaskRequest) (Task, error) {
	token, err := s.requireToken()
	if err != nil {
		return Task{}, err
	}

	task, err := s.client.UpdateTask(ctx, token, id, req)
	if err != nil {
		return Task{}, err
	}

	s.mu.Lock()
	s.replaceCached(task)
	s.mu.Unlock()
	return task, nil
}

// Toggle flips a task's completion flag optimistically: the cache changes
// immediately and reverts if the server rejects the request.
func (s *Session) Toggle(ctx context.Context, id string, completed bool) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}

	s.mu.Lock()
	prev, found := s.setCachedCompleted(id, completed)
	s.mu.Unlock()

	if _, err := s.client.ToggleTask(ctx, token, id, completed); err != nil {
		if found {
			s.mu.Lock()
			s.setCachedCompleted(id, prev)
			s.mu.Unlock()
		}
		return err
	}
	return nil
}

// Delete asks the confirmation callback, then removes the task. The cache is
// updated only after the server confirms.
func (s *Session) Delete(ctx context.Context, id string) error {
	token, err := s.requireToken()
	if err != nil {
		return err
	}

	s.mu.Lock()
	var target Task
	for _, t := range s.tasks {
		if t.ID == id {
			target = t
			break
		}
	}
	s.mu.Unlock()

	if !s.confirmDelete(target) {
		return ErrDeleteNotConfirmed
	}

	if err := s.client.DeleteTask(ctx, token, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// ListObjectives passes through to the catalog; no auth or caching involved.
func (s *Session) ListObjectives(ctx context.Context) ([]Objective, error) {
	return s.client.ListObjectives(ctx)
}

func (s *Session) requireToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated || s.token == "" {
		return "", ErrNotAuthenticated
	}
	return s.token, nil
}

// replaceCached swaps the cached copy of a task. Caller holds s.mu.
func (s *Session) replaceCached(task Task) {
	for i, t := range s.tasks {
		if t.ID == task.ID {
			s.tasks[i] = task
			return
		}
	}
}

// setCachedCompleted sets the cached completion flag and returns the previous
// value. Caller holds s.mu.
func (s *Session) setCachedCompleted(id string, completed bool) (prev bool, found bool) {
	for i, t := range s.tasks {
		if t.ID == id {
			prev = t.Completed
			s.tasks[i].Completed = completed
			return prev, true
		}
	}
	return false, false
}
