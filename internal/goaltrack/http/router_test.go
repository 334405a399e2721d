package http_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	httpapi "github.com/strivehq/goaltrack/internal/goaltrack/http"
	"github.com/strivehq/goaltrack/internal/goaltrack/service"
	"github.com/strivehq/goaltrack/internal/goaltrack/store/drivers/sqlite"
	"github.com/strivehq/goaltrack/pkg/cryptox"
	"github.com/strivehq/goaltrack/pkg/goalsdk"
	"github.com/strivehq/goaltrack/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "goaltrack-test"

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "goaltrack-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// setupServer stands up the full router over an in-memory store and returns
// an SDK client pointed at it.
func setupServer(t *testing.T) *goalsdk.Client {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test-key", priv)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierEdDSA("test-key", pub)
	require.NoError(t, err)

	router := httpapi.NewRouter(verifier, testIssuer, "test", st, slog.Default())
	router.TokenService = &service.TokenService{
		Signer:    signer,
		Store:     st,
		Issuer:    testIssuer,
		AccessTTL: jwtx.DefaultAccessTokenTTL,
	}
	router.UserService = &service.UserService{Store: st}
	router.TaskService = &service.TaskService{Store: st}
	router.ObjectiveService = &service.ObjectiveService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return goalsdk.NewClient(srv.URL)
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *goalsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	require.NoError(t, client.Register(ctx, "alice", "S3cret!pw", "alice@example.com"))

	// Duplicate registrations conflict
	err := client.Register(ctx, "alice", "other", "other@example.com")
	requireAPIError(t, err, http.StatusConflict, goalsdk.ErrorCodeConflict)

	// Missing fields are a validation error
	err = client.Register(ctx, "", "pw", "x@example.com")
	requireAPIError(t, err, http.StatusBadRequest, goalsdk.ErrorCodeValidation)

	// Wrong password
	_, err = client.Login(ctx, "alice", "wrong")
	requireAPIError(t, err, http.StatusUnauthorized, goalsdk.ErrorCodeUnauthorized)

	// Success
	token, err := client.Login(ctx, "alice", "S3cret!pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)
}

func TestTasksRequireToken(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	_, err := client.ListTasks(ctx, "")
	requireAPIError(t, err, http.StatusUnauthorized, goalsdk.ErrorCodeInvalidToken)

	_, err = client.ListTasks(ctx, "not-a-jwt")
	requireAPIError(t, err, http.StatusUnauthorized, goalsdk.ErrorCodeInvalidToken)
}

func TestTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	require.NoError(t, client.Register(ctx, "alice", "pw", "alice@example.com"))
	token, err := client.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	tasks, err := client.ListTasks(ctx, token)
	require.NoError(t, err)
	require.Empty(t, tasks)

	// Create accepts a bare date and answers with RFC 3339
	task, err := client.CreateTask(ctx, token, goalsdk.CreateTaskRequest{
		Title:       "write report",
		Description: "quarterly numbers",
		Date:        "2026-09-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.False(t, task.Completed, "new tasks always start incomplete")
	require.Equal(t, "2026-09-01T00:00:00Z", task.Date)

	// Empty title rejected
	_, err = client.CreateTask(ctx, token, goalsdk.CreateTaskRequest{Title: "  ", Date: "2026-09-01"})
	requireAPIError(t, err, http.StatusBadRequest, goalsdk.ErrorCodeValidation)

	// Bad date rejected
	_, err = client.CreateTask(ctx, token, goalsdk.CreateTaskRequest{Title: "x", Date: "next tuesday"})
	requireAPIError(t, err, http.StatusBadRequest, goalsdk.ErrorCodeValidation)

	// Update
	updated, err := client.UpdateTask(ctx, token, task.ID, goalsdk.UpdateTaskRequest{
		Title:            "renamed",
		Description:      "new description",
		Date:             time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		Completed:        false,
		DepartmentalGoal: "obj-1",
	})
	require.NoError(t, err)
	require.Equal(t, "renamed", updated.Title)
	require.Equal(t, "obj-1", updated.DepartmentalGoal)

	// Toggle
	toggled, err := client.ToggleTask(ctx, token, task.ID, true)
	require.NoError(t, err)
	require.True(t, toggled.Completed)
	require.Equal(t, "renamed", toggled.Title, "toggle changes only the flag")

	// Delete, then a second delete answers 404
	require.NoError(t, client.DeleteTask(ctx, token, task.ID))
	err = client.DeleteTask(ctx, token, task.ID)
	requireAPIError(t, err, http.StatusNotFound, goalsdk.ErrorCodeNotFound)

	tasks, err = client.ListTasks(ctx, token)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTasksAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	require.NoError(t, client.Register(ctx, "alice", "pw", "alice@example.com"))
	require.NoError(t, client.Register(ctx, "bob", "pw", "bob@example.com"))

	aliceToken, err := client.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	bobToken, err := client.Login(ctx, "bob", "pw")
	require.NoError(t, err)

	task, err := client.CreateTask(ctx, aliceToken, goalsdk.CreateTaskRequest{
		Title: "alice only", Date: "2026-09-01",
	})
	require.NoError(t, err)

	// Bob cannot see it
	tasks, err := client.ListTasks(ctx, bobToken)
	require.NoError(t, err)
	require.Empty(t, tasks)

	// And cannot touch it; the task reads as missing, not forbidden
	_, err = client.UpdateTask(ctx, bobToken, task.ID, goalsdk.UpdateTaskRequest{
		Title: "hijacked", Date: "2026-09-01",
	})
	requireAPIError(t, err, http.StatusNotFound, goalsdk.ErrorCodeNotFound)

	_, err = client.ToggleTask(ctx, bobToken, task.ID, true)
	requireAPIError(t, err, http.StatusNotFound, goalsdk.ErrorCodeNotFound)

	err = client.DeleteTask(ctx, bobToken, task.ID)
	requireAPIError(t, err, http.StatusNotFound, goalsdk.ErrorCodeNotFound)

	// Alice's task survived all of it
	tasks, err = client.ListTasks(ctx, aliceToken)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "alice only", tasks[0].Title)
	require.False(t, tasks[0].Completed)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	require.NoError(t, client.Register(ctx, "alice", "old-pw", "alice@example.com"))

	// Wrong current password
	err := client.ChangePassword(ctx, "alice", "bad", "new-pw")
	requireAPIError(t, err, http.StatusUnauthorized, goalsdk.ErrorCodeUnauthorized)

	require.NoError(t, client.ChangePassword(ctx, "alice", "old-pw", "new-pw"))

	// Old credential is dead, new one works
	_, err = client.Login(ctx, "alice", "old-pw")
	requireAPIError(t, err, http.StatusUnauthorized, goalsdk.ErrorCodeUnauthorized)

	_, err = client.Login(ctx, "alice", "new-pw")
	require.NoError(t, err)
}

func TestObjectiveCatalogIsPublic(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	// No auth required, empty catalog is an empty array
	objectives, err := client.ListObjectives(ctx)
	require.NoError(t, err)
	require.Empty(t, objectives)
}
