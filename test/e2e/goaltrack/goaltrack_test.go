package goaltrack_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/strivehq/goaltrack/pkg/goalsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	resp, err := http.Get(baseURL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(baseURL + "/readyz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAccountLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := goalsdk.NewClient(baseURL)

	require.NoError(t, client.Register(ctx, testUsername, testPassword, testEmail))

	// Duplicate registration conflicts
	err := client.Register(ctx, testUsername, "other-pw", "other@example.com")
	requireStatus(t, err, http.StatusConflict, "duplicate username")

	// Wrong password is rejected
	_, err = client.Login(ctx, testUsername, "wrong-password")
	requireStatus(t, err, http.StatusUnauthorized, "wrong password")

	token, err := client.Login(ctx, testUsername, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Password rotation invalidates the old credential
	require.NoError(t, client.ChangePassword(ctx, testUsername, testPassword, "N3w!password"))

	_, err = client.Login(ctx, testUsername, testPassword)
	requireStatus(t, err, http.StatusUnauthorized, "old password after change")

	_, err = client.Login(ctx, testUsername, "N3w!password")
	require.NoError(t, err)
}

func TestTaskWorkflow(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	session := registerAndLogin(t, goalsdk.NewClient(baseURL))

	require.Empty(t, session.Tasks(), "fresh account has no tasks")

	task, err := session.Create(ctx, goalsdk.CreateTaskRequest{
		Title:       "prepare demo",
		Description: "for friday",
		Date:        "2026-09-04",
	})
	require.NoError(t, err)
	require.False(t, task.Completed)

	require.NoError(t, session.Toggle(ctx, task.ID, true))
	require.NoError(t, session.Refresh(ctx))
	require.Len(t, session.Tasks(), 1)
	require.True(t, session.Tasks()[0].Completed, "toggle persisted server-side")

	updated, err := session.Update(ctx, task.ID, goalsdk.UpdateTaskRequest{
		Title:     "prepare demo v2",
		Date:      "2026-09-05",
		Completed: true,
	})
	require.NoError(t, err)
	require.Equal(t, "prepare demo v2", updated.Title)

	require.NoError(t, session.Delete(ctx, task.ID))
	require.NoError(t, session.Refresh(ctx))
	require.Empty(t, session.Tasks())
}

func TestTaskIsolationBetweenUsers(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := goalsdk.NewClient(baseURL)

	alice := registerAndLogin(t, client)
	task, err := alice.Create(ctx, goalsdk.CreateTaskRequest{
		Title: "alice only",
		Date:  "2026-09-01",
	})
	require.NoError(t, err)

	bob := goalsdk.NewSession(client, nil)
	require.NoError(t, bob.BeginRegistration())
	require.NoError(t, bob.Register(ctx, "bob", "bobs-pw", "bob@example.com"))
	require.NoError(t, bob.Login(ctx, "bob", "bobs-pw"))

	require.Empty(t, bob.Tasks(), "bob cannot see alice's tasks")

	err = bob.Delete(ctx, task.ID)
	requireStatus(t, err, http.StatusNotFound, "cross-user delete reads as missing")

	require.NoError(t, alice.Refresh(ctx))
	require.Len(t, alice.Tasks(), 1, "alice's task survived")
}

func TestObjectiveCatalog(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := goalsdk.NewClient(baseURL)

	// Public, no auth; catalog is empty unless a snapshot was configured
	objectives, err := client.ListObjectives(ctx)
	require.NoError(t, err)
	require.NotNil(t, objectives)
}

func TestLoginRateLimiting(t *testing.T) {
	baseURL, cleanup := setupContainerWithDefaultRateLimits(t)
	defer cleanup()

	ctx := context.Background()
	client := goalsdk.NewClient(baseURL)

	// Hammer the login endpoint until the strict per-IP limit kicks in
	limited := false
	for range 20 {
		_, err := client.Login(ctx, "nobody", "wrong")
		var apiErr *goalsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	require.True(t, limited, "credential endpoint should rate limit repeated failures")
}
