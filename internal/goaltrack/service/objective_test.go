package service_test

import (
	"context"
	"testing"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
	"github.com/strivehq/goaltrack/internal/goaltrack/service"
	"github.com/stretchr/testify/require"
)

func TestObjectiveSyncAndList(t *testing.T) {
	ctx := context.Background()
	svc := &service.ObjectiveService{Store: newTestStore(t)}

	catalog := []domain.Objective{
		{ID: "obj-1", Title: "Reduce costs", Description: "Cut opex by 10%"},
		{ID: "obj-2", Title: "Grow revenue"},
	}
	require.NoError(t, svc.SyncCatalog(ctx, catalog))

	objectives, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, objectives, 2)
	require.Equal(t, "obj-1", objectives[0].ID)
	require.Equal(t, "obj-2", objectives[1].ID)

	// Re-syncing updates existing entries instead of duplicating them
	catalog[0].Title = "Reduce costs further"
	require.NoError(t, svc.SyncCatalog(ctx, catalog))

	objectives, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, objectives, 2)
	require.Equal(t, "Reduce costs further", objectives[0].Title)
}

func TestObjectiveListEmptyCatalog(t *testing.T) {
	svc := &service.ObjectiveService{Store: newTestStore(t)}

	objectives, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, objectives)
}
