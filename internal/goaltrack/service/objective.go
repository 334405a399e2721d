package service

import (
	"context"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
	"github.com/strivehq/goaltrack/internal/goaltrack/store"
	"github.com/strivehq/goaltrack/pkg/slogx"
)

// ObjectiveService exposes the departmental objective catalog. The catalog is
// owned by an external process; this service only reads it and syncs in a
// snapshot at startup when one is configured.
type ObjectiveService struct {
	Store store.Store
}

// List returns the full catalog, unfiltered.
func (s *ObjectiveService) List(ctx context.Context) ([]domain.Objective, error) {
	return s.Store.Objectives().ListObjectives(ctx)
}

// SyncCatalog upserts a snapshot of the externally-owned catalog. Entries
// absent from the snapshot are left untouched; the external owner decides
// retirement, not this service.
func (s *ObjectiveService) SyncCatalog(ctx context.Context, objectives []domain.Objective) error {
	l := slogx.FromContext(ctx)

	for _, o := range objectives {
		if err := s.Store.Objectives().UpsertObjective(ctx, o); err != nil {
			return err
		}
	}

	l.Info("objective catalog synced", "count", len(objectives))
	return nil
}
