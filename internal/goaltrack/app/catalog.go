package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/strivehq/goaltrack/internal/goaltrack/domain"
)

// catalogEntry mirrors the JSON shape of a catalog snapshot file. The catalog
// is authored outside this service; the file is a point-in-time export.
type catalogEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// syncCatalog loads the snapshot at cfg.CatalogFile and upserts it into the
// store. A missing CatalogFile config is fine; a broken file is not.
func (app *Application) syncCatalog(ctx context.Context) error {
	if app.cfg.CatalogFile == "" {
		return nil
	}

	data, err := os.ReadFile(app.cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", app.cfg.CatalogFile, err)
	}

	objectives := make([]domain.Objective, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("catalog file %s: entry with empty id", app.cfg.CatalogFile)
		}
		objectives = append(objectives, domain.Objective{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
		})
	}

	return app.objectiveService.SyncCatalog(ctx, objectives)
}
