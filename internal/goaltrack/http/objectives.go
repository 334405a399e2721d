package http

import (
	"net/http"

	"github.com/strivehq/goaltrack/internal/goaltrack/service"
	"github.com/strivehq/goaltrack/pkg/goalsdk"
	"github.com/strivehq/goaltrack/pkg/httpx"
	"github.com/strivehq/goaltrack/pkg/slogx"
)

type ObjectiveListHandler struct {
	ObjectiveService *service.ObjectiveService
}

// ServeHTTP godoc
//
//	@Summary		List departmental objectives
//	@Description	Returns the full objective catalog, unfiltered. No authentication required.
//	@Tags			Objectives
//	@Produce		json
//	@Success		200	{array}		goalsdk.Objective
//	@Failure		500	{object}	goalsdk.ErrorResponse	"internal server error"
//	@Router			/departmental-goals [get].
func (h *ObjectiveListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	objectives, err := h.ObjectiveService.List(ctx)
	if err != nil {
		log.Error("failed to list objectives", "err", err)
		goalsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]goalsdk.Objective, 0, len(objectives))
	for _, o := range objectives {
		out = append(out, goalsdk.Objective{
			ID:          o.ID,
			Title:       o.Title,
			Description: o.Description,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
