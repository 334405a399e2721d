package http

import (
	"net/http"
	"time"

	"github.com/strivehq/goaltrack/pkg/goalsdk"
	"github.com/strivehq/goaltrack/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning basic service health, uptime and version.
//	@Description	Always answers 200 OK while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	goalsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, goalsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
