package http

import (
	"net/http"
	"time"

	"github.com/strivehq/goaltrack/internal/goaltrack/store"
	"github.com/strivehq/goaltrack/pkg/goalsdk"
	"github.com/strivehq/goaltrack/pkg/httpx"
	"github.com/strivehq/goaltrack/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database connection and the token verifier.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	goalsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	goalsdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	verifier jwtx.Verifier,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &goalsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if verifier == nil {
			checks.Signer = "error: no verification key loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, goalsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
