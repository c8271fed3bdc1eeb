package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/httpx"
	"github.com/aussiebroadwan/inversie/pkg/inversiesdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always 200 while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	inversiesdk.HealthResponse
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, inversiesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	503 when the database cannot be reached.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	inversiesdk.HealthResponse
//	@Failure		503	{object}	inversiesdk.HealthResponse
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &inversiesdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, inversiesdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// HealthHandler godoc
//
//	@Summary	Health check
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	inversiesdk.PingResponse
//	@Router		/health [get].
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, inversiesdk.PingResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
		})
	}
}

// IndexHandler godoc
//
//	@Summary	API index
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	inversiesdk.IndexResponse
//	@Router		/api [get].
func IndexHandler(version string, endpoints []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, inversiesdk.IndexResponse{
			Name:      "Inversie API",
			Version:   version,
			Endpoints: endpoints,
		})
	}
}
