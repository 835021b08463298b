package http

import (
	"net/http"
	"time"

	"github.com/contactbook/contactbook/internal/contactbook/store"
	"github.com/contactbook/contactbook/pkg/httpx"
	"github.com/contactbook/contactbook/pkg/slogx"
)

// LivezHandler reports process liveness.
//
//	@Summary	Liveness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Router		/livez [get].
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"version": version,
			"uptime":  time.Since(startTime).String(),
		})
	})
}

// ReadyzHandler reports readiness: the process is up and the store answers.
//
//	@Summary	Readiness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	503	{object}	map[string]any
//	@Router		/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness check failed", "err", err)
			httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "unavailable",
			})
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"version": version,
			"uptime":  time.Since(startTime).String(),
		})
	})
}
