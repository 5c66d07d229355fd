package ui

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func() error

// NewOpsRouter builds the operational router served on its own port:
// liveness plus a readiness probe over the supplied checks.
func NewOpsRouter(version string, checks map[string]HealthCheck) http.Handler {
	started := time.Now()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"version": version,
			"uptime":  time.Since(started).Round(time.Second).String(),
		})
	})

	r.Get("/ready", func(w http.ResponseWriter, req *http.Request) {
		status := http.StatusOK
		results := map[string]string{}
		for name, check := range checks {
			if err := check(); err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}
		writeJSON(w, status, map[string]interface{}{
			"status": http.StatusText(status),
			"checks": results,
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
