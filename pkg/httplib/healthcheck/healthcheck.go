package healthcheck

import (
	"encoding/json"
	"net/http"
)

// HealthCheck answers GET /health with a liveness payload, identifying the
// daemon by name. Everything else falls through to the wrapped handler.
type HealthCheck struct {
	ServiceName string
}

type payload struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

// Handler intercepts health probes in front of the given handler.
func (hc HealthCheck) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/health" {
			hc.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ServeHTTP writes the liveness payload.
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(payload{Status: "ok", Service: hc.ServiceName}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
