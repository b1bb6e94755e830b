package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/synonymer/internal/domain"
)

// dictionary defines the minimal interface for local dictionary health checks.
type dictionary interface {
	Len() int
}

// settingsSource defines the minimal interface for settings health checks.
type settingsSource interface {
	Settings() domain.Settings
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	dict     dictionary
	settings settingsSource
	version  string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(dict dictionary, settings settingsSource, version string) *HealthHandler {
	return &HealthHandler{dict: dict, settings: settings, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 once the local dictionary holds entries, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.dict.Len() == 0 {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Reports the dictionary size and the
// current settings snapshot, and includes version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if n := h.dict.Len(); n == 0 {
		components["dictionary"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["dictionary"] = CompStatus{Status: "ok", Detail: strconv.Itoa(n) + " entries"}
	}

	s := h.settings.Settings()
	if err := s.Validate(); err != nil {
		components["settings"] = CompStatus{Status: "down", Detail: err.Error()}
		overallStatus = "down"
	} else {
		mode := "online"
		if !s.EnableOnlineLookup {
			mode = "offline"
		}
		components["settings"] = CompStatus{Status: "ok", Detail: mode}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
