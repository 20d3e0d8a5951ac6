package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

const probeTimeout = 3 * time.Second

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now(), now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	if db.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health is the full health check with per-component status, version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{"database": h.pingDB(r.Context())}

	overall, status := "ok", http.StatusOK
	for _, c := range components {
		if c.Status != "ok" {
			overall, status = "down", http.StatusServiceUnavailable
		}
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Uptime:     h.now().Sub(h.started).Round(time.Second).String(),
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
