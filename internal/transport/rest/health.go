package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	db       dbPinger
	version  string
	feedback string
	now      func() time.Time
}

// NewHealthHandler creates a HealthHandler. feedback names the analyzer
// backing diary submissions and is reported by /health.
func NewHealthHandler(db dbPinger, version, feedback string) *HealthHandler {
	return &HealthHandler{db: db, version: version, feedback: feedback, now: time.Now}
}

// HealthResponse is the JSON response of the probes.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the state of one dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 until the database is reachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	h.respond(w, HealthResponse{Status: db.Status})
}

// Health reports every component with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	h.respond(w, HealthResponse{
		Status:  db.Status,
		Version: h.version,
		Components: map[string]ComponentStatus{
			"database": db,
			"feedback": {Status: "ok", Detail: h.feedback},
		},
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := h.now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentStatus{Status: "down", Detail: err.Error()}
	}
	return ComponentStatus{Status: "ok", Latency: h.now().Sub(start).String()}
}

func (h *HealthHandler) respond(w http.ResponseWriter, resp HealthResponse) {
	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	resp.Timestamp = h.now()
	writeJSON(w, status, resp)
}
