package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const probeTimeout = 3 * time.Second

// Probe is a named dependency check used by /ready and /health.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	probes  []Probe
	version string
}

// NewHealthHandler creates a HealthHandler that checks every probe.
func NewHealthHandler(version string, probes ...Probe) *HealthHandler {
	return &HealthHandler{probes: probes, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
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
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when every probe passes, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.run(r.Context())

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports every component with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.run(r.Context())

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// run checks all probes concurrently under a shared timeout.
func (h *HealthHandler) run(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		components = make(map[string]CompStatus, len(h.probes))
		healthy    = true
	)
	for _, p := range h.probes {
		wg.Add(1)
		go func() {
			defer wg.Done()

			start := time.Now()
			err := p.Check(ctx)
			latency := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				components[p.Name] = CompStatus{Status: "down"}
				healthy = false
				return
			}
			components[p.Name] = CompStatus{Status: "ok", Latency: latency.String()}
		}()
	}
	wg.Wait()

	return components, healthy
}
