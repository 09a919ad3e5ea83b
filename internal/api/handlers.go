package api

import (
	"net/http"
	"time"

	"github.com/amslabs/ams/internal/buildinfo"
)

const (
	serviceName        = "ams-backend"
	serviceDescription = "B2B SaaS platform for enterprise AI agent fleet management"
	apiVersion         = "v1"
)

// SystemInfo is the root endpoint payload.
type SystemInfo struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Endpoints   map[string]string `json:"endpoints"`
}

// HealthStatus is the monitoring probe payload.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

// APIStatus reports per-feature availability of the v1 API.
type APIStatus struct {
	APIVersion string            `json:"api_version"`
	Status     string            `json:"status"`
	Features   map[string]string `json:"features"`
	Timestamp  time.Time         `json:"timestamp"`
}

// AgentList is the agent collection payload. The collection stays empty
// until agent management ships.
type AgentList struct {
	Agents    []any     `json:"agents"`
	Total     int       `json:"total"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SystemMetrics holds the fleet-wide counters surfaced on the dashboard.
type SystemMetrics struct {
	ActiveAgents int     `json:"active_agents"`
	TotalTasks   int     `json:"total_tasks"`
	SuccessRate  float64 `json:"success_rate"`
	CostSavings  float64 `json:"cost_savings"`
}

// MetricsReport wraps SystemMetrics for the metrics endpoint.
type MetricsReport struct {
	Metrics   SystemMetrics `json:"metrics"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
}

// Root returns system information and the endpoint map.
// @Summary      System information
// @Tags         system
// @Produce      json
// @Success      200  {object} api.SystemInfo
// @Router       / [get]
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SystemInfo{
		Message:     "Welcome to AMS - Agent Management System",
		Version:     buildinfo.Version,
		Description: serviceDescription,
		Status:      "operational",
		Timestamp:   time.Now().UTC(),
		Endpoints: map[string]string{
			"docs":   "/api/docs",
			"health": "/health",
			"api":    "/api/" + apiVersion,
		},
	})
}

// Health returns the service health payload for external monitoring.
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object} api.HealthStatus
// @Router       /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   serviceName,
		Version:   buildinfo.Version,
	})
}

// Healthz is the Kubernetes liveness probe.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Status reports which v1 feature areas are live.
// @Summary      API status
// @Tags         system
// @Produce      json
// @Success      200  {object} api.APIStatus
// @Router       /api/v1/status [get]
func Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIStatus{
		APIVersion: apiVersion,
		Status:     "operational",
		Features: map[string]string{
			"agent_management": "coming_soon",
			"observability":    "coming_soon",
			"governance":       "coming_soon",
			"analytics":        "coming_soon",
		},
		Timestamp: time.Now().UTC(),
	})
}

// ListAgents returns the managed agent fleet.
// @Summary      List agents
// @Tags         agents
// @Produce      json
// @Success      200  {object} api.AgentList
// @Router       /api/v1/agents [get]
func ListAgents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AgentList{
		Agents:    []any{},
		Total:     0,
		Message:   "Agent management coming soon",
		Timestamp: time.Now().UTC(),
	})
}

// GetMetrics returns fleet-wide system metrics.
// @Summary      System metrics
// @Tags         metrics
// @Produce      json
// @Success      200  {object} api.MetricsReport
// @Router       /api/v1/metrics [get]
func GetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MetricsReport{
		Metrics: SystemMetrics{
			ActiveAgents: 0,
			TotalTasks:   0,
			SuccessRate:  0.0,
			CostSavings:  0.0,
		},
		Message:   "Metrics dashboard coming soon",
		Timestamp: time.Now().UTC(),
	})
}
