package dto

// BriefingResponse carries the assembled morning news briefing
type BriefingResponse struct {
	Briefing  string   `json:"briefing"`
	Headlines []string `json:"headlines"`
	TraceID   string   `json:"traceId,omitempty"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status      string            `json:"status"`
	Environment string            `json:"environment"`
	Checks      map[string]string `json:"checks,omitempty"`
}
