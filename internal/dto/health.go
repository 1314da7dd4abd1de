package dto

const (
	ServiceName    = "expense-tracker"
	ServiceVersion = "1.0.0"
)

// HealthResponse reports service and database status.
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Service  string `json:"service" example:"expense-tracker"`
	Version  string `json:"version" example:"1.0.0"`
	Database string `json:"database" example:"connected"`
}

// ServiceInfoResponse is returned from the root path.
type ServiceInfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
