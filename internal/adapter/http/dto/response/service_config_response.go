package response

import (
	"time"

	"enviromaster/internal/usecase"
)

// ServiceConfigResponse returns the effective config: stored keys merged
// over the service defaults.
type ServiceConfigResponse struct {
	ServiceID string    `json:"service_id"`
	Version   int64     `json:"version"`
	Config    any       `json:"config"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func FromActiveConfig(c usecase.ActiveConfig) ServiceConfigResponse {
	return ServiceConfigResponse{
		ServiceID: c.ServiceID,
		Version:   c.Version,
		Config:    c.Config,
		UpdatedAt: c.UpdatedAt,
	}
}
