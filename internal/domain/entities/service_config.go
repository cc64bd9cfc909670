package entities

import (
	"encoding/json"
	"time"
)

// ServiceConfig is the stored rate configuration for one service.
//
// Storage model (DynamoDB):
//   - PK: service_id
//
// Config holds only the keys an admin has set; at calculation time it is
// merged over the service's hardcoded defaults, so partial configs are
// valid and an absent or unreadable config still prices.
type ServiceConfig struct {
	ServiceID string          `json:"service_id"`
	Version   int64           `json:"version"`
	Config    json.RawMessage `json:"config"`
	UpdatedAt time.Time       `json:"updated_at"`
}
