package request

import "encoding/json"

// UpsertServiceConfigRequest replaces the stored rate config for a service.
// Only the keys present are stored; everything else stays at defaults.
type UpsertServiceConfigRequest struct {
	Config json.RawMessage `json:"config" binding:"required"`
}
