package interfaces

import (
	"context"
	"encoding/json"
)

// IConfigCache is a read-through cache in front of the config store. A miss
// returns nil bytes and a nil error. Cache failures are advisory: callers
// proceed to the store.

type IConfigCache interface {
	Get(ctx context.Context, serviceID string) (json.RawMessage, error)
	Set(ctx context.Context, serviceID string, cfg json.RawMessage) error
	Drop(ctx context.Context, serviceID string) error
}
