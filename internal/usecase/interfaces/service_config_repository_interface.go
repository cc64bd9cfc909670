package interfaces

import (
	"context"

	"enviromaster/internal/domain/entities"
)

// IServiceConfigRepository abstracts DynamoDB persistence for ServiceConfig.
//
// A missing config is returned with an empty ServiceID and a nil error; the
// caller falls back to hardcoded defaults, never to the user.

type IServiceConfigRepository interface {
	GetByServiceID(ctx context.Context, serviceID string) (entities.ServiceConfig, error)
	Upsert(ctx context.Context, c entities.ServiceConfig) (entities.ServiceConfig, error)
}
