package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"enviromaster/internal/domain/entities"
	"enviromaster/internal/domain/pricing"
	"enviromaster/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidServiceID     = errors.New("invalid service id")
	ErrInvalidConfigPayload = errors.New("invalid config payload")
)

// ActiveConfig is the resolved rate configuration handed to callers: the
// stored keys merged over the service defaults.
type ActiveConfig struct {
	ServiceID string    `json:"service_id"`
	Version   int64     `json:"version"`
	Config    any       `json:"config"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// IServiceConfigUseCase is the rate configuration provider.
//
// Resolution never fails toward the caller: a missing store entry, a cache
// outage or a malformed stored config all fall back to hardcoded defaults,
// because pricing must always be computable.

type IServiceConfigUseCase interface {
	GetActive(ctx context.Context, serviceID string) (ActiveConfig, error)
	Upsert(ctx context.Context, serviceID string, cfg json.RawMessage) (ActiveConfig, error)
	Refresh(ctx context.Context, serviceID string) (ActiveConfig, error)
	ResolveRaw(ctx context.Context, serviceID string) json.RawMessage
}

type ServiceConfigUseCase struct {
	repo  interfaces.IServiceConfigRepository
	cache interfaces.IConfigCache
	log   *zap.Logger
}

var _ IServiceConfigUseCase = (*ServiceConfigUseCase)(nil)

func NewServiceConfigUseCase(repo interfaces.IServiceConfigRepository, cache interfaces.IConfigCache, log *zap.Logger) *ServiceConfigUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceConfigUseCase{repo: repo, cache: cache, log: log}
}

func (u *ServiceConfigUseCase) GetActive(ctx context.Context, serviceID string) (ActiveConfig, error) {
	serviceID = strings.TrimSpace(serviceID)
	eng, err := pricing.Lookup(serviceID)
	if err != nil {
		return ActiveConfig{}, ErrInvalidServiceID
	}

	stored := u.readStored(ctx, serviceID)
	return ActiveConfig{
		ServiceID: serviceID,
		Version:   stored.Version,
		Config:    eng.MergedConfig(stored.Config),
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

func (u *ServiceConfigUseCase) Upsert(ctx context.Context, serviceID string, cfg json.RawMessage) (ActiveConfig, error) {
	serviceID = strings.TrimSpace(serviceID)
	eng, err := pricing.Lookup(serviceID)
	if err != nil {
		return ActiveConfig{}, ErrInvalidServiceID
	}
	if len(cfg) == 0 || !json.Valid(cfg) {
		return ActiveConfig{}, ErrInvalidConfigPayload
	}

	existing, err := u.repo.GetByServiceID(ctx, serviceID)
	if err != nil {
		return ActiveConfig{}, err
	}

	stored, err := u.repo.Upsert(ctx, entities.ServiceConfig{
		ServiceID: serviceID,
		Version:   existing.Version + 1,
		Config:    cfg,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return ActiveConfig{}, err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, serviceID, stored.Config); err != nil {
			u.log.Warn("config cache set failed", zap.String("service_id", serviceID), zap.Error(err))
		}
	}

	return ActiveConfig{
		ServiceID: serviceID,
		Version:   stored.Version,
		Config:    eng.MergedConfig(stored.Config),
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

// Refresh drops the cached config and re-reads the store. It only re-applies
// stored rates; custom overrides live in client form state and are never
// touched by a refresh.
func (u *ServiceConfigUseCase) Refresh(ctx context.Context, serviceID string) (ActiveConfig, error) {
	serviceID = strings.TrimSpace(serviceID)
	if _, err := pricing.Lookup(serviceID); err != nil {
		return ActiveConfig{}, ErrInvalidServiceID
	}
	if u.cache != nil {
		if err := u.cache.Drop(ctx, serviceID); err != nil {
			u.log.Warn("config cache drop failed", zap.String("service_id", serviceID), zap.Error(err))
		}
	}
	return u.GetActive(ctx, serviceID)
}

// ResolveRaw returns the stored raw config for a service, or nil when none
// can be read. Failures are logged and swallowed; nil means defaults.
func (u *ServiceConfigUseCase) ResolveRaw(ctx context.Context, serviceID string) json.RawMessage {
	if u.cache != nil {
		cached, err := u.cache.Get(ctx, serviceID)
		if err != nil {
			u.log.Warn("config cache get failed", zap.String("service_id", serviceID), zap.Error(err))
		} else if len(cached) > 0 {
			return cached
		}
	}

	return u.readStored(ctx, serviceID).Config
}

// readStored reads the authoritative store entry and backfills the cache on a
// hit. A miss or a store failure returns the zero entity, meaning defaults.
func (u *ServiceConfigUseCase) readStored(ctx context.Context, serviceID string) entities.ServiceConfig {
	if u.repo == nil {
		return entities.ServiceConfig{}
	}
	stored, err := u.repo.GetByServiceID(ctx, serviceID)
	if err != nil {
		u.log.Warn("config store read failed, using defaults", zap.String("service_id", serviceID), zap.Error(err))
		return entities.ServiceConfig{}
	}
	if stored.ServiceID == "" {
		return entities.ServiceConfig{}
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, serviceID, stored.Config); err != nil {
			u.log.Warn("config cache set failed", zap.String("service_id", serviceID), zap.Error(err))
		}
	}
	return stored
}
