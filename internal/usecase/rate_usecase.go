package usecase

import (
	"context"
	"errors"
	"strings"

	"printshop_billing/internal/domain/entities"
	"printshop_billing/internal/usecase/interfaces"
)

var (
	ErrInvalidRateVersion = errors.New("invalid rate version")
	ErrRatesNotFound      = errors.New("rate config not found")
	ErrRateVersionExists  = errors.New("rate version already published")
)

// IRateUseCase reads and publishes versioned rate configurations. Published
// versions are immutable; publishing never touches quotes or orders that
// froze an earlier version.
type IRateUseCase interface {
	GetCurrent(ctx context.Context) (entities.RateConfig, error)
	GetByVersion(ctx context.Context, version string) (entities.RateConfig, error)
	Publish(ctx context.Context, rc entities.RateConfig, makeCurrent bool) (entities.RateConfig, error)
}

type RateUseCase struct {
	rates interfaces.IRateConfigRepository
}

var _ IRateUseCase = (*RateUseCase)(nil)

func NewRateUseCase(rates interfaces.IRateConfigRepository) *RateUseCase {
	return &RateUseCase{rates: rates}
}

func (u *RateUseCase) GetCurrent(ctx context.Context) (entities.RateConfig, error) {
	rc, err := u.rates.GetCurrent(ctx)
	if err != nil {
		return entities.RateConfig{}, err
	}
	if rc.Version == "" {
		return entities.DefaultRateConfig(), nil
	}
	return rc, nil
}

func (u *RateUseCase) GetByVersion(ctx context.Context, version string) (entities.RateConfig, error) {
	version = strings.TrimSpace(version)
	if !validVersionName(version) {
		return entities.RateConfig{}, ErrInvalidRateVersion
	}

	rc, err := u.rates.GetByVersion(ctx, version)
	if err != nil {
		return entities.RateConfig{}, err
	}
	if rc.Version == "" {
		return entities.RateConfig{}, ErrRatesNotFound
	}
	return rc, nil
}

func (u *RateUseCase) Publish(ctx context.Context, rc entities.RateConfig, makeCurrent bool) (entities.RateConfig, error) {
	rc.Version = strings.TrimSpace(rc.Version)
	if !validVersionName(rc.Version) {
		return entities.RateConfig{}, ErrInvalidRateVersion
	}

	created, err := u.rates.Put(ctx, rc)
	if err != nil {
		return entities.RateConfig{}, err
	}
	if created.Version == "" {
		return entities.RateConfig{}, ErrRateVersionExists
	}
	if makeCurrent {
		if err := u.rates.SetCurrent(ctx, created.Version); err != nil {
			return entities.RateConfig{}, err
		}
	}
	return created, nil
}

// validVersionName rejects blank versions and names with the double-underscore
// prefix the rate store reserves for bookkeeping items such as the current
// pointer.
func validVersionName(version string) bool {
	return version != "" && !strings.HasPrefix(version, "__")
}
