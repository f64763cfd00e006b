package interfaces

import (
	"context"

	"printshop_billing/internal/domain/entities"
)

// IRateConfigRepository abstracts the versioned rate-table store.
//
// The store is append-only: Put rejects an existing version, and published
// versions are never mutated, so a quote's frozen rate version always
// resolves to the exact figures it was priced with. GetCurrent resolves the
// version the current pointer designates; lookups return a zero value when
// absent.
type IRateConfigRepository interface {
	Put(ctx context.Context, rc entities.RateConfig) (entities.RateConfig, error)
	GetByVersion(ctx context.Context, version string) (entities.RateConfig, error)
	GetCurrent(ctx context.Context) (entities.RateConfig, error)
	SetCurrent(ctx context.Context, version string) error
}
