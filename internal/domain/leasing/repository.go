package leasing

import (
	"context"

	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists contracts within a tenant scope
type Repository interface {
	FindByID(ctx context.Context, scope shared.Scope, id uuid.UUID) (*Contract, error)
	// FindByIDWithRelations also loads Property and Client
	FindByIDWithRelations(ctx context.Context, scope shared.Scope, id uuid.UUID) (*Contract, error)
	FindAll(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]Contract, int64, error)
	Save(ctx context.Context, scope shared.Scope, c *Contract) error
	// Delete removes the contract together with its invoices
	Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error
	CountByStatus(ctx context.Context, scope shared.Scope, status Status) (int64, error)
}
