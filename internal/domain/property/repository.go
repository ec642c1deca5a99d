package property

import (
	"context"

	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists properties. Every method is confined to a scope.
type Repository interface {
	FindByID(ctx context.Context, scope shared.Scope, id uuid.UUID) (*Property, error)
	FindAll(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]Property, int64, error)
	Save(ctx context.Context, scope shared.Scope, p *Property) error
	// Delete removes the property together with its contracts and their invoices
	Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error
	Count(ctx context.Context, scope shared.Scope) (int64, error)
	CountByType(ctx context.Context, scope shared.Scope) (map[Type]int64, error)
}
