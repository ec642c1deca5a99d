package partner

import (
	"context"

	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository persists clients within a tenant scope
type ClientRepository interface {
	FindByID(ctx context.Context, scope shared.Scope, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]Client, int64, error)
	Save(ctx context.Context, scope shared.Scope, client *Client) error
	// Delete removes the client together with its contracts and their invoices
	Delete(ctx context.Context, scope shared.Scope, id uuid.UUID) error
	Count(ctx context.Context, scope shared.Scope) (int64, error)
}
