package identity

import (
	"context"

	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TenantRepository persists tenants. Tenants are the root of scoping, so
// these lookups are not themselves scoped.
type TenantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, int64, error)
	ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error)
	Save(ctx context.Context, tenant *Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository persists users
type UserRepository interface {
	// FindByID looks a user up across tenants; used by authentication
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	FindByIDForTenant(ctx context.Context, scope shared.Scope, id uuid.UUID) (*User, error)
	FindAllForTenant(ctx context.Context, scope shared.Scope, filter shared.Filter) ([]User, int64, error)
	SaveForTenant(ctx context.Context, scope shared.Scope, user *User) error
	DeleteForTenant(ctx context.Context, scope shared.Scope, id uuid.UUID) error

	// Save persists a user regardless of tenant (registration, login stamps)
	Save(ctx context.Context, user *User) error
}

// Registrar atomically creates a tenant together with its first user
type Registrar interface {
	CreateTenantWithOwner(ctx context.Context, tenant *Tenant, owner *User) error
}
