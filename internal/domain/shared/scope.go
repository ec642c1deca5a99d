package shared

import (
	"github.com/google/uuid"
)

// ErrTenantRequired is returned when an operation runs without a tenant scope
var ErrTenantRequired = NewDomainError("TENANT_REQUIRED", "Tenant context is required")

// Scope identifies the tenant a storage operation is confined to.
// The zero value is not a valid scope; build one with NewScope.
type Scope struct {
	tenantID uuid.UUID
}

// NewScope returns a scope for the given tenant
func NewScope(tenantID uuid.UUID) (Scope, error) {
	if tenantID == uuid.Nil {
		return Scope{}, ErrTenantRequired
	}
	return Scope{tenantID: tenantID}, nil
}

// MustScope is NewScope for callers that already hold a validated tenant ID.
// It panics on uuid.Nil.
func MustScope(tenantID uuid.UUID) Scope {
	s, err := NewScope(tenantID)
	if err != nil {
		panic(err)
	}
	return s
}

// TenantID returns the scoped tenant
func (s Scope) TenantID() uuid.UUID {
	return s.tenantID
}

// IsZero reports whether the scope was never initialised
func (s Scope) IsZero() bool {
	return s.tenantID == uuid.Nil
}

// Validate returns ErrTenantRequired for the zero scope
func (s Scope) Validate() error {
	if s.IsZero() {
		return ErrTenantRequired
	}
	return nil
}

func (s Scope) String() string {
	return s.tenantID.String()
}
