package identity

import (
	"strings"

	"github.com/aqario/backend/internal/domain/shared"
)

// Role is the closed set of user roles
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleOwner      Role = "OWNER"
	RoleAdmin      Role = "ADMIN"
	RoleEmployee   Role = "EMPLOYEE"
	RoleClient     Role = "CLIENT"
)

// AllRoles lists every role from most to least privileged
var AllRoles = []Role{RoleSuperAdmin, RoleOwner, RoleAdmin, RoleEmployee, RoleClient}

// ParseRole converts a string to a Role. Empty input yields RoleClient.
func ParseRole(s string) (Role, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return RoleClient, nil
	}
	r := Role(s)
	if !r.IsValid() {
		return "", shared.NewValidationError("role", "Unknown role: "+s)
	}
	return r, nil
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleOwner, RoleAdmin, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// String returns the role name
func (r Role) String() string {
	return string(r)
}

// RequiresTenant reports whether users with this role must belong to a tenant
func (r Role) RequiresTenant() bool {
	return r != RoleSuperAdmin
}

// Permission names a single action on a resource
type Permission string

const (
	PermPropertyRead     Permission = "property:read"
	PermPropertyWrite    Permission = "property:write"
	PermPropertyDelete   Permission = "property:delete"
	PermClientRead       Permission = "client:read"
	PermClientWrite      Permission = "client:write"
	PermClientDelete     Permission = "client:delete"
	PermContractRead     Permission = "contract:read"
	PermContractWrite    Permission = "contract:write"
	PermContractDelete   Permission = "contract:delete"
	PermInvoiceRead      Permission = "invoice:read"
	PermInvoiceWrite     Permission = "invoice:write"
	PermInvoiceDelete    Permission = "invoice:delete"
	PermDashboardRead    Permission = "dashboard:read"
	PermUserRead         Permission = "user:read"
	PermUserWrite        Permission = "user:write"
	PermTenantRead       Permission = "tenant:read"
	PermTenantWrite      Permission = "tenant:write"
	PermTenantAdminister Permission = "tenant:administer"
)

var (
	readAll = []Permission{
		PermPropertyRead, PermClientRead, PermContractRead, PermInvoiceRead,
	}
	writeAll = []Permission{
		PermPropertyWrite, PermClientWrite, PermContractWrite, PermInvoiceWrite,
	}
	deleteAll = []Permission{
		PermPropertyDelete, PermClientDelete, PermContractDelete, PermInvoiceDelete,
	}
)

var rolePermissions = map[Role]map[Permission]struct{}{
	RoleOwner: permissionSet(readAll, writeAll, deleteAll, []Permission{
		PermDashboardRead, PermUserRead, PermUserWrite, PermTenantRead, PermTenantWrite,
	}),
	RoleAdmin: permissionSet(readAll, writeAll, deleteAll, []Permission{
		PermDashboardRead, PermUserRead, PermUserWrite, PermTenantRead,
	}),
	RoleEmployee: permissionSet(readAll, writeAll, []Permission{
		PermDashboardRead, PermTenantRead,
	}),
	RoleClient: permissionSet([]Permission{
		PermPropertyRead, PermContractRead, PermInvoiceRead, PermTenantRead,
	}),
}

func permissionSet(groups ...[]Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{})
	for _, g := range groups {
		for _, p := range g {
			set[p] = struct{}{}
		}
	}
	return set
}

// Can reports whether the role grants the permission. SUPERADMIN holds every
// permission; unknown roles hold none.
func (r Role) Can(p Permission) bool {
	if r == RoleSuperAdmin {
		return true
	}
	_, ok := rolePermissions[r][p]
	return ok
}

// CanAssign reports whether a user with role r may grant target to another user
func (r Role) CanAssign(target Role) bool {
	if !target.IsValid() || !r.Can(PermUserWrite) {
		return false
	}
	switch r {
	case RoleSuperAdmin:
		return true
	case RoleOwner:
		return target != RoleSuperAdmin
	default:
		return target != RoleSuperAdmin && target != RoleOwner
	}
}

// Authorize returns ErrForbidden unless role grants the permission
func Authorize(role Role, p Permission) error {
	if !role.Can(p) {
		return shared.NewDomainError("FORBIDDEN", "Role "+string(role)+" lacks permission "+string(p))
	}
	return nil
}
