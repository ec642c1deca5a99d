package identity

import (
	"time"

	"github.com/aqario/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// Actor is the authenticated caller of a service method
type Actor struct {
	UserID   uuid.UUID
	Username string
	Role     identity.Role
	TenantID *uuid.UUID
}

// IsSuperAdmin reports whether the actor is platform-wide
func (a Actor) IsSuperAdmin() bool {
	return a.Role == identity.RoleSuperAdmin
}

// CanAccessTenant reports whether the actor may act inside the tenant
func (a Actor) CanAccessTenant(id uuid.UUID) bool {
	if a.IsSuperAdmin() {
		return true
	}
	return a.TenantID != nil && *a.TenantID == id
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=150"`
	Password string `json:"password" binding:"required,min=1,max=128"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// LogoutInput identifies the tokens to revoke
type LogoutInput struct {
	UserID    uuid.UUID
	AccessJTI string
	AccessTTL time.Duration
	// Refresh is optional; when valid it is revoked too
	Refresh string
}

// RegisterRequest registers a user. With TenantName and Subdomain a new
// tenant is created and the user becomes its OWNER; otherwise the user joins
// the tenant selected by the X-Tenant-ID header as a CLIENT.
type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=150"`
	Password   string `json:"password" binding:"required,min=8,max=128"`
	Email      string `json:"email" binding:"omitempty,email,max=254"`
	FirstName  string `json:"first_name" binding:"max=150"`
	LastName   string `json:"last_name" binding:"max=150"`
	TenantName string `json:"tenant_name" binding:"omitempty,max=100"`
	Subdomain  string `json:"subdomain" binding:"omitempty,max=50,subdomain"`
}

// wantsTenant reports whether the request creates a tenant
func (r RegisterRequest) wantsTenant() bool {
	return r.TenantName != "" || r.Subdomain != ""
}

// TokenResponse is the JWT pair issued on login and refresh
type TokenResponse struct {
	Access           string        `json:"access"`
	Refresh          string        `json:"refresh"`
	TokenType        string        `json:"token_type"`
	AccessExpiresAt  time.Time     `json:"access_expires_at"`
	RefreshExpiresAt time.Time     `json:"refresh_expires_at"`
	User             *UserResponse `json:"user,omitempty"`
}

// RegisterResponse is returned by registration
type RegisterResponse struct {
	User   UserResponse    `json:"user"`
	Tenant *TenantResponse `json:"tenant,omitempty"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subdomain string    `json:"subdomain"`
	Logo      string    `json:"logo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTenantResponse converts a domain tenant
func ToTenantResponse(t *identity.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Subdomain: t.Subdomain,
		Logo:      t.Logo,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Role        string          `json:"role"`
	TenantID    *uuid.UUID      `json:"tenant_id"`
	Tenant      *TenantResponse `json:"tenant,omitempty"`
	IsActive    bool            `json:"is_active"`
	LastLoginAt *time.Time      `json:"last_login_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToUserResponse converts a domain user
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role.String(),
		TenantID:    u.TenantID,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// CreateTenantRequest creates a tenant (SUPERADMIN only)
type CreateTenantRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Subdomain string `json:"subdomain" binding:"required,max=50,subdomain"`
}

// UpdateTenantRequest updates a tenant; nil fields are left unchanged
type UpdateTenantRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Subdomain *string `json:"subdomain" binding:"omitempty,max=50,subdomain"`
}

// CreateUserRequest creates a user in the current tenant
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	Email     string `json:"email" binding:"omitempty,email,max=254"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Role      string `json:"role" binding:"omitempty,oneof=OWNER ADMIN EMPLOYEE CLIENT"`
}

// UpdateUserRequest updates a user; nil fields are left unchanged
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,max=254"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Role      *string `json:"role" binding:"omitempty,oneof=OWNER ADMIN EMPLOYEE CLIENT"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=128"`
	IsActive  *bool   `json:"is_active"`
}
