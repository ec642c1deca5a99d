package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/aqario/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is a variable so tests can lower it
var bcryptCost = bcrypt.DefaultCost

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-.@+]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// User is an account that can sign in. TenantID is nil only for SUPERADMIN.
type User struct {
	shared.BaseEntity
	TenantID     *uuid.UUID
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLoginAt  *time.Time
}

// NewUser creates an active user with a hashed password
func NewUser(tenantID *uuid.UUID, username, password string, role Role) (*User, error) {
	if !role.IsValid() {
		return nil, shared.NewValidationError("role", "Unknown role: "+string(role))
	}
	if err := checkTenantForRole(tenantID, role); err != nil {
		return nil, err
	}
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		TenantID:     tenantID,
		Username:     strings.ToLower(strings.TrimSpace(username)),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}, nil
}

// SetEmail sets the user's email; empty clears it
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	u.Email = email
	u.Touch()
	return nil
}

// SetName sets first and last name
func (u *User) SetName(first, last string) error {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if len([]rune(first)) > 150 || len([]rune(last)) > 150 {
		return shared.NewValidationError("name", "Names cannot exceed 150 characters")
	}
	u.FirstName, u.LastName = first, last
	u.Touch()
	return nil
}

// AssignTenant moves the user under a tenant
func (u *User) AssignTenant(tenantID uuid.UUID) {
	u.TenantID = &tenantID
	u.Touch()
}

// ChangeRole switches the user's role, keeping the tenant invariant
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewValidationError("role", "Unknown role: "+string(role))
	}
	if err := checkTenantForRole(u.TenantID, role); err != nil {
		return err
	}
	u.Role = role
	u.Touch()
	return nil
}

// SetPassword replaces the password hash
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Activate enables sign-in
func (u *User) Activate() {
	u.IsActive = true
	u.Touch()
}

// Deactivate blocks sign-in
func (u *User) Deactivate() {
	u.IsActive = false
	u.Touch()
}

// RecordLogin stamps the last successful sign-in
func (u *User) RecordLogin(at time.Time) {
	at = at.UTC()
	u.LastLoginAt = &at
}

// BelongsTo reports whether the user is a member of the scope's tenant
func (u *User) BelongsTo(scope shared.Scope) bool {
	return u.TenantID != nil && !scope.IsZero() && *u.TenantID == scope.TenantID()
}

// FullName joins first and last name, falling back to the username
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func checkTenantForRole(tenantID *uuid.UUID, role Role) error {
	hasTenant := tenantID != nil && *tenantID != uuid.Nil
	if role.RequiresTenant() && !hasTenant {
		return shared.NewValidationError("tenant", "Role "+string(role)+" requires a tenant")
	}
	if !role.RequiresTenant() && hasTenant {
		return shared.NewValidationError("tenant", "SUPERADMIN cannot belong to a tenant")
	}
	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewValidationError("username", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewValidationError("username", "Username must be at least 3 characters")
	}
	if len(username) > 150 {
		return shared.NewValidationError("username", "Username cannot exceed 150 characters")
	}
	if !usernamePattern.MatchString(username) {
		return shared.NewValidationError("username", "Username can only contain letters, numbers and @.+-_")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewValidationError("password", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewValidationError("password", "Password cannot exceed 128 characters")
	}
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return shared.NewValidationError("password", "Password must contain at least one letter and one number")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 254 {
		return shared.NewValidationError("email", "Email cannot exceed 254 characters")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewValidationError("email", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
