package identity

import (
	"regexp"
	"strings"

	"github.com/aqario/backend/internal/domain/shared"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Tenant is an agency account. Every business record belongs to one tenant.
type Tenant struct {
	shared.BaseEntity
	Name      string
	Subdomain string
	Logo      string // storage key under tenant_logos/
}

// NewTenant creates a tenant with a validated name and subdomain
func NewTenant(name, subdomain string) (*Tenant, error) {
	if err := validateTenantName(name); err != nil {
		return nil, err
	}
	subdomain = NormalizeSubdomain(subdomain)
	if err := ValidateSubdomain(subdomain); err != nil {
		return nil, err
	}

	return &Tenant{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Subdomain:  subdomain,
	}, nil
}

// Rename updates the display name
func (t *Tenant) Rename(name string) error {
	if err := validateTenantName(name); err != nil {
		return err
	}
	t.Name = strings.TrimSpace(name)
	t.Touch()
	return nil
}

// ChangeSubdomain updates the slug; uniqueness is enforced by storage
func (t *Tenant) ChangeSubdomain(subdomain string) error {
	subdomain = NormalizeSubdomain(subdomain)
	if err := ValidateSubdomain(subdomain); err != nil {
		return err
	}
	t.Subdomain = subdomain
	t.Touch()
	return nil
}

// SetLogo records the storage key of the tenant logo
func (t *Tenant) SetLogo(key string) {
	t.Logo = key
	t.Touch()
}

// Scope returns the storage scope for this tenant's data
func (t *Tenant) Scope() shared.Scope {
	return shared.MustScope(t.ID)
}

// NormalizeSubdomain lowercases and trims a subdomain
func NormalizeSubdomain(subdomain string) string {
	return strings.ToLower(strings.TrimSpace(subdomain))
}

// ValidateSubdomain checks the slug format
func ValidateSubdomain(subdomain string) error {
	if subdomain == "" {
		return shared.NewValidationError("subdomain", "Subdomain cannot be empty")
	}
	if len(subdomain) > 50 {
		return shared.NewValidationError("subdomain", "Subdomain cannot exceed 50 characters")
	}
	if !subdomainPattern.MatchString(subdomain) {
		return shared.NewValidationError("subdomain", "Subdomain can only contain lowercase letters, numbers and hyphens")
	}
	return nil
}

func validateTenantName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("name", "Tenant name cannot be empty")
	}
	if len([]rune(name)) > 100 {
		return shared.NewValidationError("name", "Tenant name cannot exceed 100 characters")
	}
	return nil
}
