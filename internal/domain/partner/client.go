// Package partner models the people an agency does business with.
package partner

import (
	"regexp"
	"strings"

	"github.com/aqario/backend/internal/domain/shared"
)

var (
	clientEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	clientPhonePattern = regexp.MustCompile(`^(whatsapp:)?\+?[0-9 \-]{6,20}$`)
)

// Client is a tenant's customer: a renter or buyer
type Client struct {
	shared.TenantEntity
	Name       string
	Phone      string
	Email      string
	NationalID string
	Notes      string
}

// ClientDetails carries the mutable attributes of a client
type ClientDetails struct {
	Name       string
	Phone      string
	Email      string
	NationalID string
	Notes      string
}

// NewClient creates a client inside the scope
func NewClient(scope shared.Scope, d ClientDetails) (*Client, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	c := &Client{TenantEntity: shared.NewTenantEntity(scope)}
	if err := c.apply(d); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the mutable attributes
func (c *Client) Update(d ClientDetails) error {
	if err := c.apply(d); err != nil {
		return err
	}
	c.Touch()
	return nil
}

// HasEmail reports whether the client can receive email
func (c *Client) HasEmail() bool {
	return c.Email != ""
}

// HasPhone reports whether the client can receive WhatsApp messages
func (c *Client) HasPhone() bool {
	return c.Phone != ""
}

func (c *Client) apply(d ClientDetails) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.NewValidationError("name", "Client name cannot be empty")
	}
	if len([]rune(name)) > 255 {
		return shared.NewValidationError("name", "Client name cannot exceed 255 characters")
	}

	phone := strings.TrimSpace(d.Phone)
	if phone != "" && !clientPhonePattern.MatchString(phone) {
		return shared.NewValidationError("phone", "Invalid phone number")
	}

	email := strings.ToLower(strings.TrimSpace(d.Email))
	if email != "" && !clientEmailPattern.MatchString(email) {
		return shared.NewValidationError("email", "Invalid email format")
	}

	nationalID := strings.TrimSpace(d.NationalID)
	if len(nationalID) > 50 {
		return shared.NewValidationError("national_id", "National ID cannot exceed 50 characters")
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.NationalID = nationalID
	c.Notes = strings.TrimSpace(d.Notes)
	return nil
}
