// Package property models the real-estate units an agency lists and leases.
package property

import (
	"strings"

	"github.com/aqario/backend/internal/domain/shared"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// maxArea is the largest value the numeric(10,2) area column holds
var maxArea = decimal.RequireFromString("99999999.99")

// Type is the kind of property
type Type string

const (
	TypeApartment Type = "APARTMENT"
	TypeVilla     Type = "VILLA"
	TypeOffice    Type = "OFFICE"
	TypeShop      Type = "SHOP"
	TypeLand      Type = "LAND"
)

// AllTypes lists every property type
var AllTypes = []Type{TypeApartment, TypeVilla, TypeOffice, TypeShop, TypeLand}

// ParseType validates a property type string
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", shared.NewValidationError("property_type", "Unknown property type: "+s)
	}
	return t, nil
}

// IsValid reports whether t is a known type
func (t Type) IsValid() bool {
	switch t {
	case TypeApartment, TypeVilla, TypeOffice, TypeShop, TypeLand:
		return true
	}
	return false
}

// Property is a listed real-estate unit
type Property struct {
	shared.TenantEntity
	Title       string
	Type        Type
	Area        decimal.Decimal // square meters
	Location    string
	Price       decimal.Decimal
	Description string
	Image       string // storage key under property_images/
}

// Details carries the mutable attributes of a property
type Details struct {
	Title       string
	Type        Type
	Area        decimal.Decimal
	Location    string
	Price       decimal.Decimal
	Description string
}

// NewProperty creates a property inside the scope
func NewProperty(scope shared.Scope, d Details) (*Property, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	p := &Property{TenantEntity: shared.NewTenantEntity(scope)}
	if err := p.apply(d); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the mutable attributes
func (p *Property) Update(d Details) error {
	if err := p.apply(d); err != nil {
		return err
	}
	p.Touch()
	return nil
}

// SetImage records the storage key of the property image
func (p *Property) SetImage(key string) {
	p.Image = key
	p.Touch()
}

func (p *Property) apply(d Details) error {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return shared.NewValidationError("title", "Title cannot be empty")
	}
	if len([]rune(title)) > 255 {
		return shared.NewValidationError("title", "Title cannot exceed 255 characters")
	}
	if !d.Type.IsValid() {
		return shared.NewValidationError("property_type", "Unknown property type: "+string(d.Type))
	}
	location := strings.TrimSpace(d.Location)
	if location == "" {
		return shared.NewValidationError("location", "Location cannot be empty")
	}
	if len([]rune(location)) > 255 {
		return shared.NewValidationError("location", "Location cannot exceed 255 characters")
	}
	if !valueobject.IsNonNegative(d.Area) {
		return shared.NewValidationError("area", "Area cannot be negative")
	}
	if d.Area.Round(2).GreaterThan(maxArea) {
		return shared.NewValidationError("area", "Ensure that there are no more than 10 digits in total")
	}
	if !valueobject.IsNonNegative(d.Price) {
		return shared.NewValidationError("price", "Price cannot be negative")
	}
	if !valueobject.IsAmount(d.Price) {
		return shared.NewValidationError("price", "Ensure that there are no more than 12 digits in total")
	}

	p.Title = title
	p.Type = d.Type
	p.Area = d.Area.Round(2)
	p.Location = location
	p.Price = valueobject.RoundCurrency(d.Price)
	p.Description = strings.TrimSpace(d.Description)
	return nil
}
