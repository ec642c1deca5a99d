package property

import (
	"time"

	"github.com/aqario/backend/internal/domain/property"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest represents a request to create a property
type CreatePropertyRequest struct {
	Title        string           `json:"title" binding:"required,min=1,max=255"`
	PropertyType string           `json:"property_type" binding:"required,oneof=APARTMENT VILLA OFFICE SHOP LAND"`
	Area         *decimal.Decimal `json:"area" binding:"required,decimal_gte0"`
	Location     string           `json:"location" binding:"required,min=1,max=255"`
	Price        *decimal.Decimal `json:"price" binding:"required,decimal_gte0"`
	Description  string           `json:"description"`
}

// UpdatePropertyRequest represents a partial update; nil fields are left unchanged
type UpdatePropertyRequest struct {
	Title        *string          `json:"title" binding:"omitempty,min=1,max=255"`
	PropertyType *string          `json:"property_type" binding:"omitempty,oneof=APARTMENT VILLA OFFICE SHOP LAND"`
	Area         *decimal.Decimal `json:"area" binding:"omitempty,decimal_gte0"`
	Location     *string          `json:"location" binding:"omitempty,min=1,max=255"`
	Price        *decimal.Decimal `json:"price" binding:"omitempty,decimal_gte0"`
	Description  *string          `json:"description"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID           uuid.UUID          `json:"id"`
	TenantID     uuid.UUID          `json:"tenant"`
	Title        string             `json:"title"`
	PropertyType string             `json:"property_type"`
	Area         valueobject.Fixed2 `json:"area"`
	Location     string             `json:"location"`
	Price        valueobject.Fixed2 `json:"price"`
	Description  string             `json:"description"`
	Image        string             `json:"image"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ToPropertyResponse converts a domain property
func ToPropertyResponse(p *property.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,
		TenantID:     p.TenantID,
		Title:        p.Title,
		PropertyType: string(p.Type),
		Area:         valueobject.NewFixed2(p.Area),
		Location:     p.Location,
		Price:        valueobject.NewFixed2(p.Price),
		Description:  p.Description,
		Image:        p.Image,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func detailsOf(p *property.Property) property.Details {
	return property.Details{
		Title:       p.Title,
		Type:        p.Type,
		Area:        p.Area,
		Location:    p.Location,
		Price:       p.Price,
		Description: p.Description,
	}
}
