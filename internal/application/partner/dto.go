package partner

import (
	"time"

	"github.com/aqario/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateClientRequest represents a request to create a client
type CreateClientRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=255"`
	Phone      string `json:"phone" binding:"max=30"`
	Email      string `json:"email" binding:"omitempty,email,max=254"`
	NationalID string `json:"national_id" binding:"max=50"`
	Notes      string `json:"notes"`
}

// UpdateClientRequest represents a partial update; nil fields are left unchanged
type UpdateClientRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255"`
	Phone      *string `json:"phone" binding:"omitempty,max=30"`
	Email      *string `json:"email" binding:"omitempty,max=254"`
	NationalID *string `json:"national_id" binding:"omitempty,max=50"`
	Notes      *string `json:"notes"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	NationalID string    `json:"national_id"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain client
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		TenantID:   c.TenantID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		NationalID: c.NationalID,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
