package leasing

import (
	"time"

	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateContractRequest represents a request to create a contract
type CreateContractRequest struct {
	Property      uuid.UUID        `json:"property" binding:"required"`
	Client        uuid.UUID        `json:"client" binding:"required"`
	StartDate     valueobject.Date `json:"start_date"`
	EndDate       valueobject.Date `json:"end_date"`
	MonthlyAmount *decimal.Decimal `json:"monthly_amount" binding:"required,decimal_gte0"`
	TotalAmount   *decimal.Decimal `json:"total_amount" binding:"required,decimal_gte0"`
	Status        string           `json:"status" binding:"omitempty,oneof=ACTIVE EXPIRED TERMINATED"`
	Notes         string           `json:"notes"`
}

// UpdateContractRequest represents a partial update; nil fields are left unchanged
type UpdateContractRequest struct {
	Property      *uuid.UUID        `json:"property"`
	Client        *uuid.UUID        `json:"client"`
	StartDate     *valueobject.Date `json:"start_date"`
	EndDate       *valueobject.Date `json:"end_date"`
	MonthlyAmount *decimal.Decimal  `json:"monthly_amount" binding:"omitempty,decimal_gte0"`
	TotalAmount   *decimal.Decimal  `json:"total_amount" binding:"omitempty,decimal_gte0"`
	Status        *string           `json:"status" binding:"omitempty,oneof=ACTIVE EXPIRED TERMINATED"`
	Notes         *string           `json:"notes"`
}

// ContractResponse represents a contract in API responses. Property title
// and client name are present when the relations were loaded.
type ContractResponse struct {
	ID            uuid.UUID          `json:"id"`
	TenantID      uuid.UUID          `json:"tenant"`
	PropertyID    uuid.UUID          `json:"property"`
	PropertyTitle string             `json:"property_title,omitempty"`
	ClientID      uuid.UUID          `json:"client"`
	ClientName    string             `json:"client_name,omitempty"`
	StartDate     valueobject.Date   `json:"start_date"`
	EndDate       valueobject.Date   `json:"end_date"`
	MonthlyAmount valueobject.Fixed2 `json:"monthly_amount"`
	TotalAmount   valueobject.Fixed2 `json:"total_amount"`
	Status        string             `json:"status"`
	PDFFile       string             `json:"pdf_file"`
	Notes         string             `json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ToContractResponse converts a domain contract
func ToContractResponse(c *leasing.Contract) ContractResponse {
	resp := ContractResponse{
		ID:            c.ID,
		TenantID:      c.TenantID,
		PropertyID:    c.PropertyID,
		ClientID:      c.ClientID,
		StartDate:     valueobject.NewDate(c.StartDate),
		EndDate:       valueobject.NewDate(c.EndDate),
		MonthlyAmount: valueobject.NewFixed2(c.MonthlyAmount),
		TotalAmount:   valueobject.NewFixed2(c.TotalAmount),
		Status:        string(c.Status),
		PDFFile:       c.PDFFile,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.Property != nil {
		resp.PropertyTitle = c.Property.Title
	}
	if c.Client != nil {
		resp.ClientName = c.Client.Name
	}
	return resp
}

func termsOf(c *leasing.Contract) leasing.Terms {
	return leasing.Terms{
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		MonthlyAmount: c.MonthlyAmount,
		TotalAmount:   c.TotalAmount,
		Status:        c.Status,
		Notes:         c.Notes,
	}
}
