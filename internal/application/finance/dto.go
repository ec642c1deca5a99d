package finance

import (
	"time"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/aqario/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest represents a request to create an invoice. Tax and
// total amounts are always derived and cannot be supplied.
type CreateInvoiceRequest struct {
	Contract      *uuid.UUID        `json:"contract"`
	InvoiceNumber string            `json:"invoice_number" binding:"required,min=1,max=50"`
	Amount        *decimal.Decimal  `json:"amount" binding:"required,decimal_gte0"`
	TaxRate       *decimal.Decimal  `json:"tax_rate" binding:"omitempty,decimal_gte0"`
	DueDate       valueobject.Date  `json:"due_date"`
	PaidDate      *valueobject.Date `json:"paid_date"`
	Status        string            `json:"status" binding:"omitempty,oneof=PENDING PAID OVERDUE CANCELLED"`
	Notes         string            `json:"notes"`
}

// UpdateInvoiceRequest represents a partial update; nil fields are left
// unchanged. ClearContract detaches the invoice from its contract.
type UpdateInvoiceRequest struct {
	Contract      *uuid.UUID        `json:"contract"`
	ClearContract bool              `json:"clear_contract"`
	InvoiceNumber *string           `json:"invoice_number" binding:"omitempty,min=1,max=50"`
	Amount        *decimal.Decimal  `json:"amount" binding:"omitempty,decimal_gte0"`
	TaxRate       *decimal.Decimal  `json:"tax_rate" binding:"omitempty,decimal_gte0"`
	DueDate       *valueobject.Date `json:"due_date"`
	PaidDate      *valueobject.Date `json:"paid_date"`
	Status        *string           `json:"status" binding:"omitempty,oneof=PENDING PAID OVERDUE CANCELLED"`
	Notes         *string           `json:"notes"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID            uuid.UUID          `json:"id"`
	TenantID      uuid.UUID          `json:"tenant"`
	ContractID    *uuid.UUID         `json:"contract"`
	ClientName    string             `json:"client_name,omitempty"`
	InvoiceNumber string             `json:"invoice_number"`
	Amount        valueobject.Fixed2 `json:"amount"`
	TaxRate       valueobject.Fixed2 `json:"tax_rate"`
	TaxAmount     valueobject.Fixed2 `json:"tax_amount"`
	TotalAmount   valueobject.Fixed2 `json:"total_amount"`
	DueDate       valueobject.Date   `json:"due_date"`
	PaidDate      *valueobject.Date  `json:"paid_date"`
	Status        string             `json:"status"`
	PDFFile       string             `json:"pdf_file"`
	Notes         string             `json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ToInvoiceResponse converts a domain invoice
func ToInvoiceResponse(inv *finance.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID,
		TenantID:      inv.TenantID,
		ContractID:    inv.ContractID,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        valueobject.NewFixed2(inv.Amount),
		TaxRate:       valueobject.NewFixed2(inv.TaxRate),
		TaxAmount:     valueobject.NewFixed2(inv.TaxAmount),
		TotalAmount:   valueobject.NewFixed2(inv.TotalAmount),
		DueDate:       valueobject.NewDate(inv.DueDate),
		PaidDate:      valueobject.DatePtr(inv.PaidDate),
		Status:        string(inv.Status),
		PDFFile:       inv.PDFFile,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	if c := inv.Client(); c != nil {
		resp.ClientName = c.Name
	}
	return resp
}

func detailsOf(inv *finance.Invoice) finance.Details {
	return finance.Details{
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		TaxRate:       inv.TaxRate,
		DueDate:       inv.DueDate,
		PaidDate:      inv.PaidDate,
		Status:        inv.Status,
		Notes:         inv.Notes,
	}
}

// DashboardCounts holds the entity counts of the dashboard
type DashboardCounts struct {
	Properties      int64 `json:"properties"`
	Clients         int64 `json:"clients"`
	ActiveContracts int64 `json:"active_contracts"`
}

// DashboardFinancial holds the invoice sums of the dashboard
type DashboardFinancial struct {
	TotalRevenue  valueobject.Fixed2 `json:"total_revenue"`
	PendingAmount valueobject.Fixed2 `json:"pending_amount"`
	OverdueAmount valueobject.Fixed2 `json:"overdue_amount"`
}

// PropertyTypeCount is one slice of the property distribution chart
type PropertyTypeCount struct {
	PropertyType string `json:"property_type"`
	Count        int64  `json:"count"`
}

// DashboardCharts holds the chart series of the dashboard
type DashboardCharts struct {
	MonthlyRevenue       []finance.MonthlyRevenue `json:"monthly_revenue"`
	PropertyDistribution []PropertyTypeCount      `json:"property_distribution"`
}

// DashboardStats is the response of the dashboard endpoint
type DashboardStats struct {
	Counts    DashboardCounts    `json:"counts"`
	Financial DashboardFinancial `json:"financial"`
	Charts    DashboardCharts    `json:"charts"`
}
