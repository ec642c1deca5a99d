package models

import (
	"time"

	"github.com/aqario/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice entity
type InvoiceModel struct {
	TenantScopedModel
	ContractID    *uuid.UUID      `gorm:"type:uuid;index"`
	InvoiceNumber string          `gorm:"size:50;not null;uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:15.00"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DueDate       time.Time       `gorm:"type:date;not null"`
	PaidDate      *time.Time      `gorm:"type:date;index"`
	Status        string          `gorm:"size:20;not null;default:PENDING;index"`
	PDFFile       string          `gorm:"column:pdf_file;size:255"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain Invoice
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	inv := &finance.Invoice{
		TenantEntity:  m.ToDomainTenantEntity(),
		ContractID:    m.ContractID,
		InvoiceNumber: m.InvoiceNumber,
		Amount:        m.Amount,
		TaxRate:       m.TaxRate,
		TaxAmount:     m.TaxAmount,
		TotalAmount:   m.TotalAmount,
		DueDate:       m.DueDate.UTC(),
		Status:        finance.Status(m.Status),
		PDFFile:       m.PDFFile,
		Notes:         m.Notes,
	}
	if m.PaidDate != nil {
		paid := m.PaidDate.UTC()
		inv.PaidDate = &paid
	}
	return inv
}

// InvoiceModelFromDomain creates a model from a domain Invoice
func InvoiceModelFromDomain(i *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		ContractID:    i.ContractID,
		InvoiceNumber: i.InvoiceNumber,
		Amount:        i.Amount,
		TaxRate:       i.TaxRate,
		TaxAmount:     i.TaxAmount,
		TotalAmount:   i.TotalAmount,
		DueDate:       i.DueDate,
		PaidDate:      i.PaidDate,
		Status:        string(i.Status),
		PDFFile:       i.PDFFile,
		Notes:         i.Notes,
	}
	m.FromDomainTenantEntity(i.TenantEntity)
	return m
}
