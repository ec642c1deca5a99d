package models

import (
	"time"

	"github.com/aqario/backend/internal/domain/leasing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractModel is the persistence model for the Contract entity
type ContractModel struct {
	TenantScopedModel
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       time.Time       `gorm:"type:date;not null"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        string          `gorm:"size:20;not null;default:ACTIVE;index"`
	PDFFile       string          `gorm:"column:pdf_file;size:255"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the model to a domain Contract
func (m *ContractModel) ToDomain() *leasing.Contract {
	return &leasing.Contract{
		TenantEntity:  m.ToDomainTenantEntity(),
		PropertyID:    m.PropertyID,
		ClientID:      m.ClientID,
		StartDate:     m.StartDate.UTC(),
		EndDate:       m.EndDate.UTC(),
		MonthlyAmount: m.MonthlyAmount,
		TotalAmount:   m.TotalAmount,
		Status:        leasing.Status(m.Status),
		PDFFile:       m.PDFFile,
		Notes:         m.Notes,
	}
}

// ContractModelFromDomain creates a model from a domain Contract
func ContractModelFromDomain(c *leasing.Contract) *ContractModel {
	m := &ContractModel{
		PropertyID:    c.PropertyID,
		ClientID:      c.ClientID,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		MonthlyAmount: c.MonthlyAmount,
		TotalAmount:   c.TotalAmount,
		Status:        string(c.Status),
		PDFFile:       c.PDFFile,
		Notes:         c.Notes,
	}
	m.FromDomainTenantEntity(c.TenantEntity)
	return m
}
