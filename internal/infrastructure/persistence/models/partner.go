package models

import "github.com/aqario/backend/internal/domain/partner"

// ClientModel is the persistence model for the Client entity
type ClientModel struct {
	TenantScopedModel
	Name       string `gorm:"size:255;not null"`
	Phone      string `gorm:"size:20"`
	Email      string `gorm:"size:254"`
	NationalID string `gorm:"size:50"`
	Notes      string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the model to a domain Client
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		TenantEntity: m.ToDomainTenantEntity(),
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		NationalID:   m.NationalID,
		Notes:        m.Notes,
	}
}

// ClientModelFromDomain creates a model from a domain Client
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		NationalID: c.NationalID,
		Notes:      c.Notes,
	}
	m.FromDomainTenantEntity(c.TenantEntity)
	return m
}
