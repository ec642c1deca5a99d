package models

import (
	"github.com/aqario/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// PropertyModel is the persistence model for the Property entity
type PropertyModel struct {
	TenantScopedModel
	Title        string          `gorm:"size:255;not null"`
	PropertyType string          `gorm:"size:20;not null;index"`
	Area         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Location     string          `gorm:"size:255;not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description  string          `gorm:"type:text"`
	Image        string          `gorm:"size:255"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the model to a domain Property
func (m *PropertyModel) ToDomain() *property.Property {
	return &property.Property{
		TenantEntity: m.ToDomainTenantEntity(),
		Title:        m.Title,
		Type:         property.Type(m.PropertyType),
		Area:         m.Area,
		Location:     m.Location,
		Price:        m.Price,
		Description:  m.Description,
		Image:        m.Image,
	}
}

// PropertyModelFromDomain creates a model from a domain Property
func PropertyModelFromDomain(p *property.Property) *PropertyModel {
	m := &PropertyModel{
		Title:        p.Title,
		PropertyType: string(p.Type),
		Area:         p.Area,
		Location:     p.Location,
		Price:        p.Price,
		Description:  p.Description,
		Image:        p.Image,
	}
	m.FromDomainTenantEntity(p.TenantEntity)
	return m
}
