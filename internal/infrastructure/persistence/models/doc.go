// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel and TenantModel
//   - identity.go: tenants and users
//   - property.go, partner.go, leasing.go, finance.go: tenant-owned records
package models
