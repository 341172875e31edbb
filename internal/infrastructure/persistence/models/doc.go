// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free of
// ORM concerns.
//
// The schema itself is owned by the versioned migrations; the gorm tags here only
// describe column mapping.
//
// Structure:
// - base.go: BaseModel shared by every table
// - finance.go: financial_records, donations, expenses
// - parish.go: designations, gallery_items
// - identity.go: users
package models
