package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
)

// RecordModel is the persistence model for finance.Record
type RecordModel struct {
	BaseModel
	Name             string             `gorm:"type:varchar(200);not null"`
	Amount           finance.Amount     `gorm:"type:numeric(18,4);not null"`
	Function         string             `gorm:"type:varchar(200);not null;default:''"`
	Type             finance.RecordType `gorm:"type:varchar(20);not null"`
	Date             time.Time          `gorm:"not null;index"`
	LegacyDonationID *uuid.UUID         `gorm:"type:uuid;uniqueIndex"`
}

// TableName returns the table name for GORM
func (RecordModel) TableName() string {
	return "financial_records"
}

// ToDomain converts the persistence model to a domain Record
func (m *RecordModel) ToDomain() *finance.Record {
	return &finance.Record{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Amount:     m.Amount,
		Function:   m.Function,
		Type:       m.Type,
		Date:       m.Date,
	}
}

// RecordModelFromDomain creates a persistence model from a domain Record
func RecordModelFromDomain(r *finance.Record) *RecordModel {
	m := &RecordModel{
		Name:     r.Name,
		Amount:   r.Amount,
		Function: r.Function,
		Type:     r.Type,
		Date:     StoredTime(r.Date),
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

// DonationModel is the persistence model for the legacy finance.Donation
type DonationModel struct {
	BaseModel
	DonorName   string               `gorm:"type:varchar(200);not null"`
	Amount      finance.Amount       `gorm:"type:numeric(18,4);not null"`
	Function    string               `gorm:"type:varchar(200);not null;default:''"`
	Type        finance.DonationType `gorm:"type:varchar(20);not null"`
	Description string               `gorm:"type:text;not null;default:''"`
	Date        time.Time            `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (DonationModel) TableName() string {
	return "donations"
}

// ToDomain converts the persistence model to a domain Donation
func (m *DonationModel) ToDomain() *finance.Donation {
	return &finance.Donation{
		BaseEntity:  m.BaseModel.ToDomain(),
		DonorName:   m.DonorName,
		Amount:      m.Amount,
		Function:    m.Function,
		Type:        m.Type,
		Description: m.Description,
		Date:        m.Date,
	}
}

// DonationModelFromDomain creates a persistence model from a domain Donation
func DonationModelFromDomain(d *finance.Donation) *DonationModel {
	m := &DonationModel{
		DonorName:   d.DonorName,
		Amount:      d.Amount,
		Function:    d.Function,
		Type:        d.Type,
		Description: d.Description,
		Date:        StoredTime(d.Date),
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}

// ExpenseModel is the persistence model for finance.Expense
type ExpenseModel struct {
	BaseModel
	Name             string         `gorm:"type:varchar(200);not null"`
	Amount           finance.Amount `gorm:"type:numeric(18,4);not null"`
	Function         string         `gorm:"type:varchar(200);not null"`
	Date             time.Time      `gorm:"not null;index"`
	LegacyDonationID *uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Amount:     m.Amount,
		Function:   m.Function,
		Date:       m.Date,
	}
}

// ExpenseModelFromDomain creates a persistence model from a domain Expense
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{
		Name:     e.Name,
		Amount:   e.Amount,
		Function: e.Function,
		Date:     StoredTime(e.Date),
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}
