package persistence

import (
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRecordRepository implements finance.RecordRepository using GORM
type GormRecordRepository struct {
	ledgerRepository[finance.Record, models.RecordModel]
}

// NewGormRecordRepository creates a new GormRecordRepository. Years are
// evaluated in loc.
func NewGormRecordRepository(db *gorm.DB, loc *time.Location) *GormRecordRepository {
	return &GormRecordRepository{ledgerRepository[finance.Record, models.RecordModel]{
		datedRepository: datedRepository[finance.Record, models.RecordModel]{
			crudRepository: crudRepository[finance.Record, models.RecordModel]{
				db:         db,
				resource:   "Record",
				conflict:   "Record already exists",
				saveOmit:   []string{"legacy_donation_id"},
				toDomain:   (*models.RecordModel).ToDomain,
				fromDomain: models.RecordModelFromDomain,
			},
			loc:     locationOrUTC(loc),
			hasType: true,
		},
	}}
}

// GormDonationRepository implements finance.DonationRepository using GORM
type GormDonationRepository struct {
	ledgerRepository[finance.Donation, models.DonationModel]
}

// NewGormDonationRepository creates a new GormDonationRepository
func NewGormDonationRepository(db *gorm.DB, loc *time.Location) *GormDonationRepository {
	return &GormDonationRepository{ledgerRepository[finance.Donation, models.DonationModel]{
		datedRepository: datedRepository[finance.Donation, models.DonationModel]{
			crudRepository: crudRepository[finance.Donation, models.DonationModel]{
				db:         db,
				resource:   "Donation",
				conflict:   "Donation already exists",
				toDomain:   (*models.DonationModel).ToDomain,
				fromDomain: models.DonationModelFromDomain,
			},
			loc:     locationOrUTC(loc),
			hasType: true,
		},
	}}
}

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	ledgerRepository[finance.Expense, models.ExpenseModel]
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB, loc *time.Location) *GormExpenseRepository {
	return &GormExpenseRepository{ledgerRepository[finance.Expense, models.ExpenseModel]{
		datedRepository: datedRepository[finance.Expense, models.ExpenseModel]{
			crudRepository: crudRepository[finance.Expense, models.ExpenseModel]{
				db:         db,
				resource:   "Expense",
				conflict:   "Expense already exists",
				saveOmit:   []string{"legacy_donation_id"},
				toDomain:   (*models.ExpenseModel).ToDomain,
				fromDomain: models.ExpenseModelFromDomain,
			},
			loc: locationOrUTC(loc),
		},
	}}
}

var (
	_ finance.RecordRepository   = (*GormRecordRepository)(nil)
	_ finance.DonationRepository = (*GormDonationRepository)(nil)
	_ finance.ExpenseRepository  = (*GormExpenseRepository)(nil)
)
