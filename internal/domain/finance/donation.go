package finance

import (
	"strings"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

// DonationType is the direction of a legacy donation entry
type DonationType string

const (
	DonationTypeIncome      DonationType = "income"
	DonationTypeExpenditure DonationType = "expenditure"
)

// IsValid checks if the type is a valid DonationType
func (t DonationType) IsValid() bool {
	return t == DonationTypeIncome || t == DonationTypeExpenditure
}

// String returns the string representation of DonationType
func (t DonationType) String() string {
	return string(t)
}

// Donation is the first-generation ledger entry that books both income and
// expenditure in one table. New data goes to Record and Expense; donations are
// kept readable and writable for existing clients.
type Donation struct {
	shared.BaseEntity
	DonorName   string
	Amount      Amount
	Function    string
	Type        DonationType
	Description string
	Date        time.Time
}

// NewDonation creates a new donation. A zero date defaults to now.
func NewDonation(donorName string, amount Amount, function string, donationType DonationType, description string, date time.Time) (*Donation, error) {
	if date.IsZero() {
		date = time.Now()
	}
	d := &Donation{
		BaseEntity:  shared.NewBaseEntity(),
		DonorName:   strings.TrimSpace(donorName),
		Amount:      amount,
		Function:    strings.TrimSpace(function),
		Type:        donationType,
		Description: strings.TrimSpace(description),
		Date:        date,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the donation invariants
func (d *Donation) Validate() error {
	if d.DonorName == "" {
		return shared.NewInvalidParameter("Donor name is required", d.DonorName)
	}
	if err := validateAmount(d.Amount); err != nil {
		return err
	}
	if d.Function == "" {
		return shared.NewInvalidParameter("Function is required", d.Function)
	}
	if !d.Type.IsValid() {
		return shared.NewInvalidParameter("Type must be one of income, expenditure", d.Type)
	}
	return nil
}

// DonationPatch holds the fields supplied on a partial update
type DonationPatch struct {
	DonorName   *string
	Amount      *Amount
	Function    *string
	Type        *DonationType
	Description *string
	Date        *time.Time
}

// Apply merges the supplied fields over the donation and re-validates it
func (d *Donation) Apply(p DonationPatch) error {
	merged := *d
	if p.DonorName != nil {
		merged.DonorName = strings.TrimSpace(*p.DonorName)
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.Function != nil {
		merged.Function = strings.TrimSpace(*p.Function)
	}
	if p.Type != nil {
		merged.Type = *p.Type
	}
	if p.Description != nil {
		merged.Description = strings.TrimSpace(*p.Description)
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	merged.Touch()
	*d = merged
	return nil
}
