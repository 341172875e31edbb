package finance

import (
	"strings"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

// RecordType represents the kind of income a financial record books
type RecordType string

const (
	RecordTypeOffering  RecordType = "offering"
	RecordTypeDonation  RecordType = "donation"
	RecordTypeChurchTax RecordType = "church_tax"
)

// IsValid checks if the type is a valid RecordType
func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeOffering, RecordTypeDonation, RecordTypeChurchTax:
		return true
	}
	return false
}

// String returns the string representation of RecordType
func (t RecordType) String() string {
	return string(t)
}

// Record is a financial income entry: an offering, a donation or church tax
type Record struct {
	shared.BaseEntity
	Name     string
	Amount   Amount
	Function string
	Type     RecordType
	Date     time.Time
}

// NewRecord creates a new financial record. A zero date defaults to now.
func NewRecord(name string, amount Amount, function string, recordType RecordType, date time.Time) (*Record, error) {
	if date.IsZero() {
		date = time.Now()
	}
	r := &Record{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Amount:     amount,
		Function:   strings.TrimSpace(function),
		Type:       recordType,
		Date:       date,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the record invariants
func (r *Record) Validate() error {
	if r.Name == "" {
		return shared.NewInvalidParameter("Name is required", r.Name)
	}
	if err := validateAmount(r.Amount); err != nil {
		return err
	}
	if !r.Type.IsValid() {
		return shared.NewInvalidParameter("Type must be one of offering, donation, church_tax", r.Type)
	}
	if r.Type == RecordTypeDonation && r.Function == "" {
		return shared.NewInvalidParameter("Function is required for donation records", map[string]any{
			"type":     r.Type,
			"function": r.Function,
		})
	}
	return nil
}

// RecordPatch holds the fields supplied on a partial update
type RecordPatch struct {
	Name     *string
	Amount   *Amount
	Function *string
	Type     *RecordType
	Date     *time.Time
}

// Apply merges the supplied fields over the record and re-validates it.
// The record is left unchanged if the merged result is invalid.
func (r *Record) Apply(p RecordPatch) error {
	merged := *r
	if p.Name != nil {
		merged.Name = strings.TrimSpace(*p.Name)
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
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	merged.Touch()
	*r = merged
	return nil
}

func validateAmount(a Amount) error {
	if !a.IsValid() {
		return shared.NewInvalidParameter("Amount must be a valid number", a.Raw())
	}
	if a.IsNegative() {
		return shared.NewInvalidParameter("Amount must be non-negative", a)
	}
	return nil
}
