package parish

import (
	"strings"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"golang.org/x/text/cases"
)

var nameFolder = cases.Fold()

// Designation is an office in the parish organization, such as Treasurer
type Designation struct {
	shared.BaseEntity
	Name        string
	Description string
	IsActive    bool
}

// NewDesignation creates an active designation
func NewDesignation(name, description string, isActive *bool) (*Designation, error) {
	d := &Designation{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		IsActive:    true,
	}
	if isActive != nil {
		d.IsActive = *isActive
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the designation invariants
func (d *Designation) Validate() error {
	if d.Name == "" {
		return shared.NewInvalidParameter("Name is required", d.Name)
	}
	if len(d.Name) > 100 {
		return shared.NewInvalidParameter("Name cannot exceed 100 characters", d.Name)
	}
	return nil
}

// NameKey is the case-folded name used for uniqueness
func (d *Designation) NameKey() string {
	return NameKey(d.Name)
}

// NameKey case-folds a designation name so "Treasurer" and "treasurer" collide
func NameKey(name string) string {
	return nameFolder.String(strings.TrimSpace(name))
}

// DesignationPatch holds the fields supplied on a partial update
type DesignationPatch struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// Apply merges the supplied fields and re-validates
func (d *Designation) Apply(p DesignationPatch) error {
	merged := *d
	if p.Name != nil {
		merged.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		merged.Description = strings.TrimSpace(*p.Description)
	}
	if p.IsActive != nil {
		merged.IsActive = *p.IsActive
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	merged.Touch()
	*d = merged
	return nil
}
