// Package parish holds the designation and gallery use cases.
package parish

import (
	"context"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/parish"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"go.uber.org/zap"
)

// DesignationNotFoundMessage is returned for unknown designation ids
const DesignationNotFoundMessage = "Designation not found"

// DuplicateDesignationMessage is returned when a name is already taken
const DuplicateDesignationMessage = "Designation name already exists"

// DesignationService handles designation operations
type DesignationService struct {
	repo parish.DesignationRepository
	opts Options
}

// NewDesignationService creates a new DesignationService
func NewDesignationService(repo parish.DesignationRepository, opts Options) *DesignationService {
	return &DesignationService{repo: repo, opts: opts.withDefaults()}
}

// List returns designations sorted by name
func (s *DesignationService) List(ctx context.Context, activeOnly bool) ([]DesignationResponse, error) {
	designations, err := s.repo.List(ctx, parish.DesignationFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}
	out := make([]DesignationResponse, len(designations))
	for i := range designations {
		out[i] = ToDesignationResponse(&designations[i])
	}
	return out, nil
}

// GetByID returns one designation
func (s *DesignationService) GetByID(ctx context.Context, rawID string) (*DesignationResponse, error) {
	d, err := s.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	resp := ToDesignationResponse(d)
	return &resp, nil
}

// Create stores a new designation with a unique name
func (s *DesignationService) Create(ctx context.Context, req CreateDesignationRequest) (*DesignationResponse, error) {
	d, err := parish.NewDesignation(req.Name, req.Description, req.IsActive)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, d.NameKey(), ""); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.opts.Logger.Info("Designation created", zap.String("id", d.ID.String()), zap.String("name", d.Name))
	s.opts.Metrics.EntryWritten(ctx, "designation", "create")
	resp := ToDesignationResponse(d)
	return &resp, nil
}

// Update merges the supplied fields. Renaming onto another designation's
// name is a conflict.
func (s *DesignationService) Update(ctx context.Context, rawID string, req UpdateDesignationRequest) (*DesignationResponse, error) {
	d, err := s.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := d.Apply(parish.DesignationPatch{Name: req.Name, Description: req.Description, IsActive: req.IsActive}); err != nil {
		return nil, err
	}
	if req.Name != nil {
		if err := s.ensureUnique(ctx, d.NameKey(), d.ID.String()); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, d); err != nil {
		return nil, err
	}

	s.opts.Metrics.EntryWritten(ctx, "designation", "update")
	resp := ToDesignationResponse(d)
	return &resp, nil
}

// Delete removes a designation
func (s *DesignationService) Delete(ctx context.Context, rawID string) error {
	id, err := shared.ParseID(rawID, DesignationNotFoundMessage)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.opts.Logger.Info("Designation deleted", zap.String("id", id.String()))
	s.opts.Metrics.EntryWritten(ctx, "designation", "delete")
	return nil
}

func (s *DesignationService) load(ctx context.Context, rawID string) (*parish.Designation, error) {
	id, err := shared.ParseID(rawID, DesignationNotFoundMessage)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *DesignationService) ensureUnique(ctx context.Context, nameKey, excludeID string) error {
	exists, err := s.repo.ExistsByNameKey(ctx, nameKey, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExists(DuplicateDesignationMessage)
	}
	return nil
}
