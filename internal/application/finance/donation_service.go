package finance

import (
	"context"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"go.uber.org/zap"
)

// DonationService handles legacy donation operations
type DonationService struct {
	ledger[finance.Donation]
}

// NewDonationService creates a new DonationService
func NewDonationService(repo finance.DonationRepository, opts Options) *DonationService {
	return &DonationService{ledger: newLedger[finance.Donation](repo, "Donation", finance.DonationTypeValidator, opts)}
}

// List returns the matching donations, newest first, with income, expenditure and balance
func (s *DonationService) List(ctx context.Context, params finance.FilterParams) (*DonationListResponse, error) {
	donations, err := s.find(ctx, params)
	if err != nil {
		return nil, err
	}
	totals := finance.SumDonations(donations, s.skipper(ctx))

	resp := &DonationListResponse{
		Donations: make([]DonationResponse, len(donations)),
		Totals: DonationTotalsResponse{
			Income:      totals.Income,
			Expenditure: totals.Expenditure,
			Balance:     totals.Balance,
		},
	}
	for i := range donations {
		resp.Donations[i] = ToDonationResponse(&donations[i])
	}
	return resp, nil
}

// GetByID returns one donation
func (s *DonationService) GetByID(ctx context.Context, id string) (*DonationResponse, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToDonationResponse(d)
	return &resp, nil
}

// Create validates and stores a new donation
func (s *DonationService) Create(ctx context.Context, req CreateDonationRequest) (*DonationResponse, error) {
	if anyMissing(req.DonorName, req.Amount, req.Function, req.Type) {
		return nil, shared.NewInvalidParameter(shared.RequiredFieldsMessage, req)
	}
	amount, err := coerceAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	date, err := s.dateOrNow(req.Date)
	if err != nil {
		return nil, err
	}

	donation, err := finance.NewDonation(req.DonorName, amount, req.Function, finance.DonationType(req.Type), req.Description, date)
	if err != nil {
		return nil, err
	}
	if err := s.create(ctx, donation); err != nil {
		return nil, err
	}

	s.opts.Logger.Info("Donation created",
		zap.String("id", donation.ID.String()),
		zap.String("type", donation.Type.String()),
	)
	resp := ToDonationResponse(donation)
	return &resp, nil
}

// Update merges the supplied fields over the stored donation
func (s *DonationService) Update(ctx context.Context, id string, req UpdateDonationRequest) (*DonationResponse, error) {
	patch := finance.DonationPatch{
		DonorName:   req.DonorName,
		Function:    req.Function,
		Description: req.Description,
	}
	var err error
	if patch.Amount, err = coerceOptionalAmount(req.Amount); err != nil {
		return nil, err
	}
	if patch.Date, err = parseOptionalDate(req.Date, s.opts.Location); err != nil {
		return nil, err
	}
	if req.Type != nil {
		t := finance.DonationType(*req.Type)
		patch.Type = &t
	}

	donation, err := s.update(ctx, id, func(d *finance.Donation) error { return d.Apply(patch) })
	if err != nil {
		return nil, err
	}
	resp := ToDonationResponse(donation)
	return &resp, nil
}

// YearlyTotalsResponse returns the yearly totals in response form
func (s *DonationService) YearlyTotalsResponse(ctx context.Context) ([]YearTotalResponse, error) {
	series, err := s.YearlyTotals(ctx)
	if err != nil {
		return nil, err
	}
	return toYearTotalResponses(series), nil
}
