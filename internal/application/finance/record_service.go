package finance

import (
	"context"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"go.uber.org/zap"
)

// RecordService handles financial record operations
type RecordService struct {
	ledger[finance.Record]
}

// NewRecordService creates a new RecordService
func NewRecordService(repo finance.RecordRepository, opts Options) *RecordService {
	return &RecordService{ledger: newLedger[finance.Record](repo, "Record", finance.RecordTypeValidator, opts)}
}

// List returns the matching records, newest first, with their totals
func (s *RecordService) List(ctx context.Context, params finance.FilterParams) (*RecordListResponse, error) {
	records, err := s.find(ctx, params)
	if err != nil {
		return nil, err
	}
	totals := finance.SumRecords(records, s.skipper(ctx))

	resp := &RecordListResponse{
		Records: make([]RecordResponse, len(records)),
		Totals: RecordTotalsResponse{
			Offerings:   totals.Offerings,
			Donations:   totals.Donations,
			ChurchTax:   totals.ChurchTax,
			TotalIncome: totals.TotalIncome,
		},
	}
	for i := range records {
		resp.Records[i] = ToRecordResponse(&records[i])
	}
	return resp, nil
}

// GetByID returns one record
func (s *RecordService) GetByID(ctx context.Context, id string) (*RecordResponse, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToRecordResponse(r)
	return &resp, nil
}

// Create validates and stores a new record
func (s *RecordService) Create(ctx context.Context, req CreateRecordRequest) (*RecordResponse, error) {
	if anyMissing(req.Name, req.Amount, req.Type) {
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

	record, err := finance.NewRecord(req.Name, amount, req.Function, finance.RecordType(req.Type), date)
	if err != nil {
		return nil, err
	}
	if err := s.create(ctx, record); err != nil {
		return nil, err
	}

	s.opts.Logger.Info("Record created",
		zap.String("id", record.ID.String()),
		zap.String("type", record.Type.String()),
	)
	resp := ToRecordResponse(record)
	return &resp, nil
}

// Update merges the supplied fields over the stored record
func (s *RecordService) Update(ctx context.Context, id string, req UpdateRecordRequest) (*RecordResponse, error) {
	patch := finance.RecordPatch{Name: req.Name, Function: req.Function}
	var err error
	if patch.Amount, err = coerceOptionalAmount(req.Amount); err != nil {
		return nil, err
	}
	if patch.Date, err = parseOptionalDate(req.Date, s.opts.Location); err != nil {
		return nil, err
	}
	if req.Type != nil {
		t := finance.RecordType(*req.Type)
		patch.Type = &t
	}

	record, err := s.update(ctx, id, func(r *finance.Record) error { return r.Apply(patch) })
	if err != nil {
		return nil, err
	}
	resp := ToRecordResponse(record)
	return &resp, nil
}

// YearlyTotalsResponse returns the yearly totals in response form
func (s *RecordService) YearlyTotalsResponse(ctx context.Context) ([]YearTotalResponse, error) {
	series, err := s.YearlyTotals(ctx)
	if err != nil {
		return nil, err
	}
	return toYearTotalResponses(series), nil
}
