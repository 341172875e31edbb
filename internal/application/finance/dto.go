package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
)

// =============================================================================
// Record DTOs
// =============================================================================

// CreateRecordRequest is the body of POST /api/records. Amount stays loosely
// typed so both JSON numbers and numeric strings are accepted.
type CreateRecordRequest struct {
	Name     string `json:"name"`
	Amount   any    `json:"amount"`
	Function string `json:"function"`
	Type     string `json:"type"`
	Date     string `json:"date"`
}

// UpdateRecordRequest is the body of PUT /api/records/:id. Nil fields are left as stored.
type UpdateRecordRequest struct {
	Name     *string `json:"name"`
	Amount   any     `json:"amount"`
	Function *string `json:"function"`
	Type     *string `json:"type"`
	Date     *string `json:"date"`
}

// RecordResponse represents a financial record in API responses
type RecordResponse struct {
	ID        uuid.UUID      `json:"_id"`
	Name      string         `json:"name"`
	Amount    finance.Amount `json:"amount"`
	Function  string         `json:"function"`
	Type      string         `json:"type"`
	Date      time.Time      `json:"date"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// RecordTotalsResponse carries the per type sums of a record listing
type RecordTotalsResponse struct {
	Offerings   finance.Amount `json:"offerings"`
	Donations   finance.Amount `json:"donations"`
	ChurchTax   finance.Amount `json:"churchTax"`
	TotalIncome finance.Amount `json:"totalIncome"`
}

// RecordListResponse is the body of GET /api/records
type RecordListResponse struct {
	Records []RecordResponse     `json:"records"`
	Totals  RecordTotalsResponse `json:"totals"`
}

// ToRecordResponse converts a domain record to its response form
func ToRecordResponse(r *finance.Record) RecordResponse {
	return RecordResponse{
		ID:        r.ID,
		Name:      r.Name,
		Amount:    r.Amount,
		Function:  r.Function,
		Type:      r.Type.String(),
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// =============================================================================
// Donation DTOs
// =============================================================================

// CreateDonationRequest is the body of POST /api/donations
type CreateDonationRequest struct {
	DonorName   string `json:"donorName"`
	Amount      any    `json:"amount"`
	Function    string `json:"function"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// UpdateDonationRequest is the body of PUT /api/donations/:id
type UpdateDonationRequest struct {
	DonorName   *string `json:"donorName"`
	Amount      any     `json:"amount"`
	Function    *string `json:"function"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

// DonationResponse represents a legacy donation in API responses
type DonationResponse struct {
	ID          uuid.UUID      `json:"_id"`
	DonorName   string         `json:"donorName"`
	Amount      finance.Amount `json:"amount"`
	Function    string         `json:"function"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// DonationTotalsResponse carries income, expenditure and their difference
type DonationTotalsResponse struct {
	Income      finance.Amount `json:"income"`
	Expenditure finance.Amount `json:"expenditure"`
	Balance     finance.Amount `json:"balance"`
}

// DonationListResponse is the body of GET /api/donations
type DonationListResponse struct {
	Donations []DonationResponse     `json:"donations"`
	Totals    DonationTotalsResponse `json:"totals"`
}

// ToDonationResponse converts a domain donation to its response form
func ToDonationResponse(d *finance.Donation) DonationResponse {
	return DonationResponse{
		ID:          d.ID,
		DonorName:   d.DonorName,
		Amount:      d.Amount,
		Function:    d.Function,
		Type:        d.Type.String(),
		Description: d.Description,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// =============================================================================
// Expense DTOs
// =============================================================================

// CreateExpenseRequest is the body of POST /api/expenses
type CreateExpenseRequest struct {
	Name     string `json:"name"`
	Amount   any    `json:"amount"`
	Function string `json:"function"`
	Date     string `json:"date"`
}

// UpdateExpenseRequest is the body of PUT /api/expenses/:id
type UpdateExpenseRequest struct {
	Name     *string `json:"name"`
	Amount   any     `json:"amount"`
	Function *string `json:"function"`
	Date     *string `json:"date"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID        uuid.UUID      `json:"_id"`
	Name      string         `json:"name"`
	Amount    finance.Amount `json:"amount"`
	Function  string         `json:"function"`
	Date      time.Time      `json:"date"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ExpenseListResponse is the body of GET /api/expenses
type ExpenseListResponse struct {
	Expenses      []ExpenseResponse `json:"expenses"`
	TotalExpenses finance.Amount    `json:"totalExpenses"`
}

// ToExpenseResponse converts a domain expense to its response form
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		Name:      e.Name,
		Amount:    e.Amount,
		Function:  e.Function,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// =============================================================================
// Shared DTOs
// =============================================================================

// YearTotalResponse is one point of GET /api/{resource}/yearly-totals
type YearTotalResponse struct {
	Year  int            `json:"year"`
	Total finance.Amount `json:"total"`
}

func toYearTotalResponses(series []finance.YearTotal) []YearTotalResponse {
	out := make([]YearTotalResponse, len(series))
	for i, p := range series {
		out[i] = YearTotalResponse{Year: p.Year, Total: p.Total}
	}
	return out
}
