package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/finance"
)

// DonationHandler handles the donation ledger endpoints
type DonationHandler struct {
	BaseHandler
	donationService *financeapp.DonationService
}

// NewDonationHandler creates a new DonationHandler
func NewDonationHandler(base BaseHandler, donationService *financeapp.DonationService) *DonationHandler {
	return &DonationHandler{BaseHandler: base, donationService: donationService}
}

// CreateDonationRequest represents a request to record a donation or an expenditure
type CreateDonationRequest struct {
	DonorName   string `json:"donorName" binding:"max=200" example:"Thomas Family"`
	Amount      any    `json:"amount" swaggertype:"number" example:"500"`
	Function    string `json:"function" binding:"max=200" example:"Christmas"`
	Type        string `json:"type" example:"income" enums:"income,expenditure"`
	Description string `json:"description" binding:"max=1000" example:"Crib decoration"`
	Date        string `json:"date" example:"2024-12-20"`
}

// UpdateDonationRequest represents a partial update of a donation
type UpdateDonationRequest struct {
	DonorName   *string `json:"donorName" binding:"omitempty,max=200" example:"Thomas Family"`
	Amount      any     `json:"amount" swaggertype:"number" example:"550"`
	Function    *string `json:"function" binding:"omitempty,max=200" example:"Christmas"`
	Type        *string `json:"type" example:"expenditure"`
	Description *string `json:"description" binding:"omitempty,max=1000" example:"Crib lights"`
	Date        *string `json:"date" example:"2024-12-21"`
}

// List godoc
//
//	@ID				listDonations
//	@Summary		List donations
//	@Description	Donations sorted by date descending with income, expenditure and balance
//	@Tags			donations
//	@Produce		json
//	@Param			year		query		string	false	"Calendar year or all"
//	@Param			function	query		string	false	"Function name or all"
//	@Param			type		query		string	false	"income, expenditure or all"
//	@Success		200			{object}	financeapp.DonationListResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/donations [get]
func (h *DonationHandler) List(c *gin.Context) {
	resp, err := h.donationService.List(c.Request.Context(), filterParams(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Years godoc
//
//	@ID			listDonationYears
//	@Summary	Distinct donation years
//	@Tags		donations
//	@Produce	json
//	@Param		order	query		string	false	"desc (default) or asc"
//	@Success	200		{object}	YearsResponse
//	@Router		/donations/years [get]
func (h *DonationHandler) Years(c *gin.Context) {
	years, err := h.donationService.Years(c.Request.Context(), c.Query("order"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, years)
}

// Functions godoc
//
//	@ID			listDonationFunctions
//	@Summary	Distinct donation functions
//	@Tags		donations
//	@Produce	json
//	@Success	200	{object}	FunctionsResponse
//	@Router		/donations/functions [get]
func (h *DonationHandler) Functions(c *gin.Context) {
	functions, err := h.donationService.Functions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, functions)
}

// YearlyTotals godoc
//
//	@ID			listDonationYearlyTotals
//	@Summary	Donation totals per year
//	@Tags		donations
//	@Produce	json
//	@Success	200	{array}	financeapp.YearTotalResponse
//	@Router		/donations/yearly-totals [get]
func (h *DonationHandler) YearlyTotals(c *gin.Context) {
	series, err := h.donationService.YearlyTotalsResponse(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, series)
}

// GetByID godoc
//
//	@ID			getDonation
//	@Summary	Get a donation
//	@Tags		donations
//	@Produce	json
//	@Param		id	path		string	true	"Donation ID"
//	@Success	200	{object}	financeapp.DonationResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/donations/{id} [get]
func (h *DonationHandler) GetByID(c *gin.Context) {
	donation, err := h.donationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, donation)
}

// Create godoc
//
//	@ID			createDonation
//	@Summary	Create a donation
//	@Tags		donations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateDonationRequest	true	"Donation"
//	@Success	201		{object}	financeapp.DonationResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/donations [post]
func (h *DonationHandler) Create(c *gin.Context) {
	var req CreateDonationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	donation, err := h.donationService.Create(c.Request.Context(), financeapp.CreateDonationRequest{
		DonorName:   req.DonorName,
		Amount:      req.Amount,
		Function:    req.Function,
		Type:        req.Type,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, donation)
}

// Update godoc
//
//	@ID			updateDonation
//	@Summary	Update a donation
//	@Tags		donations
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Donation ID"
//	@Param		request	body		UpdateDonationRequest	true	"Fields to change"
//	@Success	200		{object}	financeapp.DonationResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/donations/{id} [put]
func (h *DonationHandler) Update(c *gin.Context) {
	var req UpdateDonationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	donation, err := h.donationService.Update(c.Request.Context(), c.Param("id"), financeapp.UpdateDonationRequest{
		DonorName:   req.DonorName,
		Amount:      req.Amount,
		Function:    req.Function,
		Type:        req.Type,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, donation)
}

// Delete godoc
//
//	@ID			deleteDonation
//	@Summary	Delete a donation
//	@Tags		donations
//	@Produce	json
//	@Param		id	path		string	true	"Donation ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/donations/{id} [delete]
func (h *DonationHandler) Delete(c *gin.Context) {
	if err := h.donationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Donation")
}
