package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/finance"
)

// RecordHandler handles financial record endpoints
type RecordHandler struct {
	BaseHandler
	recordService *financeapp.RecordService
}

// NewRecordHandler creates a new RecordHandler
func NewRecordHandler(base BaseHandler, recordService *financeapp.RecordService) *RecordHandler {
	return &RecordHandler{BaseHandler: base, recordService: recordService}
}

// CreateRecordRequest represents a request to create a financial record
//
//	@Description	Amount accepts a JSON number or a numeric string
type CreateRecordRequest struct {
	Name     string `json:"name" binding:"max=200" example:"Sunday collection"`
	Amount   any    `json:"amount" swaggertype:"number" example:"150"`
	Function string `json:"function" binding:"max=200" example:"Parish Feast"`
	Type     string `json:"type" example:"offering" enums:"offering,donation,church_tax"`
	Date     string `json:"date" example:"2024-08-15"`
}

// UpdateRecordRequest represents a partial update of a financial record
type UpdateRecordRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=200" example:"Sunday collection"`
	Amount   any     `json:"amount" swaggertype:"number" example:"175.5"`
	Function *string `json:"function" binding:"omitempty,max=200" example:"Parish Feast"`
	Type     *string `json:"type" example:"donation"`
	Date     *string `json:"date" example:"2024-08-16"`
}

// List godoc
//
//	@ID				listRecords
//	@Summary		List financial records
//	@Description	Records sorted by date descending with per type totals
//	@Tags			records
//	@Produce		json
//	@Param			year		query		string	false	"Calendar year or all"
//	@Param			function	query		string	false	"Function name or all"
//	@Param			type		query		string	false	"offering, donation, church_tax or all"
//	@Success		200			{object}	financeapp.RecordListResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/records [get]
func (h *RecordHandler) List(c *gin.Context) {
	resp, err := h.recordService.List(c.Request.Context(), filterParams(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Years godoc
//
//	@ID			listRecordYears
//	@Summary	Distinct record years
//	@Tags		records
//	@Produce	json
//	@Param		order	query		string	false	"desc (default) or asc"
//	@Success	200		{object}	YearsResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/records/years [get]
func (h *RecordHandler) Years(c *gin.Context) {
	years, err := h.recordService.Years(c.Request.Context(), c.Query("order"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, years)
}

// Functions godoc
//
//	@ID			listRecordFunctions
//	@Summary	Distinct record functions
//	@Tags		records
//	@Produce	json
//	@Success	200	{object}	FunctionsResponse
//	@Router		/records/functions [get]
func (h *RecordHandler) Functions(c *gin.Context) {
	functions, err := h.recordService.Functions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, functions)
}

// YearlyTotals godoc
//
//	@ID			listRecordYearlyTotals
//	@Summary	Record totals per year
//	@Tags		records
//	@Produce	json
//	@Success	200	{array}	financeapp.YearTotalResponse
//	@Router		/records/yearly-totals [get]
func (h *RecordHandler) YearlyTotals(c *gin.Context) {
	series, err := h.recordService.YearlyTotalsResponse(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, series)
}

// GetByID godoc
//
//	@ID			getRecord
//	@Summary	Get a financial record
//	@Tags		records
//	@Produce	json
//	@Param		id	path		string	true	"Record ID"
//	@Success	200	{object}	financeapp.RecordResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/records/{id} [get]
func (h *RecordHandler) GetByID(c *gin.Context) {
	record, err := h.recordService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Create godoc
//
//	@ID			createRecord
//	@Summary	Create a financial record
//	@Tags		records
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateRecordRequest	true	"Record"
//	@Success	201		{object}	financeapp.RecordResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/records [post]
func (h *RecordHandler) Create(c *gin.Context) {
	var req CreateRecordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	record, err := h.recordService.Create(c.Request.Context(), financeapp.CreateRecordRequest{
		Name:     req.Name,
		Amount:   req.Amount,
		Function: req.Function,
		Type:     req.Type,
		Date:     req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// Update godoc
//
//	@ID			updateRecord
//	@Summary	Update a financial record
//	@Tags		records
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Record ID"
//	@Param		request	body		UpdateRecordRequest	true	"Fields to change"
//	@Success	200		{object}	financeapp.RecordResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/records/{id} [put]
func (h *RecordHandler) Update(c *gin.Context) {
	var req UpdateRecordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	record, err := h.recordService.Update(c.Request.Context(), c.Param("id"), financeapp.UpdateRecordRequest{
		Name:     req.Name,
		Amount:   req.Amount,
		Function: req.Function,
		Type:     req.Type,
		Date:     req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete godoc
//
//	@ID			deleteRecord
//	@Summary	Delete a financial record
//	@Tags		records
//	@Produce	json
//	@Param		id	path		string	true	"Record ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/records/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.recordService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Record")
}
