package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/finance"
)

// ExpenseHandler handles expense endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(base BaseHandler, expenseService *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{BaseHandler: base, expenseService: expenseService}
}

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Name     string `json:"name" binding:"max=200" example:"Flowers"`
	Amount   any    `json:"amount" swaggertype:"number" example:"150"`
	Function string `json:"function" binding:"max=200" example:"Feast"`
	Date     string `json:"date" example:"2025-03-10"`
}

// UpdateExpenseRequest represents a partial update of an expense
type UpdateExpenseRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=200" example:"Flowers"`
	Amount   any     `json:"amount" swaggertype:"number" example:"180"`
	Function *string `json:"function" binding:"omitempty,max=200" example:"Feast"`
	Date     *string `json:"date" example:"2025-03-11"`
}

// List godoc
//
//	@ID				listExpenses
//	@Summary		List expenses
//	@Description	Expenses sorted by date descending with their total. Non numeric amounts are left out of the total.
//	@Tags			expenses
//	@Produce		json
//	@Param			year		query		string	false	"Calendar year or all"
//	@Param			function	query		string	false	"Function name or all"
//	@Success		200			{object}	financeapp.ExpenseListResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	resp, err := h.expenseService.List(c.Request.Context(), filterParams(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Years godoc
//
//	@ID			listExpenseYears
//	@Summary	Distinct expense years
//	@Tags		expenses
//	@Produce	json
//	@Param		order	query		string	false	"desc (default) or asc"
//	@Success	200		{object}	YearsResponse
//	@Router		/expenses/years [get]
func (h *ExpenseHandler) Years(c *gin.Context) {
	years, err := h.expenseService.Years(c.Request.Context(), c.Query("order"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, years)
}

// Functions godoc
//
//	@ID			listExpenseFunctions
//	@Summary	Distinct expense functions
//	@Tags		expenses
//	@Produce	json
//	@Success	200	{object}	FunctionsResponse
//	@Router		/expenses/functions [get]
func (h *ExpenseHandler) Functions(c *gin.Context) {
	functions, err := h.expenseService.Functions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, functions)
}

// YearlyTotals godoc
//
//	@ID			listExpenseYearlyTotals
//	@Summary	Expense totals per year
//	@Tags		expenses
//	@Produce	json
//	@Success	200	{array}	financeapp.YearTotalResponse
//	@Router		/expenses/yearly-totals [get]
func (h *ExpenseHandler) YearlyTotals(c *gin.Context) {
	series, err := h.expenseService.YearlyTotalsResponse(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, series)
}

// GetByID godoc
//
//	@ID			getExpense
//	@Summary	Get an expense
//	@Tags		expenses
//	@Produce	json
//	@Param		id	path		string	true	"Expense ID"
//	@Success	200	{object}	financeapp.ExpenseResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	expense, err := h.expenseService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// Create godoc
//
//	@ID			createExpense
//	@Summary	Create an expense
//	@Tags		expenses
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateExpenseRequest	true	"Expense"
//	@Success	201		{object}	financeapp.ExpenseResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), financeapp.CreateExpenseRequest{
		Name:     req.Name,
		Amount:   req.Amount,
		Function: req.Function,
		Date:     req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, expense)
}

// Update godoc
//
//	@ID			updateExpense
//	@Summary	Update an expense
//	@Tags		expenses
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Expense ID"
//	@Param		request	body		UpdateExpenseRequest	true	"Fields to change"
//	@Success	200		{object}	financeapp.ExpenseResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req UpdateExpenseRequest
	if !h.bindJSON(c, &req) {
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), c.Param("id"), financeapp.UpdateExpenseRequest{
		Name:     req.Name,
		Amount:   req.Amount,
		Function: req.Function,
		Date:     req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// Delete godoc
//
//	@ID			deleteExpense
//	@Summary	Delete an expense
//	@Tags		expenses
//	@Produce	json
//	@Param		id	path		string	true	"Expense ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.expenseService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Expense")
}
