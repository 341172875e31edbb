package handler

import (
	"github.com/gin-gonic/gin"
	parishapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/parish"
)

// DesignationHandler handles designation endpoints
type DesignationHandler struct {
	BaseHandler
	designationService *parishapp.DesignationService
}

// NewDesignationHandler creates a new DesignationHandler
func NewDesignationHandler(base BaseHandler, designationService *parishapp.DesignationService) *DesignationHandler {
	return &DesignationHandler{BaseHandler: base, designationService: designationService}
}

// CreateDesignationRequest represents a request to create a designation
type CreateDesignationRequest struct {
	Name        string `json:"name" binding:"max=100" example:"Parish Priest"`
	Description string `json:"description" binding:"max=500" example:"Leads the parish community"`
	IsActive    *bool  `json:"isActive" example:"true"`
}

// UpdateDesignationRequest represents a partial update of a designation
type UpdateDesignationRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100" example:"Assistant Parish Priest"`
	Description *string `json:"description" binding:"omitempty,max=500" example:"Assists the parish priest"`
	IsActive    *bool   `json:"isActive" example:"false"`
}

// List godoc
//
//	@ID			listDesignations
//	@Summary	List designations
//	@Tags		designations
//	@Produce	json
//	@Param		active	query	bool	false	"Only active designations"
//	@Success	200		{array}	parishapp.DesignationResponse
//	@Router		/designations [get]
func (h *DesignationHandler) List(c *gin.Context) {
	items, err := h.designationService.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetByID godoc
//
//	@ID			getDesignation
//	@Summary	Get a designation
//	@Tags		designations
//	@Produce	json
//	@Param		id	path		string	true	"Designation ID"
//	@Success	200	{object}	parishapp.DesignationResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/designations/{id} [get]
func (h *DesignationHandler) GetByID(c *gin.Context) {
	item, err := h.designationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Create godoc
//
//	@ID			createDesignation
//	@Summary	Create a designation
//	@Tags		designations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateDesignationRequest	true	"Designation"
//	@Success	201		{object}	parishapp.DesignationResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/designations [post]
func (h *DesignationHandler) Create(c *gin.Context) {
	var req CreateDesignationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.designationService.Create(c.Request.Context(), parishapp.CreateDesignationRequest{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update godoc
//
//	@ID			updateDesignation
//	@Summary	Update a designation
//	@Tags		designations
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Designation ID"
//	@Param		request	body		UpdateDesignationRequest	true	"Fields to change"
//	@Success	200		{object}	parishapp.DesignationResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/designations/{id} [put]
func (h *DesignationHandler) Update(c *gin.Context) {
	var req UpdateDesignationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.designationService.Update(c.Request.Context(), c.Param("id"), parishapp.UpdateDesignationRequest{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete godoc
//
//	@ID			deleteDesignation
//	@Summary	Delete a designation
//	@Tags		designations
//	@Produce	json
//	@Param		id	path		string	true	"Designation ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/designations/{id} [delete]
func (h *DesignationHandler) Delete(c *gin.Context) {
	if err := h.designationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Designation")
}
