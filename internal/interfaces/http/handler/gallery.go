package handler

import (
	"github.com/gin-gonic/gin"
	parishapp "github.com/praveenjayakumarramesh/st-joseph-church/internal/application/parish"
)

// GalleryHandler handles gallery endpoints
type GalleryHandler struct {
	BaseHandler
	galleryService *parishapp.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(base BaseHandler, galleryService *parishapp.GalleryService) *GalleryHandler {
	return &GalleryHandler{BaseHandler: base, galleryService: galleryService}
}

// CreateGalleryItemRequest represents a request to add a gallery item. Either
// imageUrl or an objectKey returned by upload-url is required.
type CreateGalleryItemRequest struct {
	Title       string `json:"title" binding:"max=200" example:"Feast procession"`
	Description string `json:"description" binding:"max=1000" example:"Evening procession around the parish"`
	Function    string `json:"function" binding:"max=200" example:"Parish Feast"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url,max=2048" example:"https://example.org/feast.jpg"`
	ObjectKey   string `json:"objectKey" binding:"max=512" example:"gallery/3f2b1c9e-5d7a-4c1e-9b8f-2a6d4e0c1b7a.jpg"`
	Date        string `json:"date" example:"2024-08-15"`
}

// UpdateGalleryItemRequest represents a partial update of a gallery item
type UpdateGalleryItemRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200" example:"Feast procession"`
	Description *string `json:"description" binding:"omitempty,max=1000" example:"Procession at dusk"`
	Function    *string `json:"function" binding:"omitempty,max=200" example:"Parish Feast"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,url,max=2048" example:"https://example.org/feast-2.jpg"`
	ObjectKey   *string `json:"objectKey" binding:"omitempty,max=512" example:"gallery/3f2b1c9e-5d7a-4c1e-9b8f-2a6d4e0c1b7a.png"`
	Date        *string `json:"date" example:"2024-08-16"`
}

// UploadURLRequest asks for a presigned upload target
type UploadURLRequest struct {
	Filename    string `json:"filename" binding:"max=255" example:"procession.jpg"`
	ContentType string `json:"contentType" binding:"required" example:"image/jpeg" enums:"image/jpeg,image/png,image/gif,image/webp"`
}

// List godoc
//
//	@ID			listGalleryItems
//	@Summary	List gallery items
//	@Tags		gallery
//	@Produce	json
//	@Param		year		query	string	false	"Calendar year or all"
//	@Param		function	query	string	false	"Function name or all"
//	@Success	200			{array}	parishapp.GalleryItemResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/gallery [get]
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.galleryService.List(c.Request.Context(), filterParams(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Years godoc
//
//	@ID			listGalleryYears
//	@Summary	Distinct gallery years
//	@Tags		gallery
//	@Produce	json
//	@Param		order	query		string	false	"desc (default) or asc"
//	@Success	200		{object}	YearsResponse
//	@Router		/gallery/years [get]
func (h *GalleryHandler) Years(c *gin.Context) {
	years, err := h.galleryService.Years(c.Request.Context(), c.Query("order"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, years)
}

// Functions godoc
//
//	@ID			listGalleryFunctions
//	@Summary	Distinct gallery functions
//	@Tags		gallery
//	@Produce	json
//	@Success	200	{object}	FunctionsResponse
//	@Router		/gallery/functions [get]
func (h *GalleryHandler) Functions(c *gin.Context) {
	functions, err := h.galleryService.Functions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, functions)
}

// GetByID godoc
//
//	@ID			getGalleryItem
//	@Summary	Get a gallery item
//	@Tags		gallery
//	@Produce	json
//	@Param		id	path		string	true	"Gallery item ID"
//	@Success	200	{object}	parishapp.GalleryItemResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/gallery/{id} [get]
func (h *GalleryHandler) GetByID(c *gin.Context) {
	item, err := h.galleryService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// UploadURL godoc
//
//	@ID				createGalleryUploadURL
//	@Summary		Presign an image upload
//	@Description	Returns a short lived URL the browser PUTs the image to, and the object key to pass on create
//	@Tags			gallery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UploadURLRequest	true	"Upload"
//	@Success		200		{object}	parishapp.UploadURLResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/gallery/upload-url [post]
func (h *GalleryHandler) UploadURL(c *gin.Context) {
	var req UploadURLRequest
	if !h.bindJSON(c, &req) {
		return
	}

	upload, err := h.galleryService.UploadURL(c.Request.Context(), parishapp.UploadURLRequest{
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, upload)
}

// Create godoc
//
//	@ID			createGalleryItem
//	@Summary	Add a gallery item
//	@Tags		gallery
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateGalleryItemRequest	true	"Gallery item"
//	@Success	201		{object}	parishapp.GalleryItemResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req CreateGalleryItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.galleryService.Create(c.Request.Context(), parishapp.CreateGalleryItemRequest{
		Title:       req.Title,
		Description: req.Description,
		Function:    req.Function,
		ImageURL:    req.ImageURL,
		ObjectKey:   req.ObjectKey,
		Date:        req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Update godoc
//
//	@ID			updateGalleryItem
//	@Summary	Update a gallery item
//	@Tags		gallery
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Gallery item ID"
//	@Param		request	body		UpdateGalleryItemRequest	true	"Fields to change"
//	@Success	200		{object}	parishapp.GalleryItemResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/gallery/{id} [put]
func (h *GalleryHandler) Update(c *gin.Context) {
	var req UpdateGalleryItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.galleryService.Update(c.Request.Context(), c.Param("id"), parishapp.UpdateGalleryItemRequest{
		Title:       req.Title,
		Description: req.Description,
		Function:    req.Function,
		ImageURL:    req.ImageURL,
		ObjectKey:   req.ObjectKey,
		Date:        req.Date,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete godoc
//
//	@ID				deleteGalleryItem
//	@Summary		Delete a gallery item
//	@Description	Uploaded images are removed from object storage as well
//	@Tags			gallery
//	@Produce		json
//	@Param			id	path		string	true	"Gallery item ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.galleryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c, "Gallery item")
}
