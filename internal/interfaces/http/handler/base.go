package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/logger"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/dto"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct {
	// ExposeErrors adds the cause of 5xx errors to the body. Off in production.
	ExposeErrors bool
}

// NewBaseHandler creates the shared handler utilities for an environment
func NewBaseHandler(production bool) BaseHandler {
	return BaseHandler{ExposeErrors: !production}
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Deleted confirms a removal with {message:"<Resource> deleted"}
func (h *BaseHandler) Deleted(c *gin.Context, resource string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: resource + " deleted"})
}

// HandleError converts an error into the API error body. Non domain errors
// become INTERNAL_ERROR. Server side failures are logged with their cause.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		domainErr = shared.NewInternalError(err)
	}

	status := dto.GetHTTPStatus(domainErr.Code)
	resp := dto.ErrorResponse{
		Message:  domainErr.Message,
		Code:     domainErr.Code,
		Received: domainErr.Received,
	}

	if status >= http.StatusInternalServerError {
		logger.GetGinLogger(c).Error("Request failed",
			zap.String("code", domainErr.Code),
			zap.String("op", domainErr.Op),
			zap.Error(err),
		)
		if h.ExposeErrors && domainErr.Cause != nil {
			resp.Error = domainErr.Cause.Error()
		}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}

// bindJSON decodes the body into req. An empty body decodes to the zero value
// so the service can report the missing fields itself.
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	h.HandleError(c, middleware.BindingError(err, req))
	return false
}

// filterParams reads the year, function and type query parameters
func filterParams(c *gin.Context) finance.FilterParams {
	return finance.FilterParams{
		Year:     c.Query("year"),
		Function: c.Query("function"),
		Type:     c.Query("type"),
	}
}
