package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/application/identity"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(base BaseHandler, authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100" example:"admin"`
	Password string `json:"password" binding:"required,max=128" example:"change-me"`
}

// Login godoc
//
//	@ID				login
//	@Summary		Log in
//	@Description	Exchanges the admin credentials for a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	identity.LoginResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		429		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// the password is never echoed back
		h.HandleError(c, middleware.BindingError(err, gin.H{"username": req.Username}))
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), identity.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Logout godoc
//
//	@ID			logout
//	@Summary	Log out
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Failure	401	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.HandleError(c, shared.NewDomainError(shared.CodeUnauthorized, "Authentication required"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MessageResponse{Message: "Logged out successfully"})
}

// Me godoc
//
//	@ID			getCurrentUser
//	@Summary	Current user
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	identity.UserInfo
//	@Failure	401	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.HandleError(c, shared.NewDomainError(shared.CodeUnauthorized, "Authentication required"))
		return
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		h.HandleError(c, shared.NewDomainError(shared.CodeUnauthorized, "Invalid token"))
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}
