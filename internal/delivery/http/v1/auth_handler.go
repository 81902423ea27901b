package v1

import (
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the custom auth routes. Register and login live
// at the root (outside /v1) to keep the paths the frontend already calls.
func NewAuthHandler(root gin.IRouter, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	root.POST("/register/custom", handler.Register)
	root.POST("/login/custom", handler.Login)

	protected.GET("/auth/me", handler.Me)
}

// RegisterRequest is the payload for customer registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse bundles the user and its bearer token
type AuthResponse struct {
	User  *domain.User      `json:"user"`
	Token *domain.AuthToken `json:"token"`
}

// Register godoc
// @Summary      Register a customer account
// @Description  Create a customer account and return a bearer token (7-day validity)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Credentials"
// @Success      201   {object}  response.Response{data=AuthResponse}
// @Failure      400   {object}  response.Response
// @Router       /register/custom [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and a password of at least 8 characters are required", nil)
		return
	}

	user, tok, err := h.authUC.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created", AuthResponse{User: user, Token: tok})
}

// Login godoc
// @Summary      Log in
// @Description  Verify credentials and return a bearer token (7-day validity)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response{data=AuthResponse}
// @Failure      401   {object}  response.Response
// @Router       /login/custom [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required", nil)
		return
	}

	user, tok, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in", AuthResponse{User: user, Token: tok})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}
