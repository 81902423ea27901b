package v1

import (
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers the public application routes: submission
// (at the legacy /api/professional path) and the token-based signup flow.
func NewApplicationHandler(legacy gin.IRouter, public *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	legacy.POST("/submit-application", handler.SubmitApplication)

	professional := public.Group("/professional")
	{
		professional.GET("/signup-info", handler.GetSignupInfo)
		professional.POST("/complete-signup", handler.CompleteSignup)
	}
}

// SubmitApplicationRequest is the payload for a professional application
type SubmitApplicationRequest struct {
	FirstName       string  `json:"first_name" binding:"required,valid_name"`
	LastName        string  `json:"last_name" binding:"required,valid_name"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required,valid_phone"`
	Profession      string  `json:"profession" binding:"required"`
	YearsExperience int     `json:"years_experience" binding:"required,min=0,max=60"`
	ServiceArea     string  `json:"service_area" binding:"required"`
	Bio             *string `json:"bio"`
}

// SubmitApplication godoc
// @Summary      Submit a professional application
// @Description  Apply to join the marketplace as a professional; triggers confirmation and admin alert emails
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitApplicationRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.ProfessionalApplication}
// @Failure      400   {object}  response.Response
// @Router       /api/professional/submit-application [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app := &domain.ProfessionalApplication{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Profession:      req.Profession,
		YearsExperience: req.YearsExperience,
		ServiceArea:     req.ServiceArea,
		Bio:             req.Bio,
	}

	app, err := h.applicationUC.Submit(c.Request.Context(), app)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetSignupInfo godoc
// @Summary      Resolve a signup token
// @Description  Return the applicant behind an unused, unexpired signup token
// @Tags         applications
// @Produce      json
// @Param        token  query     string  true  "Signup token"
// @Success      200    {object}  response.Response{data=domain.SignupInfo}
// @Failure      404    {object}  response.Response
// @Router       /professional/signup-info [get]
func (h *ApplicationHandler) GetSignupInfo(c *gin.Context) {
	info, err := h.applicationUC.GetSignupInfo(c.Request.Context(), c.Query("token"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Signup info retrieved", info)
}

// CompleteSignupRequest is the payload for finishing account creation
type CompleteSignupRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// CompleteSignup godoc
// @Summary      Complete professional signup
// @Description  Consume a one-time signup token and create the professional account
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      CompleteSignupRequest  true  "Token and password"
// @Success      201   {object}  response.Response{data=domain.Professional}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /professional/complete-signup [post]
func (h *ApplicationHandler) CompleteSignup(c *gin.Context) {
	var req CompleteSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.applicationUC.CompleteSignup(c.Request.Context(), req.Token, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Signup completed", profile)
}
