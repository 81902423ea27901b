package v1

import (
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfessionalHandler struct {
	professionalUC domain.ProfessionalUsecase
}

// NewProfessionalHandler registers the profile routes for the authenticated
// professional.
func NewProfessionalHandler(protected *gin.RouterGroup, professionalUC domain.ProfessionalUsecase) {
	handler := &ProfessionalHandler{professionalUC: professionalUC}

	protected.GET("/professionals/me", handler.GetMyProfile)
	protected.PUT("/professionals/me", handler.UpdateMyProfile)
}

// UpdateProfileRequest carries the self-editable profile fields
type UpdateProfileRequest struct {
	Phone       string   `json:"phone" binding:"omitempty,valid_phone"`
	ServiceArea string   `json:"service_area"`
	Bio         *string  `json:"bio"`
	Skills      []string `json:"skills"`
	HourlyRate  *float64 `json:"hourly_rate" binding:"omitempty,gt=0"`
}

// GetMyProfile godoc
// @Summary      My professional profile
// @Tags         professionals
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Professional}
// @Failure      404  {object}  response.Response
// @Router       /professionals/me [get]
// @Security     BearerAuth
func (h *ProfessionalHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.professionalUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateMyProfile godoc
// @Summary      Update my professional profile
// @Description  Update the self-editable profile fields (phone, service area, bio, skills, hourly rate)
// @Tags         professionals
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200   {object}  response.Response{data=domain.Professional}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /professionals/me [put]
// @Security     BearerAuth
func (h *ProfessionalHandler) UpdateMyProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.professionalUC.UpdateMyProfile(c.Request.Context(), userID, &domain.Professional{
		Phone:       req.Phone,
		ServiceArea: req.ServiceArea,
		Bio:         req.Bio,
		Skills:      req.Skills,
		HourlyRate:  req.HourlyRate,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}
