package v1

import (
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewAdminHandler registers the admin review routes under /admin. Every route
// is gated on the admin role.
func NewAdminHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &AdminHandler{applicationUC: applicationUC}

	admin := protected.Group("/admin")
	admin.Use(requireAdmin())
	{
		admin.GET("/applications", handler.ListApplications)
		admin.POST("/applications/:id/approve", handler.ApproveApplication)
		admin.POST("/applications/:id/reject", handler.RejectApplication)
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != domain.RoleAdmin {
			c.Error(apperror.Forbidden("Admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ApplicationListResponse wraps a paginated application listing
type ApplicationListResponse struct {
	Applications []domain.ProfessionalApplication `json:"applications"`
	Total        int64                            `json:"total"`
}

// ListApplications godoc
// @Summary      List professional applications
// @Description  Applications for review, optionally filtered by status; admin only
// @Tags         admin
// @Produce      json
// @Param        status     query     string  false  "Status filter"  Enums(pending, approved, rejected)
// @Param        page       query     int     false  "Page number"    default(1)
// @Param        page_size  query     int     false  "Items per page" default(20)
// @Success      200        {object}  response.Response{data=ApplicationListResponse}
// @Failure      403        {object}  response.Response
// @Router       /admin/applications [get]
// @Security     BearerAuth
func (h *AdminHandler) ListApplications(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	apps, total, err := h.applicationUC.List(c.Request.Context(), status, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", ApplicationListResponse{Applications: apps, Total: total})
}

// ApproveApplication godoc
// @Summary      Approve an application
// @Description  Approve a pending application, mint its one-time signup token, and email the applicant
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.ProfessionalApplication}
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admin/applications/{id}/approve [post]
// @Security     BearerAuth
func (h *AdminHandler) ApproveApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	app, err := h.applicationUC.Approve(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application approved", app)
}

// RejectApplication godoc
// @Summary      Reject an application
// @Description  Reject a pending application and email the applicant
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admin/applications/{id}/reject [post]
// @Security     BearerAuth
func (h *AdminHandler) RejectApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application id"))
		return
	}

	if err := h.applicationUC.Reject(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application rejected", nil)
}
