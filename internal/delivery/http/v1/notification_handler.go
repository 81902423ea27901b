package v1

import (
	"context"
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

// NewNotificationHandler registers the legacy email trigger routes. The
// application lifecycle already fires these automatically; the endpoints stay
// for manual re-sends from the admin dashboard.
func NewNotificationHandler(legacy gin.IRouter, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	legacy.POST("/admin-notification", handler.trigger(notificationUC.NotifyAdmin, "Admin notified"))
	legacy.POST("/confirmation-email", handler.trigger(notificationUC.NotifyApplicationReceived, "Confirmation email sent"))
	legacy.POST("/approval-email", handler.trigger(notificationUC.NotifyApproval, "Approval email sent"))
	legacy.POST("/rejection-email", handler.trigger(notificationUC.NotifyRejection, "Rejection email sent"))
}

// NotifyRequest identifies the application an email should be sent about
type NotifyRequest struct {
	ApplicationID int64 `json:"application_id" binding:"required"`
}

// trigger adapts one NotificationUsecase method into a gin handler. All four
// legacy routes share the same shape: bind the application id, dispatch, done.
func (h *NotificationHandler) trigger(send func(ctx context.Context, id int64) error, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NotifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest("application_id is required"))
			return
		}

		if err := send(c.Request.Context(), req.ApplicationID); err != nil {
			c.Error(err)
			return
		}

		response.Success(c, http.StatusOK, message, nil)
	}
}
