package usecase

import (
	"context"
	"fmt"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/logger"
)

type notificationUsecase struct {
	applicationRepo  domain.ApplicationRepository
	notificationRepo domain.NotificationRepository
	sender           domain.EmailSender
	frontendURL      string
	adminEmail       string
}

// NewNotificationUsecase creates the lifecycle email dispatcher. Each call
// issues one outbound send; there is no retry or queue.
func NewNotificationUsecase(
	appRepo domain.ApplicationRepository,
	notifRepo domain.NotificationRepository,
	sender domain.EmailSender,
	frontendURL string,
	adminEmail string,
) domain.NotificationUsecase {
	return &notificationUsecase{
		applicationRepo:  appRepo,
		notificationRepo: notifRepo,
		sender:           sender,
		frontendURL:      frontendURL,
		adminEmail:       adminEmail,
	}
}

func (uc *notificationUsecase) NotifyApplicationReceived(ctx context.Context, applicationID int64) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if err := uc.sender.SendApplicationReceived(app.Email, app.FullName()); err != nil {
		return apperror.Internal(err)
	}
	uc.record(ctx, app.Email, domain.NotificationApplicationReceived, "We received your application")
	return nil
}

func (uc *notificationUsecase) NotifyAdmin(ctx context.Context, applicationID int64) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if err := uc.sender.SendAdminAlert(app); err != nil {
		return apperror.Internal(err)
	}
	uc.record(ctx, uc.adminEmail, domain.NotificationAdminAlert, "New professional application: "+app.FullName())
	return nil
}

// NotifyApproval sends the signup link for an approved application. Fails if
// the application is not approved or has no token yet.
func (uc *notificationUsecase) NotifyApproval(ctx context.Context, applicationID int64) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if app.Status != domain.ApplicationStatusApproved || app.SignupToken == nil {
		return apperror.BadRequest("Application is not approved")
	}

	signupURL := fmt.Sprintf("%s/professional/signup?token=%s", uc.frontendURL, *app.SignupToken)
	if err := uc.sender.SendApprovalEmail(app.Email, app.FullName(), signupURL); err != nil {
		return apperror.Internal(err)
	}
	uc.record(ctx, app.Email, domain.NotificationApproval, "Your application was approved")
	return nil
}

func (uc *notificationUsecase) NotifyRejection(ctx context.Context, applicationID int64) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if app.Status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Application is not rejected")
	}
	if err := uc.sender.SendRejectionEmail(app.Email, app.FullName()); err != nil {
		return apperror.Internal(err)
	}
	uc.record(ctx, app.Email, domain.NotificationRejection, "Update on your application")
	return nil
}

// record keeps the audit row; a failing insert must not fail the dispatch.
func (uc *notificationUsecase) record(ctx context.Context, recipient, kind, subject string) {
	n := &domain.Notification{Recipient: recipient, Kind: kind, Subject: subject}
	if err := uc.notificationRepo.Record(ctx, n); err != nil {
		logger.Log.Warn("failed to record notification", "kind", kind, "recipient", recipient, "error", err)
	}
}
