package domain

import (
	"context"
	"time"
)

// Notification kinds, one per lifecycle email.
const (
	NotificationApplicationReceived = "application_received"
	NotificationAdminAlert          = "admin_alert"
	NotificationApproval            = "approval"
	NotificationRejection           = "rejection"
)

// Notification is an audit row for a dispatched email. Delivery is
// fire-and-forget; rows record attempts that succeeded at the SMTP handoff.
type Notification struct {
	ID        int64     `json:"id"`
	Recipient string    `json:"recipient"`
	Kind      string    `json:"kind"`
	Subject   string    `json:"subject"`
	SentAt    time.Time `json:"sent_at"`
}

// EmailSender is the outbound mail collaborator. Implemented by pkg/email.
type EmailSender interface {
	SendApplicationReceived(to, name string) error
	SendAdminAlert(app *ProfessionalApplication) error
	SendApprovalEmail(to, name, signupURL string) error
	SendRejectionEmail(to, name string) error
	IsConfigured() bool
}

type NotificationRepository interface {
	Record(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipient string, limit int) ([]Notification, error)
}

type NotificationUsecase interface {
	NotifyApplicationReceived(ctx context.Context, applicationID int64) error
	NotifyAdmin(ctx context.Context, applicationID int64) error
	NotifyApproval(ctx context.Context, applicationID int64) error
	NotifyRejection(ctx context.Context, applicationID int64) error
}
