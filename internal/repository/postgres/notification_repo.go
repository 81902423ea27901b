package postgres

import (
	"context"
	"go-marketplace-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification audit repository
func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Record(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (recipient, kind, subject, sent_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if n.SentAt.IsZero() {
		n.SentAt = time.Now()
	}
	return r.db.QueryRow(ctx, query, n.Recipient, n.Kind, n.Subject, n.SentAt).Scan(&n.ID)
}

func (r *notificationRepo) ListByRecipient(ctx context.Context, recipient string, limit int) ([]domain.Notification, error) {
	query := `
		SELECT id, recipient, kind, subject, sent_at
		FROM notifications
		WHERE recipient = $1
		ORDER BY sent_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, recipient, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Recipient, &n.Kind, &n.Subject, &n.SentAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}
