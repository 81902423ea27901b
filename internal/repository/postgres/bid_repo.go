package postgres

import (
	"context"
	"go-marketplace-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type bidRepo struct {
	db *pgxpool.Pool
}

// NewBidRepository creates a new bid repository
func NewBidRepository(db *pgxpool.Pool) domain.BidRepository {
	return &bidRepo{db: db}
}

// Create inserts the bid and bumps the parent job's bids_count in one
// transaction; the counter update runs in SQL so concurrent bids cannot
// lose an increment.
func (r *bidRepo) Create(ctx context.Context, bid *domain.Bid) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	bid.CreatedAt = now
	bid.UpdatedAt = now
	if bid.Status == "" {
		bid.Status = domain.BidStatusPending
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bids (job_id, professional_id, amount, message, estimated_days, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		bid.JobID, bid.ProfessionalID, bid.Amount, bid.Message,
		bid.EstimatedDays, bid.Status, bid.CreatedAt, bid.UpdatedAt,
	).Scan(&bid.ID)
	if err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `
		UPDATE jobs SET bids_count = bids_count + 1, updated_at = $2
		WHERE id = $1 AND status = 'open'`,
		bid.JobID, now)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrJobNotOpen
	}

	return tx.Commit(ctx)
}

func (r *bidRepo) GetByID(ctx context.Context, id int64) (*domain.Bid, error) {
	query := `
		SELECT
			b.id, b.job_id, b.professional_id, b.amount, b.message,
			b.estimated_days, b.status, b.created_at, b.updated_at,
			p.first_name || ' ' || p.last_name AS professional_name,
			j.title AS job_title
		FROM bids b
		LEFT JOIN professionals p ON b.professional_id = p.user_id
		LEFT JOIN jobs j ON b.job_id = j.id
		WHERE b.id = $1`

	var bid domain.Bid
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bid.ID, &bid.JobID, &bid.ProfessionalID, &bid.Amount, &bid.Message,
		&bid.EstimatedDays, &bid.Status, &bid.CreatedAt, &bid.UpdatedAt,
		&bid.ProfessionalName, &bid.JobTitle,
	)
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *bidRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Bid, error) {
	query := `
		SELECT
			b.id, b.job_id, b.professional_id, b.amount, b.message,
			b.estimated_days, b.status, b.created_at, b.updated_at,
			p.first_name || ' ' || p.last_name AS professional_name
		FROM bids b
		LEFT JOIN professionals p ON b.professional_id = p.user_id
		WHERE b.job_id = $1
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var bid domain.Bid
		if err := rows.Scan(
			&bid.ID, &bid.JobID, &bid.ProfessionalID, &bid.Amount, &bid.Message,
			&bid.EstimatedDays, &bid.Status, &bid.CreatedAt, &bid.UpdatedAt,
			&bid.ProfessionalName,
		); err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

func (r *bidRepo) GetByProfessionalID(ctx context.Context, professionalID string) ([]domain.Bid, error) {
	query := `
		SELECT
			b.id, b.job_id, b.professional_id, b.amount, b.message,
			b.estimated_days, b.status, b.created_at, b.updated_at,
			j.title AS job_title
		FROM bids b
		LEFT JOIN jobs j ON b.job_id = j.id
		WHERE b.professional_id = $1
		ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query, professionalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var bid domain.Bid
		if err := rows.Scan(
			&bid.ID, &bid.JobID, &bid.ProfessionalID, &bid.Amount, &bid.Message,
			&bid.EstimatedDays, &bid.Status, &bid.CreatedAt, &bid.UpdatedAt,
			&bid.JobTitle,
		); err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

func (r *bidRepo) CheckExists(ctx context.Context, jobID int64, professionalID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bids
			WHERE job_id = $1 AND professional_id = $2 AND status IN ('pending', 'accepted'))`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, professionalID).Scan(&exists)
	return exists, err
}

// Accept runs the acceptance cascade in one transaction. The job update is
// conditional on status = 'open': when two customers race to accept bids on
// the same job, exactly one transaction observes the open row and wins; the
// other returns ErrJobNotOpen.
func (r *bidRepo) Accept(ctx context.Context, bid *domain.Bid) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	result, err := tx.Exec(ctx, `
		UPDATE jobs SET status = 'in_progress', selected_professional_id = $2, updated_at = $3
		WHERE id = $1 AND status = 'open'`,
		bid.JobID, bid.ProfessionalID, now)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrJobNotOpen
	}

	result, err = tx.Exec(ctx, `
		UPDATE bids SET status = 'accepted', updated_at = $2
		WHERE id = $1 AND status = 'pending'`,
		bid.ID, now)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		UPDATE bids SET status = 'rejected', updated_at = $3
		WHERE job_id = $1 AND id <> $2 AND status = 'pending'`,
		bid.JobID, bid.ID, now)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *bidRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE bids SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
