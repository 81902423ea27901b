package postgres

import (
	"context"
	"go-marketplace-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `
	id, customer_id, title, description, category, location, timeframe,
	budget_min, budget_max, photos, status, bids_count,
	selected_professional_id, created_at, updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs
			(customer_id, title, description, category, location, timeframe,
			 budget_min, budget_max, photos, status, bids_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $12)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}

	return r.db.QueryRow(ctx, query,
		job.CustomerID, job.Title, job.Description, job.Category, job.Location,
		job.Timeframe, job.BudgetMin, job.BudgetMax, pq.Array(job.Photos),
		job.Status, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job domain.Job
	var photos []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.CustomerID, &job.Title, &job.Description, &job.Category,
		&job.Location, &job.Timeframe, &job.BudgetMin, &job.BudgetMax,
		pq.Array(&photos), &job.Status, &job.BidsCount,
		&job.SelectedProfessionalID, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	job.Photos = photos
	return &job, nil
}

// FetchOpen returns open jobs newest-first, optionally filtered by category,
// capped at limit.
func (r *jobRepo) FetchOpen(ctx context.Context, category string, limit int) ([]domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE status = 'open' AND ($1 = '' OR category = $1)
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		var photos []string
		if err := rows.Scan(
			&job.ID, &job.CustomerID, &job.Title, &job.Description, &job.Category,
			&job.Location, &job.Timeframe, &job.BudgetMin, &job.BudgetMax,
			pq.Array(&photos), &job.Status, &job.BidsCount,
			&job.SelectedProfessionalID, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		job.Photos = photos
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (r *jobRepo) FetchByCustomerID(ctx context.Context, customerID string, limit, offset int) ([]domain.Job, int64, error) {
	query := `
		SELECT ` + jobColumns + `, COUNT(*) OVER() AS total
		FROM jobs
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	var total int64
	for rows.Next() {
		var job domain.Job
		var photos []string
		if err := rows.Scan(
			&job.ID, &job.CustomerID, &job.Title, &job.Description, &job.Category,
			&job.Location, &job.Timeframe, &job.BudgetMin, &job.BudgetMax,
			pq.Array(&photos), &job.Status, &job.BidsCount,
			&job.SelectedProfessionalID, &job.CreatedAt, &job.UpdatedAt, &total,
		); err != nil {
			return nil, 0, err
		}
		job.Photos = photos
		jobs = append(jobs, job)
	}
	return jobs, total, nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE jobs SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
