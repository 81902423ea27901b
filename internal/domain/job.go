package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound   = errors.New("resource not found")
	ErrJobNotOpen = errors.New("job is not open")
)

// Job status constants. Status only advances forward:
// open → in_progress → completed; open → cancelled.
const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// OpenJobsLimit caps open-job listings; there is no pagination beyond it.
const OpenJobsLimit = 50

type Job struct {
	ID                     int64     `json:"id"`
	CustomerID             string    `json:"customer_id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	Category               string    `json:"category"`
	Location               string    `json:"location"`
	Timeframe              string    `json:"timeframe"`
	BudgetMin              float64   `json:"budget_min"`
	BudgetMax              float64   `json:"budget_max"`
	Photos                 []string  `json:"photos"`
	Status                 string    `json:"status"`
	BidsCount              int       `json:"bids_count"`
	SelectedProfessionalID *string   `json:"selected_professional_id,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	FetchOpen(ctx context.Context, category string, limit int) ([]Job, error)
	FetchByCustomerID(ctx context.Context, customerID string, limit, offset int) ([]Job, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, customerID string, job *Job) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListOpenJobs(ctx context.Context, category string) ([]Job, error)
	SearchJobs(ctx context.Context, term, category string) ([]Job, error)
	ListMyJobs(ctx context.Context, customerID string, page, pageSize int) ([]Job, int64, error)
	AdvanceJobStatus(ctx context.Context, customerID string, jobID int64, status string) error
}
