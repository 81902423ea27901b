package domain

import (
	"context"
	"time"
)

// Bid status constants
const (
	BidStatusPending   = "pending"
	BidStatusAccepted  = "accepted"
	BidStatusRejected  = "rejected"
	BidStatusWithdrawn = "withdrawn"
)

// Bid is a professional's priced, timed proposal against a Job.
// A job has at most one accepted bid; the accept transaction enforces it.
type Bid struct {
	ID             int64     `json:"id"`
	JobID          int64     `json:"job_id"`
	ProfessionalID string    `json:"professional_id"`
	Amount         float64   `json:"amount"`
	Message        *string   `json:"message,omitempty"`
	EstimatedDays  *int      `json:"estimated_days,omitempty"`
	Status         string    `json:"status"` // pending → accepted / rejected / withdrawn
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Joined data for list responses
	ProfessionalName *string `json:"professional_name,omitempty"`
	JobTitle         *string `json:"job_title,omitempty"`
}

type BidRepository interface {
	// Create inserts the bid and increments the parent job's bids_count in
	// one transaction.
	Create(ctx context.Context, bid *Bid) error
	GetByID(ctx context.Context, id int64) (*Bid, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Bid, error)
	GetByProfessionalID(ctx context.Context, professionalID string) ([]Bid, error)
	CheckExists(ctx context.Context, jobID int64, professionalID string) (bool, error)
	// Accept runs the whole cascade in one transaction: the bid becomes
	// accepted, the job moves to in_progress with the selected professional,
	// and every other pending bid on the job is rejected. Returns
	// ErrJobNotOpen when the job already left the open state.
	Accept(ctx context.Context, bid *Bid) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type BidUsecase interface {
	PlaceBid(ctx context.Context, professionalID string, jobID int64, bid *Bid) (*Bid, error)
	AcceptBid(ctx context.Context, customerID string, bidID int64) error
	WithdrawBid(ctx context.Context, professionalID string, bidID int64) error
	ListJobBids(ctx context.Context, customerID string, jobID int64) ([]Bid, error)
	ListMyBids(ctx context.Context, professionalID string) ([]Bid, error)
}
