package usecase

import (
	"context"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
)

type bidUsecase struct {
	bidRepo          domain.BidRepository
	jobRepo          domain.JobRepository
	professionalRepo domain.ProfessionalRepository
}

// NewBidUsecase creates a new bid usecase
func NewBidUsecase(
	bidRepo domain.BidRepository,
	jobRepo domain.JobRepository,
	professionalRepo domain.ProfessionalRepository,
) domain.BidUsecase {
	return &bidUsecase{
		bidRepo:          bidRepo,
		jobRepo:          jobRepo,
		professionalRepo: professionalRepo,
	}
}

// PlaceBid inserts a pending bid for an approved professional on an open job.
func (uc *bidUsecase) PlaceBid(ctx context.Context, professionalID string, jobID int64, bid *domain.Bid) (*domain.Bid, error) {
	if bid.Amount <= 0 {
		return nil, apperror.BadRequest("Bid amount must be positive")
	}

	profile, err := uc.professionalRepo.GetByUserID(ctx, professionalID)
	if err != nil || profile == nil {
		return nil, apperror.Forbidden("Complete your professional signup before bidding")
	}
	if profile.Status != domain.ApplicationStatusApproved {
		return nil, apperror.Forbidden("Your account must be approved before you can bid")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperror.BadRequest("Cannot bid on a job that is no longer open")
	}
	if job.CustomerID == professionalID {
		return nil, apperror.BadRequest("You cannot bid on your own job")
	}

	exists, err := uc.bidRepo.CheckExists(ctx, jobID, professionalID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You already have an active bid on this job")
	}

	bid.JobID = jobID
	bid.ProfessionalID = professionalID
	bid.Status = domain.BidStatusPending

	if err := uc.bidRepo.Create(ctx, bid); err != nil {
		if err == domain.ErrJobNotOpen {
			return nil, apperror.BadRequest("Cannot bid on a job that is no longer open")
		}
		return nil, apperror.Internal(err)
	}
	return bid, nil
}

// AcceptBid accepts one bid and cascades: job to in_progress with the
// selected professional, every other pending bid to rejected. The cascade is
// a single transaction; a concurrent accept on the same job gets a conflict.
func (uc *bidUsecase) AcceptBid(ctx context.Context, customerID string, bidID int64) error {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return apperror.NotFound("Bid not found")
	}
	if bid.Status != domain.BidStatusPending {
		return apperror.Conflict("Only pending bids can be accepted")
	}

	job, err := uc.jobRepo.GetByID(ctx, bid.JobID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if job.CustomerID != customerID {
		return apperror.Forbidden("You can only accept bids on your own jobs")
	}
	if job.Status != domain.JobStatusOpen {
		return apperror.Conflict("A bid has already been accepted for this job")
	}

	if err := uc.bidRepo.Accept(ctx, bid); err != nil {
		switch err {
		case domain.ErrJobNotOpen:
			return apperror.Conflict("A bid has already been accepted for this job")
		case domain.ErrNotFound:
			return apperror.Conflict("Only pending bids can be accepted")
		default:
			return apperror.Internal(err)
		}
	}
	return nil
}

// WithdrawBid lets the owning professional withdraw a pending bid.
func (uc *bidUsecase) WithdrawBid(ctx context.Context, professionalID string, bidID int64) error {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return apperror.NotFound("Bid not found")
	}
	if bid.ProfessionalID != professionalID {
		return apperror.Forbidden("You can only withdraw your own bids")
	}
	if bid.Status != domain.BidStatusPending {
		return apperror.BadRequest("Only pending bids can be withdrawn")
	}

	if err := uc.bidRepo.UpdateStatus(ctx, bidID, domain.BidStatusWithdrawn); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ListJobBids returns all bids on a job for its owning customer.
func (uc *bidUsecase) ListJobBids(ctx context.Context, customerID string, jobID int64) ([]domain.Bid, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.CustomerID != customerID {
		return nil, apperror.Forbidden("You can only view bids on your own jobs")
	}
	return uc.bidRepo.GetByJobID(ctx, jobID)
}

func (uc *bidUsecase) ListMyBids(ctx context.Context, professionalID string) ([]domain.Bid, error) {
	return uc.bidRepo.GetByProfessionalID(ctx, professionalID)
}
