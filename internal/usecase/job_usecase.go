package usecase

import (
	"context"
	"strings"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/validation"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

// NewJobUsecase creates a new job usecase
func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// statusRank orders job statuses; transitions only move to a higher rank.
var statusRank = map[string]int{
	domain.JobStatusOpen:       0,
	domain.JobStatusInProgress: 1,
	domain.JobStatusCompleted:  2,
	domain.JobStatusCancelled:  2,
}

// CreateJob validates the posting before any write reaches the store.
func (uc *jobUsecase) CreateJob(ctx context.Context, customerID string, job *domain.Job) error {
	if job.Title == "" || job.Description == "" || job.Category == "" ||
		job.Location == "" || job.Timeframe == "" {
		return apperror.BadRequest("Title, description, category, location and timeframe are required")
	}
	if !validation.IsJobCategory(job.Category) {
		return apperror.BadRequest("Unknown job category")
	}
	if !validation.ValidBudget(job.BudgetMin, job.BudgetMax) {
		return apperror.BadRequest("Budget bounds must be positive and budget_min must not exceed budget_max")
	}

	job.CustomerID = customerID
	job.Status = domain.JobStatusOpen
	job.BidsCount = 0

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

// ListOpenJobs returns open jobs newest-first, hard-capped at 50 results.
func (uc *jobUsecase) ListOpenJobs(ctx context.Context, category string) ([]domain.Job, error) {
	jobs, err := uc.jobRepo.FetchOpen(ctx, category, domain.OpenJobsLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// SearchJobs fetches the open set and filters in process by case-insensitive
// substring over title, description, location and category. Not a scalable
// search; fine at the capped result size.
func (uc *jobUsecase) SearchJobs(ctx context.Context, term, category string) ([]domain.Job, error) {
	jobs, err := uc.jobRepo.FetchOpen(ctx, category, domain.OpenJobsLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return jobs, nil
	}

	var matched []domain.Job
	for _, job := range jobs {
		haystack := strings.ToLower(job.Title + " " + job.Description + " " + job.Location + " " + job.Category)
		if strings.Contains(haystack, term) {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

func (uc *jobUsecase) ListMyJobs(ctx context.Context, customerID string, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.jobRepo.FetchByCustomerID(ctx, customerID, pageSize, (page-1)*pageSize)
}

// AdvanceJobStatus lets the owning customer move a job forward (complete or
// cancel). Backwards transitions are refused.
func (uc *jobUsecase) AdvanceJobStatus(ctx context.Context, customerID string, jobID int64, status string) error {
	rank, ok := statusRank[status]
	if !ok {
		return apperror.BadRequest("Invalid status. Must be: in_progress, completed, or cancelled")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if job.CustomerID != customerID {
		return apperror.Forbidden("You can only update your own jobs")
	}
	if rank <= statusRank[job.Status] {
		return apperror.Conflict("Job status can only move forward")
	}
	if job.Status == domain.JobStatusOpen && status == domain.JobStatusCompleted {
		return apperror.Conflict("Job must be in progress before it can be completed")
	}

	if err := uc.jobRepo.UpdateStatus(ctx, jobID, status); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
