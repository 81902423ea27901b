package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/usecase"
	"go-marketplace-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.ProfessionalApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.ProfessionalApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfessionalApplication), args.Error(1)
}
func (m *MockApplicationRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) List(ctx context.Context, status string, limit, offset int) ([]domain.ProfessionalApplication, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ProfessionalApplication), args.Get(1).(int64), args.Error(2)
}
func (m *MockApplicationRepo) Approve(ctx context.Context, app *domain.ProfessionalApplication, record *domain.ApprovedProfessional) error {
	return m.Called(ctx, app, record).Error(0)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status, reviewedBy string) error {
	return m.Called(ctx, id, status, reviewedBy).Error(0)
}
func (m *MockApplicationRepo) GetByToken(ctx context.Context, token string) (*domain.ApprovedProfessional, *domain.ProfessionalApplication, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.ApprovedProfessional), args.Get(1).(*domain.ProfessionalApplication), args.Error(2)
}
func (m *MockApplicationRepo) CompleteSignup(ctx context.Context, recordID int64, user *domain.User, profile *domain.Professional) error {
	return m.Called(ctx, recordID, user, profile).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyApplicationReceived(ctx context.Context, applicationID int64) error {
	return m.Called(ctx, applicationID).Error(0)
}
func (m *MockNotifier) NotifyAdmin(ctx context.Context, applicationID int64) error {
	return m.Called(ctx, applicationID).Error(0)
}
func (m *MockNotifier) NotifyApproval(ctx context.Context, applicationID int64) error {
	return m.Called(ctx, applicationID).Error(0)
}
func (m *MockNotifier) NotifyRejection(ctx context.Context, applicationID int64) error {
	return m.Called(ctx, applicationID).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchOpen(ctx context.Context, category string, limit int) ([]domain.Job, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchByCustomerID(ctx context.Context, customerID string, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockBidRepo struct {
	mock.Mock
}

func (m *MockBidRepo) Create(ctx context.Context, bid *domain.Bid) error {
	return m.Called(ctx, bid).Error(0)
}
func (m *MockBidRepo) GetByID(ctx context.Context, id int64) (*domain.Bid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bid), args.Error(1)
}
func (m *MockBidRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Bid, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}
func (m *MockBidRepo) GetByProfessionalID(ctx context.Context, professionalID string) ([]domain.Bid, error) {
	args := m.Called(ctx, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}
func (m *MockBidRepo) CheckExists(ctx context.Context, jobID int64, professionalID string) (bool, error) {
	args := m.Called(ctx, jobID, professionalID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBidRepo) Accept(ctx context.Context, bid *domain.Bid) error {
	return m.Called(ctx, bid).Error(0)
}
func (m *MockBidRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockProfessionalRepo struct {
	mock.Mock
}

func (m *MockProfessionalRepo) GetByUserID(ctx context.Context, userID string) (*domain.Professional, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}
func (m *MockProfessionalRepo) Update(ctx context.Context, profile *domain.Professional) error {
	return m.Called(ctx, profile).Error(0)
}

func pendingApplication(id int64) *domain.ProfessionalApplication {
	return &domain.ProfessionalApplication{
		ID:              id,
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "+15550100",
		Profession:      "Plumber",
		YearsExperience: 7,
		ServiceArea:     "Springfield",
		Status:          domain.ApplicationStatusPending,
	}
}

func TestApproveApplication(t *testing.T) {
	t.Run("Should mint a single-use token and record the reviewer", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		notifier := new(MockNotifier)
		uc := usecase.NewApplicationUsecase(mockRepo, notifier, 7*24*time.Hour)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(pendingApplication(1), nil)
		mockRepo.On("Approve", mock.Anything, mock.AnythingOfType("*domain.ProfessionalApplication"), mock.AnythingOfType("*domain.ApprovedProfessional")).
			Return(nil).
			Run(func(args mock.Arguments) {
				record := args.Get(2).(*domain.ApprovedProfessional)
				assert.NotEmpty(t, record.SignupToken)
				assert.False(t, record.Used)
				assert.True(t, record.ExpiresAt.After(time.Now()))
				assert.Equal(t, "jane@example.com", record.Email)
			})
		notifier.On("NotifyApproval", mock.Anything, int64(1)).Return(nil)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, "admin-1")
		app, err := uc.Approve(ctx, 1)

		assert.NoError(t, err)
		assert.NotNil(t, app.ReviewedBy)
		assert.Equal(t, "admin-1", *app.ReviewedBy)
		notifier.AssertCalled(t, "NotifyApproval", mock.Anything, int64(1))
	})

	t.Run("Should conflict when already reviewed", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		notifier := new(MockNotifier)
		uc := usecase.NewApplicationUsecase(mockRepo, notifier, 7*24*time.Hour)

		app := pendingApplication(2)
		app.Status = domain.ApplicationStatusApproved
		mockRepo.On("GetByID", mock.Anything, int64(2)).Return(app, nil)

		_, err := uc.Approve(context.Background(), 2)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already been reviewed")
		mockRepo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should conflict when losing the review race", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		notifier := new(MockNotifier)
		uc := usecase.NewApplicationUsecase(mockRepo, notifier, 7*24*time.Hour)

		mockRepo.On("GetByID", mock.Anything, int64(3)).Return(pendingApplication(3), nil)
		mockRepo.On("Approve", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrNotFound)

		_, err := uc.Approve(context.Background(), 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already been reviewed")
		notifier.AssertNotCalled(t, "NotifyApproval", mock.Anything, mock.Anything)
	})
}

func TestRejectApplication(t *testing.T) {
	t.Run("Second reject fails the precondition and sends no second email", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		notifier := new(MockNotifier)
		uc := usecase.NewApplicationUsecase(mockRepo, notifier, 7*24*time.Hour)

		app := pendingApplication(5)
		mockRepo.On("GetByID", mock.Anything, int64(5)).Return(app, nil)
		mockRepo.On("UpdateStatus", mock.Anything, int64(5), domain.ApplicationStatusRejected, "").
			Return(nil).
			Run(func(args mock.Arguments) {
				app.Status = domain.ApplicationStatusRejected
			})
		notifier.On("NotifyRejection", mock.Anything, int64(5)).Return(nil)

		assert.NoError(t, uc.Reject(context.Background(), 5))

		err := uc.Reject(context.Background(), 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already been reviewed")
		notifier.AssertNumberOfCalls(t, "NotifyRejection", 1)
	})
}

func TestCompleteSignup(t *testing.T) {
	t.Run("Should reject short passwords before touching the store", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, new(MockNotifier), 7*24*time.Hour)

		_, err := uc.CompleteSignup(context.Background(), "sometoken", "short")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "GetByToken", mock.Anything, mock.Anything)
	})

	t.Run("Consumed or expired token resolves to not found", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, new(MockNotifier), 7*24*time.Hour)

		mockRepo.On("GetByToken", mock.Anything, "usedtoken").Return(nil, nil, errors.New("no rows in result set"))

		_, err := uc.CompleteSignup(context.Background(), "usedtoken", "supersecret")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid or has expired")
	})

	t.Run("Should create an approved professional with onboarding done", func(t *testing.T) {
		mockRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, new(MockNotifier), 7*24*time.Hour)

		record := &domain.ApprovedProfessional{ID: 9, ApplicationID: 1, Email: "jane@example.com"}
		app := pendingApplication(1)
		app.Status = domain.ApplicationStatusApproved
		mockRepo.On("GetByToken", mock.Anything, "goodtoken").Return(record, app, nil)
		mockRepo.On("CompleteSignup", mock.Anything, int64(9), mock.AnythingOfType("*domain.User"), mock.AnythingOfType("*domain.Professional")).
			Return(nil).
			Run(func(args mock.Arguments) {
				user := args.Get(2).(*domain.User)
				assert.Equal(t, domain.RoleProfessional, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
			})

		profile, err := uc.CompleteSignup(context.Background(), "goodtoken", "supersecret")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApproved, profile.Status)
		assert.False(t, profile.NeedsOnboarding)
		assert.Equal(t, "Jane", profile.FirstName)
	})
}

func TestCreateJobValidation(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)

	t.Run("Inverted budget bounds never reach the store", func(t *testing.T) {
		job := &domain.Job{
			Title:       "Fix kitchen sink drain",
			Description: "The drain has been leaking under the cabinet for a week.",
			Category:    "plumbing",
			Location:    "Springfield",
			Timeframe:   "this week",
			BudgetMin:   200,
			BudgetMax:   50,
		}
		err := uc.CreateJob(context.Background(), "cust-1", job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "budget_min")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown category is refused", func(t *testing.T) {
		job := &domain.Job{
			Title:       "Walk my dog",
			Description: "Daily walks around the neighborhood for a friendly labrador.",
			Category:    "dog-walking",
			Location:    "Springfield",
			Timeframe:   "ongoing",
			BudgetMin:   10,
			BudgetMax:   20,
		}
		err := uc.CreateJob(context.Background(), "cust-1", job)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Valid job is stored open with zero bids", func(t *testing.T) {
		job := &domain.Job{
			Title:       "Fix kitchen sink drain",
			Description: "The drain has been leaking under the cabinet for a week.",
			Category:    "plumbing",
			Location:    "Springfield",
			Timeframe:   "this week",
			BudgetMin:   50,
			BudgetMax:   200,
		}
		mockRepo.On("Create", mock.Anything, job).Return(nil)

		err := uc.CreateJob(context.Background(), "cust-1", job)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusOpen, job.Status)
		assert.Equal(t, 0, job.BidsCount)
		assert.Equal(t, "cust-1", job.CustomerID)
	})
}

func TestSearchJobs(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)

	open := []domain.Job{
		{ID: 1, Title: "Fix leaking sink", Description: "Kitchen sink drips", Location: "Springfield", Category: "plumbing"},
		{ID: 2, Title: "Paint fence", Description: "Backyard fence needs two coats", Location: "Shelbyville", Category: "painting"},
	}
	mockRepo.On("FetchOpen", mock.Anything, "", domain.OpenJobsLimit).Return(open, nil)

	t.Run("Matches case-insensitively across fields", func(t *testing.T) {
		jobs, err := uc.SearchJobs(context.Background(), "SINK", "")
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		assert.Equal(t, int64(1), jobs[0].ID)
	})

	t.Run("Empty term returns the full open set", func(t *testing.T) {
		jobs, err := uc.SearchJobs(context.Background(), "   ", "")
		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
	})
}

func TestAdvanceJobStatus(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)

	t.Run("Status never moves backwards", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Job{ID: 7, CustomerID: "cust-1", Status: domain.JobStatusCompleted}, nil)

		err := uc.AdvanceJobStatus(context.Background(), "cust-1", 7, domain.JobStatusInProgress)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only move forward")
	})

	t.Run("Only the owner can update", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(8)).Return(&domain.Job{ID: 8, CustomerID: "cust-1", Status: domain.JobStatusOpen}, nil)

		err := uc.AdvanceJobStatus(context.Background(), "cust-2", 8, domain.JobStatusCancelled)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
	})
}

func approvedProfile(userID string) *domain.Professional {
	return &domain.Professional{UserID: userID, Status: domain.ApplicationStatusApproved}
}

func TestPlaceBid(t *testing.T) {
	t.Run("Unapproved professionals cannot bid", func(t *testing.T) {
		bidRepo := new(MockBidRepo)
		jobRepo := new(MockJobRepo)
		proRepo := new(MockProfessionalRepo)
		uc := usecase.NewBidUsecase(bidRepo, jobRepo, proRepo)

		proRepo.On("GetByUserID", mock.Anything, "pro-1").Return(&domain.Professional{UserID: "pro-1", Status: domain.ApplicationStatusPending}, nil)

		_, err := uc.PlaceBid(context.Background(), "pro-1", 1, &domain.Bid{Amount: 100})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "approved")
		bidRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("One active bid per professional per job", func(t *testing.T) {
		bidRepo := new(MockBidRepo)
		jobRepo := new(MockJobRepo)
		proRepo := new(MockProfessionalRepo)
		uc := usecase.NewBidUsecase(bidRepo, jobRepo, proRepo)

		proRepo.On("GetByUserID", mock.Anything, "pro-1").Return(approvedProfile("pro-1"), nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, CustomerID: "cust-1", Status: domain.JobStatusOpen}, nil)
		bidRepo.On("CheckExists", mock.Anything, int64(1), "pro-1").Return(true, nil)

		_, err := uc.PlaceBid(context.Background(), "pro-1", 1, &domain.Bid{Amount: 100})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already have an active bid")
	})

	t.Run("Successful bid starts pending with job and owner set", func(t *testing.T) {
		bidRepo := new(MockBidRepo)
		jobRepo := new(MockJobRepo)
		proRepo := new(MockProfessionalRepo)
		uc := usecase.NewBidUsecase(bidRepo, jobRepo, proRepo)

		proRepo.On("GetByUserID", mock.Anything, "pro-1").Return(approvedProfile("pro-1"), nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, CustomerID: "cust-1", Status: domain.JobStatusOpen}, nil)
		bidRepo.On("CheckExists", mock.Anything, int64(1), "pro-1").Return(false, nil)
		bidRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bid")).Return(nil)

		bid, err := uc.PlaceBid(context.Background(), "pro-1", 1, &domain.Bid{Amount: 150})
		assert.NoError(t, err)
		assert.Equal(t, domain.BidStatusPending, bid.Status)
		assert.Equal(t, int64(1), bid.JobID)
		assert.Equal(t, "pro-1", bid.ProfessionalID)
	})

	t.Run("Job closing between read and insert is surfaced", func(t *testing.T) {
		bidRepo := new(MockBidRepo)
		jobRepo := new(MockJobRepo)
		proRepo := new(MockProfessionalRepo)
		uc := usecase.NewBidUsecase(bidRepo, jobRepo, proRepo)

		proRepo.On("GetByUserID", mock.Anything, "pro-1").Return(approvedProfile("pro-1"), nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, CustomerID: "cust-1", Status: domain.JobStatusOpen}, nil)
		bidRepo.On("CheckExists", mock.Anything, int64(1), "pro-1").Return(false, nil)
		bidRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrJobNotOpen)

		_, err := uc.PlaceBid(context.Background(), "pro-1", 1, &domain.Bid{Amount: 150})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no longer open")
	})
}

func TestAcceptBid(t *testing.T) {
	t.Run("Owner accepting a pending bid triggers the cascade", func(t *testing.T) {
		bidRepo := new(MockBidRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewBidUsecase(bidRepo, jobRepo, new(MockProfessionalRepo))

		bid := &domain.Bid{ID: 10, JobID: 1, ProfessionalID: "pro-1", Status: domain.BidStatusPending}
		bidRepo.On("GetByID", mock.Anything, int64(10)).Return(bid, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, CustomerID: "cust-1", Status: domain.JobStatusOpen}, nil)
		bidRepo.On("Accept", mock.Anything, bid).Return(nil)

		assert.NoError(t, uc.AcceptBid(context.Background(), "cust-1", 10))
		bidRepo.AssertCalled(t, "Accept", mock.Anything, bid)
	})

	t.Run("Only the job owner can accept", func(t *testing.T) {
		bidRepo := new(MockBidRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewBidUsecase(bidRepo, jobRepo, new(MockProfessionalRepo))

		bidRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Bid{ID: 10, JobID: 1, Status: domain.BidStatusPending}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, CustomerID: "cust-1", Status: domain.JobStatusOpen}, nil)

		err := uc.AcceptBid(context.Background(), "intruder", 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own jobs")
		bidRepo.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
	})

	t.Run("Loser of a concurrent accept gets a conflict", func(t *testing.T) {
		bidRepo := new(MockBidRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewBidUsecase(bidRepo, jobRepo, new(MockProfessionalRepo))

		bid := &domain.Bid{ID: 11, JobID: 1, Status: domain.BidStatusPending}
		bidRepo.On("GetByID", mock.Anything, int64(11)).Return(bid, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Job{ID: 1, CustomerID: "cust-1", Status: domain.JobStatusOpen}, nil)
		bidRepo.On("Accept", mock.Anything, bid).Return(domain.ErrJobNotOpen)

		err := uc.AcceptBid(context.Background(), "cust-1", 11)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already been accepted")
	})

	t.Run("Non-pending bids cannot be accepted", func(t *testing.T) {
		bidRepo := new(MockBidRepo)
		uc := usecase.NewBidUsecase(bidRepo, new(MockJobRepo), new(MockProfessionalRepo))

		bidRepo.On("GetByID", mock.Anything, int64(12)).Return(&domain.Bid{ID: 12, JobID: 1, Status: domain.BidStatusWithdrawn}, nil)

		err := uc.AcceptBid(context.Background(), "cust-1", 12)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "pending bids")
	})
}

func TestWithdrawBid(t *testing.T) {
	bidRepo := new(MockBidRepo)
	uc := usecase.NewBidUsecase(bidRepo, new(MockJobRepo), new(MockProfessionalRepo))

	t.Run("Only the owning professional can withdraw", func(t *testing.T) {
		bidRepo.On("GetByID", mock.Anything, int64(20)).Return(&domain.Bid{ID: 20, ProfessionalID: "pro-1", Status: domain.BidStatusPending}, nil)

		err := uc.WithdrawBid(context.Background(), "pro-2", 20)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own bids")
	})

	t.Run("Pending bid withdraws cleanly", func(t *testing.T) {
		bidRepo.On("UpdateStatus", mock.Anything, int64(20), domain.BidStatusWithdrawn).Return(nil)

		assert.NoError(t, uc.WithdrawBid(context.Background(), "pro-1", 20))
	})
}
