package usecase

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"
	"go-marketplace-backend/pkg/logger"
	"go-marketplace-backend/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	notifier        domain.NotificationUsecase
	signupTokenTTL  time.Duration
}

// NewApplicationUsecase creates the professional application lifecycle usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	notifier domain.NotificationUsecase,
	signupTokenTTL time.Duration,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		notifier:        notifier,
		signupTokenTTL:  signupTokenTTL,
	}
}

// Submit inserts a pending application and fires the applicant confirmation
// and admin alert. The duplicate pre-check is best-effort: a failing check
// never blocks submission.
func (uc *applicationUsecase) Submit(ctx context.Context, app *domain.ProfessionalApplication) (*domain.ProfessionalApplication, error) {
	exists, err := uc.applicationRepo.ExistsByEmail(ctx, app.Email)
	if err != nil {
		logger.Log.Warn("duplicate pre-check failed, continuing", "email", app.Email, "error", err)
	} else if exists {
		return nil, apperror.BadRequest("An application with this email is already under review")
	}

	app.Status = domain.ApplicationStatusPending
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}

	// Fire-and-forget notifications; failures are logged, never surfaced
	if err := uc.notifier.NotifyApplicationReceived(ctx, app.ID); err != nil {
		logger.Log.Error("confirmation email failed", "application_id", app.ID, "error", err)
	}
	if err := uc.notifier.NotifyAdmin(ctx, app.ID); err != nil {
		logger.Log.Error("admin alert failed", "application_id", app.ID, "error", err)
	}

	return app, nil
}

// Approve transitions a pending application to approved, minting the one-time
// signup token. The status flip and the token record are written in a single
// transaction; the approval email goes out afterwards.
func (uc *applicationUsecase) Approve(ctx context.Context, id int64) (*domain.ProfessionalApplication, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	if app.Status != domain.ApplicationStatusPending {
		return nil, apperror.Conflict("Application has already been reviewed")
	}

	signupToken, err := token.Generate()
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if adminID, ok := ctx.Value(domain.KeyUserID).(string); ok && adminID != "" {
		app.ReviewedBy = &adminID
	}

	record := &domain.ApprovedProfessional{
		ApplicationID: app.ID,
		Email:         app.Email,
		SignupToken:   signupToken,
		ExpiresAt:     time.Now().Add(uc.signupTokenTTL),
	}
	if err := uc.applicationRepo.Approve(ctx, app, record); err != nil {
		if err == domain.ErrNotFound {
			// Lost the race against another reviewer
			return nil, apperror.Conflict("Application has already been reviewed")
		}
		return nil, apperror.Internal(err)
	}

	if err := uc.notifier.NotifyApproval(ctx, app.ID); err != nil {
		logger.Log.Error("approval email failed", "application_id", app.ID, "error", err)
	}

	return app, nil
}

// Reject moves a pending application to rejected. A second reject fails the
// precondition instead of silently re-sending the rejection email.
func (uc *applicationUsecase) Reject(ctx context.Context, id int64) error {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if app.Status != domain.ApplicationStatusPending {
		return apperror.Conflict("Application has already been reviewed")
	}

	var reviewedBy string
	if adminID, ok := ctx.Value(domain.KeyUserID).(string); ok {
		reviewedBy = adminID
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, id, domain.ApplicationStatusRejected, reviewedBy); err != nil {
		if err == domain.ErrNotFound {
			return apperror.Conflict("Application has already been reviewed")
		}
		return apperror.Internal(err)
	}

	if err := uc.notifier.NotifyRejection(ctx, id); err != nil {
		logger.Log.Error("rejection email failed", "application_id", id, "error", err)
	}

	return nil
}

func (uc *applicationUsecase) List(ctx context.Context, status string, page, pageSize int) ([]domain.ProfessionalApplication, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.applicationRepo.List(ctx, status, pageSize, (page-1)*pageSize)
}

// GetSignupInfo resolves the applicant behind an unused, unexpired token so
// the signup page can greet them by name.
func (uc *applicationUsecase) GetSignupInfo(ctx context.Context, signupToken string) (*domain.SignupInfo, error) {
	if signupToken == "" {
		return nil, apperror.BadRequest("Signup token is required")
	}
	_, app, err := uc.applicationRepo.GetByToken(ctx, signupToken)
	if err != nil {
		return nil, apperror.NotFound("Signup link is invalid or has expired")
	}
	return &domain.SignupInfo{
		FirstName:  app.FirstName,
		LastName:   app.LastName,
		Email:      app.Email,
		Profession: app.Profession,
	}, nil
}

// CompleteSignup consumes the token: account, profile and token flip happen
// in one transaction, so a token can never be used twice and a failed signup
// leaves no orphaned account.
func (uc *applicationUsecase) CompleteSignup(ctx context.Context, signupToken, password string) (*domain.Professional, error) {
	if len(password) < 8 {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}

	record, app, err := uc.applicationRepo.GetByToken(ctx, signupToken)
	if err != nil {
		return nil, apperror.NotFound("Signup link is invalid or has expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        record.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleProfessional,
	}
	profile := &domain.Professional{
		UserID:          user.ID,
		ApplicationID:   app.ID,
		FirstName:       app.FirstName,
		LastName:        app.LastName,
		Email:           app.Email,
		Phone:           app.Phone,
		Profession:      app.Profession,
		YearsExperience: app.YearsExperience,
		ServiceArea:     app.ServiceArea,
		Bio:             app.Bio,
		Skills:          []string{},
		Status:          domain.ApplicationStatusApproved,
		NeedsOnboarding: false,
	}

	if err := uc.applicationRepo.CompleteSignup(ctx, record.ID, user, profile); err != nil {
		if err == domain.ErrNotFound {
			// Token consumed between lookup and update
			return nil, apperror.NotFound("Signup link is invalid or has expired")
		}
		return nil, apperror.Internal(err)
	}

	return profile, nil
}
