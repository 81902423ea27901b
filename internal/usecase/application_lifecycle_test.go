package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeApplicationStore is a stateful in-memory ApplicationRepository so the
// whole submit → approve → signup flow can run against one instance.
type fakeApplicationStore struct {
	app     *domain.ProfessionalApplication
	record  *domain.ApprovedProfessional
	user    *domain.User
	profile *domain.Professional
}

func (s *fakeApplicationStore) Create(ctx context.Context, app *domain.ProfessionalApplication) error {
	app.ID = 1
	s.app = app
	return nil
}

func (s *fakeApplicationStore) GetByID(ctx context.Context, id int64) (*domain.ProfessionalApplication, error) {
	if s.app == nil || s.app.ID != id {
		return nil, errors.New("no rows in result set")
	}
	return s.app, nil
}

func (s *fakeApplicationStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.app != nil && s.app.Email == email, nil
}

func (s *fakeApplicationStore) List(ctx context.Context, status string, limit, offset int) ([]domain.ProfessionalApplication, int64, error) {
	if s.app == nil {
		return nil, 0, nil
	}
	return []domain.ProfessionalApplication{*s.app}, 1, nil
}

func (s *fakeApplicationStore) Approve(ctx context.Context, app *domain.ProfessionalApplication, record *domain.ApprovedProfessional) error {
	if s.app == nil || s.app.Status != domain.ApplicationStatusPending {
		return domain.ErrNotFound
	}
	s.app.Status = domain.ApplicationStatusApproved
	s.app.SignupToken = &record.SignupToken
	record.ID = 1
	s.record = record
	app.Status = domain.ApplicationStatusApproved
	app.SignupToken = &record.SignupToken
	return nil
}

func (s *fakeApplicationStore) UpdateStatus(ctx context.Context, id int64, status, reviewedBy string) error {
	if s.app == nil || s.app.Status != domain.ApplicationStatusPending {
		return domain.ErrNotFound
	}
	s.app.Status = status
	return nil
}

func (s *fakeApplicationStore) GetByToken(ctx context.Context, token string) (*domain.ApprovedProfessional, *domain.ProfessionalApplication, error) {
	if s.record == nil || s.record.Used || s.record.SignupToken != token || time.Now().After(s.record.ExpiresAt) {
		return nil, nil, errors.New("no rows in result set")
	}
	return s.record, s.app, nil
}

func (s *fakeApplicationStore) CompleteSignup(ctx context.Context, recordID int64, user *domain.User, profile *domain.Professional) error {
	if s.record == nil || s.record.ID != recordID || s.record.Used {
		return domain.ErrNotFound
	}
	s.record.Used = true
	s.record.UserID = &user.ID
	s.user = user
	s.profile = profile
	return nil
}

// fakeSender records outbound emails instead of talking to SMTP.
type fakeSender struct {
	received   []string
	alerts     []string
	signupURLs []string
	rejections []string
}

func (s *fakeSender) SendApplicationReceived(to, name string) error {
	s.received = append(s.received, to)
	return nil
}
func (s *fakeSender) SendAdminAlert(app *domain.ProfessionalApplication) error {
	s.alerts = append(s.alerts, app.Email)
	return nil
}
func (s *fakeSender) SendApprovalEmail(to, name, signupURL string) error {
	s.signupURLs = append(s.signupURLs, signupURL)
	return nil
}
func (s *fakeSender) SendRejectionEmail(to, name string) error {
	s.rejections = append(s.rejections, to)
	return nil
}
func (s *fakeSender) IsConfigured() bool { return true }

type fakeNotificationStore struct {
	rows []domain.Notification
}

func (s *fakeNotificationStore) Record(ctx context.Context, n *domain.Notification) error {
	s.rows = append(s.rows, *n)
	return nil
}

func (s *fakeNotificationStore) ListByRecipient(ctx context.Context, recipient string, limit int) ([]domain.Notification, error) {
	return s.rows, nil
}

func TestApplicationLifecycle(t *testing.T) {
	store := &fakeApplicationStore{}
	sender := &fakeSender{}
	notifStore := &fakeNotificationStore{}

	notifier := usecase.NewNotificationUsecase(store, notifStore, sender, "https://marketplace.example", "admin@marketplace.example")
	uc := usecase.NewApplicationUsecase(store, notifier, 7*24*time.Hour)

	ctx := context.WithValue(context.Background(), domain.KeyUserID, "admin-1")

	// Submit
	app, err := uc.Submit(ctx, &domain.ProfessionalApplication{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "+15550100",
		Profession:      "Electrician",
		YearsExperience: 10,
		ServiceArea:     "Springfield",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	assert.Equal(t, []string{"jane@example.com"}, sender.received)
	assert.Len(t, sender.alerts, 1)

	// Approve mints the token and emails the signup link
	approved, err := uc.Approve(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApproved, approved.Status)
	require.NotNil(t, store.record)
	assert.False(t, store.record.Used)
	require.Len(t, sender.signupURLs, 1)
	assert.True(t, strings.Contains(sender.signupURLs[0], store.record.SignupToken))

	// The signup page resolves the applicant by token
	info, err := uc.GetSignupInfo(ctx, store.record.SignupToken)
	require.NoError(t, err)
	assert.Equal(t, "Jane", info.FirstName)
	assert.Equal(t, "Doe", info.LastName)

	// Complete signup creates the account and consumes the token
	profile, err := uc.CompleteSignup(ctx, store.record.SignupToken, "supersecret")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApproved, profile.Status)
	assert.False(t, profile.NeedsOnboarding)
	assert.Equal(t, domain.RoleProfessional, store.user.Role)
	assert.True(t, store.record.Used)

	// The token is single use
	_, err = uc.CompleteSignup(ctx, store.record.SignupToken, "supersecret")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or has expired")

	// A second approve fails the pending precondition
	_, err = uc.Approve(ctx, app.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already been reviewed")

	// Every dispatched email left an audit row
	assert.Len(t, notifStore.rows, 3)
}

func TestNotifyApprovalGuards(t *testing.T) {
	store := &fakeApplicationStore{
		app: &domain.ProfessionalApplication{
			ID:        1,
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Status:    domain.ApplicationStatusPending,
		},
	}
	sender := &fakeSender{}
	notifier := usecase.NewNotificationUsecase(store, &fakeNotificationStore{}, sender, "https://marketplace.example", "admin@marketplace.example")

	err := notifier.NotifyApproval(context.Background(), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not approved")
	assert.Empty(t, sender.signupURLs)

	err = notifier.NotifyRejection(context.Background(), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not rejected")
	assert.Empty(t, sender.rejections)
}
