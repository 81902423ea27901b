package domain

import (
	"context"
	"time"
)

// Professional application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// ProfessionalApplication is a provider's request to join the marketplace.
// Applications are never deleted; rejected rows stay as an audit trail.
type ProfessionalApplication struct {
	ID              int64      `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Profession      string     `json:"profession"`
	YearsExperience int        `json:"years_experience"`
	ServiceArea     string     `json:"service_area"`
	Bio             *string    `json:"bio,omitempty"`
	Status          string     `json:"status"` // pending → approved / rejected
	SignupToken     *string    `json:"-"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (a *ProfessionalApplication) FullName() string {
	return a.FirstName + " " + a.LastName
}

// ApprovedProfessional is the one-time signup token record minted at approval.
// A token is single-use: lookups filter used = false and expires_at > now().
type ApprovedProfessional struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id"`
	Email         string    `json:"email"`
	SignupToken   string    `json:"-"`
	Used          bool      `json:"used"`
	ExpiresAt     time.Time `json:"expires_at"`
	UserID        *string   `json:"user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// SignupInfo is what the signup page resolves from a token.
type SignupInfo struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Profession string `json:"profession"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *ProfessionalApplication) error
	GetByID(ctx context.Context, id int64) (*ProfessionalApplication, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, status string, limit, offset int) ([]ProfessionalApplication, int64, error)
	// Approve atomically marks the application approved with its token and
	// inserts the approved_professionals record.
	Approve(ctx context.Context, app *ProfessionalApplication, record *ApprovedProfessional) error
	UpdateStatus(ctx context.Context, id int64, status, reviewedBy string) error
	// GetByToken returns the unused, unexpired token record and its application.
	GetByToken(ctx context.Context, token string) (*ApprovedProfessional, *ProfessionalApplication, error)
	// CompleteSignup atomically creates the user account, the professional
	// profile, and marks the token record used with the new user id.
	CompleteSignup(ctx context.Context, recordID int64, user *User, profile *Professional) error
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, app *ProfessionalApplication) (*ProfessionalApplication, error)
	Approve(ctx context.Context, id int64) (*ProfessionalApplication, error)
	Reject(ctx context.Context, id int64) error
	List(ctx context.Context, status string, page, pageSize int) ([]ProfessionalApplication, int64, error)
	GetSignupInfo(ctx context.Context, token string) (*SignupInfo, error)
	CompleteSignup(ctx context.Context, token, password string) (*Professional, error)
}
