package domain

import (
	"context"
	"time"
)

// Professional is the provider profile keyed by auth user id. It gains full
// profile fields only after signup-token completion; status mirrors the
// application outcome.
type Professional struct {
	UserID          string    `json:"user_id"`
	ApplicationID   int64     `json:"application_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Profession      string    `json:"profession"`
	YearsExperience int       `json:"years_experience"`
	ServiceArea     string    `json:"service_area"`
	Bio             *string   `json:"bio,omitempty"`
	Skills          []string  `json:"skills"`
	HourlyRate      *float64  `json:"hourly_rate,omitempty"`
	Status          string    `json:"status"`
	NeedsOnboarding bool      `json:"needs_onboarding"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProfessionalRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Professional, error)
	Update(ctx context.Context, profile *Professional) error
}

type ProfessionalUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*Professional, error)
	UpdateMyProfile(ctx context.Context, userID string, profile *Professional) (*Professional, error)
}
