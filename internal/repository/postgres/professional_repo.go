package postgres

import (
	"context"
	"go-marketplace-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type professionalRepo struct {
	db *pgxpool.Pool
}

// NewProfessionalRepository creates a new professional profile repository
func NewProfessionalRepository(db *pgxpool.Pool) domain.ProfessionalRepository {
	return &professionalRepo{db: db}
}

func (r *professionalRepo) GetByUserID(ctx context.Context, userID string) (*domain.Professional, error) {
	query := `
		SELECT user_id, application_id, first_name, last_name, email, phone,
		       profession, years_experience, service_area, bio, skills,
		       hourly_rate, status, needs_onboarding, created_at, updated_at
		FROM professionals WHERE user_id = $1`

	var p domain.Professional
	var skills []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.ApplicationID, &p.FirstName, &p.LastName, &p.Email,
		&p.Phone, &p.Profession, &p.YearsExperience, &p.ServiceArea, &p.Bio,
		pq.Array(&skills), &p.HourlyRate, &p.Status, &p.NeedsOnboarding,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}

func (r *professionalRepo) Update(ctx context.Context, profile *domain.Professional) error {
	query := `
		UPDATE professionals
		SET phone = $2, service_area = $3, bio = $4, skills = $5,
		    hourly_rate = $6, updated_at = $7
		WHERE user_id = $1`

	profile.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.Phone, profile.ServiceArea, profile.Bio,
		pq.Array(profile.Skills), profile.HourlyRate, profile.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
