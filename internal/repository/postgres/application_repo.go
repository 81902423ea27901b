package postgres

import (
	"context"
	"go-marketplace-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new professional application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `
	id, first_name, last_name, email, phone, profession, years_experience,
	service_area, bio, status, signup_token, reviewed_by, reviewed_at,
	created_at, updated_at`

func scanApplication(row pgx.Row) (*domain.ProfessionalApplication, error) {
	var app domain.ProfessionalApplication
	err := row.Scan(
		&app.ID, &app.FirstName, &app.LastName, &app.Email, &app.Phone,
		&app.Profession, &app.YearsExperience, &app.ServiceArea, &app.Bio,
		&app.Status, &app.SignupToken, &app.ReviewedBy, &app.ReviewedAt,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.ProfessionalApplication) error {
	query := `
		INSERT INTO professional_applications
			(first_name, last_name, email, phone, profession, years_experience,
			 service_area, bio, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	return r.db.QueryRow(ctx, query,
		app.FirstName, app.LastName, app.Email, app.Phone, app.Profession,
		app.YearsExperience, app.ServiceArea, app.Bio, app.Status,
		app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.ProfessionalApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM professional_applications WHERE id = $1`
	return scanApplication(r.db.QueryRow(ctx, query, id))
}

func (r *applicationRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM professional_applications WHERE email = $1 AND status <> 'rejected')`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) List(ctx context.Context, status string, limit, offset int) ([]domain.ProfessionalApplication, int64, error) {
	query := `
		SELECT ` + applicationColumns + `, COUNT(*) OVER() AS total
		FROM professional_applications
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var applications []domain.ProfessionalApplication
	var total int64
	for rows.Next() {
		var app domain.ProfessionalApplication
		if err := rows.Scan(
			&app.ID, &app.FirstName, &app.LastName, &app.Email, &app.Phone,
			&app.Profession, &app.YearsExperience, &app.ServiceArea, &app.Bio,
			&app.Status, &app.SignupToken, &app.ReviewedBy, &app.ReviewedAt,
			&app.CreatedAt, &app.UpdatedAt, &total,
		); err != nil {
			return nil, 0, err
		}
		applications = append(applications, app)
	}
	return applications, total, nil
}

// Approve marks the application approved with its token and inserts the
// approved_professionals record in one transaction. The status update is
// conditional on the row still being pending, so two admins approving the
// same application cannot both succeed.
func (r *applicationRepo) Approve(ctx context.Context, app *domain.ProfessionalApplication, record *domain.ApprovedProfessional) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	result, err := tx.Exec(ctx, `
		UPDATE professional_applications
		SET status = $2, signup_token = $3, reviewed_by = $4, reviewed_at = $5, updated_at = $5
		WHERE id = $1 AND status = 'pending'`,
		app.ID, domain.ApplicationStatusApproved, record.SignupToken, app.ReviewedBy, now)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO approved_professionals (application_id, email, signup_token, used, expires_at, created_at)
		VALUES ($1, $2, $3, false, $4, $5)
		RETURNING id`,
		record.ApplicationID, record.Email, record.SignupToken, record.ExpiresAt, now,
	).Scan(&record.ID)
	if err != nil {
		return err
	}
	record.CreatedAt = now

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	app.Status = domain.ApplicationStatusApproved
	app.SignupToken = &record.SignupToken
	app.ReviewedAt = &now
	app.UpdatedAt = now
	return nil
}

// UpdateStatus moves a pending application to a terminal status. Zero rows
// affected means the precondition (status = pending) failed.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status, reviewedBy string) error {
	query := `
		UPDATE professional_applications
		SET status = $2, reviewed_by = $3, reviewed_at = $4, updated_at = $4
		WHERE id = $1 AND status = 'pending'`

	result, err := r.db.Exec(ctx, query, id, status, reviewedBy, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) GetByToken(ctx context.Context, token string) (*domain.ApprovedProfessional, *domain.ProfessionalApplication, error) {
	query := `
		SELECT
			ap.id, ap.application_id, ap.email, ap.signup_token, ap.used,
			ap.expires_at, ap.user_id, ap.created_at,
			a.id, a.first_name, a.last_name, a.email, a.phone, a.profession,
			a.years_experience, a.service_area, a.bio, a.status, a.signup_token,
			a.reviewed_by, a.reviewed_at, a.created_at, a.updated_at
		FROM approved_professionals ap
		JOIN professional_applications a ON ap.application_id = a.id
		WHERE ap.signup_token = $1 AND ap.used = false AND ap.expires_at > now()`

	var record domain.ApprovedProfessional
	var app domain.ProfessionalApplication
	err := r.db.QueryRow(ctx, query, token).Scan(
		&record.ID, &record.ApplicationID, &record.Email, &record.SignupToken,
		&record.Used, &record.ExpiresAt, &record.UserID, &record.CreatedAt,
		&app.ID, &app.FirstName, &app.LastName, &app.Email, &app.Phone,
		&app.Profession, &app.YearsExperience, &app.ServiceArea, &app.Bio,
		&app.Status, &app.SignupToken, &app.ReviewedBy, &app.ReviewedAt,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, nil, err
	}
	return &record, &app, nil
}

// CompleteSignup creates the account, populates the professional profile and
// consumes the token in one transaction. The token update is conditional on
// used = false so a token can be consumed at most once.
func (r *applicationRepo) CompleteSignup(ctx context.Context, recordID int64, user *domain.User, profile *domain.Professional) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	result, err := tx.Exec(ctx, `
		UPDATE approved_professionals SET used = true, user_id = $2
		WHERE id = $1 AND used = false`,
		recordID, user.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	user.CreatedAt = now
	user.UpdatedAt = now
	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.Role, now, now)
	if err != nil {
		return err
	}

	profile.CreatedAt = now
	profile.UpdatedAt = now
	_, err = tx.Exec(ctx, `
		INSERT INTO professionals
			(user_id, application_id, first_name, last_name, email, phone,
			 profession, years_experience, service_area, bio, skills,
			 hourly_rate, status, needs_onboarding, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		profile.UserID, profile.ApplicationID, profile.FirstName, profile.LastName,
		profile.Email, profile.Phone, profile.Profession, profile.YearsExperience,
		profile.ServiceArea, profile.Bio, pq.Array(profile.Skills),
		profile.HourlyRate, profile.Status, profile.NeedsOnboarding, now, now)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
