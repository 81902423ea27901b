package usecase

import (
	"context"
	"strings"
	"time"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthUsecase creates the custom register/login usecase. Issued bearer
// tokens are HS256 JWTs valid for tokenTTL (7 days by default).
func NewAuthUsecase(userRepo domain.UserRepository, jwtSecret string, tokenTTL time.Duration) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates a customer account and logs it in.
func (u *authUsecase) Register(ctx context.Context, email, password string) (*domain.User, *domain.AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < 8 {
		return nil, nil, apperror.BadRequest("Password must be at least 8 characters")
	}

	exists, err := u.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	if exists {
		return nil, nil, apperror.BadRequest("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, nil, apperror.Internal(err)
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a bearer token.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		// Same message for unknown email and wrong password
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *authUsecase) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return false, nil
		}
		return false, err
	}
	return user != nil, nil
}

func (u *authUsecase) issueToken(user *domain.User) (*domain.AuthToken, error) {
	expiresAt := time.Now().Add(u.tokenTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &domain.AuthToken{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
