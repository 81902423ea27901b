package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func TestRegister(t *testing.T) {
	t.Run("Short password is refused before any lookup", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, "testsecret", 7*24*time.Hour)

		_, _, err := uc.Register(context.Background(), "new@example.com", "short")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("New customer gets a bearer token with the configured TTL", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, "testsecret", 7*24*time.Hour)

		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, errors.New("no rows in result set"))
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		user, token, err := uc.Register(context.Background(), "New@Example.com ", "longenough")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, domain.RoleCustomer, user.Role)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), token.ExpiresAt, time.Minute)

		// Token must verify against the signing secret and carry the user id
		parsed, err := jwt.Parse(token.AccessToken, func(tok *jwt.Token) (interface{}, error) {
			return []byte("testsecret"), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, user.ID, claims["sub"])
	})

	t.Run("Duplicate email is refused", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, "testsecret", 7*24*time.Hour)

		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

		_, _, err := uc.Register(context.Background(), "taken@example.com", "longenough")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correcthorse"), bcrypt.DefaultCost)
	stored := &domain.User{ID: "u1", Email: "jane@example.com", PasswordHash: string(hash), Role: domain.RoleProfessional}

	t.Run("Valid credentials log in", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, "testsecret", 7*24*time.Hour)

		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)

		user, token, err := uc.Login(context.Background(), "jane@example.com", "correcthorse")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.NotEmpty(t, token.AccessToken)
	})

	t.Run("Unknown email and wrong password give the same message", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, "testsecret", 7*24*time.Hour)

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, errors.New("no rows in result set"))
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)

		_, _, errUnknown := uc.Login(context.Background(), "ghost@example.com", "whatever")
		_, _, errWrong := uc.Login(context.Background(), "jane@example.com", "wrongpass")

		require.Error(t, errUnknown)
		require.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}
