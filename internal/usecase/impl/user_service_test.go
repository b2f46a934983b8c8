package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	mockRepo "stockroom/internal/mocks/repository"
	mockSvc "stockroom/internal/mocks/service"
	"stockroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUserService(userRepo *mockRepo.UserRepository, hasher *mockSvc.PasswordHasher, tokenSvc *mockSvc.TokenService) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       testLogger(),
	})
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := &mockRepo.UserRepository{}
	hasher := &mockSvc.PasswordHasher{}
	tokenSvc := &mockSvc.TokenService{}
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "plaintext").Return("$2a$10$hashed", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := svc.Register(ctx, usecase.RegisterInput{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "new@example.com",
		Password:     "plaintext",
		MobileNumber: "0912345678",
	})
	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, "$2a$10$hashed", output.User.PasswordHash)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userRepo := &mockRepo.UserRepository{}
	svc := newTestUserService(userRepo, &mockSvc.PasswordHasher{}, &mockSvc.TokenService{})

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com"}
	userRepo.On("FindByEmail", ctx, "taken@example.com").Return(existing, nil)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		FirstName: "Ada",
		Email:     "taken@example.com",
		Password:  "plaintext",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "User with taken@example.com already exists!", appErr.Message())
	userRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Register_DuplicateLostRace(t *testing.T) {
	userRepo := &mockRepo.UserRepository{}
	hasher := &mockSvc.PasswordHasher{}
	svc := newTestUserService(userRepo, hasher, &mockSvc.TokenService{})

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "raced@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "plaintext").Return("$2a$10$hashed", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		FirstName: "Ada",
		Email:     "raced@example.com",
		Password:  "plaintext",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User with raced@example.com already exists!", appErr.Message())
}

func TestUserService_Register_PersistenceErrorEchoed(t *testing.T) {
	userRepo := &mockRepo.UserRepository{}
	hasher := &mockSvc.PasswordHasher{}
	svc := newTestUserService(userRepo, hasher, &mockSvc.TokenService{})

	ctx := context.Background()
	rawErr := errors.New("connection refused: db01:5432")
	userRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "plaintext").Return("$2a$10$hashed", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(rawErr)

	_, err := svc.Register(ctx, usecase.RegisterInput{
		FirstName: "Ada",
		Email:     "new@example.com",
		Password:  "plaintext",
	})
	require.Error(t, err)

	// The raw datastore message is surfaced to the client unchanged.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, rawErr.Error(), appErr.Message())
}

func TestUserService_Register_HashFailure(t *testing.T) {
	userRepo := &mockRepo.UserRepository{}
	hasher := &mockSvc.PasswordHasher{}
	svc := newTestUserService(userRepo, hasher, &mockSvc.TokenService{})

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "plaintext").Return("", errors.New("bcrypt blew up"))

	_, err := svc.Register(ctx, usecase.RegisterInput{
		FirstName: "Ada",
		Email:     "new@example.com",
		Password:  "plaintext",
	})
	assert.ErrorIs(t, err, domainerrors.ErrHashingFailed)
	userRepo.AssertNotCalled(t, "Create")
}

func TestUserService_Login_Success(t *testing.T) {
	userRepo := &mockRepo.UserRepository{}
	hasher := &mockSvc.PasswordHasher{}
	tokenSvc := &mockSvc.TokenService{}
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		FirstName:    "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hashed",
		Role:         entity.RoleAdmin,
	}
	userRepo.On("FindByEmail", ctx, "ada@example.com").Return(user, nil)
	hasher.On("Check", "plaintext", "$2a$10$hashed").Return(true)
	tokenSvc.On("Issue", mock.MatchedBy(func(claims *service.Claims) bool {
		return claims.UserID == user.ID && claims.Role == "admin"
	})).Return("signed-token", nil)

	output, err := svc.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "plaintext"})
	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "signed-token", output.Token)
}

// The unknown-account answer is a 500, not a 404. Kept on purpose.
func TestUserService_Login_UnknownAccount(t *testing.T) {
	userRepo := &mockRepo.UserRepository{}
	svc := newTestUserService(userRepo, &mockSvc.PasswordHasher{}, &mockSvc.TokenService{})

	ctx := context.Background()
	userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Equal(t, "User not found!", appErr.Message())
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := &mockRepo.UserRepository{}
	hasher := &mockSvc.PasswordHasher{}
	tokenSvc := &mockSvc.TokenService{}
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "$2a$10$hashed"}
	userRepo.On("FindByEmail", ctx, "ada@example.com").Return(user, nil)
	hasher.On("Check", "wrong", "$2a$10$hashed").Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Incorrect Username or password!", appErr.Message())
	tokenSvc.AssertNotCalled(t, "Issue")
}

func TestUserService_Login_SigningFailure(t *testing.T) {
	userRepo := &mockRepo.UserRepository{}
	hasher := &mockSvc.PasswordHasher{}
	tokenSvc := &mockSvc.TokenService{}
	svc := newTestUserService(userRepo, hasher, tokenSvc)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "$2a$10$hashed"}
	userRepo.On("FindByEmail", ctx, "ada@example.com").Return(user, nil)
	hasher.On("Check", "plaintext", "$2a$10$hashed").Return(true)
	tokenSvc.On("Issue", mock.Anything).Return("", errors.New("key unavailable"))

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "plaintext"})
	assert.ErrorIs(t, err, domainerrors.ErrSigningFailed)
}
